package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/notify"
	"github.com/x-xyz/chimera/domain/nftpage"
	"github.com/x-xyz/chimera/domain/nftpage/mocks"
)

type handlerSuite struct {
	suite.Suite

	page *mocks.UseCase
	e    *echo.Echo
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.page = &mocks.UseCase{}
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.page)
}

func (s *handlerSuite) TearDownTest() {
	s.page.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func (s *handlerSuite) TestLoad() {
	s.page.On("Load", mock.Anything, domain.TokenId("7")).Return(nftpage.View{Fetched: true, IsOwner: true}).Once()

	rec := s.do(http.MethodGet, "/nft/7")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"fetched":true,"isOwner":true,"listedByViewer":false},"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestBuy() {
	s.page.On("Buy", mock.Anything, domain.TokenId("3")).Return(nftpage.View{Fetched: true, Notice: notify.Success("bought")}).Once()

	rec := s.do(http.MethodPost, "/nft/3/buy")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"bought"`)
}

func (s *handlerSuite) TestToggle() {
	s.page.On("ToggleListing", mock.Anything, domain.TokenId("3")).Return(nftpage.View{Fetched: true}).Once()

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/nft/3/toggle").Code)
}

func (s *handlerSuite) TestInvalidTokenId() {
	for _, id := range []string{"0", "-1", "abc"} {
		s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/nft/"+id).Code, id)
		s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/nft/"+id+"/buy").Code, id)
	}
}
