package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/session"
	mSession "github.com/x-xyz/chimera/domain/session/mocks"
)

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func newEcho(s session.SessionUseCase) *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, s)
	return e
}

func TestConnect(t *testing.T) {
	req := require.New(t)
	s := &mSession.SessionUseCase{}
	want := session.Session{WalletPresent: true, ConnectedAddress: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A", NetworkID: "0xaa36a7", IsTargetNetwork: true}
	s.On("Connect", mock.Anything).Return(want, nil).Once()
	s.On("Connect", mock.Anything).Return(session.Session{WalletPresent: true}, domain.ErrUserRejected).Once()
	e := newEcho(s)

	rec := serve(e, http.MethodPost, "/session/connect")
	req.Equal(http.StatusOK, rec.Code)
	body := struct {
		Data   session.Session `json:"data"`
		Status string          `json:"status"`
	}{}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	req.Equal(want, body.Data)

	rec = serve(e, http.MethodPost, "/session/connect")
	req.Equal(http.StatusConflict, rec.Code)
	s.AssertExpectations(t)
}

func TestCurrent(t *testing.T) {
	req := require.New(t)
	s := &mSession.SessionUseCase{}
	s.On("CheckExistingConnection", mock.Anything).Return(session.Session{}, domain.ErrWalletAbsent).Once()
	e := newEcho(s)

	rec := serve(e, http.MethodGet, "/session")
	req.Equal(http.StatusPreconditionFailed, rec.Code)
}

func TestEnsureNetwork(t *testing.T) {
	req := require.New(t)
	s := &mSession.SessionUseCase{}
	s.On("EnsureNetwork", mock.Anything).Return(domain.ErrNetworkAddFailed).Once()
	s.On("EnsureNetwork", mock.Anything).Return(nil).Once()
	s.On("Current").Return(session.Session{WalletPresent: true, IsTargetNetwork: true}).Once()
	e := newEcho(s)

	req.Equal(http.StatusPreconditionFailed, serve(e, http.MethodPost, "/session/network").Code)
	req.Equal(http.StatusOK, serve(e, http.MethodPost, "/session/network").Code)
	s.AssertExpectations(t)
}
