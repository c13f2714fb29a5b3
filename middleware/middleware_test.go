package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/chimera/base/ctx"
)

func TestAddContext(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	m := InitMiddleware("")
	var got ctx.Ctx
	e.Use(m.AddContext(), m.ResponseLogger(), m.CORS)
	e.GET("/ping", func(c echo.Context) error {
		got = c.Get("ctx").(ctx.Ctx)
		return c.NoContent(http.StatusNoContent)
	})

	r := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusNoContent, rec.Code)
	req.Equal("req-1", ctx.RequestID(got))
	req.Equal("req-1", rec.Header().Get(echo.HeaderXRequestID))
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	req.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func TestIsValidAddress(t *testing.T) {
	e := echo.New()
	e.GET("/ens/:address", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IsValidAddress("address"))

	tests := []struct {
		address string
		want    int
	}{
		{"0x939ae6A4C8dfDBB1f7085189574F0A938013952A", http.StatusOK},
		{"0x939ae6a4c8dfdbb1f7085189574f0a938013952a", http.StatusOK},
		{"0x123", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ens/"+tt.address, nil))
		require.Equal(t, tt.want, rec.Code, tt.address)
	}
}
