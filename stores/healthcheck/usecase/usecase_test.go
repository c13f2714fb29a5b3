package usecase

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/chimera/base/ctx"
	hchttp "github.com/x-xyz/chimera/stores/healthcheck/delivery/http"
)

type stubRepo struct {
	err error
}

func (s stubRepo) PingChain(ctx.Ctx) error {
	return s.err
}

func TestCheck(t *testing.T) {
	for _, tc := range []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"up", nil, http.StatusOK, `{"data":{"chain":"ok"},"status":"success"}`},
		{"down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, `{"data":"chain unreachable: dial tcp: connection refused","status":"fail"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			e := echo.New()
			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					c.Set("ctx", ctx.Background())
					return next(c)
				}
			})
			hchttp.New(e, New(stubRepo{tc.err}))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			req.Equal(tc.status, rec.Code)
			req.JSONEq(tc.body, rec.Body.String())
		})
	}
}
