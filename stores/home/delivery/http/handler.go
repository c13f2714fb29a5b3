package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/delivery"
	"github.com/x-xyz/chimera/domain/home"
)

type handler struct {
	home home.UseCase
}

func New(e *echo.Echo, home home.UseCase) {
	h := &handler{home}

	e.GET("/listings", h.load)
}

// load always answers 200, fetch failures are reported through the notice of the state
func (h *handler) load(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, h.home.Load(ctx))
}
