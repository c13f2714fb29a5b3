package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/delivery"
	"github.com/x-xyz/chimera/domain/profile"
)

type handler struct {
	profile profile.UseCase
}

func New(e *echo.Echo, profile profile.UseCase) {
	h := &handler{profile}

	e.GET("/profile", h.load)
}

func (h *handler) load(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, h.profile.Load(ctx))
}
