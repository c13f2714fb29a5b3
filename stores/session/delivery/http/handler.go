package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/delivery"
	"github.com/x-xyz/chimera/domain/session"
)

type handler struct {
	session session.SessionUseCase
}

func New(e *echo.Echo, session session.SessionUseCase) {
	h := &handler{session}

	g := e.Group("/session")
	g.GET("", h.current)
	g.POST("/connect", h.connect)
	g.POST("/network", h.ensureNetwork)
}

func (h *handler) current(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	s, err := h.session.CheckExistingConnection(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, s)
}

func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	s, err := h.session.Connect(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, s)
}

func (h *handler) ensureNetwork(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.session.EnsureNetwork(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.session.Current())
}
