package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/delivery"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/nftpage"
)

type handler struct {
	page nftpage.UseCase
}

func New(e *echo.Echo, page nftpage.UseCase) {
	h := &handler{page}

	g := e.Group("/nft/:tokenId")
	g.GET("", h.load)
	g.POST("/buy", h.buy)
	g.POST("/toggle", h.toggle)
}

type tokenPayload struct {
	TokenId domain.TokenId `param:"tokenId"`
}

func (h *handler) bind(c echo.Context) (domain.TokenId, error) {
	p := tokenPayload{}
	if err := c.Bind(&p); err != nil {
		return "", err
	}
	if _, err := p.TokenId.ToBigInt(); err != nil {
		return "", err
	}
	return p.TokenId, nil
}

func (h *handler) load(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := h.bind(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.page.Load(ctx, id))
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := h.bind(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.page.Buy(ctx, id))
}

func (h *handler) toggle(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := h.bind(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.page.ToggleListing(ctx, id))
}
