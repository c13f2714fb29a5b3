package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/delivery"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
)

// maxImageSize bounds multipart image uploads, pinata itself accepts far larger files
const maxImageSize = 32 << 20

type handler struct {
	form listing.FormUseCase
}

func New(e *echo.Echo, form listing.FormUseCase) {
	h := &handler{form}

	g := e.Group("/listing/form")
	g.GET("", h.state)
	g.PUT("/:field", h.setField)
	g.POST("/image", h.uploadImage)
	g.POST("/submit", h.submit)
	g.DELETE("", h.reset)
}

func (h *handler) state(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.form.State())
}

func (h *handler) setField(c echo.Context) error {
	type payload struct {
		Field listing.Field `param:"field"`
		Value string        `json:"value"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	state, err := h.form.SetField(p.Field, p.Value)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, state)
}

func (h *handler) uploadImage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxImageSize)
	fh, err := c.FormFile("image")
	if err != nil {
		ctx.WithField("err", err).Warn("c.FormFile failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	f, err := fh.Open()
	if err != nil {
		ctx.WithField("err", err).Error("fh.Open failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	defer f.Close()

	return delivery.MakeJsonResp(c, http.StatusOK, h.form.UploadImage(ctx, f, fh.Filename))
}

func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, h.form.Submit(ctx))
}

func (h *handler) reset(c echo.Context) error {
	h.form.Reset()
	return delivery.MakeJsonResp(c, http.StatusOK, h.form.State())
}
