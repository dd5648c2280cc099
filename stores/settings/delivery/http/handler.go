package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/delivery"
	"github.com/nextswap/auction-api/base/metrics"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/settings"
	"github.com/nextswap/auction-api/middleware"
	authMiddleware "github.com/nextswap/auction-api/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	settings settings.Usecase
}

func New(e *echo.Echo, settingsUC settings.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("settings")

	h := &handler{settingsUC}

	e.GET("/settings", h.get, middleware.CacheHttp(10*time.Second))

	g := e.Group("/admin", authMiddleware.Auth(), authMiddleware.IsAdmin())

	g.POST("/pause", h.pause)

	g.POST("/unpause", h.unpause)

	g.POST("/feeRecipient", h.setFeeRecipient)

	g.POST("/dataFeed", h.setDataFeed)
}

func (h *handler) get(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "get").End()

	if s, err := h.settings.Get(context); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, s)
	}
}

func (h *handler) pause(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "pause").End()

	caller := c.Get("address").(domain.Address)

	if err := h.settings.Pause(context, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) unpause(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "unpause").End()

	caller := c.Get("address").(domain.Address)

	if err := h.settings.Unpause(context, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setFeeRecipient(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "setFeeRecipient").End()

	type params struct {
		Recipient domain.Address `json:"recipient"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	caller := c.Get("address").(domain.Address)

	err := h.settings.SetFeeRecipient(context, p.Recipient, caller)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrInvalidAddress:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) setDataFeed(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "setDataFeed").End()

	type params struct {
		ChainId domain.ChainId `json:"chainId"`
		Feed    domain.Address `json:"feed"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	caller := c.Get("address").(domain.Address)

	err := h.settings.SetDataFeed(context, p.ChainId, p.Feed, caller)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrInvalidAddress, domain.ErrInvalidChainId:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
