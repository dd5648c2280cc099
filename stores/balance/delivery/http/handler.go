package http

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/delivery"
	"github.com/nextswap/auction-api/base/metrics"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/balance"
	"github.com/nextswap/auction-api/middleware"
	authMiddleware "github.com/nextswap/auction-api/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	balance balance.Usecase
}

func New(e *echo.Echo, balanceUC balance.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("balance")

	h := &handler{balanceUC}

	g := e.Group("/balance")

	g.GET("/:address", h.get, middleware.IsValidAddress("address"))

	g.POST("/withdraw", h.withdraw, authMiddleware.Auth())

	g.POST("/deposit", h.deposit, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) get(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "get").End()

	address := domain.Address(c.Param("address")).ToLower()

	if b, err := h.balance.Get(context, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, b)
	}
}

func (h *handler) withdraw(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "withdraw").End()

	type params struct {
		ChainId domain.ChainId `json:"chainId"`
		Amount  string         `json:"amount"` // wei
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, ok := new(big.Int).SetString(p.Amount, 10)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	caller := c.Get("address").(domain.Address)

	err := h.balance.Withdraw(context, p.ChainId, caller, amount)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrInsufficientBalance, domain.ErrInvalidAmount:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		context.WithField("err", err).Error("balance.Withdraw failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

// deposit credits an account after an on-chain deposit has been observed.
// Restricted to operators.
func (h *handler) deposit(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "deposit").End()

	type params struct {
		Account domain.Address `json:"account"`
		Amount  string         `json:"amount"` // wei
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, ok := new(big.Int).SetString(p.Amount, 10)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	err := h.balance.Deposit(context, p.Account.ToLower(), amount)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrInvalidAmount:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		context.WithField("err", err).Error("balance.Deposit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
