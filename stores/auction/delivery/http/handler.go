package http

import (
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/delivery"
	"github.com/nextswap/auction-api/base/metrics"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/auction"
	"github.com/nextswap/auction-api/middleware"
	authMiddleware "github.com/nextswap/auction-api/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	auction auction.Usecase
}

func New(e *echo.Echo, auctionUC auction.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("auction")

	h := &handler{auctionUC}

	gs := e.Group("/auctions")

	gs.GET("", h.getMany)

	gs.GET("/count", h.count, middleware.CacheHttp(10*time.Second))

	gs.POST("", h.create, authMiddleware.Auth())

	gs.GET("/:auctionId", h.get)

	gs.GET("/:auctionId/events", h.getEvents)

	gs.POST("/:auctionId/bids", h.placeBid, authMiddleware.Auth())

	// settlement is permissionless once the end time passed
	gs.POST("/:auctionId/settle", h.settle)

	gs.POST("/:auctionId/emergencyWithdraw", h.emergencyWithdraw, authMiddleware.Auth(), authMiddleware.IsAdmin())

	g := e.Group("/auction/:chainId/:contract/:tokenId")

	g.POST("/start", h.start, authMiddleware.Auth())

	g.POST("/cancel", h.cancel, authMiddleware.Auth())
}

func statusOf(err error) int {
	switch err {
	case domain.ErrAuctionNotFound, domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrNotSeller, domain.ErrNotAdmin:
		return http.StatusForbidden
	case domain.ErrOperationInProgress:
		return http.StatusConflict
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrInvalidAddress, domain.ErrInvalidAmount, domain.ErrInvalidNumberFormat,
		domain.ErrInvalidChainId, domain.ErrInvalidDuration, domain.ErrInvalidStartTime,
		domain.ErrInvalidFee, domain.ErrBadParamInput, domain.ErrBatchTooLarge:
		return http.StatusBadRequest
	case domain.ErrAuctionExists, domain.ErrAuctionNotStarted, domain.ErrAuctionAlreadyStarted,
		domain.ErrAuctionEnded, domain.ErrAuctionCanceled, domain.ErrAuctionNotEnded,
		domain.ErrAuctionAlreadySettled, domain.ErrAuctionHasBids, domain.ErrEmergencyDelayNotMet,
		domain.ErrBidTooLow, domain.ErrBidIncrementTooSmall, domain.ErrSelfBid,
		domain.ErrInsufficientPayment, domain.ErrInsufficientBalance, domain.ErrPaused,
		domain.ErrNotOwner, domain.ErrNotApproved:
		return http.StatusBadRequest
	case domain.ErrNoPriceFeed, domain.ErrOracleInvalidTimestamp, domain.ErrOracleFutureTimestamp,
		domain.ErrOracleStaleData, domain.ErrOracleInvalidPrice, domain.ErrOracleOutOfRange:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) create(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "create").End()

	type params struct {
		ChainId         domain.ChainId `json:"chainId"`
		AssetContract   domain.Address `json:"assetContract"`
		AssetId         domain.TokenId `json:"assetId"`
		ReservePrice    *string        `json:"reservePrice"`
		MinBidIncrement *string        `json:"minBidIncrement"`
		FeePercent      *int32         `json:"feePercent"`
		ExtensionWindow *int64         `json:"extensionWindow"` // seconds
		EndTime         *int64         `json:"endTime"`         // unix seconds
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	seller := c.Get("address").(domain.Address)

	// the fully defaulted overload
	if p.ReservePrice == nil && p.MinBidIncrement == nil && p.FeePercent == nil &&
		p.ExtensionWindow == nil && p.EndTime == nil {
		if a, err := h.auction.CreateWithDefaults(context, p.ChainId, p.AssetContract, p.AssetId, seller); err != nil {
			return delivery.MakeJsonResp(c, statusOf(err), err)
		} else {
			return delivery.MakeJsonResp(c, http.StatusCreated, a)
		}
	}

	cp := auction.CreateParams{
		ChainId:         p.ChainId,
		AssetContract:   p.AssetContract,
		AssetId:         p.AssetId,
		Seller:          seller,
		ReservePrice:    decimal.Zero,
		MinBidIncrement: decimal.New(1, 0),
		FeePercent:      auction.DefaultFeePercent,
		ExtensionWindow: auction.DefaultExtensionWindow,
		EndTime:         time.Now().Add(auction.DefaultDuration),
	}
	if p.ReservePrice != nil {
		v, err := decimal.NewFromString(*p.ReservePrice)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
		}
		cp.ReservePrice = v
	}
	if p.MinBidIncrement != nil {
		v, err := decimal.NewFromString(*p.MinBidIncrement)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
		}
		cp.MinBidIncrement = v
	}
	if p.FeePercent != nil {
		cp.FeePercent = *p.FeePercent
	}
	if p.ExtensionWindow != nil {
		cp.ExtensionWindow = time.Duration(*p.ExtensionWindow) * time.Second
	}
	if p.EndTime != nil {
		cp.EndTime = time.Unix(*p.EndTime, 0)
	}

	if a, err := h.auction.Create(context, cp); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, a)
	}
}

func (h *handler) start(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "start").End()

	type params struct {
		ChainId   domain.ChainId `param:"chainId"`
		Contract  domain.Address `param:"contract"`
		TokenId   domain.TokenId `param:"tokenId"`
		StartTime int64          `json:"startTime"` // unix seconds
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	caller := c.Get("address").(domain.Address)
	startTime := time.Now()
	if p.StartTime > 0 {
		startTime = time.Unix(p.StartTime, 0)
	}

	if err := h.auction.Start(context, p.ChainId, p.Contract, p.TokenId, startTime, caller); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) cancel(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "cancel").End()

	type params struct {
		ChainId  domain.ChainId `param:"chainId"`
		Contract domain.Address `param:"contract"`
		TokenId  domain.TokenId `param:"tokenId"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	caller := c.Get("address").(domain.Address)

	if err := h.auction.Cancel(context, p.ChainId, p.Contract, p.TokenId, caller); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) placeBid(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "placeBid").End()

	auctionId, err := strconv.ParseInt(c.Param("auctionId"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	type params struct {
		Amount         string `json:"amount"`         // reference currency
		AttachedNative string `json:"attachedNative"` // wei, drawn from the bidder's deposited balance
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}
	attached, ok := new(big.Int).SetString(p.AttachedNative, 10)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	bidder := c.Get("address").(domain.Address)

	if err := h.auction.PlaceBid(context, auctionId, bidder, amount, attached); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) settle(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "settle").End()

	auctionId, err := strconv.ParseInt(c.Param("auctionId"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.auction.Settle(context, auctionId); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) emergencyWithdraw(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "emergencyWithdraw").End()

	auctionId, err := strconv.ParseInt(c.Param("auctionId"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.auction.EmergencyWithdraw(context, auctionId); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) get(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "get").End()

	auctionId, err := strconv.ParseInt(c.Param("auctionId"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if a, err := h.auction.Get(context, auctionId); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, a)
	}
}

func (h *handler) getMany(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "getMany").End()

	type params struct {
		Ids []int64 `query:"ids"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.auction.GetMany(context, p.Ids); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) count(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "count").End()

	if cnt, err := h.auction.Count(context); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, cnt)
	}
}

func (h *handler) getEvents(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	defer met.BumpTime("time", "func", "getEvents").End()

	auctionId, err := strconv.ParseInt(c.Param("auctionId"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if evts, err := h.auction.GetEvents(context, auctionId); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, evts)
	}
}
