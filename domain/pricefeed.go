package domain

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/nextswap/auction-api/base/ctx"
)

// PriceReading is a validated sample from the chainlink data feed. It is
// pulled fresh on every conversion and never cached across calls.
type PriceReading struct {
	// Price is the reference-currency price of one native unit (e.g. USD/ETH).
	Price     decimal.Decimal
	UpdatedAt time.Time
	RoundId   *big.Int
}

type PriceFeedUsecase interface {
	GetLatestPrice(c ctx.Ctx, chainId ChainId) (*PriceReading, error)
}
