package chainlink

import (
	"math/big"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
)

// RoundData is the raw latestRoundData answer of an aggregator, together with
// the feed's decimals. Values are returned untouched so callers can apply
// their own freshness and range checks.
type RoundData struct {
	RoundId   *big.Int
	Answer    *big.Int
	StartedAt *big.Int
	UpdatedAt *big.Int
	Decimals  uint8
}

// Chainlink reads price feed aggregators. Readings are never cached, every
// call goes to the chain.
type Chainlink interface {
	GetLatestRoundData(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*RoundData, error)
}
