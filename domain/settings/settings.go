package settings

import (
	"strconv"
	"time"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
)

// Settings is the singleton platform configuration document.
type Settings struct {
	Paused       bool           `json:"paused" bson:"paused"`
	FeeRecipient domain.Address `json:"feeRecipient" bson:"feeRecipient"`
	// DataFeeds maps chain id (stringified, mongo map keys must be strings) to
	// the chainlink aggregator address
	DataFeeds map[string]domain.Address `json:"dataFeeds" bson:"dataFeeds"`
	UpdatedAt time.Time                 `json:"updatedAt" bson:"updatedAt"`
}

func (s *Settings) DataFeed(chainId domain.ChainId) (domain.Address, bool) {
	addr, ok := s.DataFeeds[strconv.Itoa(int(chainId))]
	return addr, ok
}

type Patchable struct {
	Paused       *bool           `bson:"paused,omitempty"`
	FeeRecipient *domain.Address `bson:"feeRecipient,omitempty"`
	UpdatedAt    *time.Time      `bson:"updatedAt,omitempty"`
}

type Repo interface {
	// Get returns the settings document, or defaults if it was never written
	Get(c ctx.Ctx) (*Settings, error)
	Patch(c ctx.Ctx, p *Patchable) error
	SetDataFeed(c ctx.Ctx, chainId domain.ChainId, feed domain.Address) error
}

type Usecase interface {
	Get(c ctx.Ctx) (*Settings, error)
	Pause(c ctx.Ctx, caller domain.Address) error
	Unpause(c ctx.Ctx, caller domain.Address) error
	SetFeeRecipient(c ctx.Ctx, recipient domain.Address, caller domain.Address) error
	SetDataFeed(c ctx.Ctx, chainId domain.ChainId, feed domain.Address, caller domain.Address) error
}
