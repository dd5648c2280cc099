package auction

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
)

const (
	// MaxDuration is the longest span between creation and end time.
	MaxDuration = 90 * 24 * time.Hour
	// MaxStartDelay is the longest span between now and a requested start time.
	MaxStartDelay = 30 * 24 * time.Hour
	// EmergencyWithdrawDelay is the aging delay before an admin may recover a
	// stalled, never-started auction.
	EmergencyWithdrawDelay = 72 * time.Hour
	// MaxBatchSize caps GetMany input length.
	MaxBatchSize = 100
	// MaxFeePercent caps the platform fee fixed at creation.
	MaxFeePercent = 20

	DefaultDuration        = 7 * 24 * time.Hour
	DefaultExtensionWindow = 10 * time.Minute
	DefaultFeePercent      = 2
)

type Auction struct {
	AuctionId     int64          `json:"auctionId" bson:"auctionId"`
	ChainId       domain.ChainId `json:"chainId" bson:"chainId"`
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	AssetId       domain.TokenId `json:"assetId" bson:"assetId"`
	Seller        domain.Address `json:"seller" bson:"seller"`

	// reference-currency terms, decimal strings
	ReservePrice    string `json:"reservePrice" bson:"reservePrice"`
	MinBidIncrement string `json:"minBidIncrement" bson:"minBidIncrement"`
	FeePercent      int32  `json:"feePercent" bson:"feePercent"`

	// ExtensionWindow is the anti-sniping window in seconds
	ExtensionWindow int64     `json:"extensionWindow" bson:"extensionWindow"`
	StartTime       time.Time `json:"startTime" bson:"startTime"`
	EndTime         time.Time `json:"endTime" bson:"endTime"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`

	// mutated only by valid bids
	HighestBid    string         `json:"highestBid" bson:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
	FeePrice      string         `json:"feePrice" bson:"feePrice"`
	// PaidNative is the escrowed native payment of the current leader, in wei
	PaidNative string `json:"paidNative" bson:"paidNative"`

	Started  bool `json:"started" bson:"started"`
	Ended    bool `json:"ended" bson:"ended"`
	Canceled bool `json:"canceled" bson:"canceled"`
}

func (a *Auction) LowerCase() {
	a.AssetContract = a.AssetContract.ToLower()
	a.Seller = a.Seller.ToLower()
	a.HighestBidder = a.HighestBidder.ToLower()
}

func (a *Auction) HasBid() bool {
	return !a.HighestBidder.IsEmpty()
}

// IsTerminal reports whether the auction reached an end state. Terminal
// auctions remain queryable but accept no further transitions.
func (a *Auction) IsTerminal() bool {
	return a.Ended || a.Canceled
}

func (a *Auction) HighestBidDecimal() decimal.Decimal {
	if a.HighestBid == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(a.HighestBid)
	if err != nil {
		return decimal.Zero
	}
	return d
}

type Patchable struct {
	StartTime     *time.Time      `bson:"startTime,omitempty"`
	EndTime       *time.Time      `bson:"endTime,omitempty"`
	HighestBid    *string         `bson:"highestBid,omitempty"`
	HighestBidder *domain.Address `bson:"highestBidder,omitempty"`
	FeePrice      *string         `bson:"feePrice,omitempty"`
	PaidNative    *string         `bson:"paidNative,omitempty"`
	Started       *bool           `bson:"started,omitempty"`
	Ended         *bool           `bson:"ended,omitempty"`
	Canceled      *bool           `bson:"canceled,omitempty"`
}

type CreateParams struct {
	ChainId         domain.ChainId  `json:"chainId"`
	AssetContract   domain.Address  `json:"assetContract"`
	AssetId         domain.TokenId  `json:"assetId"`
	Seller          domain.Address  `json:"-"`
	ReservePrice    decimal.Decimal `json:"reservePrice"`
	MinBidIncrement decimal.Decimal `json:"minBidIncrement"`
	FeePercent      int32           `json:"feePercent"`
	ExtensionWindow time.Duration   `json:"extensionWindow"`
	EndTime         time.Time       `json:"endTime"`
}

type Repo interface {
	NextId(c ctx.Ctx) (int64, error)
	Insert(c ctx.Ctx, a *Auction) error
	FindOne(c ctx.Ctx, auctionId int64) (*Auction, error)
	// FindActiveByAsset returns the non-terminal auction for the asset, or
	// domain.ErrNotFound
	FindActiveByAsset(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, assetId domain.TokenId) (*Auction, error)
	FindMany(c ctx.Ctx, auctionIds []int64) ([]*Auction, error)
	Count(c ctx.Ctx) (int, error)
	Patch(c ctx.Ctx, auctionId int64, p *Patchable) error
}

type Usecase interface {
	Create(c ctx.Ctx, params CreateParams) (*Auction, error)
	CreateWithDefaults(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, assetId domain.TokenId, seller domain.Address) (*Auction, error)
	Start(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, assetId domain.TokenId, startTime time.Time, caller domain.Address) error
	Cancel(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, assetId domain.TokenId, caller domain.Address) error
	PlaceBid(c ctx.Ctx, auctionId int64, bidder domain.Address, bidAmount decimal.Decimal, attachedNative *big.Int) error
	Settle(c ctx.Ctx, auctionId int64) error
	EmergencyWithdraw(c ctx.Ctx, auctionId int64) error

	Get(c ctx.Ctx, auctionId int64) (*Auction, error)
	GetMany(c ctx.Ctx, auctionIds []int64) ([]*Auction, error)
	Count(c ctx.Ctx) (int, error)
	GetEvents(c ctx.Ctx, auctionId int64) ([]*Event, error)
}
