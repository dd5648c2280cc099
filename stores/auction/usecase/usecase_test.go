package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/auction"
	mockAuction "github.com/nextswap/auction-api/domain/auction/mocks"
	mockBalance "github.com/nextswap/auction-api/domain/balance/mocks"
	mockDomain "github.com/nextswap/auction-api/domain/mocks"
	"github.com/nextswap/auction-api/domain/settings"
	mockSettings "github.com/nextswap/auction-api/domain/settings/mocks"
	mockLock "github.com/nextswap/auction-api/service/lock/mocks"
	mockVault "github.com/nextswap/auction-api/service/vault/mocks"
)

var mockCtx = bCtx.Background()

const (
	chainId  = domain.ChainId(1)
	contract = domain.Address("0x71c4658acc7b53ee814a29ce31100ff85ca23ca7")
	assetId  = domain.TokenId("42")
	seller   = domain.Address("0x1111111111111111111111111111111111111111")
	bidder   = domain.Address("0x2222222222222222222222222222222222222222")
	bidder2  = domain.Address("0x3333333333333333333333333333333333333333")
	feeRcpt  = domain.Address("0x4444444444444444444444444444444444444444")
)

type testsuite struct {
	suite.Suite
	auctionRepo *mockAuction.Repo
	eventRepo   *mockAuction.EventRepo
	balanceRepo *mockBalance.Repo
	settings    *mockSettings.Repo
	pricefeed   *mockDomain.PriceFeedUsecase
	txn         *mockDomain.TxnRunner
	lock        *mockLock.Service
	vault       *mockVault.Service
	subject     *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.auctionRepo = &mockAuction.Repo{}
	t.eventRepo = &mockAuction.EventRepo{}
	t.balanceRepo = &mockBalance.Repo{}
	t.settings = &mockSettings.Repo{}
	t.pricefeed = &mockDomain.PriceFeedUsecase{}
	t.txn = &mockDomain.TxnRunner{}
	t.lock = &mockLock.Service{}
	t.vault = &mockVault.Service{}
	t.subject = &impl{
		auction:   t.auctionRepo,
		event:     t.eventRepo,
		balance:   t.balanceRepo,
		settings:  t.settings,
		pricefeed: t.pricefeed,
		txn:       t.txn,
		lock:      t.lock,
		vault:     t.vault,
	}

	t.lock.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(func() {}, nil)
	t.txn.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) },
	)
	t.settings.On("Get", mock.Anything).Return(&settings.Settings{
		FeeRecipient: feeRcpt,
		DataFeeds:    map[string]domain.Address{"1": "0xfeed"},
	}, nil)
}

func (t *testsuite) pauseSettings() {
	t.settings.ExpectedCalls = nil
	t.settings.On("Get", mock.Anything).Return(&settings.Settings{Paused: true}, nil)
}

func (t *testsuite) priceAt(price int64) {
	t.pricefeed.On("GetLatestPrice", mock.Anything, chainId).Return(&domain.PriceReading{
		Price:     decimal.NewFromInt(price),
		UpdatedAt: time.Now(),
		RoundId:   big.NewInt(1),
	}, nil)
}

func runningAuction() *auction.Auction {
	now := time.Now()
	return &auction.Auction{
		AuctionId:       7,
		ChainId:         chainId,
		AssetContract:   contract,
		AssetId:         assetId,
		Seller:          seller,
		ReservePrice:    "10",
		MinBidIncrement: "1",
		FeePercent:      5,
		ExtensionWindow: 600,
		StartTime:       now.Add(-time.Hour),
		EndTime:         now.Add(time.Hour),
		CreatedAt:       now.Add(-2 * time.Hour),
		HighestBid:      "0",
		FeePrice:        "0",
		PaidNative:      "0",
		Started:         true,
	}
}

func validCreateParams() auction.CreateParams {
	return auction.CreateParams{
		ChainId:         chainId,
		AssetContract:   contract,
		AssetId:         assetId,
		Seller:          seller,
		ReservePrice:    decimal.NewFromInt(10),
		MinBidIncrement: decimal.NewFromInt(1),
		FeePercent:      5,
		ExtensionWindow: 10 * time.Minute,
		EndTime:         time.Now().Add(7 * 24 * time.Hour),
	}
}

// --- create ---

func (t *testsuite) TestCreate() {
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(nil, domain.ErrNotFound)
	t.vault.On("OwnsAsset", mock.Anything, chainId, contract, assetId, seller).Return(true, nil)
	t.vault.On("IsApproved", mock.Anything, chainId, contract, assetId, seller).Return(true, nil)
	t.vault.On("TakeCustody", mock.Anything, chainId, contract, assetId, seller).Return("0xtx", nil)
	t.auctionRepo.On("NextId", mock.Anything).Return(int64(1), nil)
	t.auctionRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventTypeCreated
	})).Return(nil)

	a, err := t.subject.Create(mockCtx, validCreateParams())
	t.NoError(err)
	t.Equal(int64(1), a.AuctionId)
	t.False(a.Started)
}

func (t *testsuite) TestCreateWhilePaused() {
	t.pauseSettings()

	_, err := t.subject.Create(mockCtx, validCreateParams())
	t.Equal(domain.ErrPaused, err)
}

func (t *testsuite) TestCreateFeeTooHigh() {
	p := validCreateParams()
	p.FeePercent = 21

	_, err := t.subject.Create(mockCtx, p)
	t.Equal(domain.ErrInvalidFee, err)
}

func (t *testsuite) TestCreateEndTimeOutOfBounds() {
	p := validCreateParams()
	p.EndTime = time.Now().Add(-time.Hour)
	_, err := t.subject.Create(mockCtx, p)
	t.Equal(domain.ErrInvalidDuration, err)

	p.EndTime = time.Now().Add(91 * 24 * time.Hour)
	_, err = t.subject.Create(mockCtx, p)
	t.Equal(domain.ErrInvalidDuration, err)
}

func (t *testsuite) TestCreateActiveAuctionExists() {
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(runningAuction(), nil)

	_, err := t.subject.Create(mockCtx, validCreateParams())
	t.Equal(domain.ErrAuctionExists, err)
}

func (t *testsuite) TestCreateNotOwner() {
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(nil, domain.ErrNotFound)
	t.vault.On("OwnsAsset", mock.Anything, chainId, contract, assetId, seller).Return(false, nil)

	_, err := t.subject.Create(mockCtx, validCreateParams())
	t.Equal(domain.ErrNotOwner, err)
}

func (t *testsuite) TestCreateNotApproved() {
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(nil, domain.ErrNotFound)
	t.vault.On("OwnsAsset", mock.Anything, chainId, contract, assetId, seller).Return(true, nil)
	t.vault.On("IsApproved", mock.Anything, chainId, contract, assetId, seller).Return(false, nil)

	_, err := t.subject.Create(mockCtx, validCreateParams())
	t.Equal(domain.ErrNotApproved, err)
}

// --- start / cancel ---

func (t *testsuite) TestStartNotSeller() {
	a := runningAuction()
	a.Started = false
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(a, nil)

	err := t.subject.Start(mockCtx, chainId, contract, assetId, time.Now(), bidder)
	t.Equal(domain.ErrNotSeller, err)
}

func (t *testsuite) TestStartAlreadyStarted() {
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(runningAuction(), nil)

	err := t.subject.Start(mockCtx, chainId, contract, assetId, time.Now(), seller)
	t.Equal(domain.ErrAuctionAlreadyStarted, err)
}

func (t *testsuite) TestStart() {
	a := runningAuction()
	a.Started = false
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(a, nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.Started != nil && *p.Started
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventTypeStarted
	})).Return(nil)

	err := t.subject.Start(mockCtx, chainId, contract, assetId, time.Now(), seller)
	t.NoError(err)
}

func (t *testsuite) TestStartClockSkewGrace() {
	a := runningAuction()
	a.Started = false
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(a, nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.Anything).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	// slightly in the past is tolerated for clients racing the server clock
	err := t.subject.Start(mockCtx, chainId, contract, assetId, time.Now().Add(-30*time.Second), seller)
	t.NoError(err)

	// well in the past is not
	err = t.subject.Start(mockCtx, chainId, contract, assetId, time.Now().Add(-2*time.Minute), seller)
	t.Equal(domain.ErrInvalidStartTime, err)
}

func (t *testsuite) TestCancelWithBid() {
	a := runningAuction()
	a.Started = false
	a.HighestBidder = bidder
	a.HighestBid = "12"
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(a, nil)

	err := t.subject.Cancel(mockCtx, chainId, contract, assetId, seller)
	t.Equal(domain.ErrAuctionHasBids, err)
}

func (t *testsuite) TestCancelAfterStart() {
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(runningAuction(), nil)

	err := t.subject.Cancel(mockCtx, chainId, contract, assetId, seller)
	t.Equal(domain.ErrAuctionAlreadyStarted, err)
}

func (t *testsuite) TestCancel() {
	a := runningAuction()
	a.Started = false
	t.auctionRepo.On("FindActiveByAsset", mock.Anything, chainId, contract, assetId).Return(a, nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.Canceled != nil && *p.Canceled
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventTypeCanceled
	})).Return(nil)
	t.vault.On("ReleaseAsset", mock.Anything, chainId, contract, assetId, seller).Return("0xtx", nil)

	err := t.subject.Cancel(mockCtx, chainId, contract, assetId, seller)
	t.NoError(err)
}

// --- bidding ---

func (t *testsuite) TestPlaceBidConversionRounding() {
	// 100 / 3000 * 1e18 does not divide evenly, required amount rounds up
	a := runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(3000)

	required, _ := new(big.Int).SetString("33333333333333334", 10)

	// one wei short fails
	short := new(big.Int).Sub(required, big.NewInt(1))
	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), short)
	t.Equal(domain.ErrInsufficientPayment, err)

	// the exact amount succeeds
	t.balanceRepo.On("Debit", mock.Anything, bidder, required).Return(nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.PaidNative != nil && *p.PaidNative == required.String()
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventTypeBidPlaced
	})).Return(nil)

	err = t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), required)
	t.NoError(err)
}

func (t *testsuite) TestPlaceBidMonotonic() {
	a := runningAuction()
	a.HighestBid = "100"
	a.HighestBidder = bidder
	a.PaidNative = "50000000000000000"
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)

	// equal to the highest bid
	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder2, decimal.NewFromInt(100), big.NewInt(1e18))
	t.Equal(domain.ErrBidTooLow, err)

	// above the highest bid but below the minimum increment
	err = t.subject.PlaceBid(mockCtx, a.AuctionId, bidder2, decimal.NewFromFloat(100.5), big.NewInt(1e18))
	t.Equal(domain.ErrBidIncrementTooSmall, err)
}

func (t *testsuite) TestPlaceBidRefundsPreviousLeader() {
	a := runningAuction()
	a.HighestBid = "100"
	a.HighestBidder = bidder
	a.PaidNative = "50000000000000000"
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(2000)

	prevPaid, _ := new(big.Int).SetString(a.PaidNative, 10)
	t.balanceRepo.On("Debit", mock.Anything, bidder2, mock.Anything).Return(nil)
	t.balanceRepo.On("Credit", mock.Anything, bidder, prevPaid).Return(nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.HighestBid != nil && *p.HighestBid == "110" && p.HighestBidder.Equals(bidder2)
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventTypeBidRefunded
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventTypeBidPlaced
	})).Return(nil)

	// 110 / 2000 * 1e18 = 5.5e16
	required, _ := new(big.Int).SetString("55000000000000000", 10)
	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder2, decimal.NewFromInt(110), required)
	t.NoError(err)
	t.balanceRepo.AssertCalled(t.T(), "Credit", mock.Anything, bidder, prevPaid)
}

func (t *testsuite) TestPlaceBidCreditsOverpayment() {
	a := runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(2000)

	// required is 5e16, attach 6e16
	required, _ := new(big.Int).SetString("50000000000000000", 10)
	attached, _ := new(big.Int).SetString("60000000000000000", 10)
	over := new(big.Int).Sub(attached, required)

	t.balanceRepo.On("Debit", mock.Anything, bidder, attached).Return(nil)
	t.balanceRepo.On("Credit", mock.Anything, bidder, over).Return(nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.Anything).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), attached)
	t.NoError(err)
	t.balanceRepo.AssertCalled(t.T(), "Credit", mock.Anything, bidder, over)
}

func (t *testsuite) TestPlaceBidFeePrice() {
	a := runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(2000)

	t.balanceRepo.On("Debit", mock.Anything, bidder, mock.Anything).Return(nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.FeePrice != nil && *p.FeePrice == "0.75"
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	// 15 / 2000 * 1e18
	required, _ := new(big.Int).SetString("7500000000000000", 10)
	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(15), required)
	t.NoError(err)
}

func (t *testsuite) TestPlaceBidAntiSniping() {
	a := runningAuction()
	// 5 minutes remain, inside the 10 minute window
	a.EndTime = time.Now().Add(5 * time.Minute)
	expected := a.EndTime.Add(10 * time.Minute)
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(2000)

	t.balanceRepo.On("Debit", mock.Anything, bidder, mock.Anything).Return(nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.EndTime != nil && p.EndTime.Equal(expected)
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	required, _ := new(big.Int).SetString("50000000000000000", 10)
	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), required)
	t.NoError(err)
}

func (t *testsuite) TestPlaceBidOutsideWindowKeepsEndTime() {
	a := runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(2000)

	t.balanceRepo.On("Debit", mock.Anything, bidder, mock.Anything).Return(nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.EndTime == nil
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	required, _ := new(big.Int).SetString("50000000000000000", 10)
	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), required)
	t.NoError(err)
}

func (t *testsuite) TestPlaceBidStateGuards() {
	a := runningAuction()
	a.Canceled = true
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil).Once()
	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), big.NewInt(1e18))
	t.Equal(domain.ErrAuctionCanceled, err)

	a = runningAuction()
	a.Started = false
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil).Once()
	err = t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), big.NewInt(1e18))
	t.Equal(domain.ErrAuctionNotStarted, err)

	a = runningAuction()
	a.EndTime = time.Now().Add(-time.Minute)
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil).Once()
	err = t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), big.NewInt(1e18))
	t.Equal(domain.ErrAuctionEnded, err)
}

func (t *testsuite) TestPlaceBidSelfBid() {
	a := runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)

	err := t.subject.PlaceBid(mockCtx, a.AuctionId, seller, decimal.NewFromInt(100), big.NewInt(1e18))
	t.Equal(domain.ErrSelfBid, err)
}

func (t *testsuite) TestPlaceBidWhilePaused() {
	t.pauseSettings()

	err := t.subject.PlaceBid(mockCtx, 7, bidder, decimal.NewFromInt(100), big.NewInt(1e18))
	t.Equal(domain.ErrPaused, err)
}

func (t *testsuite) TestPlaceBidDebitsAttachment() {
	a := runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(2000)

	required, _ := new(big.Int).SetString("50000000000000000", 10)
	t.balanceRepo.On("Debit", mock.Anything, bidder, required).Return(nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.Anything).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), required)
	t.NoError(err)
	t.balanceRepo.AssertCalled(t.T(), "Debit", mock.Anything, bidder, required)
}

func (t *testsuite) TestPlaceBidUnfundedAttachmentMintsNothing() {
	// a bidder claiming an attachment their ledger balance cannot cover must
	// not produce any refund or overpayment credit
	a := runningAuction()
	a.HighestBid = "100"
	a.HighestBidder = bidder
	a.PaidNative = "50000000000000000"
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(2000)

	attached, _ := new(big.Int).SetString("1000000000000000000000000000000", 10)
	t.balanceRepo.On("Debit", mock.Anything, bidder2, attached).Return(domain.ErrInsufficientBalance)

	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder2, decimal.NewFromInt(110), attached)
	t.Equal(domain.ErrInsufficientBalance, err)
	t.balanceRepo.AssertNotCalled(t.T(), "Credit", mock.Anything, mock.Anything, mock.Anything)
	t.auctionRepo.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestPlaceBidOracleFailureAborts() {
	a := runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.pricefeed.On("GetLatestPrice", mock.Anything, chainId).Return(nil, domain.ErrOracleStaleData)

	err := t.subject.PlaceBid(mockCtx, a.AuctionId, bidder, decimal.NewFromInt(100), big.NewInt(1e18))
	t.Equal(domain.ErrOracleStaleData, err)
	t.auctionRepo.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

// --- settlement ---

func (t *testsuite) TestSettleWithWinner() {
	a := runningAuction()
	a.EndTime = time.Now().Add(-time.Minute)
	a.HighestBid = "100"
	a.HighestBidder = bidder
	a.FeePrice = "5"
	a.PaidNative = "50000000000000000"
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.priceAt(2000)

	// fee 5 / 2000 * 1e18 = 2.5e15, seller gets the remainder of the escrow
	feeNative, _ := new(big.Int).SetString("2500000000000000", 10)
	paid, _ := new(big.Int).SetString(a.PaidNative, 10)
	proceeds := new(big.Int).Sub(paid, feeNative)

	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.Ended != nil && *p.Ended
	})).Return(nil)
	t.balanceRepo.On("Credit", mock.Anything, feeRcpt, feeNative).Return(nil)
	t.balanceRepo.On("Credit", mock.Anything, seller, proceeds).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventTypeEnded
	})).Return(nil)
	t.vault.On("ReleaseAsset", mock.Anything, chainId, contract, assetId, bidder).Return("0xtx", nil)

	err := t.subject.Settle(mockCtx, a.AuctionId)
	t.NoError(err)
	t.balanceRepo.AssertCalled(t.T(), "Credit", mock.Anything, feeRcpt, feeNative)
	t.balanceRepo.AssertCalled(t.T(), "Credit", mock.Anything, seller, proceeds)
}

func (t *testsuite) TestSettleNoBidsReturnsAsset() {
	a := runningAuction()
	a.EndTime = time.Now().Add(-time.Minute)
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.Anything).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	t.vault.On("ReleaseAsset", mock.Anything, chainId, contract, assetId, seller).Return("0xtx", nil)

	err := t.subject.Settle(mockCtx, a.AuctionId)
	t.NoError(err)
	t.vault.AssertCalled(t.T(), "ReleaseAsset", mock.Anything, chainId, contract, assetId, seller)
}

func (t *testsuite) TestSettleExactlyOnce() {
	a := runningAuction()
	a.EndTime = time.Now().Add(-time.Minute)
	a.Ended = true
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)

	err := t.subject.Settle(mockCtx, a.AuctionId)
	t.Equal(domain.ErrAuctionAlreadySettled, err)
}

func (t *testsuite) TestSettleBeforeEnd() {
	a := runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)

	err := t.subject.Settle(mockCtx, a.AuctionId)
	t.Equal(domain.ErrAuctionNotEnded, err)
}

func (t *testsuite) TestSettleFailedTransferAborts() {
	a := runningAuction()
	a.EndTime = time.Now().Add(-time.Minute)
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.Anything).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	t.vault.On("ReleaseAsset", mock.Anything, chainId, contract, assetId, seller).Return("", domain.ErrInternalServerError)

	err := t.subject.Settle(mockCtx, a.AuctionId)
	t.Error(err)
}

// --- emergency withdraw ---

func (t *testsuite) TestEmergencyWithdrawGuards() {
	a := runningAuction()
	a.Started = false
	a.CreatedAt = time.Now().Add(-time.Hour)
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil).Once()
	err := t.subject.EmergencyWithdraw(mockCtx, a.AuctionId)
	t.Equal(domain.ErrEmergencyDelayNotMet, err)

	a = runningAuction()
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil).Once()
	err = t.subject.EmergencyWithdraw(mockCtx, a.AuctionId)
	t.Equal(domain.ErrAuctionAlreadyStarted, err)

	a = runningAuction()
	a.Started = false
	a.HighestBidder = bidder
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil).Once()
	err = t.subject.EmergencyWithdraw(mockCtx, a.AuctionId)
	t.Equal(domain.ErrAuctionHasBids, err)
}

func (t *testsuite) TestEmergencyWithdraw() {
	a := runningAuction()
	a.Started = false
	a.CreatedAt = time.Now().Add(-96 * time.Hour)
	t.auctionRepo.On("FindOne", mock.Anything, a.AuctionId).Return(a, nil)
	t.auctionRepo.On("Patch", mock.Anything, a.AuctionId, mock.MatchedBy(func(p *auction.Patchable) bool {
		return p.Canceled != nil && *p.Canceled
	})).Return(nil)
	t.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *auction.Event) bool {
		return e.Type == auction.EventTypeEmergencyWithdrawn
	})).Return(nil)
	t.vault.On("ReleaseAsset", mock.Anything, chainId, contract, assetId, seller).Return("0xtx", nil)

	err := t.subject.EmergencyWithdraw(mockCtx, a.AuctionId)
	t.NoError(err)
}

// --- reads ---

func (t *testsuite) TestGetManyBatchBound() {
	ids := make([]int64, 101)
	for i := range ids {
		ids[i] = int64(i)
	}

	_, err := t.subject.GetMany(mockCtx, ids)
	t.Equal(domain.ErrBatchTooLarge, err)

	ids = ids[:100]
	t.auctionRepo.On("FindMany", mock.Anything, ids).Return([]*auction.Auction{}, nil)
	res, err := t.subject.GetMany(mockCtx, ids)
	t.NoError(err)
	t.Len(res, 100)
}

func (t *testsuite) TestGetManyFillsUnknownIds() {
	known := runningAuction()
	t.auctionRepo.On("FindMany", mock.Anything, []int64{7, 8}).Return([]*auction.Auction{known}, nil)

	res, err := t.subject.GetMany(mockCtx, []int64{7, 8})
	t.NoError(err)
	t.Len(res, 2)
	t.Equal(int64(7), res[0].AuctionId)
	t.Equal(int64(0), res[1].AuctionId)
}

func (t *testsuite) TestLockedAuctionRejectsConcurrentOps() {
	t.lock.ExpectedCalls = nil
	t.lock.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrOperationInProgress)

	err := t.subject.Settle(mockCtx, 7)
	t.Equal(domain.ErrOperationInProgress, err)
}
