package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/log"
	"github.com/nextswap/auction-api/base/ptr"
	"github.com/nextswap/auction-api/base/validator"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/auction"
	"github.com/nextswap/auction-api/domain/balance"
	"github.com/nextswap/auction-api/domain/keys"
	"github.com/nextswap/auction-api/domain/settings"
	"github.com/nextswap/auction-api/service/lock"
	"github.com/nextswap/auction-api/service/notifier"
	"github.com/nextswap/auction-api/service/vault"
)

// lockTtl bounds how long a stuck operation can hold an auction lock
const lockTtl = 30 * time.Second

type impl struct {
	auction   auction.Repo
	event     auction.EventRepo
	balance   balance.Repo
	settings  settings.Repo
	pricefeed domain.PriceFeedUsecase
	txn       domain.TxnRunner
	lock      lock.Service
	vault     vault.Service
	notifier  notifier.Service
}

func New(
	auctionRepo auction.Repo,
	eventRepo auction.EventRepo,
	balanceRepo balance.Repo,
	settingsRepo settings.Repo,
	pricefeed domain.PriceFeedUsecase,
	txn domain.TxnRunner,
	lockService lock.Service,
	vaultService vault.Service,
	notifierService notifier.Service,
) auction.Usecase {
	return &impl{
		auction:   auctionRepo,
		event:     eventRepo,
		balance:   balanceRepo,
		settings:  settingsRepo,
		pricefeed: pricefeed,
		txn:       txn,
		lock:      lockService,
		vault:     vaultService,
		notifier:  notifierService,
	}
}

func newEvent(auctionId int64, typ auction.EventType) *auction.Event {
	return &auction.Event{
		EventId:   uuid.New().String(),
		AuctionId: auctionId,
		Type:      typ,
		Time:      time.Now(),
	}
}

func (im *impl) acquireAssetLock(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, assetId domain.TokenId) (func(), error) {
	key := keys.RedisKey(keys.PfxAuctionLock, "asset", contract.ToLowerStr(), assetId.String())
	return im.lock.Acquire(c, key, lockTtl)
}

func (im *impl) acquireAuctionLock(c ctx.Ctx, auctionId int64) (func(), error) {
	key := keys.RedisKey(keys.PfxAuctionLock, "id", decimal.NewFromInt(auctionId).String())
	return im.lock.Acquire(c, key, lockTtl)
}

func (im *impl) Create(c ctx.Ctx, params auction.CreateParams) (*auction.Auction, error) {
	now := time.Now()

	if !validator.IsValidAddress(string(params.AssetContract)) || params.AssetContract.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	if _, ok := params.AssetId.ToBigInt(); !ok {
		return nil, domain.ErrBadParamInput
	}
	if params.ReservePrice.IsNegative() || params.MinBidIncrement.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if params.FeePercent < 0 || params.FeePercent > auction.MaxFeePercent {
		return nil, domain.ErrInvalidFee
	}
	if !params.EndTime.After(now) || params.EndTime.After(now.Add(auction.MaxDuration)) {
		return nil, domain.ErrInvalidDuration
	}
	if params.ExtensionWindow < 0 {
		return nil, domain.ErrInvalidDuration
	}

	s, err := im.settings.Get(c)
	if err != nil {
		return nil, err
	}
	if s.Paused {
		return nil, domain.ErrPaused
	}

	release, err := im.acquireAssetLock(c, params.ChainId, params.AssetContract, params.AssetId)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := im.auction.FindActiveByAsset(c, params.ChainId, params.AssetContract, params.AssetId); err == nil {
		return nil, domain.ErrAuctionExists
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	if owns, err := im.vault.OwnsAsset(c, params.ChainId, params.AssetContract, params.AssetId, params.Seller); err != nil {
		return nil, err
	} else if !owns {
		return nil, domain.ErrNotOwner
	}
	if approved, err := im.vault.IsApproved(c, params.ChainId, params.AssetContract, params.AssetId, params.Seller); err != nil {
		return nil, err
	} else if !approved {
		return nil, domain.ErrNotApproved
	}

	if _, err := im.vault.TakeCustody(c, params.ChainId, params.AssetContract, params.AssetId, params.Seller); err != nil {
		return nil, err
	}

	a := &auction.Auction{
		ChainId:         params.ChainId,
		AssetContract:   params.AssetContract,
		AssetId:         params.AssetId,
		Seller:          params.Seller,
		ReservePrice:    params.ReservePrice.String(),
		MinBidIncrement: params.MinBidIncrement.String(),
		FeePercent:      params.FeePercent,
		ExtensionWindow: int64(params.ExtensionWindow / time.Second),
		EndTime:         params.EndTime,
		CreatedAt:       now,
		HighestBid:      "0",
		FeePrice:        "0",
		PaidNative:      "0",
	}

	err = im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		id, err := im.auction.NextId(c)
		if err != nil {
			return err
		}
		a.AuctionId = id
		if err := im.auction.Insert(c, a); err != nil {
			return err
		}
		evt := newEvent(id, auction.EventTypeCreated)
		evt.Account = a.Seller
		evt.Amount = a.ReservePrice
		return im.event.Insert(c, evt)
	})
	if err != nil {
		// custody was taken, hand the asset back so it is not stranded
		if _, rerr := im.vault.ReleaseAsset(c, params.ChainId, params.AssetContract, params.AssetId, params.Seller); rerr != nil {
			c.WithFields(log.Fields{
				"err":      rerr,
				"contract": params.AssetContract,
				"assetId":  params.AssetId,
			}).Error("failed to return asset after aborted create")
		}
		return nil, err
	}

	return a, nil
}

func (im *impl) CreateWithDefaults(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, assetId domain.TokenId, seller domain.Address) (*auction.Auction, error) {
	return im.Create(c, auction.CreateParams{
		ChainId:         chainId,
		AssetContract:   contract,
		AssetId:         assetId,
		Seller:          seller,
		ReservePrice:    decimal.Zero,
		MinBidIncrement: decimal.New(1, 0),
		FeePercent:      auction.DefaultFeePercent,
		ExtensionWindow: auction.DefaultExtensionWindow,
		EndTime:         time.Now().Add(auction.DefaultDuration),
	})
}

func (im *impl) Start(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, assetId domain.TokenId, startTime time.Time, caller domain.Address) error {
	now := time.Now()
	if startTime.Before(now.Add(-time.Minute)) {
		return domain.ErrInvalidStartTime
	}
	if startTime.After(now.Add(auction.MaxStartDelay)) {
		return domain.ErrInvalidStartTime
	}

	release, err := im.acquireAssetLock(c, chainId, contract, assetId)
	if err != nil {
		return err
	}
	defer release()

	a, err := im.auction.FindActiveByAsset(c, chainId, contract, assetId)
	if err == domain.ErrNotFound {
		return domain.ErrAuctionNotFound
	} else if err != nil {
		return err
	}
	if !a.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if a.Started {
		return domain.ErrAuctionAlreadyStarted
	}
	if !startTime.Before(a.EndTime) {
		return domain.ErrInvalidStartTime
	}

	return im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.auction.Patch(c, a.AuctionId, &auction.Patchable{
			Started:   ptr.Bool(true),
			StartTime: &startTime,
		}); err != nil {
			return err
		}
		evt := newEvent(a.AuctionId, auction.EventTypeStarted)
		evt.Account = caller
		if err := im.event.Insert(c, evt); err != nil {
			return err
		}
		if im.notifier != nil {
			im.notifier.NotifyAuctionStarted(c, a.AuctionId, chainId, contract, assetId, a.ReservePrice)
		}
		return nil
	})
}

func (im *impl) Cancel(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, assetId domain.TokenId, caller domain.Address) error {
	release, err := im.acquireAssetLock(c, chainId, contract, assetId)
	if err != nil {
		return err
	}
	defer release()

	a, err := im.auction.FindActiveByAsset(c, chainId, contract, assetId)
	if err == domain.ErrNotFound {
		return domain.ErrAuctionNotFound
	} else if err != nil {
		return err
	}
	if !a.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}
	if a.Started {
		return domain.ErrAuctionAlreadyStarted
	}
	if a.HasBid() {
		return domain.ErrAuctionHasBids
	}

	return im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.auction.Patch(c, a.AuctionId, &auction.Patchable{
			Canceled: ptr.Bool(true),
		}); err != nil {
			return err
		}
		evt := newEvent(a.AuctionId, auction.EventTypeCanceled)
		evt.Account = caller
		evt.To = a.Seller
		if err := im.event.Insert(c, evt); err != nil {
			return err
		}
		// asset release participates in the transaction, a failed transfer
		// aborts the state change and the cancel can be retried
		if _, err := im.vault.ReleaseAsset(c, chainId, contract, assetId, a.Seller); err != nil {
			return err
		}
		return nil
	})
}

func (im *impl) PlaceBid(c ctx.Ctx, auctionId int64, bidder domain.Address, bidAmount decimal.Decimal, attachedNative *big.Int) error {
	if bidAmount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	if attachedNative == nil || attachedNative.Sign() <= 0 {
		return domain.ErrInsufficientPayment
	}

	s, err := im.settings.Get(c)
	if err != nil {
		return err
	}
	if s.Paused {
		return domain.ErrPaused
	}

	release, err := im.acquireAuctionLock(c, auctionId)
	if err != nil {
		return err
	}
	defer release()

	a, err := im.auction.FindOne(c, auctionId)
	if err != nil {
		return err
	}

	now := time.Now()
	switch {
	case a.Canceled:
		return domain.ErrAuctionCanceled
	case a.Ended:
		return domain.ErrAuctionAlreadySettled
	case !a.Started || now.Before(a.StartTime):
		return domain.ErrAuctionNotStarted
	case !now.Before(a.EndTime):
		return domain.ErrAuctionEnded
	}

	if a.Seller.Equals(bidder) {
		return domain.ErrSelfBid
	}

	highest := a.HighestBidDecimal()
	reserve, err := decimal.NewFromString(a.ReservePrice)
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	increment, err := decimal.NewFromString(a.MinBidIncrement)
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}

	if bidAmount.LessThan(reserve) {
		return domain.ErrBidTooLow
	}
	if a.HasBid() {
		if bidAmount.LessThanOrEqual(highest) {
			return domain.ErrBidTooLow
		}
		if bidAmount.Sub(highest).LessThan(increment) {
			return domain.ErrBidIncrementTooSmall
		}
	}

	// fresh oracle reading on every conversion, never cached
	reading, err := im.pricefeed.GetLatestPrice(c, a.ChainId)
	if err != nil {
		return err
	}
	required := requiredNative(bidAmount, reading.Price)
	if attachedNative.Cmp(required) < 0 {
		return domain.ErrInsufficientPayment
	}

	fee := feePrice(bidAmount, a.FeePercent)

	err = im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		// collect the attachment from the bidder's ledger balance before any
		// credit goes out, so the ledger never holds less than it owes
		if err := im.balance.Debit(c, bidder, attachedNative); err != nil {
			return err
		}

		// refund the previous leader into the credit ledger
		if a.HasBid() {
			prevPaid, ok := new(big.Int).SetString(a.PaidNative, 10)
			if !ok {
				return domain.ErrInvalidNumberFormat
			}
			if err := im.balance.Credit(c, a.HighestBidder, prevPaid); err != nil {
				return err
			}
			refundEvt := newEvent(auctionId, auction.EventTypeBidRefunded)
			refundEvt.Account = a.HighestBidder
			refundEvt.Amount = a.HighestBid
			refundEvt.AmountNative = prevPaid.String()
			if err := im.event.Insert(c, refundEvt); err != nil {
				return err
			}
		}

		// overpayment beyond the required amount is immediately withdrawable
		if over := new(big.Int).Sub(attachedNative, required); over.Sign() > 0 {
			if err := im.balance.Credit(c, bidder, over); err != nil {
				return err
			}
		}

		patch := &auction.Patchable{
			HighestBid:    ptr.String(bidAmount.String()),
			HighestBidder: &bidder,
			FeePrice:      ptr.String(fee.String()),
			PaidNative:    ptr.String(required.String()),
		}
		// anti-sniping, a late bid pushes the end out by the extension window
		window := time.Duration(a.ExtensionWindow) * time.Second
		if window > 0 && a.EndTime.Sub(now) <= window {
			extended := a.EndTime.Add(window)
			patch.EndTime = &extended
		}
		if err := im.auction.Patch(c, auctionId, patch); err != nil {
			return err
		}

		evt := newEvent(auctionId, auction.EventTypeBidPlaced)
		evt.Account = bidder
		evt.Amount = bidAmount.String()
		evt.AmountNative = required.String()
		return im.event.Insert(c, evt)
	})
	if err != nil {
		return err
	}

	if im.notifier != nil {
		im.notifier.NotifyBidPlaced(c, auctionId, bidder, bidAmount.String())
	}
	return nil
}

func (im *impl) Settle(c ctx.Ctx, auctionId int64) error {
	release, err := im.acquireAuctionLock(c, auctionId)
	if err != nil {
		return err
	}
	defer release()

	a, err := im.auction.FindOne(c, auctionId)
	if err != nil {
		return err
	}

	switch {
	case a.Canceled:
		return domain.ErrAuctionCanceled
	case a.Ended:
		return domain.ErrAuctionAlreadySettled
	case !a.Started:
		return domain.ErrAuctionNotStarted
	case time.Now().Before(a.EndTime):
		return domain.ErrAuctionNotEnded
	}

	s, err := im.settings.Get(c)
	if err != nil {
		return err
	}

	err = im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.auction.Patch(c, auctionId, &auction.Patchable{
			Ended: ptr.Bool(true),
		}); err != nil {
			return err
		}

		evt := newEvent(auctionId, auction.EventTypeEnded)

		if !a.HasBid() {
			// no bids, hand the asset back
			evt.To = a.Seller
			if err := im.event.Insert(c, evt); err != nil {
				return err
			}
			if _, err := im.vault.ReleaseAsset(c, a.ChainId, a.AssetContract, a.AssetId, a.Seller); err != nil {
				return err
			}
			return nil
		}

		paid, ok := new(big.Int).SetString(a.PaidNative, 10)
		if !ok {
			return domain.ErrInvalidNumberFormat
		}
		fee, err := decimal.NewFromString(a.FeePrice)
		if err != nil {
			return domain.ErrInvalidNumberFormat
		}

		// the fee share is converted at settlement with the same rounding
		// rule as bids, the seller receives the escrowed remainder
		feeNative := new(big.Int)
		if fee.Sign() > 0 {
			reading, err := im.pricefeed.GetLatestPrice(c, a.ChainId)
			if err != nil {
				return err
			}
			feeNative = requiredNative(fee, reading.Price)
			if feeNative.Cmp(paid) > 0 {
				feeNative = new(big.Int).Set(paid)
			}
		}
		sellerProceeds := new(big.Int).Sub(paid, feeNative)

		if feeNative.Sign() > 0 && !s.FeeRecipient.IsEmpty() {
			if err := im.balance.Credit(c, s.FeeRecipient, feeNative); err != nil {
				return err
			}
		}
		if sellerProceeds.Sign() > 0 {
			if err := im.balance.Credit(c, a.Seller, sellerProceeds); err != nil {
				return err
			}
		}

		evt.Account = a.HighestBidder
		evt.To = a.HighestBidder
		evt.Amount = a.HighestBid
		evt.AmountNative = paid.String()
		if err := im.event.Insert(c, evt); err != nil {
			return err
		}

		if _, err := im.vault.ReleaseAsset(c, a.ChainId, a.AssetContract, a.AssetId, a.HighestBidder); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if im.notifier != nil && a.HasBid() {
		im.notifier.NotifyAuctionSettled(c, auctionId, a.HighestBidder, a.HighestBid)
	}
	return nil
}

func (im *impl) EmergencyWithdraw(c ctx.Ctx, auctionId int64) error {
	release, err := im.acquireAuctionLock(c, auctionId)
	if err != nil {
		return err
	}
	defer release()

	a, err := im.auction.FindOne(c, auctionId)
	if err != nil {
		return err
	}

	switch {
	case a.IsTerminal():
		return domain.ErrAuctionAlreadySettled
	case a.Started:
		return domain.ErrAuctionAlreadyStarted
	case a.HasBid():
		return domain.ErrAuctionHasBids
	case time.Since(a.CreatedAt) < auction.EmergencyWithdrawDelay:
		return domain.ErrEmergencyDelayNotMet
	}

	return im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.auction.Patch(c, auctionId, &auction.Patchable{
			Canceled: ptr.Bool(true),
		}); err != nil {
			return err
		}
		evt := newEvent(auctionId, auction.EventTypeEmergencyWithdrawn)
		evt.To = a.Seller
		if err := im.event.Insert(c, evt); err != nil {
			return err
		}
		if _, err := im.vault.ReleaseAsset(c, a.ChainId, a.AssetContract, a.AssetId, a.Seller); err != nil {
			return err
		}
		return nil
	})
}

func (im *impl) Get(c ctx.Ctx, auctionId int64) (*auction.Auction, error) {
	return im.auction.FindOne(c, auctionId)
}

// GetMany returns one record per requested id, a zero record marks an
// unknown id so a single bad id cannot fail the whole batch.
func (im *impl) GetMany(c ctx.Ctx, auctionIds []int64) ([]*auction.Auction, error) {
	if len(auctionIds) > auction.MaxBatchSize {
		return nil, domain.ErrBatchTooLarge
	}

	found, err := im.auction.FindMany(c, auctionIds)
	if err != nil {
		return nil, err
	}

	byId := map[int64]*auction.Auction{}
	for _, a := range found {
		byId[a.AuctionId] = a
	}

	res := make([]*auction.Auction, 0, len(auctionIds))
	for _, id := range auctionIds {
		if a, ok := byId[id]; ok {
			res = append(res, a)
		} else {
			res = append(res, &auction.Auction{})
		}
	}
	return res, nil
}

func (im *impl) Count(c ctx.Ctx) (int, error) {
	return im.auction.Count(c)
}

func (im *impl) GetEvents(c ctx.Ctx, auctionId int64) ([]*auction.Event, error) {
	if _, err := im.auction.FindOne(c, auctionId); err != nil {
		return nil, err
	}
	return im.event.FindAll(c, auctionId)
}
