package usecase

import (
	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/ptr"
	"github.com/nextswap/auction-api/base/validator"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/auction"
	"github.com/nextswap/auction-api/domain/settings"
)

type impl struct {
	repo  settings.Repo
	event auction.EventRepo
	txn   domain.TxnRunner
}

func New(repo settings.Repo, event auction.EventRepo, txn domain.TxnRunner) settings.Usecase {
	return &impl{
		repo:  repo,
		event: event,
		txn:   txn,
	}
}

func (im *impl) Get(c ctx.Ctx) (*settings.Settings, error) {
	return im.repo.Get(c)
}

func (im *impl) setPaused(c ctx.Ctx, paused bool, caller domain.Address, typ auction.EventType) error {
	return im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.repo.Patch(c, &settings.Patchable{Paused: ptr.Bool(paused)}); err != nil {
			return err
		}
		evt := newAdminEvent(typ, caller)
		return im.event.Insert(c, evt)
	})
}

func (im *impl) Pause(c ctx.Ctx, caller domain.Address) error {
	return im.setPaused(c, true, caller, auction.EventTypePaused)
}

func (im *impl) Unpause(c ctx.Ctx, caller domain.Address) error {
	return im.setPaused(c, false, caller, auction.EventTypeUnpaused)
}

func (im *impl) SetFeeRecipient(c ctx.Ctx, recipient domain.Address, caller domain.Address) error {
	if recipient.IsEmpty() || !validator.IsValidAddress(string(recipient)) {
		return domain.ErrInvalidAddress
	}
	return im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		lowered := recipient.ToLower()
		if err := im.repo.Patch(c, &settings.Patchable{FeeRecipient: &lowered}); err != nil {
			return err
		}
		evt := newAdminEvent(auction.EventTypeFeeRecipientUpdated, caller)
		evt.To = lowered
		return im.event.Insert(c, evt)
	})
}

func (im *impl) SetDataFeed(c ctx.Ctx, chainId domain.ChainId, feed domain.Address, caller domain.Address) error {
	if feed.IsEmpty() || !validator.IsValidAddress(string(feed)) {
		return domain.ErrInvalidAddress
	}
	if chainId <= 0 {
		return domain.ErrInvalidChainId
	}
	return im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.repo.SetDataFeed(c, chainId, feed); err != nil {
			return err
		}
		evt := newAdminEvent(auction.EventTypeDataFeedUpdated, caller)
		evt.To = feed.ToLower()
		return im.event.Insert(c, evt)
	})
}
