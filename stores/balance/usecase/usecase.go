package usecase

import (
	"math/big"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/log"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/balance"
	"github.com/nextswap/auction-api/service/vault"
)

type impl struct {
	repo  balance.Repo
	txn   domain.TxnRunner
	vault vault.Service
}

func New(repo balance.Repo, txn domain.TxnRunner, vaultService vault.Service) balance.Usecase {
	return &impl{
		repo:  repo,
		txn:   txn,
		vault: vaultService,
	}
}

func (im *impl) Get(c ctx.Ctx, account domain.Address) (*balance.Balance, error) {
	return im.repo.Get(c, account)
}

func (im *impl) Deposit(c ctx.Ctx, account domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	return im.repo.Credit(c, account, amount)
}

// Withdraw debits the credit ledger and pays out from the custody account.
// The payout runs inside the transaction, a failed transfer rolls the debit
// back so funds are never lost.
func (im *impl) Withdraw(c ctx.Ctx, chainId domain.ChainId, account domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	return im.txn.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.repo.Debit(c, account, amount); err != nil {
			return err
		}
		txHash, err := im.vault.PayNative(c, chainId, account, amount)
		if err != nil {
			return err
		}
		c.WithFields(log.Fields{
			"account": account,
			"amount":  amount.String(),
			"txHash":  txHash,
		}).Info("withdraw paid out")
		return nil
	})
}
