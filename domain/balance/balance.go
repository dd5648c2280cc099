package balance

import (
	"math/big"
	"time"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
)

// Balance is an account's withdrawable native credit in wei. Outbid refunds
// and settlement proceeds land here (pull payments) so a recipient that
// cannot receive funds can never block the bidding flow.
type Balance struct {
	Account   domain.Address `json:"account" bson:"account"`
	Amount    string         `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (b *Balance) AmountBigInt() *big.Int {
	if b.Amount == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(b.Amount, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

type Repo interface {
	Get(c ctx.Ctx, account domain.Address) (*Balance, error)
	// Credit adds amount to the account's balance, creating it if absent
	Credit(c ctx.Ctx, account domain.Address, amount *big.Int) error
	// Debit subtracts amount; fails with domain.ErrInsufficientBalance when the
	// balance cannot cover it
	Debit(c ctx.Ctx, account domain.Address, amount *big.Int) error
}

type Usecase interface {
	Get(c ctx.Ctx, account domain.Address) (*Balance, error)
	Deposit(c ctx.Ctx, account domain.Address, amount *big.Int) error
	Withdraw(c ctx.Ctx, chainId domain.ChainId, account domain.Address, amount *big.Int) error
}
