package repository

import (
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/log"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/balance"
	"github.com/nextswap/auction-api/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) balance.Repo {
	return &impl{q}
}

func (im *impl) Get(c ctx.Ctx, account domain.Address) (*balance.Balance, error) {
	res := &balance.Balance{}
	qry := bson.M{"account": account.ToLower()}
	if err := im.q.FindOne(c, domain.TableBalances, qry, res); err == query.ErrNotFound {
		return &balance.Balance{Account: account.ToLower(), Amount: "0"}, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

// Credit and Debit read-modify-write the amount. Callers wrap them in a
// transaction when the adjustment must be atomic with other writes.
func (im *impl) Credit(c ctx.Ctx, account domain.Address, amount *big.Int) error {
	cur, err := im.Get(c, account)
	if err != nil {
		return err
	}
	next := new(big.Int).Add(cur.AmountBigInt(), amount)
	return im.store(c, account, next)
}

func (im *impl) Debit(c ctx.Ctx, account domain.Address, amount *big.Int) error {
	cur, err := im.Get(c, account)
	if err != nil {
		return err
	}
	next := new(big.Int).Sub(cur.AmountBigInt(), amount)
	if next.Sign() < 0 {
		return domain.ErrInsufficientBalance
	}
	return im.store(c, account, next)
}

func (im *impl) store(c ctx.Ctx, account domain.Address, amount *big.Int) error {
	slr := bson.M{"account": account.ToLower()}
	update := &balance.Balance{
		Account:   account.ToLower(),
		Amount:    amount.String(),
		UpdatedAt: time.Now(),
	}
	if err := im.q.Upsert(c, domain.TableBalances, slr, update); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
