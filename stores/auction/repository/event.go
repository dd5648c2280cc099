package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/auction"
	"github.com/nextswap/auction-api/service/query"
)

type eventImpl struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) auction.EventRepo {
	return &eventImpl{q}
}

func (im *eventImpl) Insert(c ctx.Ctx, e *auction.Event) error {
	if err := im.q.Insert(c, domain.TableAuctionEvents, e); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *eventImpl) FindAll(c ctx.Ctx, auctionId int64) ([]*auction.Event, error) {
	res := []*auction.Event{}
	qry := bson.M{"auctionId": auctionId}
	if err := im.q.Search(c, domain.TableAuctionEvents, 0, 0, "time", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
