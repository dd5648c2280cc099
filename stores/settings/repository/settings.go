package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/settings"
	"github.com/nextswap/auction-api/service/query"
)

// the settings collection holds a single document
var selector = bson.M{"singleton": true}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) settings.Repo {
	return &impl{q}
}

func (im *impl) Get(c ctx.Ctx) (*settings.Settings, error) {
	res := &settings.Settings{}
	if err := im.q.FindOne(c, domain.TableSettings, selector, res); err == query.ErrNotFound {
		return &settings.Settings{DataFeeds: map[string]domain.Address{}}, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	if res.DataFeeds == nil {
		res.DataFeeds = map[string]domain.Address{}
	}
	return res, nil
}

func (im *impl) Patch(c ctx.Ctx, p *settings.Patchable) error {
	now := time.Now()
	p.UpdatedAt = &now
	update, err := bson.Marshal(p)
	if err != nil {
		return err
	}
	setter := bson.M{}
	if err := bson.Unmarshal(update, &setter); err != nil {
		return err
	}
	setter["singleton"] = true
	if err := im.q.CustomPatch(c, domain.TableSettings, selector, bson.M{"$set": setter}, true); err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) SetDataFeed(c ctx.Ctx, chainId domain.ChainId, feed domain.Address) error {
	setter := bson.M{
		fmt.Sprintf("dataFeeds.%d", chainId): feed.ToLower(),
		"updatedAt":                          time.Now(),
		"singleton":                          true,
	}
	if err := im.q.CustomPatch(c, domain.TableSettings, selector, bson.M{"$set": setter}, true); err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
