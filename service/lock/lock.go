package lock

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/service/redis"
)

// Service is a best-effort distributed mutex on top of redis SETNX. It guards
// state-changing auction operations so two requests cannot interleave their
// read-validate-write cycles on the same auction.
type Service interface {
	// Acquire takes the lock for key and returns a release func. Returns
	// domain.ErrOperationInProgress when someone else holds it.
	Acquire(c ctx.Ctx, key string, expire time.Duration) (func(), error)
}

type impl struct {
	redis redis.Service
}

func New(redis redis.Service) Service {
	return &impl{redis: redis}
}

func (im *impl) Acquire(c ctx.Ctx, key string, expire time.Duration) (func(), error) {
	err := im.redis.SetNX(c, key, []byte("1"), expire)
	if err == redis.ErrNotStored {
		return nil, domain.ErrOperationInProgress
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.SetNX failed")
		return nil, xerrors.Errorf("acquire lock: %w", err)
	}

	release := func() {
		if _, err := im.redis.Del(c, key); err != nil {
			c.WithField("err", err).WithField("key", key).Warn("release lock failed")
		}
	}
	return release, nil
}
