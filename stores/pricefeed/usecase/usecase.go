package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/log"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/settings"
	"github.com/nextswap/auction-api/service/chainlink"
)

type Config struct {
	// MaxStaleness is how old a reading may be before it is rejected
	MaxStaleness time.Duration
	// MinPrice and MaxPrice are sanity bounds in reference currency
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		MaxStaleness: time.Hour,
		MinPrice:     decimal.NewFromInt(100),
		MaxPrice:     decimal.NewFromInt(100000),
	}
}

type impl struct {
	cfg       Config
	chainlink chainlink.Chainlink
	settings  settings.Repo
}

func New(cfg Config, chainlink chainlink.Chainlink, settings settings.Repo) domain.PriceFeedUsecase {
	return &impl{
		cfg:       cfg,
		chainlink: chainlink,
		settings:  settings,
	}
}

// GetLatestPrice pulls a fresh reading from the configured feed and validates
// it. Any validation failure aborts the calling operation, there is no
// fallback price.
func (im *impl) GetLatestPrice(c ctx.Ctx, chainId domain.ChainId) (*domain.PriceReading, error) {
	s, err := im.settings.Get(c)
	if err != nil {
		c.WithField("err", err).Error("settings.Get failed")
		return nil, err
	}
	feed, ok := s.DataFeed(chainId)
	if !ok || feed.IsEmpty() {
		return nil, domain.ErrNoPriceFeed
	}

	data, err := im.chainlink.GetLatestRoundData(c, chainId, feed)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"feed":    feed,
		}).Error("chainlink.GetLatestRoundData failed")
		return nil, err
	}

	if data.UpdatedAt.Sign() == 0 {
		return nil, domain.ErrOracleInvalidTimestamp
	}
	updatedAt := time.Unix(data.UpdatedAt.Int64(), 0)
	now := time.Now()
	if updatedAt.After(now) {
		return nil, domain.ErrOracleFutureTimestamp
	}
	if now.Sub(updatedAt) > im.cfg.MaxStaleness {
		return nil, domain.ErrOracleStaleData
	}
	if data.Answer.Sign() <= 0 {
		return nil, domain.ErrOracleInvalidPrice
	}

	price := decimal.NewFromBigInt(data.Answer, -int32(data.Decimals))
	if price.LessThan(im.cfg.MinPrice) || price.GreaterThan(im.cfg.MaxPrice) {
		return nil, domain.ErrOracleOutOfRange
	}

	return &domain.PriceReading{
		Price:     price,
		UpdatedAt: updatedAt,
		RoundId:   data.RoundId,
	}, nil
}
