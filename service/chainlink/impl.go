package chainlink

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nextswap/auction-api/base/abi"
	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/log"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/service/chain"
)

type impl struct {
	chainClient chain.Client
}

func New(chainClient chain.Client) Chainlink {
	return &impl{
		chainClient: chainClient,
	}
}

func (im *impl) GetLatestRoundData(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*RoundData, error) {
	feedAddr := common.HexToAddress(string(address))

	res, err := im.chainClient.Call(c, int32(chainId), feedAddr, nil, abi.ChainlinkFeedABI, "latestRoundData")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("chainClient.Call latestRoundData failed")
		return nil, err
	}

	dec, err := im.chainClient.Call(c, int32(chainId), feedAddr, nil, abi.ChainlinkFeedABI, "decimals")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("chainClient.Call decimals failed")
		return nil, err
	}

	return &RoundData{
		RoundId:   res[0].(*big.Int),
		Answer:    res[1].(*big.Int),
		StartedAt: res[2].(*big.Int),
		UpdatedAt: res[3].(*big.Int),
		Decimals:  dec[0].(uint8),
	}, nil
}
