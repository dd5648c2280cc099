package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/nextswap/auction-api/base/ctx"
	bEthereum "github.com/nextswap/auction-api/base/ethereum"
	"github.com/nextswap/auction-api/base/log"
)

// defaultMaxInflight caps concurrent rpc requests per endpoint
const defaultMaxInflight = 100

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrNoSigner         = errors.New("no signer configured")
)

type ClientCfg struct {
	RpcUrls        map[int32]string
	ArchiveRpcUrls map[int32]string
	// SignerKey is the hex-encoded private key used to sign outgoing
	// transactions. Optional, read-only deployments leave it empty.
	SignerKey string
	// MaxInflight bounds concurrent rpc requests per endpoint. Zero picks
	// the default.
	MaxInflight int
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// Send signs and broadcasts a transaction to the given address with the
	// given value and calldata, returning the tx hash.
	Send(bCtx.Ctx, int32, common.Address, *big.Int, []byte) (string, error)
	// SignerAddress returns the address of the configured signer key.
	SignerAddress() (common.Address, error)
}

type clientImpl struct {
	clients        map[int32]*bEthereum.ThrottledClient
	archiveClients map[int32]*bEthereum.ThrottledClient
	signerKey      *ecdsa.PrivateKey
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	maxInflight := cfg.MaxInflight
	if maxInflight <= 0 {
		maxInflight = defaultMaxInflight
	}
	clients := make(map[int32]*bEthereum.ThrottledClient)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = bEthereum.NewThrottledClient(client, maxInflight)
	}
	archiveClients := make(map[int32]*bEthereum.ThrottledClient)
	for chainId, url := range cfg.ArchiveRpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		archiveClients[chainId] = bEthereum.NewThrottledClient(client, maxInflight)
	}
	var signerKey *ecdsa.PrivateKey
	if cfg.SignerKey != "" {
		key, err := crypto.HexToECDSA(cfg.SignerKey)
		if err != nil {
			ctx.WithField("err", err).Error("failed to parse signer key")
			return nil, err
		}
		signerKey = key
	}
	return &clientImpl{
		clients:        clients,
		archiveClients: archiveClients,
		signerKey:      signerKey,
	}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	var (
		client *bEthereum.ThrottledClient
		ok     bool
	)
	if blk == nil {
		client, ok = c.clients[chainId]
	} else {
		client, ok = c.archiveClients[chainId]
	}
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) SignerAddress() (common.Address, error) {
	if c.signerKey == nil {
		return common.Address{}, ErrNoSigner
	}
	return crypto.PubkeyToAddress(c.signerKey.PublicKey), nil
}

func (c *clientImpl) Send(ctx bCtx.Ctx, chainId int32, to common.Address, value *big.Int, data []byte) (string, error) {
	if c.signerKey == nil {
		return "", ErrNoSigner
	}
	client, ok := c.clients[chainId]
	if !ok {
		return "", ErrUnsupportedChain
	}

	from := crypto.PubkeyToAddress(c.signerKey.PublicKey)
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", err
	}
	msg := ethereum.CallMsg{From: from, To: &to, Value: value, Data: data}
	gasLimit, err := client.EstimateGas(ctx, msg)
	if err != nil {
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return "", err
	}

	tx := types.NewTransaction(nonce, to, value, gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), c.signerKey)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}
	if err := client.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"hash": signedTx.Hash().Hex(),
		}).Error("client.SendTransaction failed")
		return "", err
	}
	return signedTx.Hash().Hex(), nil
}
