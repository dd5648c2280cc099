package vault

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/log"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/service/chain"
	"github.com/nextswap/auction-api/service/chain/contract"
)

// Service is the custody account. Escrowed assets are held by the signer
// address of the chain client, released on settlement or cancelation, and
// native payouts for withdrawals are sent from the same account.
type Service interface {
	// Address returns the custody address assets must be transferred to
	Address() (domain.Address, error)
	// HoldsAsset reports whether the custody account currently owns the token
	HoldsAsset(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) (bool, error)
	// OwnsAsset reports whether account owns the token
	OwnsAsset(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, account domain.Address) (bool, error)
	// IsApproved reports whether the owner granted the custody account
	// transfer authority over the token
	IsApproved(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (bool, error)
	// TakeCustody pulls the token from its owner into custody
	TakeCustody(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, from domain.Address) (string, error)
	// ReleaseAsset transfers an escrowed token out of custody
	ReleaseAsset(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, to domain.Address) (string, error)
	// PayNative sends amount wei from the custody account
	PayNative(c bCtx.Ctx, chainId domain.ChainId, to domain.Address, amount *big.Int) (string, error)
}

type impl struct {
	chainClient chain.Client
	erc721      contract.Erc721Contract
}

func New(chainClient chain.Client, erc721 contract.Erc721Contract) Service {
	return &impl{
		chainClient: chainClient,
		erc721:      erc721,
	}
}

func (im *impl) Address() (domain.Address, error) {
	addr, err := im.chainClient.SignerAddress()
	if err != nil {
		return domain.EmptyAddress, err
	}
	return domain.Address(addr.Hex()).ToLower(), nil
}

func (im *impl) HoldsAsset(c bCtx.Ctx, chainId domain.ChainId, contractAddr domain.Address, tokenId domain.TokenId) (bool, error) {
	custody, err := im.Address()
	if err != nil {
		return false, err
	}
	id, ok := tokenId.ToBigInt()
	if !ok {
		return false, domain.ErrBadParamInput
	}
	owner, err := im.erc721.OwnerOf(c, int32(chainId), contractAddr.ToLowerStr(), id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"chainId":  chainId,
			"contract": contractAddr,
			"tokenId":  tokenId,
		}).Error("erc721.OwnerOf failed")
		return false, err
	}
	return custody.Equals(domain.Address(owner)), nil
}

func (im *impl) OwnsAsset(c bCtx.Ctx, chainId domain.ChainId, contractAddr domain.Address, tokenId domain.TokenId, account domain.Address) (bool, error) {
	id, ok := tokenId.ToBigInt()
	if !ok {
		return false, domain.ErrBadParamInput
	}
	owner, err := im.erc721.OwnerOf(c, int32(chainId), contractAddr.ToLowerStr(), id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"chainId":  chainId,
			"contract": contractAddr,
			"tokenId":  tokenId,
		}).Error("erc721.OwnerOf failed")
		return false, err
	}
	return account.Equals(domain.Address(owner)), nil
}

func (im *impl) IsApproved(c bCtx.Ctx, chainId domain.ChainId, contractAddr domain.Address, tokenId domain.TokenId, owner domain.Address) (bool, error) {
	custody, err := im.Address()
	if err != nil {
		return false, err
	}
	id, ok := tokenId.ToBigInt()
	if !ok {
		return false, domain.ErrBadParamInput
	}
	approved, err := im.erc721.GetApproved(c, int32(chainId), contractAddr.ToLowerStr(), id)
	if err != nil {
		c.WithField("err", err).Error("erc721.GetApproved failed")
		return false, err
	}
	if custody.Equals(domain.Address(approved)) {
		return true, nil
	}
	approvedForAll, err := im.erc721.IsApprovedForAll(c, int32(chainId), contractAddr.ToLowerStr(), owner.ToLowerStr(), custody.ToLowerStr())
	if err != nil {
		c.WithField("err", err).Error("erc721.IsApprovedForAll failed")
		return false, err
	}
	return approvedForAll, nil
}

func (im *impl) TakeCustody(c bCtx.Ctx, chainId domain.ChainId, contractAddr domain.Address, tokenId domain.TokenId, from domain.Address) (string, error) {
	custody, err := im.Address()
	if err != nil {
		return "", err
	}
	id, ok := tokenId.ToBigInt()
	if !ok {
		return "", domain.ErrBadParamInput
	}
	txHash, err := im.erc721.TransferFrom(c, int32(chainId), contractAddr.ToLowerStr(), from.ToLowerStr(), custody.ToLowerStr(), id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"chainId":  chainId,
			"contract": contractAddr,
			"tokenId":  tokenId,
			"from":     from,
		}).Error("erc721.TransferFrom failed")
		return "", err
	}
	return txHash, nil
}

func (im *impl) ReleaseAsset(c bCtx.Ctx, chainId domain.ChainId, contractAddr domain.Address, tokenId domain.TokenId, to domain.Address) (string, error) {
	custody, err := im.Address()
	if err != nil {
		return "", err
	}
	id, ok := tokenId.ToBigInt()
	if !ok {
		return "", domain.ErrBadParamInput
	}
	txHash, err := im.erc721.TransferFrom(c, int32(chainId), contractAddr.ToLowerStr(), custody.ToLowerStr(), to.ToLowerStr(), id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"chainId":  chainId,
			"contract": contractAddr,
			"tokenId":  tokenId,
			"to":       to,
		}).Error("erc721.TransferFrom failed")
		return "", err
	}
	return txHash, nil
}

func (im *impl) PayNative(c bCtx.Ctx, chainId domain.ChainId, to domain.Address, amount *big.Int) (string, error) {
	txHash, err := im.chainClient.Send(c, int32(chainId), common.HexToAddress(string(to)), amount, nil)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"to":      to,
			"amount":  amount.String(),
		}).Error("chainClient.Send failed")
		return "", err
	}
	return txHash, nil
}
