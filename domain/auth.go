package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/nextswap/auction-api/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

type AuthUsecase interface {
	// GenerateNonce issues a short-lived nonce the caller must sign to prove
	// control of the address
	GenerateNonce(ctx ctx.Ctx, address Address) (int32, error)
	// SignToken validates the signature over the nonce message and issues an
	// access token
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
