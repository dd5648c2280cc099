package usecase

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/ethereum"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/keys"
	"github.com/nextswap/auction-api/service/redis"
)

const nonceTtl = 10 * time.Minute

type impl struct {
	jwtSecret    []byte
	signatureMsg string
	redis        redis.Service
}

func New(jwtSecret string, signatureMsg string, redis redis.Service) domain.AuthUsecase {
	return &impl{
		jwtSecret:    []byte(jwtSecret),
		signatureMsg: signatureMsg,
		redis:        redis,
	}
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxAuthNonce, address.ToLowerStr())
}

func (im *impl) GenerateNonce(c ctx.Ctx, address domain.Address) (int32, error) {
	nonce := rand.Int31()
	if err := im.redis.Set(c, nonceKey(address), []byte(strconv.Itoa(int(nonce))), nonceTtl); err != nil {
		c.WithField("err", err).Error("redis.Set failed")
		return 0, err
	}
	return nonce, nil
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	nonce, err := im.redis.Get(c, nonceKey(address))
	if err == redis.ErrNotFound {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		c.WithField("err", err).Error("redis.Get failed")
		return "", err
	}

	// nonce is single use whether the signature checks out or not
	defer im.redis.Del(c, nonceKey(address))

	msg := []byte(fmt.Sprintf(im.signatureMsg, string(nonce)))
	if isValid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		c.WithField("err", err).Error("ValidateMsgSignature failed")
		return "", err
	} else if !isValid {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", err
}
