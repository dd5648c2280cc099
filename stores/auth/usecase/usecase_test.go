package usecase_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	bCtx "github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/service/redis"
	mRedis "github.com/nextswap/auction-api/service/redis/mocks"
	"github.com/nextswap/auction-api/stores/auth/usecase"
)

const msgTemplate = "Welcome, please sign this one-time nonce to sign in: %s"

func TestSignAndParseToken(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()

	mockRedis := &mRedis.Service{}
	ctx := bCtx.Background()
	u := usecase.New("jwt-secret", msgTemplate, mockRedis)

	var storedNonce []byte
	mockRedis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		storedNonce = args.Get(2).([]byte)
	}).Return(nil).Once()

	nonce, err := u.GenerateNonce(ctx, address)
	assert.NoError(t, err)
	assert.Equal(t, strconv.Itoa(int(nonce)), string(storedNonce))

	msg := []byte(fmt.Sprintf(msgTemplate, string(storedNonce)))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	assert.NoError(t, err)

	mockRedis.On("Get", mock.Anything, mock.Anything).Return(storedNonce, nil).Once()
	mockRedis.On("Del", mock.Anything, mock.Anything).Return(1, nil).Once()

	tkn, err := u.SignToken(ctx, address, hexutil.Encode(sig))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, address.ToLowerStr(), ads)
}

func TestSignTokenWithoutNonce(t *testing.T) {
	mockRedis := &mRedis.Service{}
	ctx := bCtx.Background()
	u := usecase.New("jwt-secret", msgTemplate, mockRedis)

	mockRedis.On("Get", mock.Anything, mock.Anything).Return(nil, redis.ErrNotFound).Once()

	_, err := u.SignToken(ctx, "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", "0x00")
	assert.Equal(t, domain.ErrInvalidNonce, err)
}

func TestSignTokenBadSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()

	mockRedis := &mRedis.Service{}
	ctx := bCtx.Background()
	u := usecase.New("jwt-secret", msgTemplate, mockRedis)

	// signature over a different nonce than the stored one
	msg := []byte(fmt.Sprintf(msgTemplate, "12345"))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	assert.NoError(t, err)

	mockRedis.On("Get", mock.Anything, mock.Anything).Return([]byte("54321"), nil).Once()
	mockRedis.On("Del", mock.Anything, mock.Anything).Return(1, nil).Once()

	_, err = u.SignToken(ctx, address, hexutil.Encode(sig))
	assert.Equal(t, domain.ErrInvalidSignature, err)
}
