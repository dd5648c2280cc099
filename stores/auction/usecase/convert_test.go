package usecase

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRequiredNative(t *testing.T) {
	cases := []struct {
		amount string
		price  string
		want   string
	}{
		// even division
		{"100", "2000", "50000000000000000"},
		{"1", "1", "1000000000000000000"},
		{"0.5", "2000", "250000000000000"},
		// 100 / 3000 does not terminate, rounds up
		{"100", "3000", "33333333333333334"},
		{"1", "3", "333333333333333334"},
		// fractional price from an 8 decimal feed
		{"15", "1234.56", "12150077760497668"},
		{"0", "2000", "0"},
	}
	for _, c := range cases {
		amount := decimal.RequireFromString(c.amount)
		price := decimal.RequireFromString(c.price)
		want, ok := new(big.Int).SetString(c.want, 10)
		require.True(t, ok)
		require.Equal(t, want, requiredNative(amount, price), "requiredNative(%s, %s)", c.amount, c.price)
	}
}

func TestRequiredNativeNeverUnderpays(t *testing.T) {
	// required * price must cover amount for awkward rates
	amount := decimal.RequireFromString("99.99")
	price := decimal.RequireFromString("1777.13")
	required := requiredNative(amount, price)

	paid := new(big.Rat).SetInt(required)
	paid.Mul(paid, price.Rat())
	paid.Quo(paid, new(big.Rat).SetInt(weiScale))
	require.True(t, paid.Cmp(amount.Rat()) >= 0)

	// one wei less falls short
	short := new(big.Rat).SetInt(new(big.Int).Sub(required, big.NewInt(1)))
	short.Mul(short, price.Rat())
	short.Quo(short, new(big.Rat).SetInt(weiScale))
	require.True(t, short.Cmp(amount.Rat()) < 0)
}

func TestFeePrice(t *testing.T) {
	require.Equal(t, "0.75", feePrice(decimal.NewFromInt(15), 5).String())
	require.Equal(t, "5", feePrice(decimal.NewFromInt(100), 5).String())
	require.Equal(t, "0", feePrice(decimal.NewFromInt(100), 0).String())
	require.Equal(t, "20", feePrice(decimal.NewFromInt(100), 20).String())
}
