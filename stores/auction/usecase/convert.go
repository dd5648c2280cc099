package usecase

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// weiScale is the number of wei per native unit
var weiScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// requiredNative converts a reference-currency amount to wei at the given
// rate, rounding up so the payer never underpays.
//
//	requiredNative = ceil(amount * 1e18 / price)
func requiredNative(amount, price decimal.Decimal) *big.Int {
	a := amount.Rat()
	p := price.Rat()
	num := new(big.Int).Mul(a.Num(), p.Denom())
	num.Mul(num, weiScale)
	den := new(big.Int).Mul(a.Denom(), p.Num())
	return ceilDiv(num, den)
}

func ceilDiv(num, den *big.Int) *big.Int {
	q, r := new(big.Int).DivMod(num, den, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// feePrice is the platform cut of a bid in reference currency
func feePrice(amount decimal.Decimal, feePercent int32) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt32(feePercent)).Div(decimal.NewFromInt(100))
}
