package domain

import (
	"math/big"
	"strings"

	"github.com/nextswap/auction-api/base/ctx"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, bool) {
	return new(big.Int).SetString(string(i), 10)
}

type BlockNumber uint64

type TxHash string

// Table is a mongo collection name
type Table string

const (
	TableAuctions      Table = "auctions"
	TableAuctionEvents Table = "auctionEvents"
	TableBalances      Table = "balances"
	TableSettings      Table = "settings"
	TableCounters      Table = "counters"
)

// TxnRunner runs fn inside a single mongo transaction. Satisfied by query.Mongo.
type TxnRunner interface {
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}
