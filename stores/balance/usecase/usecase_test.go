package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/balance"
	mockBalance "github.com/nextswap/auction-api/domain/balance/mocks"
	mockDomain "github.com/nextswap/auction-api/domain/mocks"
	mockVault "github.com/nextswap/auction-api/service/vault/mocks"
)

var mockCtx = bCtx.Background()

const account = domain.Address("0x2222222222222222222222222222222222222222")

type testsuite struct {
	suite.Suite
	repo    *mockBalance.Repo
	txn     *mockDomain.TxnRunner
	vault   *mockVault.Service
	subject *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.repo = &mockBalance.Repo{}
	t.txn = &mockDomain.TxnRunner{}
	t.vault = &mockVault.Service{}
	t.subject = &impl{
		repo:  t.repo,
		txn:   t.txn,
		vault: t.vault,
	}
	t.txn.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) },
	)
}

func (t *testsuite) TestGet() {
	t.repo.On("Get", mock.Anything, account).Return(&balance.Balance{
		Account: account,
		Amount:  "100",
	}, nil)

	b, err := t.subject.Get(mockCtx, account)
	t.NoError(err)
	t.Equal("100", b.Amount)
}

func (t *testsuite) TestDeposit() {
	t.repo.On("Credit", mock.Anything, account, big.NewInt(100)).Return(nil)

	t.NoError(t.subject.Deposit(mockCtx, account, big.NewInt(100)))
	t.Equal(domain.ErrInvalidAmount, t.subject.Deposit(mockCtx, account, big.NewInt(0)))
	t.Equal(domain.ErrInvalidAmount, t.subject.Deposit(mockCtx, account, nil))
}

func (t *testsuite) TestWithdraw() {
	amount := big.NewInt(100)
	t.repo.On("Debit", mock.Anything, account, amount).Return(nil)
	t.vault.On("PayNative", mock.Anything, domain.ChainId(1), account, amount).Return("0xtx", nil)

	err := t.subject.Withdraw(mockCtx, domain.ChainId(1), account, amount)
	t.NoError(err)
}

func (t *testsuite) TestWithdrawInsufficientBalance() {
	amount := big.NewInt(100)
	t.repo.On("Debit", mock.Anything, account, amount).Return(domain.ErrInsufficientBalance)

	err := t.subject.Withdraw(mockCtx, domain.ChainId(1), account, amount)
	t.Equal(domain.ErrInsufficientBalance, err)
	t.vault.AssertNotCalled(t.T(), "PayNative", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestWithdrawFailedPayoutAborts() {
	amount := big.NewInt(100)
	t.repo.On("Debit", mock.Anything, account, amount).Return(nil)
	t.vault.On("PayNative", mock.Anything, domain.ChainId(1), account, amount).Return("", domain.ErrInternalServerError)

	err := t.subject.Withdraw(mockCtx, domain.ChainId(1), account, amount)
	t.Error(err)
}

func (t *testsuite) TestWithdrawInvalidAmount() {
	t.Equal(domain.ErrInvalidAmount, t.subject.Withdraw(mockCtx, domain.ChainId(1), account, big.NewInt(-1)))
}
