package ledger

import (
	"slices"
	"testing"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type plainVerifier struct{}

func (plainVerifier) Verify(credential, password string) bool {
	return credential == password
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// LedgerTestSuite exercises the ledger store
type LedgerTestSuite struct {
	suite.Suite
	ledger *Ledger
	alice  uint32
}

func (s *LedgerTestSuite) SetupTest() {
	l, err := New(models.DefaultExchangeRates())
	s.Require().NoError(err)
	s.ledger = l

	s.alice, err = l.CreateUser("alice", "secret")
	s.Require().NoError(err)
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) balance(index int, c models.Currency) decimal.Decimal {
	accounts, err := s.ledger.Accounts(s.alice)
	s.Require().NoError(err)
	return accounts[index-1].Balances[c]
}

func (s *LedgerTestSuite) TestNew_RejectsInvalidRates() {
	rates := models.DefaultExchangeRates()
	rates[models.Yen] = decimal.Zero
	_, err := New(rates)
	s.Error(err)
}

func (s *LedgerTestSuite) TestCreateUser_AssignsSequentialIDs() {
	s.Equal(models.FirstClientID, s.alice)

	bob, err := s.ledger.CreateUser("bob", "pw")
	s.NoError(err)
	s.Equal(s.alice+1, bob)
	s.Equal(bob+1, s.ledger.NextClientID)
}

func (s *LedgerTestSuite) TestCreateUser_DuplicateUsername() {
	before := s.ledger.Clone()

	_, err := s.ledger.CreateUser("alice", "other")
	s.ErrorIs(err, apperrors.ErrDuplicateUsername)
	s.True(before.Equal(s.ledger))
}

func (s *LedgerTestSuite) TestCreateUser_UsernamesAreCaseSensitive() {
	_, err := s.ledger.CreateUser("Alice", "pw")
	s.NoError(err)
}

func (s *LedgerTestSuite) TestAuthenticate() {
	id, err := s.ledger.Authenticate("alice", "secret", plainVerifier{})
	s.NoError(err)
	s.Equal(s.alice, id)
}

func (s *LedgerTestSuite) TestAuthenticate_HidesWhichFieldIsWrong() {
	_, wrongPassword := s.ledger.Authenticate("alice", "nope", plainVerifier{})
	_, unknownUser := s.ledger.Authenticate("mallory", "secret", plainVerifier{})

	s.ErrorIs(wrongPassword, apperrors.ErrInvalidCredentials)
	s.ErrorIs(unknownUser, apperrors.ErrInvalidCredentials)
	s.Equal(wrongPassword.Error(), unknownUser.Error())
}

func (s *LedgerTestSuite) TestCreateAccount() {
	id, err := s.ledger.CreateAccount(s.alice, dec("100"), true)
	s.Require().NoError(err)
	s.Equal(models.FirstAccountID, id)

	accounts, err := s.ledger.Accounts(s.alice)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.True(accounts[0].Shared)
	s.True(dec("100").Equal(accounts[0].Balances[models.Euro]))
	s.True(dec("100").Equal(accounts[0].Total))

	records := slices.Collect(s.ledger.History(s.alice))
	s.Require().Len(records, 1)
	s.Equal(models.TransactionCreateAccount, records[0].Kind)
	s.Equal(models.NoCurrency, records[0].To)
}

func (s *LedgerTestSuite) TestCreateAccount_NegativeDeposit() {
	_, err := s.ledger.CreateAccount(s.alice, dec("-1"), false)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *LedgerTestSuite) TestCreateAccount_UnknownUser() {
	_, err := s.ledger.CreateAccount(99, decimal.Zero, false)
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *LedgerTestSuite) TestDepositAndWithdraw() {
	_, err := s.ledger.CreateAccount(s.alice, decimal.Zero, false)
	s.Require().NoError(err)

	_, err = s.ledger.Deposit(s.alice, 1, models.Dollar, dec("21.6"))
	s.Require().NoError(err)
	rec, err := s.ledger.Withdraw(s.alice, 1, models.Dollar, dec("10.8"))
	s.Require().NoError(err)

	s.Equal(models.TransactionWithdraw, rec.Kind)
	s.True(dec("10.8").Equal(s.balance(1, models.Dollar)))

	accounts, _ := s.ledger.Accounts(s.alice)
	s.True(dec("10").Equal(accounts[0].Total), accounts[0].Total.String())
}

func (s *LedgerTestSuite) TestWithdraw_InsufficientFundsLeavesStateUnchanged() {
	_, err := s.ledger.CreateAccount(s.alice, dec("5"), false)
	s.Require().NoError(err)
	before := s.ledger.Clone()

	_, err = s.ledger.Withdraw(s.alice, 1, models.Euro, dec("5.01"))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.True(before.Equal(s.ledger))
}

func (s *LedgerTestSuite) TestMove_RejectsNonPositiveAmounts() {
	_, err := s.ledger.CreateAccount(s.alice, dec("5"), false)
	s.Require().NoError(err)

	_, err = s.ledger.Deposit(s.alice, 1, models.Euro, decimal.Zero)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
	_, err = s.ledger.Withdraw(s.alice, 1, models.Euro, dec("-2"))
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *LedgerTestSuite) TestAmountsOutOfBoundsAreRejected() {
	_, err := s.ledger.CreateAccount(s.alice, dec("5"), false)
	s.Require().NoError(err)
	before := s.ledger.Clone()

	for _, raw := range []string{"1e300", "1e3", "0.000000001", "1000000000000000"} {
		s.Run(raw, func() {
			_, err := s.ledger.Deposit(s.alice, 1, models.Euro, dec(raw))
			s.ErrorIs(err, apperrors.ErrInvalidAmount)
			_, err = s.ledger.Exchange(s.alice, 1, models.Euro, models.Dollar, dec(raw))
			s.ErrorIs(err, apperrors.ErrInvalidAmount)
			_, err = s.ledger.CreateAccount(s.alice, dec(raw), false)
			s.ErrorIs(err, apperrors.ErrInvalidAmount)
			s.True(before.Equal(s.ledger))
		})
	}

	_, err = s.ledger.Deposit(s.alice, 1, models.Euro, dec("999999999999999.99999999"))
	s.NoError(err)
}

func (s *LedgerTestSuite) TestBalanceCannotExceedMaximum() {
	_, err := s.ledger.CreateAccount(s.alice, dec("0"), false)
	s.Require().NoError(err)
	s.Require().NoError(s.ledger.AdjustBalance(s.alice, 1, models.Euro, dec("999999999999999990")))
	before := s.ledger.Clone()

	_, err = s.ledger.Deposit(s.alice, 1, models.Euro, dec("10"))
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
	s.True(before.Equal(s.ledger))

	s.Require().NoError(s.ledger.AdjustBalance(s.alice, 1, models.Drachmas, dec("999999999999999990")))
	before = s.ledger.Clone()
	_, err = s.ledger.Exchange(s.alice, 1, models.Euro, models.Drachmas, dec("1"))
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
	s.True(before.Equal(s.ledger))
}

func (s *LedgerTestSuite) TestDeposit_InvalidIndex() {
	_, err := s.ledger.Deposit(s.alice, 1, models.Euro, dec("1"))
	s.ErrorIs(err, apperrors.ErrInvalidAccountIndex)
}

func (s *LedgerTestSuite) TestAdjustBalance_UnknownCurrency() {
	_, err := s.ledger.CreateAccount(s.alice, dec("5"), false)
	s.Require().NoError(err)

	err = s.ledger.AdjustBalance(s.alice, 1, models.Currency(8), dec("1"))
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (s *LedgerTestSuite) TestExchange_DollarToEuro() {
	_, err := s.ledger.CreateAccount(s.alice, decimal.Zero, false)
	s.Require().NoError(err)
	_, err = s.ledger.Deposit(s.alice, 1, models.Dollar, dec("10"))
	s.Require().NoError(err)

	result, err := s.ledger.Exchange(s.alice, 1, models.Dollar, models.Euro, dec("10"))
	s.Require().NoError(err)

	s.Equal("9.259259", result.Converted.StringFixed(6))
	s.True(s.balance(1, models.Dollar).IsZero())
	s.True(result.Converted.Equal(s.balance(1, models.Euro)))
	s.True(result.Rate.Equal(result.Converted.Div(dec("10"))))

	s.Equal(models.TransactionExchange, result.Record.Kind)
	s.Equal(models.Dollar, result.Record.From)
	s.Equal(models.Euro, result.Record.To)
}

func (s *LedgerTestSuite) TestExchange_EuroToYen() {
	_, err := s.ledger.CreateAccount(s.alice, dec("2"), false)
	s.Require().NoError(err)

	result, err := s.ledger.Exchange(s.alice, 1, models.Euro, models.Yen, dec("2"))
	s.Require().NoError(err)
	s.True(dec("317.66").Equal(result.Converted), result.Converted.String())
	s.True(dec("158.83").Equal(result.Rate), result.Rate.String())
}

func (s *LedgerTestSuite) TestExchange_RejectionsAreIdempotent() {
	_, err := s.ledger.CreateAccount(s.alice, dec("10"), false)
	s.Require().NoError(err)
	before := s.ledger.Clone()

	cases := []struct {
		name   string
		index  int
		from   models.Currency
		to     models.Currency
		amount decimal.Decimal
		want   error
	}{
		{"insufficient", 1, models.Euro, models.Dollar, dec("10.5"), apperrors.ErrInsufficientFunds},
		{"bad index", 2, models.Euro, models.Dollar, dec("1"), apperrors.ErrInvalidAccountIndex},
		{"zero index", 0, models.Euro, models.Dollar, dec("1"), apperrors.ErrInvalidAccountIndex},
		{"unknown from", 1, models.Currency(9), models.Dollar, dec("1"), apperrors.ErrUnknownCurrency},
		{"unknown to", 1, models.Euro, models.NoCurrency, dec("1"), apperrors.ErrUnknownCurrency},
		{"zero amount", 1, models.Euro, models.Dollar, decimal.Zero, apperrors.ErrInvalidAmount},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.ledger.Exchange(s.alice, tc.index, tc.from, tc.to, tc.amount)
			s.ErrorIs(err, tc.want)
			s.True(before.Equal(s.ledger))
		})
	}
}

func (s *LedgerTestSuite) TestDeleteAccount_ShiftsIndices() {
	for _, amt := range []string{"1", "2", "3"} {
		_, err := s.ledger.CreateAccount(s.alice, dec(amt), false)
		s.Require().NoError(err)
	}

	s.Require().NoError(s.ledger.DeleteAccount(s.alice, 2))

	accounts, err := s.ledger.Accounts(s.alice)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal(uint32(1), accounts[0].ID)
	s.Equal(uint32(3), accounts[1].ID)

	// index 2 now addresses the account that used to be third
	_, err = s.ledger.Deposit(s.alice, 2, models.Euro, dec("1"))
	s.NoError(err)
	s.True(dec("4").Equal(s.balance(2, models.Euro)))

	s.ErrorIs(s.ledger.DeleteAccount(s.alice, 3), apperrors.ErrInvalidAccountIndex)
}

func (s *LedgerTestSuite) TestDeleteAccount_IDsAreNotReused() {
	_, err := s.ledger.CreateAccount(s.alice, decimal.Zero, false)
	s.Require().NoError(err)
	s.Require().NoError(s.ledger.DeleteAccount(s.alice, 1))

	id, err := s.ledger.CreateAccount(s.alice, decimal.Zero, false)
	s.NoError(err)
	s.Equal(uint32(2), id)
}

func (s *LedgerTestSuite) TestClone_IsIndependent() {
	_, err := s.ledger.CreateAccount(s.alice, dec("10"), false)
	s.Require().NoError(err)

	clone := s.ledger.Clone()
	s.True(clone.Equal(s.ledger))

	_, err = clone.Deposit(s.alice, 1, models.Euro, dec("1"))
	s.Require().NoError(err)
	_, err = clone.CreateUser("bob", "pw")
	s.Require().NoError(err)

	s.False(clone.Equal(s.ledger))
	s.True(dec("10").Equal(s.balance(1, models.Euro)))
	s.Equal(1, s.ledger.Journal.Len())
	_, err = s.ledger.FindUser("bob")
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (s *LedgerTestSuite) TestHistory_OnlyOwnRecordsNewestFirst() {
	bob, err := s.ledger.CreateUser("bob", "pw")
	s.Require().NoError(err)
	_, err = s.ledger.CreateAccount(s.alice, dec("1"), false)
	s.Require().NoError(err)
	_, err = s.ledger.CreateAccount(bob, dec("1"), false)
	s.Require().NoError(err)
	_, err = s.ledger.Deposit(s.alice, 1, models.Pound, dec("3"))
	s.Require().NoError(err)

	records := slices.Collect(s.ledger.History(s.alice))
	s.Require().Len(records, 2)
	s.Equal(models.TransactionDeposit, records[0].Kind)
	s.Equal(models.TransactionCreateAccount, records[1].Kind)
	s.Greater(records[0].ID, records[1].ID)
	for _, r := range records {
		s.Equal(s.alice, r.ClientID)
	}
}

func (s *LedgerTestSuite) TestStats() {
	_, err := s.ledger.CreateAccount(s.alice, dec("1"), false)
	s.Require().NoError(err)
	_, err = s.ledger.CreateAccount(s.alice, dec("1"), false)
	s.Require().NoError(err)

	s.Equal(Stats{Users: 1, Accounts: 2, JournalEntries: 2}, s.ledger.Stats())
}
