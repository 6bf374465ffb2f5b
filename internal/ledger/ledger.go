// Package ledger holds the in-memory account model: users, their
// multi-currency accounts, the exchange rate table and the transaction journal.
//
// A Ledger is not safe for concurrent mutation. Callers serialize writers
// and treat committed values as immutable (see services.LedgerService).
package ledger

import (
	"iter"
	"maps"
	"slices"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/models"

	"github.com/shopspring/decimal"
)

// CredentialVerifier compares a stored credential with a presented password
type CredentialVerifier interface {
	Verify(credential, password string) bool
}

// ExchangeResult describes a committed exchange
type ExchangeResult struct {
	Converted decimal.Decimal
	Rate      decimal.Decimal
	Record    models.TransactionRecord
}

// Ledger is the aggregate root: users, rates and journal
type Ledger struct {
	Users        []models.User
	NextClientID uint32
	Journal      Journal

	table  *CurrencyTable
	byName map[string]int
}

// New creates an empty ledger using rates
func New(rates models.ExchangeRates) (*Ledger, error) {
	table, err := NewCurrencyTable(rates)
	if err != nil {
		return nil, err
	}
	return &Ledger{
		NextClientID: models.FirstClientID,
		Journal:      NewJournal(),
		table:        table,
		byName:       make(map[string]int),
	}, nil
}

// Rates returns the exchange rate table
func (l *Ledger) Rates() models.ExchangeRates {
	return l.table.Rates()
}

// Currencies returns the currency table
func (l *Ledger) Currencies() *CurrencyTable {
	return l.table
}

// FindUser returns the position of username in Users
func (l *Ledger) FindUser(username string) (int, error) {
	idx, ok := l.byName[username]
	if !ok {
		return -1, apperrors.WithOp(apperrors.AccountUserNotFound, "find user")
	}
	return idx, nil
}

// Authenticate checks credentials. Unknown users and wrong passwords fail
// identically.
func (l *Ledger) Authenticate(username, password string, verifier CredentialVerifier) (uint32, error) {
	idx, err := l.FindUser(username)
	if err != nil {
		return 0, apperrors.WithOp(apperrors.AuthInvalidCredentials, "authenticate")
	}
	user := &l.Users[idx]
	if !verifier.Verify(user.Credential, password) {
		return 0, apperrors.WithOp(apperrors.AuthInvalidCredentials, "authenticate")
	}
	return user.ClientID, nil
}

// CreateUser registers username with an already-derived credential
func (l *Ledger) CreateUser(username, credential string) (uint32, error) {
	if _, exists := l.byName[username]; exists {
		return 0, apperrors.WithOp(apperrors.AuthDuplicateUsername, "create user")
	}

	id := l.NextClientID
	l.NextClientID++
	l.Users = append(l.Users, models.User{
		ClientID:      id,
		Username:      username,
		Credential:    credential,
		NextAccountID: models.FirstAccountID,
	})
	l.byName[username] = len(l.Users) - 1
	return id, nil
}

// User returns a copy of the user with clientID
func (l *Ledger) User(clientID uint32) (models.User, error) {
	u, err := l.user(clientID)
	if err != nil {
		return models.User{}, err
	}
	return u.Clone(), nil
}

// Accounts returns a copy of the accounts of clientID in display order
func (l *Ledger) Accounts(clientID uint32) ([]models.CurrencyAccount, error) {
	u, err := l.user(clientID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(u.Accounts), nil
}

// History iterates the journal records of clientID, most recent first
func (l *Ledger) History(clientID uint32) iter.Seq[models.TransactionRecord] {
	return l.Journal.QueryByClient(clientID)
}

// user finds a user by id. Users are appended with increasing client ids
// and never removed, so the slice is sorted by ClientID.
func (l *Ledger) user(clientID uint32) (*models.User, error) {
	idx, found := slices.BinarySearchFunc(l.Users, clientID, func(u models.User, id uint32) int {
		switch {
		case u.ClientID < id:
			return -1
		case u.ClientID > id:
			return 1
		default:
			return 0
		}
	})
	if !found {
		return nil, apperrors.WithOp(apperrors.AccountUserNotFound, "lookup user")
	}
	return &l.Users[idx], nil
}

func (l *Ledger) account(clientID uint32, index int) (*models.User, *models.CurrencyAccount, error) {
	u, err := l.user(clientID)
	if err != nil {
		return nil, nil, err
	}
	acct, ok := u.AccountAt(index)
	if !ok {
		return nil, nil, apperrors.WithOp(apperrors.AccountInvalidIndex, "lookup account")
	}
	return u, acct, nil
}

// CreateAccount opens an account holding initialDeposit in the pivot currency
func (l *Ledger) CreateAccount(clientID uint32, initialDeposit decimal.Decimal, shared bool) (uint32, error) {
	if initialDeposit.IsNegative() || !models.AmountInBounds(initialDeposit) {
		return 0, apperrors.WithOp(apperrors.ValidationInvalidAmount, "create account")
	}
	u, err := l.user(clientID)
	if err != nil {
		return 0, err
	}

	acct := models.CurrencyAccount{
		ID:     u.NextAccountID,
		Shared: shared,
	}
	acct.Balances[models.PivotCurrency] = initialDeposit
	acct.Recalculate(l.table.rates)

	u.NextAccountID++
	u.Accounts = append(u.Accounts, acct)

	l.Journal.Append(models.TransactionRecord{
		ClientID:   clientID,
		AccountID:  acct.ID,
		Kind:       models.TransactionCreateAccount,
		From:       models.PivotCurrency,
		To:         models.NoCurrency,
		AmountFrom: initialDeposit,
	})
	return acct.ID, nil
}

// DeleteAccount removes the account at the 1-based index. Remaining accounts
// keep their relative order and ids.
func (l *Ledger) DeleteAccount(clientID uint32, index int) error {
	u, _, err := l.account(clientID, index)
	if err != nil {
		return err
	}
	u.Accounts = slices.Delete(u.Accounts, index-1, index)
	return nil
}

// AdjustBalance adds delta to one currency of an account. It refuses any
// change that would leave the balance below zero or above the storable maximum.
func (l *Ledger) AdjustBalance(clientID uint32, index int, currency models.Currency, delta decimal.Decimal) error {
	if !currency.IsValid() {
		return apperrors.WithOp(apperrors.ValidationUnknownCurrency, "adjust balance")
	}
	_, acct, err := l.account(clientID, index)
	if err != nil {
		return err
	}

	next := acct.Balances[currency].Add(delta)
	if next.IsNegative() {
		return apperrors.WithOp(apperrors.AccountInsufficientFunds, "adjust balance")
	}
	if !models.BalanceInBounds(next) {
		return apperrors.WithOp(apperrors.ValidationInvalidAmount, "adjust balance")
	}
	acct.Balances[currency] = next
	acct.Recalculate(l.table.rates)
	return nil
}

// Deposit credits a positive amount and journals it
func (l *Ledger) Deposit(clientID uint32, index int, currency models.Currency, amount decimal.Decimal) (models.TransactionRecord, error) {
	return l.move(clientID, index, currency, amount, models.TransactionDeposit)
}

// Withdraw debits a positive amount and journals it
func (l *Ledger) Withdraw(clientID uint32, index int, currency models.Currency, amount decimal.Decimal) (models.TransactionRecord, error) {
	return l.move(clientID, index, currency, amount, models.TransactionWithdraw)
}

func (l *Ledger) move(clientID uint32, index int, currency models.Currency, amount decimal.Decimal, kind models.TransactionKind) (models.TransactionRecord, error) {
	if !amount.IsPositive() || !models.AmountInBounds(amount) {
		return models.TransactionRecord{}, apperrors.WithOp(apperrors.ValidationInvalidAmount, kind.String())
	}

	delta := amount
	if kind == models.TransactionWithdraw {
		delta = amount.Neg()
	}
	if err := l.AdjustBalance(clientID, index, currency, delta); err != nil {
		return models.TransactionRecord{}, err
	}

	_, acct, _ := l.account(clientID, index)
	return l.Journal.Append(models.TransactionRecord{
		ClientID:   clientID,
		AccountID:  acct.ID,
		Kind:       kind,
		From:       currency,
		To:         models.NoCurrency,
		AmountFrom: amount,
	}), nil
}

// Exchange moves amount out of one currency of an account and the converted
// value into another. Either both legs apply or neither does.
func (l *Ledger) Exchange(clientID uint32, index int, from, to models.Currency, amount decimal.Decimal) (ExchangeResult, error) {
	if !from.IsValid() || !to.IsValid() {
		return ExchangeResult{}, apperrors.WithOp(apperrors.ValidationUnknownCurrency, "exchange")
	}
	if !amount.IsPositive() || !models.AmountInBounds(amount) {
		return ExchangeResult{}, apperrors.WithOp(apperrors.ValidationInvalidAmount, "exchange")
	}
	_, acct, err := l.account(clientID, index)
	if err != nil {
		return ExchangeResult{}, err
	}
	if !acct.CanDebit(from, amount) {
		return ExchangeResult{}, apperrors.WithOp(apperrors.AccountInsufficientFunds, "exchange")
	}

	converted, err := l.table.Convert(amount, from, to)
	if err != nil {
		return ExchangeResult{}, err
	}

	// CanDebit keeps the debit leg non-negative and converted is positive
	balances := acct.Balances
	balances[from] = balances[from].Sub(amount)
	balances[to] = balances[to].Add(converted)
	if !models.BalanceInBounds(balances[to]) {
		return ExchangeResult{}, apperrors.WithOp(apperrors.ValidationInvalidAmount, "exchange")
	}
	acct.Balances = balances
	acct.Recalculate(l.table.rates)

	rate := converted.Div(amount)
	record := l.Journal.Append(models.TransactionRecord{
		ClientID:   clientID,
		AccountID:  acct.ID,
		Kind:       models.TransactionExchange,
		From:       from,
		To:         to,
		AmountFrom: amount,
		AmountTo:   converted,
		Rate:       rate,
	})
	return ExchangeResult{Converted: converted, Rate: rate, Record: record}, nil
}

// Clone returns a deep copy that can be mutated without affecting l
func (l *Ledger) Clone() *Ledger {
	users := make([]models.User, len(l.Users))
	for i := range l.Users {
		users[i] = l.Users[i].Clone()
	}
	return &Ledger{
		Users:        users,
		NextClientID: l.NextClientID,
		Journal:      l.Journal,
		table:        l.table,
		byName:       maps.Clone(l.byName),
	}
}

// Equal reports structural equality over users, accounts, balances, rates
// and journal
func (l *Ledger) Equal(other *Ledger) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.NextClientID == other.NextClientID &&
		l.Rates().Equal(other.Rates()) &&
		slices.EqualFunc(l.Users, other.Users, models.User.Equal) &&
		l.Journal.Equal(other.Journal)
}

// Stats summarises the ledger for health and inspection output
type Stats struct {
	Users          int
	Accounts       int
	JournalEntries int
}

// Stats counts users, accounts and journal records
func (l *Ledger) Stats() Stats {
	s := Stats{Users: len(l.Users), JournalEntries: l.Journal.Len()}
	for i := range l.Users {
		s.Accounts += len(l.Users[i].Accounts)
	}
	return s
}

func (l *Ledger) reindex() {
	l.byName = make(map[string]int, len(l.Users))
	for i := range l.Users {
		l.byName[l.Users[i].Username] = i
	}
}
