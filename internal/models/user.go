package models

import (
	"slices"
)

const (
	// MaxUsernameLength and MaxPasswordLength bound the login fields
	MaxUsernameLength = 50
	MaxPasswordLength = 50

	// FirstClientID and FirstAccountID are the initial values of the id counters
	FirstClientID  uint32 = 1
	FirstAccountID uint32 = 1
)

// User is a registered client of the ledger and owner of its accounts
type User struct {
	ClientID uint32
	Username string
	// Credential is the stored form of the password as produced by the
	// configured credential verifier (a bcrypt hash or the plaintext).
	Credential    string
	Accounts      []CurrencyAccount
	NextAccountID uint32
}

// AccountAt returns a pointer to the account at the 1-based index
func (u *User) AccountAt(index int) (*CurrencyAccount, bool) {
	if index < 1 || index > len(u.Accounts) {
		return nil, false
	}
	return &u.Accounts[index-1], true
}

// Clone returns a deep copy of the user
func (u User) Clone() User {
	u.Accounts = slices.Clone(u.Accounts)
	return u
}

// Equal reports structural equality
func (u User) Equal(other User) bool {
	return u.ClientID == other.ClientID &&
		u.Username == other.Username &&
		u.Credential == other.Credential &&
		u.NextAccountID == other.NextAccountID &&
		slices.EqualFunc(u.Accounts, other.Accounts, CurrencyAccount.Equal)
}
