package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyAccount_Recalculate(t *testing.T) {
	rates := DefaultExchangeRates()
	acct := CurrencyAccount{ID: 1}
	acct.Balances[Euro] = decimal.NewFromInt(100)
	acct.Balances[Dollar] = decimal.RequireFromString("10.8")
	acct.Balances[Pound] = decimal.RequireFromString("8.5")

	acct.Recalculate(rates)

	// 100 EUR + 10.8 USD (10 EUR) + 8.5 GBP (10 EUR)
	assert.True(t, decimal.NewFromInt(120).Equal(acct.Total), acct.Total.String())
}

func TestCurrencyAccount_RecalculateEmpty(t *testing.T) {
	acct := CurrencyAccount{Total: decimal.NewFromInt(5)}
	acct.Recalculate(DefaultExchangeRates())
	assert.True(t, acct.Total.IsZero())
}

func TestCurrencyAccount_CanDebit(t *testing.T) {
	acct := CurrencyAccount{}
	acct.Balances[Yen] = decimal.NewFromInt(50)

	assert.True(t, acct.CanDebit(Yen, decimal.NewFromInt(50)))
	assert.False(t, acct.CanDebit(Yen, decimal.NewFromInt(51)))
	assert.False(t, acct.CanDebit(NoCurrency, decimal.Zero))
	assert.True(t, acct.Balance(NoCurrency).IsZero())
}

func TestBalances_HasNegative(t *testing.T) {
	var b Balances
	assert.False(t, b.HasNegative())

	b[Franc] = decimal.NewFromInt(-1)
	assert.True(t, b.HasNegative())
}

func TestUser_AccountAtAndClone(t *testing.T) {
	u := User{
		ClientID: 3,
		Username: "alice",
		Accounts: []CurrencyAccount{{ID: 1}, {ID: 2}},
	}

	acct, ok := u.AccountAt(2)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), acct.ID)

	_, ok = u.AccountAt(0)
	assert.False(t, ok)
	_, ok = u.AccountAt(3)
	assert.False(t, ok)

	clone := u.Clone()
	clone.Accounts[0].Shared = true
	assert.False(t, u.Accounts[0].Shared)
	assert.False(t, u.Equal(clone))

	clone.Accounts[0].Shared = false
	assert.True(t, u.Equal(clone))
}

func TestAmountInBounds(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"0.00000001", true},
		{"999999999999999.99999999", true},
		{"0.000000001", false},
		{"1000000000000000", false},
		{"1e3", false},
		{"1e300", false},
		{"-5.5", true},
		{"0e5", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInBounds(decimal.RequireFromString(tt.input)))
		})
	}
	assert.True(t, AmountInBounds(decimal.Zero))
}

func TestBalanceInBounds(t *testing.T) {
	assert.True(t, BalanceInBounds(decimal.RequireFromString("999999999999999999.999")))
	assert.False(t, BalanceInBounds(decimal.RequireFromString("1000000000000000000")))
}
