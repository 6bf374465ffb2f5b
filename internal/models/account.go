package models

import (
	"github.com/shopspring/decimal"
)

const (
	// MaxAmountScale is the most fractional digits a client amount may carry
	MaxAmountScale = 8
	// MaxAmountDigits is the most integer digits a client amount may carry
	MaxAmountDigits = 15
	// MaxBalanceDigits bounds the integer part of every stored balance. With
	// the scales above every balance and total stays far below the 255
	// characters a wire decimal can hold.
	MaxBalanceDigits = 18
)

var (
	maxAmount  = decimal.New(1, MaxAmountDigits)
	maxBalance = decimal.New(1, MaxBalanceDigits)
)

// AmountInBounds reports whether d is a plain decimal (no positive exponent)
// with at most MaxAmountScale fractional and MaxAmountDigits integer digits
func AmountInBounds(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := d.Exponent()
	return exp <= 0 && exp >= -MaxAmountScale && d.Abs().LessThan(maxAmount)
}

// BalanceInBounds reports whether a balance is below the storable maximum
func BalanceInBounds(d decimal.Decimal) bool {
	return d.Abs().LessThan(maxBalance)
}

// Balances is the per-currency holding of an account, keyed by Currency
type Balances [NumCurrencies]decimal.Decimal

// Equal compares balances numerically
func (b Balances) Equal(other Balances) bool {
	for i := range b {
		if !b[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// HasNegative reports whether any component is below zero
func (b Balances) HasNegative() bool {
	for _, v := range b {
		if v.IsNegative() {
			return true
		}
	}
	return false
}

// CurrencyAccount is a multi-currency account owned by exactly one user
type CurrencyAccount struct {
	ID       uint32
	Shared   bool
	Balances Balances
	// Total is the sum of Balances converted to the pivot currency. It is a
	// cached projection and must be refreshed with Recalculate after any change.
	Total decimal.Decimal
}

// Balance returns the holding in currency c, or zero for an invalid index
func (a *CurrencyAccount) Balance(c Currency) decimal.Decimal {
	if !c.IsValid() {
		return decimal.Zero
	}
	return a.Balances[c]
}

// CanDebit checks if amount can be taken from currency c without going negative
func (a *CurrencyAccount) CanDebit(c Currency, amount decimal.Decimal) bool {
	return c.IsValid() && a.Balances[c].GreaterThanOrEqual(amount)
}

// Recalculate refreshes Total from the balances using rates
func (a *CurrencyAccount) Recalculate(rates ExchangeRates) {
	total := decimal.Zero
	for i, v := range a.Balances {
		if v.IsZero() {
			continue
		}
		if Currency(i) == PivotCurrency {
			total = total.Add(v)
			continue
		}
		total = total.Add(v.Div(rates[i]))
	}
	a.Total = total
}

// Equal reports structural equality
func (a CurrencyAccount) Equal(other CurrencyAccount) bool {
	return a.ID == other.ID &&
		a.Shared == other.Shared &&
		a.Balances.Equal(other.Balances) &&
		a.Total.Equal(other.Total)
}
