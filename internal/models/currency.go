package models

import (
	"fmt"

	apperrors "fxledger/internal/errors"

	"github.com/shopspring/decimal"
)

// Currency is the stable index of a supported currency (0-7).
type Currency uint8

const (
	Euro Currency = iota
	Dollar
	Pound
	Yen
	Rupee
	Peso
	Franc
	Drachmas

	// NumCurrencies is the size of every balance vector and rate table
	NumCurrencies = 8

	// PivotCurrency is the reference currency all conversions route through
	PivotCurrency = Euro

	// NoCurrency marks journal fields that do not apply to an operation
	NoCurrency Currency = 0xFF
)

var currencyNames = [NumCurrencies]string{
	"Euro",
	"Dollar",
	"Pound",
	"Yen",
	"Rupee",
	"Peso",
	"Franc",
	"Drachmas",
}

// ParseCurrency resolves a currency by its case-sensitive name
func ParseCurrency(name string) (Currency, error) {
	for i, n := range currencyNames {
		if n == name {
			return Currency(i), nil
		}
	}
	return NoCurrency, apperrors.Wrap(apperrors.ValidationUnknownCurrency, "parse currency", fmt.Errorf("%q", name))
}

// CurrencyFromIndex validates a raw wire index
func CurrencyFromIndex(index int) (Currency, error) {
	if index < 0 || index >= NumCurrencies {
		return NoCurrency, apperrors.Wrap(apperrors.ValidationUnknownCurrency, "currency index", fmt.Errorf("%d", index))
	}
	return Currency(index), nil
}

// IsValid reports whether c is one of the eight supported currencies
func (c Currency) IsValid() bool {
	return c < NumCurrencies
}

func (c Currency) String() string {
	if c.IsValid() {
		return currencyNames[c]
	}
	if c == NoCurrency {
		return ""
	}
	return fmt.Sprintf("Currency(%d)", uint8(c))
}

// AllCurrencies returns the supported currencies in index order
func AllCurrencies() []Currency {
	out := make([]Currency, NumCurrencies)
	for i := range out {
		out[i] = Currency(i)
	}
	return out
}

// ExchangeRates holds one rate per currency, expressed as units of that
// currency per one unit of the pivot currency.
type ExchangeRates [NumCurrencies]decimal.Decimal

// DefaultExchangeRates returns the rate table the service starts with
func DefaultExchangeRates() ExchangeRates {
	return ExchangeRates{
		Euro:     decimal.RequireFromString("1.00"),
		Dollar:   decimal.RequireFromString("1.08"),
		Pound:    decimal.RequireFromString("0.85"),
		Yen:      decimal.RequireFromString("158.83"),
		Rupee:    decimal.RequireFromString("89.98"),
		Peso:     decimal.RequireFromString("166.38"),
		Franc:    decimal.RequireFromString("6.55"),
		Drachmas: decimal.RequireFromString("340.75"),
	}
}

// Validate checks every rate is positive and the pivot is exactly one
func (r ExchangeRates) Validate() error {
	for i, rate := range r {
		if !rate.IsPositive() {
			return fmt.Errorf("rate for %s must be positive, got %s", Currency(i), rate)
		}
	}
	if !r[PivotCurrency].Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("pivot rate must be 1, got %s", r[PivotCurrency])
	}
	return nil
}

// Equal compares rates numerically
func (r ExchangeRates) Equal(other ExchangeRates) bool {
	for i := range r {
		if !r[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
