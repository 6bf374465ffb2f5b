package ledger

import (
	"fmt"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/models"

	"github.com/shopspring/decimal"
)

// CurrencyTable converts amounts between currencies through the pivot
type CurrencyTable struct {
	rates models.ExchangeRates
}

// NewCurrencyTable validates rates and wraps them in a table
func NewCurrencyTable(rates models.ExchangeRates) (*CurrencyTable, error) {
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("invalid exchange rates: %w", err)
	}
	return &CurrencyTable{rates: rates}, nil
}

// Rates returns a copy of the underlying rate table
func (t *CurrencyTable) Rates() models.ExchangeRates {
	return t.rates
}

// Convert converts amount from one currency into another
func (t *CurrencyTable) Convert(amount decimal.Decimal, from, to models.Currency) (decimal.Decimal, error) {
	return convert(t.rates, amount, from, to)
}

// CrossRate returns how many units of to one unit of from buys
func (t *CurrencyTable) CrossRate(from, to models.Currency) (decimal.Decimal, error) {
	return convert(t.rates, decimal.NewFromInt(1), from, to)
}

func convert(rates models.ExchangeRates, amount decimal.Decimal, from, to models.Currency) (decimal.Decimal, error) {
	if !from.IsValid() || !to.IsValid() {
		return decimal.Zero, apperrors.WithOp(apperrors.ValidationUnknownCurrency, "convert")
	}

	pivot := amount
	if from != models.PivotCurrency {
		pivot = amount.Div(rates[from])
	}

	if to == models.PivotCurrency {
		return pivot, nil
	}
	return pivot.Mul(rates[to]), nil
}
