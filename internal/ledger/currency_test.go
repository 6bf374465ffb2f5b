package ledger

import (
	"testing"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyTable_Convert(t *testing.T) {
	table, err := NewCurrencyTable(models.DefaultExchangeRates())
	require.NoError(t, err)

	tests := []struct {
		name     string
		amount   string
		from, to models.Currency
		want     string
	}{
		{"pivot to pivot", "12.5", models.Euro, models.Euro, "12.5"},
		{"pivot to dollar", "10", models.Euro, models.Dollar, "10.8"},
		{"pound to pivot", "8.5", models.Pound, models.Euro, "10"},
		{"dollar to pound", "10.8", models.Dollar, models.Pound, "8.5"},
		{"same non pivot", "6.55", models.Franc, models.Franc, "6.55"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Convert(dec(tt.amount), tt.from, tt.to)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCurrencyTable_UnknownCurrency(t *testing.T) {
	table, err := NewCurrencyTable(models.DefaultExchangeRates())
	require.NoError(t, err)

	_, err = table.Convert(decimal.NewFromInt(1), models.Currency(8), models.Euro)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
	_, err = table.CrossRate(models.Euro, models.NoCurrency)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestCurrencyTable_CrossRate(t *testing.T) {
	table, err := NewCurrencyTable(models.DefaultExchangeRates())
	require.NoError(t, err)

	rate, err := table.CrossRate(models.Euro, models.Drachmas)
	require.NoError(t, err)
	assert.True(t, dec("340.75").Equal(rate))
}

func TestNewCurrencyTable_PivotMustBeOne(t *testing.T) {
	rates := models.DefaultExchangeRates()
	rates[models.Euro] = dec("2")
	_, err := NewCurrencyTable(rates)
	assert.Error(t, err)
}
