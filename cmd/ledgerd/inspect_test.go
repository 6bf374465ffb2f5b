package main

import (
	"bytes"
	"testing"

	"fxledger/internal/ledger"
	"fxledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.New(models.DefaultExchangeRates())
	require.NoError(t, err)

	id, err := l.CreateUser("alice", "secret")
	require.NoError(t, err)
	_, err = l.CreateAccount(id, decimal.NewFromInt(100), false)
	require.NoError(t, err)
	_, err = l.Exchange(id, 1, models.Euro, models.Yen, decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = l.Deposit(id, 1, models.Pound, decimal.NewFromInt(3))
	require.NoError(t, err)
	return l
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printSummary(&out, sampleLedger(t), models.Euro))

	text := out.String()
	assert.Contains(t, text, "users: 1  accounts: 1  journal entries: 3")
	assert.Contains(t, text, "PER 1 Euro")
	assert.Contains(t, text, "340.7500")
	assert.Contains(t, text, "alice")
}

func TestPrintSummary_CrossRates(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printSummary(&out, sampleLedger(t), models.Dollar))

	text := out.String()
	assert.Contains(t, text, "PER 1 Dollar")
	// 1 USD = 1/1.08 EUR
	assert.Contains(t, text, "0.9259")
}

func TestPrintHistory(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printHistory(&out, sampleLedger(t), "alice", 2))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "DEPOSIT")
	assert.Contains(t, string(lines[2]), "EXCHANGE")
}

func TestPrintHistory_UnknownUser(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, printHistory(&out, sampleLedger(t), "bob", 0))
}
