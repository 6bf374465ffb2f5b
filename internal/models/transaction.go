package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a journal record
type TransactionKind uint8

const (
	TransactionExchange TransactionKind = iota + 1
	TransactionDeposit
	TransactionWithdraw
	TransactionCreateAccount
)

func (k TransactionKind) String() string {
	switch k {
	case TransactionExchange:
		return "EXCHANGE"
	case TransactionDeposit:
		return "DEPOSIT"
	case TransactionWithdraw:
		return "WITHDRAW"
	case TransactionCreateAccount:
		return "CREATE_ACCOUNT"
	default:
		return fmt.Sprintf("TransactionKind(%d)", uint8(k))
	}
}

// IsValid checks the kind against the known set
func (k TransactionKind) IsValid() bool {
	return k >= TransactionExchange && k <= TransactionCreateAccount
}

// TransactionRecord is an immutable journal entry for one committed mutation
type TransactionRecord struct {
	ID         uint64
	ClientID   uint32
	AccountID  uint32
	Kind       TransactionKind
	From       Currency
	To         Currency
	AmountFrom decimal.Decimal
	AmountTo   decimal.Decimal
	Rate       decimal.Decimal
	Timestamp  time.Time
}

// Equal reports structural equality
func (t TransactionRecord) Equal(other TransactionRecord) bool {
	return t.ID == other.ID &&
		t.ClientID == other.ClientID &&
		t.AccountID == other.AccountID &&
		t.Kind == other.Kind &&
		t.From == other.From &&
		t.To == other.To &&
		t.AmountFrom.Equal(other.AmountFrom) &&
		t.AmountTo.Equal(other.AmountTo) &&
		t.Rate.Equal(other.Rate) &&
		t.Timestamp.Equal(other.Timestamp)
}

// String renders the record the way the history command prints it
func (t TransactionRecord) String() string {
	ts := t.Timestamp.UTC().Format("2006-01-02 15:04:05")
	switch t.Kind {
	case TransactionExchange:
		return fmt.Sprintf("Transaction %d: %s - %s %s to %s %s (Rate: %s) at %s",
			t.ID, t.Kind, t.From, t.AmountFrom, t.To, t.AmountTo, t.Rate, ts)
	default:
		return fmt.Sprintf("Transaction %d: %s - %s %s on account %d at %s",
			t.ID, t.Kind, t.From, t.AmountFrom, t.AccountID, ts)
	}
}
