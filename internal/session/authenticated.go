package session

import (
	"context"
	"fmt"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/models"
	"fxledger/internal/protocol"
	"fxledger/internal/validation"
)

func (s *Session) handleAuthenticated(ctx context.Context, op protocol.Opcode) (string, error) {
	switch op {
	case protocol.OpListAccounts:
		return "", s.listAccounts()
	case protocol.OpExchange:
		return "", s.exchange(ctx)
	case protocol.OpWithdraw, protocol.OpDeposit:
		return "", s.movement(ctx, op)
	case protocol.OpCreateAccount:
		return "", s.createAccount(ctx)
	case protocol.OpDeleteAccount:
		return "", s.deleteAccount(ctx)
	case protocol.OpSendRequestCoins, protocol.OpDeleteUser:
		return "", s.fail(op, apperrors.WithOp(apperrors.ProtocolNotImplemented, op.Name(true)))
	case protocol.OpHistory:
		return "", s.history()
	case protocol.OpLogout:
		s.logout()
		return ReasonLogout, nil
	default:
		return s.violation(ctx, op, fmt.Sprintf("unknown opcode %d", op)), nil
	}
}

func (s *Session) listAccounts() error {
	accounts, err := s.ledger.Accounts(s.clientID)
	if err != nil {
		return s.fail(protocol.OpListAccounts, err)
	}
	return s.reply(func(enc *protocol.Encoder) {
		enc.WriteUint32(uint32(len(accounts)))
		for i := range accounts {
			enc.WriteAccount(&accounts[i])
		}
	})
}

func (s *Session) history() error {
	records, err := s.ledger.History(s.clientID)
	if err != nil {
		return s.fail(protocol.OpHistory, err)
	}
	return s.reply(func(enc *protocol.Encoder) {
		enc.WriteUint32(uint32(len(records)))
		for i := range records {
			enc.WriteRecord(&records[i])
		}
	})
}

func (s *Session) exchange(ctx context.Context) error {
	req, err := s.dec.ReadExchange()
	if err != nil {
		return err
	}

	from, err := models.CurrencyFromIndex(int(req.From))
	if err != nil {
		return s.fail(protocol.OpExchange, err)
	}
	to, err := models.CurrencyFromIndex(int(req.To))
	if err != nil {
		return s.fail(protocol.OpExchange, err)
	}
	if err := validation.ValidateMovement(req.Amount); err != nil {
		return s.fail(protocol.OpExchange, apperrors.Wrap(apperrors.ValidationInvalidAmount, "exchange", err))
	}

	result, err := s.ledger.Exchange(ctx, s.clientID, int(req.Index), from, to, req.Amount)
	if err != nil {
		return s.fail(protocol.OpExchange, err)
	}
	return s.reply(func(enc *protocol.Encoder) {
		enc.WriteDecimal(result.Converted)
		enc.WriteDecimal(result.Rate)
	})
}

// movement handles Deposit and Withdraw, which share a payload
func (s *Session) movement(ctx context.Context, op protocol.Opcode) error {
	req, err := s.dec.ReadMovement()
	if err != nil {
		return err
	}

	currency, err := models.CurrencyFromIndex(int(req.Currency))
	if err != nil {
		return s.fail(op, err)
	}
	if err := validation.ValidateMovement(req.Amount); err != nil {
		return s.fail(op, apperrors.Wrap(apperrors.ValidationInvalidAmount, op.Name(true), err))
	}

	if op == protocol.OpDeposit {
		_, err = s.ledger.Deposit(ctx, s.clientID, int(req.Index), currency, req.Amount)
	} else {
		_, err = s.ledger.Withdraw(ctx, s.clientID, int(req.Index), currency, req.Amount)
	}
	if err != nil {
		return s.fail(op, err)
	}
	return s.reply(nil)
}

func (s *Session) createAccount(ctx context.Context) error {
	req, err := s.dec.ReadCreateAccount()
	if err != nil {
		return err
	}

	opening := validation.AccountOpening{InitialDeposit: req.InitialDeposit, Shared: req.Shared}
	if err := validation.ValidateAccountOpening(opening); err != nil {
		return s.fail(protocol.OpCreateAccount, apperrors.Wrap(apperrors.ValidationInvalidAmount, "create account", err))
	}

	accountID, err := s.ledger.CreateAccount(ctx, s.clientID, req.InitialDeposit, req.Shared)
	if err != nil {
		return s.fail(protocol.OpCreateAccount, err)
	}
	return s.reply(func(enc *protocol.Encoder) {
		enc.WriteUint32(accountID)
	})
}

func (s *Session) deleteAccount(ctx context.Context) error {
	index, err := s.dec.ReadIndex()
	if err != nil {
		return err
	}
	if err := s.ledger.DeleteAccount(ctx, s.clientID, int(index)); err != nil {
		return s.fail(protocol.OpDeleteAccount, err)
	}
	return s.reply(nil)
}

func (s *Session) logout() {
	s.authEvent("logout")
	s.record(s.audit.LogLogout(s.id, s.clientID, s.remote))
	s.countRequest(0)
}
