package session

import (
	"context"
	"fmt"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/protocol"
	"fxledger/internal/validation"
)

func (s *Session) handleAnonymous(ctx context.Context, op protocol.Opcode) (string, error) {
	switch op {
	case protocol.OpLogin:
		return s.login(ctx)
	case protocol.OpRegister:
		return "", s.register(ctx)
	case protocol.OpExit:
		return ReasonExit, nil
	default:
		return s.violation(ctx, op, fmt.Sprintf("unknown opcode %d", op)), nil
	}
}

// throttled reports and answers a rate limited authentication attempt
func (s *Session) throttled(op protocol.Opcode) (bool, error) {
	if s.limiter.Allow(s.host) {
		return false, nil
	}
	s.authEvent("rate_limited")
	s.record(s.audit.LogRateLimited(s.id, s.remote))
	return true, s.fail(op, apperrors.WithOp(apperrors.AuthRateLimited, op.Name(false)))
}

func (s *Session) login(ctx context.Context) (string, error) {
	raw, err := s.dec.ReadCredentials()
	if err != nil {
		return "", err
	}
	if limited, err := s.throttled(protocol.OpLogin); limited {
		return "", err
	}

	creds, err := validation.ParseCredentials(raw)
	var clientID uint32
	if err != nil {
		err = apperrors.Wrap(apperrors.AuthInvalidCredentials, "login", err)
	} else {
		clientID, err = s.ledger.Login(creds.Username, creds.Password)
	}

	if err != nil {
		s.failedLogins++
		s.authEvent("login_failed")
		s.record(s.audit.LogFailedLogin(s.id, creds.Username, s.remote, "invalid_credentials"))
		if err := s.fail(protocol.OpLogin, err); err != nil {
			return "", err
		}
		if s.cfg.MaxFailedAttempts > 0 && s.failedLogins >= s.cfg.MaxFailedAttempts {
			return ReasonTooManyFailures, nil
		}
		return "", nil
	}

	s.state = StateAuthenticated
	s.clientID = clientID
	s.failedLogins = 0
	s.authEvent("login_success")
	s.record(s.audit.LogLogin(s.id, clientID, creds.Username, s.remote))
	s.logger.InfoContext(ctx, "session authenticated")
	return "", s.reply(nil)
}

// register creates a user. The session stays anonymous.
func (s *Session) register(ctx context.Context) error {
	raw, err := s.dec.ReadCredentials()
	if err != nil {
		return err
	}
	if limited, err := s.throttled(protocol.OpRegister); limited {
		return err
	}

	creds, err := validation.ParseCredentials(raw)
	if err != nil {
		s.record(s.audit.LogFailedRegister(s.id, "", s.remote, "invalid_request"))
		return s.fail(protocol.OpRegister, apperrors.Wrap(apperrors.ValidationInvalidRequest, "register", err))
	}

	clientID, err := s.ledger.Register(ctx, creds.Username, creds.Password)
	if err != nil {
		s.record(s.audit.LogFailedRegister(s.id, creds.Username, s.remote, apperrors.GetErrorMessage(apperrors.CodeOf(err))))
		return s.fail(protocol.OpRegister, err)
	}

	s.authEvent("register")
	s.record(s.audit.LogRegister(s.id, clientID, creds.Username, s.remote))
	return s.reply(nil)
}
