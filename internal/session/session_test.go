package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"fxledger/internal/config"
	apperrors "fxledger/internal/errors"
	"fxledger/internal/ledger"
	"fxledger/internal/models"
	"fxledger/internal/protocol"
	"fxledger/internal/repositories"
	"fxledger/internal/services"
	"fxledger/internal/services/service_mocks"
	"fxledger/internal/session"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type served struct {
	reason string
	err    error
}

type SessionTestSuite struct {
	suite.Suite
	ctx     context.Context
	ledger  *services.LedgerService
	metrics services.MetricsRecorderInterface
	limiter services.LoginLimiterInterface
	audit   services.AuditServiceInterface
	logger  *slog.Logger
	cfg     session.Config
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.metrics = services.NewPrometheusMetrics(prometheus.NewRegistry())
	s.audit = services.NewAuditService(nil)
	s.limiter = services.NewLoginLimiter(config.SecurityConfig{LoginRatePerSec: 0, LoginBurst: 0})
	s.cfg = session.Config{MaxFailedAttempts: 3}

	dir := s.T().TempDir()
	repo, err := repositories.NewSnapshotRepository(filepath.Join(dir, "ledger.db"), filepath.Join(dir, "ledger.lock"))
	s.Require().NoError(err)
	l, err := ledger.New(models.DefaultExchangeRates())
	s.Require().NoError(err)

	auditLogger := services.NewAuditLogger(s.logger)
	s.ledger = services.NewLedgerService(
		l,
		repo,
		services.NewCredentialService(config.PasswordModePlaintext, 0),
		services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()),
		s.metrics,
		auditLogger,
		s.logger,
	)
}

func (s *SessionTestSuite) handler() *session.Handler {
	return session.NewHandler(s.ledger, s.audit, services.NewAuditLogger(s.logger), s.limiter, s.metrics, s.logger, s.cfg)
}

// start serves one session over an in-memory pipe
func (s *SessionTestSuite) start(ctx context.Context, h *session.Handler) (*protocol.Client, net.Conn, <-chan served) {
	serverConn, clientConn := net.Pipe()
	done := make(chan served, 1)
	go func() {
		reason, err := h.Serve(ctx, serverConn)
		_ = serverConn.Close()
		done <- served{reason: reason, err: err}
	}()
	s.T().Cleanup(func() { _ = clientConn.Close() })
	return protocol.NewClient(clientConn), clientConn, done
}

func (s *SessionTestSuite) wait(done <-chan served) served {
	select {
	case r := <-done:
		return r
	case <-time.After(5 * time.Second):
		s.FailNow("session did not end")
		return served{}
	}
}

func (s *SessionTestSuite) login(c *protocol.Client) {
	username := gofakeit.Username()
	s.Require().NoError(c.Register(username, "secret"))
	s.Require().NoError(c.Login(username, "secret"))
}

func (s *SessionTestSuite) TestFullSession() {
	c, _, done := s.start(s.ctx, s.handler())
	s.login(c)

	id, err := c.CreateAccount(decimal.NewFromInt(10), false)
	s.Require().NoError(err)
	s.Equal(uint32(1), id)

	converted, rate, err := c.Exchange(1, models.Euro, models.Dollar, decimal.NewFromInt(5))
	s.Require().NoError(err)
	s.Equal("5.4", converted.String())
	s.Equal("1.08", rate.String())

	s.Require().NoError(c.Deposit(1, models.Yen, decimal.NewFromInt(100)))
	s.Require().NoError(c.Withdraw(1, models.Euro, decimal.NewFromInt(2)))

	accounts, err := c.ListAccounts()
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("3", accounts[0].Balance(models.Euro).String())
	s.Equal("5.4", accounts[0].Balance(models.Dollar).String())
	s.Equal("100", accounts[0].Balance(models.Yen).String())

	history, err := c.History()
	s.Require().NoError(err)
	s.Require().Len(history, 4)
	s.Equal(models.TransactionWithdraw, history[0].Kind)
	s.Equal(models.TransactionCreateAccount, history[3].Kind)

	s.Require().NoError(c.Logout())
	r := s.wait(done)
	s.NoError(r.err)
	s.Equal(session.ReasonLogout, r.reason)
}

func (s *SessionTestSuite) TestExitFromAnonymous() {
	c, _, done := s.start(s.ctx, s.handler())
	s.Require().NoError(c.Exit())
	s.Equal(session.ReasonExit, s.wait(done).reason)
}

func (s *SessionTestSuite) TestLoginFailureHidesCause() {
	c, _, done := s.start(s.ctx, s.handler())
	username := gofakeit.Username()
	s.Require().NoError(c.Register(username, "secret"))

	wrongPassword := c.Login(username, "nope")
	unknownUser := c.Login(username+"x", "secret")

	var first, second *protocol.ResponseError
	s.Require().True(errors.As(wrongPassword, &first))
	s.Require().True(errors.As(unknownUser, &second))
	s.Equal(*first, *second)
	s.ErrorIs(wrongPassword, apperrors.ErrInvalidCredentials)

	s.Require().NoError(c.Exit())
	s.Equal(session.ReasonExit, s.wait(done).reason)
}

func (s *SessionTestSuite) TestTooManyFailedLogins() {
	c, _, done := s.start(s.ctx, s.handler())
	for i := 0; i < s.cfg.MaxFailedAttempts; i++ {
		s.ErrorIs(c.Login("ghost", "nope"), apperrors.ErrInvalidCredentials)
	}
	s.Equal(session.ReasonTooManyFailures, s.wait(done).reason)
}

func (s *SessionTestSuite) TestMalformedCredentialsCountAsFailedLogin() {
	s.cfg.MaxFailedAttempts = 1
	_, clientConn, done := s.start(s.ctx, s.handler())

	enc := protocol.NewEncoder(clientConn)
	enc.WriteOpcode(protocol.OpLogin)
	enc.WriteString("only-a-username")
	s.Require().NoError(enc.Flush())

	ok, op, code, err := protocol.NewDecoder(clientConn).ReadStatus()
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(uint8(protocol.OpLogin), op)
	s.Equal(apperrors.AuthInvalidCredentials, code)
	s.Equal(session.ReasonTooManyFailures, s.wait(done).reason)
}

func (s *SessionTestSuite) TestDuplicateRegistration() {
	c, _, done := s.start(s.ctx, s.handler())
	username := gofakeit.Username()
	s.Require().NoError(c.Register(username, "secret"))
	s.ErrorIs(c.Register(username, "other"), apperrors.ErrDuplicateUsername)

	s.Require().NoError(c.Exit())
	s.wait(done)
}

func (s *SessionTestSuite) TestRejectedOperationsKeepSessionOpen() {
	c, _, done := s.start(s.ctx, s.handler())
	s.login(c)
	_, err := c.CreateAccount(decimal.NewFromInt(1), false)
	s.Require().NoError(err)

	s.ErrorIs(c.Withdraw(1, models.Euro, decimal.NewFromInt(2)), apperrors.ErrInsufficientFunds)
	s.ErrorIs(c.Deposit(1, models.Euro, decimal.NewFromInt(-2)), apperrors.ErrInvalidAmount)
	s.ErrorIs(c.Deposit(1, models.Currency(9), decimal.NewFromInt(2)), apperrors.ErrUnknownCurrency)
	s.ErrorIs(c.Deposit(2, models.Euro, decimal.NewFromInt(2)), apperrors.ErrInvalidAccountIndex)
	s.ErrorIs(c.DeleteAccount(0), apperrors.ErrInvalidAccountIndex)
	s.ErrorIs(c.Call(protocol.OpSendRequestCoins), apperrors.ErrNotImplemented)
	s.ErrorIs(c.Call(protocol.OpDeleteUser), apperrors.ErrNotImplemented)

	s.Require().NoError(c.DeleteAccount(1))
	accounts, err := c.ListAccounts()
	s.Require().NoError(err)
	s.Empty(accounts)

	s.Require().NoError(c.Logout())
	s.Equal(session.ReasonLogout, s.wait(done).reason)
}

// sendRawDeposit writes a deposit whose amount is sent verbatim, bypassing
// the client's decimal formatting
func (s *SessionTestSuite) sendRawDeposit(conn net.Conn, amount string) error {
	enc := protocol.NewEncoder(conn)
	enc.WriteOpcode(protocol.OpDeposit)
	enc.WriteInt32(1)
	enc.WriteUint8(uint8(models.Euro))
	enc.WriteUint8(uint8(len(amount)))
	s.Require().NoError(enc.Flush())
	_, err := conn.Write([]byte(amount))
	s.Require().NoError(err)

	ok, op, code, err := protocol.NewDecoder(conn).ReadStatus()
	s.Require().NoError(err)
	if ok {
		return nil
	}
	return &protocol.ResponseError{Op: op, Code: code}
}

func (s *SessionTestSuite) TestUnboundedAmountsAreRejected() {
	c, clientConn, done := s.start(s.ctx, s.handler())
	s.login(c)
	_, err := c.CreateAccount(decimal.NewFromInt(1), false)
	s.Require().NoError(err)

	for _, amount := range []string{"1e300", "1e200000", "1e200000", "1e200000", "0.000000001", "1000000000000000"} {
		s.ErrorIs(s.sendRawDeposit(clientConn, amount), apperrors.ErrInvalidAmount, amount)
	}
	_, _, err = c.Exchange(1, models.Euro, models.Yen, decimal.RequireFromString("1000000000000000"))
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
	_, err = c.CreateAccount(decimal.RequireFromString("1000000000000000"), false)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	s.Equal(services.StateClosed, s.ledger.PersistenceState())
	_, err = s.ledger.Register(s.ctx, gofakeit.Username(), "pw")
	s.NoError(err)

	s.Require().NoError(s.sendRawDeposit(clientConn, "999999999999999.99999999"))
	accounts, err := c.ListAccounts()
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.True(decimal.RequireFromString("1000000000000000.99999999").Equal(accounts[0].Balances[models.Euro]))

	s.Require().NoError(c.Logout())
	s.Equal(session.ReasonLogout, s.wait(done).reason)
}

func (s *SessionTestSuite) TestUnknownOpcodeIsProtocolViolation() {
	c, _, done := s.start(s.ctx, s.handler())
	err := c.Call(protocol.Opcode(42))
	s.ErrorIs(err, apperrors.ErrProtocolViolation)
	s.Equal(session.ReasonProtocolViolation, s.wait(done).reason)
}

func (s *SessionTestSuite) TestAuthenticatedOpcodeBeforeLogin() {
	c, _, done := s.start(s.ctx, s.handler())
	s.ErrorIs(c.Call(protocol.OpHistory), apperrors.ErrProtocolViolation)
	s.Equal(session.ReasonProtocolViolation, s.wait(done).reason)
}

func (s *SessionTestSuite) TestTruncatedPayloadIsProtocolViolation() {
	c, clientConn, done := s.start(s.ctx, s.handler())
	s.login(c)

	enc := protocol.NewEncoder(clientConn)
	enc.WriteOpcode(protocol.OpDeposit)
	enc.WriteInt32(1)
	s.Require().NoError(enc.Flush())
	s.Require().NoError(clientConn.Close())

	s.Equal(session.ReasonProtocolViolation, s.wait(done).reason)
}

func (s *SessionTestSuite) TestClientDisconnect() {
	_, clientConn, done := s.start(s.ctx, s.handler())
	s.Require().NoError(clientConn.Close())
	s.Equal(session.ReasonDisconnected, s.wait(done).reason)
}

func (s *SessionTestSuite) TestIdleTimeout() {
	s.cfg.IdleTimeout = 20 * time.Millisecond
	_, _, done := s.start(s.ctx, s.handler())
	s.Equal(session.ReasonIdleTimeout, s.wait(done).reason)
}

func (s *SessionTestSuite) TestShutdownDuringRead() {
	ctx, cancel := context.WithCancel(s.ctx)
	s.cfg.IdleTimeout = 200 * time.Millisecond
	c, _, done := s.start(ctx, s.handler())
	s.login(c)
	cancel()
	s.Equal(session.ReasonShutdown, s.wait(done).reason)
}

func (s *SessionTestSuite) TestRateLimitedLogin() {
	ctrl := gomock.NewController(s.T())
	limiter := service_mocks.NewMockLoginLimiterInterface(ctrl)
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)
	s.limiter = limiter
	s.audit = audit

	limiter.EXPECT().Allow("pipe").Return(false)
	audit.EXPECT().LogRateLimited(gomock.Any(), "pipe").Return(nil)
	audit.EXPECT().LogSessionClosed(gomock.Any(), nil, "pipe", session.ReasonExit).Return(nil)

	c, _, done := s.start(s.ctx, s.handler())
	s.ErrorIs(c.Login("anyone", "secret"), apperrors.ErrRateLimited)
	s.Require().NoError(c.Exit())
	s.Equal(session.ReasonExit, s.wait(done).reason)
}

func (s *SessionTestSuite) TestAuditTrail() {
	ctrl := gomock.NewController(s.T())
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)
	s.audit = audit
	username := gofakeit.Username()

	gomock.InOrder(
		audit.EXPECT().LogRegister(gomock.Any(), gomock.Any(), username, "pipe").Return(nil),
		audit.EXPECT().LogFailedLogin(gomock.Any(), username, "pipe", "invalid_credentials").Return(nil),
		audit.EXPECT().LogLogin(gomock.Any(), gomock.Any(), username, "pipe").Return(nil),
		audit.EXPECT().LogLogout(gomock.Any(), gomock.Any(), "pipe").Return(nil),
		audit.EXPECT().LogSessionClosed(gomock.Any(), gomock.Not(gomock.Nil()), "pipe", session.ReasonLogout).
			Return(errors.New("audit store down")),
	)

	c, _, done := s.start(s.ctx, s.handler())
	s.Require().NoError(c.Register(username, "secret"))
	s.Error(c.Login(username, "wrong"))
	s.Require().NoError(c.Login(username, "secret"))
	s.Require().NoError(c.Logout())
	s.Equal(session.ReasonLogout, s.wait(done).reason)
}

type fatalLedger struct {
	services.LedgerServiceInterface
}

func (fatalLedger) Login(string, string) (uint32, error) { return 1, nil }

func (fatalLedger) Accounts(uint32) ([]models.CurrencyAccount, error) {
	return nil, apperrors.WithOp(apperrors.SystemAllocationFailure, "accounts")
}

func (s *SessionTestSuite) TestFatalErrorIsAnsweredAndEscalated() {
	h := session.NewHandler(fatalLedger{}, s.audit, services.NewAuditLogger(s.logger), s.limiter, s.metrics, s.logger, s.cfg)
	c, _, done := s.start(s.ctx, h)

	s.Require().NoError(c.Login("anyone", "secret"))
	_, err := c.ListAccounts()
	s.ErrorIs(err, apperrors.ErrAllocationFailure)

	r := s.wait(done)
	s.Equal(session.ReasonFatal, r.reason)
	s.ErrorIs(r.err, session.ErrFatal)
}
