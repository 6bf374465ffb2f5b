package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"fxledger/internal/config"
	apperrors "fxledger/internal/errors"
	"fxledger/internal/ledger"
	"fxledger/internal/models"
	"fxledger/internal/repositories"
	"fxledger/internal/repositories/repository_mocks"
	"fxledger/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	repo     *repository_mocks.MockSnapshotRepositoryInterface
	registry *prometheus.Registry
	metrics  services.MetricsRecorderInterface
	breaker  services.CircuitBreakerInterface
	service  *services.LedgerService
	logger   *slog.Logger
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockSnapshotRepositoryInterface(s.ctrl)
	s.registry = prometheus.NewRegistry()
	s.metrics = services.NewPrometheusMetrics(s.registry)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	auditLogger := services.NewAuditLogger(s.logger)
	breakerConfig := services.CircuitBreakerConfigFrom(config.BreakerConfig{MaxFailures: 3, ResetTimeout: time.Hour})
	breakerConfig.OnStateChange = services.BreakerStateObserver(auditLogger, s.metrics)
	s.breaker = services.NewCircuitBreaker(breakerConfig)

	l, err := ledger.New(models.DefaultExchangeRates())
	s.Require().NoError(err)

	s.service = services.NewLedgerService(
		l,
		s.repo,
		services.NewCredentialService(config.PasswordModeBcrypt, bcrypt.MinCost),
		s.breaker,
		s.metrics,
		auditLogger,
		s.logger,
	)
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerServiceTestSuite) registerWithAccount(deposit int64) uint32 {
	clientID, err := s.service.Register(s.ctx, gofakeit.Username(), "secret")
	s.Require().NoError(err)
	_, err = s.service.CreateAccount(s.ctx, clientID, decimal.NewFromInt(deposit), false)
	s.Require().NoError(err)
	return clientID
}

func (s *LedgerServiceTestSuite) TestRegisterAndLogin() {
	s.repo.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	clientID, err := s.service.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.Equal(models.FirstClientID, clientID)

	// stored credential is a hash, never the password
	user, err := s.service.Snapshot().User(clientID)
	s.Require().NoError(err)
	s.NotEqual("secret", user.Credential)

	loggedIn, err := s.service.Login("alice", "secret")
	s.NoError(err)
	s.Equal(clientID, loggedIn)

	_, err = s.service.Login("alice", "wrong")
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	_, err = s.service.Login("nobody", "secret")
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *LedgerServiceTestSuite) TestRegister_DuplicateUsername() {
	s.repo.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	_, err := s.service.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "other")
	s.ErrorIs(err, apperrors.ErrDuplicateUsername)
	s.Equal(1, s.service.Stats().Users)
}

func (s *LedgerServiceTestSuite) TestDepositWithdrawExchange() {
	s.repo.EXPECT().Save(gomock.Any()).Return(nil).Times(5)
	clientID := s.registerWithAccount(0)

	_, err := s.service.Deposit(s.ctx, clientID, 1, models.Dollar, decimal.NewFromInt(10))
	s.Require().NoError(err)

	result, err := s.service.Exchange(s.ctx, clientID, 1, models.Dollar, models.Euro, decimal.NewFromInt(10))
	s.Require().NoError(err)
	s.Equal("9.259259", result.Converted.StringFixed(6))

	record, err := s.service.Withdraw(s.ctx, clientID, 1, models.Euro, decimal.NewFromInt(5))
	s.Require().NoError(err)
	s.Equal(models.TransactionWithdraw, record.Kind)

	accounts, err := s.service.Accounts(clientID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.True(accounts[0].Balance(models.Dollar).IsZero())
	s.Equal("4.259259", accounts[0].Balance(models.Euro).StringFixed(6))

	history, err := s.service.History(clientID)
	s.Require().NoError(err)
	s.Require().Len(history, 4)
	s.Equal(models.TransactionWithdraw, history[0].Kind)
	s.Equal(models.TransactionCreateAccount, history[3].Kind)

	expected := `
# HELP ledger_mutations_total Total number of ledger mutations by outcome
# TYPE ledger_mutations_total counter
ledger_mutations_total{operation="create_account",status="success"} 1
ledger_mutations_total{operation="deposit",status="success"} 1
ledger_mutations_total{operation="exchange",status="success"} 1
ledger_mutations_total{operation="register",status="success"} 1
ledger_mutations_total{operation="withdraw",status="success"} 1
`
	s.NoError(testutil.GatherAndCompare(s.registry, strings.NewReader(expected), "ledger_mutations_total"))
}

func (s *LedgerServiceTestSuite) TestRejectedMutation_DoesNotPersist() {
	s.repo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)
	clientID := s.registerWithAccount(5)
	before := s.service.Snapshot()

	_, err := s.service.Withdraw(s.ctx, clientID, 1, models.Euro, decimal.NewFromInt(6))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	_, err = s.service.Exchange(s.ctx, clientID, 2, models.Euro, models.Yen, decimal.NewFromInt(1))
	s.ErrorIs(err, apperrors.ErrInvalidAccountIndex)

	s.Same(before, s.service.Snapshot())
}

func (s *LedgerServiceTestSuite) TestPersistenceFailure_LeavesStateUnchanged() {
	s.repo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)
	clientID := s.registerWithAccount(100)
	before := s.service.Snapshot()

	s.repo.EXPECT().Save(gomock.Any()).Return(errors.New("disk full")).Times(1)

	_, err := s.service.Deposit(s.ctx, clientID, 1, models.Euro, decimal.NewFromInt(50))
	s.ErrorIs(err, apperrors.ErrPersistenceFailure)

	s.Same(before, s.service.Snapshot())
	s.Equal(before.Stats(), s.service.Stats())
	accounts, err := s.service.Accounts(clientID)
	s.Require().NoError(err)
	s.Equal("100", accounts[0].Balance(models.Euro).String())
}

func (s *LedgerServiceTestSuite) TestEncodingFailure_DoesNotTripBreaker() {
	s.repo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)
	clientID := s.registerWithAccount(100)
	before := s.service.Snapshot()

	encodingErr := fmt.Errorf("%w: field too long", repositories.ErrSnapshotEncoding)
	s.repo.EXPECT().Save(gomock.Any()).Return(encodingErr).Times(5)
	for i := 0; i < 5; i++ {
		_, err := s.service.Deposit(s.ctx, clientID, 1, models.Euro, decimal.NewFromInt(1))
		s.ErrorIs(err, apperrors.ErrPersistenceFailure)
	}

	s.Equal(services.StateClosed, s.service.PersistenceState())
	s.Zero(s.breaker.GetFailureCount())
	s.Same(before, s.service.Snapshot())

	s.repo.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
	_, err := s.service.Register(s.ctx, gofakeit.Username(), "secret")
	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestCircuitBreaker_OpensAfterRepeatedFailures() {
	s.repo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)
	clientID := s.registerWithAccount(100)

	s.repo.EXPECT().Save(gomock.Any()).Return(errors.New("io error")).Times(3)
	for i := 0; i < 3; i++ {
		_, err := s.service.Deposit(s.ctx, clientID, 1, models.Euro, decimal.NewFromInt(1))
		s.ErrorIs(err, apperrors.ErrPersistenceFailure)
	}
	s.Equal(services.StateOpen, s.service.PersistenceState())

	// fails fast without touching the repository
	_, err := s.service.Deposit(s.ctx, clientID, 1, models.Euro, decimal.NewFromInt(1))
	s.ErrorIs(err, apperrors.ErrPersistenceFailure)
	s.ErrorIs(err, services.ErrCircuitBreakerOpen)

	// reads keep working
	_, err = s.service.Accounts(clientID)
	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestConcurrentDeposits_AreSerialized() {
	const workers, perWorker = 8, 25
	s.repo.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()
	clientID := s.registerWithAccount(0)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, err := s.service.Deposit(s.ctx, clientID, 1, models.Yen, decimal.NewFromInt(1))
				s.NoError(err)
			}
		}()
	}
	wg.Wait()

	accounts, err := s.service.Accounts(clientID)
	s.Require().NoError(err)
	s.True(accounts[0].Balance(models.Yen).Equal(decimal.NewFromInt(workers * perWorker)))

	history, err := s.service.History(clientID)
	s.Require().NoError(err)
	s.Len(history, workers*perWorker+1)
	for i := 1; i < len(history); i++ {
		s.Equal(history[i-1].ID-1, history[i].ID)
	}
}

func (s *LedgerServiceTestSuite) TestMutation_HonoursContextWhileWaiting() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	// an already-cancelled context may still win the free slot; hold it first
	release := make(chan struct{})
	entered := make(chan struct{})
	s.repo.EXPECT().Save(gomock.Any()).DoAndReturn(func(*ledger.Ledger) error {
		close(entered)
		<-release
		return nil
	}).Times(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.service.Register(s.ctx, "holder", "secret")
	}()
	<-entered

	_, err := s.service.Register(ctx, "waiter", "secret")
	s.ErrorIs(err, context.Canceled)

	close(release)
	<-done
	s.Equal(1, s.service.Stats().Users)
}

func (s *LedgerServiceTestSuite) TestHistory_UnknownClient() {
	_, err := s.service.History(42)
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func TestOpenLedger(t *testing.T) {
	dir := t.TempDir()
	repo, err := repositories.NewSnapshotRepository(filepath.Join(dir, "ledger.db"), "")
	if err != nil {
		t.Fatal(err)
	}

	l, created, err := services.OpenLedger(repo, models.DefaultExchangeRates())
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("expected a new ledger when no snapshot exists")
	}

	if _, err := l.CreateUser("alice", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(l); err != nil {
		t.Fatal(err)
	}

	reopened, created, err := services.OpenLedger(repo, models.DefaultExchangeRates())
	if err != nil {
		t.Fatal(err)
	}
	if created || !reopened.Equal(l) {
		t.Fatal("expected the persisted ledger to be loaded")
	}
}
