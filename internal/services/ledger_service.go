package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/ledger"
	"fxledger/internal/models"
	"fxledger/internal/repositories"

	"github.com/shopspring/decimal"
)

const persistenceService = "snapshot"

// LedgerService owns the single authoritative ledger. Writers take the
// one-slot semaphore, mutate a clone, persist it and then publish it.
// Readers load the published pointer and never wait for writers.
type LedgerService struct {
	committed   atomic.Pointer[ledger.Ledger]
	writeSem    chan struct{}
	repo        repositories.SnapshotRepositoryInterface
	credentials CredentialServiceInterface
	breaker     CircuitBreakerInterface
	metrics     MetricsRecorderInterface
	auditLogger AuditLoggerInterface
	logger      *slog.Logger
}

// OpenLedger loads the persisted ledger, or creates an empty one with rates
// when no snapshot exists yet. The bool reports whether a new ledger was
// created.
func OpenLedger(repo repositories.SnapshotRepositoryInterface, rates models.ExchangeRates) (*ledger.Ledger, bool, error) {
	l, err := repo.Load()
	if err == nil {
		return l, false, nil
	}
	if !errors.Is(err, repositories.ErrSnapshotNotFound) {
		return nil, false, fmt.Errorf("failed to load ledger: %w", err)
	}

	l, err = ledger.New(rates)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create ledger: %w", err)
	}
	return l, true, nil
}

func NewLedgerService(
	initial *ledger.Ledger,
	repo repositories.SnapshotRepositoryInterface,
	credentials CredentialServiceInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
	logger *slog.Logger,
) *LedgerService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &LedgerService{
		writeSem:    make(chan struct{}, 1),
		repo:        repo,
		credentials: credentials,
		breaker:     breaker,
		metrics:     metrics,
		auditLogger: auditLogger,
		logger:      logger,
	}
	s.committed.Store(initial)
	s.recordStats(initial)
	return s
}

// BreakerStateObserver returns a callback suitable for
// CircuitBreakerConfig.OnStateChange that logs and exports transitions.
func BreakerStateObserver(auditLogger AuditLoggerInterface, metrics MetricsRecorderInterface) func(from, to models.CircuitBreakerState) {
	return func(from, to models.CircuitBreakerState) {
		auditLogger.LogCircuitBreakerStateChange(context.Background(), persistenceService, from.String(), to.String())
		metrics.RecordGauge(MetricCircuitBreaker, float64(to), map[string]string{
			"service": persistenceService,
		})
	}
}

// Snapshot returns the last committed ledger. Callers must not mutate it.
func (s *LedgerService) Snapshot() *ledger.Ledger {
	return s.committed.Load()
}

func (s *LedgerService) Stats() ledger.Stats {
	return s.Snapshot().Stats()
}

func (s *LedgerService) PersistenceState() models.CircuitBreakerState {
	return s.breaker.GetState()
}

// Register creates a user. The password is hashed before the write lock is
// taken.
func (s *LedgerService) Register(ctx context.Context, username, password string) (uint32, error) {
	if _, err := s.Snapshot().FindUser(username); err == nil {
		return 0, apperrors.WithOp(apperrors.AuthDuplicateUsername, "register")
	}

	credential, err := s.credentials.Hash(password)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ValidationInvalidRequest, "register", err)
	}

	var clientID uint32
	err = s.mutate(ctx, "register", 0, func(l *ledger.Ledger) error {
		var err error
		clientID, err = l.CreateUser(username, credential)
		return err
	})
	return clientID, err
}

func (s *LedgerService) Login(username, password string) (uint32, error) {
	return s.Snapshot().Authenticate(username, password, s.credentials)
}

func (s *LedgerService) Accounts(clientID uint32) ([]models.CurrencyAccount, error) {
	return s.Snapshot().Accounts(clientID)
}

// History returns the client's journal records, most recent first
func (s *LedgerService) History(clientID uint32) ([]models.TransactionRecord, error) {
	snapshot := s.Snapshot()
	if _, err := snapshot.User(clientID); err != nil {
		return nil, err
	}
	return slices.Collect(snapshot.History(clientID)), nil
}

func (s *LedgerService) CreateAccount(ctx context.Context, clientID uint32, initialDeposit decimal.Decimal, shared bool) (uint32, error) {
	var accountID uint32
	err := s.mutate(ctx, "create_account", clientID, func(l *ledger.Ledger) error {
		var err error
		accountID, err = l.CreateAccount(clientID, initialDeposit, shared)
		return err
	})
	return accountID, err
}

func (s *LedgerService) DeleteAccount(ctx context.Context, clientID uint32, index int) error {
	return s.mutate(ctx, "delete_account", clientID, func(l *ledger.Ledger) error {
		return l.DeleteAccount(clientID, index)
	})
}

func (s *LedgerService) Deposit(ctx context.Context, clientID uint32, index int, currency models.Currency, amount decimal.Decimal) (models.TransactionRecord, error) {
	var record models.TransactionRecord
	err := s.mutate(ctx, "deposit", clientID, func(l *ledger.Ledger) error {
		var err error
		record, err = l.Deposit(clientID, index, currency, amount)
		return err
	})
	return record, err
}

func (s *LedgerService) Withdraw(ctx context.Context, clientID uint32, index int, currency models.Currency, amount decimal.Decimal) (models.TransactionRecord, error) {
	var record models.TransactionRecord
	err := s.mutate(ctx, "withdraw", clientID, func(l *ledger.Ledger) error {
		var err error
		record, err = l.Withdraw(clientID, index, currency, amount)
		return err
	})
	return record, err
}

func (s *LedgerService) Exchange(ctx context.Context, clientID uint32, index int, from, to models.Currency, amount decimal.Decimal) (ledger.ExchangeResult, error) {
	var result ledger.ExchangeResult
	err := s.mutate(ctx, "exchange", clientID, func(l *ledger.Ledger) error {
		var err error
		result, err = l.Exchange(clientID, index, from, to, amount)
		return err
	})
	return result, err
}

// mutate applies fn to a clone of the committed ledger and publishes the
// clone once it is on disk. ctx only bounds the wait for the semaphore.
func (s *LedgerService) mutate(ctx context.Context, operation string, clientID uint32, fn func(*ledger.Ledger) error) error {
	select {
	case s.writeSem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.writeSem }()

	startTime := time.Now()
	tags := map[string]string{"operation": operation}

	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter(MetricPersistFailed, tags)
		return apperrors.Wrap(apperrors.SystemPersistenceFailure, operation, ErrCircuitBreakerOpen)
	}

	next := s.committed.Load().Clone()
	if err := fn(next); err != nil {
		code := apperrors.CodeOf(err)
		tags["reason"] = fmt.Sprintf("0x%02x", uint8(code))
		s.metrics.IncrementCounter(MetricMutationRejected, tags)
		s.auditLogger.LogMutationRejected(ctx, operation, clientID, code.String())
		return err
	}

	persistStart := time.Now()
	if err := s.repo.Save(next); err != nil {
		if errors.Is(err, repositories.ErrSnapshotEncoding) {
			// nothing reached storage, so the breaker is not charged
			s.metrics.IncrementCounter(MetricPersistFailed, tags)
			s.auditLogger.LogMutationRejected(ctx, operation, clientID, err.Error())
			return apperrors.Wrap(apperrors.SystemPersistenceFailure, operation, err)
		}
		s.breaker.RecordFailure()
		s.metrics.IncrementCounter(MetricPersistFailed, tags)
		s.auditLogger.LogPersistenceFailed(ctx, operation, err.Error(), s.breaker.GetFailureCount())
		return apperrors.Wrap(apperrors.SystemPersistenceFailure, operation, err)
	}
	s.breaker.RecordSuccess()
	s.metrics.RecordProcessingTime(MetricPersistDuration, time.Since(persistStart))

	s.committed.Store(next)

	duration := time.Since(startTime)
	s.metrics.IncrementCounter(MetricMutationCommitted, tags)
	s.metrics.RecordProcessingTime(MetricMutationDuration, duration)
	s.recordStats(next)
	s.auditLogger.LogMutationCommitted(ctx, operation, clientID, duration.Milliseconds())

	return nil
}

func (s *LedgerService) recordStats(l *ledger.Ledger) {
	stats := l.Stats()
	s.metrics.RecordGauge(MetricLedgerUsers, float64(stats.Users), nil)
	s.metrics.RecordGauge(MetricLedgerAccounts, float64(stats.Accounts), nil)
	s.metrics.RecordGauge(MetricLedgerJournal, float64(stats.JournalEntries), nil)
}
