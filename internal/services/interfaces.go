package services

import (
	"context"
	"time"

	"fxledger/internal/ledger"
	"fxledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface is the only way sessions touch the ledger. Mutations
// are serialized and durable before they return; reads see the last
// committed snapshot.
type LedgerServiceInterface interface {
	Register(ctx context.Context, username, password string) (uint32, error)
	Login(username, password string) (uint32, error)
	Accounts(clientID uint32) ([]models.CurrencyAccount, error)
	History(clientID uint32) ([]models.TransactionRecord, error)
	CreateAccount(ctx context.Context, clientID uint32, initialDeposit decimal.Decimal, shared bool) (uint32, error)
	DeleteAccount(ctx context.Context, clientID uint32, index int) error
	Deposit(ctx context.Context, clientID uint32, index int, currency models.Currency, amount decimal.Decimal) (models.TransactionRecord, error)
	Withdraw(ctx context.Context, clientID uint32, index int, currency models.Currency, amount decimal.Decimal) (models.TransactionRecord, error)
	Exchange(ctx context.Context, clientID uint32, index int, from, to models.Currency, amount decimal.Decimal) (ledger.ExchangeResult, error)
	Snapshot() *ledger.Ledger
	Stats() ledger.Stats
	PersistenceState() models.CircuitBreakerState
}

// CredentialServiceInterface derives and checks stored credentials
type CredentialServiceInterface interface {
	ledger.CredentialVerifier
	Hash(password string) (string, error)
	Mode() string
}

// AuditServiceInterface records durable session events
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetSessionActivity(sessionID string) ([]*models.AuditLog, error)
	GetClientActivity(clientID uint32, offset, limit int) ([]*models.AuditLog, int64, error)
	GetActionActivity(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetEvent(id uuid.UUID) (*models.AuditLog, error)
	CountFailedLogins(username string, window time.Duration) (int64, error)
	PruneOlderThan(retention time.Duration) (int64, error)
	LogLogin(sessionID string, clientID uint32, username, remote string) error
	LogFailedLogin(sessionID, username, remote, reason string) error
	LogRegister(sessionID string, clientID uint32, username, remote string) error
	LogFailedRegister(sessionID, username, remote, reason string) error
	LogLogout(sessionID string, clientID uint32, remote string) error
	LogRateLimited(sessionID, remote string) error
	LogProtocolViolation(sessionID string, clientID *uint32, remote, detail string) error
	LogSessionClosed(sessionID string, clientID *uint32, remote, reason string) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogSnapshotLoaded(ctx context.Context, path string, stats ledger.Stats, created bool)
	LogMutationCommitted(ctx context.Context, operation string, clientID uint32, durationMs int64)
	LogMutationRejected(ctx context.Context, operation string, clientID uint32, reason string)
	LogPersistenceFailed(ctx context.Context, operation string, errorMsg string, failures int)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogSessionOpened(ctx context.Context, remote string)
	LogSessionClosed(ctx context.Context, reason string, requests int, durationMs int64)
	LogProtocolViolation(ctx context.Context, opcode int32, detail string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// LoginLimiterInterface throttles authentication attempts per remote host
type LoginLimiterInterface interface {
	Allow(host string) bool
	Run(ctx context.Context)
}
