package services

import (
	"context"
	"log/slog"
	"time"

	"fxledger/internal/ledger"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// WithSessionID tags ctx so that log lines can be correlated per connection
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFrom returns the session id stored by WithSessionID
func SessionIDFrom(ctx context.Context) string {
	return getCorrelationID(ctx)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogSnapshotLoaded(ctx context.Context, path string, stats ledger.Stats, created bool) {
	al.logger.InfoContext(ctx, "ledger snapshot loaded",
		slog.String("event_type", "snapshot_loaded"),
		slog.String("path", path),
		slog.Bool("created", created),
		slog.Int("users", stats.Users),
		slog.Int("accounts", stats.Accounts),
		slog.Int("journal_entries", stats.JournalEntries),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogMutationCommitted(ctx context.Context, operation string, clientID uint32, durationMs int64) {
	al.logger.InfoContext(ctx, "ledger mutation committed",
		slog.String("event_type", "mutation_committed"),
		slog.String("operation", operation),
		slog.Uint64("client_id", uint64(clientID)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMutationRejected(ctx context.Context, operation string, clientID uint32, reason string) {
	al.logger.InfoContext(ctx, "ledger mutation rejected",
		slog.String("event_type", "mutation_rejected"),
		slog.String("operation", operation),
		slog.Uint64("client_id", uint64(clientID)),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogPersistenceFailed(ctx context.Context, operation string, errorMsg string, failures int) {
	al.logger.ErrorContext(ctx, "ledger persistence failed",
		slog.String("event_type", "persistence_failed"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Int("consecutive_failures", failures),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogSessionOpened(ctx context.Context, remote string) {
	al.logger.InfoContext(ctx, "session opened",
		slog.String("event_type", "session_opened"),
		slog.String("remote", remote),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSessionClosed(ctx context.Context, reason string, requests int, durationMs int64) {
	al.logger.InfoContext(ctx, "session closed",
		slog.String("event_type", "session_closed"),
		slog.String("reason", reason),
		slog.Int("requests", requests),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogProtocolViolation(ctx context.Context, opcode int32, detail string) {
	al.logger.WarnContext(ctx, "protocol violation",
		slog.String("event_type", "protocol_violation"),
		slog.Int("opcode", int(opcode)),
		slog.String("detail", detail),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}

	return ""
}
