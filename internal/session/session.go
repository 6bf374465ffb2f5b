// Package session runs the per-connection request loop. A session starts
// anonymous, becomes authenticated after a successful login and ends on
// exit, logout, a protocol violation or loss of the connection.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"fxledger/internal/config"
	apperrors "fxledger/internal/errors"
	"fxledger/internal/protocol"
	"fxledger/internal/services"

	"github.com/google/uuid"
)

// Close reasons reported in logs, metrics and the audit store
const (
	ReasonExit              = "exit"
	ReasonLogout            = "logout"
	ReasonProtocolViolation = "protocol_violation"
	ReasonTooManyFailures   = "too_many_failures"
	ReasonDisconnected      = "disconnected"
	ReasonIdleTimeout       = "idle_timeout"
	ReasonShutdown          = "shutdown"
	ReasonWriteError        = "write_error"
	ReasonFatal             = "fatal"
)

// ErrFatal wraps errors that must stop the whole service
var ErrFatal = errors.New("fatal ledger error")

type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Config bounds a single session
type Config struct {
	IdleTimeout       time.Duration
	MaxFailedAttempts int
}

// ConfigFrom picks the session settings out of the service configuration
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxFailedAttempts: cfg.Security.MaxFailedAttempts,
	}
}

// Handler holds what every session shares
type Handler struct {
	ledger      services.LedgerServiceInterface
	audit       services.AuditServiceInterface
	auditLogger services.AuditLoggerInterface
	limiter     services.LoginLimiterInterface
	metrics     services.MetricsRecorderInterface
	logger      *slog.Logger
	cfg         Config
}

func NewHandler(
	ledger services.LedgerServiceInterface,
	audit services.AuditServiceInterface,
	auditLogger services.AuditLoggerInterface,
	limiter services.LoginLimiterInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
	cfg Config,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		ledger:      ledger,
		audit:       audit,
		auditLogger: auditLogger,
		limiter:     limiter,
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
	}
}

// Session is the state of one connection
type Session struct {
	*Handler
	id           string
	conn         net.Conn
	remote       string
	host         string
	enc          *protocol.Encoder
	dec          *protocol.Decoder
	state        State
	clientID     uint32
	failedLogins int
	requests     int
	// opName labels the request being handled, fixed before any state change
	opName string
}

// Serve runs the request loop on conn until the session ends and returns
// the close reason. The caller owns conn and closes it afterwards. A non-nil
// error wraps ErrFatal.
func (h *Handler) Serve(ctx context.Context, conn net.Conn) (string, error) {
	s := h.newSession(conn)
	ctx = services.WithSessionID(ctx, s.id)

	start := time.Now()
	h.metrics.IncrementCounter(services.MetricSessionOpened, nil)
	h.auditLogger.LogSessionOpened(ctx, s.remote)

	reason, err := s.loop(ctx)

	h.metrics.IncrementCounter(services.MetricSessionClosed, map[string]string{"reason": reason})
	h.auditLogger.LogSessionClosed(ctx, reason, s.requests, time.Since(start).Milliseconds())
	s.record(h.audit.LogSessionClosed(s.id, s.clientIDPtr(), s.remote, reason))
	return reason, err
}

func (h *Handler) newSession(conn net.Conn) *Session {
	remote := "unknown"
	if addr := conn.RemoteAddr(); addr != nil {
		remote = addr.String()
	}
	host := remote
	if hostPart, _, err := net.SplitHostPort(remote); err == nil {
		host = hostPart
	}
	return &Session{
		Handler: h,
		id:      uuid.NewString(),
		conn:    conn,
		remote:  remote,
		host:    host,
		enc:     protocol.NewEncoder(conn),
		dec:     protocol.NewDecoder(conn),
		state:   StateAnonymous,
	}
}

// ID returns the session id used to correlate logs and audit entries
func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

func (s *Session) clientIDPtr() *uint32 {
	if s.state != StateAuthenticated {
		return nil
	}
	id := s.clientID
	return &id
}

func (s *Session) loop(ctx context.Context) (string, error) {
	for {
		if ctx.Err() != nil {
			return ReasonShutdown, nil
		}
		if s.cfg.IdleTimeout > 0 {
			_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.IdleTimeout))
		}

		op, err := s.dec.ReadOpcode()
		if err != nil {
			s.opName = "frame"
			return s.readFailed(ctx, op, err), nil
		}
		s.requests++

		authenticated := s.state == StateAuthenticated
		s.opName = op.Name(authenticated)
		var reason string
		if authenticated {
			reason, err = s.handleAuthenticated(ctx, op)
		} else {
			reason, err = s.handleAnonymous(ctx, op)
		}

		if err != nil {
			if errors.Is(err, protocol.ErrMalformed) {
				return s.violation(ctx, op, err.Error()), nil
			}
			if errors.Is(err, ErrFatal) {
				s.logger.ErrorContext(ctx, "fatal ledger error",
					slog.String("session_id", s.id),
					slog.String("error", err.Error()),
				)
				return ReasonFatal, err
			}
			if ctx.Err() != nil {
				return ReasonShutdown, nil
			}
			return s.ioFailed(ctx, err), nil
		}
		if reason != "" {
			return reason, nil
		}
	}
}

// readFailed classifies an error that occurred while waiting for a request
func (s *Session) readFailed(ctx context.Context, op protocol.Opcode, err error) string {
	switch {
	case errors.Is(err, protocol.ErrMalformed):
		return s.violation(ctx, op, err.Error())
	case ctx.Err() != nil:
		return ReasonShutdown
	case errors.Is(err, os.ErrDeadlineExceeded):
		return ReasonIdleTimeout
	case errors.Is(err, io.EOF):
		return ReasonDisconnected
	default:
		return s.ioFailed(ctx, err)
	}
}

func (s *Session) ioFailed(ctx context.Context, err error) string {
	s.logger.DebugContext(ctx, "session connection error",
		slog.String("session_id", s.id),
		slog.String("error", err.Error()),
	)
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonIdleTimeout
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return ReasonDisconnected
	}
	return ReasonWriteError
}

// violation answers with a protocol violation and ends the session
func (s *Session) violation(ctx context.Context, op protocol.Opcode, detail string) string {
	s.auditLogger.LogProtocolViolation(ctx, int32(op), detail)
	s.record(s.audit.LogProtocolViolation(s.id, s.clientIDPtr(), s.remote, detail))
	s.countRequest(apperrors.ProtocolViolation)

	s.enc.Failure(op, apperrors.ProtocolViolation)
	_ = s.enc.Flush()
	return ReasonProtocolViolation
}

// reply flushes a success response prepared by write
func (s *Session) reply(write func(*protocol.Encoder)) error {
	s.enc.Success()
	if write != nil {
		write(s.enc)
	}
	s.countRequest(0)
	return s.enc.Flush()
}

// fail answers op with the code carried by err. Fatal codes are answered
// and then escalated.
func (s *Session) fail(op protocol.Opcode, err error) error {
	code := apperrors.CodeOf(err)
	s.enc.Failure(op, code)
	s.countRequest(code)
	if flushErr := s.enc.Flush(); flushErr != nil {
		return flushErr
	}
	if apperrors.IsFatal(code) {
		return fmt.Errorf("%w: %w", ErrFatal, err)
	}
	return nil
}

func (s *Session) countRequest(code apperrors.ErrorCode) {
	status := "success"
	if code != 0 {
		status = "0x" + strconv.FormatUint(uint64(code), 16)
	}
	s.metrics.IncrementCounter(services.MetricSessionRequest, map[string]string{
		"opcode": s.opName,
		"status": status,
	})
}

func (s *Session) authEvent(eventType string) {
	s.metrics.IncrementCounter(services.MetricAuthenticationEvent, map[string]string{
		"event_type": eventType,
	})
}

// record logs audit store errors; they never reach the client
func (s *Session) record(err error) {
	if err != nil {
		s.logger.Warn("failed to write audit log",
			slog.String("session_id", s.id),
			slog.String("error", err.Error()),
		)
	}
}
