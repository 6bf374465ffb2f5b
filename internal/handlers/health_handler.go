package handlers

import (
	"net/http"
	"time"

	"fxledger/internal/services"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	HealthCheck() error
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status         string `json:"status"`
	Time           string `json:"time"`
	Users          int    `json:"users"`
	Accounts       int    `json:"accounts"`
	JournalEntries int    `json:"journal_entries"`
	Persistence    string `json:"persistence"`
	AuditStore     string `json:"audit_store"`
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	ledger services.LedgerServiceInterface
	audit  Pinger
}

// NewHealthCheckHandler creates a health handler. audit may be nil when the
// audit store is disabled.
func NewHealthCheckHandler(ledger services.LedgerServiceInterface, audit Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{ledger: ledger, audit: audit}
}

// HealthCheck answers 503 while snapshot persistence is failing fast. An
// unreachable audit store degrades the status without failing the check.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	stats := h.ledger.Stats()
	persistence := h.ledger.PersistenceState()

	resp := HealthResponse{
		Status:         "healthy",
		Time:           time.Now().UTC().Format(time.RFC3339),
		Users:          stats.Users,
		Accounts:       stats.Accounts,
		JournalEntries: stats.JournalEntries,
		Persistence:    persistence.String(),
		AuditStore:     "disabled",
	}

	if h.audit != nil {
		resp.AuditStore = "up"
		if err := h.audit.HealthCheck(); err != nil {
			resp.AuditStore = "down"
			resp.Status = "degraded"
		}
	}

	if persistence == services.StateOpen {
		resp.Status = "unavailable"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
