package handlers

import (
	"log/slog"

	"fxledger/internal/middleware"
	"fxledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// NewOpsServer builds the operations HTTP server: health, metrics and audit
// queries. It never serves ledger mutations.
func NewOpsServer(
	ledger services.LedgerServiceInterface,
	audit services.AuditServiceInterface,
	auditStore Pinger,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())

	health := NewHealthCheckHandler(ledger, auditStore)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", MetricsHandler(gatherer))

	auditHandler := NewAuditHandler(audit)
	e.GET("/audit/sessions/:session_id", auditHandler.SessionActivity)
	e.GET("/audit/clients/:client_id", auditHandler.ClientActivity)
	e.GET("/audit/actions/:action", auditHandler.ActionActivity)
	e.GET("/audit/events/:id", auditHandler.Event)
	e.GET("/audit/users/:username/failed-logins", auditHandler.FailedLogins)

	return e
}
