package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fxledger/internal/config"
	"fxledger/internal/database"
	"fxledger/internal/handlers"
	"fxledger/internal/models"
	"fxledger/internal/repositories"
	"fxledger/internal/server"
	"fxledger/internal/services"
	"fxledger/internal/session"

	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type serveCmd struct {
	addr    string
	opsAddr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the ledger session server and the ops HTTP server" }
func (*serveCmd) Usage() string {
	return `serve [-addr host:port] [-ops-addr host:port]

Loads the snapshot (creating an empty ledger when none exists), accepts
sessions over TCP and serves /health, /metrics and audit queries over HTTP.
SIGINT or SIGTERM stops both servers gracefully.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "session listener address, overrides SERVER_HOST/SERVER_PORT")
	f.StringVar(&c.opsAddr, "ops-addr", "", "ops HTTP address, overrides SERVER_HOST/OPS_PORT")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.run(ctx, cfg, logger); err != nil {
		logger.Error("ledger service stopped", slog.String("error", err.Error()))
		return subcommands.ExitFailure
	}
	logger.Info("ledger service stopped")
	return subcommands.ExitSuccess
}

func (c *serveCmd) run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	addr, opsAddr := cfg.Server.Addr(), cfg.Server.OpsAddr()
	if c.addr != "" {
		addr = c.addr
	}
	if c.opsAddr != "" {
		opsAddr = c.opsAddr
	}

	repo, err := repositories.NewSnapshotRepository(cfg.Storage.SnapshotPath, cfg.Storage.LockPath)
	if err != nil {
		return err
	}
	initial, created, err := services.OpenLedger(repo, models.DefaultExchangeRates())
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)
	auditLogger := services.NewAuditLogger(logger)
	auditLogger.LogSnapshotLoaded(ctx, repo.Path(), initial.Stats(), created)

	breakerConfig := services.CircuitBreakerConfigFrom(cfg.Breaker)
	breakerConfig.OnStateChange = services.BreakerStateObserver(auditLogger, metrics)

	ledgerService := services.NewLedgerService(
		initial,
		repo,
		services.NewCredentialService(cfg.Security.PasswordMode, cfg.Security.BCryptCost),
		services.NewCircuitBreaker(breakerConfig),
		metrics,
		auditLogger,
		logger,
	)

	var auditStore handlers.Pinger
	auditService := services.NewAuditService(nil)
	if cfg.Database.AuditEnabled {
		db, err := database.Initialize(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		auditStore = db
		auditService = services.NewAuditService(repositories.NewAuditLogRepository(db.DB))
	} else {
		logger.Info("audit store disabled, session events are only logged")
	}

	limiter := services.NewLoginLimiter(cfg.Security)
	go limiter.Run(ctx)

	ops := handlers.NewOpsServer(ledgerService, auditService, auditStore, registry, logger)
	go func() {
		logger.Info("ops server listening", slog.String("addr", opsAddr))
		if err := ops.Start(opsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops server failed", slog.String("error", err.Error()))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := ops.Shutdown(shutdownCtx); err != nil {
			logger.Warn("ops server shutdown failed", slog.String("error", err.Error()))
		}
	}()

	handler := session.NewHandler(ledgerService, auditService, auditLogger, limiter, metrics, logger, session.ConfigFrom(cfg))
	return server.New(handler, logger, cfg.Server.ShutdownTimeout).ListenAndServe(ctx, addr)
}
