package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"fxledger/internal/config"
	"fxledger/internal/database"
	"fxledger/internal/repositories"
	"fxledger/internal/services"

	"github.com/google/subcommands"
)

type migrateCmd struct {
	prune time.Duration
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply audit store migrations" }
func (*migrateCmd) Usage() string {
	return `migrate [-prune <duration>]

Brings the audit store schema up to date and reports its version. With
-prune, also deletes audit events older than the given duration (e.g. 720h).
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.prune, "prune", 0, "delete audit events older than this duration")
}

func (c *migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()
	if !cfg.Database.AuditEnabled {
		fmt.Fprintln(os.Stderr, "Error: the audit store is disabled (AUDIT_ENABLED=false).")
		return subcommands.ExitUsageError
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing audit store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	version, dirty, err := database.NewMigrationRunner(sqlDB, cfg.Database.Driver).GetMigrationStatus()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read migration version: %v\n", err)
	} else {
		fmt.Printf("audit store at migration version %d (dirty: %t)\n", version, dirty)
	}

	if c.prune > 0 {
		audit := services.NewAuditService(repositories.NewAuditLogRepository(db.DB))
		removed, err := audit.PruneOlderThan(c.prune)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error pruning audit events: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("pruned %d audit events older than %s\n", removed, c.prune)
	}
	return subcommands.ExitSuccess
}
