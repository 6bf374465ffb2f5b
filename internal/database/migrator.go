package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"time"

	"fxledger/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsDir = "migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// ErrUnsupportedDriver is returned for audit drivers golang-migrate is not wired for
var ErrUnsupportedDriver = errors.New("unsupported migration driver")

// MigrationRunner applies the embedded audit store migrations
type MigrationRunner struct {
	db     *sql.DB
	driver string
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB, driver string) *MigrationRunner {
	return &MigrationRunner{
		db:     db,
		driver: driver,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	log.Println("Waiting for database to be ready...")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			log.Println("Database is ready!")
			return nil
		}

		log.Printf("Database not ready (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) databaseDriver() (database.Driver, string, error) {
	switch mr.driver {
	case config.DriverSQLite:
		driver, err := sqlite3.WithInstance(mr.db, &sqlite3.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create sqlite3 driver: %w", err)
		}
		return driver, "sqlite3", nil
	case config.DriverPostgres:
		driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create postgres driver: %w", err)
		}
		return driver, "postgres", nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, mr.driver)
	}
}

func (mr *MigrationRunner) migrator() (*migrate.Migrate, error) {
	driver, name, err := mr.databaseDriver()
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrationFiles, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, name, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.migrator()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Printf("Warning: database is in dirty state at version %d, forcing version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	log.Printf("Current migration version: %d", version)

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("No new migrations to apply")
	} else {
		newVersion, _, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get new migration version: %w", err)
		}
		log.Printf("Successfully applied migrations. New version: %d", newVersion)
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.migrator()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrations waits for the audit database and applies pending migrations
func RunMigrations(db *sql.DB, driver string) error {
	runner := NewMigrationRunner(db, driver)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		log.Printf("Warning: failed to get migration status: %v", err)
	} else {
		log.Printf("Migration status - Version: %d, Dirty: %v", version, dirty)
	}

	return nil
}
