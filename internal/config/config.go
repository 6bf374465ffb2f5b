package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Password storage modes
const (
	PasswordModeBcrypt    = "bcrypt"
	PasswordModePlaintext = "plaintext"
)

// Audit store drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Security SecurityConfig
	Breaker  BreakerConfig
}

type ServerConfig struct {
	Host        string
	Port        string
	OpsPort     string
	Environment string
	// IdleTimeout closes a session that sends nothing for this long. Zero disables it.
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	SnapshotPath string
	LockPath     string
}

type DatabaseConfig struct {
	// AuditEnabled turns the audit store off entirely; events are then only logged.
	AuditEnabled    bool
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SecurityConfig struct {
	PasswordMode      string
	BCryptCost        int
	LoginRatePerSec   float64
	LoginBurst        int
	MaxFailedAttempts int
}

type BreakerConfig struct {
	MaxFailures  int
	ResetTimeout time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnv("SERVER_PORT", "8080"),
			OpsPort:         getEnv("OPS_PORT", "9090"),
			Environment:     getEnv("APP_ENV", "development"),
			IdleTimeout:     getDurationEnv("SESSION_IDLE_TIMEOUT", 0),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			SnapshotPath: getEnv("LEDGER_SNAPSHOT_PATH", "data/ledger.db"),
		},
		Database: DatabaseConfig{
			AuditEnabled:    getBoolEnv("AUDIT_ENABLED", true),
			Driver:          getEnv("AUDIT_DB_DRIVER", DriverSQLite),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_audit"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("AUDIT_SQLITE_PATH", "data/audit.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			PasswordMode:      getEnv("PASSWORD_MODE", PasswordModeBcrypt),
			BCryptCost:        getIntEnv("BCRYPT_COST", 10),
			LoginRatePerSec:   getFloatEnv("LOGIN_RATE_PER_SECOND", 1),
			LoginBurst:        getIntEnv("LOGIN_BURST", 5),
			MaxFailedAttempts: getIntEnv("MAX_FAILED_ATTEMPTS", 3),
		},
		Breaker: BreakerConfig{
			MaxFailures:  getIntEnv("PERSIST_BREAKER_MAX_FAILURES", 3),
			ResetTimeout: getDurationEnv("PERSIST_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
	}

	config.Storage.LockPath = getEnv("LEDGER_LOCK_PATH", config.Storage.SnapshotPath+".lock")

	switch config.Security.PasswordMode {
	case PasswordModeBcrypt, PasswordModePlaintext:
	default:
		log.Printf("WARNING: unknown PASSWORD_MODE %q, falling back to %s", config.Security.PasswordMode, PasswordModeBcrypt)
		config.Security.PasswordMode = PasswordModeBcrypt
	}
	if config.Security.PasswordMode == PasswordModePlaintext && config.IsProduction() {
		log.Println("WARNING: PASSWORD_MODE=plaintext stores credentials unhashed; only use it to read legacy snapshots")
	}

	return config
}

// Addr is the TCP address of the ledger session listener
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// OpsAddr is the address of the health and metrics HTTP server
func (c *ServerConfig) OpsAddr() string {
	return net.JoinHostPort(c.Host, c.OpsPort)
}

// DSN returns the connection string for the configured audit driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL returns the database URL golang-migrate expects
func (c *DatabaseConfig) MigrationURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + filepath.ToSlash(c.SQLitePath)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
