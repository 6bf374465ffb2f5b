package repositories

import (
	"time"

	"fxledger/internal/ledger"
	"fxledger/internal/models"

	"github.com/google/uuid"
)

// SnapshotRepositoryInterface defines the contract for durable ledger storage
type SnapshotRepositoryInterface interface {
	// Load returns ErrSnapshotNotFound when nothing has been saved yet
	Load() (*ledger.Ledger, error)
	// Save replaces the stored snapshot atomically
	Save(l *ledger.Ledger) error
	Path() string
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	GetByClientID(clientID uint32, offset, limit int) ([]*models.AuditLog, int64, error)
	GetBySessionID(sessionID string) ([]*models.AuditLog, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	CountFailedLogins(username string, since time.Time) (int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
