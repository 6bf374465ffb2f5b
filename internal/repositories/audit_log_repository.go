package repositories

import (
	"errors"
	"fmt"
	"time"

	"fxledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAuditLogNotFound is returned when no audit log matches the lookup
var ErrAuditLogNotFound = errors.New("audit log not found")

// AuditLogRepository handles database operations for audit logs
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{
		db: db,
	}
}

// Create creates a new audit log entry
func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetByID retrieves an audit log by its ID
func (r *AuditLogRepository) GetByID(id uuid.UUID) (*models.AuditLog, error) {
	log := &models.AuditLog{}
	if err := r.db.Where("id = ?", id).First(log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuditLogNotFound
		}
		return nil, fmt.Errorf("failed to get audit log by ID: %w", err)
	}

	return log, nil
}

// GetByClientID retrieves audit logs for a ledger client, newest first
func (r *AuditLogRepository) GetByClientID(clientID uint32, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.page(r.db.Model(&models.AuditLog{}).Where("client_id = ?", clientID), offset, limit, "client")
}

// GetByAction retrieves audit logs for a specific action, newest first
func (r *AuditLogRepository) GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.page(r.db.Model(&models.AuditLog{}).Where("action = ?", action), offset, limit, "action")
}

func (r *AuditLogRepository) page(query *gorm.DB, offset, limit int, what string) ([]*models.AuditLog, int64, error) {
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var logs []*models.AuditLog
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs by %s: %w", what, err)
	}

	return logs, total, nil
}

// GetBySessionID returns every event of one session in the order it happened
func (r *AuditLogRepository) GetBySessionID(sessionID string) ([]*models.AuditLog, error) {
	var logs []*models.AuditLog
	if err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get audit logs for session: %w", err)
	}
	return logs, nil
}

// CountFailedLogins counts failed logins for a username in a time window
func (r *AuditLogRepository) CountFailedLogins(username string, since time.Time) (int64, error) {
	var count int64

	err := r.db.Model(&models.AuditLog{}).
		Where("action = ? AND username = ? AND created_at > ?",
			models.AuditActionFailedLogin, username, since).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count failed login attempts: %w", err)
	}

	return count, nil
}

// DeleteOlderThan removes audit logs older than the specified duration
func (r *AuditLogRepository) DeleteOlderThan(duration time.Duration) (int64, error) {
	cutoffTime := time.Now().UTC().Add(-duration)

	result := r.db.Where("created_at < ?", cutoffTime).Delete(&models.AuditLog{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old audit logs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
