package services

import (
	"errors"
	"fmt"
	"time"

	"fxledger/internal/models"
	"fxledger/internal/repositories"

	"github.com/google/uuid"
)

// AuditService writes session events to the audit store. With a nil
// repository events are validated and dropped, which is how a deployment
// with AUDIT_ENABLED=false runs.
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditLog  = errors.New("invalid audit log")
	ErrInvalidSessionID = errors.New("session ID is required")
	ErrAuditDisabled    = errors.New("audit store is disabled")
)

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionLogin:             true,
		models.AuditActionLogout:            true,
		models.AuditActionRegister:          true,
		models.AuditActionFailedLogin:       true,
		models.AuditActionFailedRegister:    true,
		models.AuditActionRateLimited:       true,
		models.AuditActionProtocolViolation: true,
		models.AuditActionSessionClosed:     true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if s.repo == nil {
		return nil
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log %s: %w", log, err)
	}

	return nil
}

// GetSessionActivity returns everything recorded for one connection, oldest first
func (s *AuditService) GetSessionActivity(sessionID string) ([]*models.AuditLog, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	if s.repo == nil {
		return nil, ErrAuditDisabled
	}
	return s.repo.GetBySessionID(sessionID)
}

func (s *AuditService) GetClientActivity(clientID uint32, offset, limit int) ([]*models.AuditLog, int64, error) {
	if s.repo == nil {
		return nil, 0, ErrAuditDisabled
	}
	return s.repo.GetByClientID(clientID, offset, limit)
}

// GetActionActivity pages through events of one kind, newest first
func (s *AuditService) GetActionActivity(action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if err := ValidateActivityType(action); err != nil {
		return nil, 0, err
	}
	if s.repo == nil {
		return nil, 0, ErrAuditDisabled
	}
	return s.repo.GetByAction(action, offset, limit)
}

func (s *AuditService) GetEvent(id uuid.UUID) (*models.AuditLog, error) {
	if s.repo == nil {
		return nil, ErrAuditDisabled
	}
	return s.repo.GetByID(id)
}

// CountFailedLogins counts failed logins for username within the last window
func (s *AuditService) CountFailedLogins(username string, window time.Duration) (int64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("window must be positive, got %s", window)
	}
	if s.repo == nil {
		return 0, ErrAuditDisabled
	}
	return s.repo.CountFailedLogins(username, time.Now().UTC().Add(-window))
}

// PruneOlderThan removes events older than retention
func (s *AuditService) PruneOlderThan(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", retention)
	}
	if s.repo == nil {
		return 0, ErrAuditDisabled
	}
	return s.repo.DeleteOlderThan(retention)
}

func (s *AuditService) LogLogin(sessionID string, clientID uint32, username, remote string) error {
	log := &models.AuditLog{
		ClientID:  &clientID,
		Username:  username,
		Action:    models.AuditActionLogin,
		SessionID: sessionID,
		Remote:    remote,
	}
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogFailedLogin(sessionID, username, remote, reason string) error {
	log := &models.AuditLog{
		Username:  username,
		Action:    models.AuditActionFailedLogin,
		SessionID: sessionID,
		Remote:    remote,
	}
	log.SetMetadata("reason", reason)
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogRegister(sessionID string, clientID uint32, username, remote string) error {
	log := &models.AuditLog{
		ClientID:  &clientID,
		Username:  username,
		Action:    models.AuditActionRegister,
		SessionID: sessionID,
		Remote:    remote,
	}
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogFailedRegister(sessionID, username, remote, reason string) error {
	log := &models.AuditLog{
		Username:  username,
		Action:    models.AuditActionFailedRegister,
		SessionID: sessionID,
		Remote:    remote,
	}
	log.SetMetadata("reason", reason)
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogLogout(sessionID string, clientID uint32, remote string) error {
	log := &models.AuditLog{
		ClientID:  &clientID,
		Action:    models.AuditActionLogout,
		SessionID: sessionID,
		Remote:    remote,
	}
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogRateLimited(sessionID, remote string) error {
	log := &models.AuditLog{
		Action:    models.AuditActionRateLimited,
		SessionID: sessionID,
		Remote:    remote,
	}
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogProtocolViolation(sessionID string, clientID *uint32, remote, detail string) error {
	log := &models.AuditLog{
		ClientID:  clientID,
		Action:    models.AuditActionProtocolViolation,
		SessionID: sessionID,
		Remote:    remote,
	}
	log.SetMetadata("detail", detail)
	return s.CreateAuditLog(log)
}

func (s *AuditService) LogSessionClosed(sessionID string, clientID *uint32, remote, reason string) error {
	log := &models.AuditLog{
		ClientID:  clientID,
		Action:    models.AuditActionSessionClosed,
		SessionID: sessionID,
		Remote:    remote,
	}
	log.SetMetadata("reason", reason)
	return s.CreateAuditLog(log)
}
