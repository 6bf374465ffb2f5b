package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin             = "login"
	AuditActionLogout            = "logout"
	AuditActionRegister          = "register"
	AuditActionFailedLogin       = "failed_login"
	AuditActionFailedRegister    = "failed_register"
	AuditActionRateLimited       = "rate_limited"
	AuditActionProtocolViolation = "protocol_violation"
	AuditActionSessionClosed     = "session_closed"
)

// AuditLog is a durable record of a session-level event
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primary_key" json:"id"`
	ClientID  *uint32   `gorm:"index" json:"client_id,omitempty"`
	Username  string    `gorm:"type:varchar(50)" json:"username,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	SessionID string    `gorm:"type:varchar(36);index" json:"session_id"`
	Remote    string    `gorm:"type:varchar(64)" json:"remote,omitempty"`
	Metadata  JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if al.Metadata == nil {
		return defaultValue
	}

	if value, exists := al.Metadata[key]; exists {
		return value
	}

	return defaultValue
}

func (al *AuditLog) String() string {
	clientStr := "anonymous"
	if al.ClientID != nil {
		clientStr = fmt.Sprintf("%d", *al.ClientID)
	}

	reason := ""
	if r, ok := al.GetMetadata("reason", "").(string); ok && r != "" {
		reason = ", Reason: " + r
	}

	return fmt.Sprintf("AuditLog[Client: %s, Action: %s, Session: %s, Remote: %s%s, Time: %s]",
		clientStr, al.Action, al.SessionID, al.Remote, reason, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// JSONBMap stores free-form metadata as JSON text
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if m == nil || len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}

func (m JSONBMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

func (m *JSONBMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var tmp map[string]interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*m = JSONBMap(tmp)
	return nil
}
