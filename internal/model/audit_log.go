package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuditLog records a mutation or a denied mutation on an owned record.
type AuditLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Timestamp  time.Time `json:"timestamp" gorm:"index"`
	ActionType string    `json:"action_type" gorm:"type:text;index"`
	Result     *bool     `json:"result"`
	Resource   string    `json:"resource" gorm:"type:text;index"`
	ResourceID string    `json:"resource_id" gorm:"type:text"`
	ActorID    string    `json:"actor_id" gorm:"type:text;index"`
	UserID     string    `json:"user_id" gorm:"type:text"`
	Context    JSONMap   `json:"context" gorm:"type:jsonb"`
	RequestID  string    `json:"request_id" gorm:"type:text"`
	ClientIP   string    `json:"client_ip" gorm:"type:text"`
	UserAgent  string    `json:"user_agent" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Audit action types
const (
	ActionResourceCreate    = "resource_create"
	ActionResourceUpdate    = "resource_update"
	ActionResourceDelete    = "resource_delete"
	ActionAssociationAdd    = "association_add"
	ActionAssociationRemove = "association_remove"
	ActionAccessDenied      = "access_denied"
)
