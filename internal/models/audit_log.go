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
	AuditActionSummaryViewed   = "summary_viewed"
	AuditActionSummaryExported = "summary_exported"
	AuditActionOverviewViewed  = "overview_viewed"
	AuditActionAuditLogsViewed = "audit_logs_viewed"
)

var auditActions = map[string]bool{
	AuditActionSummaryViewed:   true,
	AuditActionSummaryExported: true,
	AuditActionOverviewViewed:  true,
	AuditActionAuditLogsViewed: true,
}

// IsValidAuditAction reports whether action is one the dashboard records.
func IsValidAuditAction(action string) bool {
	return auditActions[action]
}

// AuditLog records who looked at or exported which dashboard summary.
type AuditLog struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string        `gorm:"type:varchar(255);index" json:"user_id,omitempty"`
	UserRole   string        `gorm:"type:varchar(50)" json:"user_role,omitempty"`
	Action     string        `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string        `gorm:"type:varchar(100);not null;index" json:"resource"`
	ResourceID string        `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	TraceID    string        `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	IPAddress  string        `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string        `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   AuditMetadata `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time     `gorm:"not null;index" json:"created_at"`
}

// AuditLogFilter narrows the admin audit log listing.
type AuditLogFilter struct {
	UserID    string
	Action    string
	Resource  string
	StartDate *time.Time
	EndDate   *time.Time
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(AuditMetadata)
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
	userStr := "anonymous"
	if al.UserID != "" {
		userStr = al.UserID
	}

	return fmt.Sprintf("AuditLog[User: %s, Action: %s, Resource: %s/%s, IP: %s, Time: %s]",
		userStr, al.Action, al.Resource, al.ResourceID, al.IPAddress, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// AuditMetadata is the free-form part of an audit row, stored as JSON text
// so the same column works on postgres and sqlite.
type AuditMetadata map[string]interface{}

func (m AuditMetadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (m *AuditMetadata) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AuditMetadata", value)
	}

	if len(raw) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(raw, m)
}
