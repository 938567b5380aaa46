package auditlog

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Resources that write to the trail.
const (
	ResourceBooking  = "booking"
	ResourceSeva     = "seva"
	ResourceSettings = "settings"
	ResourceHero     = "hero"
	ResourceReport   = "report"
	ResourcePayment  = "payment"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AuditLog is one recorded admin or devotee action. UserID is nil for guests.
type AuditLog struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *uint          `gorm:"index" json:"userId"`
	Resource   string         `gorm:"size:50;index:idx_audit_resource" json:"resource"`
	ResourceID *uint          `gorm:"index:idx_audit_resource" json:"resourceId"`
	Action     string         `gorm:"size:100;not null;index" json:"action"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details"`
	IPAddress  string         `gorm:"size:45" json:"ipAddress"`
	Status     string         `gorm:"size:20;not null;index" json:"status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Entry is an AuditLog joined with the acting account's name.
type Entry struct {
	AuditLog
	UserName string `json:"userName,omitempty"`
}

// Filter narrows the admin listing. Empty fields match everything.
type Filter struct {
	UserID   *uint
	Resource string
	Action   string
	Status   string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

func (f *Filter) normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
}

type Page struct {
	Data       []Entry `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}
