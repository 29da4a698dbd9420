package models

import "time"

// AuditLog represents the audit_logs table
// Every login, logout and mutation of a record writes one row
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}

// All lists every model managed by migrations
func All() []interface{} {
	return []interface{}{
		&Country{}, &State{}, &City{}, &Hospital{},
		&Vehicle{}, &Driver{}, &Patient{}, &Appointment{},
		&Group{}, &Permission{}, &GroupPermission{},
		&User{}, &Session{}, &AuditLog{},
	}
}
