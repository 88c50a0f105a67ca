package model

import (
	"time"
)

// AuditLog records every administrative write (intern, rule and setting
// changes) with a human-readable action and details line.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	Action    string    `gorm:"type:varchar(64);not null" json:"action"`
	Details   string    `gorm:"type:varchar(255)" json:"details"`
}
