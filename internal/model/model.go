package model

import (
	"time"
)

// Model is the shared base for persisted entities. Deletion is permanent
// in this system (no soft-delete column): removing an intern or a rule
// is an explicit, audited, final action.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
