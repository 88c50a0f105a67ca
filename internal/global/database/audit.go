package database

import (
	"time"

	"controle-estagiarios/internal/global/logger"
	"controle-estagiarios/internal/model"
)

// Audit appends an entry to the administrative action trail. Failures
// are logged but never bubble up: auditing must not block the write it
// describes.
func Audit(action, details string) {
	entry := model.AuditLog{
		Timestamp: time.Now(),
		Action:    action,
		Details:   details,
	}
	if err := DB.Create(&entry).Error; err != nil {
		logger.New("Audit").Error("failed to record audit entry",
			"error", err,
			"action", action,
		)
	}
}
