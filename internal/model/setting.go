package model

// Setting is the key-value config table of the original system.
type Setting struct {
	Key   string `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value string `gorm:"type:varchar(255);not null" json:"value"`
}

const (
	// SettingUpcomingWindowDays holds the day threshold below which a
	// contract is flagged as "Venc.Proximo".
	SettingUpcomingWindowDays = "proximos_dias"
	// SettingAdminPassword holds the bcrypt hash of the admin password.
	SettingAdminPassword = "admin_password"
)
