package database

import (
	"fmt"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"controle-estagiarios/config"
	"controle-estagiarios/internal/lifecycle"
	"controle-estagiarios/internal/model"
	"controle-estagiarios/tools"
)

var DB *gorm.DB

var autoMigrateModels = []any{
	&model.Intern{},
	&model.Rule{},
	&model.Setting{},
	&model.AuditLog{},
}

// defaultRules seed the universities whose internship contracts run the
// full 24-month term with no intermediate renewals.
var defaultRules = []model.Rule{
	{Keyword: "UERJ", Months: lifecycle.ContractCeilingMonths},
	{Keyword: "UNIRIO", Months: lifecycle.ContractCeilingMonths},
	{Keyword: "MACKENZIE", Months: lifecycle.ContractCeilingMonths},
}

func Init() {
	cfg := config.Get()

	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	}
	switch cfg.Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.DBName,
		)
		dialector = mysql.Open(dsn)
	default:
		// Single-file embedded store, single writer.
		dialector = sqlite.Open(cfg.DB.File)
	}

	db, err := gorm.Open(dialector, gormConfig)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))
	tools.PanicOnErr(seed(DB))
}

// seed inserts the default rule set and settings on first boot. Existing
// rows are never overwritten: the admin owns them after that.
func seed(db *gorm.DB) error {
	for _, rule := range defaultRules {
		var count int64
		if err := db.Model(&model.Rule{}).Where("keyword = ?", rule.Keyword).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&rule).Error; err != nil {
				return err
			}
		}
	}

	defaults := map[string]string{
		model.SettingUpcomingWindowDays: strconv.Itoa(lifecycle.DefaultUpcomingWindowDays),
		model.SettingAdminPassword:      tools.PasswordEncrypt(config.Get().Admin.InitialPassword),
	}
	for key, value := range defaults {
		var count int64
		if err := db.Model(&model.Setting{}).Where("`key` = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&model.Setting{Key: key, Value: value}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// GetSetting reads a config value, returning the fallback when unset.
func GetSetting(key, fallback string) string {
	var setting model.Setting
	if err := DB.Where("`key` = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	return setting.Value
}

// SetSetting upserts a config value.
func SetSetting(key, value string) error {
	setting := model.Setting{Key: key, Value: value}
	return DB.Save(&setting).Error
}

// UpcomingWindowDays returns the configured warning window in days.
func UpcomingWindowDays() int {
	raw := GetSetting(model.SettingUpcomingWindowDays, "")
	if days, err := strconv.Atoi(raw); err == nil && days >= 1 {
		return days
	}
	return lifecycle.DefaultUpcomingWindowDays
}

// LoadRules reads the full rule table into the calculator's value type.
func LoadRules() ([]lifecycle.Rule, error) {
	var rows []model.Rule
	if err := DB.Order("keyword").Find(&rows).Error; err != nil {
		return nil, err
	}
	rules := make([]lifecycle.Rule, 0, len(rows))
	for _, r := range rows {
		rules = append(rules, lifecycle.Rule{Keyword: r.Keyword, Months: r.Months})
	}
	return rules, nil
}
