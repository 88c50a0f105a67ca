package test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/model"
)

// SetupDB points the global database at a fresh shared in-memory SQLite
// store, migrated but unseeded, and restores the previous handle when
// the test ends.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Intern{},
		&model.Rule{},
		&model.Setting{},
		&model.AuditLog{},
	))

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
	})
	return db
}
