package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abelaguiar/api-hydro-time/config"
	"github.com/abelaguiar/api-hydro-time/models"
)

// openTestDB gives each test its own in-memory database with the full
// schema. A single connection keeps SQLite from splitting :memory: across
// the pool.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Password: "irrelevant"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedLog(t *testing.T, db *gorm.DB, userID string, amountMl int, at time.Time) *models.IntakeLog {
	t.Helper()
	log := &models.IntakeLog{
		UserID:    userID,
		AmountMl:  amountMl,
		Timestamp: models.MillisOf(at),
	}
	require.NoError(t, db.Create(log).Error)
	return log
}
