package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelaguiar/api-hydro-time/models"
)

func ptr[T any](v T) *T { return &v }

func TestSettingsGet(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingsService(db)
	user := createTestUser(t, db, "ana@example.com")

	_, err := svc.Get(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	settings := models.DefaultUserSettings(user.ID)
	require.NoError(t, db.Create(&settings).Error)

	got, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDailyGoalMl, got.DailyGoalMl)
}

func TestSettingsUpdate_Partial(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingsService(db)
	user := createTestUser(t, db, "ana@example.com")

	settings := models.DefaultUserSettings(user.ID)
	require.NoError(t, db.Create(&settings).Error)

	got, err := svc.Update(context.Background(), user.ID, SettingsUpdate{
		DailyGoalMl: ptr(3000),
		Theme:       ptr("dark"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3000, got.DailyGoalMl)
	assert.Equal(t, "dark", got.Theme)
	// untouched fields keep prior values
	assert.Equal(t, models.DefaultReminderIntervalMinutes, got.ReminderIntervalMinutes)
	assert.True(t, got.NotificationsEnabled)
	assert.Equal(t, models.DefaultLanguage, got.Language)
}

func TestSettingsUpdate_ZeroAndEmptyAreSkipped(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingsService(db)
	user := createTestUser(t, db, "ana@example.com")

	settings := models.DefaultUserSettings(user.ID)
	require.NoError(t, db.Create(&settings).Error)

	got, err := svc.Update(context.Background(), user.ID, SettingsUpdate{
		DailyGoalMl:             ptr(0),
		ReminderIntervalMinutes: ptr(-5),
		Language:                ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDailyGoalMl, got.DailyGoalMl)
	assert.Equal(t, models.DefaultReminderIntervalMinutes, got.ReminderIntervalMinutes)
	assert.Equal(t, models.DefaultLanguage, got.Language)
}

func TestSettingsUpdate_NotificationsToggle(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingsService(db)
	user := createTestUser(t, db, "ana@example.com")

	settings := models.DefaultUserSettings(user.ID)
	require.NoError(t, db.Create(&settings).Error)

	got, err := svc.Update(context.Background(), user.ID, SettingsUpdate{
		NotificationsEnabled: ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, got.NotificationsEnabled)

	// absent pointer leaves the stored false in place
	got, err = svc.Update(context.Background(), user.ID, SettingsUpdate{})
	require.NoError(t, err)
	assert.False(t, got.NotificationsEnabled)
}

func TestSettingsUpdate_MissingRow(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingsService(db)
	user := createTestUser(t, db, "ana@example.com")

	_, err := svc.Update(context.Background(), user.ID, SettingsUpdate{DailyGoalMl: ptr(3000)})
	assert.ErrorIs(t, err, ErrNotFound)
}
