package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/abelaguiar/api-hydro-time/models"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// SettingsUpdate carries a partial update. Nil fields, zero integers and
// empty strings leave the stored value untouched.
type SettingsUpdate struct {
	DailyGoalMl             *int
	ReminderIntervalMinutes *int
	NotificationsEnabled    *bool
	Language                *string
	Theme                   *string
}

func (s *SettingsService) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsService) Update(ctx context.Context, userID string, upd SettingsUpdate) (*models.UserSettings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.DailyGoalMl != nil && *upd.DailyGoalMl > 0 {
		settings.DailyGoalMl = *upd.DailyGoalMl
	}
	if upd.ReminderIntervalMinutes != nil && *upd.ReminderIntervalMinutes > 0 {
		settings.ReminderIntervalMinutes = *upd.ReminderIntervalMinutes
	}
	if upd.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *upd.NotificationsEnabled
	}
	if upd.Language != nil && *upd.Language != "" {
		settings.Language = *upd.Language
	}
	if upd.Theme != nil && *upd.Theme != "" {
		settings.Theme = *upd.Theme
	}

	if err := s.db.WithContext(ctx).Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
