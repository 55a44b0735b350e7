package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Defaults applied when the settings row is created alongside the user.
const (
	DefaultDailyGoalMl             = 2500
	DefaultReminderIntervalMinutes = 60
	DefaultLanguage                = "pt-BR"
	DefaultTheme                   = "light"
)

type UserSettings struct {
	ID                      string    `gorm:"primaryKey" json:"id"`
	UserID                  string    `gorm:"uniqueIndex;not null" json:"userId"`
	DailyGoalMl             int       `gorm:"not null" json:"dailyGoalMl"`
	ReminderIntervalMinutes int       `gorm:"not null" json:"reminderIntervalMinutes"`
	NotificationsEnabled    bool      `gorm:"not null" json:"notificationsEnabled"`
	Language                string    `gorm:"not null" json:"language"`
	Theme                   string    `gorm:"not null" json:"theme"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// DefaultUserSettings builds the settings row every new user starts with.
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:                  userID,
		DailyGoalMl:             DefaultDailyGoalMl,
		ReminderIntervalMinutes: DefaultReminderIntervalMinutes,
		NotificationsEnabled:    true,
		Language:                DefaultLanguage,
		Theme:                   DefaultTheme,
	}
}

func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
