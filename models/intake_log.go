package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntakeLog is one recorded drinking event. Timestamp is the client-supplied
// event time; CreatedAt is when the row was written.
type IntakeLog struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index;not null" json:"userId"`
	AmountMl        int       `gorm:"not null" json:"amountMl"`
	Timestamp       Millis    `gorm:"not null" json:"timestamp"`
	DurationSeconds int       `gorm:"not null;default:0" json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (l *IntakeLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
