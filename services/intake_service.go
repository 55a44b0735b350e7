package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/abelaguiar/api-hydro-time/models"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{db: db}
}

func (s *IntakeService) Create(ctx context.Context, userID string, amountMl int, timestamp models.Millis, durationSeconds int) (*models.IntakeLog, error) {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	log := models.IntakeLog{
		UserID:          userID,
		AmountMl:        amountMl,
		Timestamp:       timestamp,
		DurationSeconds: durationSeconds,
	}
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListFilter bounds are inclusive at both ends, unlike the stats windows
// which are half-open.
type ListFilter struct {
	StartDate *models.Millis
	EndDate   *models.Millis
	Limit     int
	Offset    int
}

// List returns one page of the user's logs, newest event first, plus the
// total count over the same filter regardless of limit/offset.
func (s *IntakeService) List(ctx context.Context, userID string, f ListFilter) ([]models.IntakeLog, int64, ListFilter, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	base := s.db.WithContext(ctx).Model(&models.IntakeLog{}).Where("user_id = ?", userID)
	if f.StartDate != nil {
		base = base.Where("timestamp >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		base = base.Where("timestamp <= ?", *f.EndDate)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, f, err
	}

	logs := []models.IntakeLog{}
	err := base.Order("timestamp DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, f, err
	}
	return logs, total, f, nil
}

// Delete removes a log the caller owns. A missing id is ErrNotFound; a log
// owned by someone else is ErrForbidden, existence is not hidden.
func (s *IntakeService) Delete(ctx context.Context, userID, id string) error {
	var log models.IntakeLog
	err := s.db.WithContext(ctx).First(&log, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if log.UserID != userID {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(&log).Error
}
