package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abelaguiar/api-hydro-time/models"
)

const (
	MonthlyStatusCompleted = "completed"
	MonthlyStatusOnTrack   = "on_track"

	// The monthly goal is a fixed 30-day multiple of the daily goal, not
	// the actual day count of the current month.
	monthlyGoalDays = 30
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type StatsOverview struct {
	TodayTotal    int    `json:"todayTotal"`
	WeeklyTotal   int    `json:"weeklyTotal"`
	MonthlyTotal  int    `json:"monthlyTotal"`
	DailyGoal     int    `json:"dailyGoal"`
	DailyGoalMet  bool   `json:"dailyGoalMet"`
	MonthlyStatus string `json:"monthlyStatus"`
}

// Overview sums the user's intake over three calendar windows anchored to
// the request instant and compares today's total against the daily goal.
func (s *StatsService) Overview(ctx context.Context, userID string) (*StatsOverview, error) {
	return s.overviewAt(ctx, userID, time.Now())
}

func (s *StatsService) overviewAt(ctx context.Context, userID string, now time.Time) (*StatsOverview, error) {
	todayStart := dayStartLocal(now)
	todayEnd := todayStart.AddDate(0, 0, 1)
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	todayTotal, err := s.sumRange(ctx, userID, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	weeklyTotal, err := s.sumRange(ctx, userID, weekStart, now)
	if err != nil {
		return nil, err
	}
	monthlyTotal, err := s.sumRange(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	dailyGoal, err := s.dailyGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := MonthlyStatusOnTrack
	if monthlyTotal >= dailyGoal*monthlyGoalDays {
		status = MonthlyStatusCompleted
	}

	return &StatsOverview{
		TodayTotal:    todayTotal,
		WeeklyTotal:   weeklyTotal,
		MonthlyTotal:  monthlyTotal,
		DailyGoal:     dailyGoal,
		DailyGoalMet:  todayTotal >= dailyGoal,
		MonthlyStatus: status,
	}, nil
}

// sumRange totals amount_ml over the half-open interval [from, to).
func (s *StatsService) sumRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.IntakeLog{}).
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?",
			userID, from.UnixMilli(), to.UnixMilli()).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// dailyGoal reads the user's configured goal; a user without a settings row
// falls back to the default instead of erroring.
func (s *StatsService) dailyGoal(ctx context.Context, userID string) (int, error) {
	var settings models.UserSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultDailyGoalMl, nil
	}
	if err != nil {
		return 0, err
	}
	return settings.DailyGoalMl, nil
}

func dayStartLocal(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
