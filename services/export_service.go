package services

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/abelaguiar/api-hydro-time/models"
)

type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

type ExportedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ExportSummary struct {
	TotalLogs       int `json:"totalLogs"`
	TotalMlConsumed int `json:"totalMlConsumed"`
}

type ExportData struct {
	ExportDate time.Time            `json:"exportDate"`
	User       ExportedUser         `json:"user"`
	Settings   *models.UserSettings `json:"settings"`
	IntakeLogs []models.IntakeLog   `json:"intakeLogs"`
	Summary    ExportSummary        `json:"summary"`
}

// UserData collects the user's full dataset for a JSON dump, newest log
// first.
func (s *ExportService) UserData(ctx context.Context, userID string) (*ExportData, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var settings *models.UserSettings
	var row models.UserSettings
	err = s.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if err == nil {
		settings = &row
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	logs := []models.IntakeLog{}
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	totalMl := 0
	for _, log := range logs {
		totalMl += log.AmountMl
	}

	return &ExportData{
		ExportDate: time.Now(),
		User: ExportedUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		Settings:   settings,
		IntakeLogs: logs,
		Summary: ExportSummary{
			TotalLogs:       len(logs),
			TotalMlConsumed: totalMl,
		},
	}, nil
}

// WriteCSV streams the user's logs in event order as CSV rows.
func (s *ExportService) WriteCSV(ctx context.Context, userID string, w io.Writer) error {
	logs := []models.IntakeLog{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&logs).Error
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Timestamp", "Amount (ml)", "Duration (s)"}); err != nil {
		return err
	}
	for _, log := range logs {
		row := []string{
			log.ID,
			log.Timestamp.Time().UTC().Format("2006-01-02T15:04:05.000Z"),
			strconv.Itoa(log.AmountMl),
			strconv.Itoa(log.DurationSeconds),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
