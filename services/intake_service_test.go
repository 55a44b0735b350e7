package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelaguiar/api-hydro-time/models"
)

func TestIntakeCreate(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)
	user := createTestUser(t, db, "ana@example.com")

	log, err := svc.Create(context.Background(), user.ID, 250, models.Millis(1707931200000), 12)
	require.NoError(t, err)
	assert.NotEmpty(t, log.ID)
	assert.Equal(t, user.ID, log.UserID)
	assert.Equal(t, 250, log.AmountMl)
	assert.Equal(t, models.Millis(1707931200000), log.Timestamp)
	assert.Equal(t, 12, log.DurationSeconds)

	// negative duration is normalized to the zero default
	log, err = svc.Create(context.Background(), user.ID, 100, models.Millis(1707931200000), -5)
	require.NoError(t, err)
	assert.Equal(t, 0, log.DurationSeconds)
}

func TestIntakeList_TotalIndependentOfPage(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)
	user := createTestUser(t, db, "ana@example.com")

	base := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedLog(t, db, user.ID, 100, base.Add(time.Duration(i)*time.Hour))
	}

	logs, total, applied, err := svc.List(context.Background(), user.ID, ListFilter{Limit: 3, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, logs, 3)
	assert.EqualValues(t, 7, total)
	assert.Equal(t, 3, applied.Limit)
	assert.Equal(t, 2, applied.Offset)
}

func TestIntakeList_OrderNewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)
	user := createTestUser(t, db, "ana@example.com")

	early := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	late := early.Add(2 * time.Hour)
	seedLog(t, db, user.ID, 100, early)
	seedLog(t, db, user.ID, 200, late)

	logs, _, _, err := svc.List(context.Background(), user.ID, ListFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 200, logs[0].AmountMl)
	assert.Equal(t, 100, logs[1].AmountMl)
}

func TestIntakeList_LimitDefaultsAndCap(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)
	user := createTestUser(t, db, "ana@example.com")

	_, _, applied, err := svc.List(context.Background(), user.ID, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, applied.Limit)
	assert.Equal(t, 0, applied.Offset)

	_, _, applied, err = svc.List(context.Background(), user.ID, ListFilter{Limit: -10, Offset: -4})
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, applied.Limit)
	assert.Equal(t, 0, applied.Offset)

	_, _, applied, err = svc.List(context.Background(), user.ID, ListFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, MaxListLimit, applied.Limit)
}

func TestIntakeList_DateBoundsInclusive(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)
	user := createTestUser(t, db, "ana@example.com")

	for ms := int64(1000); ms <= 5000; ms += 1000 {
		log := &models.IntakeLog{UserID: user.ID, AmountMl: 100, Timestamp: models.Millis(ms)}
		require.NoError(t, db.Create(log).Error)
	}

	start := models.Millis(2000)
	end := models.Millis(4000)
	logs, total, _, err := svc.List(context.Background(), user.ID, ListFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, logs, 3)
	assert.Equal(t, models.Millis(4000), logs[0].Timestamp)
	assert.Equal(t, models.Millis(2000), logs[2].Timestamp)
}

func TestIntakeList_ScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)
	ana := createTestUser(t, db, "ana@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	seedLog(t, db, ana.ID, 100, time.Now())
	seedLog(t, db, bob.ID, 999, time.Now())

	logs, total, _, err := svc.List(context.Background(), ana.ID, ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, logs, 1)
	assert.Equal(t, ana.ID, logs[0].UserID)
}

func TestIntakeDelete(t *testing.T) {
	db := openTestDB(t)
	svc := NewIntakeService(db)
	ana := createTestUser(t, db, "ana@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	log := seedLog(t, db, ana.ID, 100, time.Now())

	// someone else's log is forbidden, not hidden
	assert.ErrorIs(t, svc.Delete(context.Background(), bob.ID, log.ID), ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), ana.ID, log.ID))

	// second delete of the same id now reports absence
	assert.ErrorIs(t, svc.Delete(context.Background(), ana.ID, log.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), ana.ID, "never-existed"), ErrNotFound)
}
