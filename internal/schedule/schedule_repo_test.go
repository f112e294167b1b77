package schedule_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go-manpower/internal/schedule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestEmployeeDayLockKeys(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("covers neighbouring days in ascending order", func(t *testing.T) {
		keys := schedule.EmployeeDayLockKeys([]string{"emp-b", "emp-a"}, date)

		assert.Equal(t, []string{
			"emp-a|2024-05-31", "emp-a|2024-06-01", "emp-a|2024-06-02",
			"emp-b|2024-05-31", "emp-b|2024-06-01", "emp-b|2024-06-02",
		}, keys)
	})

	t.Run("overnight shift and next morning share a key", func(t *testing.T) {
		night := schedule.EmployeeDayLockKeys([]string{"emp-a"}, date)
		morning := schedule.EmployeeDayLockKeys([]string{"emp-a"}, date.AddDate(0, 0, 1))

		assert.Subset(t, night, []string{"emp-a|2024-06-01", "emp-a|2024-06-02"})
		assert.Subset(t, morning, []string{"emp-a|2024-06-01", "emp-a|2024-06-02"})
	})

	t.Run("duplicate ids lock once", func(t *testing.T) {
		keys := schedule.EmployeeDayLockKeys([]string{"emp-a", "emp-a"}, date)

		assert.Len(t, keys, 3)
	})
}

func TestRepository_LockEmployeeDays(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lockSQL := regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")

	t.Run("takes every key in order", func(t *testing.T) {
		gormDB, mock := openMockGorm(t)
		for _, key := range []string{"emp-a|2024-05-31", "emp-a|2024-06-01", "emp-a|2024-06-02"} {
			mock.ExpectExec(lockSQL).WithArgs(key).WillReturnResult(sqlmock.NewResult(0, 1))
		}

		err := schedule.NewRepository(gormDB).LockEmployeeDays(context.Background(), []string{"emp-a"}, date)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		gormDB, mock := openMockGorm(t)
		mock.ExpectExec(lockSQL).WithArgs("emp-a|2024-05-31").WillReturnError(errors.New("deadlock detected"))

		err := schedule.NewRepository(gormDB).LockEmployeeDays(context.Background(), []string{"emp-a"}, date)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
