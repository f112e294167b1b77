package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "go-manpower/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                func(ctx context.Context, a *Attendance) error
	findByEmployeeAndDateFn func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	findAllFn               func(ctx context.Context, companyID, employeeID string, from, to *time.Time) ([]Attendance, error)
	updateFn                func(ctx context.Context, a *Attendance) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                    { return f }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, companyID, employeeID, date)
}
func (f *fakeRepo) FindAll(ctx context.Context, companyID, employeeID string, from, to *time.Time) ([]Attendance, error) {
	return f.findAllFn(ctx, companyID, employeeID, from, to)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error { return f.updateFn(ctx, a) }
func (f *fakeRepo) CountWorkedDays(ctx context.Context, companyID string, employeeIDs []string, from, to time.Time) (map[string]int, error) {
	return map[string]int{}, nil
}

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time { return time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC) }
}

func TestService_ClockInAndClockOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	var saved Attendance
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
		if saved.ID == uuid.Nil {
			return nil, gorm.ErrRecordNotFound
		}
		return &saved, nil
	}

	svc := NewService(db, repo).(*service)
	svc.now = fixedClock(8, 0)

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.ClockIn(ctx, companyID, employeeID, ClockInRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, inResp.ID)
	assert.Equal(t, StatusPresent, inResp.Status)
	assert.Equal(t, "2024-06-01", inResp.AttendanceDate)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.ClockOut(ctx, companyID, employeeID, ClockOutRequest{})
	require.NoError(t, err)
	assert.NotNil(t, outResp.ClockOut)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.ClockOut(ctx, companyID, employeeID, ClockOutRequest{})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("late after quarter past nine", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		repo := &fakeRepo{
			createFn: func(ctx context.Context, a *Attendance) error { return nil },
			findByEmployeeAndDateFn: func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := NewService(db, repo).(*service)
		svc.now = fixedClock(9, 16)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.ClockIn(ctx, companyID, employeeID, ClockInRequest{})

		require.NoError(t, err)
		assert.Equal(t, StatusLate, resp.Status)
	})

	t.Run("duplicate", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		repo := &fakeRepo{
			findByEmployeeAndDateFn: func(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
				return &Attendance{ID: uuid.New()}, nil
			},
		}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.ClockIn(ctx, companyID, employeeID, ClockInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid employee", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()
		svc := NewService(db, &fakeRepo{})

		_, err := svc.ClockIn(ctx, companyID, "nope", ClockInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
	})
}

func TestService_Record(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("supervisor records a past worked day", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()
		var saved Attendance
		repo := &fakeRepo{createFn: func(ctx context.Context, a *Attendance) error { saved = *a; return nil }}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()
		resp, err := svc.Record(ctx, companyID, RecordRequest{EmployeeID: uuid.NewString(), Date: "2024-05-20"})

		require.NoError(t, err)
		assert.Equal(t, "2024-05-20", resp.AttendanceDate)
		assert.Equal(t, SourceSupervisor, saved.Source)
	})

	t.Run("bad date", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()
		svc := NewService(db, &fakeRepo{})

		_, err := svc.Record(ctx, companyID, RecordRequest{EmployeeID: uuid.NewString(), Date: "20-05-2024"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
	})
}

func TestService_GetAll_ParsesRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, companyID, employeeID string, from, to *time.Time) ([]Attendance, error) {
			require.NotNil(t, from)
			assert.Nil(t, to)
			assert.Equal(t, "2024-06-01", from.Format(time.DateOnly))
			return []Attendance{{ID: uuid.New(), AttendanceDate: *from, ClockIn: *from}}, nil
		},
	}
	svc := NewService(db, repo)

	rows, err := svc.GetAll(context.Background(), uuid.NewString(), ListFilter{From: "2024-06-01"})

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
