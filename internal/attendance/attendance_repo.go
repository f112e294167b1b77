package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-manpower/internal/attendance/errors"
	"go-manpower/internal/shared/connection"
	"go-manpower/internal/tenant"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context, companyID string, employeeID string, from, to *time.Time) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	CountWorkedDays(ctx context.Context, companyID string, employeeIDs []string, from, to time.Time) (map[string]int, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) session(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	err := r.session(ctx).Create(a).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendanceerrors.ErrAlreadyClockedIn
	}
	return err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format(time.DateOnly)).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAll(ctx context.Context, companyID string, employeeID string, from, to *time.Time) ([]Attendance, error) {
	db := r.session(ctx).Scopes(tenant.Scope(companyID))
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}
	if from != nil {
		db = db.Where("attendance_date >= ?", from.Format(time.DateOnly))
	}
	if to != nil {
		db = db.Where("attendance_date <= ?", to.Format(time.DateOnly))
	}

	var rows []Attendance
	err := db.Order("attendance_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.session(ctx).Save(a).Error
}

// CountWorkedDays returns distinct worked dates per employee in [from, to).
func (r *repository) CountWorkedDays(ctx context.Context, companyID string, employeeIDs []string, from, to time.Time) (map[string]int, error) {
	out := make(map[string]int, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		EmployeeID string
		Days       int
	}
	err := r.session(ctx).
		Model(&Attendance{}).
		Select("employee_id::text AS employee_id, COUNT(DISTINCT attendance_date) AS days").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id IN ?", employeeIDs).
		Where("attendance_date >= ? AND attendance_date < ?", from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.EmployeeID] = row.Days
	}
	return out, nil
}
