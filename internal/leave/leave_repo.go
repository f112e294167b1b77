package leave

import (
	"context"
	"database/sql"
	"time"

	"go-manpower/internal/shared/connection"
	"go-manpower/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Leave, error)
	FindByID(ctx context.Context, companyID, id string) (*Leave, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, companyID, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	HasApprovedCovering(ctx context.Context, companyID, employeeID string, day time.Time, excludeID *string) (bool, error)
	SetEmployeeOnLeave(ctx context.Context, companyID, employeeID string, onLeave bool) error
	EmployeesOnApprovedLeave(ctx context.Context, companyID string, employeeIDs []string, day time.Time) (map[string]bool, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.session(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Leave, error) {
	db := r.session(ctx).Scopes(tenant.Scope(companyID))
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var leaves []Leave
	err := db.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Leave, error) {
	var l Leave
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Leave, error) {
	var l Leave
	err := r.session(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.session(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Leave{}, "id = ?", id).Error
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.session(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.session(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status NOT IN ?", []string{StatusCanceled, StatusRejected}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) HasApprovedCovering(ctx context.Context, companyID, employeeID string, day time.Time, excludeID *string) (bool, error) {
	db := r.session(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", day, day)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) SetEmployeeOnLeave(ctx context.Context, companyID, employeeID string, onLeave bool) error {
	return r.session(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(companyID)).
		Update("on_leave", onLeave).Error
}

// EmployeesOnApprovedLeave returns the subset of employeeIDs with an approved
// leave covering day.
func (r *repository) EmployeesOnApprovedLeave(ctx context.Context, companyID string, employeeIDs []string, day time.Time) (map[string]bool, error) {
	out := make(map[string]bool)
	if len(employeeIDs) == 0 {
		return out, nil
	}

	var ids []string
	err := r.session(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(companyID)).
		Select("DISTINCT employee_id::text").
		Where("employee_id IN ?", employeeIDs).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", day, day).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
