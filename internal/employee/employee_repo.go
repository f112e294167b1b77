package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-manpower/internal/shared/connection"
	"go-manpower/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Employee, error)
	FindByID(ctx context.Context, companyID, id string) (*Employee, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Employee, error)
	ListIDs(ctx context.Context, companyID string) ([]string, error)
	Update(ctx context.Context, e *Employee) error
	CountSubSections(ctx context.Context, companyID string, ids []string) (int64, error)
	ReplaceSubSections(ctx context.Context, employeeID uuid.UUID, subSectionIDs []uuid.UUID) error
	ReplacePriorities(ctx context.Context, companyID, employeeID uuid.UUID, categories []string) error
	HasApprovedLeaveOn(ctx context.Context, companyID, employeeID string, date time.Time) (bool, error)
	SetWorkStatus(ctx context.Context, companyID string, ids []string, workStatus string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.session(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Employee, error) {
	db := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("SubSections").
		Preload("Priorities")

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if len(filter.IDs) > 0 {
		db = db.Where("id IN ?", filter.IDs)
	}
	if filter.SubSectionID != "" {
		db = db.Where("id IN (?)", r.session(ctx).
			Table("employee_sub_sections").
			Select("employee_id").
			Where("sub_section_id = ?", filter.SubSectionID))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("(LOWER(full_name) LIKE ? OR LOWER(nik) LIKE ?)", like, like)
	}

	var employees []Employee
	err := db.Order("full_name").Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Employee, error) {
	var e Employee
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("SubSections").
		Preload("Priorities").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Employee, error) {
	var e Employee
	err := r.session(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) ListIDs(ctx context.Context, companyID string) ([]string, error) {
	var ids []string
	err := r.session(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.session(ctx).Omit(clause.Associations).Save(e).Error
}

func (r *repository) CountSubSections(ctx context.Context, companyID string, ids []string) (int64, error) {
	var count int64
	err := r.session(ctx).
		Table("sub_sections").
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}

func (r *repository) ReplaceSubSections(ctx context.Context, employeeID uuid.UUID, subSectionIDs []uuid.UUID) error {
	db := r.session(ctx)
	if err := db.Exec("DELETE FROM employee_sub_sections WHERE employee_id = ?", employeeID).Error; err != nil {
		return err
	}
	for _, id := range subSectionIDs {
		if err := db.Exec(
			"INSERT INTO employee_sub_sections (employee_id, sub_section_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			employeeID, id,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) ReplacePriorities(ctx context.Context, companyID, employeeID uuid.UUID, categories []string) error {
	db := r.session(ctx)
	if err := db.Where("employee_id = ?", employeeID).Delete(&PickingPriority{}).Error; err != nil {
		return err
	}
	if len(categories) == 0 {
		return nil
	}
	rows := make([]PickingPriority, len(categories))
	for i, c := range categories {
		rows[i] = PickingPriority{ID: uuid.New(), CompanyID: companyID, EmployeeID: employeeID, Category: c}
	}
	return db.Create(&rows).Error
}

func (r *repository) HasApprovedLeaveOn(ctx context.Context, companyID, employeeID string, date time.Time) (bool, error) {
	var count int64
	err := r.session(ctx).
		Table("leaves").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", "APPROVED").
		Where("start_date <= ? AND end_date >= ?", date, date).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SetWorkStatus(ctx context.Context, companyID string, ids []string, workStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.session(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Update("work_status", workStatus).Error
}
