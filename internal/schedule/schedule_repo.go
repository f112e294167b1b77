package schedule

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	scheduleerrors "go-manpower/internal/schedule/errors"
	"go-manpower/internal/shared/connection"
	"go-manpower/internal/tenant"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fulfillment counts the accepted schedules of one manpower request.
type Fulfillment struct {
	Accepted int
	Male     int
	Female   int
}

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Schedule) error
	FindByID(ctx context.Context, companyID, id string) (*Schedule, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Schedule, error)
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Schedule, error)
	Update(ctx context.Context, s *Schedule) error
	ListByRequest(ctx context.Context, companyID, requestID string) ([]Schedule, error)
	FindAcceptedBetween(ctx context.Context, companyID string, employeeIDs []string, from, to time.Time) ([]Schedule, error)
	CountAccepted(ctx context.Context, companyID string, employeeIDs []string, from, to time.Time) (map[string]int, error)
	CountFulfillment(ctx context.Context, companyID, requestID string) (Fulfillment, error)
	DeleteByRequest(ctx context.Context, companyID, requestID string) (int64, error)
	LockEmployeeDays(ctx context.Context, employeeIDs []string, date time.Time) error

	CreateChange(ctx context.Context, c *ChangeRequest) error
	FindChangeForUpdate(ctx context.Context, companyID, id string) (*ChangeRequest, error)
	UpdateChange(ctx context.Context, c *ChangeRequest) error
	HasPendingChange(ctx context.Context, scheduleID string) (bool, error)
	FindChanges(ctx context.Context, companyID string, filter ChangeListFilter) ([]ChangeRequest, error)
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

func (r *repository) Create(ctx context.Context, s *Schedule) error {
	return mapRepositoryError(r.session(ctx).Omit(clause.Associations).Create(s).Error)
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Schedule, error) {
	var s Schedule
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Shift").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Schedule, error) {
	var s Schedule
	err := r.session(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Preload("Shift").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Schedule, error) {
	db := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Shift")

	if filter.Date != "" {
		db = db.Where("date = ?", filter.Date)
	}
	if filter.From != "" {
		db = db.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		db = db.Where("date <= ?", filter.To)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ManPowerRequestID != "" {
		db = db.Where("man_power_request_id = ?", filter.ManPowerRequestID)
	}
	if filter.Visibility != "" {
		db = db.Where("visibility = ?", filter.Visibility)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var schedules []Schedule
	err := db.Order("date, created_at").Find(&schedules).Error
	return schedules, err
}

func (r *repository) Update(ctx context.Context, s *Schedule) error {
	return mapRepositoryError(r.session(ctx).Omit(clause.Associations).Save(s).Error)
}

func (r *repository) ListByRequest(ctx context.Context, companyID, requestID string) ([]Schedule, error) {
	var schedules []Schedule
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Shift").
		Where("man_power_request_id = ?", requestID).
		Order("created_at").
		Find(&schedules).Error
	return schedules, err
}

// FindAcceptedBetween loads accepted schedules with their shifts for the
// given employees on dates in [from, to].
func (r *repository) FindAcceptedBetween(ctx context.Context, companyID string, employeeIDs []string, from, to time.Time) ([]Schedule, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var schedules []Schedule
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Shift").
		Where("employee_id IN ?", employeeIDs).
		Where("status = ?", StatusAccepted).
		Where("date BETWEEN ? AND ?", from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Find(&schedules).Error
	return schedules, err
}

// CountAccepted returns accepted schedules per employee dated in [from, to).
func (r *repository) CountAccepted(ctx context.Context, companyID string, employeeIDs []string, from, to time.Time) (map[string]int, error) {
	out := make(map[string]int, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		EmployeeID string
		Total      int
	}
	err := r.session(ctx).
		Model(&Schedule{}).
		Select("employee_id::text AS employee_id, COUNT(*) AS total").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id IN ?", employeeIDs).
		Where("status = ?", StatusAccepted).
		Where("date >= ? AND date < ?", from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.EmployeeID] = row.Total
	}
	return out, nil
}

func (r *repository) CountFulfillment(ctx context.Context, companyID, requestID string) (Fulfillment, error) {
	var f Fulfillment
	err := r.session(ctx).
		Table("schedules AS s").
		Select(`COUNT(*) AS accepted,
			COUNT(*) FILTER (WHERE e.gender = 'male') AS male,
			COUNT(*) FILTER (WHERE e.gender = 'female') AS female`).
		Joins("JOIN employees e ON e.id = s.employee_id").
		Scopes(tenant.ScopeAlias("s", companyID)).
		Where("s.man_power_request_id = ?", requestID).
		Where("s.status = ?", StatusAccepted).
		Where("s.deleted_at IS NULL").
		Scan(&f).Error
	return f, err
}

func (r *repository) DeleteByRequest(ctx context.Context, companyID, requestID string) (int64, error) {
	res := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("man_power_request_id = ?", requestID).
		Delete(&Schedule{})
	return res.RowsAffected, res.Error
}

// LockEmployeeDays serialises check-then-insert for the employees around
// date until the surrounding transaction ends. The keys span the day before
// and after, the same window the overlap check reads, so overnight shifts on
// neighbouring days contend for a common key.
func (r *repository) LockEmployeeDays(ctx context.Context, employeeIDs []string, date time.Time) error {
	for _, key := range EmployeeDayLockKeys(employeeIDs, date) {
		if err := r.session(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
			return err
		}
	}
	return nil
}

// EmployeeDayLockKeys returns the distinct lock keys for employeeIDs over
// date-1..date+1 in ascending order. Every locker takes keys in this order.
func EmployeeDayLockKeys(employeeIDs []string, date time.Time) []string {
	keys := make([]string, 0, len(employeeIDs)*3)
	seen := make(map[string]struct{}, len(employeeIDs)*3)
	for _, id := range employeeIDs {
		for offset := -1; offset <= 1; offset++ {
			key := id + "|" + date.AddDate(0, 0, offset).Format(time.DateOnly)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (r *repository) CreateChange(ctx context.Context, c *ChangeRequest) error {
	err := r.session(ctx).Omit(clause.Associations).Create(c).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return scheduleerrors.ErrPendingChangeExists
	}
	return err
}

func (r *repository) FindChangeForUpdate(ctx context.Context, companyID, id string) (*ChangeRequest, error) {
	var c ChangeRequest
	err := r.session(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) UpdateChange(ctx context.Context, c *ChangeRequest) error {
	return r.session(ctx).Omit(clause.Associations).Save(c).Error
}

func (r *repository) HasPendingChange(ctx context.Context, scheduleID string) (bool, error) {
	var count int64
	err := r.session(ctx).
		Model(&ChangeRequest{}).
		Where("schedule_id = ?", scheduleID).
		Where("approval_status = ?", ApprovalPending).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindChanges(ctx context.Context, companyID string, filter ChangeListFilter) ([]ChangeRequest, error) {
	db := r.session(ctx).Scopes(tenant.Scope(companyID))
	if filter.ApprovalStatus != "" {
		db = db.Where("approval_status = ?", filter.ApprovalStatus)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}

	var changes []ChangeRequest
	err := db.Order("created_at DESC").Find(&changes).Error
	return changes, err
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return scheduleerrors.ErrAlreadyAssigned.WithCause(err)
	}
	if strings.Contains(err.Error(), "uq_schedules_employee_date_shift") {
		return scheduleerrors.ErrAlreadyAssigned.WithCause(err)
	}
	return err
}
