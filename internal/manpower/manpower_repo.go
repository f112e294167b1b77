package manpower

import (
	"context"
	"database/sql"
	"time"

	"go-manpower/internal/organization"
	"go-manpower/internal/shared/connection"
	"go-manpower/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=manpower_repo.go -destination=mock/manpower_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *ManPowerRequest) error
	FindByID(ctx context.Context, companyID, id string) (*ManPowerRequest, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*ManPowerRequest, error)
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]ManPowerRequest, error)
	Update(ctx context.Context, r *ManPowerRequest) error
	LockTuple(ctx context.Context, subSectionID, shiftID string, date time.Time) error
	ExistsOriginal(ctx context.Context, companyID, subSectionID, shiftID string, date time.Time) (bool, error)
	FindSubSection(ctx context.Context, companyID, id string) (*organization.SubSection, error)
	FindShift(ctx context.Context, companyID, id string) (*organization.Shift, error)

	CreateRecurringNeed(ctx context.Context, n *RecurringNeed) error
	FindRecurringNeeds(ctx context.Context, companyID string, activeOnly bool) ([]RecurringNeed, error)
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

func (r *repository) Create(ctx context.Context, req *ManPowerRequest) error {
	return r.session(ctx).Omit(clause.Associations).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*ManPowerRequest, error) {
	var req ManPowerRequest
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("SubSection.Section").
		Preload("Shift").
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*ManPowerRequest, error) {
	var req ManPowerRequest
	err := r.session(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Preload("SubSection.Section").
		Preload("Shift").
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]ManPowerRequest, error) {
	db := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("SubSection").
		Preload("Shift")

	if filter.Date != "" {
		db = db.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.SubSectionID != "" {
		db = db.Where("sub_section_id = ?", filter.SubSectionID)
	}

	var requests []ManPowerRequest
	err := db.Order("date DESC, number").Find(&requests).Error
	return requests, err
}

func (r *repository) Update(ctx context.Context, req *ManPowerRequest) error {
	return r.session(ctx).Omit(clause.Associations).Save(req).Error
}

// LockTuple serialises the duplicate check for one (sub_section, shift,
// date) until the transaction ends.
func (r *repository) LockTuple(ctx context.Context, subSectionID, shiftID string, date time.Time) error {
	key := subSectionID + "|" + shiftID + "|" + date.Format(time.DateOnly)
	return r.session(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

func (r *repository) ExistsOriginal(ctx context.Context, companyID, subSectionID, shiftID string, date time.Time) (bool, error) {
	var count int64
	err := r.session(ctx).
		Model(&ManPowerRequest{}).
		Scopes(tenant.Scope(companyID)).
		Where("sub_section_id = ?", subSectionID).
		Where("shift_id = ?", shiftID).
		Where("date = ?", date.Format(time.DateOnly)).
		Where("is_additional = ?", false).
		Where("status <> ?", StatusRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindSubSection(ctx context.Context, companyID, id string) (*organization.SubSection, error) {
	var sub organization.SubSection
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Section").
		First(&sub, "id = ?", id).Error
	return &sub, err
}

func (r *repository) FindShift(ctx context.Context, companyID, id string) (*organization.Shift, error) {
	var shift organization.Shift
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&shift, "id = ?", id).Error
	return &shift, err
}

func (r *repository) CreateRecurringNeed(ctx context.Context, n *RecurringNeed) error {
	return r.session(ctx).Create(n).Error
}

func (r *repository) FindRecurringNeeds(ctx context.Context, companyID string, activeOnly bool) ([]RecurringNeed, error) {
	db := r.session(ctx).Scopes(tenant.Scope(companyID))
	if activeOnly {
		db = db.Where("active = ?", true)
	}
	var needs []RecurringNeed
	err := db.Order("created_at").Find(&needs).Error
	return needs, err
}
