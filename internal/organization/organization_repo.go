package organization

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	organizationerrors "go-manpower/internal/organization/errors"
	"go-manpower/internal/shared/connection"
	"go-manpower/internal/tenant"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateSection(ctx context.Context, section *Section) error
	CreateSubSection(ctx context.Context, sub *SubSection) error
	CreateShift(ctx context.Context, shift *Shift) error
	FindSections(ctx context.Context, companyID string) ([]Section, error)
	FindSectionByID(ctx context.Context, companyID, id string) (*Section, error)
	FindShifts(ctx context.Context, companyID string) ([]Shift, error)
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

func (r *repository) CreateSection(ctx context.Context, section *Section) error {
	return mapRepositoryError(connection.Session(ctx, r.db, r.tx).Create(section).Error)
}

func (r *repository) CreateSubSection(ctx context.Context, sub *SubSection) error {
	return mapRepositoryError(connection.Session(ctx, r.db, r.tx).Create(sub).Error)
}

func (r *repository) CreateShift(ctx context.Context, shift *Shift) error {
	return mapRepositoryError(connection.Session(ctx, r.db, r.tx).Create(shift).Error)
}

func (r *repository) FindSections(ctx context.Context, companyID string) ([]Section, error) {
	var sections []Section
	err := connection.Session(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Preload("SubSections", func(db *gorm.DB) *gorm.DB {
			return db.Order("name")
		}).
		Order("name").
		Find(&sections).Error
	return sections, err
}

func (r *repository) FindSectionByID(ctx context.Context, companyID, id string) (*Section, error) {
	var section Section
	err := connection.Session(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&section, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, organizationerrors.ErrSectionNotFound
	}
	return &section, err
}

func (r *repository) FindShifts(ctx context.Context, companyID string) ([]Shift, error) {
	var shifts []Shift
	err := connection.Session(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("start_time").
		Find(&shifts).Error
	return shifts, err
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return organizationerrors.ErrDuplicateName
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return organizationerrors.ErrDuplicateName
	}
	return err
}
