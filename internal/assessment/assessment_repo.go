package assessment

import (
	"context"
	"database/sql"

	"go-manpower/internal/scoring"
	"go-manpower/internal/shared/connection"
	"go-manpower/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=assessment_repo.go -destination=mock/assessment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	CreateBlindTest(ctx context.Context, r *BlindTestResult) error
	CreateRating(ctx context.Context, r *Rating) error
	LatestBlindTest(ctx context.Context, companyID, employeeID string) (*BlindTestResult, error)
	LatestRating(ctx context.Context, companyID, employeeID string) (*Rating, error)
	LatestRecords(ctx context.Context, companyID string, employeeIDs []string) (map[string]scoring.AssessmentRecord, error)
	CreateAssignment(ctx context.Context, a *TestAssignment) error
	FindAssignmentForUpdate(ctx context.Context, companyID, id string) (*TestAssignment, error)
	UpdateAssignment(ctx context.Context, a *TestAssignment) error
	ListAssignments(ctx context.Context, companyID, employeeID string) ([]TestAssignment, error)
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

func (r *repository) CreateBlindTest(ctx context.Context, b *BlindTestResult) error {
	return r.session(ctx).Create(b).Error
}

func (r *repository) CreateRating(ctx context.Context, rt *Rating) error {
	return r.session(ctx).Create(rt).Error
}

func (r *repository) LatestBlindTest(ctx context.Context, companyID, employeeID string) (*BlindTestResult, error) {
	var b BlindTestResult
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("tested_at DESC, created_at DESC").
		First(&b).Error
	return &b, err
}

func (r *repository) LatestRating(ctx context.Context, companyID, employeeID string) (*Rating, error) {
	var rt Rating
	err := r.session(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("rated_at DESC, created_at DESC").
		First(&rt).Error
	return &rt, err
}

// LatestRecords loads the newest blind test and rating per employee in two
// DISTINCT ON queries.
func (r *repository) LatestRecords(ctx context.Context, companyID string, employeeIDs []string) (map[string]scoring.AssessmentRecord, error) {
	out := make(map[string]scoring.AssessmentRecord, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}

	type latest struct {
		EmployeeID string
		Value      float64
	}

	var points []latest
	err := r.session(ctx).Raw(`
SELECT DISTINCT ON (employee_id) employee_id::text AS employee_id, points AS value
FROM blind_test_results
WHERE company_id = ? AND employee_id IN ?
ORDER BY employee_id, tested_at DESC, created_at DESC`, companyID, employeeIDs).
		Scan(&points).Error
	if err != nil {
		return nil, err
	}

	var ratings []latest
	err = r.session(ctx).Raw(`
SELECT DISTINCT ON (employee_id) employee_id::text AS employee_id, score AS value
FROM employee_ratings
WHERE company_id = ? AND employee_id IN ?
ORDER BY employee_id, rated_at DESC, created_at DESC`, companyID, employeeIDs).
		Scan(&ratings).Error
	if err != nil {
		return nil, err
	}

	for _, p := range points {
		v := p.Value
		rec := out[p.EmployeeID]
		rec.BlindTestPoints = &v
		out[p.EmployeeID] = rec
	}
	for _, rt := range ratings {
		v := rt.Value
		rec := out[rt.EmployeeID]
		rec.Rating = &v
		out[rt.EmployeeID] = rec
	}
	return out, nil
}

func (r *repository) CreateAssignment(ctx context.Context, a *TestAssignment) error {
	return r.session(ctx).Create(a).Error
}

func (r *repository) FindAssignmentForUpdate(ctx context.Context, companyID, id string) (*TestAssignment, error) {
	var a TestAssignment
	err := r.session(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) UpdateAssignment(ctx context.Context, a *TestAssignment) error {
	return r.session(ctx).Save(a).Error
}

func (r *repository) ListAssignments(ctx context.Context, companyID, employeeID string) ([]TestAssignment, error) {
	db := r.session(ctx).Scopes(tenant.Scope(companyID))
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}
	var rows []TestAssignment
	err := db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}
