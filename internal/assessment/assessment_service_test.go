package assessment_test

import (
	"context"
	"database/sql"
	"testing"

	"go-manpower/internal/assessment"
	assessmenterrors "go-manpower/internal/assessment/errors"
	"go-manpower/internal/scoring"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepository struct {
	belongs     bool
	blindTests  []assessment.BlindTestResult
	ratings     []assessment.Rating
	assignments map[string]*assessment.TestAssignment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{belongs: true, assignments: map[string]*assessment.TestAssignment{}}
}

func (f *fakeRepository) WithTx(tx *sql.Tx) assessment.Repository { return f }

func (f *fakeRepository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	return f.belongs, nil
}

func (f *fakeRepository) CreateBlindTest(ctx context.Context, r *assessment.BlindTestResult) error {
	f.blindTests = append(f.blindTests, *r)
	return nil
}

func (f *fakeRepository) CreateRating(ctx context.Context, r *assessment.Rating) error {
	f.ratings = append(f.ratings, *r)
	return nil
}

func (f *fakeRepository) LatestBlindTest(ctx context.Context, companyID, employeeID string) (*assessment.BlindTestResult, error) {
	if len(f.blindTests) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	b := f.blindTests[len(f.blindTests)-1]
	return &b, nil
}

func (f *fakeRepository) LatestRating(ctx context.Context, companyID, employeeID string) (*assessment.Rating, error) {
	if len(f.ratings) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	r := f.ratings[len(f.ratings)-1]
	return &r, nil
}

func (f *fakeRepository) LatestRecords(ctx context.Context, companyID string, employeeIDs []string) (map[string]scoring.AssessmentRecord, error) {
	return map[string]scoring.AssessmentRecord{}, nil
}

func (f *fakeRepository) CreateAssignment(ctx context.Context, a *assessment.TestAssignment) error {
	copied := *a
	f.assignments[a.ID.String()] = &copied
	return nil
}

func (f *fakeRepository) FindAssignmentForUpdate(ctx context.Context, companyID, id string) (*assessment.TestAssignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepository) UpdateAssignment(ctx context.Context, a *assessment.TestAssignment) error {
	copied := *a
	f.assignments[a.ID.String()] = &copied
	return nil
}

func (f *fakeRepository) ListAssignments(ctx context.Context, companyID, employeeID string) ([]assessment.TestAssignment, error) {
	var out []assessment.TestAssignment
	for _, a := range f.assignments {
		out = append(out, *a)
	}
	return out, nil
}

func setup(t *testing.T) (assessment.Service, *fakeRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	repo := newFakeRepository()
	svc := assessment.NewService(db, repo, scoring.DefaultConfig().Assessment)
	return svc, repo, mock, func() { db.Close() }
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func ptr(v float64) *float64 { return &v }

func TestService_GetSummary_NoHistoryIsNeutral(t *testing.T) {
	svc, _, _, done := setup(t)
	defer done()

	resp, err := svc.GetSummary(context.Background(), uuid.NewString(), uuid.NewString())

	require.NoError(t, err)
	assert.Nil(t, resp.LatestBlindTest)
	assert.Nil(t, resp.LatestRating)
	assert.Zero(t, resp.Score)
}

func TestService_RecordAndSummarize(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()
	svc, _, mock, done := setup(t)
	defer done()

	expectTx(mock, true)
	_, err := svc.RecordBlindTest(ctx, companyID, "actor-1", assessment.RecordBlindTestRequest{EmployeeID: employeeID, Points: ptr(80), TestedAt: "2024-05-01"})
	require.NoError(t, err)

	expectTx(mock, true)
	_, err = svc.RecordRating(ctx, companyID, "actor-1", assessment.RecordRatingRequest{EmployeeID: employeeID, Score: ptr(5)})
	require.NoError(t, err)

	resp, err := svc.GetSummary(ctx, companyID, employeeID)

	require.NoError(t, err)
	require.NotNil(t, resp.LatestBlindTest)
	assert.Equal(t, "2024-05-01", resp.LatestBlindTest.TestedAt)
	assert.InDelta(t, 0.9, resp.Score, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordValidation(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	tests := []struct {
		name string
		run  func(svc assessment.Service) error
		want error
	}{
		{
			name: "points above max",
			run: func(svc assessment.Service) error {
				_, err := svc.RecordBlindTest(ctx, companyID, "a", assessment.RecordBlindTestRequest{EmployeeID: uuid.NewString(), Points: ptr(101)})
				return err
			},
			want: assessmenterrors.ErrPointsOutOfRange,
		},
		{
			name: "rating below min",
			run: func(svc assessment.Service) error {
				_, err := svc.RecordRating(ctx, companyID, "a", assessment.RecordRatingRequest{EmployeeID: uuid.NewString(), Score: ptr(0)})
				return err
			},
			want: assessmenterrors.ErrRatingOutOfRange,
		},
		{
			name: "bad employee id",
			run: func(svc assessment.Service) error {
				_, err := svc.RecordRating(ctx, companyID, "a", assessment.RecordRatingRequest{EmployeeID: "x", Score: ptr(3)})
				return err
			},
			want: assessmenterrors.ErrInvalidEmployeeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, done := setup(t)
			defer done()
			assert.ErrorIs(t, tt.run(svc), tt.want)
		})
	}
}

func TestService_TestAssignmentLifecycle(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()
	svc, repo, mock, done := setup(t)
	defer done()

	expectTx(mock, true)
	assigned, err := svc.AssignTest(ctx, companyID, "hr-1", assessment.AssignTestRequest{
		EmployeeID: employeeID,
		TestName:   "Forklift aptitude",
		DueDate:    "2000-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, assessment.AssignmentAssigned, assigned.Status)
	assert.True(t, assigned.Overdue)

	expectTx(mock, false)
	_, err = svc.CompleteTest(ctx, companyID, "hr-1", assigned.ID, assessment.CompleteTestRequest{Points: ptr(70)})
	assert.ErrorIs(t, err, assessmenterrors.ErrInvalidAssignmentTransition)

	expectTx(mock, true)
	started, err := svc.StartTest(ctx, companyID, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, assessment.AssignmentInProgress, started.Status)
	assert.Equal(t, 1, started.AttemptCount)

	expectTx(mock, true)
	restarted, err := svc.StartTest(ctx, companyID, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, restarted.AttemptCount)

	expectTx(mock, true)
	completed, err := svc.CompleteTest(ctx, companyID, "hr-1", assigned.ID, assessment.CompleteTestRequest{Points: ptr(70)})
	require.NoError(t, err)
	assert.Equal(t, assessment.AssignmentCompleted, completed.Status)
	assert.False(t, completed.Overdue)
	require.NotNil(t, completed.ResultID)
	require.Len(t, repo.blindTests, 1)
	assert.Equal(t, *completed.ResultID, repo.blindTests[0].ID.String())

	expectTx(mock, false)
	_, err = svc.StartTest(ctx, companyID, assigned.ID)
	assert.ErrorIs(t, err, assessmenterrors.ErrInvalidAssignmentTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_StartTest_NotFound(t *testing.T) {
	svc, _, mock, done := setup(t)
	defer done()
	expectTx(mock, false)

	_, err := svc.StartTest(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, assessmenterrors.ErrAssignmentNotFound)
}
