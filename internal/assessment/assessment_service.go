package assessment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	assessmenterrors "go-manpower/internal/assessment/errors"
	"go-manpower/internal/scoring"
	"go-manpower/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=assessment_service.go -destination=mock/assessment_service_mock.go -package=mock
type Service interface {
	RecordBlindTest(ctx context.Context, companyID, actorID string, req RecordBlindTestRequest) (BlindTestResponse, error)
	RecordRating(ctx context.Context, companyID, actorID string, req RecordRatingRequest) (RatingResponse, error)
	GetSummary(ctx context.Context, companyID, employeeID string) (SummaryResponse, error)
	AssignTest(ctx context.Context, companyID, actorID string, req AssignTestRequest) (TestAssignmentResponse, error)
	StartTest(ctx context.Context, companyID, id string) (TestAssignmentResponse, error)
	CompleteTest(ctx context.Context, companyID, actorID, id string, req CompleteTestRequest) (TestAssignmentResponse, error)
	ListAssignments(ctx context.Context, companyID, employeeID string) ([]TestAssignmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	scale  scoring.AssessmentScale
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, scale scoring.AssessmentScale, logger ...*zap.Logger) Service {
	l := zap.L().Named("assessment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assessment.service")
	}
	return &service{db: db, repo: repo, scale: scale, now: time.Now, logger: l}
}

func (s *service) RecordBlindTest(ctx context.Context, companyID, actorID string, req RecordBlindTestRequest) (BlindTestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("record blind test requested", zap.String("employee_id", req.EmployeeID))

	companyUUID, employeeUUID, err := parseIDs(companyID, req.EmployeeID)
	if err != nil {
		return BlindTestResponse{}, err
	}
	if req.Points == nil || *req.Points < 0 || *req.Points > s.scale.BlindTestMax {
		return BlindTestResponse{}, assessmenterrors.ErrPointsOutOfRange
	}
	testedAt := s.now().UTC()
	if req.TestedAt != "" {
		if testedAt, err = time.Parse(time.DateOnly, req.TestedAt); err != nil {
			return BlindTestResponse{}, assessmenterrors.ErrInvalidDateFormat
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("record blind test begin tx failed", zap.Error(err))
		return BlindTestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := ensureEmployee(ctx, qtx, companyID, req.EmployeeID); err != nil {
		return BlindTestResponse{}, err
	}

	result := &BlindTestResult{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Points:     *req.Points,
		TestedAt:   testedAt,
		RecordedBy: actorID,
	}
	if err := qtx.CreateBlindTest(ctx, result); err != nil {
		log.Error("record blind test persist failed", zap.Error(err))
		return BlindTestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("record blind test commit failed", zap.Error(err))
		return BlindTestResponse{}, err
	}

	log.Info("record blind test success", zap.String("employee_id", req.EmployeeID), zap.Float64("points", result.Points))
	return mapBlindTest(*result), nil
}

func (s *service) RecordRating(ctx context.Context, companyID, actorID string, req RecordRatingRequest) (RatingResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("record rating requested", zap.String("employee_id", req.EmployeeID))

	companyUUID, employeeUUID, err := parseIDs(companyID, req.EmployeeID)
	if err != nil {
		return RatingResponse{}, err
	}
	if req.Score == nil || *req.Score < s.scale.RatingMin || *req.Score > s.scale.RatingMax {
		return RatingResponse{}, assessmenterrors.ErrRatingOutOfRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("record rating begin tx failed", zap.Error(err))
		return RatingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := ensureEmployee(ctx, qtx, companyID, req.EmployeeID); err != nil {
		return RatingResponse{}, err
	}

	rating := &Rating{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		Score:      *req.Score,
		Comment:    req.Comment,
		RatedAt:    s.now().UTC(),
		RatedBy:    actorID,
	}
	if err := qtx.CreateRating(ctx, rating); err != nil {
		log.Error("record rating persist failed", zap.Error(err))
		return RatingResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("record rating commit failed", zap.Error(err))
		return RatingResponse{}, err
	}

	log.Info("record rating success", zap.String("employee_id", req.EmployeeID))
	return mapRating(*rating), nil
}

// GetSummary reports the latest results and the resulting score. An employee
// without any history scores zero.
func (s *service) GetSummary(ctx context.Context, companyID, employeeID string) (SummaryResponse, error) {
	if _, _, err := parseIDs(companyID, employeeID); err != nil {
		return SummaryResponse{}, err
	}

	resp := SummaryResponse{EmployeeID: employeeID}
	var rec scoring.AssessmentRecord

	bt, err := s.repo.LatestBlindTest(ctx, companyID, employeeID)
	switch {
	case err == nil:
		mapped := mapBlindTest(*bt)
		resp.LatestBlindTest = &mapped
		rec.BlindTestPoints = &bt.Points
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return SummaryResponse{}, err
	}

	rt, err := s.repo.LatestRating(ctx, companyID, employeeID)
	switch {
	case err == nil:
		mapped := mapRating(*rt)
		resp.LatestRating = &mapped
		rec.Rating = &rt.Score
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return SummaryResponse{}, err
	}

	resp.Score = scoring.AssessmentScore(rec, s.scale)
	return resp, nil
}

func (s *service) AssignTest(ctx context.Context, companyID, actorID string, req AssignTestRequest) (TestAssignmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("assign test requested", zap.String("employee_id", req.EmployeeID), zap.String("test_name", req.TestName))

	companyUUID, employeeUUID, err := parseIDs(companyID, req.EmployeeID)
	if err != nil {
		return TestAssignmentResponse{}, err
	}
	var due *time.Time
	if req.DueDate != "" {
		d, err := time.Parse(time.DateOnly, req.DueDate)
		if err != nil {
			return TestAssignmentResponse{}, assessmenterrors.ErrInvalidDateFormat
		}
		due = &d
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("assign test begin tx failed", zap.Error(err))
		return TestAssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := ensureEmployee(ctx, qtx, companyID, req.EmployeeID); err != nil {
		return TestAssignmentResponse{}, err
	}

	a := &TestAssignment{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		TestName:   req.TestName,
		Status:     AssignmentAssigned,
		DueDate:    due,
		AssignedBy: actorID,
	}
	if err := qtx.CreateAssignment(ctx, a); err != nil {
		log.Error("assign test persist failed", zap.Error(err))
		return TestAssignmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("assign test commit failed", zap.Error(err))
		return TestAssignmentResponse{}, err
	}

	log.Info("assign test success", zap.String("assignment_id", a.ID.String()))
	return s.mapAssignment(*a), nil
}

// StartTest moves an assignment into progress. Restarting an in-progress
// test counts as a new attempt.
func (s *service) StartTest(ctx context.Context, companyID, id string) (TestAssignmentResponse, error) {
	return s.transitionAssignment(ctx, companyID, id, func(qtx Repository, a *TestAssignment) error {
		if a.Status != AssignmentAssigned && a.Status != AssignmentInProgress {
			return assessmenterrors.ErrInvalidAssignmentTransition
		}
		now := s.now().UTC()
		a.Status = AssignmentInProgress
		a.AttemptCount++
		a.StartedAt = &now
		return nil
	})
}

func (s *service) CompleteTest(ctx context.Context, companyID, actorID, id string, req CompleteTestRequest) (TestAssignmentResponse, error) {
	if req.Points == nil || *req.Points < 0 || *req.Points > s.scale.BlindTestMax {
		return TestAssignmentResponse{}, assessmenterrors.ErrPointsOutOfRange
	}

	return s.transitionAssignment(ctx, companyID, id, func(qtx Repository, a *TestAssignment) error {
		if a.Status != AssignmentInProgress {
			return assessmenterrors.ErrInvalidAssignmentTransition
		}
		now := s.now().UTC()
		result := &BlindTestResult{
			ID:         uuid.New(),
			CompanyID:  a.CompanyID,
			EmployeeID: a.EmployeeID,
			Points:     *req.Points,
			TestedAt:   now,
			RecordedBy: actorID,
		}
		if err := qtx.CreateBlindTest(ctx, result); err != nil {
			return err
		}
		a.Status = AssignmentCompleted
		a.CompletedAt = &now
		a.ResultID = &result.ID
		return nil
	})
}

func (s *service) transitionAssignment(ctx context.Context, companyID, id string, apply func(qtx Repository, a *TestAssignment) error) (TestAssignmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("test assignment transition requested", zap.String("assignment_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("test assignment begin tx failed", zap.Error(err))
		return TestAssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindAssignmentForUpdate(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TestAssignmentResponse{}, assessmenterrors.ErrAssignmentNotFound
		}
		return TestAssignmentResponse{}, err
	}

	from := a.Status
	if err := apply(qtx, a); err != nil {
		log.Warn("test assignment transition rejected", zap.String("assignment_id", id), zap.String("status", from), zap.Error(err))
		return TestAssignmentResponse{}, err
	}
	if err := qtx.UpdateAssignment(ctx, a); err != nil {
		log.Error("test assignment persist failed", zap.Error(err))
		return TestAssignmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("test assignment commit failed", zap.Error(err))
		return TestAssignmentResponse{}, err
	}

	log.Info("test assignment transition success",
		zap.String("assignment_id", id),
		zap.String("from", from),
		zap.String("to", a.Status),
		zap.Int("attempt_count", a.AttemptCount),
	)
	return s.mapAssignment(*a), nil
}

func (s *service) ListAssignments(ctx context.Context, companyID, employeeID string) ([]TestAssignmentResponse, error) {
	rows, err := s.repo.ListAssignments(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]TestAssignmentResponse, len(rows))
	for i, a := range rows {
		out[i] = s.mapAssignment(a)
	}
	return out, nil
}

func ensureEmployee(ctx context.Context, repo Repository, companyID, employeeID string) error {
	ok, err := repo.EmployeeBelongsToCompany(ctx, companyID, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return assessmenterrors.ErrEmployeeNotInCompany
	}
	return nil
}

func parseIDs(companyID, employeeID string) (uuid.UUID, uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, assessmenterrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, assessmenterrors.ErrInvalidEmployeeID
	}
	return companyUUID, employeeUUID, nil
}

func mapBlindTest(b BlindTestResult) BlindTestResponse {
	return BlindTestResponse{
		ID:         b.ID.String(),
		EmployeeID: b.EmployeeID.String(),
		Points:     b.Points,
		TestedAt:   b.TestedAt.Format(time.DateOnly),
	}
}

func mapRating(r Rating) RatingResponse {
	return RatingResponse{
		ID:         r.ID.String(),
		EmployeeID: r.EmployeeID.String(),
		Score:      r.Score,
		Comment:    r.Comment,
		RatedAt:    r.RatedAt.Format(time.RFC3339),
	}
}

func (s *service) mapAssignment(a TestAssignment) TestAssignmentResponse {
	resp := TestAssignmentResponse{
		ID:           a.ID.String(),
		EmployeeID:   a.EmployeeID.String(),
		TestName:     a.TestName,
		Status:       a.Status,
		AttemptCount: a.AttemptCount,
	}
	if a.DueDate != nil {
		d := a.DueDate.Format(time.DateOnly)
		resp.DueDate = &d
		resp.Overdue = a.Status != AssignmentCompleted && s.now().After(a.DueDate.AddDate(0, 0, 1))
	}
	if a.ResultID != nil {
		id := a.ResultID.String()
		resp.ResultID = &id
	}
	return resp
}
