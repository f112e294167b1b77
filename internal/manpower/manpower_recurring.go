package manpower

import (
	"context"
	"errors"
	"time"

	manpowererrors "go-manpower/internal/manpower/errors"
	"go-manpower/internal/shared/apperror"
	"go-manpower/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxGenerateDays bounds a single generation run.
const maxGenerateDays = 366

func (s *service) CreateNeed(ctx context.Context, companyID, actorID string, req CreateRecurringNeedRequest) (RecurringNeedResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create recurring need requested",
		zap.String("company_id", companyID),
		zap.String("rrule", req.RRule),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RecurringNeedResponse{}, manpowererrors.ErrInvalidCompanyID
	}
	subSectionUUID, err := uuid.Parse(req.SubSectionID)
	if err != nil {
		return RecurringNeedResponse{}, manpowererrors.ErrSubSectionNotFound
	}
	shiftUUID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		return RecurringNeedResponse{}, manpowererrors.ErrShiftNotFound
	}
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return RecurringNeedResponse{}, manpowererrors.ErrInvalidDateFormat
	}
	if req.MaleCount < 0 || req.FemaleCount < 0 || req.MaleCount+req.FemaleCount > req.RequestedAmount {
		return RecurringNeedResponse{}, manpowererrors.ErrGenderCountExceedsAmount
	}
	if _, err := rrule.StrToRRule(req.RRule); err != nil {
		log.Warn("create recurring need rejected: invalid rrule", zap.Error(err))
		return RecurringNeedResponse{}, manpowererrors.ErrInvalidRRule.WithCause(err)
	}

	if _, err := s.repo.FindSubSection(ctx, companyID, req.SubSectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecurringNeedResponse{}, manpowererrors.ErrSubSectionNotFound
		}
		return RecurringNeedResponse{}, err
	}
	if _, err := s.repo.FindShift(ctx, companyID, req.ShiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecurringNeedResponse{}, manpowererrors.ErrShiftNotFound
		}
		return RecurringNeedResponse{}, err
	}

	need := &RecurringNeed{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		SubSectionID:      subSectionUUID,
		ShiftID:           shiftUUID,
		RequestedAmount:   req.RequestedAmount,
		MaleCount:         req.MaleCount,
		FemaleCount:       req.FemaleCount,
		AllowCrossSection: req.AllowCrossSection,
		RRule:             req.RRule,
		StartDate:         start,
		Active:            true,
		CreatedBy:         actorID,
	}
	if err := s.repo.CreateRecurringNeed(ctx, need); err != nil {
		log.Error("create recurring need persist failed", zap.Error(err))
		return RecurringNeedResponse{}, err
	}

	log.Info("create recurring need success", zap.String("recurring_need_id", need.ID.String()))
	return mapRecurringNeed(*need), nil
}

func (s *service) ListNeeds(ctx context.Context, companyID string) ([]RecurringNeedResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, manpowererrors.ErrInvalidCompanyID
	}
	needs, err := s.repo.FindRecurringNeeds(ctx, companyID, false)
	if err != nil {
		return nil, err
	}
	out := make([]RecurringNeedResponse, len(needs))
	for i, n := range needs {
		out[i] = mapRecurringNeed(n)
	}
	return out, nil
}

// Generate expands every active recurring need over [from, to] and creates
// one original request per occurrence. Each occurrence commits on its own,
// so a failure never undoes earlier dates. Occurrences whose tuple already
// has an original request are reported as skipped.
func (s *service) Generate(ctx context.Context, companyID, actorID string, req GenerateRequest) (GenerateReport, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("generate recurring requests requested",
		zap.String("company_id", companyID),
		zap.String("from", req.From),
		zap.String("to", req.To),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return GenerateReport{}, manpowererrors.ErrInvalidCompanyID
	}
	from, err := time.Parse(time.DateOnly, req.From)
	if err != nil {
		return GenerateReport{}, manpowererrors.ErrInvalidDateFormat
	}
	to, err := time.Parse(time.DateOnly, req.To)
	if err != nil {
		return GenerateReport{}, manpowererrors.ErrInvalidDateFormat
	}
	if to.Before(from) || to.Sub(from) > maxGenerateDays*24*time.Hour {
		return GenerateReport{}, manpowererrors.ErrInvalidRange
	}

	needs, err := s.repo.FindRecurringNeeds(ctx, companyID, true)
	if err != nil {
		return GenerateReport{}, err
	}

	report := GenerateReport{Items: []GeneratedItem{}}
	for _, need := range needs {
		for _, day := range Occurrences(need, from, to) {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			item := s.generateOne(ctx, companyID, actorID, need, day)
			switch item.Status {
			case GeneratedCreated:
				report.Created++
			case GeneratedSkipped:
				report.Skipped++
			default:
				report.Failed++
			}
			report.Items = append(report.Items, item)
		}
	}

	log.Info("generate recurring requests done",
		zap.Int("needs", len(needs)),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *service) generateOne(ctx context.Context, companyID, actorID string, need RecurringNeed, day time.Time) GeneratedItem {
	item := GeneratedItem{
		RecurringNeedID: need.ID.String(),
		Date:            day.Format(time.DateOnly),
	}
	needID := need.ID
	resp, err := s.create(ctx, companyID, actorID, CreateRequest{
		SubSectionID:      need.SubSectionID.String(),
		ShiftID:           need.ShiftID.String(),
		Date:              item.Date,
		RequestedAmount:   need.RequestedAmount,
		MaleCount:         need.MaleCount,
		FemaleCount:       need.FemaleCount,
		AllowCrossSection: need.AllowCrossSection,
	}, &needID)

	switch {
	case err == nil:
		item.Status = GeneratedCreated
		item.RequestID = resp.ID
		item.Number = resp.Number
	case errors.Is(err, manpowererrors.ErrDuplicateRequest):
		item.Status = GeneratedSkipped
		item.Code = apperror.CodeConflict
		item.Message = manpowererrors.ErrDuplicateRequest.Message
	default:
		httpErr := apperror.ToHTTP(err)
		item.Status = GeneratedFailed
		item.Code = httpErr.Code
		item.Message = httpErr.Message
	}
	return item
}

// Occurrences returns the dates need recurs on within [from, to]. A rule
// that no longer parses yields nothing.
func Occurrences(need RecurringNeed, from, to time.Time) []time.Time {
	rule, err := rrule.StrToRRule(need.RRule)
	if err != nil {
		return nil
	}
	rule.DTStart(truncateDay(need.StartDate))

	var out []time.Time
	for _, t := range rule.Between(truncateDay(from), truncateDay(to), true) {
		out = append(out, truncateDay(t))
	}
	return out
}
