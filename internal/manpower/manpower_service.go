package manpower

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-manpower/internal/employee"
	manpowererrors "go-manpower/internal/manpower/errors"
	"go-manpower/internal/schedule"
	scheduleerrors "go-manpower/internal/schedule/errors"
	"go-manpower/internal/shared/bulk"
	"go-manpower/internal/shared/contextutil"
	"go-manpower/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=manpower_service.go -destination=mock/manpower_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateRequest) (RequestResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]RequestResponse, error)
	GetByID(ctx context.Context, companyID, id string) (RequestDetailResponse, error)
	Candidates(ctx context.Context, companyID, id string) (CandidatesResponse, error)
	Assign(ctx context.Context, companyID, actorID, id string, req AssignRequest) (AssignResponse, error)
	Reject(ctx context.Context, companyID, actorID, id string, req RejectRequest) (RequestResponse, error)
	ClearSchedules(ctx context.Context, companyID, actorID, id string) (ClearResponse, error)
	LockRequestTx(ctx context.Context, tx *sql.Tx, companyID, requestID string) error
	SyncFulfillmentTx(ctx context.Context, tx *sql.Tx, companyID, requestID string) error

	CreateNeed(ctx context.Context, companyID, actorID string, req CreateRecurringNeedRequest) (RecurringNeedResponse, error)
	ListNeeds(ctx context.Context, companyID string) ([]RecurringNeedResponse, error)
	Generate(ctx context.Context, companyID, actorID string, req GenerateRequest) (GenerateReport, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	schedules schedule.Repository
	employees employee.Repository
	counters  counter.Repository
	source    CandidateSource
	filter    *EligibilityFilter
	ranker    *Ranker
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	schedules schedule.Repository,
	employees employee.Repository,
	counters counter.Repository,
	source CandidateSource,
	filter *EligibilityFilter,
	ranker *Ranker,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("manpower.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manpower.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		schedules: schedules,
		employees: employees,
		counters:  counters,
		source:    source,
		filter:    filter,
		ranker:    ranker,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateRequest) (RequestResponse, error) {
	return s.create(ctx, companyID, actorID, req, nil)
}

func (s *service) create(ctx context.Context, companyID, actorID string, req CreateRequest, recurringNeedID *uuid.UUID) (RequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create manpower request requested",
		zap.String("company_id", companyID),
		zap.String("sub_section_id", req.SubSectionID),
		zap.String("shift_id", req.ShiftID),
		zap.String("date", req.Date),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RequestResponse{}, manpowererrors.ErrInvalidCompanyID
	}
	subSectionUUID, err := uuid.Parse(req.SubSectionID)
	if err != nil {
		return RequestResponse{}, manpowererrors.ErrSubSectionNotFound
	}
	shiftUUID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		return RequestResponse{}, manpowererrors.ErrShiftNotFound
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return RequestResponse{}, manpowererrors.ErrInvalidDateFormat
	}
	if req.RequestedAmount < 1 || req.MaleCount < 0 || req.FemaleCount < 0 {
		return RequestResponse{}, manpowererrors.ErrGenderCountExceedsAmount
	}
	if req.MaleCount+req.FemaleCount > req.RequestedAmount {
		log.Warn("create manpower request rejected: gender counts exceed amount",
			zap.Int("requested_amount", req.RequestedAmount),
			zap.Int("male_count", req.MaleCount),
			zap.Int("female_count", req.FemaleCount),
		)
		return RequestResponse{}, manpowererrors.ErrGenderCountExceedsAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create manpower request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sub, err := qtx.FindSubSection(ctx, companyID, req.SubSectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, manpowererrors.ErrSubSectionNotFound
		}
		return RequestResponse{}, err
	}
	shift, err := qtx.FindShift(ctx, companyID, req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, manpowererrors.ErrShiftNotFound
		}
		return RequestResponse{}, err
	}

	if !req.IsAdditional {
		if err := qtx.LockTuple(ctx, req.SubSectionID, req.ShiftID, date); err != nil {
			log.Error("create manpower request lock failed", zap.Error(err))
			return RequestResponse{}, err
		}
		exists, err := qtx.ExistsOriginal(ctx, companyID, req.SubSectionID, req.ShiftID, date)
		if err != nil {
			return RequestResponse{}, err
		}
		if exists {
			log.Warn("create manpower request rejected: duplicate original",
				zap.String("sub_section_id", req.SubSectionID),
				zap.String("shift_id", req.ShiftID),
				zap.String("date", req.Date),
			)
			return RequestResponse{}, manpowererrors.ErrDuplicateRequest
		}
	}

	seq, err := s.counters.WithTx(tx).GetNextValue(ctx, companyID, counterType)
	if err != nil {
		log.Error("create manpower request counter failed", zap.Error(err))
		return RequestResponse{}, err
	}

	mpr := &ManPowerRequest{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		Number:            fmt.Sprintf("MPR-%06d", seq),
		SubSectionID:      subSectionUUID,
		ShiftID:           shiftUUID,
		Date:              date,
		RequestedAmount:   req.RequestedAmount,
		MaleCount:         req.MaleCount,
		FemaleCount:       req.FemaleCount,
		IsAdditional:      req.IsAdditional,
		AllowCrossSection: req.AllowCrossSection,
		Status:            StatusPending,
		Notes:             req.Notes,
		RecurringNeedID:   recurringNeedID,
		CreatedBy:         actorID,
	}
	if err := qtx.Create(ctx, mpr); err != nil {
		log.Error("create manpower request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("create manpower request commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	mpr.SubSection = sub
	mpr.Shift = shift
	log.Info("create manpower request success",
		zap.String("manpower_request_id", mpr.ID.String()),
		zap.String("number", mpr.Number),
	)
	return mapRequest(*mpr), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]RequestResponse, error) {
	if filter.Date != "" {
		if _, err := time.Parse(time.DateOnly, filter.Date); err != nil {
			return nil, manpowererrors.ErrInvalidDateFormat
		}
	}
	rows, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]RequestResponse, len(rows))
	for i, r := range rows {
		out[i] = mapRequest(r)
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (RequestDetailResponse, error) {
	mpr, err := s.findRequest(ctx, s.repo, companyID, id, false)
	if err != nil {
		return RequestDetailResponse{}, err
	}
	schedules, err := s.schedules.ListByRequest(ctx, companyID, id)
	if err != nil {
		return RequestDetailResponse{}, err
	}
	f, err := s.schedules.CountFulfillment(ctx, companyID, id)
	if err != nil {
		return RequestDetailResponse{}, err
	}

	return RequestDetailResponse{
		RequestResponse: mapRequest(*mpr),
		Fulfillment:     mapFulfillment(f, ComputeNeed(*mpr, f, s.filter.TracksGender(mpr.SubSection))),
		Schedules:       mapSchedules(schedules),
	}, nil
}

// Candidates ranks everyone who could fill the request right now. The
// result is recomputed from current data on every call.
func (s *service) Candidates(ctx context.Context, companyID, id string) (CandidatesResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("rank candidates requested", zap.String("manpower_request_id", id))

	mpr, err := s.findRequest(ctx, s.repo, companyID, id, false)
	if err != nil {
		return CandidatesResponse{}, err
	}
	if mpr.Status == StatusRejected {
		return CandidatesResponse{}, manpowererrors.ErrRequestRejected
	}

	f, err := s.schedules.CountFulfillment(ctx, companyID, id)
	if err != nil {
		return CandidatesResponse{}, err
	}
	need := ComputeNeed(*mpr, f, s.filter.TracksGender(mpr.SubSection))

	pool, err := s.source.Candidates(ctx, companyID, mpr, nil)
	if err != nil {
		log.Error("rank candidates load failed", zap.Error(err))
		return CandidatesResponse{}, err
	}
	eligible, excluded := s.filter.Partition(s.target(mpr, need), pool)

	ids := make([]string, len(eligible))
	for i, c := range eligible {
		ids[i] = c.EmployeeID
	}
	inputs, err := s.source.ScoringInputs(ctx, companyID, ids, truncateDay(mpr.Date))
	if err != nil {
		log.Error("rank candidates scoring inputs failed", zap.Error(err))
		return CandidatesResponse{}, err
	}
	ranked := s.ranker.Rank(mpr.SubSectionID.String(), eligible, inputs)

	log.Info("rank candidates success",
		zap.String("manpower_request_id", id),
		zap.Int("pool", len(pool)),
		zap.Int("eligible", len(eligible)),
	)
	return CandidatesResponse{
		Request:     mapRequest(*mpr),
		Fulfillment: mapFulfillment(f, need),
		Candidates:  mapCandidates(ranked),
		Excluded:    mapExclusions(excluded),
	}, nil
}

// Assign creates accepted schedules for employeeIDs and moves the request
// through its fulfillment states. The request row lock makes this the single
// writer for the request; per-employee advisory locks serialise the double
// booking check with concurrent assignments elsewhere.
func (s *service) Assign(ctx context.Context, companyID, actorID, id string, req AssignRequest) (AssignResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("assign employees requested", zap.String("manpower_request_id", id), zap.Strings("employee_ids", req.EmployeeIDs))

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AssignResponse{}, manpowererrors.ErrInvalidCompanyID
	}
	ids := bulk.Dedupe(req.EmployeeIDs)
	if len(ids) == 0 {
		return AssignResponse{}, manpowererrors.ErrInvalidEmployeeID
	}
	for _, eid := range ids {
		if _, err := uuid.Parse(eid); err != nil {
			return AssignResponse{}, manpowererrors.ErrInvalidEmployeeID
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("assign employees begin tx failed", zap.Error(err))
		return AssignResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	stx := s.schedules.WithTx(tx)

	mpr, err := s.findRequest(ctx, qtx, companyID, id, true)
	if err != nil {
		return AssignResponse{}, err
	}
	if mpr.Status == StatusRejected {
		log.Warn("assign employees rejected: request rejected", zap.String("manpower_request_id", id))
		return AssignResponse{}, manpowererrors.ErrRequestRejected
	}

	if err := stx.LockEmployeeDays(ctx, ids, mpr.Date); err != nil {
		log.Error("assign employees lock failed", zap.Error(err))
		return AssignResponse{}, err
	}

	f, err := stx.CountFulfillment(ctx, companyID, id)
	if err != nil {
		return AssignResponse{}, err
	}
	if f.Accepted+len(ids) > mpr.RequestedAmount {
		log.Warn("assign employees rejected: exceeds requested amount",
			zap.String("manpower_request_id", id),
			zap.Int("accepted", f.Accepted),
			zap.Int("assigning", len(ids)),
			zap.Int("requested_amount", mpr.RequestedAmount),
		)
		return AssignResponse{}, manpowererrors.ErrExceedsRequestedAmount
	}

	pool, err := s.source.WithTx(tx).Candidates(ctx, companyID, mpr, ids)
	if err != nil {
		return AssignResponse{}, err
	}
	byID := make(map[string]Candidate, len(pool))
	for _, c := range pool {
		byID[c.EmployeeID] = c
	}

	need := ComputeNeed(*mpr, f, s.filter.TracksGender(mpr.SubSection))
	created := make([]schedule.Schedule, 0, len(ids))
	for _, eid := range ids {
		c, ok := byID[eid]
		if !ok {
			return AssignResponse{}, manpowererrors.ErrEmployeeNotFound.WithCause(errors.New(eid))
		}
		switch reason := s.filter.Check(s.target(mpr, need), c); reason {
		case "":
		case ReasonAlreadyScheduled:
			log.Warn("assign employees rejected: already assigned", zap.String("employee_id", eid))
			return AssignResponse{}, scheduleerrors.ErrAlreadyAssigned.WithCause(errors.New(eid))
		default:
			log.Warn("assign employees rejected: not eligible", zap.String("employee_id", eid), zap.String("reason", reason))
			return AssignResponse{}, manpowererrors.ErrEmployeeNotEligible.WithCause(fmt.Errorf("%s: %s", eid, reason))
		}
		need.Take(c.Gender)

		sc := schedule.Schedule{
			ID:                uuid.New(),
			CompanyID:         companyUUID,
			ManPowerRequestID: mpr.ID,
			EmployeeID:        uuid.MustParse(eid),
			SubSectionID:      mpr.SubSectionID,
			ShiftID:           mpr.ShiftID,
			Date:              mpr.Date,
			Status:            schedule.StatusAccepted,
			Visibility:        schedule.VisibilityPrivate,
			AssignedBy:        actorID,
		}
		if err := stx.Create(ctx, &sc); err != nil {
			if errors.Is(err, scheduleerrors.ErrAlreadyAssigned) {
				log.Warn("assign employees rejected: unique guard", zap.String("employee_id", eid))
				return AssignResponse{}, err
			}
			log.Error("assign employees persist schedule failed", zap.Error(err))
			return AssignResponse{}, err
		}
		created = append(created, sc)
	}

	if err := s.employees.WithTx(tx).SetWorkStatus(ctx, companyID, ids, employee.WorkStatusAssigned); err != nil {
		log.Error("assign employees work status failed", zap.Error(err))
		return AssignResponse{}, err
	}
	if err := s.syncLocked(ctx, qtx, stx, companyID, mpr); err != nil {
		log.Error("assign employees fulfillment sync failed", zap.Error(err))
		return AssignResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("assign employees commit failed", zap.Error(err))
		return AssignResponse{}, err
	}

	log.Info("assign employees success",
		zap.String("manpower_request_id", id),
		zap.Int("assigned", len(created)),
		zap.String("status", mpr.Status),
	)
	return AssignResponse{Request: mapRequest(*mpr), Schedules: mapSchedules(created)}, nil
}

// Reject is an explicit administrative transition. A request that still has
// schedules must be cleared first.
func (s *service) Reject(ctx context.Context, companyID, actorID, id string, req RejectRequest) (RequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("reject manpower request requested", zap.String("manpower_request_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("reject manpower request begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	mpr, err := s.findRequest(ctx, qtx, companyID, id, true)
	if err != nil {
		return RequestResponse{}, err
	}
	schedules, err := s.schedules.WithTx(tx).ListByRequest(ctx, companyID, id)
	if err != nil {
		return RequestResponse{}, err
	}
	if err := CanReject(mpr.Status, len(schedules)); err != nil {
		log.Warn("reject manpower request refused",
			zap.String("manpower_request_id", id),
			zap.String("status", mpr.Status),
			zap.Int("schedules", len(schedules)),
		)
		return RequestResponse{}, err
	}

	now := s.now().UTC()
	mpr.Status = StatusRejected
	mpr.RejectedBy = &actorID
	mpr.RejectionReason = &req.Reason
	mpr.RejectedAt = &now
	if err := qtx.Update(ctx, mpr); err != nil {
		log.Error("reject manpower request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("reject manpower request commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	log.Info("reject manpower request success", zap.String("manpower_request_id", id))
	return mapRequest(*mpr), nil
}

// ClearSchedules soft-deletes every schedule of the request and recomputes
// its status.
func (s *service) ClearSchedules(ctx context.Context, companyID, actorID, id string) (ClearResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("clear schedules requested", zap.String("manpower_request_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("clear schedules begin tx failed", zap.Error(err))
		return ClearResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	stx := s.schedules.WithTx(tx)
	mpr, err := s.findRequest(ctx, qtx, companyID, id, true)
	if err != nil {
		return ClearResponse{}, err
	}

	cleared, err := stx.DeleteByRequest(ctx, companyID, id)
	if err != nil {
		log.Error("clear schedules persist failed", zap.Error(err))
		return ClearResponse{}, err
	}
	if err := s.syncLocked(ctx, qtx, stx, companyID, mpr); err != nil {
		return ClearResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("clear schedules commit failed", zap.Error(err))
		return ClearResponse{}, err
	}

	log.Info("clear schedules success",
		zap.String("manpower_request_id", id),
		zap.Int64("cleared", cleared),
		zap.String("actor_id", actorID),
	)
	return ClearResponse{Request: mapRequest(*mpr), Cleared: cleared}, nil
}

// LockRequestTx takes the request row lock inside tx. Callers that also
// lock schedules or employee days take this one first.
func (s *service) LockRequestTx(ctx context.Context, tx *sql.Tx, companyID, requestID string) error {
	_, err := s.findRequest(ctx, s.repo.WithTx(tx), companyID, requestID, true)
	return err
}

// SyncFulfillmentTx locks the request and recomputes its status inside tx.
func (s *service) SyncFulfillmentTx(ctx context.Context, tx *sql.Tx, companyID, requestID string) error {
	qtx := s.repo.WithTx(tx)
	mpr, err := s.findRequest(ctx, qtx, companyID, requestID, true)
	if err != nil {
		return err
	}
	return s.syncLocked(ctx, qtx, s.schedules.WithTx(tx), companyID, mpr)
}

func (s *service) syncLocked(ctx context.Context, qtx Repository, stx schedule.Repository, companyID string, mpr *ManPowerRequest) error {
	f, err := stx.CountFulfillment(ctx, companyID, mpr.ID.String())
	if err != nil {
		return err
	}
	if f.Accepted > mpr.RequestedAmount {
		return manpowererrors.ErrExceedsRequestedAmount
	}

	next := FulfillmentStatus(mpr.Status, f.Accepted, mpr.RequestedAmount)
	if next == mpr.Status {
		return nil
	}
	contextutil.GetLogger(ctx, s.logger).Info("manpower request status changed",
		zap.String("manpower_request_id", mpr.ID.String()),
		zap.String("from", mpr.Status),
		zap.String("to", next),
		zap.Int("accepted", f.Accepted),
	)
	mpr.Status = next
	return qtx.Update(ctx, mpr)
}

func (s *service) findRequest(ctx context.Context, repo Repository, companyID, id string, forUpdate bool) (*ManPowerRequest, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, manpowererrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, manpowererrors.ErrInvalidRequestID
	}

	var (
		mpr *ManPowerRequest
		err error
	)
	if forUpdate {
		mpr, err = repo.FindByIDForUpdate(ctx, companyID, id)
	} else {
		mpr, err = repo.FindByID(ctx, companyID, id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, manpowererrors.ErrRequestNotFound
		}
		return nil, err
	}
	if mpr.SubSection == nil || mpr.Shift == nil {
		return nil, manpowererrors.ErrInvalidRequest
	}
	return mpr, nil
}

func (s *service) target(mpr *ManPowerRequest, need Need) Target {
	return Target{
		Date:              truncateDay(mpr.Date),
		SubSectionID:      mpr.SubSectionID.String(),
		Shift:             *mpr.Shift,
		AllowCrossSection: mpr.AllowCrossSection,
		Need:              need,
	}
}
