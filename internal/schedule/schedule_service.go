package schedule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-manpower/internal/events"
	"go-manpower/internal/messaging/kafka"
	scheduleerrors "go-manpower/internal/schedule/errors"
	"go-manpower/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FulfillmentSyncer recomputes the status of the manpower request owning a
// schedule, inside the caller's transaction.
type FulfillmentSyncer interface {
	LockRequestTx(ctx context.Context, tx *sql.Tx, companyID, requestID string) error
	SyncFulfillmentTx(ctx context.Context, tx *sql.Tx, companyID, requestID string) error
}

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, companyID string, filter ListFilter) ([]ScheduleResponse, error)
	ListForEmployee(ctx context.Context, companyID, employeeID string, filter ListFilter) ([]ScheduleResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ScheduleResponse, error)
	SetVisibility(ctx context.Context, companyID, actorID, id string, req SetVisibilityRequest) (ScheduleResponse, error)
	RequestChange(ctx context.Context, companyID, actorID string, req CreateChangeRequest) (ChangeResponse, error)
	RespondChange(ctx context.Context, companyID, actorID, id string, req RespondChangeRequest) (ChangeResponse, error)
	ListChanges(ctx context.Context, companyID string, filter ChangeListFilter) ([]ChangeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	syncer FulfillmentSyncer
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, syncer FulfillmentSyncer, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, syncer: syncer, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context, companyID string, filter ListFilter) ([]ScheduleResponse, error) {
	if err := validateListFilter(filter); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapSchedules(rows), nil
}

// ListForEmployee is the employee-facing view: private schedules are hidden.
func (s *service) ListForEmployee(ctx context.Context, companyID, employeeID string, filter ListFilter) ([]ScheduleResponse, error) {
	if err := validateListFilter(filter); err != nil {
		return nil, err
	}
	filter.EmployeeID = employeeID
	filter.Visibility = VisibilityPublic
	rows, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapSchedules(rows), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ScheduleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidScheduleID
	}
	sc, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleResponse{}, scheduleerrors.ErrScheduleNotFound
		}
		return ScheduleResponse{}, err
	}
	return mapSchedule(*sc), nil
}

// SetVisibility writes the new visibility and its outbox event in one
// transaction. Setting the current value again is a no-op without an event.
func (s *service) SetVisibility(ctx context.Context, companyID, actorID, id string, req SetVisibilityRequest) (ScheduleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("set schedule visibility requested", zap.String("schedule_id", id), zap.String("visibility", req.Visibility))

	if !IsValidVisibility(req.Visibility) {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidVisibility
	}
	if _, err := uuid.Parse(id); err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidScheduleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("set schedule visibility begin tx failed", zap.Error(err))
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sc, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleResponse{}, scheduleerrors.ErrScheduleNotFound
		}
		return ScheduleResponse{}, err
	}
	if sc.Visibility == req.Visibility {
		return mapSchedule(*sc), nil
	}

	sc.Visibility = req.Visibility
	if err := qtx.Update(ctx, sc); err != nil {
		log.Error("set schedule visibility persist failed", zap.Error(err))
		return ScheduleResponse{}, err
	}
	if err := s.enqueueVisibilityChange(ctx, tx, sc); err != nil {
		log.Error("set schedule visibility outbox failed", zap.Error(err))
		return ScheduleResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("set schedule visibility commit failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	log.Info("set schedule visibility success",
		zap.String("schedule_id", id),
		zap.String("visibility", sc.Visibility),
		zap.String("actor_id", actorID),
	)
	return mapSchedule(*sc), nil
}

func (s *service) RequestChange(ctx context.Context, companyID, actorID string, req CreateChangeRequest) (ChangeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("schedule change requested", zap.String("schedule_id", req.ScheduleID), zap.String("requested_status", req.RequestedStatus))

	if !IsValidStatus(req.RequestedStatus) {
		return ChangeResponse{}, scheduleerrors.ErrInvalidRequestedStatus
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ChangeResponse{}, scheduleerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(req.ScheduleID); err != nil {
		return ChangeResponse{}, scheduleerrors.ErrInvalidScheduleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("schedule change begin tx failed", zap.Error(err))
		return ChangeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sc, err := qtx.FindByIDForUpdate(ctx, companyID, req.ScheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ChangeResponse{}, scheduleerrors.ErrScheduleNotFound
		}
		return ChangeResponse{}, err
	}
	if sc.EmployeeID.String() != actorID {
		log.Warn("schedule change rejected: not owner", zap.String("schedule_id", req.ScheduleID), zap.String("actor_id", actorID))
		return ChangeResponse{}, scheduleerrors.ErrNotScheduleOwner
	}
	if sc.Status == req.RequestedStatus {
		return ChangeResponse{}, scheduleerrors.ErrStatusUnchanged
	}

	pending, err := qtx.HasPendingChange(ctx, req.ScheduleID)
	if err != nil {
		return ChangeResponse{}, err
	}
	if pending {
		log.Warn("schedule change rejected: pending exists", zap.String("schedule_id", req.ScheduleID))
		return ChangeResponse{}, scheduleerrors.ErrPendingChangeExists
	}

	change := &ChangeRequest{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		ScheduleID:      sc.ID,
		EmployeeID:      sc.EmployeeID,
		RequestedStatus: req.RequestedStatus,
		Reason:          req.Reason,
		ApprovalStatus:  ApprovalPending,
		CreatedAt:       s.now().UTC(),
	}
	if err := qtx.CreateChange(ctx, change); err != nil {
		log.Error("schedule change persist failed", zap.Error(err))
		return ChangeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("schedule change commit failed", zap.Error(err))
		return ChangeResponse{}, err
	}

	log.Info("schedule change request created", zap.String("change_id", change.ID.String()))
	return mapChange(*change), nil
}

// RespondChange resolves a pending change. Approval writes the requested
// status onto the schedule and resyncs the owning request; rejection leaves
// the schedule untouched.
func (s *service) RespondChange(ctx context.Context, companyID, actorID, id string, req RespondChangeRequest) (ChangeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("schedule change response requested", zap.String("change_id", id), zap.String("decision", req.Decision))

	if req.Decision != "approve" && req.Decision != "reject" {
		return ChangeResponse{}, scheduleerrors.ErrInvalidDecision
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("schedule change response begin tx failed", zap.Error(err))
		return ChangeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	change, err := qtx.FindChangeForUpdate(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ChangeResponse{}, scheduleerrors.ErrChangeNotFound
		}
		return ChangeResponse{}, err
	}
	if change.ApprovalStatus != ApprovalPending {
		log.Warn("schedule change response rejected: already resolved", zap.String("change_id", id), zap.String("approval_status", change.ApprovalStatus))
		return ChangeResponse{}, scheduleerrors.ErrChangeAlreadyResolved
	}

	now := s.now().UTC()
	change.RespondedBy = &actorID
	change.RespondedAt = &now
	if req.Note != "" {
		change.ResponseNote = &req.Note
	}

	if req.Decision == "reject" {
		change.ApprovalStatus = ApprovalRejected
	} else {
		change.ApprovalStatus = ApprovalApproved
		if err := s.applyChange(ctx, tx, qtx, companyID, change); err != nil {
			log.Warn("schedule change approval failed", zap.String("change_id", id), zap.Error(err))
			return ChangeResponse{}, err
		}
	}

	if err := qtx.UpdateChange(ctx, change); err != nil {
		log.Error("schedule change response persist failed", zap.Error(err))
		return ChangeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("schedule change response commit failed", zap.Error(err))
		return ChangeResponse{}, err
	}

	log.Info("schedule change resolved",
		zap.String("change_id", id),
		zap.String("approval_status", change.ApprovalStatus),
		zap.String("schedule_id", change.ScheduleID.String()),
	)
	return mapChange(*change), nil
}

// applyChange locks in the order Assign uses: the owning request, then the
// schedule row, then the employee-day keys.
func (s *service) applyChange(ctx context.Context, tx *sql.Tx, qtx Repository, companyID string, change *ChangeRequest) error {
	scheduleID := change.ScheduleID.String()
	sc, err := qtx.FindByID(ctx, companyID, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scheduleerrors.ErrScheduleNotFound
		}
		return err
	}
	if s.syncer != nil {
		if err := s.syncer.LockRequestTx(ctx, tx, companyID, sc.ManPowerRequestID.String()); err != nil {
			return err
		}
	}
	sc, err = qtx.FindByIDForUpdate(ctx, companyID, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scheduleerrors.ErrScheduleNotFound
		}
		return err
	}
	if sc.Status == change.RequestedStatus {
		return nil
	}

	if change.RequestedStatus == StatusAccepted {
		if err := s.ensureNoOverlap(ctx, qtx, companyID, sc); err != nil {
			return err
		}
	}

	sc.Status = change.RequestedStatus
	if err := qtx.Update(ctx, sc); err != nil {
		return err
	}
	if s.syncer == nil {
		return nil
	}
	return s.syncer.SyncFulfillmentTx(ctx, tx, companyID, sc.ManPowerRequestID.String())
}

// ensureNoOverlap re-checks double booking before a schedule becomes
// accepted again.
func (s *service) ensureNoOverlap(ctx context.Context, qtx Repository, companyID string, sc *Schedule) error {
	if sc.Shift == nil {
		return scheduleerrors.ErrScheduleNotFound
	}
	employeeID := sc.EmployeeID.String()
	if err := qtx.LockEmployeeDays(ctx, []string{employeeID}, sc.Date); err != nil {
		return err
	}
	existing, err := qtx.FindAcceptedBetween(ctx, companyID, []string{employeeID}, sc.Date.AddDate(0, 0, -1), sc.Date.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	others := existing[:0]
	for _, e := range existing {
		if e.ID != sc.ID {
			others = append(others, e)
		}
	}
	if FindOverlap(sc.Date, *sc.Shift, others) != nil {
		return scheduleerrors.ErrAlreadyAssigned
	}
	return nil
}

func (s *service) ListChanges(ctx context.Context, companyID string, filter ChangeListFilter) ([]ChangeResponse, error) {
	rows, err := s.repo.FindChanges(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]ChangeResponse, len(rows))
	for i, c := range rows {
		out[i] = mapChange(c)
	}
	return out, nil
}

func (s *service) enqueueVisibilityChange(ctx context.Context, tx *sql.Tx, sc *Schedule) error {
	if s.outbox == nil {
		return nil
	}
	requestID := contextutil.GetRequestID(ctx)
	payload := events.ScheduleVisibilityChangedEvent{
		EventType:         events.EventScheduleVisibilityChanged,
		RequestID:         requestID,
		ScheduleID:        sc.ID.String(),
		CompanyID:         sc.CompanyID.String(),
		EmployeeID:        sc.EmployeeID.String(),
		ManPowerRequestID: sc.ManPowerRequestID.String(),
		Date:              sc.Date.Format(time.DateOnly),
		Visibility:        sc.Visibility,
		OccurredAt:        s.now().UTC(),
	}
	if sc.Shift != nil {
		payload.ShiftName = sc.Shift.Name
	}
	event, err := kafka.NewOutboxEvent(
		requestID,
		"schedule",
		sc.ID.String(),
		events.EventScheduleVisibilityChanged,
		events.ScheduleVisibilityTopic,
		payload,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func validateListFilter(f ListFilter) error {
	for _, d := range []string{f.Date, f.From, f.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return scheduleerrors.ErrInvalidDateFormat
		}
	}
	return nil
}

func mapSchedules(rows []Schedule) []ScheduleResponse {
	out := make([]ScheduleResponse, len(rows))
	for i, sc := range rows {
		out[i] = mapSchedule(sc)
	}
	return out
}

func mapSchedule(sc Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:                sc.ID.String(),
		ManPowerRequestID: sc.ManPowerRequestID.String(),
		EmployeeID:        sc.EmployeeID.String(),
		SubSectionID:      sc.SubSectionID.String(),
		ShiftID:           sc.ShiftID.String(),
		Date:              sc.Date.Format(time.DateOnly),
		Status:            sc.Status,
		Visibility:        sc.Visibility,
	}
	if sc.Shift != nil {
		resp.ShiftName = sc.Shift.Name
	}
	return resp
}

func mapChange(c ChangeRequest) ChangeResponse {
	resp := ChangeResponse{
		ID:              c.ID.String(),
		ScheduleID:      c.ScheduleID.String(),
		EmployeeID:      c.EmployeeID.String(),
		RequestedStatus: c.RequestedStatus,
		Reason:          c.Reason,
		ApprovalStatus:  c.ApprovalStatus,
		RespondedBy:     c.RespondedBy,
		ResponseNote:    c.ResponseNote,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
	if c.RespondedAt != nil {
		at := c.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &at
	}
	return resp
}
