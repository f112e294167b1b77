package employee

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	employeeerrors "go-manpower/internal/employee/errors"
	"go-manpower/internal/events"
	"go-manpower/internal/messaging/kafka"
	"go-manpower/internal/scoring"
	"go-manpower/internal/shared/bulk"
	"go-manpower/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultBulkConcurrency = 4

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Deactivate(ctx context.Context, companyID, actorID, id, reason string) (EmployeeResponse, error)
	Reactivate(ctx context.Context, companyID, actorID, id string) (EmployeeResponse, error)
	SetPriorities(ctx context.Context, companyID, id string, req SetPrioritiesRequest) (EmployeeResponse, error)
	ResetStatus(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	BulkDeactivate(ctx context.Context, companyID, actorID string, req BulkDeactivateRequest) (bulk.Report, error)
	BulkResetStatuses(ctx context.Context, companyID, actorID string, req BulkResetStatusesRequest) (bulk.Report, error)
}

type service struct {
	db              *sql.DB
	repo            Repository
	outbox          kafka.OutboxRepository
	bulkRepo        bulk.Repository
	bulkConcurrency int
	now             func() time.Time
	logger          *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	bulkRepo bulk.Repository,
	bulkConcurrency int,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if bulkConcurrency < 1 {
		bulkConcurrency = defaultBulkConcurrency
	}
	return &service{
		db:              db,
		repo:            repo,
		outbox:          outbox,
		bulkRepo:        bulkRepo,
		bulkConcurrency: bulkConcurrency,
		now:             time.Now,
		logger:          l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested", zap.String("company_id", companyID), zap.String("nik", req.NIK))

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}

	categories, err := normalizeCategories(req.Priorities)
	if err != nil {
		log.Warn("create employee rejected", zap.Strings("priorities", req.Priorities))
		return EmployeeResponse{}, err
	}

	subSectionIDs, err := parseUUIDs(req.SubSectionIDs)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrSubSectionNotInCompany
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if len(subSectionIDs) > 0 {
		ids := bulk.Dedupe(req.SubSectionIDs)
		count, err := qtx.CountSubSections(ctx, companyID, ids)
		if err != nil {
			log.Error("create employee sub-section lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if count != int64(len(ids)) {
			log.Warn("create employee rejected: foreign sub-section", zap.Strings("sub_section_ids", ids))
			return EmployeeResponse{}, employeeerrors.ErrSubSectionNotInCompany
		}
	}

	emp := &Employee{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		NIK:          strings.TrimSpace(req.NIK),
		FullName:     strings.TrimSpace(req.FullName),
		Gender:       req.Gender,
		EmployeeType: req.EmployeeType,
		Status:       StatusActive,
		WorkStatus:   WorkStatusAvailable,
	}
	if err := qtx.Create(ctx, emp); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.ReplaceSubSections(ctx, emp.ID, subSectionIDs); err != nil {
		log.Error("create employee sub-sections persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if err := qtx.ReplacePriorities(ctx, companyUUID, emp.ID, categories); err != nil {
		log.Error("create employee priorities persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	created, err := qtx.FindByID(ctx, companyID, emp.ID.String())
	if err != nil {
		log.Error("create employee reload failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success", zap.String("employee_id", emp.ID.String()))
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("list employees requested", zap.String("company_id", companyID), zap.String("status", filter.Status))

	employees, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		log.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	out := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = mapToResponse(e)
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// Deactivate marks the employee unavailable for future picking. Existing
// schedules are left untouched.
func (s *service) Deactivate(ctx context.Context, companyID, actorID, id, reason string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("deactivate employee requested", zap.String("employee_id", id), zap.String("actor_id", actorID))

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return EmployeeResponse{}, employeeerrors.ErrDeactivationReasonRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("deactivate employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if !emp.IsActive() {
		log.Warn("deactivate employee rejected: already deactivated", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.ErrAlreadyDeactivated
	}

	now := s.now()
	emp.Status = StatusDeactivated
	emp.DeactivationReason = &reason
	emp.DeactivatedAt = &now
	if actorID != "" {
		emp.DeactivatedBy = &actorID
	}
	if err := qtx.Update(ctx, emp); err != nil {
		log.Error("deactivate employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := s.enqueueStatusChange(ctx, tx, events.EventEmployeeDeactivated, emp, actorID, reason, now); err != nil {
		log.Error("deactivate employee outbox failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("deactivate employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("deactivate employee success", zap.String("employee_id", id))
	return mapToResponse(*emp), nil
}

func (s *service) Reactivate(ctx context.Context, companyID, actorID, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("reactivate employee requested", zap.String("employee_id", id), zap.String("actor_id", actorID))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("reactivate employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if emp.IsActive() {
		log.Warn("reactivate employee rejected: not deactivated", zap.String("employee_id", id))
		return EmployeeResponse{}, employeeerrors.ErrNotDeactivated
	}

	emp.Status = StatusActive
	emp.DeactivationReason = nil
	emp.DeactivatedAt = nil
	emp.DeactivatedBy = nil
	if err := qtx.Update(ctx, emp); err != nil {
		log.Error("reactivate employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := s.enqueueStatusChange(ctx, tx, events.EventEmployeeReactivated, emp, actorID, "", s.now()); err != nil {
		log.Error("reactivate employee outbox failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("reactivate employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("reactivate employee success", zap.String("employee_id", id))
	return mapToResponse(*emp), nil
}

func (s *service) SetPriorities(ctx context.Context, companyID, id string, req SetPrioritiesRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("set priorities requested", zap.String("employee_id", id), zap.Strings("categories", req.Categories))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	categories, err := normalizeCategories(req.Categories)
	if err != nil {
		log.Warn("set priorities rejected", zap.Strings("categories", req.Categories))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("set priorities begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.ReplacePriorities(ctx, emp.CompanyID, emp.ID, categories); err != nil {
		log.Error("set priorities persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	updated, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("set priorities commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("set priorities success", zap.String("employee_id", id))
	return mapToResponse(*updated), nil
}

// ResetStatus returns the employee to the available pool. The on-leave flag
// is kept while an approved leave still covers today.
func (s *service) ResetStatus(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("reset status requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("reset status begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.WorkStatus = WorkStatusAvailable
	if emp.OnLeave {
		onLeave, err := qtx.HasApprovedLeaveOn(ctx, companyID, id, truncateDay(s.now()))
		if err != nil {
			log.Error("reset status leave lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		emp.OnLeave = onLeave
	}

	if err := qtx.Update(ctx, emp); err != nil {
		log.Error("reset status persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("reset status commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("reset status success", zap.String("employee_id", id), zap.Bool("on_leave", emp.OnLeave))
	return mapToResponse(*emp), nil
}

func (s *service) BulkDeactivate(ctx context.Context, companyID, actorID string, req BulkDeactivateRequest) (bulk.Report, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	ids := bulk.Dedupe(req.EmployeeIDs)
	log.Debug("bulk deactivate requested", zap.Int("count", len(ids)), zap.String("actor_id", actorID))

	if strings.TrimSpace(req.Reason) == "" {
		return bulk.Report{}, employeeerrors.ErrDeactivationReasonRequired
	}

	report := bulk.Run(ctx, ids, s.bulkConcurrency, func(ctx context.Context, id string) error {
		_, err := s.Deactivate(ctx, companyID, actorID, id, req.Reason)
		return err
	})

	s.saveReport(ctx, companyID, bulk.KindEmployeeDeactivate, actorID, report)
	log.Info("bulk deactivate finished",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *service) BulkResetStatuses(ctx context.Context, companyID, actorID string, req BulkResetStatusesRequest) (bulk.Report, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	ids := bulk.Dedupe(req.EmployeeIDs)
	if len(req.EmployeeIDs) == 0 {
		all, err := s.repo.ListIDs(ctx, companyID)
		if err != nil {
			log.Error("bulk reset list employees failed", zap.Error(err))
			return bulk.Report{}, err
		}
		ids = all
	}
	log.Debug("bulk reset statuses requested", zap.Int("count", len(ids)), zap.String("actor_id", actorID))

	report := bulk.Run(ctx, ids, s.bulkConcurrency, func(ctx context.Context, id string) error {
		_, err := s.ResetStatus(ctx, companyID, id)
		return err
	})

	s.saveReport(ctx, companyID, bulk.KindEmployeeResetStatus, actorID, report)
	log.Info("bulk reset statuses finished",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *service) saveReport(ctx context.Context, companyID, kind, actorID string, report bulk.Report) {
	if s.bulkRepo == nil {
		return
	}
	if err := s.bulkRepo.Save(ctx, companyID, kind, actorID, report); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("bulk report persist failed",
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
}

func (s *service) enqueueStatusChange(ctx context.Context, tx *sql.Tx, eventType string, emp *Employee, actorID, reason string, at time.Time) error {
	if s.outbox == nil {
		return nil
	}
	requestID := contextutil.GetRequestID(ctx)
	payload := events.EmployeeStatusChangedEvent{
		EventType:  eventType,
		RequestID:  requestID,
		EmployeeID: emp.ID.String(),
		CompanyID:  emp.CompanyID.String(),
		ActorID:    actorID,
		Reason:     reason,
		OccurredAt: at.UTC(),
	}
	event, err := kafka.NewOutboxEvent(
		requestID,
		"employee",
		emp.ID.String(),
		eventType,
		events.EmployeeLifecycleTopic,
		payload,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

// normalizeCategories lower-cases and dedupes categories, rejecting names
// outside the known table.
func normalizeCategories(in []string) ([]string, error) {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if !scoring.IsKnownCategory(c) {
			return nil, employeeerrors.ErrUnknownPriorityCategory
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func parseUUIDs(in []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(in))
	seen := make(map[uuid.UUID]struct{}, len(in))
	for _, raw := range in {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                 e.ID.String(),
		CompanyID:          e.CompanyID.String(),
		NIK:                e.NIK,
		FullName:           e.FullName,
		Gender:             e.Gender,
		EmployeeType:       e.EmployeeType,
		Status:             e.Status,
		DeactivationReason: e.DeactivationReason,
		WorkStatus:         e.WorkStatus,
		OnLeave:            e.OnLeave,
		SubSections:        make([]SubSectionRef, 0, len(e.SubSections)),
		Priorities:         make([]string, 0, len(e.Priorities)),
	}
	if e.DeactivatedAt != nil {
		at := e.DeactivatedAt.UTC().Format(time.RFC3339)
		resp.DeactivatedAt = &at
	}
	for _, sub := range e.SubSections {
		resp.SubSections = append(resp.SubSections, SubSectionRef{ID: sub.ID.String(), Name: sub.Name})
	}
	for _, p := range e.Priorities {
		resp.Priorities = append(resp.Priorities, p.Category)
	}
	sort.Strings(resp.Priorities)
	resp.PriorityWeight = scoring.PriorityWeight(resp.Priorities)
	return resp
}
