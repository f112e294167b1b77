package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-manpower/internal/attendance/errors"
	"go-manpower/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Clock-ins after this minute of the day are marked late.
const lateAfterMinute = 9*60 + 15

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error)
	Record(ctx context.Context, companyID string, req RecordRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func (s *service) ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("clock in requested", zap.String("employee_id", employeeID))

	companyUUID, employeeUUID, err := parseIDs(companyID, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("clock in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	if _, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today); err == nil {
		log.Warn("clock in rejected: already clocked in", zap.String("employee_id", employeeID))
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	status := StatusPresent
	if now.Hour()*60+now.Minute() > lateAfterMinute {
		status = StatusLate
	}

	row := &Attendance{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		AttendanceDate: today,
		ClockIn:        now,
		Status:         status,
		Source:         SourceManual,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		log.Error("clock in persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("clock in commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	log.Info("clock in success", zap.String("employee_id", employeeID), zap.String("status", status))
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("clock out requested", zap.String("employee_id", employeeID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("clock out begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	row, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
		}
		return AttendanceResponse{}, err
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.ClockOut = &now
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		log.Error("clock out persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("clock out commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Record(ctx context.Context, companyID string, req RecordRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("record attendance requested", zap.String("employee_id", req.EmployeeID), zap.String("date", req.Date))

	companyUUID, employeeUUID, err := parseIDs(companyID, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("record attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	row := &Attendance{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		AttendanceDate: date,
		ClockIn:        date,
		Status:         StatusPresent,
		Source:         SourceSupervisor,
		Notes:          req.Notes,
	}
	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		if errors.Is(err, attendanceerrors.ErrAlreadyClockedIn) {
			log.Warn("record attendance rejected: duplicate date", zap.String("employee_id", req.EmployeeID))
		} else {
			log.Error("record attendance persist failed", zap.Error(err))
		}
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("record attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	log.Info("record attendance success", zap.String("employee_id", req.EmployeeID), zap.String("date", req.Date))
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]AttendanceResponse, error) {
	from, err := optionalDate(filter.From)
	if err != nil {
		return nil, err
	}
	to, err := optionalDate(filter.To)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx, companyID, filter.EmployeeID, from, to)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func parseIDs(companyID, employeeID string) (uuid.UUID, uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, attendanceerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, attendanceerrors.ErrInvalidEmployeeID
	}
	return companyUUID, employeeUUID, nil
}

func optionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		CompanyID:      a.CompanyID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format(time.DateOnly),
		ClockIn:        a.ClockIn.Format(time.RFC3339),
		Status:         a.Status,
		Source:         a.Source,
		Notes:          a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
