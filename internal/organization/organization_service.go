package organization

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	organizationerrors "go-manpower/internal/organization/errors"
	"go-manpower/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	OptionsKeyPrefix = "organization:options:"
	optionsTTL       = 1 * time.Hour
)

func GetOptionsKey(companyID string) string {
	return OptionsKeyPrefix + companyID
}

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	CreateSection(ctx context.Context, companyID string, req CreateSectionRequest) (SectionResponse, error)
	CreateSubSection(ctx context.Context, companyID, sectionID string, req CreateSubSectionRequest) (SubSectionResponse, error)
	CreateShift(ctx context.Context, companyID string, req CreateShiftRequest) (ShiftResponse, error)
	ListSections(ctx context.Context, companyID string) ([]SectionResponse, error)
	ListShifts(ctx context.Context, companyID string) ([]ShiftResponse, error)
	GetOptions(ctx context.Context, companyID string) (OptionsResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) CreateSection(ctx context.Context, companyID string, req CreateSectionRequest) (SectionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create section requested", zap.String("company_id", companyID), zap.String("name", req.Name))

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SectionResponse{}, organizationerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create section begin tx failed", zap.Error(err))
		return SectionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	section := &Section{ID: uuid.New(), CompanyID: companyUUID, Name: req.Name}
	if err := qtx.CreateSection(ctx, section); err != nil {
		log.Error("create section persist failed", zap.Error(err))
		return SectionResponse{}, err
	}

	for _, name := range req.SubSections {
		sub := SubSection{ID: uuid.New(), CompanyID: companyUUID, SectionID: section.ID, Name: name}
		if err := qtx.CreateSubSection(ctx, &sub); err != nil {
			log.Error("create section sub-section persist failed", zap.String("name", name), zap.Error(err))
			return SectionResponse{}, err
		}
		section.SubSections = append(section.SubSections, sub)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create section commit failed", zap.Error(err))
		return SectionResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	log.Info("create section success", zap.String("section_id", section.ID.String()))

	return mapSectionResponse(*section), nil
}

func (s *service) CreateSubSection(ctx context.Context, companyID, sectionID string, req CreateSubSectionRequest) (SubSectionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create sub-section requested",
		zap.String("company_id", companyID),
		zap.String("section_id", sectionID),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SubSectionResponse{}, organizationerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create sub-section begin tx failed", zap.Error(err))
		return SubSectionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	section, err := qtx.FindSectionByID(ctx, companyID, sectionID)
	if err != nil {
		log.Warn("create sub-section section lookup failed", zap.Error(err))
		return SubSectionResponse{}, err
	}

	sub := &SubSection{ID: uuid.New(), CompanyID: companyUUID, SectionID: section.ID, Name: req.Name}
	if err := qtx.CreateSubSection(ctx, sub); err != nil {
		log.Error("create sub-section persist failed", zap.Error(err))
		return SubSectionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create sub-section commit failed", zap.Error(err))
		return SubSectionResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	log.Info("create sub-section success", zap.String("sub_section_id", sub.ID.String()))

	resp := mapSubSectionResponse(*sub)
	resp.SectionName = section.Name
	return resp, nil
}

func (s *service) CreateShift(ctx context.Context, companyID string, req CreateShiftRequest) (ShiftResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create shift requested", zap.String("company_id", companyID), zap.String("name", req.Name))

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ShiftResponse{}, organizationerrors.ErrInvalidCompanyID
	}
	start, err := ParseClock(req.StartTime)
	if err != nil {
		return ShiftResponse{}, organizationerrors.ErrInvalidShiftTime
	}
	end, err := ParseClock(req.EndTime)
	if err != nil {
		return ShiftResponse{}, organizationerrors.ErrInvalidShiftTime
	}
	if start == end {
		return ShiftResponse{}, organizationerrors.ErrZeroLengthShift
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create shift begin tx failed", zap.Error(err))
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	shift := &Shift{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.WithTx(tx).CreateShift(ctx, shift); err != nil {
		log.Error("create shift persist failed", zap.Error(err))
		return ShiftResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create shift commit failed", zap.Error(err))
		return ShiftResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	log.Info("create shift success", zap.String("shift_id", shift.ID.String()))

	return mapShiftResponse(*shift), nil
}

func (s *service) ListSections(ctx context.Context, companyID string) ([]SectionResponse, error) {
	sections, err := s.repo.FindSections(ctx, companyID)
	if err != nil {
		s.logger.Error("list sections failed", zap.Error(err))
		return nil, err
	}
	resp := make([]SectionResponse, len(sections))
	for i, sec := range sections {
		resp[i] = mapSectionResponse(sec)
	}
	return resp, nil
}

func (s *service) ListShifts(ctx context.Context, companyID string) ([]ShiftResponse, error) {
	shifts, err := s.repo.FindShifts(ctx, companyID)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, err
	}
	resp := make([]ShiftResponse, len(shifts))
	for i, sh := range shifts {
		resp[i] = mapShiftResponse(sh)
	}
	return resp, nil
}

// GetOptions serves the master data used by request forms from Redis, with
// singleflight collapsing concurrent cache misses into one database read.
func (s *service) GetOptions(ctx context.Context, companyID string) (OptionsResponse, error) {
	cacheKey := GetOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp OptionsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		sections, err := s.ListSections(ctx, companyID)
		if err != nil {
			return nil, err
		}
		shifts, err := s.ListShifts(ctx, companyID)
		if err != nil {
			return nil, err
		}
		resp := OptionsResponse{Sections: sections, Shifts: shifts}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, string(jsonData), optionsTTL).Err(); err != nil {
					s.logger.Warn("organization options cache store failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return OptionsResponse{}, err
	}

	return v.(OptionsResponse), nil
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate organization options cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func mapSectionResponse(sec Section) SectionResponse {
	subs := make([]SubSectionResponse, len(sec.SubSections))
	for i, sub := range sec.SubSections {
		subs[i] = mapSubSectionResponse(sub)
		subs[i].SectionName = sec.Name
	}
	return SectionResponse{
		ID:          sec.ID.String(),
		Name:        sec.Name,
		SubSections: subs,
	}
}

func mapSubSectionResponse(sub SubSection) SubSectionResponse {
	resp := SubSectionResponse{
		ID:        sub.ID.String(),
		SectionID: sub.SectionID.String(),
		Name:      sub.Name,
	}
	if sub.Section != nil {
		resp.SectionName = sub.Section.Name
	}
	return resp
}

func mapShiftResponse(sh Shift) ShiftResponse {
	start, end, err := sh.Window()
	return ShiftResponse{
		ID:        sh.ID.String(),
		Name:      sh.Name,
		StartTime: sh.StartTime,
		EndTime:   sh.EndTime,
		Overnight: err == nil && end > minutesPerDay && start < minutesPerDay,
	}
}
