package manpower

import (
	"context"
	"database/sql"
	"time"

	"go-manpower/internal/assessment"
	"go-manpower/internal/attendance"
	"go-manpower/internal/employee"
	"go-manpower/internal/leave"
	"go-manpower/internal/schedule"
	"go-manpower/internal/scoring"
)

// CandidateSource reads the current state ranking depends on. Nothing is
// cached between calls.
//
//go:generate mockgen -source=manpower_candidates.go -destination=mock/manpower_candidates_mock.go -package=mock
type CandidateSource interface {
	WithTx(tx *sql.Tx) CandidateSource
	// Candidates loads the request's sub-section pool, every employee when
	// cross-section is allowed, or exactly employeeIDs when given.
	Candidates(ctx context.Context, companyID string, req *ManPowerRequest, employeeIDs []string) ([]Candidate, error)
	ScoringInputs(ctx context.Context, companyID string, employeeIDs []string, asOf time.Time) (ScoringInputs, error)
}

type candidateSource struct {
	employees   employee.Repository
	leaves      leave.Repository
	schedules   schedule.Repository
	attendance  attendance.Repository
	assessments assessment.Repository
	cfg         scoring.Config
}

func NewCandidateSource(
	employees employee.Repository,
	leaves leave.Repository,
	schedules schedule.Repository,
	attendance attendance.Repository,
	assessments assessment.Repository,
	cfg scoring.Config,
) CandidateSource {
	return &candidateSource{
		employees:   employees,
		leaves:      leaves,
		schedules:   schedules,
		attendance:  attendance,
		assessments: assessments,
		cfg:         cfg,
	}
}

func (s *candidateSource) WithTx(tx *sql.Tx) CandidateSource {
	return &candidateSource{
		employees:   s.employees.WithTx(tx),
		leaves:      s.leaves.WithTx(tx),
		schedules:   s.schedules.WithTx(tx),
		attendance:  s.attendance.WithTx(tx),
		assessments: s.assessments.WithTx(tx),
		cfg:         s.cfg,
	}
}

func (s *candidateSource) Candidates(ctx context.Context, companyID string, req *ManPowerRequest, employeeIDs []string) ([]Candidate, error) {
	filter := employee.ListFilter{IDs: employeeIDs}
	if len(employeeIDs) == 0 && !req.AllowCrossSection {
		filter.SubSectionID = req.SubSectionID.String()
	}
	employees, err := s.employees.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, nil
	}

	ids := make([]string, len(employees))
	for i, e := range employees {
		ids[i] = e.ID.String()
	}

	day := truncateDay(req.Date)
	onLeave, err := s.leaves.EmployeesOnApprovedLeave(ctx, companyID, ids, day)
	if err != nil {
		return nil, err
	}
	bookings, err := s.schedules.FindAcceptedBetween(ctx, companyID, ids, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[string][]schedule.Schedule, len(bookings))
	for _, b := range bookings {
		id := b.EmployeeID.String()
		byEmployee[id] = append(byEmployee[id], b)
	}

	out := make([]Candidate, len(employees))
	for i, e := range employees {
		id := e.ID.String()
		c := Candidate{
			EmployeeID:      id,
			NIK:             e.NIK,
			FullName:        e.FullName,
			Gender:          e.Gender,
			EmployeeType:    e.EmployeeType,
			Status:          e.Status,
			OnApprovedLeave: onLeave[id],
			Bookings:        byEmployee[id],
		}
		for _, sub := range e.SubSections {
			c.SubSectionIDs = append(c.SubSectionIDs, sub.ID.String())
		}
		for _, p := range e.Priorities {
			c.Categories = append(c.Categories, p.Category)
		}
		out[i] = c
	}
	return out, nil
}

func (s *candidateSource) ScoringInputs(ctx context.Context, companyID string, employeeIDs []string, asOf time.Time) (ScoringInputs, error) {
	in := ScoringInputs{
		AsOf:     asOf,
		Workload: make(map[string]scoring.WorkloadHistory, len(employeeIDs)),
	}
	if len(employeeIDs) == 0 {
		return in, nil
	}

	from, to := s.cfg.WorkloadWindow(asOf)
	assignments, err := s.schedules.CountAccepted(ctx, companyID, employeeIDs, from, to)
	if err != nil {
		return ScoringInputs{}, err
	}
	from, to = s.cfg.WorkingDayPeriod(asOf)
	worked, err := s.attendance.CountWorkedDays(ctx, companyID, employeeIDs, from, to)
	if err != nil {
		return ScoringInputs{}, err
	}
	for _, id := range employeeIDs {
		in.Workload[id] = scoring.WorkloadHistory{Assignments: assignments[id], WorkedDays: worked[id]}
	}

	in.Assessment, err = s.assessments.LatestRecords(ctx, companyID, employeeIDs)
	if err != nil {
		return ScoringInputs{}, err
	}
	return in, nil
}
