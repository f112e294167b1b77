package scoring

import "time"

const (
	EmployeeTypeDaily   = "daily"
	EmployeeTypeMonthly = "monthly"
)

// WorkloadHistory is what an employee did inside the trailing windows.
type WorkloadHistory struct {
	Assignments int // accepted schedules in the workload window
	WorkedDays  int // distinct worked days in the working-day period
}

// Factor is the daily-employee multiplier for the given worked days.
func (c WorkingDayCurve) Factor(workedDays int) float64 {
	switch {
	case workedDays < c.TargetDays:
		return c.Boost
	case workedDays == c.TargetDays:
		return 1
	default:
		f := 1 - c.DampenPerDay*float64(workedDays-c.TargetDays)
		if f < c.Floor {
			return c.Floor
		}
		return f
	}
}

// WorkloadScore is inversely related to recent load: 1 for an idle employee,
// shrinking as assignments pile up. Daily employees are scaled by the
// working-day curve.
func WorkloadScore(h WorkloadHistory, employeeType string, cfg Config) float64 {
	assignments := h.Assignments
	if assignments < 0 {
		assignments = 0
	}
	score := 1 / float64(1+assignments)
	if employeeType == EmployeeTypeDaily {
		score *= cfg.WorkingDayCurve.Factor(h.WorkedDays)
	}
	if score < 0 {
		return 0
	}
	return score
}

// WorkloadWindow returns the half-open range [from, asOf) used for assignment counts.
func (c Config) WorkloadWindow(asOf time.Time) (time.Time, time.Time) {
	return asOf.AddDate(0, 0, -c.WorkloadWindowDays), asOf
}

// WorkingDayPeriod returns the half-open range [from, asOf) used for worked days.
func (c Config) WorkingDayPeriod(asOf time.Time) (time.Time, time.Time) {
	return asOf.AddDate(0, 0, -c.WorkingDayCurve.PeriodDays), asOf
}

type WorkloadScorer struct {
	cfg     Config
	asOf    time.Time
	history map[string]WorkloadHistory
}

// NewWorkloadScorer binds histories that were loaded relative to asOf.
// Employees without history score as idle.
func NewWorkloadScorer(cfg Config, asOf time.Time, history map[string]WorkloadHistory) *WorkloadScorer {
	if history == nil {
		history = map[string]WorkloadHistory{}
	}
	return &WorkloadScorer{cfg: cfg, asOf: asOf, history: history}
}

func (s *WorkloadScorer) AsOf() time.Time {
	return s.asOf
}

func (s *WorkloadScorer) Score(employeeID, employeeType string) float64 {
	return WorkloadScore(s.history[employeeID], employeeType, s.cfg)
}

func (s *WorkloadScorer) History(employeeID string) WorkloadHistory {
	return s.history[employeeID]
}
