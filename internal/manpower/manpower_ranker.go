package manpower

import (
	"sort"
	"time"

	"go-manpower/internal/scoring"

	"github.com/shopspring/decimal"
)

// totalPrecision is the number of decimal places totals are compared at. It
// matches the rendered precision, so two totals that print the same tie.
const totalPrecision = scorePlaces

// ScoringInputs is the history one ranking run reads.
type ScoringInputs struct {
	AsOf       time.Time
	Workload   map[string]scoring.WorkloadHistory
	Assessment map[string]scoring.AssessmentRecord
}

type RankedCandidate struct {
	Candidate
	SameSubSection  bool
	PriorityWeight  float64
	WorkloadScore   float64
	AssessmentScore float64
	Total           decimal.Decimal
}

// Ranker orders eligible candidates by
//
//	(workload*W1 + assessment*W2) * priority
//
// then same sub-section first, then employee id. It holds no state between
// calls.
type Ranker struct {
	cfg scoring.Config
}

func NewRanker(cfg scoring.Config) *Ranker {
	return &Ranker{cfg: cfg}
}

func (r *Ranker) Rank(subSectionID string, candidates []Candidate, in ScoringInputs) []RankedCandidate {
	categories := make(map[string][]string, len(candidates))
	for _, c := range candidates {
		categories[c.EmployeeID] = c.Categories
	}
	priority := scoring.NewPriorityWeightResolver(categories)
	workload := scoring.NewWorkloadScorer(r.cfg, in.AsOf, in.Workload)
	assessment := scoring.NewAssessmentScorer(r.cfg.Assessment, in.Assessment)

	ranked := make([]RankedCandidate, len(candidates))
	for i, c := range candidates {
		rc := RankedCandidate{
			Candidate:       c,
			SameSubSection:  c.InSubSection(subSectionID),
			PriorityWeight:  priority.Weight(c.EmployeeID),
			WorkloadScore:   workload.Score(c.EmployeeID, c.EmployeeType),
			AssessmentScore: assessment.Score(c.EmployeeID),
		}
		total := r.cfg.Combine(rc.WorkloadScore, rc.AssessmentScore, rc.PriorityWeight)
		rc.Total = decimal.NewFromFloat(total).Round(totalPrecision)
		ranked[i] = rc
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if cmp := a.Total.Cmp(b.Total); cmp != 0 {
			return cmp > 0
		}
		if a.SameSubSection != b.SameSubSection {
			return a.SameSubSection
		}
		return a.EmployeeID < b.EmployeeID
	})
	return ranked
}
