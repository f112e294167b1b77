package scoring

import (
	"sort"
	"strings"
)

const (
	CategorySkillCertified  = "skill_certified"
	CategorySpecialProject  = "special_project"
	CategoryPerformance     = "performance"
	CategoryMachineOperator = "machine_operator"
	CategoryQualityControl  = "quality_control"
	CategorySenior          = "senior"
	CategoryGeneralPriority = "general_priority"
	CategoryOperational     = "operational"
	CategoryTraining        = "training"

	UnrecognizedCategoryWeight = 1.2
	NoCategoryWeight           = 1.0
)

// categoryWeights is the single place picking-priority multipliers are defined.
var categoryWeights = map[string]float64{
	CategorySkillCertified:  2.0,
	CategorySpecialProject:  2.5,
	CategoryPerformance:     1.8,
	CategoryMachineOperator: 1.7,
	CategoryQualityControl:  1.6,
	CategorySenior:          1.5,
	CategoryGeneralPriority: 1.5,
	CategoryOperational:     1.4,
	CategoryTraining:        1.3,
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

// CategoryWeight maps one category to its multiplier; unknown categories get
// UnrecognizedCategoryWeight.
func CategoryWeight(category string) float64 {
	if w, ok := categoryWeights[normalizeCategory(category)]; ok {
		return w
	}
	return UnrecognizedCategoryWeight
}

func IsKnownCategory(category string) bool {
	_, ok := categoryWeights[normalizeCategory(category)]
	return ok
}

func KnownCategories() []string {
	out := make([]string, 0, len(categoryWeights))
	for c := range categoryWeights {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// PriorityWeight combines several categories by taking the maximum weight.
// No category (or only blank ones) yields NoCategoryWeight.
func PriorityWeight(categories []string) float64 {
	weight := 0.0
	for _, c := range categories {
		if normalizeCategory(c) == "" {
			continue
		}
		if w := CategoryWeight(c); w > weight {
			weight = w
		}
	}
	if weight == 0 {
		return NoCategoryWeight
	}
	return weight
}

// PriorityWeightResolver answers weight(employee_id) over categories loaded
// for one ranking run.
type PriorityWeightResolver struct {
	categories map[string][]string
}

func NewPriorityWeightResolver(categoriesByEmployee map[string][]string) *PriorityWeightResolver {
	if categoriesByEmployee == nil {
		categoriesByEmployee = map[string][]string{}
	}
	return &PriorityWeightResolver{categories: categoriesByEmployee}
}

func (r *PriorityWeightResolver) Weight(employeeID string) float64 {
	return PriorityWeight(r.categories[employeeID])
}

func (r *PriorityWeightResolver) Categories(employeeID string) []string {
	return r.categories[employeeID]
}
