package scoring

// Config holds every tunable of the ranking formula
//
//	total = (workload * WorkloadWeight + assessment * AssessmentWeight) * priority
type Config struct {
	WorkloadWeight     float64         `yaml:"workload_weight" validate:"gte=0"`
	AssessmentWeight   float64         `yaml:"assessment_weight" validate:"gte=0"`
	WorkloadWindowDays int             `yaml:"workload_window_days" validate:"gte=1"`
	WorkingDayCurve    WorkingDayCurve `yaml:"working_day_curve"`
	Assessment         AssessmentScale `yaml:"assessment"`
}

// WorkingDayCurve adjusts the workload score of daily employees by the number
// of days they actually worked in the trailing period.
type WorkingDayCurve struct {
	PeriodDays   int     `yaml:"period_days" validate:"gte=1"`
	TargetDays   int     `yaml:"target_days" validate:"gte=0"`
	Boost        float64 `yaml:"boost" validate:"gte=0"`
	DampenPerDay float64 `yaml:"dampen_per_day" validate:"gte=0"`
	Floor        float64 `yaml:"floor" validate:"gte=0"`
}

type AssessmentScale struct {
	BlindTestMax    float64 `yaml:"blind_test_max" validate:"gt=0"`
	RatingMin       float64 `yaml:"rating_min"`
	RatingMax       float64 `yaml:"rating_max" validate:"gtfield=RatingMin"`
	BlindTestWeight float64 `yaml:"blind_test_weight" validate:"gte=0"`
	RatingWeight    float64 `yaml:"rating_weight" validate:"gte=0"`
}

func DefaultConfig() Config {
	return Config{
		WorkloadWeight:     0.6,
		AssessmentWeight:   0.4,
		WorkloadWindowDays: 30,
		WorkingDayCurve: WorkingDayCurve{
			PeriodDays:   30,
			TargetDays:   20,
			Boost:        1.2,
			DampenPerDay: 0.05,
			Floor:        0.5,
		},
		Assessment: AssessmentScale{
			BlindTestMax:    100,
			RatingMin:       1,
			RatingMax:       5,
			BlindTestWeight: 0.5,
			RatingWeight:    0.5,
		},
	}
}

// Combine applies the additive blend first and the priority boost after it.
func (c Config) Combine(workload, assessment, priority float64) float64 {
	total := workload*c.WorkloadWeight + assessment*c.AssessmentWeight
	if total < 0 {
		total = 0
	}
	return total * priority
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
