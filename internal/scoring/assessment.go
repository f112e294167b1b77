package scoring

// AssessmentRecord carries the latest stored results; nil means never tested.
type AssessmentRecord struct {
	BlindTestPoints *float64
	Rating          *float64
}

// AssessmentScore blends normalized blind-test points and rating. Missing
// components contribute nothing.
func AssessmentScore(rec AssessmentRecord, scale AssessmentScale) float64 {
	score := 0.0
	if rec.BlindTestPoints != nil && scale.BlindTestMax > 0 {
		score += clamp(*rec.BlindTestPoints/scale.BlindTestMax, 0, 1) * scale.BlindTestWeight
	}
	if rec.Rating != nil && scale.RatingMax > scale.RatingMin {
		norm := (*rec.Rating - scale.RatingMin) / (scale.RatingMax - scale.RatingMin)
		score += clamp(norm, 0, 1) * scale.RatingWeight
	}
	return score
}

type AssessmentScorer struct {
	scale   AssessmentScale
	records map[string]AssessmentRecord
}

func NewAssessmentScorer(scale AssessmentScale, records map[string]AssessmentRecord) *AssessmentScorer {
	if records == nil {
		records = map[string]AssessmentRecord{}
	}
	return &AssessmentScorer{scale: scale, records: records}
}

func (s *AssessmentScorer) Score(employeeID string) float64 {
	return AssessmentScore(s.records[employeeID], s.scale)
}
