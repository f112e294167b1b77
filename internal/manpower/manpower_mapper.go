package manpower

import (
	"time"

	"go-manpower/internal/schedule"

	"github.com/shopspring/decimal"
)

// scorePlaces is the precision scores are rendered at.
const scorePlaces = 4

func mapRequest(r ManPowerRequest) RequestResponse {
	resp := RequestResponse{
		ID:                r.ID.String(),
		Number:            r.Number,
		SubSectionID:      r.SubSectionID.String(),
		ShiftID:           r.ShiftID.String(),
		Date:              r.Date.Format(time.DateOnly),
		RequestedAmount:   r.RequestedAmount,
		MaleCount:         r.MaleCount,
		FemaleCount:       r.FemaleCount,
		IsAdditional:      r.IsAdditional,
		AllowCrossSection: r.AllowCrossSection,
		Status:            r.Status,
		Notes:             r.Notes,
		RejectionReason:   r.RejectionReason,
	}
	if r.SubSection != nil {
		resp.SubSectionName = r.SubSection.Name
	}
	if r.Shift != nil {
		resp.ShiftName = r.Shift.Name
	}
	return resp
}

func mapFulfillment(f schedule.Fulfillment, need Need) FulfillmentResponse {
	return FulfillmentResponse{
		Accepted:        f.Accepted,
		Male:            f.Male,
		Female:          f.Female,
		Remaining:       need.Remaining,
		RemainingMale:   need.Male,
		RemainingFemale: need.Female,
	}
}

func mapSchedules(rows []schedule.Schedule) []ScheduleSummary {
	out := make([]ScheduleSummary, len(rows))
	for i, sc := range rows {
		out[i] = ScheduleSummary{
			ID:         sc.ID.String(),
			EmployeeID: sc.EmployeeID.String(),
			Status:     sc.Status,
			Visibility: sc.Visibility,
		}
	}
	return out
}

func mapCandidates(ranked []RankedCandidate) []CandidateResponse {
	out := make([]CandidateResponse, len(ranked))
	for i, rc := range ranked {
		priorities := rc.Categories
		if priorities == nil {
			priorities = []string{}
		}
		out[i] = CandidateResponse{
			EmployeeID:      rc.EmployeeID,
			NIK:             rc.NIK,
			FullName:        rc.FullName,
			Gender:          rc.Gender,
			EmployeeType:    rc.EmployeeType,
			SameSubSection:  rc.SameSubSection,
			Priorities:      priorities,
			PriorityWeight:  fixed(rc.PriorityWeight),
			WorkloadScore:   fixed(rc.WorkloadScore),
			AssessmentScore: fixed(rc.AssessmentScore),
			TotalScore:      rc.Total.StringFixed(scorePlaces),
		}
	}
	return out
}

func mapExclusions(ex []Exclusion) []ExcludedResponse {
	out := make([]ExcludedResponse, len(ex))
	for i, e := range ex {
		out[i] = ExcludedResponse{EmployeeID: e.EmployeeID, Reason: e.Reason}
	}
	return out
}

func mapRecurringNeed(n RecurringNeed) RecurringNeedResponse {
	return RecurringNeedResponse{
		ID:                n.ID.String(),
		SubSectionID:      n.SubSectionID.String(),
		ShiftID:           n.ShiftID.String(),
		RequestedAmount:   n.RequestedAmount,
		MaleCount:         n.MaleCount,
		FemaleCount:       n.FemaleCount,
		AllowCrossSection: n.AllowCrossSection,
		RRule:             n.RRule,
		StartDate:         n.StartDate.Format(time.DateOnly),
		Active:            n.Active,
	}
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(scorePlaces)
}
