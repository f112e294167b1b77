package manpower

import (
	"strings"
	"time"

	"go-manpower/internal/employee"
	"go-manpower/internal/organization"
	"go-manpower/internal/schedule"
)

const (
	genderMale   = employee.GenderMale
	genderFemale = employee.GenderFemale
)

// Exclusion reasons reported by the eligibility filter.
const (
	ReasonDeactivated      = "deactivated"
	ReasonOnLeave          = "on_leave"
	ReasonOtherSubSection  = "other_sub_section"
	ReasonAlreadyScheduled = "already_scheduled"
	ReasonGenderNeedMet    = "gender_need_met"
	ReasonRequestFilled    = "request_filled"
)

// Candidate is everything the filter and ranker know about one employee for
// one request date.
type Candidate struct {
	EmployeeID      string
	NIK             string
	FullName        string
	Gender          string
	EmployeeType    string
	Status          string
	// OnApprovedLeave is true when an approved leave covers the request date.
	OnApprovedLeave bool
	SubSectionIDs   []string
	Categories      []string
	Bookings        []schedule.Schedule
}

func (c Candidate) InSubSection(id string) bool {
	for _, s := range c.SubSectionIDs {
		if s == id {
			return true
		}
	}
	return false
}

// Target describes the slot being filled.
type Target struct {
	Date              time.Time
	SubSectionID      string
	Shift             organization.Shift
	AllowCrossSection bool
	Need              Need
}

type Exclusion struct {
	EmployeeID string
	Reason     string
}

// EligibilityFilter decides who may be considered for a request. Output
// keeps input order; ranking happens later.
type EligibilityFilter struct {
	genderExempt map[string]struct{}
}

// NewEligibilityFilter takes the section or sub-section names that do not
// track gender.
func NewEligibilityFilter(genderExemptSections []string) *EligibilityFilter {
	exempt := make(map[string]struct{}, len(genderExemptSections))
	for _, name := range genderExemptSections {
		exempt[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	return &EligibilityFilter{genderExempt: exempt}
}

// TracksGender is false when the sub-section or its section is on the
// exemption list.
func (f *EligibilityFilter) TracksGender(sub *organization.SubSection) bool {
	if sub == nil {
		return true
	}
	if f.isExempt(sub.Name) {
		return false
	}
	if sub.Section != nil && f.isExempt(sub.Section.Name) {
		return false
	}
	return true
}

func (f *EligibilityFilter) isExempt(name string) bool {
	_, ok := f.genderExempt[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Check returns the first reason c cannot fill t, or "" when eligible.
// A pending test assignment past its due date never blocks.
func (f *EligibilityFilter) Check(t Target, c Candidate) string {
	switch {
	case c.Status != employee.StatusActive:
		return ReasonDeactivated
	case c.OnApprovedLeave:
		return ReasonOnLeave
	case !t.AllowCrossSection && !c.InSubSection(t.SubSectionID):
		return ReasonOtherSubSection
	case schedule.FindOverlap(t.Date, t.Shift, c.Bookings) != nil:
		return ReasonAlreadyScheduled
	case t.Need.Remaining <= 0:
		return ReasonRequestFilled
	case !t.Need.Allows(c.Gender):
		return ReasonGenderNeedMet
	}
	return ""
}

// Partition splits candidates into eligible ones and exclusions.
func (f *EligibilityFilter) Partition(t Target, candidates []Candidate) ([]Candidate, []Exclusion) {
	eligible := make([]Candidate, 0, len(candidates))
	var excluded []Exclusion
	for _, c := range candidates {
		if reason := f.Check(t, c); reason != "" {
			excluded = append(excluded, Exclusion{EmployeeID: c.EmployeeID, Reason: reason})
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible, excluded
}

func (f *EligibilityFilter) Filter(t Target, candidates []Candidate) []Candidate {
	eligible, _ := f.Partition(t, candidates)
	return eligible
}
