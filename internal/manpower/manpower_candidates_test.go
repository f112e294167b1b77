package manpower_test

import (
	"context"
	"testing"
	"time"

	"go-manpower/internal/employee"
	employeemock "go-manpower/internal/employee/mock"
	"go-manpower/internal/leave"
	"go-manpower/internal/manpower"
	"go-manpower/internal/organization"
	schedulemock "go-manpower/internal/schedule/mock"
	"go-manpower/internal/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// approvedLeaves answers EmployeesOnApprovedLeave for one day only.
type approvedLeaves struct {
	leave.Repository
	day     time.Time
	onLeave map[string]bool
}

func (l approvedLeaves) EmployeesOnApprovedLeave(_ context.Context, _ string, _ []string, day time.Time) (map[string]bool, error) {
	if !day.Equal(l.day) {
		return map[string]bool{}, nil
	}
	return l.onLeave, nil
}

func TestCandidateSource_LeaveIsScopedToRequestDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := employeemock.NewMockRepository(ctrl)
	schedules := schedulemock.NewMockRepository(ctrl)

	req := newRequest(2)
	req.Date = day.AddDate(0, 0, 30)

	// away today, back well before the request date
	awayToday := uuid.New()
	// approved leave covering the request date
	awayThen := uuid.New()
	sub := organization.SubSection{ID: loaderID}
	employees.EXPECT().
		FindAll(gomock.Any(), companyID.String(), employee.ListFilter{SubSectionID: loaderID.String()}).
		Return([]employee.Employee{
			{ID: awayToday, Gender: employee.GenderMale, Status: employee.StatusActive, OnLeave: true, SubSections: []organization.SubSection{sub}},
			{ID: awayThen, Gender: employee.GenderMale, Status: employee.StatusActive, SubSections: []organization.SubSection{sub}},
		}, nil)
	schedules.EXPECT().
		FindAcceptedBetween(gomock.Any(), companyID.String(), gomock.Any(), req.Date.AddDate(0, 0, -1), req.Date.AddDate(0, 0, 1)).
		Return(nil, nil)

	leaves := approvedLeaves{day: req.Date, onLeave: map[string]bool{awayThen.String(): true}}
	src := manpower.NewCandidateSource(employees, leaves, schedules, nil, nil, scoring.DefaultConfig())

	got, err := src.Candidates(context.Background(), companyID.String(), req, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	f := manpower.NewEligibilityFilter(nil)
	tg := manpower.Target{Date: req.Date, SubSectionID: loaderID.String(), Shift: pagi, Need: open(2)}
	assert.Equal(t, "", f.Check(tg, got[0]))
	assert.Equal(t, manpower.ReasonOnLeave, f.Check(tg, got[1]))
}
