package manpower_test

import (
	"testing"
	"time"

	"go-manpower/internal/employee"
	"go-manpower/internal/manpower"
	"go-manpower/internal/organization"
	"go-manpower/internal/schedule"
	"go-manpower/internal/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day      = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	loaderID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	packerID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	pagi     = organization.Shift{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Pagi", StartTime: "07:00", EndTime: "15:00"}
	siang    = organization.Shift{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Name: "Siang", StartTime: "15:00", EndTime: "23:00"}
)

func candidate(id, gender string, categories ...string) manpower.Candidate {
	return manpower.Candidate{
		EmployeeID:    id,
		FullName:      id,
		Gender:        gender,
		EmployeeType:  scoring.EmployeeTypeMonthly,
		Status:        employee.StatusActive,
		SubSectionIDs: []string{loaderID.String()},
		Categories:    categories,
	}
}

func target(need manpower.Need) manpower.Target {
	return manpower.Target{Date: day, SubSectionID: loaderID.String(), Shift: pagi, Need: need}
}

func open(n int) manpower.Need {
	return manpower.Need{Remaining: n, Flexible: n}
}

func booking(date time.Time, sh organization.Shift) schedule.Schedule {
	return schedule.Schedule{ID: uuid.New(), Date: date, ShiftID: sh.ID, Shift: &sh, Status: schedule.StatusAccepted}
}

func TestEligibilityFilter_Check(t *testing.T) {
	f := manpower.NewEligibilityFilter(nil)

	deactivated := candidate("c", employee.GenderMale)
	deactivated.Status = employee.StatusDeactivated
	approvedLeave := candidate("e", employee.GenderMale)
	approvedLeave.OnApprovedLeave = true
	other := candidate("f", employee.GenderMale)
	other.SubSectionIDs = []string{packerID.String()}
	booked := candidate("g", employee.GenderMale)
	booked.Bookings = []schedule.Schedule{booking(day, pagi)}
	laterShift := candidate("h", employee.GenderMale)
	laterShift.Bookings = []schedule.Schedule{booking(day, siang)}
	rejectedBooking := candidate("i", employee.GenderMale)
	rb := booking(day, pagi)
	rb.Status = schedule.StatusRejected
	rejectedBooking.Bookings = []schedule.Schedule{rb}

	tests := []struct {
		name   string
		target manpower.Target
		c      manpower.Candidate
		want   string
	}{
		{"active in sub-section", target(open(2)), candidate("a", employee.GenderMale), ""},
		{"deactivated", target(open(2)), deactivated, manpower.ReasonDeactivated},
		{"approved leave", target(open(2)), approvedLeave, manpower.ReasonOnLeave},
		{"other sub-section", target(open(2)), other, manpower.ReasonOtherSubSection},
		{"same shift already booked", target(open(2)), booked, manpower.ReasonAlreadyScheduled},
		{"non-overlapping shift same day", target(open(2)), laterShift, ""},
		{"rejected booking does not block", target(open(2)), rejectedBooking, ""},
		{"request filled", target(manpower.Need{}), candidate("j", employee.GenderMale), manpower.ReasonRequestFilled},
		{
			"gender quota met",
			target(manpower.Need{Remaining: 1, Female: 1, TracksGender: true}),
			candidate("k", employee.GenderMale),
			manpower.ReasonGenderNeedMet,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Check(tt.target, tt.c))
		})
	}

	t.Run("cross-section lets other sub-sections in", func(t *testing.T) {
		tg := target(open(1))
		tg.AllowCrossSection = true
		assert.Empty(t, f.Check(tg, other))
	})
}

func TestEligibilityFilter_PartitionKeepsOrderAndReasons(t *testing.T) {
	f := manpower.NewEligibilityFilter(nil)
	c := candidate("c", employee.GenderMale)
	c.Status = employee.StatusDeactivated

	eligible, excluded := f.Partition(target(open(3)), []manpower.Candidate{
		candidate("b", employee.GenderFemale),
		c,
		candidate("a", employee.GenderMale),
	})

	require.Len(t, eligible, 2)
	assert.Equal(t, "b", eligible[0].EmployeeID)
	assert.Equal(t, "a", eligible[1].EmployeeID)
	assert.Equal(t, []manpower.Exclusion{{EmployeeID: "c", Reason: manpower.ReasonDeactivated}}, excluded)

	for _, e := range f.Filter(target(open(3)), []manpower.Candidate{c}) {
		assert.NotEqual(t, employee.StatusDeactivated, e.Status)
	}
}

func TestEligibilityFilter_TracksGender(t *testing.T) {
	f := manpower.NewEligibilityFilter([]string{" Warehouse "})

	assert.True(t, f.TracksGender(&organization.SubSection{Name: "Loader", Section: &organization.Section{Name: "Production"}}))
	assert.False(t, f.TracksGender(&organization.SubSection{Name: "Loader", Section: &organization.Section{Name: "warehouse"}}))
	assert.False(t, f.TracksGender(&organization.SubSection{Name: "WAREHOUSE"}))
	assert.True(t, f.TracksGender(nil))
}
