package manpower

import (
	manpowererrors "go-manpower/internal/manpower/errors"
	"go-manpower/internal/schedule"
)

// FulfillmentStatus derives the request status from its accepted schedule
// count. Rejection is terminal and only set explicitly.
func FulfillmentStatus(current string, accepted, requested int) string {
	switch {
	case current == StatusRejected:
		return StatusRejected
	case accepted <= 0:
		return StatusPending
	case accepted >= requested:
		return StatusFulfilled
	default:
		return StatusPartiallyFulfilled
	}
}

// CanReject reports whether a request holding scheduleCount schedules of any
// status may be rejected.
func CanReject(status string, scheduleCount int) error {
	if status == StatusRejected {
		return manpowererrors.ErrRequestRejected
	}
	if scheduleCount > 0 {
		return manpowererrors.ErrRequestHasSchedules
	}
	return nil
}

// Need is what a request still lacks. Male and Female are the unfilled parts
// of the explicit gender split; Flexible is open to either gender.
type Need struct {
	Remaining    int
	Male         int
	Female       int
	Flexible     int
	TracksGender bool
}

// ComputeNeed subtracts accepted schedules from the request. Schedules
// beyond a gender's quota consume flexible slots.
func ComputeNeed(req ManPowerRequest, f schedule.Fulfillment, tracksGender bool) Need {
	n := Need{Remaining: nonNegative(req.RequestedAmount - f.Accepted)}
	if !tracksGender || req.MaleCount+req.FemaleCount == 0 {
		n.Flexible = n.Remaining
		return n
	}

	n.TracksGender = true
	n.Male = nonNegative(req.MaleCount - f.Male)
	n.Female = nonNegative(req.FemaleCount - f.Female)
	for n.Male+n.Female > n.Remaining {
		if n.Male >= n.Female && n.Male > 0 {
			n.Male--
		} else {
			n.Female--
		}
	}
	n.Flexible = n.Remaining - n.Male - n.Female
	return n
}

// Allows reports whether one more employee of gender fits.
func (n Need) Allows(gender string) bool {
	if n.Remaining <= 0 {
		return false
	}
	if !n.TracksGender {
		return true
	}
	return n.Flexible > 0 || n.slot(gender) > 0
}

// Take consumes one slot for gender, preferring its own quota.
func (n *Need) Take(gender string) bool {
	if !n.Allows(gender) {
		return false
	}
	n.Remaining--
	if !n.TracksGender {
		n.Flexible--
		return true
	}
	switch {
	case gender == genderMale && n.Male > 0:
		n.Male--
	case gender == genderFemale && n.Female > 0:
		n.Female--
	default:
		n.Flexible--
	}
	return true
}

func (n Need) slot(gender string) int {
	switch gender {
	case genderMale:
		return n.Male
	case genderFemale:
		return n.Female
	}
	return 0
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
