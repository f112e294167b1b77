package schedule

import (
	"time"

	"go-manpower/internal/organization"
)

const minutesPerDay = 24 * 60

// FindOverlap returns the first accepted schedule in existing whose shift
// shares any minute with shift on date. Schedules on neighbouring days are
// considered so overnight shifts collide with the next morning. existing
// must have Shift loaded; a schedule without one is treated as colliding.
func FindOverlap(date time.Time, shift organization.Shift, existing []Schedule) *Schedule {
	day := truncateDay(date)
	start, end, err := shift.Window()
	if err != nil {
		start, end = 0, minutesPerDay
	}

	for i := range existing {
		s := &existing[i]
		if s.Status != StatusAccepted {
			continue
		}
		offset := int(truncateDay(s.Date).Sub(day).Hours()/24) * minutesPerDay
		if offset < -minutesPerDay || offset > minutesPerDay {
			continue
		}
		if s.Shift == nil {
			return s
		}
		if offset == 0 && s.Shift.ID == shift.ID {
			return s
		}
		bStart, bEnd, err := s.Shift.Window()
		if err != nil {
			return s
		}
		bStart += offset
		bEnd += offset
		if start < bEnd && bStart < end {
			return s
		}
	}
	return nil
}
