package organization

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const minutesPerDay = 24 * 60

// ParseClock converts "HH:MM" into minutes after midnight.
func ParseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", v, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Window returns the shift as [start, end) minutes relative to the start of
// its scheduled date. Overnight shifts end past minutesPerDay.
func (s Shift) Window() (int, int, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		end += minutesPerDay
	}
	return start, end, nil
}

// Overlaps reports whether two shifts scheduled on the same date share any
// minute. The same shift always overlaps itself; malformed times are treated
// as overlapping so they can never open a double booking.
func (s Shift) Overlaps(other Shift) bool {
	if s.ID != uuid.Nil && s.ID == other.ID {
		return true
	}
	aStart, aEnd, err := s.Window()
	if err != nil {
		return true
	}
	bStart, bEnd, err := other.Window()
	if err != nil {
		return true
	}
	return aStart < bEnd && bStart < aEnd
}
