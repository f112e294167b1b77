package events

import "time"

const (
	ScheduleVisibilityTopic = "hr.schedule.visibility.v1"

	EventScheduleVisibilityChanged = "schedule.visibility_changed"
)

// ScheduleVisibilityChangedEvent is emitted after a schedule visibility change
// commits. Consumers notify the employee when it became public.
type ScheduleVisibilityChangedEvent struct {
	EventType         string    `json:"event_type"`
	RequestID         string    `json:"request_id,omitempty"`
	ScheduleID        string    `json:"schedule_id"`
	CompanyID         string    `json:"company_id"`
	EmployeeID        string    `json:"employee_id"`
	ManPowerRequestID string    `json:"man_power_request_id"`
	Date              string    `json:"date"`
	ShiftName         string    `json:"shift_name,omitempty"`
	SubSectionName    string    `json:"sub_section_name,omitempty"`
	Visibility        string    `json:"visibility"`
	OccurredAt        time.Time `json:"occurred_at"`
}
