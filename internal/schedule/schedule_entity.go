package schedule

import (
	"time"

	"go-manpower/internal/organization"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Schedule assigns one employee to a manpower request on a date. At most one
// accepted schedule per (employee, date, shift) exists; overlapping shifts
// are rejected before insert.
type Schedule struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;not null;index:idx_schedules_company_date"`
	ManPowerRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_schedules_employee_date_shift,where:status = 'accepted' AND deleted_at IS NULL"`
	SubSectionID      uuid.UUID `gorm:"type:uuid;not null"`
	ShiftID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_schedules_employee_date_shift"`
	Date              time.Time `gorm:"type:date;not null;index:idx_schedules_company_date;uniqueIndex:uq_schedules_employee_date_shift"`

	Status     string `gorm:"type:varchar(20);not null;default:'accepted'"`
	Visibility string `gorm:"type:varchar(10);not null;default:'private'"`
	AssignedBy string `gorm:"type:varchar(64);not null"`

	Shift *organization.Shift `gorm:"foreignKey:ShiftID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// ChangeRequest is an employee asking for a different status on one of
// their schedules. Only one pending request per schedule is allowed.
type ChangeRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduleID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_schedule_changes_pending,where:approval_status = 'pending'"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RequestedStatus string    `gorm:"type:varchar(20);not null"`
	Reason          string    `gorm:"type:text"`
	ApprovalStatus  string    `gorm:"type:varchar(20);not null;default:'pending'"`
	RespondedBy     *string   `gorm:"type:varchar(64)"`
	ResponseNote    *string   `gorm:"type:text"`
	RespondedAt     *time.Time

	Schedule *Schedule `gorm:"foreignKey:ScheduleID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ChangeRequest) TableName() string {
	return "schedule_change_requests"
}

func IsValidStatus(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

func IsValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
