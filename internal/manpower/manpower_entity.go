package manpower

import (
	"time"

	"go-manpower/internal/organization"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending            = "pending"
	StatusPartiallyFulfilled = "partially_fulfilled"
	StatusFulfilled          = "fulfilled"
	StatusRejected           = "rejected"

	counterType = "man_power_request"
)

// ManPowerRequest is a demand for RequestedAmount employees of a sub-section
// for a shift on a date. At most one original (non-additional), non-rejected
// request exists per (sub_section, shift, date); the service checks this
// under an advisory lock before insert.
type ManPowerRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_man_power_requests_company_number;index:idx_man_power_requests_tuple"`
	Number       string    `gorm:"size:20;not null;uniqueIndex:uq_man_power_requests_company_number"`
	SubSectionID uuid.UUID `gorm:"type:uuid;not null;index:idx_man_power_requests_tuple"`
	ShiftID      uuid.UUID `gorm:"type:uuid;not null;index:idx_man_power_requests_tuple"`
	Date         time.Time `gorm:"type:date;not null;index:idx_man_power_requests_tuple"`

	RequestedAmount   int  `gorm:"not null"`
	MaleCount         int  `gorm:"not null;default:0"`
	FemaleCount       int  `gorm:"not null;default:0"`
	IsAdditional      bool `gorm:"not null;default:false"`
	AllowCrossSection bool `gorm:"not null;default:false"`

	Status          string     `gorm:"type:varchar(24);not null;default:'pending';index"`
	Notes           string     `gorm:"type:text"`
	RecurringNeedID *uuid.UUID `gorm:"type:uuid"`
	CreatedBy       string     `gorm:"type:varchar(64);not null"`
	RejectedBy      *string    `gorm:"type:varchar(64)"`
	RejectionReason *string    `gorm:"type:text"`
	RejectedAt      *time.Time

	SubSection *organization.SubSection `gorm:"foreignKey:SubSectionID"`
	Shift      *organization.Shift      `gorm:"foreignKey:ShiftID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// RecurringNeed expands into one ManPowerRequest per RRULE occurrence.
type RecurringNeed struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;not null;index"`
	SubSectionID      uuid.UUID `gorm:"type:uuid;not null"`
	ShiftID           uuid.UUID `gorm:"type:uuid;not null"`
	RequestedAmount   int       `gorm:"not null"`
	MaleCount         int       `gorm:"not null;default:0"`
	FemaleCount       int       `gorm:"not null;default:0"`
	AllowCrossSection bool      `gorm:"not null;default:false"`
	RRule             string    `gorm:"column:rrule;type:text;not null"`
	StartDate         time.Time `gorm:"type:date;not null"`
	Active            bool      `gorm:"not null;default:true"`
	CreatedBy         string    `gorm:"type:varchar(64);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
