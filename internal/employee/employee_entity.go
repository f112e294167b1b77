package employee

import (
	"time"

	"go-manpower/internal/organization"
	"go-manpower/internal/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive      = "active"
	StatusDeactivated = "deactivated"

	WorkStatusAvailable = "available"
	WorkStatusAssigned  = "assigned"

	GenderMale   = "male"
	GenderFemale = "female"

	TypeDaily   = scoring.EmployeeTypeDaily
	TypeMonthly = scoring.EmployeeTypeMonthly
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employees_company_nik"`
	NIK          string    `gorm:"size:32;not null;uniqueIndex:uq_employees_company_nik"`
	FullName     string    `gorm:"size:255;not null"`
	Gender       string    `gorm:"type:varchar(10);not null"`
	EmployeeType string    `gorm:"type:varchar(10);not null"`

	Status             string     `gorm:"type:varchar(20);not null;default:'active';index"`
	DeactivationReason *string    `gorm:"type:text"`
	DeactivatedAt      *time.Time
	DeactivatedBy      *string `gorm:"type:varchar(64)"`

	WorkStatus string `gorm:"type:varchar(20);not null;default:'available'"`
	OnLeave    bool   `gorm:"not null;default:false"`

	SubSections []organization.SubSection `gorm:"many2many:employee_sub_sections;joinForeignKey:EmployeeID;joinReferences:SubSectionID"`
	Priorities  []PickingPriority         `gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

type PickingPriority struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_picking_priority_employee_category"`
	Category   string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_picking_priority_employee_category"`
	CreatedAt  time.Time
}

func (PickingPriority) TableName() string {
	return "employee_picking_priorities"
}
