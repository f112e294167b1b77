package organization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Section struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_sections_company_name"`
	Name        string         `gorm:"size:120;not null;uniqueIndex:uq_sections_company_name"`
	SubSections []SubSection   `gorm:"foreignKey:SectionID"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

type SubSection struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;index"`
	SectionID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_sub_sections_section_name"`
	Name      string         `gorm:"size:120;not null;uniqueIndex:uq_sub_sections_section_name"`
	Section   *Section       `gorm:"foreignKey:SectionID"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Shift is a named daily time window. EndTime earlier than or equal to
// StartTime means the shift crosses midnight.
type Shift struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_shifts_company_name"`
	Name      string         `gorm:"size:60;not null;uniqueIndex:uq_shifts_company_name"`
	StartTime string         `gorm:"type:varchar(5);not null"`
	EndTime   string         `gorm:"type:varchar(5);not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
