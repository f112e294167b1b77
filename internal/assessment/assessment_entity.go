package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AssignmentAssigned   = "assigned"
	AssignmentInProgress = "in_progress"
	AssignmentCompleted  = "completed"
)

type BlindTestResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_blind_tests_employee"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_blind_tests_employee"`
	Points     float64   `gorm:"not null"`
	TestedAt   time.Time `gorm:"not null;index:idx_blind_tests_employee"`
	RecordedBy string    `gorm:"type:varchar(64)"`
	CreatedAt  time.Time
}

func (BlindTestResult) TableName() string {
	return "blind_test_results"
}

type Rating struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_ratings_employee"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_ratings_employee"`
	Score      float64   `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	RatedAt    time.Time `gorm:"not null;index:idx_ratings_employee"`
	RatedBy    string    `gorm:"type:varchar(64)"`
	CreatedAt  time.Time
}

func (Rating) TableName() string {
	return "employee_ratings"
}

// TestAssignment tracks a psychometric test given to an employee. The due
// date is informational and never blocks scheduling.
type TestAssignment struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	TestName     string     `gorm:"size:120;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'assigned'"`
	AttemptCount int        `gorm:"not null;default:0"`
	DueDate      *time.Time `gorm:"type:date"`
	AssignedBy   string     `gorm:"type:varchar(64)"`
	StartedAt    *time.Time
	CompletedAt  *time.Time
	ResultID     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
