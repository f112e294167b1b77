package bulk

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	KindEmployeeDeactivate  = "employee_deactivate"
	KindEmployeeResetStatus = "employee_reset_status"
)

// Operation is the persisted record of one bulk run.
type Operation struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Kind      string         `gorm:"type:varchar(40);not null"`
	ActorID   string         `gorm:"type:varchar(64)"`
	Total     int            `gorm:"not null"`
	Succeeded int            `gorm:"not null"`
	Failed    int            `gorm:"not null"`
	Report    datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

func (Operation) TableName() string {
	return "bulk_operations"
}

//go:generate mockgen -source=bulk_repo.go -destination=mock/bulk_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, companyID, kind, actorID string, report Report) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, companyID, kind, actorID string, report Report) error {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&Operation{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Kind:      kind,
		ActorID:   actorID,
		Total:     report.Total,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		Report:    datatypes.JSON(payload),
	}).Error
}
