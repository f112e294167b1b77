package app

import (
	"context"
	"fmt"

	"go-manpower/internal/assessment"
	"go-manpower/internal/attendance"
	"go-manpower/internal/domain"
	"go-manpower/internal/employee"
	"go-manpower/internal/leave"
	"go-manpower/internal/manpower"
	"go-manpower/internal/organization"
	"go-manpower/internal/rbac"
	"go-manpower/internal/schedule"
	"go-manpower/internal/shared/bulk"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// rawTables are written through database/sql and have no gorm model.
var rawTables = []string{
	`CREATE TABLE IF NOT EXISTS company_counters (
		company_id uuid NOT NULL,
		counter_type varchar(40) NOT NULL,
		last_value bigint NOT NULL DEFAULT 0,
		updated_at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (company_id, counter_type)
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id uuid PRIMARY KEY,
		request_id text,
		aggregate_type varchar(60) NOT NULL,
		aggregate_id uuid NOT NULL,
		event_type varchar(80) NOT NULL,
		topic varchar(120) NOT NULL,
		payload jsonb NOT NULL,
		status varchar(20) NOT NULL DEFAULT 'pending',
		retry_count int NOT NULL DEFAULT 0,
		next_retry_at timestamptz,
		error_message text,
		processed_at timestamptz,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending ON outbox_events (status, created_at)`,
	`CREATE TABLE IF NOT EXISTS permissions (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		resource varchar(60) NOT NULL,
		action varchar(30) NOT NULL,
		UNIQUE (resource, action)
	)`,
	`CREATE TABLE IF NOT EXISTS role_permissions (
		role_id uuid NOT NULL,
		permission_id uuid NOT NULL,
		PRIMARY KEY (role_id, permission_id)
	)`,
	`CREATE TABLE IF NOT EXISTS employee_roles (
		employee_id uuid NOT NULL,
		role_id uuid NOT NULL,
		PRIMARY KEY (employee_id, role_id)
	)`,
}

// Migrate creates or updates every table the service owns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := zap.L().Named("app.migrate")

	err := db.WithContext(ctx).AutoMigrate(
		&organization.Section{},
		&organization.SubSection{},
		&organization.Shift{},
		&employee.Employee{},
		&employee.PickingPriority{},
		&leave.Leave{},
		&attendance.Attendance{},
		&assessment.BlindTestResult{},
		&assessment.Rating{},
		&assessment.TestAssignment{},
		&manpower.ManPowerRequest{},
		&manpower.RecurringNeed{},
		&schedule.Schedule{},
		&schedule.ChangeRequest{},
		&bulk.Operation{},
		&rbac.RoleRow{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range rawTables {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate raw table: %w", err)
		}
	}

	n, err := seedPermissions(ctx, db)
	if err != nil {
		return err
	}

	log.Info("database migrated", zap.Int64("permissions_added", n))
	return nil
}

// seedPermissions inserts the catalog pairs that are missing. Existing rows
// and role grants are left untouched.
func seedPermissions(ctx context.Context, db *gorm.DB) (int64, error) {
	var added int64
	for _, p := range domain.Permissions {
		res := db.WithContext(ctx).Exec(
			`INSERT INTO permissions (resource, action) VALUES (?, ?) ON CONFLICT (resource, action) DO NOTHING`,
			p.Resource, p.Action,
		)
		if res.Error != nil {
			return added, fmt.Errorf("seed permission %s:%s: %w", p.Resource, p.Action, res.Error)
		}
		added += res.RowsAffected
	}
	return added, nil
}
