package app

import (
	"database/sql"

	"go-manpower/internal/assessment"
	"go-manpower/internal/attendance"
	"go-manpower/internal/config"
	"go-manpower/internal/employee"
	"go-manpower/internal/leave"
	"go-manpower/internal/manpower"
	"go-manpower/internal/messaging/kafka"
	"go-manpower/internal/organization"
	"go-manpower/internal/rbac"
	"go-manpower/internal/schedule"
	"go-manpower/internal/shared/bulk"
	"go-manpower/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services are the domain services shared by the HTTP API and the CLI.
type Services struct {
	RBAC         rbac.Service
	Organization organization.Service
	Employee     employee.Service
	Leave        leave.Service
	Attendance   attendance.Service
	Assessment   assessment.Service
	Manpower     manpower.Service
	Schedule     schedule.Service
}

func buildServices(
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	scheduling config.Scheduling,
	logger *zap.Logger,
) (*Services, error) {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	organizationRepo := organization.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	assessmentRepo := assessment.NewRepository(gormDB)
	manpowerRepo := manpower.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	bulkRepo := bulk.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return nil, err
	}

	// --- Scheduling Core ---
	source := manpower.NewCandidateSource(
		employeeRepo,
		leaveRepo,
		scheduleRepo,
		attendanceRepo,
		assessmentRepo,
		scheduling.Scoring,
	)
	manpowerService := manpower.NewService(
		db,
		manpowerRepo,
		scheduleRepo,
		employeeRepo,
		counterRepo,
		source,
		manpower.NewEligibilityFilter(scheduling.GenderExemptSections),
		manpower.NewRanker(scheduling.Scoring),
		logger,
	)

	return &Services{
		RBAC:         rbac.NewService(rbacRepo, enforcer, logger),
		Organization: organization.NewService(db, organizationRepo, rdb, logger),
		Employee:     employee.NewService(db, employeeRepo, outboxRepo, bulkRepo, scheduling.BulkConcurrency, logger),
		Leave:        leave.NewService(db, leaveRepo, logger),
		Attendance:   attendance.NewService(db, attendanceRepo, logger),
		Assessment:   assessment.NewService(db, assessmentRepo, scheduling.Scoring.Assessment, logger),
		Manpower:     manpowerService,
		Schedule:     schedule.NewService(db, scheduleRepo, outboxRepo, manpowerService, logger),
	}, nil
}

func registerModules(
	router *gin.Engine,
	svc *Services,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// --- Handlers ---
	organizationHandler := organization.NewHandler(svc.Organization, logger)
	employeeHandler := employee.NewHandler(svc.Employee, logger)
	leaveHandler := leave.NewHandler(svc.Leave, logger)
	attendanceHandler := attendance.NewHandler(svc.Attendance)
	assessmentHandler := assessment.NewHandler(svc.Assessment, logger)
	manpowerHandler := manpower.NewHandler(svc.Manpower, logger)
	scheduleHandler := schedule.NewHandler(svc.Schedule, logger)
	rbacHandler := rbac.NewHandler(svc.RBAC)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		organization.RegisterRoutes(api, organizationHandler, svc.RBAC, logger)
		employee.RegisterRoutes(api, employeeHandler, svc.RBAC, logger)
		leave.RegisterRoutes(api, leaveHandler, svc.RBAC, logger)
		attendance.RegisterRoutes(api, attendanceHandler, svc.RBAC)
		assessment.RegisterRoutes(api, assessmentHandler, svc.RBAC, logger)
		manpower.RegisterRoutes(api, manpowerHandler, svc.RBAC, rdb, logger)
		schedule.RegisterRoutes(api, scheduleHandler, svc.RBAC, logger)
		rbac.RegisterRoutes(api, rbacHandler, svc.RBAC)
	}
}
