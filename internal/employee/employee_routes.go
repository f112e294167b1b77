package employee

import (
	"go-manpower/internal/domain"
	"go-manpower/internal/middleware"
	"go-manpower/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionCreate),
			handler.Create,
		)

		employees.POST("/:id/deactivate",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.Deactivate,
		)

		employees.POST("/:id/reactivate",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.Reactivate,
		)

		employees.PUT("/:id/priorities",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.SetPriorities,
		)

		employees.POST("/:id/reset-status",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.ResetStatus,
		)
	}

	bulkOps := r.Group("/bulk")
	bulkOps.Use(middleware.AuthMiddleware())
	bulkOps.Use(middleware.ContextLogger(logger))
	{
		bulkOps.POST("/deactivate",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionBulk),
			handler.BulkDeactivate,
		)

		bulkOps.POST("/reset-statuses",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionBulk),
			handler.BulkResetStatuses,
		)
	}
}
