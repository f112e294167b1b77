package schedule

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
	schedules := r.Group("/schedules")
	schedules.Use(middleware.AuthMiddleware())
	schedules.Use(middleware.ContextLogger(logger))
	{
		schedules.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceSchedule, domain.ActionRead),
			handler.List,
		)

		schedules.GET("/me",
			middleware.RateLimitByUser(3, 10),
			handler.ListMine,
		)

		schedules.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceSchedule, domain.ActionRead),
			handler.GetByID,
		)

		schedules.PATCH("/:id/visibility",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceSchedule, domain.ActionUpdate),
			handler.SetVisibility,
		)
	}

	changes := r.Group("/schedule-changes")
	changes.Use(middleware.AuthMiddleware())
	changes.Use(middleware.ContextLogger(logger))
	{
		changes.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.RequestChange,
		)

		changes.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceScheduleChange, domain.ActionRead),
			handler.ListChanges,
		)

		changes.POST("/:id/respond",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceScheduleChange, domain.ActionApprove),
			handler.RespondChange,
		)
	}
}
