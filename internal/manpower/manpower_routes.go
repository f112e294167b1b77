package manpower

import (
	"go-manpower/internal/domain"
	"go-manpower/internal/middleware"
	"go-manpower/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	redisClient *redis.Client,
	logger *zap.Logger,
) {
	mprs := r.Group("/manpower-requests")
	mprs.Use(middleware.AuthMiddleware())
	mprs.Use(middleware.ContextLogger(logger))
	{
		mprs.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceManpowerRequest, domain.ActionCreate),
			handler.Create,
		)

		mprs.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceManpowerRequest, domain.ActionRead),
			handler.GetAll,
		)

		mprs.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceManpowerRequest, domain.ActionRead),
			handler.GetByID,
		)

		mprs.DELETE("/:id/schedules",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceManpowerRequest, domain.ActionDelete),
			handler.ClearSchedules,
		)
	}

	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	requests.Use(middleware.ContextLogger(logger))
	{
		requests.POST("/:id/candidates",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceManpowerRequest, domain.ActionRead),
			handler.Candidates,
		)

		requests.POST("/:id/assign",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceManpowerRequest, domain.ActionAssign),
			middleware.Idempotency(redisClient, logger),
			handler.Assign,
		)

		requests.POST("/:id/reject",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceManpowerRequest, domain.ActionApprove),
			handler.Reject,
		)
	}

	needs := r.Group("/recurring-needs")
	needs.Use(middleware.AuthMiddleware())
	needs.Use(middleware.ContextLogger(logger))
	{
		needs.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceRecurringNeed, domain.ActionCreate),
			handler.CreateNeed,
		)

		needs.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceRecurringNeed, domain.ActionRead),
			handler.ListNeeds,
		)

		needs.POST("/generate",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceRecurringNeed, domain.ActionCreate),
			middleware.Idempotency(redisClient, logger),
			handler.Generate,
		)
	}
}
