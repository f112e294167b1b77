package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionRead), handler.GetAll)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionRead), handler.GetById)
		leaves.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate), handler.Create)
		leaves.POST("/:id/submit", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate), handler.Submit)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove), handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove), handler.Reject)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionCreate), handler.Cancel)
		leaves.DELETE("/:id", middleware.RBACAuthorize(rbacService, domain.ResourceLeave, domain.ActionApprove), handler.Delete)
	}
}
