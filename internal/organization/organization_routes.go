package organization

import (
	"go-manpower/internal/domain"
	"go-manpower/internal/middleware"
	"go-manpower/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	org := r.Group("")
	org.Use(middleware.AuthMiddleware())
	org.Use(middleware.ContextLogger(logger))
	{
		org.GET("/sections", middleware.RBACAuthorize(rbacService, domain.ResourceOrganization, domain.ActionRead), h.ListSections)
		org.POST("/sections", middleware.RBACAuthorize(rbacService, domain.ResourceOrganization, domain.ActionCreate), h.CreateSection)
		org.POST("/sections/:id/sub-sections", middleware.RBACAuthorize(rbacService, domain.ResourceOrganization, domain.ActionCreate), h.CreateSubSection)
		org.GET("/shifts", middleware.RBACAuthorize(rbacService, domain.ResourceOrganization, domain.ActionRead), h.ListShifts)
		org.POST("/shifts", middleware.RBACAuthorize(rbacService, domain.ResourceOrganization, domain.ActionCreate), h.CreateShift)
		org.GET("/organization/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceOrganization, domain.ActionRead),
			h.GetOptions,
		)
	}
}
