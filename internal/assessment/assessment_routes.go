package assessment

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
	assessments := r.Group("/assessments")
	assessments.Use(middleware.AuthMiddleware())
	assessments.Use(middleware.ContextLogger(logger))
	{
		assessments.POST("/blind-tests", middleware.RBACAuthorize(rbacService, domain.ResourceAssessment, domain.ActionCreate), handler.RecordBlindTest)
		assessments.POST("/ratings", middleware.RBACAuthorize(rbacService, domain.ResourceAssessment, domain.ActionCreate), handler.RecordRating)
		assessments.GET("/employees/:employee_id", middleware.RBACAuthorize(rbacService, domain.ResourceAssessment, domain.ActionRead), handler.GetSummary)

		assessments.GET("/assignments", middleware.RBACAuthorize(rbacService, domain.ResourceAssessment, domain.ActionRead), handler.ListAssignments)
		assessments.POST("/assignments", middleware.RBACAuthorize(rbacService, domain.ResourceAssessment, domain.ActionCreate), handler.AssignTest)
		assessments.POST("/assignments/:id/start", middleware.RBACAuthorize(rbacService, domain.ResourceAssessment, domain.ActionTake), handler.StartTest)
		assessments.POST("/assignments/:id/complete", middleware.RBACAuthorize(rbacService, domain.ResourceAssessment, domain.ActionTake), handler.CompleteTest)
	}
}
