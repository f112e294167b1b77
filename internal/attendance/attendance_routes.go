package attendance

import (
	"go-manpower/internal/domain"
	"go-manpower/internal/middleware"
	"go-manpower/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRead), h.GetAll)
		attendances.POST("", middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRecord), h.Record)
		attendances.POST("/clock-in", middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionCreate), h.ClockIn)
		attendances.POST("/clock-out", middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionCreate), h.ClockOut)
	}
}
