package attendance

import (
	"gtb-hrms/internal/middleware"
	"gtb-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, rbac.ViewAttendance.Resource, rbac.ViewAttendance.Action), h.GetAll)
	}
}
