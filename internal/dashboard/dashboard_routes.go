package dashboard

import (
	"gtb-hrms/internal/middleware"
	"gtb-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	r.GET("/dashboard", middleware.RBACAuthorize(rbacService, rbac.ViewDashboard.Resource, rbac.ViewDashboard.Action), h.Summary)
}
