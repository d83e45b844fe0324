package department

import (
	"gtb-hrms/internal/middleware"
	"gtb-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	departments := r.Group("/departments")
	{
		departments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ViewEmployees.Resource, rbac.ViewEmployees.Action),
			handler.GetAll,
		)
		departments.GET("/:name",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ViewEmployees.Resource, rbac.ViewEmployees.Action),
			handler.GetByName,
		)
	}
}
