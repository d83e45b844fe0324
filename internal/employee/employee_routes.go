package employee

import (
	"gtb-hrms/internal/middleware"
	"gtb-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already run AuthMiddleware.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	idempotency gin.HandlerFunc,
) {
	employees := r.Group("/employees")
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ViewEmployees.Resource, rbac.ViewEmployees.Action),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20), // Limit sedikit lebih longgar karena ringan
			middleware.RBACAuthorize(rbacService, rbac.ViewEmployees.Resource, rbac.ViewEmployees.Action),
			handler.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ViewEmployees.Resource, rbac.ViewEmployees.Action),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ManageEmployees.Resource, rbac.ManageEmployees.Action),
			idempotency,
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ManageEmployees.Resource, rbac.ManageEmployees.Action),
			handler.Update,
		)
	}
}
