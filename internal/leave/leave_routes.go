package leave

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
	request := middleware.RBACAuthorize(rbacService, rbac.RequestLeave.Resource, rbac.RequestLeave.Action)
	manage := middleware.RBACAuthorize(rbacService, rbac.ManageLeave.Resource, rbac.ManageLeave.Action)

	leaves := r.Group("/leaves")
	{
		leaves.GET("", request, handler.GetAll)
		leaves.GET("/balances", request, handler.Balances)
		leaves.GET("/days", request, handler.Days)
		leaves.GET("/:id", request, handler.GetById)
		leaves.POST("", middleware.RateLimitByUser(1, 5), request, idempotency, handler.Create)
		leaves.POST("/:id/approve", middleware.RateLimitByUser(2, 10), manage, handler.Approve)
		leaves.POST("/:id/reject", middleware.RateLimitByUser(2, 10), manage, handler.Reject)
		leaves.PATCH("/:id/status", middleware.RateLimitByUser(2, 10), manage, handler.SetStatus)
	}
}
