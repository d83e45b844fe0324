package assistant

import (
	"gtb-hrms/internal/middleware"
	"gtb-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, limit rate.Limit, burst int) {
	g := r.Group("/assistant", middleware.RBACAuthorize(rbacService, rbac.UseAssistant.Resource, rbac.UseAssistant.Action))
	{
		g.GET("/messages", h.Transcript)
		g.POST("/messages", middleware.RateLimitByUser(limit, burst), h.Send)
		g.DELETE("/messages", h.Reset)
	}
}
