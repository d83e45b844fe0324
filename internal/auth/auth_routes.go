package auth

import (
	"gtb-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public role-selection endpoints on public and the
// session endpoints on protected, which already runs AuthMiddleware.
func RegisterRoutes(public, protected *gin.RouterGroup, handler *Handler) {
	auth := public.Group("/auth")
	{
		auth.GET("/roles", handler.Roles)
		auth.POST("/session", middleware.RateLimitByIP(1, 10), handler.SelectRole)
		auth.POST("/logout", handler.Logout)
	}

	session := protected.Group("/auth")
	{
		session.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
