package payroll

import (
	"gtb-hrms/internal/middleware"
	"gtb-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already run AuthMiddleware. Row scoping by
// payroll.view_all happens in the service.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	view := middleware.RBACAuthorize(rbacService, rbac.ViewPayroll.Resource, rbac.ViewPayroll.Action)

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", view, handler.GetAll)
		payrolls.GET("/:employee_id/payslip", view, handler.GetPayslip)
		payrolls.GET("/:employee_id/payslip/download", middleware.RateLimitByUser(1, 3), view, handler.DownloadPayslip)
	}
}
