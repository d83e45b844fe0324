package app

import (
	"net/http"

	"gtb-hrms/internal/assistant"
	"gtb-hrms/internal/attendance"
	"gtb-hrms/internal/auth"
	"gtb-hrms/internal/dashboard"
	"gtb-hrms/internal/department"
	"gtb-hrms/internal/employee"
	"gtb-hrms/internal/leave"
	"gtb-hrms/internal/middleware"
	"gtb-hrms/internal/payroll"
	"gtb-hrms/internal/rbac"
	"gtb-hrms/internal/rbac/infra"
	"gtb-hrms/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	a *App,
	rdb redis.Cmdable,
	llm assistant.Client,
) error {
	cfg := a.cfg
	logger := a.base

	// --- Repositories ---
	rbacRepo := rbac.NewRepository()
	attendanceRepo := attendance.NewRepository(a.store)
	authRepo := auth.NewRepository(a.store)
	counterRepo := counter.NewRepository(a.store)
	dashboardRepo := dashboard.NewRepository(a.store)
	departmentRepo := department.NewRepository(a.store)
	employeeRepo := employee.NewRepository(a.store)
	leaveRepo := leave.NewRepository(a.store)
	payrollRepo := payroll.NewRepository(a.store)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(rbacRepo, enforcer, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	assistantService := assistant.NewService(llm, assistant.Options{
		Model:          cfg.AssistantModel,
		Temperature:    cfg.AssistantTemperature,
		Timeout:        cfg.AssistantTimeout,
		MaxRetries:     cfg.AssistantMaxRetries,
		RetryBaseDelay: cfg.AssistantRetryBaseDelay,
	}, logger)
	attendanceService := attendance.NewService(attendanceRepo, logger)
	authService := auth.NewService(authRepo, cfg.SessionSecret, cfg.SessionTTL, logger)
	dashboardService := dashboard.NewService(dashboardRepo, a.outbox, logger)
	departmentService := department.NewService(departmentRepo, logger)
	employeeService := employee.NewServiceWithOutbox(a.store, employeeRepo, counterRepo, a.outbox, rdb, logger)
	leaveService := leave.NewService(a.store, leaveRepo, counterRepo, a.outbox, logger)
	payrollService := payroll.NewService(a.store, payrollRepo, a.outbox, logger)

	// --- Handlers ---
	assistantHandler := assistant.NewHandler(assistantService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	idempotency := func(c *gin.Context) { c.Next() }
	if rdb != nil {
		idempotency = middleware.Idempotency(rdb, cfg.IdempotencyTTL, logger)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	protected := api.Group("", middleware.AuthMiddleware(cfg.SessionSecret))
	{
		auth.RegisterRoutes(api, protected, authHandler)
		rbac.RegisterRoutes(protected, rbacHandler)
		assistant.RegisterRoutes(protected, assistantHandler, rbacService,
			rate.Limit(cfg.AssistantRateLimit), cfg.AssistantRateBurst)
		attendance.RegisterRoutes(protected, attendanceHandler, rbacService)
		dashboard.RegisterRoutes(protected, dashboardHandler, rbacService)
		department.RegisterRoutes(protected, departmentHandler, rbacService)
		employee.RegisterRoutes(protected, employeeHandler, rbacService, idempotency)
		leave.RegisterRoutes(protected, leaveHandler, rbacService, idempotency)
		payroll.RegisterRoutes(protected, payrollHandler, rbacService)
	}

	return nil
}
