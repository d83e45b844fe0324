package main

import (
	"context"
	"time"

	"gtb-hrms/internal/app"
	"gtb-hrms/internal/bootstrap"
	"gtb-hrms/internal/config"
	"gtb-hrms/internal/middleware"
	"gtb-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// credential wajib ada sebelum server jalan
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.ContextLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// build dependency + routes
	application, err := app.BuildApp(ctx, r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer application.Close()

	if err := application.StartOutboxRelay(ctx); err != nil {
		logger.Fatal("start outbox relay failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:        cfg.Port,
			ReadTimeout: 5 * time.Second,
			// SSE replies can run up to the assistant timeout
			WriteTimeout:    cfg.AssistantTimeout + 15*time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		auditLogger,
	)
	cancel()
}
