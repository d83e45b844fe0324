package app

import (
	"context"

	"gtb-hrms/internal/assistant"
	"gtb-hrms/internal/config"
	"gtb-hrms/internal/messaging/kafka"
	"gtb-hrms/internal/shared/connection"
	"gtb-hrms/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// App owns the process-wide dependencies shared by the HTTP modules and the
// outbox relay.
type App struct {
	cfg    config.Config
	store  *store.Store
	outbox kafka.OutboxRepository
	redis  *redis.Client
	writer *kafkago.Writer
	base   *zap.Logger
	logger *zap.Logger
}

func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.L()
	}

	// 1. Setup Infrastructure
	st := store.NewSeeded()
	a := &App{
		cfg:    cfg,
		store:  st,
		outbox: kafka.NewOutboxRepository(st),
		base:   logger,
		logger: logger.Named("app"),
	}

	// nil interface, bukan *redis.Client nil, supaya idempotency dilewati
	var rdb redis.Cmdable
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			return nil, err
		}
		a.redis = client
		rdb = client
	} else {
		a.logger.Warn("REDIS_ADDR not set, idempotency keys and option caching are disabled")
	}

	llm, err := assistant.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		a.Close()
		return nil, err
	}

	// 2. Register Modules & Routes
	if err := registerModules(router, a, rdb, llm); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) Close() {
	if a.writer != nil {
		if err := a.writer.Close(); err != nil {
			a.logger.Warn("close kafka writer failed", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("close redis failed", zap.Error(err))
		}
	}
}
