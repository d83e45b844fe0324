package producer

import (
	"context"
	"time"

	"gtb-hrms/internal/messaging/kafka"

	"go.uber.org/zap"
)

const batchSize = 50

// ProcessOutboxEvents relays pending outbox events to the broker until ctx is
// done. The first pass runs immediately so events recorded before startup do
// not wait a full interval.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.producer.worker")
	log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if ctx.Err() == nil {
			res, err := processPendingEvents(ctx, repo, writer, log)
			if err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			} else if res.sent+res.failed > 0 {
				log.Info("outbox batch relayed",
					zap.Int("sent", res.sent),
					zap.Int("failed", res.failed),
				)
			}
		}

		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-ticker.C:
		}
	}
}

type batchResult struct {
	sent   int
	failed int
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (batchResult, error) {
	var res batchResult

	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return res, err
	}

	for _, event := range events {
		// sisa batch diambil lagi di tick berikutnya
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			res.failed++
			logger.Warn("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("request_id", event.RequestID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("mark outbox failed failed",
					zap.String("outbox_id", event.ID),
					zap.Error(markErr),
				)
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// terkirim tapi belum ditandai: bisa terkirim ulang, consumer harus idempotent
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		res.sent++

		logger.Debug("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return res, nil
}
