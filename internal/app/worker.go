package app

import (
	"context"

	"gtb-hrms/internal/messaging/kafka/producer"
	"gtb-hrms/internal/shared/connection"

	"go.uber.org/zap"
)

// StartOutboxRelay publishes outbox events to Kafka until ctx is done. The
// outbox lives in process memory, so the relay runs beside the HTTP server
// instead of in a separate worker binary. Without KAFKA_BROKER events stay
// local and only feed the dashboard.
func (a *App) StartOutboxRelay(ctx context.Context) error {
	if a.cfg.KafkaBroker == "" {
		a.logger.Info("KAFKA_BROKER not set, outbox relay disabled")
		return nil
	}

	writer, err := connection.ConnectKafkaWithRetry(ctx, a.cfg.KafkaBroker, a.cfg.ConnectRetries)
	if err != nil {
		return err
	}
	a.writer = writer

	go producer.ProcessOutboxEvents(
		ctx,
		a.outbox,
		writer,
		a.base,
		a.cfg.OutboxPollInterval,
	)

	a.logger.Info("outbox relay started", zap.String("broker", a.cfg.KafkaBroker))
	return nil
}
