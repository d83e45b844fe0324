package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/store"

	"github.com/google/uuid"
)

const (
	maxErrorLength  = 500
	retryStep       = 15 * time.Second
	maxRetryBackoff = 10
)

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *store.Tx) OutboxRepository
	Create(ctx context.Context, event domain.OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	ListRecent(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepository struct {
	st  *store.Store
	tx  *store.Tx
	now func() time.Time
}

func NewOutboxRepository(st *store.Store) OutboxRepository {
	return &outboxRepository{st: st, now: time.Now}
}

func (r *outboxRepository) WithTx(tx *store.Tx) OutboxRepository {
	return &outboxRepository{st: r.st, tx: tx, now: r.now}
}

// Create stages the event in the current Tx. Without a Tx it opens and
// commits its own.
func (r *outboxRepository) Create(ctx context.Context, event domain.OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = r.now().UTC()
	}

	return r.write(ctx, func(tx *store.Tx) error {
		tx.AppendOutbox(event)
		return nil
	})
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.st.PendingOutbox(r.now(), limit), nil
}

func (r *outboxRepository) ListRecent(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.st.RecentOutbox(limit), nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.write(ctx, func(tx *store.Tx) error {
		e, err := tx.OutboxEvent(id)
		if err != nil {
			return err
		}
		processedAt := r.now().UTC()
		e.Status = domain.OutboxStatusSent
		e.ProcessedAt = &processedAt
		e.LastError = ""
		return tx.UpdateOutbox(e)
	})
}

// MarkFailed schedules a retry 15s per attempt, capped at 10 steps.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return r.write(ctx, func(tx *store.Tx) error {
		e, err := tx.OutboxEvent(id)
		if err != nil {
			return err
		}
		if len(reason) > maxErrorLength {
			reason = reason[:maxErrorLength]
		}
		e.Status = domain.OutboxStatusFailed
		e.RetryCount++
		e.LastError = reason
		e.NextRetryAt = r.now().Add(time.Duration(min(e.RetryCount, maxRetryBackoff)) * retryStep)
		return tx.UpdateOutbox(e)
	})
}

func (r *outboxRepository) write(ctx context.Context, fn func(tx *store.Tx) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}

	tx, err := r.st.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// NewOutboxEvent builds a pending event with a JSON payload.
func NewOutboxEvent(requestID, aggregateType, aggregateID, eventType, topic, message string, payload any) (domain.OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return domain.OutboxEvent{}, err
	}
	return domain.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Message:       message,
		Payload:       data,
		Status:        domain.OutboxStatusPending,
	}, nil
}

func ValidateOutboxEvent(event domain.OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case domain.OutboxStatusPending, domain.OutboxStatusSent, domain.OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
