package domain

import "time"

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// OutboxEvent is a domain event recorded in the same transaction as the
// state change that produced it.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Message       string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
	LastError     string
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}
