package employee

import (
	"context"
	"fmt"
	"time"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/events"
	"gtb-hrms/internal/messaging/kafka"
	"gtb-hrms/internal/store"
)

// recordCreated queues employee_created in the same Tx as the insert.
func (s *service) recordCreated(ctx context.Context, tx *store.Tx, rid string, actor domain.Actor, empl domain.Employee) error {
	if s.outbox == nil {
		return nil
	}
	event := events.EmployeeCreatedEvent{
		EventType:  events.EmployeeCreated,
		RequestID:  rid,
		EmployeeID: empl.ID,
		Name:       empl.Name,
		Department: empl.Department,
		Role:       string(empl.Role),
		CreatedBy:  actor.ID,
		OccurredAt: time.Now().UTC(),
	}
	msg := fmt.Sprintf("New employee %s joined %s", empl.Name, empl.Department)
	e, err := kafka.NewOutboxEvent(rid, "employee", empl.ID, event.EventType, events.EmployeeLifecycleTopic, msg, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, e)
}

func (s *service) recordUpdated(ctx context.Context, tx *store.Tx, rid string, actor domain.Actor, empl domain.Employee) error {
	if s.outbox == nil {
		return nil
	}
	event := events.EmployeeUpdatedEvent{
		EventType:  events.EmployeeUpdated,
		RequestID:  rid,
		EmployeeID: empl.ID,
		UpdatedBy:  actor.ID,
		OccurredAt: time.Now().UTC(),
	}
	msg := fmt.Sprintf("Employee record of %s updated", empl.Name)
	e, err := kafka.NewOutboxEvent(rid, "employee", empl.ID, event.EventType, events.EmployeeLifecycleTopic, msg, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, e)
}
