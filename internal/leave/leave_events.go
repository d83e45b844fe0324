package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/events"
	"gtb-hrms/internal/messaging/kafka"
	"gtb-hrms/internal/store"
)

func (s *service) recordRequested(ctx context.Context, tx *store.Tx, rid string, empl domain.Employee, l domain.LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}
	event := events.LeaveRequestedEvent{
		EventType:  events.LeaveRequested,
		RequestID:  rid,
		LeaveID:    l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  string(l.LeaveType),
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Days:       l.Days,
		OccurredAt: time.Now().UTC(),
	}
	msg := fmt.Sprintf("%s requested %d day(s) of %s", empl.Name, l.Days, l.LeaveType)
	e, err := kafka.NewOutboxEvent(rid, "leave_request", l.ID, event.EventType, events.LeaveLifecycleTopic, msg, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, e)
}

func (s *service) recordStatusChanged(ctx context.Context, tx *store.Tx, rid string, actor domain.Actor, empl domain.Employee, l domain.LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}
	event := events.LeaveStatusChangedEvent{
		EventType:        events.LeaveStatusChanged,
		RequestID:        rid,
		LeaveID:          l.ID,
		EmployeeID:       l.EmployeeID,
		LeaveType:        string(l.LeaveType),
		Status:           string(l.Status),
		DecidedBy:        actor.ID,
		RemainingBalance: empl.LeaveBalance[l.LeaveType],
		OccurredAt:       time.Now().UTC(),
	}
	msg := fmt.Sprintf("%s's %s was %s", empl.Name, l.LeaveType, strings.ToLower(string(l.Status)))
	e, err := kafka.NewOutboxEvent(rid, "leave_request", l.ID, event.EventType, events.LeaveLifecycleTopic, msg, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, e)
}
