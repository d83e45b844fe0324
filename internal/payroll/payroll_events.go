package payroll

import (
	"context"
	"fmt"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/events"
	"gtb-hrms/internal/messaging/kafka"
)

func (s *service) recordIssued(ctx context.Context, rid string, actor domain.Actor, p PayslipResponse) error {
	if s.st == nil || s.outbox == nil {
		return nil
	}
	event := events.PayslipIssuedEvent{
		EventType:   events.PayslipIssued,
		RequestID:   rid,
		EmployeeID:  p.Employee.ID,
		Period:      p.Period,
		RequestedBy: actor.ID,
		OccurredAt:  s.now().UTC(),
	}
	msg := fmt.Sprintf("Payslip for %s issued to %s", p.PeriodLabel, p.Employee.Name)
	e, err := kafka.NewOutboxEvent(rid, "payslip", p.Employee.ID, event.EventType, events.PayrollPayslipTopic, msg, event)
	if err != nil {
		return err
	}

	tx, err := s.st.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, e); err != nil {
		return err
	}
	return tx.Commit()
}
