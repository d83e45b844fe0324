package events

import "time"

const PayrollPayslipTopic = "hr.payroll.payslip.issued.v1"

const PayslipIssued = "payroll_payslip_issued"

type PayslipIssuedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	Period      string    `json:"period"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
