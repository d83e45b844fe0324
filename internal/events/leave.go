package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveRequested     = "leave_requested"
	LeaveStatusChanged = "leave_status_changed"
)

type LeaveRequestedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Days       int       `json:"days"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RemainingBalance is the category balance after the decision.
type LeaveStatusChangedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	LeaveID          string    `json:"leave_id"`
	EmployeeID       string    `json:"employee_id"`
	LeaveType        string    `json:"leave_type"`
	Status           string    `json:"status"`
	DecidedBy        string    `json:"decided_by"`
	RemainingBalance int       `json:"remaining_balance"`
	OccurredAt       time.Time `json:"occurred_at"`
}
