package domain

import "time"

type LeaveType string

const (
	LeaveTypeCasual LeaveType = "Casual Leave"
	LeaveTypeSick   LeaveType = "Sick Leave"
	LeaveTypeEarned LeaveType = "Earned Leave"
)

var LeaveTypes = []LeaveType{LeaveTypeCasual, LeaveTypeSick, LeaveTypeEarned}

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeCasual, LeaveTypeSick, LeaveTypeEarned:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

func (s LeaveStatus) Valid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     string
	Status     LeaveStatus
	CreatedAt  time.Time
	DecidedBy  string
	DecidedAt  *time.Time
}
