package domain

import (
	"maps"
	"time"
)

type EmployeeStatus string

const (
	EmployeeStatusActive  EmployeeStatus = "Active"
	EmployeeStatusOnLeave EmployeeStatus = "On Leave"
)

func (s EmployeeStatus) Valid() bool {
	return s == EmployeeStatusActive || s == EmployeeStatusOnLeave
}

// Departments is the fixed department catalogue.
var Departments = []string{"Technology", "Finance", "Operations", "Marketing", "HR", "Legal"}

func IsDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

type Employee struct {
	ID           string
	Name         string
	Avatar       string
	Email        string
	Role         Role
	Department   string
	Status       EmployeeStatus
	Salary       int64 // annual, INR
	JoiningDate  time.Time
	LeaveBalance map[LeaveType]int
}

// Clone returns a copy that does not share the balance map.
func (e Employee) Clone() Employee {
	out := e
	out.LeaveBalance = maps.Clone(e.LeaveBalance)
	if out.LeaveBalance == nil {
		out.LeaveBalance = map[LeaveType]int{}
	}
	return out
}

// DefaultLeaveBalance is granted to newly added employees.
func DefaultLeaveBalance() map[LeaveType]int {
	return map[LeaveType]int{
		LeaveTypeCasual: 7,
		LeaveTypeSick:   10,
		LeaveTypeEarned: 0,
	}
}
