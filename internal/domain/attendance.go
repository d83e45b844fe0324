package domain

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

type AttendanceRecord struct {
	EmployeeID string
	Date       time.Time
	CheckIn    string
	CheckOut   string
	Status     AttendanceStatus
}
