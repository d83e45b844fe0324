package store

import (
	"fmt"
	"time"

	"gtb-hrms/internal/domain"
)

// NewSeeded returns a store loaded with the demo directory, leave requests and
// attendance log.
func NewSeeded() *Store {
	s := New()
	s.load(seedEmployees(), seedLeaveRequests(), seedAttendance())
	return s
}

func date(v string) time.Time {
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		panic(fmt.Sprintf("store: bad seed date %q", v))
	}
	return t
}

func balance(casual, sick, earned int) map[domain.LeaveType]int {
	return map[domain.LeaveType]int{
		domain.LeaveTypeCasual: casual,
		domain.LeaveTypeSick:   sick,
		domain.LeaveTypeEarned: earned,
	}
}

func AvatarURL(seed int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/100", seed)
}

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "GTBI-001", Name: "Priya Sharma", Avatar: AvatarURL(1), Email: "priya.s@gtb.co.in", Role: domain.RoleManager, Department: "Operations", Status: domain.EmployeeStatusActive, Salary: 1800000, JoiningDate: date("2020-03-15"), LeaveBalance: balance(7, 10, 15)},
		{ID: "GTBI-002", Name: "Rohan Kumar", Avatar: AvatarURL(2), Email: "rohan.k@gtb.co.in", Role: domain.RoleEmployee, Department: "Finance", Status: domain.EmployeeStatusActive, Salary: 1200000, JoiningDate: date("2021-07-22"), LeaveBalance: balance(5, 8, 12)},
		{ID: "GTBI-003", Name: "Anjali Mehta", Avatar: AvatarURL(3), Email: "anjali.m@gtb.co.in", Role: domain.RoleEmployee, Department: "Technology", Status: domain.EmployeeStatusOnLeave, Salary: 1500000, JoiningDate: date("2019-11-01"), LeaveBalance: balance(2, 4, 20)},
		{ID: "GTBI-004", Name: "Vikram Singh", Avatar: AvatarURL(4), Email: "vikram.s@gtb.co.in", Role: domain.RoleManager, Department: "Marketing", Status: domain.EmployeeStatusActive, Salary: 1600000, JoiningDate: date("2022-01-10"), LeaveBalance: balance(7, 10, 10)},
		{ID: "GTBI-005", Name: "Sneha Gupta", Avatar: AvatarURL(5), Email: "sneha.g@gtb.co.in", Role: domain.RoleHRManager, Department: "HR", Status: domain.EmployeeStatusActive, Salary: 900000, JoiningDate: date("2021-05-18"), LeaveBalance: balance(7, 10, 18)},
		{ID: "GTBI-006", Name: "Amit Patel", Avatar: AvatarURL(6), Email: "amit.p@gtb.co.in", Role: domain.RoleEmployee, Department: "Operations", Status: domain.EmployeeStatusActive, Salary: 600000, JoiningDate: date("2023-02-28"), LeaveBalance: balance(6, 9, 5)},
		{ID: "GTBI-007", Name: "Aisha Khan", Avatar: AvatarURL(7), Email: "aisha.k@gtb.co.in", Role: domain.RoleIntern, Department: "Technology", Status: domain.EmployeeStatusActive, Salary: 240000, JoiningDate: date("2023-09-01"), LeaveBalance: balance(3, 5, 0)},
	}
}

func seedLeaveRequests() []domain.LeaveRequest {
	return []domain.LeaveRequest{
		{ID: "LR-001", EmployeeID: "GTBI-001", LeaveType: domain.LeaveTypeCasual, StartDate: date("2023-11-10"), EndDate: date("2023-11-12"), Days: 3, Reason: "Family function", Status: domain.LeaveStatusApproved, CreatedAt: date("2023-11-01")},
		{ID: "LR-002", EmployeeID: "GTBI-002", LeaveType: domain.LeaveTypeEarned, StartDate: date("2023-11-15"), EndDate: date("2023-11-20"), Days: 6, Reason: "Vacation", Status: domain.LeaveStatusPending, CreatedAt: date("2023-11-02")},
		{ID: "LR-003", EmployeeID: "GTBI-003", LeaveType: domain.LeaveTypeSick, StartDate: date("2023-10-25"), EndDate: date("2023-11-05"), Days: 12, Reason: "Medical", Status: domain.LeaveStatusApproved, CreatedAt: date("2023-10-24")},
		{ID: "LR-004", EmployeeID: "GTBI-001", LeaveType: domain.LeaveTypeCasual, StartDate: date("2023-12-01"), EndDate: date("2023-12-02"), Days: 2, Reason: "Personal", Status: domain.LeaveStatusRejected, CreatedAt: date("2023-11-20")},
		{ID: "LR-005", EmployeeID: "GTBI-002", LeaveType: domain.LeaveTypeSick, StartDate: date("2023-11-28"), EndDate: date("2023-11-28"), Days: 1, Reason: "Appointment", Status: domain.LeaveStatusPending, CreatedAt: date("2023-11-27")},
	}
}

func seedAttendance() []domain.AttendanceRecord {
	day := date("2023-10-27")
	return []domain.AttendanceRecord{
		{EmployeeID: "GTBI-001", Date: day, CheckIn: "09:25 AM", CheckOut: "06:03 PM", Status: domain.AttendancePresent},
		{EmployeeID: "GTBI-002", Date: day, CheckIn: "09:45 AM", CheckOut: "06:10 PM", Status: domain.AttendanceLate},
		{EmployeeID: "GTBI-004", Date: day, CheckIn: "09:18 AM", CheckOut: "05:58 PM", Status: domain.AttendancePresent},
		{EmployeeID: "GTBI-005", Date: day, CheckIn: "09:30 AM", CheckOut: "06:00 PM", Status: domain.AttendancePresent},
		{EmployeeID: "GTBI-006", Date: day, CheckIn: "N/A", CheckOut: "N/A", Status: domain.AttendanceAbsent},
	}
}
