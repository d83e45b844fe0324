package rbac

import "gtb-hrms/internal/domain"

type NavItem struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Capability string `json:"capability"`
}

var navigation = []struct {
	key   string
	label string
	cap   Capability
}{
	{"dashboard", "Dashboard", ViewDashboard},
	{"employees", "Employees", ViewEmployees},
	{"attendance", "Attendance", ViewAttendance},
	{"leave", "Leave Management", RequestLeave},
	{"payroll", "Payroll", ViewPayroll},
	{"assistant", "HR Assistant", UseAssistant},
	{"settings", "Settings", ViewSettings},
}

// Navigation lists the views role may open, in menu order.
func Navigation(role domain.Role) []NavItem {
	items := make([]NavItem, 0, len(navigation))
	for _, n := range navigation {
		if CanPerform(role, n.cap) {
			items = append(items, NavItem{Key: n.key, Label: n.label, Capability: n.cap.String()})
		}
	}
	return items
}
