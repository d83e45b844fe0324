package auth

import "gtb-hrms/internal/domain"

// AdminPrincipalID identifies the system administrator, who is not part of
// the employee directory.
const AdminPrincipalID = "ADMIN-001"

type Principal struct {
	ID          string
	Name        string
	Email       string
	Avatar      string
	Role        domain.Role
	Department  string
	InDirectory bool
}

var adminPrincipal = Principal{
	ID:     AdminPrincipalID,
	Name:   "Admin User",
	Email:  "admin@gtb.co.in",
	Avatar: "https://picsum.photos/seed/admin/100",
	Role:   domain.RoleAdmin,
}

// personas maps each selectable role to the directory record that acts for it.
var personas = map[domain.Role]string{
	domain.RoleHRManager: "GTBI-005",
	domain.RoleManager:   "GTBI-001",
	domain.RoleEmployee:  "GTBI-002",
	domain.RoleIntern:    "GTBI-007",
}

var roleDescriptions = map[domain.Role]string{
	domain.RoleAdmin:     "Full access to every module and system settings",
	domain.RoleHRManager: "Manage employees, payroll and leave approvals",
	domain.RoleManager:   "Review team leave requests and attendance",
	domain.RoleEmployee:  "Self-service: own leave, payslips and attendance",
	domain.RoleIntern:    "Self-service access for interns",
}
