package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleHRManager Role = "HR Manager"
	RoleManager   Role = "Manager"
	RoleEmployee  Role = "Employee"
	RoleIntern    Role = "Intern"
)

// Roles lists every selectable role in display order.
var Roles = []Role{RoleAdmin, RoleHRManager, RoleManager, RoleEmployee, RoleIntern}

var roleAliases = map[string]Role{
	"admin":      RoleAdmin,
	"hr manager": RoleHRManager,
	"hr_manager": RoleHRManager,
	"hrmanager":  RoleHRManager,
	"hr":         RoleHRManager,
	"manager":    RoleManager,
	"employee":   RoleEmployee,
	"intern":     RoleIntern,
}

// ParseRole menerima label tampilan maupun key ("HR Manager", "hr_manager").
func ParseRole(s string) (Role, error) {
	if r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Title is the header label shown next to the current user.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "System Administrator"
	case RoleHRManager:
		return "HR Manager"
	case RoleManager:
		return "Manager"
	case RoleEmployee:
		return "Employee"
	case RoleIntern:
		return "Intern"
	default:
		return ""
	}
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role Role
}
