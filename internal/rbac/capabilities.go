package rbac

import (
	"slices"

	"gtb-hrms/internal/domain"
)

// Capability is a named permission, expressed as a casbin object/action pair.
type Capability struct {
	Resource string
	Action   string
}

func (c Capability) String() string {
	return c.Resource + "." + c.Action
}

var (
	ViewEmployees   = Capability{"employees", "view"}
	ManageEmployees = Capability{"employees", "manage"}
	RequestLeave    = Capability{"leave", "request"}
	ManageLeave     = Capability{"leave", "manage"}
	ViewPayroll     = Capability{"payroll", "view"}
	ViewAllPayroll  = Capability{"payroll", "view_all"}
	ViewAttendance  = Capability{"attendance", "view"}
	UseAssistant    = Capability{"assistant", "use"}
	ViewSettings    = Capability{"settings", "view"}
	ViewDashboard   = Capability{"dashboard", "view"}
)

// AllCapabilities in a stable order.
var AllCapabilities = []Capability{
	ViewDashboard,
	ViewEmployees,
	ManageEmployees,
	ViewAttendance,
	RequestLeave,
	ManageLeave,
	ViewPayroll,
	ViewAllPayroll,
	UseAssistant,
	ViewSettings,
}

var selfService = []Capability{
	ViewDashboard,
	ViewEmployees,
	ViewAttendance,
	RequestLeave,
	ViewPayroll,
	UseAssistant,
}

// rolePermissions is the single source of truth for authorization. The casbin
// policy and the navigation menu are both derived from it.
var rolePermissions = map[domain.Role][]Capability{
	domain.RoleAdmin:     AllCapabilities,
	domain.RoleHRManager: AllCapabilities,
	domain.RoleManager:   append(slices.Clone(selfService), ManageLeave),
	domain.RoleEmployee:  selfService,
	domain.RoleIntern:    selfService,
}

// CanPerform reports whether role holds capability. Unknown roles hold nothing.
func CanPerform(role domain.Role, capability Capability) bool {
	return slices.Contains(rolePermissions[role], capability)
}

// Capabilities returns a copy of the capabilities granted to role.
func Capabilities(role domain.Role) []Capability {
	return slices.Clone(rolePermissions[role])
}
