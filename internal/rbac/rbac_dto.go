package rbac

type CapabilityResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Name     string `json:"name"`
}

type RoleCapabilitiesResponse struct {
	Role         string               `json:"role"`
	Capabilities []CapabilityResponse `json:"capabilities"`
	Navigation   []NavItem            `json:"navigation"`
}
