package auth

import "gtb-hrms/internal/rbac"

type SelectRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type RoleOptionResponse struct {
	Role        string `json:"role"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PrincipalResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	Role        string `json:"role"`
	Title       string `json:"title"`
	Department  string `json:"department,omitempty"`
	InDirectory bool   `json:"in_directory"`
}

type SessionResponse struct {
	AccessToken string            `json:"access_token"`
	ExpiresAt   string            `json:"expires_at"`
	User        PrincipalResponse `json:"user"`
	Navigation  []rbac.NavItem    `json:"navigation"`
}

type MeResponse struct {
	User         PrincipalResponse `json:"user"`
	Capabilities []string          `json:"capabilities"`
	Navigation   []rbac.NavItem    `json:"navigation"`
}
