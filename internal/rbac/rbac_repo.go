package rbac

import "gtb-hrms/internal/domain"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
}

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type repository struct{}

// NewRepository serves the built-in role table as casbin policy rows.
func NewRepository() Repository {
	return &repository{}
}

func (r *repository) GetRolePermissions() ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	for _, role := range domain.Roles {
		for _, c := range rolePermissions[role] {
			rows = append(rows, RolePermissionRow{
				Role:     string(role),
				Resource: c.Resource,
				Action:   c.Action,
			})
		}
	}
	return rows, nil
}
