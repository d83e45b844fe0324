package department

import (
	"context"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/store"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	FindMembers(ctx context.Context) (map[string][]domain.Employee, error)
}

type repository struct {
	st *store.Store
}

func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

// FindMembers groups the directory by department, keeping insertion order.
func (r *repository) FindMembers(ctx context.Context) (map[string][]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[string][]domain.Employee, len(domain.Departments))
	for _, e := range r.st.Employees() {
		out[e.Department] = append(out[e.Department], e)
	}
	return out, nil
}
