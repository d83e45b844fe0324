package payroll

import (
	"context"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/store"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
	FindEmployee(ctx context.Context, id string) (*domain.Employee, error)
}

type repository struct {
	st *store.Store
}

func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.st.Employees(), nil
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := r.st.Employee(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
