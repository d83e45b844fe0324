package auth

import (
	"context"
	"errors"

	autherrors "gtb-hrms/internal/auth/errors"
	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/store"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	FindEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)
}

type repository struct {
	st *store.Store
}

func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) FindEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := r.st.Employee(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, autherrors.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
