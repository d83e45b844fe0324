package dashboard

import (
	"context"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/store"
)

type Repository interface {
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
	FindLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error)
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

func (r *repository) FindLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.st.LeaveRequests(), nil
}
