package attendance

import (
	"context"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/store"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.AttendanceRecord, error)
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
}

type repository struct {
	st *store.Store
}

func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) FindAll(ctx context.Context) ([]domain.AttendanceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.st.Attendance(), nil
}

func (r *repository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.st.Employees(), nil
}
