package leave

import (
	"context"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/store"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *store.Tx) Repository
	Create(ctx context.Context, l *domain.LeaveRequest) error
	FindAll(ctx context.Context) ([]domain.LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	Update(ctx context.Context, l *domain.LeaveRequest) error
	FindEmployee(ctx context.Context, id string) (*domain.Employee, error)
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
}

type repository struct {
	st *store.Store
	tx *store.Tx
}

func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) WithTx(tx *store.Tx) Repository {
	return &repository{st: r.st, tx: tx}
}

func (r *repository) reader() store.Reader {
	if r.tx != nil {
		return r.tx
	}
	return r.st
}

func (r *repository) Create(ctx context.Context, l *domain.LeaveRequest) error {
	return r.write(ctx, func(tx *store.Tx) { tx.PutLeaveRequest(*l) })
}

// FindAll returns requests newest first.
func (r *repository) FindAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.reader().LeaveRequests(), nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, err := r.reader().LeaveRequest(id)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *domain.LeaveRequest) error {
	if _, err := r.reader().LeaveRequest(l.ID); err != nil {
		return err
	}
	return r.write(ctx, func(tx *store.Tx) { tx.PutLeaveRequest(*l) })
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := r.reader().Employee(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.reader().Employees(), nil
}

func (r *repository) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	if _, err := r.reader().Employee(e.ID); err != nil {
		return err
	}
	return r.write(ctx, func(tx *store.Tx) { tx.PutEmployee(*e) })
}

func (r *repository) write(ctx context.Context, fn func(tx *store.Tx)) error {
	if r.tx != nil {
		fn(r.tx)
		return nil
	}

	tx, err := r.st.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	fn(tx)
	return tx.Commit()
}
