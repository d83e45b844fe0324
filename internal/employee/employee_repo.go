package employee

import (
	"context"
	"strings"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/store"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *store.Tx) Repository
	Create(ctx context.Context, empl *domain.Employee) error
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Update(ctx context.Context, empl *domain.Employee) error
}

type repository struct {
	st *store.Store
	tx *store.Tx
}

func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) WithTx(tx *store.Tx) Repository {
	return &repository{
		st: r.st,
		tx: tx,
	}
}

func (r *repository) reader() store.Reader {
	if r.tx != nil {
		return r.tx
	}
	return r.st
}

func (r *repository) Create(ctx context.Context, empl *domain.Employee) error {
	return r.put(ctx, empl)
}

func (r *repository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.reader().Employees(), nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := r.reader().Employee(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, e := range r.reader().Employees() {
		if strings.EqualFold(e.Email, email) {
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *repository) Update(ctx context.Context, empl *domain.Employee) error {
	if _, err := r.reader().Employee(empl.ID); err != nil {
		return err
	}
	return r.put(ctx, empl)
}

func (r *repository) put(ctx context.Context, empl *domain.Employee) error {
	if r.tx != nil {
		r.tx.PutEmployee(*empl)
		return nil
	}

	tx, err := r.st.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	tx.PutEmployee(*empl)
	return tx.Commit()
}
