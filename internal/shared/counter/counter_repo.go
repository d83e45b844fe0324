package counter

import (
	"context"
	"fmt"

	"gtb-hrms/internal/store"
)

const (
	TypeEmployee     = "employee"
	TypeLeaveRequest = "leave_request"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *store.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
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

// GetNextValue derives the next sequence from the collection size, so it is
// only stable when called inside the Tx that inserts the record.
func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	switch counterType {
	case TypeEmployee:
		return int64(len(r.reader().Employees())) + 1, nil
	case TypeLeaveRequest:
		return int64(len(r.reader().LeaveRequests())) + 1, nil
	default:
		return 0, fmt.Errorf("unknown counter type %q", counterType)
	}
}

// Format builds a display id such as GTBI-007 or LR-012.
func Format(prefix string, value int64) string {
	return fmt.Sprintf("%s-%03d", prefix, value)
}
