package counter_test

import (
	"context"
	"testing"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/shared/counter"
	"gtb-hrms/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_GetNextValue(t *testing.T) {
	ctx := context.Background()
	st := store.NewSeeded()
	repo := counter.NewRepository(st)

	n, err := repo.GetNextValue(ctx, counter.TypeEmployee)
	require.NoError(t, err)
	assert.Equal(t, "GTBI-008", counter.Format("GTBI", n))

	n, err = repo.GetNextValue(ctx, counter.TypeLeaveRequest)
	require.NoError(t, err)
	assert.Equal(t, "LR-006", counter.Format("LR", n))

	_, err = repo.GetNextValue(ctx, "payroll")
	assert.Error(t, err)
}

func TestCounter_SeesStagedInserts(t *testing.T) {
	ctx := context.Background()
	st := store.NewSeeded()

	tx, err := st.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	tx.PutLeaveRequest(domain.LeaveRequest{ID: "LR-006"})

	n, err := counter.NewRepository(st).WithTx(tx).GetNextValue(ctx, counter.TypeLeaveRequest)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
