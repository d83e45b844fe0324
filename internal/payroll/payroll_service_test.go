package payroll_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/messaging/kafka"
	"gtb-hrms/internal/payroll"
	payrollerrors "gtb-hrms/internal/payroll/errors"
	payrollMock "gtb-hrms/internal/payroll/mock"
	"gtb-hrms/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	admin   = domain.Actor{ID: "ADMIN-001", Role: domain.RoleAdmin}
	hr      = domain.Actor{ID: "GTBI-005", Role: domain.RoleHRManager}
	manager = domain.Actor{ID: "GTBI-001", Role: domain.RoleManager}
	staff   = domain.Actor{ID: "GTBI-002", Role: domain.RoleEmployee}
	intern  = domain.Actor{ID: "GTBI-007", Role: domain.RoleIntern}
)

func setupServiceTest(t *testing.T) (*store.Store, payroll.Service) {
	t.Helper()
	st := store.NewSeeded()
	return st, payroll.NewService(st, payroll.NewRepository(st), kafka.NewOutboxRepository(st))
}

func TestPayrollService_GetAll(t *testing.T) {
	ctx := context.Background()
	_, svc := setupServiceTest(t)

	t.Run("employee sees exactly one row", func(t *testing.T) {
		rows, err := svc.GetAll(ctx, staff, payroll.Filter{})
		require.NoError(t, err)
		require.Len(t, rows, 1)

		assert.Equal(t, "GTBI-002", rows[0].EmployeeID)
		assert.Equal(t, int64(1200000), rows[0].AnnualSalary)
		assert.Equal(t, "₹12,00,000", rows[0].AnnualSalaryDisplay)
		assert.Equal(t, "100000.00", rows[0].MonthlyGross)
		assert.Equal(t, "₹1,00,000", rows[0].MonthlyGrossDisplay)
	})

	t.Run("intern sees own row only", func(t *testing.T) {
		rows, err := svc.GetAll(ctx, intern, payroll.Filter{})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "₹2,40,000", rows[0].AnnualSalaryDisplay)
	})

	t.Run("own row still honours the filter", func(t *testing.T) {
		rows, err := svc.GetAll(ctx, intern, payroll.Filter{Department: "Finance"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("manager has no view_all", func(t *testing.T) {
		rows, err := svc.GetAll(ctx, manager, payroll.Filter{})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "GTBI-001", rows[0].EmployeeID)
	})

	t.Run("hr and admin see every row in directory order", func(t *testing.T) {
		for _, actor := range []domain.Actor{hr, admin} {
			rows, err := svc.GetAll(ctx, actor, payroll.Filter{})
			require.NoError(t, err)
			require.Len(t, rows, 7)
			assert.Equal(t, "GTBI-001", rows[0].EmployeeID)
			assert.Equal(t, "₹18,00,000", rows[0].AnnualSalaryDisplay)
		}
	})

	t.Run("filters compose", func(t *testing.T) {
		rows, err := svc.GetAll(ctx, hr, payroll.Filter{Department: "Technology"})
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = svc.GetAll(ctx, hr, payroll.Filter{Department: "Technology", Query: "aisha"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "GTBI-007", rows[0].EmployeeID)
	})

	t.Run("unknown caller without view_all sees nothing", func(t *testing.T) {
		rows, err := svc.GetAll(ctx, domain.Actor{ID: "GTBI-404", Role: domain.RoleEmployee}, payroll.Filter{})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestPayrollService_GetPayslip(t *testing.T) {
	ctx := context.Background()
	_, svc := setupServiceTest(t)

	t.Run("own payslip", func(t *testing.T) {
		p, err := svc.GetPayslip(ctx, staff, "GTBI-002", "2023-10")
		require.NoError(t, err)

		assert.Equal(t, "Global Trust Bank", p.Company)
		assert.Equal(t, "2023-10", p.Period)
		assert.Equal(t, "October 2023", p.PeriodLabel)
		assert.Equal(t, "Finance", p.Employee.Department)
		assert.Equal(t, "2021-07-22", p.Employee.JoiningDate)

		require.Len(t, p.Earnings, 3)
		assert.Equal(t, "Basic Salary", p.Earnings[0].Label)
		assert.Equal(t, "50000.00", p.Earnings[0].Amount)
		assert.Equal(t, "₹50,000.00", p.Earnings[0].Display)
		assert.Equal(t, "₹20,000.00", p.Earnings[1].Display)
		assert.Equal(t, "₹90,000.00", p.TotalEarnings.Display)

		require.Len(t, p.Deductions, 2)
		assert.Equal(t, "₹6,000.00", p.Deductions[0].Display)
		assert.Equal(t, "₹200.00", p.Deductions[1].Display)
		assert.Equal(t, "₹6,200.00", p.TotalDeductions.Display)

		assert.Equal(t, "83800.00", p.NetSalary.Amount)
		assert.Equal(t, "₹83,800.00", p.NetSalary.Display)
	})

	t.Run("hr views anyone", func(t *testing.T) {
		p, err := svc.GetPayslip(ctx, hr, "GTBI-001", "2023-10")
		require.NoError(t, err)
		assert.Equal(t, "₹1,25,800.00", p.NetSalary.Display)
	})

	t.Run("negative - someone else's payslip", func(t *testing.T) {
		_, err := svc.GetPayslip(ctx, staff, "GTBI-001", "2023-10")
		assert.ErrorIs(t, err, payrollerrors.ErrPayslipForbidden)

		_, err = svc.GetPayslip(ctx, manager, "GTBI-002", "2023-10")
		assert.ErrorIs(t, err, payrollerrors.ErrPayslipForbidden)
	})

	t.Run("negative - bad period", func(t *testing.T) {
		_, err := svc.GetPayslip(ctx, staff, "GTBI-002", "10/2023")
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat)
	})

	t.Run("negative - unknown employee", func(t *testing.T) {
		_, err := svc.GetPayslip(ctx, hr, "GTBI-404", "2023-10")
		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})
}

func TestPayrollService_DownloadPayslip(t *testing.T) {
	ctx := context.Background()
	st, svc := setupServiceTest(t)

	file, err := svc.DownloadPayslip(ctx, staff, "GTBI-002", "2023-10")
	require.NoError(t, err)

	assert.Equal(t, "payslip-GTBI-002-2023-10.pdf", file.Filename)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF-"))

	recent := st.RecentOutbox(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "payroll_payslip_issued", recent[0].EventType)
	assert.Equal(t, "GTBI-002", recent[0].AggregateID)
	assert.Equal(t, "Payslip for October 2023 issued to Rohan Kumar", recent[0].Message)

	_, err = svc.DownloadPayslip(ctx, staff, "GTBI-003", "2023-10")
	assert.ErrorIs(t, err, payrollerrors.ErrPayslipForbidden)
	assert.Len(t, st.RecentOutbox(10), 1)
}

func TestPayrollService_DownloadPayslip_WithoutOutbox(t *testing.T) {
	st := store.NewSeeded()
	svc := payroll.NewService(nil, payroll.NewRepository(st), nil)

	file, err := svc.DownloadPayslip(context.Background(), hr, "GTBI-006", "2023-10")
	require.NoError(t, err)
	assert.NotEmpty(t, file.Content)
	assert.Empty(t, st.RecentOutbox(1))
}

func TestPayrollService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := payrollMock.NewMockRepository(ctrl)
	svc := payroll.NewService(nil, repo, nil)

	boom := errors.New("boom")
	repo.EXPECT().FindEmployees(ctx).Return(nil, boom)
	_, err := svc.GetAll(ctx, hr, payroll.Filter{})
	assert.ErrorIs(t, err, boom)

	repo.EXPECT().FindEmployee(ctx, "GTBI-002").Return(nil, boom)
	_, err = svc.GetPayslip(ctx, staff, "GTBI-002", "2023-10")
	assert.ErrorIs(t, err, boom)
}
