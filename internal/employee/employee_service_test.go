package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/employee"
	employeeerrors "gtb-hrms/internal/employee/errors"
	employeeMock "gtb-hrms/internal/employee/mock"
	"gtb-hrms/internal/messaging/kafka"
	"gtb-hrms/internal/shared/counter"
	counterMock "gtb-hrms/internal/shared/counter/mock"
	"gtb-hrms/internal/store"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	hr       = domain.Actor{ID: "GTBI-005", Role: domain.RoleHRManager}
	staff    = domain.Actor{ID: "GTBI-002", Role: domain.RoleEmployee}
	intern   = domain.Actor{ID: "GTBI-007", Role: domain.RoleIntern}
	tenLakhs = int64(1000000)
)

type serviceDeps struct {
	st        *store.Store
	service   employee.Service
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	st := store.NewSeeded()
	dbRedis, redisMock := redismock.NewClientMock()

	svc := employee.NewServiceWithOutbox(
		st,
		employee.NewRepository(st),
		counter.NewRepository(st),
		kafka.NewOutboxRepository(st),
		dbRedis,
	)

	return &serviceDeps{st: st, service: svc, redismock: redisMock}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       "Kavya Iyer",
		Email:      "kavya.i@gtb.co.in",
		Role:       "Employee",
		Department: "Legal",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - defaults applied", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, hr, validCreateRequest())
		require.NoError(t, err)

		assert.Equal(t, "GTBI-008", resp.ID)
		assert.Equal(t, "Active", resp.Status)
		assert.Equal(t, "https://picsum.photos/seed/8/100", resp.Avatar)
		require.NotNil(t, resp.Salary)
		assert.Equal(t, int64(employee.DefaultSalary), *resp.Salary)
		assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.JoiningDate)
		assert.Equal(t, map[string]int{"Casual Leave": 7, "Sick Leave": 10, "Earned Leave": 0}, resp.LeaveBalance)

		stored, err := deps.st.Employee("GTBI-008")
		require.NoError(t, err)
		assert.Equal(t, "Kavya Iyer", stored.Name)

		recent := deps.st.RecentOutbox(1)
		require.Len(t, recent, 1)
		assert.Equal(t, "employee_created", recent[0].EventType)
		assert.Equal(t, "New employee Kavya Iyer joined Legal", recent[0].Message)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("success - explicit salary and joining date", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		req := validCreateRequest()
		req.Salary = &tenLakhs
		req.JoiningDate = "2024-01-15"
		resp, err := deps.service.Create(ctx, hr, req)
		require.NoError(t, err)
		assert.Equal(t, tenLakhs, *resp.Salary)
		assert.Equal(t, "2024-01-15", resp.JoiningDate)
	})

	validationCases := []struct {
		name   string
		mutate func(r *employee.CreateEmployeeRequest)
		want   error
	}{
		{"blank name", func(r *employee.CreateEmployeeRequest) { r.Name = "  " }, employeeerrors.ErrMissingRequiredFields},
		{"invalid email", func(r *employee.CreateEmployeeRequest) { r.Email = "kavya@gtb" }, employeeerrors.ErrInvalidEmail},
		{"invalid role", func(r *employee.CreateEmployeeRequest) { r.Role = "Director" }, employeeerrors.ErrInvalidRole},
		{"invalid department", func(r *employee.CreateEmployeeRequest) { r.Department = "Sales" }, employeeerrors.ErrInvalidDepartment},
		{"invalid joining date", func(r *employee.CreateEmployeeRequest) { r.JoiningDate = "15/01/2024" }, employeeerrors.ErrInvalidJoiningDate},
		{"duplicate email", func(r *employee.CreateEmployeeRequest) { r.Email = "PRIYA.S@gtb.co.in" }, employeeerrors.ErrEmployeeAlreadyExists},
	}
	for _, tc := range validationCases {
		t.Run("negative - "+tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			req := validCreateRequest()
			tc.mutate(&req)

			_, err := deps.service.Create(ctx, hr, req)
			assert.ErrorIs(t, err, tc.want)
			assert.Len(t, deps.st.Employees(), 7)
			assert.Empty(t, deps.st.RecentOutbox(1))
		})
	}

	t.Run("negative - forbidden for employee role", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, staff, validCreateRequest())
		assert.ErrorIs(t, err, employeeerrors.ErrForbidden)
	})

	t.Run("negative - counter error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := store.NewSeeded()
		counterRepo := counterMock.NewMockRepository(ctrl)
		svc := employee.NewService(st, employee.NewRepository(st), counterRepo, nil)

		counterRepo.EXPECT().WithTx(gomock.Any()).Return(counterRepo)
		counterRepo.EXPECT().
			GetNextValue(gomock.Any(), counter.TypeEmployee).
			Return(int64(0), errors.New("counter down"))

		_, err := svc.Create(ctx, hr, validCreateRequest())
		assert.EqualError(t, err, "counter down")
		assert.Len(t, st.Employees(), 7)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	t.Run("insertion order and salary visible for HR", func(t *testing.T) {
		resp, err := deps.service.GetAll(ctx, hr, employee.Filter{})
		require.NoError(t, err)
		require.Len(t, resp, 7)
		assert.Equal(t, "GTBI-001", resp[0].ID)
		assert.Equal(t, "GTBI-007", resp[6].ID)
		assert.NotNil(t, resp[0].Salary)
	})

	t.Run("salary redacted except own record", func(t *testing.T) {
		resp, err := deps.service.GetAll(ctx, staff, employee.Filter{})
		require.NoError(t, err)
		for _, e := range resp {
			if e.ID == staff.ID {
				assert.NotNil(t, e.Salary)
			} else {
				assert.Nil(t, e.Salary, e.ID)
			}
		}
	})

	t.Run("filters compose", func(t *testing.T) {
		resp, err := deps.service.GetAll(ctx, hr, employee.Filter{Department: "Technology"})
		require.NoError(t, err)
		assert.Len(t, resp, 2)

		resp, err = deps.service.GetAll(ctx, hr, employee.Filter{Department: "Technology", Status: "On Leave"})
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "GTBI-003", resp[0].ID)

		resp, err = deps.service.GetAll(ctx, hr, employee.Filter{Query: "MANAGER"})
		require.NoError(t, err)
		assert.Len(t, resp, 3) // two managers and the HR manager

		resp, err = deps.service.GetAll(ctx, hr, employee.Filter{Query: "gtbi-00", Department: "All", Status: "All"})
		require.NoError(t, err)
		assert.Len(t, resp, 7)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(store.New(), repo, nil, nil)

		repo.EXPECT().FindAll(ctx).Return(nil, context.Canceled)
		_, err := svc.GetAll(ctx, hr, employee.Filter{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	resp, err := deps.service.GetByID(ctx, intern, "GTBI-007")
	require.NoError(t, err)
	assert.Equal(t, "Aisha Khan", resp.Name)
	assert.Equal(t, int64(240000), *resp.Salary)

	resp, err = deps.service.GetByID(ctx, intern, "GTBI-001")
	require.NoError(t, err)
	assert.Nil(t, resp.Salary)

	_, err = deps.service.GetByID(ctx, hr, "GTBI-404")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps balances", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(0)

		resp, err := deps.service.Update(ctx, hr, "GTBI-006", employee.UpdateEmployeeRequest{
			Name:       "Amit Patel",
			Email:      "amit.p@gtb.co.in",
			Role:       "Manager",
			Department: "Finance",
			Salary:     &tenLakhs,
		})
		require.NoError(t, err)
		assert.Equal(t, "Manager", resp.Role)
		assert.Equal(t, "Finance", resp.Department)
		assert.Equal(t, "2023-02-28", resp.JoiningDate)
		assert.Equal(t, 6, resp.LeaveBalance["Casual Leave"])

		assert.Equal(t, "employee_updated", deps.st.RecentOutbox(1)[0].EventType)
	})

	t.Run("success keeps status", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(0)

		resp, err := deps.service.Update(ctx, hr, "GTBI-003", employee.UpdateEmployeeRequest{
			Name:       "Anjali Mehta",
			Email:      "anjali.m@gtb.co.in",
			Role:       "Employee",
			Department: "Technology",
		})
		require.NoError(t, err)
		assert.Equal(t, "On Leave", resp.Status)
	})

	t.Run("negative - email lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := store.NewSeeded()
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(st, repo, nil, nil)

		existing := domain.Employee{ID: "GTBI-006", Email: "amit.p@gtb.co.in"}
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindByID(ctx, "GTBI-006").Return(&existing, nil)
		repo.EXPECT().FindByEmail(ctx, "amit.p@gtb.co.in").Return(nil, context.DeadlineExceeded)

		_, err := svc.Update(ctx, hr, "GTBI-006", employee.UpdateEmployeeRequest{
			Name: "Amit Patel", Email: "amit.p@gtb.co.in", Role: "Employee", Department: "Operations",
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("negative - not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Update(ctx, hr, "GTBI-404", employee.UpdateEmployeeRequest{
			Name: "X", Email: "x@gtb.co.in", Role: "Employee", Department: "HR",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("negative - email taken by someone else", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Update(ctx, hr, "GTBI-006", employee.UpdateEmployeeRequest{
			Name: "Amit Patel", Email: "rohan.k@gtb.co.in", Role: "Employee", Department: "Operations",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("negative - manager cannot edit", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Update(ctx, domain.Actor{ID: "GTBI-001", Role: domain.RoleManager}, "GTBI-006",
			employee.UpdateEmployeeRequest{Name: "A", Email: "a@b.co", Role: "Employee", Department: "HR"})
		assert.ErrorIs(t, err, employeeerrors.ErrForbidden)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached, _ := json.Marshal([]employee.EmployeeOptionResponse{{ID: "GTBI-001", Name: "Priya Sharma"}})
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(cached))

		resp, err := deps.service.GetOptions(ctx)
		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("cache miss loads store and caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.redismock.Regexp().ExpectSet(employee.EmployeeOptionsKey, `.*`, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)
		require.NoError(t, err)
		require.Len(t, resp, 7)
		assert.Equal(t, "Aisha Khan", resp[6].Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("without redis", func(t *testing.T) {
		st := store.NewSeeded()
		svc := employee.NewService(st, employee.NewRepository(st), counter.NewRepository(st), nil)
		resp, err := svc.GetOptions(ctx)
		require.NoError(t, err)
		assert.Len(t, resp, 7)
	})
}
