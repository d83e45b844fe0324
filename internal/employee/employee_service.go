package employee

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"gtb-hrms/internal/domain"
	employeeerrors "gtb-hrms/internal/employee/errors"
	"gtb-hrms/internal/messaging/kafka"
	"gtb-hrms/internal/rbac"
	"gtb-hrms/internal/shared/contextutil"
	"gtb-hrms/internal/shared/counter"
	"gtb-hrms/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (EmployeeResponse, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	st      *store.Store
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     redis.Cmdable
	sf      *singleflight.Group
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(st *store.Store, repo Repository, counter counter.Repository, rdb redis.Cmdable, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(st, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	st *store.Store,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb redis.Cmdable,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		st:      st,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.ID),
		zap.String("department", req.Department),
	)

	if !rbac.CanPerform(actor.Role, rbac.ManageEmployees) {
		return EmployeeResponse{}, employeeerrors.ErrForbidden
	}

	role, joining, err := s.validate(req.Name, req.Email, req.Role, req.Department, req.Salary, req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.st.Begin(ctx)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByEmail(ctx, req.Email); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return EmployeeResponse{}, err
	}

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeEmployee)
	if err != nil {
		s.logger.Error("create employee generate id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	salary := int64(DefaultSalary)
	if req.Salary != nil {
		salary = *req.Salary
	}

	empl := domain.Employee{
		ID:           counter.Format(idPrefix, seq),
		Name:         strings.TrimSpace(req.Name),
		Avatar:       store.AvatarURL(int(seq)),
		Email:        strings.TrimSpace(req.Email),
		Role:         role,
		Department:   req.Department,
		Status:       domain.EmployeeStatusActive,
		Salary:       salary,
		JoiningDate:  joining,
		LeaveBalance: domain.DefaultLeaveBalance(),
	}

	if err := qtx.Create(ctx, &empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.recordCreated(ctx, tx, rid, actor, empl); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)

	return mapToResponse(empl, true), nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("actor_id", actor.ID),
		zap.String("department", filter.Department),
		zap.String("status", filter.Status),
	)
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, 0, len(empls))
	for _, e := range empls {
		if filter.Matches(e) {
			res = append(res, mapToResponse(e, canSeeSalary(actor, e.ID)))
		}
	}
	return res, nil
}

// GetOptions returns the id/name list used by pickers. Cached in Redis when
// available.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight supaya request paralel cuma baca store sekali
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeOptionResponse{ID: e.ID, Name: e.Name, Department: e.Department}
		}

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, time.Hour).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl, canSeeSalary(actor, empl.ID)), nil
}

// Update replaces the editable profile fields. Leave balances are only
// changed by the leave ledger and status is never edited here.
func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if !rbac.CanPerform(actor.Role, rbac.ManageEmployees) {
		return EmployeeResponse{}, employeeerrors.ErrForbidden
	}

	role, joining, err := s.validate(req.Name, req.Email, req.Role, req.Department, req.Salary, req.JoiningDate)
	if err != nil {
		s.logger.Warn("update employee validation failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.st.Begin(ctx)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if other, err := qtx.FindByEmail(ctx, req.Email); err == nil {
		if other.ID != id {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		s.logger.Error("update employee email lookup failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl.Name = strings.TrimSpace(req.Name)
	empl.Email = strings.TrimSpace(req.Email)
	empl.Role = role
	empl.Department = req.Department
	if req.Salary != nil {
		empl.Salary = *req.Salary
	}
	if req.JoiningDate != "" {
		empl.JoiningDate = joining
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.recordUpdated(ctx, tx, rid, actor, *empl); err != nil {
		s.logger.Error("update employee outbox persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl, true), nil
}

func (s *service) validate(name, email, roleName, department string, salary *int64, joiningDate string) (domain.Role, time.Time, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return "", time.Time{}, employeeerrors.ErrMissingRequiredFields
	}
	if !emailPattern.MatchString(email) {
		return "", time.Time{}, employeeerrors.ErrInvalidEmail
	}
	role, err := domain.ParseRole(roleName)
	if err != nil {
		return "", time.Time{}, employeeerrors.ErrInvalidRole
	}
	if !domain.IsDepartment(department) {
		return "", time.Time{}, employeeerrors.ErrInvalidDepartment
	}
	if salary != nil && *salary <= 0 {
		return "", time.Time{}, employeeerrors.ErrInvalidSalary
	}

	now := s.now().UTC()
	joining := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if joiningDate != "" {
		joining, err = time.Parse(dateLayout, joiningDate)
		if err != nil {
			return "", time.Time{}, employeeerrors.ErrInvalidJoiningDate
		}
	}
	return role, joining, nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

// canSeeSalary: payroll.view_all, or the caller's own record.
func canSeeSalary(actor domain.Actor, employeeID string) bool {
	return rbac.CanPerform(actor.Role, rbac.ViewAllPayroll) || actor.ID == employeeID
}

func mapToResponse(e domain.Employee, withSalary bool) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Avatar:       e.Avatar,
		Email:        e.Email,
		Role:         string(e.Role),
		Department:   e.Department,
		Status:       string(e.Status),
		JoiningDate:  e.JoiningDate.Format(dateLayout),
		LeaveBalance: make(map[string]int, len(e.LeaveBalance)),
	}
	if withSalary {
		salary := e.Salary
		resp.Salary = &salary
	}
	for _, t := range domain.LeaveTypes {
		resp.LeaveBalance[string(t)] = e.LeaveBalance[t]
	}
	return resp
}
