package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gtb-hrms/internal/domain"
	leaveerrors "gtb-hrms/internal/leave/errors"
	"gtb-hrms/internal/messaging/kafka"
	"gtb-hrms/internal/rbac"
	"gtb-hrms/internal/shared/contextutil"
	"gtb-hrms/internal/shared/counter"
	"gtb-hrms/internal/store"

	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.LeaveStatus) (LeaveResponse, error)
	Balances(ctx context.Context, actor domain.Actor) ([]BalanceResponse, error)
	ComputeDays(start, end string) (DaysResponse, error)
}

type service struct {
	st      *store.Store
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(st *store.Store, repo Repository, counter counter.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{st: st, repo: repo, counter: counter, outbox: outbox, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actor.ID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeID, leaveType, startDate, endDate, days, err := validateCreateRequest(actor, req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.st.Begin(ctx)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Warn("create leave employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err, leaveerrors.ErrEmployeeNotFound)
	}

	existing, err := qtx.FindAll(ctx)
	if err != nil {
		return LeaveResponse{}, err
	}
	for _, l := range existing {
		if l.EmployeeID != employeeID || l.Status == domain.LeaveStatusRejected {
			continue
		}
		if overlaps(startDate, endDate, l.StartDate, l.EndDate) {
			s.logger.Warn("create leave overlap detected",
				zap.String("employee_id", employeeID),
				zap.String("existing_leave_id", l.ID),
			)
			return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
		}
	}

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeLeaveRequest)
	if err != nil {
		s.logger.Error("create leave generate id failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l := domain.LeaveRequest{
		ID:         counter.Format(idPrefix, seq),
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     domain.LeaveStatusPending,
		CreatedAt:  s.now().UTC(),
	}

	if err := qtx.Create(ctx, &l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.recordRequested(ctx, tx, rid, *empl, l); err != nil {
		s.logger.Error("create leave outbox persist failed", zap.String("leave_id", l.ID), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID),
		zap.String("employee_id", employeeID),
		zap.Int("days", days),
	)

	return mapToResponse(l, empl), nil
}

// GetAll lists newest first. Callers without leave.manage only see their own
// requests whatever the filter says.
func (s *service) GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]LeaveResponse, error) {
	status, err := filter.status()
	if err != nil {
		return nil, err
	}
	if !rbac.CanPerform(actor.Role, rbac.ManageLeave) {
		filter.EmployeeID = actor.ID
	}

	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}
	directory, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		if filter.EmployeeID != "" && l.EmployeeID != filter.EmployeeID {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		res = append(res, mapToResponse(l, directory[l.EmployeeID]))
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveNotFound)
	}
	if !rbac.CanPerform(actor.Role, rbac.ManageLeave) && l.EmployeeID != actor.ID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	empl, err := s.repo.FindEmployee(ctx, l.EmployeeID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l, empl), nil
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	return s.SetStatus(ctx, actor, id, domain.LeaveStatusApproved)
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	return s.SetStatus(ctx, actor, id, domain.LeaveStatusRejected)
}

// SetStatus decides a pending request. For approval the balance is checked
// before anything is written, so a refused approval leaves both the request
// and the balance untouched.
func (s *service) SetStatus(ctx context.Context, actor domain.Actor, id string, status domain.LeaveStatus) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("transition leave status requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actor.ID),
		zap.String("target_status", string(status)),
	)

	if !rbac.CanPerform(actor.Role, rbac.ManageLeave) {
		return LeaveResponse{}, leaveerrors.ErrManageForbidden
	}
	if status != domain.LeaveStatusApproved && status != domain.LeaveStatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}

	tx, err := s.st.Begin(ctx)
	if err != nil {
		s.logger.Error("transition leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("transition leave status lookup failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err, leaveerrors.ErrLeaveNotFound)
	}
	if !isAllowedStatusTransition(l.Status, status) {
		s.logger.Warn("transition leave status invalid",
			zap.String("leave_id", id),
			zap.String("from_status", string(l.Status)),
			zap.String("to_status", string(status)),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	empl, err := qtx.FindEmployee(ctx, l.EmployeeID)
	if err != nil {
		s.logger.Error("transition leave status employee lookup failed",
			zap.String("leave_id", id),
			zap.String("employee_id", l.EmployeeID),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err, leaveerrors.ErrEmployeeNotFound)
	}

	if status == domain.LeaveStatusApproved {
		balance := empl.LeaveBalance[l.LeaveType]
		if balance < l.Days {
			s.logger.Warn("transition leave status insufficient balance",
				zap.String("leave_id", id),
				zap.String("employee_id", empl.ID),
				zap.String("leave_type", string(l.LeaveType)),
				zap.Int("balance", balance),
				zap.Int("days", l.Days),
			)
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance.WithMessage(
				fmt.Sprintf("Insufficient balance for %s for %s. Approval failed.", empl.Name, l.LeaveType),
			)
		}
		empl.LeaveBalance[l.LeaveType] = balance - l.Days
		if err := qtx.UpdateEmployee(ctx, empl); err != nil {
			s.logger.Error("transition leave status balance persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	decidedAt := s.now().UTC()
	l.Status = status
	l.DecidedBy = actor.ID
	l.DecidedAt = &decidedAt

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("transition leave status persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", string(status)),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := s.recordStatusChanged(ctx, tx, rid, actor, *empl, *l); err != nil {
		s.logger.Error("transition leave status outbox persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave status commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("transition leave status success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", string(status)),
		zap.Int("remaining_balance", empl.LeaveBalance[l.LeaveType]),
	)
	return mapToResponse(*l, empl), nil
}

func (s *service) Balances(ctx context.Context, actor domain.Actor) ([]BalanceResponse, error) {
	if !rbac.CanPerform(actor.Role, rbac.ManageLeave) {
		empl, err := s.repo.FindEmployee(ctx, actor.ID)
		if err != nil {
			return nil, mapRepositoryError(err, leaveerrors.ErrEmployeeNotFound)
		}
		return []BalanceResponse{mapToBalance(*empl)}, nil
	}

	empls, err := s.repo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]BalanceResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToBalance(e)
	}
	return res, nil
}

func (s *service) ComputeDays(start, end string) (DaysResponse, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return DaysResponse{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return DaysResponse{}, err
	}
	days, err := ComputeDays(startDate, endDate)
	if err != nil {
		return DaysResponse{}, err
	}
	return DaysResponse{
		StartDate: startDate.Format(dateLayout),
		EndDate:   endDate.Format(dateLayout),
		Days:      days,
	}, nil
}

func (s *service) directory(ctx context.Context) (map[string]*domain.Employee, error) {
	empls, err := s.repo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*domain.Employee, len(empls))
	for i := range empls {
		out[empls[i].ID] = &empls[i]
	}
	return out, nil
}

// validateCreateRequest runs before the store is touched. Without
// leave.manage the request is always for the caller.
func validateCreateRequest(actor domain.Actor, req CreateLeaveRequest) (string, domain.LeaveType, time.Time, time.Time, int, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		employeeID = actor.ID
	}
	if employeeID != actor.ID && !rbac.CanPerform(actor.Role, rbac.ManageLeave) {
		return "", "", time.Time{}, time.Time{}, 0, leaveerrors.ErrRequestForOthers
	}

	if req.LeaveType == "" || strings.TrimSpace(req.StartDate) == "" ||
		strings.TrimSpace(req.EndDate) == "" || strings.TrimSpace(req.Reason) == "" {
		return "", "", time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidRequest
	}
	leaveType := domain.LeaveType(req.LeaveType)
	if !leaveType.Valid() {
		return "", "", time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidLeaveType
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return "", "", time.Time{}, time.Time{}, 0, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return "", "", time.Time{}, time.Time{}, 0, err
	}
	days, err := ComputeDays(startDate, endDate)
	if err != nil {
		return "", "", time.Time{}, time.Time{}, 0, err
	}
	return employeeID, leaveType, startDate, endDate, days, nil
}

func mapRepositoryError(err, notFound error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return err
}

func mapToResponse(l domain.LeaveRequest, empl *domain.Employee) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  string(l.LeaveType),
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Days:       l.Days,
		Reason:     l.Reason,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
	if empl != nil {
		resp.EmployeeName = empl.Name
		resp.EmployeeAvatar = empl.Avatar
	}
	if l.DecidedBy != "" {
		v := l.DecidedBy
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToBalance(e domain.Employee) BalanceResponse {
	b := BalanceResponse{
		EmployeeID:   e.ID,
		EmployeeName: e.Name,
		Balances:     make(map[string]int, len(domain.LeaveTypes)),
	}
	for _, t := range domain.LeaveTypes {
		b.Balances[string(t)] = e.LeaveBalance[t]
	}
	return b
}
