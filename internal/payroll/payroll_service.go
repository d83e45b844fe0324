package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/messaging/kafka"
	payrollerrors "gtb-hrms/internal/payroll/errors"
	"gtb-hrms/internal/rbac"
	"gtb-hrms/internal/shared/contextutil"
	"gtb-hrms/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]PayrollResponse, error)
	GetPayslip(ctx context.Context, actor domain.Actor, employeeID, period string) (PayslipResponse, error)
	DownloadPayslip(ctx context.Context, actor domain.Actor, employeeID, period string) (PayslipFile, error)
}

type service struct {
	st     *store.Store
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

// NewService wires payroll. st and outbox may be nil, in which case payslip
// downloads are not recorded in the activity feed.
func NewService(st *store.Store, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{st: st, repo: repo, outbox: outbox, now: time.Now, logger: l}
}

// GetAll returns every row for payroll.view_all and only the caller's own row
// otherwise.
func (s *service) GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]PayrollResponse, error) {
	if !rbac.CanPerform(actor.Role, rbac.ViewAllPayroll) {
		empl, err := s.repo.FindEmployee(ctx, actor.ID)
		if errors.Is(err, store.ErrNotFound) {
			return []PayrollResponse{}, nil
		}
		if err != nil {
			return nil, err
		}
		if !filter.Matches(*empl) {
			return []PayrollResponse{}, nil
		}
		return []PayrollResponse{mapToResponse(*empl)}, nil
	}

	empls, err := s.repo.FindEmployees(ctx)
	if err != nil {
		s.logger.Error("get all payroll failed", zap.Error(err))
		return nil, err
	}
	res := make([]PayrollResponse, 0, len(empls))
	for _, e := range empls {
		if filter.Matches(e) {
			res = append(res, mapToResponse(e))
		}
	}
	return res, nil
}

func (s *service) GetPayslip(ctx context.Context, actor domain.Actor, employeeID, period string) (PayslipResponse, error) {
	if employeeID != actor.ID && !rbac.CanPerform(actor.Role, rbac.ViewAllPayroll) {
		s.logger.Warn("payslip access denied",
			zap.String("actor_id", actor.ID),
			zap.String("employee_id", employeeID),
		)
		return PayslipResponse{}, payrollerrors.ErrPayslipForbidden
	}

	month, err := parsePeriod(period, s.now().UTC())
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidPeriodFormat
	}

	empl, err := s.repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PayslipResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayslipResponse{}, err
	}
	return buildPayslip(*empl, month), nil
}

// DownloadPayslip renders the payslip as PDF and records the download.
func (s *service) DownloadPayslip(ctx context.Context, actor domain.Actor, employeeID, period string) (PayslipFile, error) {
	rid := contextutil.GetRequestID(ctx)

	p, err := s.GetPayslip(ctx, actor, employeeID, period)
	if err != nil {
		return PayslipFile{}, err
	}

	content, err := renderPayslipPDF(p)
	if err != nil {
		s.logger.Error("render payslip failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return PayslipFile{}, payrollerrors.ErrPayslipRender
	}

	if err := s.recordIssued(ctx, rid, actor, p); err != nil {
		// best effort, the file is already rendered
		s.logger.Warn("record payslip issued failed", zap.String("employee_id", employeeID), zap.Error(err))
	}

	s.logger.Info("payslip issued",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("period", p.Period),
		zap.Int("bytes", len(content)),
	)
	return PayslipFile{
		Filename: fmt.Sprintf("payslip-%s-%s.pdf", p.Employee.ID, p.Period),
		Content:  content,
	}, nil
}

func buildPayslip(e domain.Employee, month time.Time) PayslipResponse {
	b := ComputeBreakdown(e.Salary)
	return PayslipResponse{
		Company:     CompanyName,
		Period:      month.Format(periodLayout),
		PeriodLabel: month.Format("January 2006"),
		Employee: PayslipEmployeeResponse{
			ID:          e.ID,
			Name:        e.Name,
			Role:        string(e.Role),
			Department:  e.Department,
			JoiningDate: e.JoiningDate.Format(time.DateOnly),
		},
		MonthlyGross: money(b.MonthlyGross),
		Earnings: []PayslipLineResponse{
			{Label: "Basic Salary", MoneyResponse: money(b.Basic)},
			{Label: "House Rent Allowance (HRA)", MoneyResponse: money(b.HRA)},
			{Label: "Special Allowance", MoneyResponse: money(b.SpecialAllowance)},
		},
		TotalEarnings: money(b.TotalEarnings),
		Deductions: []PayslipLineResponse{
			{Label: "Provident Fund (PF)", MoneyResponse: money(b.ProvidentFund)},
			{Label: "Professional Tax", MoneyResponse: money(b.ProfessionalTax)},
		},
		TotalDeductions: money(b.TotalDeductions),
		NetSalary:       money(b.NetSalary),
	}
}

func money(d decimal.Decimal) MoneyResponse {
	return MoneyResponse{Amount: d.StringFixed(2), Display: FormatINR(d, 2)}
}

func mapToResponse(e domain.Employee) PayrollResponse {
	annual := decimal.NewFromInt(e.Salary)
	gross := ComputeBreakdown(e.Salary).MonthlyGross
	return PayrollResponse{
		EmployeeID:          e.ID,
		Name:                e.Name,
		Avatar:              e.Avatar,
		Department:          e.Department,
		Role:                string(e.Role),
		AnnualSalary:        e.Salary,
		AnnualSalaryDisplay: FormatINR(annual, 0),
		MonthlyGross:        gross.StringFixed(2),
		MonthlyGrossDisplay: FormatINR(gross, 0),
	}
}
