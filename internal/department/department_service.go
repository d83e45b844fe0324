package department

import (
	"context"

	departmenterrors "gtb-hrms/internal/department/errors"
	"gtb-hrms/internal/domain"

	"go.uber.org/zap"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByName(ctx context.Context, name string) (DepartmentDetailResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

// GetAll lists every catalogue department, including empty ones, in
// catalogue order.
func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	members, err := s.repo.FindMembers(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, err
	}

	res := make([]DepartmentResponse, 0, len(domain.Departments))
	for _, name := range domain.Departments {
		res = append(res, mapToResponse(summarize(name, members[name])))
	}
	return res, nil
}

func (s *service) GetByName(ctx context.Context, name string) (DepartmentDetailResponse, error) {
	if !domain.IsDepartment(name) {
		return DepartmentDetailResponse{}, departmenterrors.ErrDepartmentNotFound
	}
	members, err := s.repo.FindMembers(ctx)
	if err != nil {
		s.logger.Error("get department failed", zap.String("department", name), zap.Error(err))
		return DepartmentDetailResponse{}, err
	}

	list := members[name]
	resp := DepartmentDetailResponse{
		DepartmentResponse: mapToResponse(summarize(name, list)),
		Members:            make([]DepartmentMemberResponse, len(list)),
	}
	for i, e := range list {
		resp.Members[i] = DepartmentMemberResponse{
			ID:     e.ID,
			Name:   e.Name,
			Role:   string(e.Role),
			Status: string(e.Status),
		}
	}
	return resp, nil
}

func summarize(name string, list []domain.Employee) Department {
	d := Department{Name: name, Headcount: len(list)}
	for _, e := range list {
		if e.Status == domain.EmployeeStatusOnLeave {
			d.OnLeave++
		} else {
			d.Active++
		}
	}
	return d
}

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		Name:      d.Name,
		Headcount: d.Headcount,
		Active:    d.Active,
		OnLeave:   d.OnLeave,
	}
}
