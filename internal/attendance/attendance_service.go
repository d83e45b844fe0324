package attendance

import (
	"context"

	"gtb-hrms/internal/domain"

	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l}
}

// GetAll returns the log in recorded order, joined with the directory.
// Records of employees that are no longer in the directory are skipped.
func (s *service) GetAll(ctx context.Context, filter Filter) ([]AttendanceResponse, error) {
	c, err := filter.parse()
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, err
	}
	empls, err := s.repo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Employee, len(empls))
	for _, e := range empls {
		byID[e.ID] = e
	}

	res := make([]AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		if !c.matches(r) {
			continue
		}
		e, ok := byID[r.EmployeeID]
		if !ok {
			s.logger.Debug("attendance record without employee skipped", zap.String("employee_id", r.EmployeeID))
			continue
		}
		res = append(res, mapToResponse(r, e))
	}
	return res, nil
}

func mapToResponse(r domain.AttendanceRecord, e domain.Employee) AttendanceResponse {
	return AttendanceResponse{
		EmployeeID:     r.EmployeeID,
		EmployeeName:   e.Name,
		EmployeeAvatar: e.Avatar,
		Department:     e.Department,
		Date:           r.Date.Format(dateLayout),
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		Status:         string(r.Status),
	}
}
