package dashboard

import (
	"context"
	"fmt"
	"time"

	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/messaging/kafka"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const recentActivityLimit = 5

type Service interface {
	Summary(ctx context.Context) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	group  singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, outbox: outbox, now: time.Now, logger: l}
}

// Summary collapses concurrent callers into a single computation. The
// shared run is detached from any one caller's cancellation.
func (s *service) Summary(ctx context.Context) (SummaryResponse, error) {
	v, err, shared := s.group.Do("summary", func() (any, error) {
		return s.compute(context.WithoutCancel(ctx))
	})
	if err != nil {
		return SummaryResponse{}, err
	}
	if shared {
		s.logger.Debug("dashboard summary shared")
	}
	return v.(SummaryResponse), nil
}

func (s *service) compute(ctx context.Context) (SummaryResponse, error) {
	var (
		res       SummaryResponse
		now       = s.now().UTC()
		qStart    = quarterStart(now)
		headcount []HeadcountResponse
		activity  []ActivityResponse
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		empls, err := s.repo.FindEmployees(gctx)
		if err != nil {
			return err
		}
		res.TotalEmployees = len(empls)
		for _, e := range empls {
			if e.Status == domain.EmployeeStatusOnLeave {
				res.OnLeave++
			}
			if !e.JoiningDate.Before(qStart) && !e.JoiningDate.After(now) {
				res.NewHires++
			}
		}
		headcount = countByDepartment(empls)
		return nil
	})

	var pending int
	g.Go(func() error {
		leaves, err := s.repo.FindLeaveRequests(gctx)
		if err != nil {
			return err
		}
		for _, l := range leaves {
			if l.Status == domain.LeaveStatusPending {
				pending++
			}
		}
		return nil
	})

	g.Go(func() error {
		if s.outbox == nil {
			activity = []ActivityResponse{}
			return nil
		}
		events, err := s.outbox.ListRecent(gctx, recentActivityLimit)
		if err != nil {
			return err
		}
		activity = make([]ActivityResponse, 0, len(events))
		for _, e := range events {
			activity = append(activity, ActivityResponse{
				ID:         e.ID,
				Type:       e.EventType,
				Message:    e.Message,
				OccurredAt: e.CreatedAt.Format(time.RFC3339),
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard summary failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	res.PendingRequests = pending
	res.Quarter = quarterLabel(now)
	res.Headcount = headcount
	res.RecentActivity = activity
	return res, nil
}

// countByDepartment follows the catalogue order; departments outside the
// catalogue are appended in the order they are first seen.
func countByDepartment(empls []domain.Employee) []HeadcountResponse {
	counts := make(map[string]int, len(domain.Departments))
	var extra []string
	for _, e := range empls {
		if _, seen := counts[e.Department]; !seen && !domain.IsDepartment(e.Department) {
			extra = append(extra, e.Department)
		}
		counts[e.Department]++
	}

	out := make([]HeadcountResponse, 0, len(domain.Departments)+len(extra))
	for _, d := range append(append([]string{}, domain.Departments...), extra...) {
		out = append(out, HeadcountResponse{Department: d, Count: counts[d]})
	}
	return out
}

func quarterStart(t time.Time) time.Time {
	m := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), m, 1, 0, 0, 0, 0, time.UTC)
}

func quarterLabel(t time.Time) string {
	return fmt.Sprintf("Q%d %d", (int(t.Month())-1)/3+1, t.Year())
}
