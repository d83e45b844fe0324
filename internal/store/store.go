// Package store holds the single in-memory repository that every feature
// reads from and writes to. Writes only go through a Tx.
package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"gtb-hrms/internal/domain"
)

var (
	ErrNotFound = errors.New("store: record not found")
	ErrTxDone   = errors.New("store: transaction has already been committed or rolled back")
)

// Reader is implemented by both *Store and *Tx so repositories can read the
// same way inside and outside a transaction.
type Reader interface {
	Employee(id string) (domain.Employee, error)
	Employees() []domain.Employee
	LeaveRequest(id string) (domain.LeaveRequest, error)
	LeaveRequests() []domain.LeaveRequest
	Attendance() []domain.AttendanceRecord
}

type Store struct {
	mu sync.RWMutex

	employees     []domain.Employee
	employeeIndex map[string]int
	leaves        []domain.LeaveRequest // newest first
	leaveIndex    map[string]int
	attendance    []domain.AttendanceRecord
	outbox        []domain.OutboxEvent
	outboxIndex   map[string]int
}

func New() *Store {
	return &Store{
		employeeIndex: map[string]int{},
		leaveIndex:    map[string]int{},
		outboxIndex:   map[string]int{},
	}
}

func (s *Store) Employee(id string) (domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employeeUnlocked(id)
}

func (s *Store) employeeUnlocked(id string) (domain.Employee, error) {
	i, ok := s.employeeIndex[id]
	if !ok {
		return domain.Employee{}, ErrNotFound
	}
	return s.employees[i].Clone(), nil
}

func (s *Store) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employeesUnlocked()
}

func (s *Store) employeesUnlocked() []domain.Employee {
	out := make([]domain.Employee, len(s.employees))
	for i, e := range s.employees {
		out[i] = e.Clone()
	}
	return out
}

func (s *Store) LeaveRequest(id string) (domain.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leaveUnlocked(id)
}

func (s *Store) leaveUnlocked(id string) (domain.LeaveRequest, error) {
	i, ok := s.leaveIndex[id]
	if !ok {
		return domain.LeaveRequest{}, ErrNotFound
	}
	return s.leaves[i], nil
}

func (s *Store) LeaveRequests() []domain.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.leaves)
}

func (s *Store) Attendance() []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.attendance)
}

// PendingOutbox returns pending or retryable failed events, oldest first.
func (s *Store) PendingOutbox(now time.Time, limit int) []domain.OutboxEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.OutboxEvent, 0, limit)
	for _, e := range s.outbox {
		if len(out) >= limit {
			break
		}
		switch e.Status {
		case domain.OutboxStatusPending:
			out = append(out, e)
		case domain.OutboxStatusFailed:
			if !e.NextRetryAt.After(now) {
				out = append(out, e)
			}
		}
	}
	return out
}

// RecentOutbox returns up to n events, newest first.
func (s *Store) RecentOutbox(n int) []domain.OutboxEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.OutboxEvent, 0, n)
	for i := len(s.outbox) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.outbox[i])
	}
	return out
}

// Begin takes the write lock. The caller must Commit or Rollback.
func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &Tx{
		s:            s,
		employees:    map[string]domain.Employee{},
		leaves:       map[string]domain.LeaveRequest{},
		outboxUpdate: map[string]domain.OutboxEvent{},
	}, nil
}

// load replaces the whole dataset. Used by seeding only.
func (s *Store) load(employees []domain.Employee, leaves []domain.LeaveRequest, attendance []domain.AttendanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees = make([]domain.Employee, 0, len(employees))
	s.employeeIndex = make(map[string]int, len(employees))
	for _, e := range employees {
		s.employeeIndex[e.ID] = len(s.employees)
		s.employees = append(s.employees, e.Clone())
	}

	s.leaves = slices.Clone(leaves)
	s.reindexLeaves()

	s.attendance = slices.Clone(attendance)
}

func (s *Store) reindexLeaves() {
	s.leaveIndex = make(map[string]int, len(s.leaves))
	for i, l := range s.leaves {
		s.leaveIndex[l.ID] = i
	}
}
