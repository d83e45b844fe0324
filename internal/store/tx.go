package store

import (
	"gtb-hrms/internal/domain"
)

// Tx stages writes while holding the store's write lock. Nothing staged is
// visible to other readers until Commit; Rollback discards everything.
type Tx struct {
	s    *Store
	done bool

	employees    map[string]domain.Employee
	newEmployees []string
	leaves       map[string]domain.LeaveRequest
	newLeaves    []string
	outbox       []domain.OutboxEvent
	outboxUpdate map[string]domain.OutboxEvent
}

func (tx *Tx) Employee(id string) (domain.Employee, error) {
	if e, ok := tx.employees[id]; ok {
		return e.Clone(), nil
	}
	return tx.s.employeeUnlocked(id)
}

func (tx *Tx) Employees() []domain.Employee {
	out := tx.s.employeesUnlocked()
	for i, e := range out {
		if staged, ok := tx.employees[e.ID]; ok {
			out[i] = staged.Clone()
		}
	}
	for _, id := range tx.newEmployees {
		out = append(out, tx.employees[id].Clone())
	}
	return out
}

// PutEmployee stages an insert or an update.
func (tx *Tx) PutEmployee(e domain.Employee) {
	if _, staged := tx.employees[e.ID]; !staged {
		if _, exists := tx.s.employeeIndex[e.ID]; !exists {
			tx.newEmployees = append(tx.newEmployees, e.ID)
		}
	}
	tx.employees[e.ID] = e.Clone()
}

func (tx *Tx) LeaveRequest(id string) (domain.LeaveRequest, error) {
	if l, ok := tx.leaves[id]; ok {
		return l, nil
	}
	return tx.s.leaveUnlocked(id)
}

func (tx *Tx) LeaveRequests() []domain.LeaveRequest {
	out := make([]domain.LeaveRequest, 0, len(tx.newLeaves)+len(tx.s.leaves))
	for i := len(tx.newLeaves) - 1; i >= 0; i-- {
		out = append(out, tx.leaves[tx.newLeaves[i]])
	}
	for _, l := range tx.s.leaves {
		if staged, ok := tx.leaves[l.ID]; ok {
			l = staged
		}
		out = append(out, l)
	}
	return out
}

func (tx *Tx) PutLeaveRequest(l domain.LeaveRequest) {
	if _, staged := tx.leaves[l.ID]; !staged {
		if _, exists := tx.s.leaveIndex[l.ID]; !exists {
			tx.newLeaves = append(tx.newLeaves, l.ID)
		}
	}
	tx.leaves[l.ID] = l
}

func (tx *Tx) Attendance() []domain.AttendanceRecord {
	out := make([]domain.AttendanceRecord, len(tx.s.attendance))
	copy(out, tx.s.attendance)
	return out
}

func (tx *Tx) AppendOutbox(e domain.OutboxEvent) {
	tx.outbox = append(tx.outbox, e)
}

func (tx *Tx) OutboxEvent(id string) (domain.OutboxEvent, error) {
	if e, ok := tx.outboxUpdate[id]; ok {
		return e, nil
	}
	for _, e := range tx.outbox {
		if e.ID == id {
			return e, nil
		}
	}
	i, ok := tx.s.outboxIndex[id]
	if !ok {
		return domain.OutboxEvent{}, ErrNotFound
	}
	return tx.s.outbox[i], nil
}

// UpdateOutbox stages a change to an already committed event.
func (tx *Tx) UpdateOutbox(e domain.OutboxEvent) error {
	if _, ok := tx.s.outboxIndex[e.ID]; !ok {
		return ErrNotFound
	}
	tx.outboxUpdate[e.ID] = e
	return nil
}

func (tx *Tx) Commit() error {
	if tx.done {
		return ErrTxDone
	}
	s := tx.s

	for id, e := range tx.employees {
		if i, ok := s.employeeIndex[id]; ok {
			s.employees[i] = e
		}
	}
	for _, id := range tx.newEmployees {
		s.employeeIndex[id] = len(s.employees)
		s.employees = append(s.employees, tx.employees[id])
	}

	for id, l := range tx.leaves {
		if i, ok := s.leaveIndex[id]; ok {
			s.leaves[i] = l
		}
	}
	if len(tx.newLeaves) > 0 {
		fresh := make([]domain.LeaveRequest, 0, len(tx.newLeaves)+len(s.leaves))
		for i := len(tx.newLeaves) - 1; i >= 0; i-- {
			fresh = append(fresh, tx.leaves[tx.newLeaves[i]])
		}
		s.leaves = append(fresh, s.leaves...)
		s.reindexLeaves()
	}

	for id, e := range tx.outboxUpdate {
		s.outbox[s.outboxIndex[id]] = e
	}
	for _, e := range tx.outbox {
		s.outboxIndex[e.ID] = len(s.outbox)
		s.outbox = append(s.outbox, e)
	}

	tx.done = true
	s.mu.Unlock()
	return nil
}

// Rollback is a no-op after Commit, so it is safe to defer.
func (tx *Tx) Rollback() error {
	if tx.done {
		return ErrTxDone
	}
	tx.done = true
	tx.s.mu.Unlock()
	return nil
}
