package leave

import (
	"strings"
	"time"

	"gtb-hrms/internal/domain"
	leaveerrors "gtb-hrms/internal/leave/errors"
)

const (
	dateLayout = "2006-01-02"
	idPrefix   = "LR"

	secondsPerDay = 24 * 60 * 60
)

// Filter scopes a listing. An empty Status or "All" matches every status.
type Filter struct {
	Status     string
	EmployeeID string
}

func (f Filter) status() (domain.LeaveStatus, error) {
	if f.Status == "" || strings.EqualFold(f.Status, "All") {
		return "", nil
	}
	st := domain.LeaveStatus(f.Status)
	if !st.Valid() {
		return "", leaveerrors.ErrInvalidStatusFilter
	}
	return st, nil
}

// ComputeDays returns the inclusive span ceil((end-start)/24h)+1.
func ComputeDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, leaveerrors.ErrInvalidDateRange
	}
	// time.Duration jenuh di sekitar 292 tahun, jadi hitung dari detik Unix
	secs := end.Unix() - start.Unix()
	q, r := secs/secondsPerDay, secs%secondsPerDay
	if r > 0 || (r == 0 && end.Nanosecond() > start.Nanosecond()) {
		q++
	}
	return int(q) + 1, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// Pending is the only state that can move; decided requests are terminal.
func isAllowedStatusTransition(current, target domain.LeaveStatus) bool {
	if current != domain.LeaveStatusPending {
		return false
	}
	return target == domain.LeaveStatusApproved || target == domain.LeaveStatusRejected
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}
