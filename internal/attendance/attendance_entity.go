package attendance

import (
	"strings"
	"time"

	attendanceerrors "gtb-hrms/internal/attendance/errors"
	"gtb-hrms/internal/domain"
)

const dateLayout = "2006-01-02"

// Filter narrows the log. Empty fields (or "All" for status) match everything.
type Filter struct {
	Date       string
	Status     string
	EmployeeID string
}

type criteria struct {
	date       time.Time
	hasDate    bool
	status     domain.AttendanceStatus
	employeeID string
}

func (f Filter) parse() (criteria, error) {
	var c criteria
	if d := strings.TrimSpace(f.Date); d != "" {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			return criteria{}, attendanceerrors.ErrInvalidDate
		}
		c.date, c.hasDate = t, true
	}
	if s := strings.TrimSpace(f.Status); s != "" && !strings.EqualFold(s, "All") {
		st := domain.AttendanceStatus(s)
		switch st {
		case domain.AttendancePresent, domain.AttendanceLate, domain.AttendanceAbsent:
			c.status = st
		default:
			return criteria{}, attendanceerrors.ErrInvalidStatus
		}
	}
	c.employeeID = strings.TrimSpace(f.EmployeeID)
	return c, nil
}

func (c criteria) matches(r domain.AttendanceRecord) bool {
	if c.hasDate && !r.Date.Equal(c.date) {
		return false
	}
	if c.status != "" && r.Status != c.status {
		return false
	}
	if c.employeeID != "" && r.EmployeeID != c.employeeID {
		return false
	}
	return true
}
