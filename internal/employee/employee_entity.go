package employee

import (
	"strings"

	"gtb-hrms/internal/domain"
)

const (
	DefaultSalary = 450000
	idPrefix      = "GTBI"
	dateLayout    = "2006-01-02"
)

// Filter composes independently; empty fields match everything.
type Filter struct {
	Department string
	Status     string
	Query      string
}

func (f Filter) Matches(e domain.Employee) bool {
	if f.Department != "" && !strings.EqualFold(f.Department, "All") && e.Department != f.Department {
		return false
	}
	if f.Status != "" && !strings.EqualFold(f.Status, "All") && string(e.Status) != f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range []string{e.Name, e.ID, string(e.Role), e.Department} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
