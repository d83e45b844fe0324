package payroll

import (
	"strings"
	"time"

	"gtb-hrms/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	CompanyName  = "Global Trust Bank"
	periodLayout = "2006-01"
)

var (
	monthsPerYear      = decimal.NewFromInt(12)
	basicRate          = decimal.RequireFromString("0.50")
	hraRate            = decimal.RequireFromString("0.20")
	specialRate        = decimal.RequireFromString("0.20")
	providentFundRate  = decimal.RequireFromString("0.12")
	professionalTaxINR = decimal.NewFromInt(200)
)

// Breakdown is one month of pay derived from the annual salary. Amounts keep
// full precision; rounding happens when they are formatted.
type Breakdown struct {
	MonthlyGross     decimal.Decimal
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	SpecialAllowance decimal.Decimal
	TotalEarnings    decimal.Decimal
	ProvidentFund    decimal.Decimal
	ProfessionalTax  decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetSalary        decimal.Decimal
}

func ComputeBreakdown(annualSalary int64) Breakdown {
	gross := decimal.NewFromInt(annualSalary).Div(monthsPerYear)
	basic := gross.Mul(basicRate)
	hra := gross.Mul(hraRate)
	special := gross.Mul(specialRate)
	earnings := basic.Add(hra).Add(special)

	pf := basic.Mul(providentFundRate)
	deductions := pf.Add(professionalTaxINR)

	return Breakdown{
		MonthlyGross:     gross,
		Basic:            basic,
		HRA:              hra,
		SpecialAllowance: special,
		TotalEarnings:    earnings,
		ProvidentFund:    pf,
		ProfessionalTax:  professionalTaxINR,
		TotalDeductions:  deductions,
		NetSalary:        earnings.Sub(deductions),
	}
}

// Filter scopes the payroll listing; empty fields match everything.
type Filter struct {
	Department string
	Query      string
}

func (f Filter) Matches(e domain.Employee) bool {
	if f.Department != "" && !strings.EqualFold(f.Department, "All") && e.Department != f.Department {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range []string{e.Name, e.ID, e.Department} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// parsePeriod accepts YYYY-MM; an empty value means the month of now.
func parsePeriod(v string, now time.Time) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		y, m, _ := now.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(periodLayout, v)
}
