package payroll

import (
	"testing"
	"time"

	"gtb-hrms/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdown(t *testing.T) {
	b := ComputeBreakdown(1200000)

	assert.Equal(t, "100000.00", b.MonthlyGross.StringFixed(2))
	assert.Equal(t, "50000.00", b.Basic.StringFixed(2))
	assert.Equal(t, "20000.00", b.HRA.StringFixed(2))
	assert.Equal(t, "20000.00", b.SpecialAllowance.StringFixed(2))
	assert.Equal(t, "90000.00", b.TotalEarnings.StringFixed(2))
	assert.Equal(t, "6000.00", b.ProvidentFund.StringFixed(2))
	assert.Equal(t, "200.00", b.ProfessionalTax.StringFixed(2))
	assert.Equal(t, "6200.00", b.TotalDeductions.StringFixed(2))
	assert.Equal(t, "83800.00", b.NetSalary.StringFixed(2))
}

func TestComputeBreakdown_NonRoundSalary(t *testing.T) {
	b := ComputeBreakdown(1000000)

	assert.Equal(t, "83333.33", b.MonthlyGross.StringFixed(2))
	assert.Equal(t, "41666.67", b.Basic.StringFixed(2))
	assert.Equal(t, "5000.00", b.ProvidentFund.StringFixed(2))
	// totals are summed before rounding
	assert.Equal(t, "69800.00", b.NetSalary.StringFixed(2))
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount   string
		fraction int32
		want     string
	}{
		{"1800000", 0, "₹18,00,000"},
		{"240000", 0, "₹2,40,000"},
		{"999", 0, "₹999"},
		{"125800", 2, "₹1,25,800.00"},
		{"83333.3333", 2, "₹83,333.33"},
		{"150000.5", 0, "₹1,50,001"},
		{"-200", 2, "-₹200.00"},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatINR(decimal.RequireFromString(tc.amount), tc.fraction))
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	e := domain.Employee{ID: "GTBI-003", Name: "Anjali Mehta", Department: "Technology"}

	assert.True(t, Filter{}.Matches(e))
	assert.True(t, Filter{Department: "All"}.Matches(e))
	assert.True(t, Filter{Department: "Technology", Query: "anjali"}.Matches(e))
	assert.True(t, Filter{Query: "gtbi-003"}.Matches(e))
	assert.False(t, Filter{Department: "Finance"}.Matches(e))
	assert.False(t, Filter{Query: "rohan"}.Matches(e))
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2023, time.October, 27, 15, 0, 0, 0, time.UTC)

	got, err := parsePeriod("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parsePeriod("2024-02", now)
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())

	_, err = parsePeriod("2024/02", now)
	assert.Error(t, err)
}

func TestRenderPayslipPDF(t *testing.T) {
	e := domain.Employee{
		ID: "GTBI-002", Name: "Rohan Kumar", Role: domain.RoleEmployee, Department: "Finance",
		Salary: 1200000, JoiningDate: time.Date(2021, 7, 22, 0, 0, 0, 0, time.UTC),
	}
	p := buildPayslip(e, time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC))

	out, err := renderPayslipPDF(p)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(out[:5]))
	assert.Equal(t, "INR 83,800.00", pdfAmount(p.NetSalary))
}
