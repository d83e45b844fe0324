package payroll

type ListPayrollQuery struct {
	Department string `form:"department"`
	Query      string `form:"q"`
}

type PayslipQuery struct {
	Period string `form:"period"`
}

type PayrollResponse struct {
	EmployeeID          string `json:"employee_id"`
	Name                string `json:"name"`
	Avatar              string `json:"avatar"`
	Department          string `json:"department"`
	Role                string `json:"role"`
	AnnualSalary        int64  `json:"annual_salary"`
	AnnualSalaryDisplay string `json:"annual_salary_display"`
	MonthlyGross        string `json:"monthly_gross"`
	MonthlyGrossDisplay string `json:"monthly_gross_display"`
}

// MoneyResponse carries a 2-decimal amount both raw and formatted.
type MoneyResponse struct {
	Amount  string `json:"amount"`
	Display string `json:"display"`
}

type PayslipLineResponse struct {
	Label string `json:"label"`
	MoneyResponse
}

type PayslipEmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	JoiningDate string `json:"joining_date"`
}

type PayslipResponse struct {
	Company         string                  `json:"company"`
	Period          string                  `json:"period"`
	PeriodLabel     string                  `json:"period_label"`
	Employee        PayslipEmployeeResponse `json:"employee"`
	MonthlyGross    MoneyResponse           `json:"monthly_gross"`
	Earnings        []PayslipLineResponse   `json:"earnings"`
	TotalEarnings   MoneyResponse           `json:"total_earnings"`
	Deductions      []PayslipLineResponse   `json:"deductions"`
	TotalDeductions MoneyResponse           `json:"total_deductions"`
	NetSalary       MoneyResponse           `json:"net_salary"`
}

// PayslipFile is a rendered payslip ready to be streamed.
type PayslipFile struct {
	Filename string
	Content  []byte
}
