package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// The core PDF fonts have no rupee glyph, so amounts are prefixed with INR.
func pdfAmount(m MoneyResponse) string {
	return "INR " + m.Display[len(rupee):]
}

func renderPayslipPDF(p PayslipResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s %s", p.Employee.ID, p.Period), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, p.Company, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Payslip for the month of "+p.PeriodLabel, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(95, 7, p.Employee.Name, "T", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 7, "Employee ID: "+p.Employee.ID, "T", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, p.Employee.Role, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Joining Date: "+p.Employee.JoiningDate, "", 1, "R", false, 0, "")
	pdf.CellFormat(190, 6, p.Employee.Department+" Department", "B", 1, "L", false, 0, "")
	pdf.Ln(6)

	section := func(title string, lines []PayslipLineResponse, total MoneyResponse, totalLabel string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(190, 8, title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, l := range lines {
			pdf.CellFormat(120, 6, l.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, pdfAmount(l.MoneyResponse), "", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 7, totalLabel, "T", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, pdfAmount(total), "T", 1, "R", false, 0, "")
		pdf.Ln(4)
	}
	section("Earnings", p.Earnings, p.TotalEarnings, "Total Earnings")
	section("Deductions", p.Deductions, p.TotalDeductions, "Total Deductions")

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 10, "Net Salary", "", 0, "L", true, 0, "")
	pdf.CellFormat(70, 10, pdfAmount(p.NetSalary), "", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
