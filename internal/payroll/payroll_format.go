package payroll

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupee = "₹"

// Indian digit grouping (12,34,567) comes from the en-IN locale data.
var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

// groupINR formats d with Indian grouping and exactly fraction digits.
func groupINR(d decimal.Decimal, fraction int32) string {
	f, _ := d.Round(fraction).Float64()
	return inPrinter.Sprint(number.Decimal(f, number.Scale(int(fraction))))
}

// FormatINR renders an amount the way the payroll screens show it, e.g.
// ₹18,00,000 or ₹1,25,800.00.
func FormatINR(d decimal.Decimal, fraction int32) string {
	if d.IsNegative() {
		return "-" + rupee + groupINR(d.Neg(), fraction)
	}
	return rupee + groupINR(d, fraction)
}
