package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats a comparison as a console table.
type TableFormatter struct{}

// Format generates the side-by-side savings table.
func (tf *TableFormatter) Format(comp *Comparison) string {
	var sb strings.Builder

	sb.WriteString("LOAN PAYOFF COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	if comp.LoanName != "" {
		sb.WriteString(fmt.Sprintf("Loan: %s\n", comp.LoanName))
	}
	sb.WriteString("\n")

	nameWidth := 18
	numWidth := 16
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Schedule",
		numWidth, "Payments",
		numWidth, "Total Paid",
		numWidth, "Total Interest",
		numWidth, "Payoff Date"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(tf.formatRow(&comp.Baseline, nameWidth, numWidth))
	sb.WriteString(tf.formatRow(&comp.Adjusted, nameWidth, numWidth))
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	sb.WriteString("\nSAVINGS\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("  Interest Saved: %s$%s\n",
		tf.deltaSymbol(comp.InterestSaved), comp.InterestSaved.Abs().StringFixed(2)))
	if comp.MonthsSaved != 0 {
		sb.WriteString(fmt.Sprintf("  Payoff Sooner:  %d months\n", comp.MonthsSaved))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *Result, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*d %*s %*s %*s\n",
		nameWidth, result.Label,
		numWidth, result.Months,
		numWidth, "$"+result.TotalPaid.StringFixed(2),
		numWidth, "$"+result.TotalInterest.StringFixed(2),
		numWidth, result.PayoffDate.Format("2006-01-02"))
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsNegative() {
		return "-"
	}
	return "+"
}
