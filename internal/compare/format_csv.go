package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats a comparison as CSV.
type CSVFormatter struct{}

// Format generates CSV output with one row per schedule.
func (cf *CSVFormatter) Format(comp *Comparison) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Schedule",
		"Monthly Payment",
		"Payments",
		"Total Paid",
		"Total Interest",
		"Payoff Date",
		"Interest Saved",
		"Months Saved",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(&comp.Baseline, comp, true)); err != nil {
		return "", err
	}
	if err := writer.Write(cf.formatRow(&comp.Adjusted, comp, false)); err != nil {
		return "", err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *Result, comp *Comparison, isBaseline bool) []string {
	interestSaved := ""
	monthsSaved := ""
	if !isBaseline {
		interestSaved = comp.InterestSaved.StringFixed(2)
		monthsSaved = strconv.Itoa(comp.MonthsSaved)
	}
	return []string{
		result.Label,
		result.MonthlyPayment.StringFixed(2),
		strconv.Itoa(result.Months),
		result.TotalPaid.StringFixed(2),
		result.TotalInterest.StringFixed(2),
		result.PayoffDate.Format("2006-01-02"),
		interestSaved,
		monthsSaved,
	}
}
