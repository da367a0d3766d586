package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanpath/loanpath/internal/amort"
	"github.com/loanpath/loanpath/internal/domain"
)

func sampleReport(t *testing.T) *ScheduleReport {
	t.Helper()
	loan := domain.Loan{
		Name:              "car",
		Principal:         decimal.NewFromInt(12000),
		AnnualRatePercent: decimal.Zero,
		Term:              12,
		TermUnit:          domain.TermUnitMonths,
		StartDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	report, err := NewScheduleReport(amort.NewEngine(), loan)
	require.NoError(t, err)
	return report
}

func TestNewScheduleReport(t *testing.T) {
	report := sampleReport(t)

	assert.Equal(t, "car", report.LoanName)
	assert.Equal(t, 12, report.TermMonths)
	assert.Len(t, report.Entries, 12)
	assert.Equal(t, 12, report.Stats.Months)
	assert.True(t, report.Summary.MonthlyPayment.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), report.Stats.PayoffDate)
}

func TestGetFormatterByName(t *testing.T) {
	assert.IsType(t, &ConsoleFormatter{}, GetFormatterByName("console"))
	assert.IsType(t, &CSVFormatter{}, GetFormatterByName("csv"))
	assert.IsType(t, &JSONFormatter{}, GetFormatterByName("json"))
	assert.Nil(t, GetFormatterByName("html"))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := (&ConsoleFormatter{}).Format(sampleReport(t))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "AMORTIZATION SCHEDULE")
	assert.Contains(t, out, "Loan:            car")
	assert.Contains(t, out, "Monthly Payment: $1000.00")
	assert.Contains(t, out, "Payoff Date:     2025-01-01 (12 payments)")
	assert.Contains(t, out, "2024-02-01", "First payment row should be present")
	assert.Contains(t, out, "2025-01-01", "Final payment row should be present")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 26, "Ten summary lines, blank, two table header lines, twelve rows, footer")
}

func TestCSVFormatter(t *testing.T) {
	data, err := (&CSVFormatter{}).Format(sampleReport(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 13, "Header plus one row per payment")
	assert.Equal(t, "Payment Number", records[0][0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "1000.00", records[1][2])
	assert.Equal(t, "0.00", records[12][5], "Final balance renders as zero cents")
}

func TestJSONFormatter(t *testing.T) {
	data, err := (&JSONFormatter{Pretty: true}).Format(sampleReport(t))
	require.NoError(t, err)

	var decoded ScheduleReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "car", decoded.LoanName)
	assert.Len(t, decoded.Entries, 12)
	assert.True(t, decoded.Entries[11].RemainingBalance.IsZero())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$599.55", FormatCurrency(decimal.RequireFromString("599.5505")))
	assert.Equal(t, "6.00%", FormatPercentage(decimal.NewFromInt(6)))
}
