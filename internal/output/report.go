// Package output renders generated schedules for terminals, spreadsheets,
// and machine consumers. Rounding to cents happens here and nowhere else.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanpath/loanpath/internal/amort"
	"github.com/loanpath/loanpath/internal/domain"
)

// ScheduleReport bundles everything a formatter needs to render one loan.
type ScheduleReport struct {
	LoanName          string                 `json:"loan_name,omitempty"`
	Principal         decimal.Decimal        `json:"principal"`
	AnnualRatePercent decimal.Decimal        `json:"annual_rate_percent"`
	TermMonths        int                    `json:"term_months"`
	StartDate         time.Time              `json:"start_date"`
	Summary           amort.PaymentSummary   `json:"summary"`
	Entries           []domain.ScheduleEntry `json:"entries"`
	Stats             domain.ScheduleStats   `json:"stats"`
}

// NewScheduleReport assembles a report by running the engine over the loan.
func NewScheduleReport(engine *amort.Engine, loan domain.Loan) (*ScheduleReport, error) {
	termMonths, err := loan.TermMonths()
	if err != nil {
		return nil, err
	}
	summary, err := amort.CalculatePayment(loan.Principal, loan.AnnualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}
	entries, err := engine.GeneratePaymentSchedule(loan)
	if err != nil {
		return nil, err
	}
	return &ScheduleReport{
		LoanName:          loan.Name,
		Principal:         loan.Principal,
		AnnualRatePercent: loan.AnnualRatePercent,
		TermMonths:        termMonths,
		StartDate:         loan.StartDate,
		Summary:           summary,
		Entries:           entries,
		Stats:             domain.SummarizeSchedule(entries),
	}, nil
}

// Formatter renders a schedule report in one output format.
type Formatter interface {
	Name() string
	Format(report *ScheduleReport) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil for an
// unknown name.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return &ConsoleFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	default:
		return nil
	}
}

// ConsoleFormatter renders a schedule as a console table.
type ConsoleFormatter struct{}

// Name returns the format name.
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format renders the loan summary followed by the full schedule table.
func (cf *ConsoleFormatter) Format(report *ScheduleReport) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("AMORTIZATION SCHEDULE\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")
	if report.LoanName != "" {
		sb.WriteString(fmt.Sprintf("Loan:            %s\n", report.LoanName))
	}
	sb.WriteString(fmt.Sprintf("Principal:       %s\n", FormatCurrency(report.Principal)))
	sb.WriteString(fmt.Sprintf("Annual Rate:     %s\n", FormatPercentage(report.AnnualRatePercent)))
	sb.WriteString(fmt.Sprintf("Term:            %d months\n", report.TermMonths))
	sb.WriteString(fmt.Sprintf("Start Date:      %s\n", report.StartDate.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Monthly Payment: %s\n", FormatCurrency(report.Summary.MonthlyPayment)))
	sb.WriteString(fmt.Sprintf("Total Interest:  %s\n", FormatCurrency(report.Stats.TotalInterest)))
	if !report.Stats.PayoffDate.IsZero() {
		sb.WriteString(fmt.Sprintf("Payoff Date:     %s (%d payments)\n",
			report.Stats.PayoffDate.Format("2006-01-02"), report.Stats.Months))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%5s %12s %14s %14s %14s %14s\n",
		"#", "Date", "Payment", "Principal", "Interest", "Balance"))
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	for _, e := range report.Entries {
		sb.WriteString(fmt.Sprintf("%5d %12s %14s %14s %14s %14s\n",
			e.PaymentNumber,
			e.Date.Format("2006-01-02"),
			e.Payment.StringFixed(2),
			e.PrincipalPortion.StringFixed(2),
			e.InterestPortion.StringFixed(2),
			e.RemainingBalance.StringFixed(2)))
	}
	sb.WriteString(strings.Repeat("=", 78) + "\n")

	return []byte(sb.String()), nil
}

// CSVFormatter renders a schedule as CSV, one row per payment.
type CSVFormatter struct{}

// Name returns the format name.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format renders the schedule rows with a header line.
func (cf *CSVFormatter) Format(report *ScheduleReport) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Payment Number", "Date", "Payment", "Principal", "Interest", "Remaining Balance"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.Entries {
		row := []string{
			strconv.Itoa(e.PaymentNumber),
			e.Date.Format("2006-01-02"),
			e.Payment.StringFixed(2),
			e.PrincipalPortion.StringFixed(2),
			e.InterestPortion.StringFixed(2),
			e.RemainingBalance.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// JSONFormatter renders the whole report as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Name returns the format name.
func (jf *JSONFormatter) Name() string { return "json" }

// Format marshals the report.
func (jf *JSONFormatter) Format(report *ScheduleReport) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// FormatCurrency formats a decimal as currency for display.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
