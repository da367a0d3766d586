// Package compare computes the savings view: the same loan with and without
// its extra payments and rate adjustments, and the interest and months saved
// between the two.
package compare

import (
	"fmt"

	"github.com/loanpath/loanpath/internal/amort"
	"github.com/loanpath/loanpath/internal/domain"
)

// CompareEngine orchestrates baseline-versus-adjusted schedule comparison.
type CompareEngine struct {
	CalcEngine *amort.Engine
}

// NewCompareEngine creates a comparison engine on top of a calculation engine.
func NewCompareEngine(calcEngine *amort.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare runs both schedules and derives the savings metrics. The baseline
// is the loan stripped of its adjustment lists; the adjusted run uses them
// as given.
func (ce *CompareEngine) Compare(loan domain.Loan) (*Comparison, error) {
	baselineLoan := loan
	baselineLoan.ExtraPayments = nil
	baselineLoan.RateAdjustments = nil

	baseline, err := ce.resultFor("baseline", baselineLoan)
	if err != nil {
		return nil, fmt.Errorf("failed to compute baseline schedule: %w", err)
	}
	adjusted, err := ce.resultFor("adjusted", loan)
	if err != nil {
		return nil, fmt.Errorf("failed to compute adjusted schedule: %w", err)
	}

	return &Comparison{
		LoanName:      loan.Name,
		Baseline:      baseline,
		Adjusted:      adjusted,
		InterestSaved: baseline.TotalInterest.Sub(adjusted.TotalInterest),
		MonthsSaved:   baseline.Months - adjusted.Months,
	}, nil
}

func (ce *CompareEngine) resultFor(label string, loan domain.Loan) (Result, error) {
	entries, err := ce.CalcEngine.GeneratePaymentSchedule(loan)
	if err != nil {
		return Result{}, err
	}

	termMonths, err := loan.TermMonths()
	if err != nil {
		return Result{}, err
	}
	summary, err := amort.CalculatePayment(loan.Principal, loan.AnnualRatePercent, termMonths)
	if err != nil {
		return Result{}, err
	}

	stats := domain.SummarizeSchedule(entries)
	return Result{
		Label:          label,
		MonthlyPayment: summary.MonthlyPayment,
		Months:         stats.Months,
		TotalPaid:      stats.TotalPaid,
		TotalInterest:  stats.TotalInterest,
		PayoffDate:     stats.PayoffDate,
	}, nil
}
