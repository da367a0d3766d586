package compare

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result holds the headline metrics of one computed schedule.
type Result struct {
	Label          string          `json:"label"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	Months         int             `json:"months"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	PayoffDate     time.Time       `json:"payoffDate"`
}

// Comparison contrasts the loan as scheduled (no extra payments, no rate
// adjustments) against the loan with its what-if lists applied.
type Comparison struct {
	LoanName      string          `json:"loanName"`
	Baseline      Result          `json:"baseline"`
	Adjusted      Result          `json:"adjusted"`
	InterestSaved decimal.Decimal `json:"interestSaved"`
	MonthsSaved   int             `json:"monthsSaved"`
}
