package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TermUnit is the unit a loan term is expressed in.
type TermUnit string

const (
	TermUnitMonths TermUnit = "months"
	TermUnitYears  TermUnit = "years"
)

// ExtraPaymentType distinguishes one-off from recurring extra payments.
type ExtraPaymentType string

const (
	ExtraPaymentOneTime   ExtraPaymentType = "one-time"
	ExtraPaymentRecurring ExtraPaymentType = "recurring"
)

// ExtraPayment is a payment above the scheduled amount, applied entirely to
// principal. One-time payments land on Month; recurring payments repeat every
// FrequencyMonths starting at StartMonth until EndMonth (or payoff when
// EndMonth is zero).
type ExtraPayment struct {
	ID              string           `yaml:"id,omitempty" json:"id,omitempty"`
	Amount          decimal.Decimal  `yaml:"amount" json:"amount"`
	Type            ExtraPaymentType `yaml:"type" json:"type"`
	Month           int              `yaml:"month,omitempty" json:"month,omitempty"`
	StartMonth      int              `yaml:"start_month,omitempty" json:"start_month,omitempty"`
	FrequencyMonths int              `yaml:"frequency_months,omitempty" json:"frequency_months,omitempty"`
	EndMonth        int              `yaml:"end_month,omitempty" json:"end_month,omitempty"`
}

// RateAdjustment changes the loan's annual rate effective from a payment
// number onward. The remaining balance is re-amortized over the remaining
// original term, so the payoff date is preserved and the payment changes.
type RateAdjustment struct {
	ID                   string          `yaml:"id,omitempty" json:"id,omitempty"`
	Month                int             `yaml:"month" json:"month"`
	NewAnnualRatePercent decimal.Decimal `yaml:"new_annual_rate_percent" json:"new_annual_rate_percent"`
}

// Loan holds the parameters of a single amortizing loan plus its what-if
// adjustment lists. It is immutable input to the calculation engine.
type Loan struct {
	Name              string           `yaml:"name,omitempty" json:"name,omitempty"`
	Principal         decimal.Decimal  `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal  `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Term              int              `yaml:"term" json:"term"`
	TermUnit          TermUnit         `yaml:"term_unit" json:"term_unit"`
	StartDate         time.Time        `yaml:"start_date" json:"start_date"`
	ExtraPayments     []ExtraPayment   `yaml:"extra_payments,omitempty" json:"extra_payments,omitempty"`
	RateAdjustments   []RateAdjustment `yaml:"rate_adjustments,omitempty" json:"rate_adjustments,omitempty"`
}

// ConvertTermToMonths normalizes a term value in the given unit to months.
func ConvertTermToMonths(value int, unit TermUnit) (int, error) {
	if value <= 0 {
		return 0, fmt.Errorf("term must be positive, got %d", value)
	}
	switch unit {
	case TermUnitMonths:
		return value, nil
	case TermUnitYears:
		return value * 12, nil
	default:
		return 0, fmt.Errorf("unknown term unit %q (want %q or %q)", unit, TermUnitMonths, TermUnitYears)
	}
}

// TermMonths returns the loan's total number of scheduled payments.
func (l *Loan) TermMonths() (int, error) {
	return ConvertTermToMonths(l.Term, l.TermUnit)
}

// PaymentDate returns the due date of payment k (1-indexed): the start date
// plus k calendar months, keeping the start's day-of-month. When that day
// does not exist in the target month the last valid day is used, so a loan
// originated on the 31st is due on Feb 29 in a leap year and back on the
// 31st in March.
func (l *Loan) PaymentDate(k int) time.Time {
	return addMonthsClamped(l.StartDate, k)
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day zero of the following month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// InsertRateAdjustment adds adj to the list while keeping it sorted ascending
// by month with at most one adjustment per month. An adjustment for a month
// already present replaces the existing one. This is the single insertion
// point for the "sorted, unique per month" invariant; callers must not append
// to the slice directly.
func InsertRateAdjustment(list []RateAdjustment, adj RateAdjustment) []RateAdjustment {
	out := make([]RateAdjustment, 0, len(list)+1)
	inserted := false
	for _, existing := range list {
		switch {
		case existing.Month == adj.Month:
			out = append(out, adj)
			inserted = true
		case existing.Month > adj.Month && !inserted:
			out = append(out, adj, existing)
			inserted = true
		default:
			out = append(out, existing)
		}
	}
	if !inserted {
		out = append(out, adj)
	}
	return out
}
