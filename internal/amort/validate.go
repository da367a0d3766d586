package amort

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/loanpath/loanpath/internal/domain"
)

const (
	// MinRateAdjustmentMonth is the first payment whose rate may change; the
	// rate effective at month 1 is the loan's own.
	MinRateAdjustmentMonth = 2

	// MaxAnnualRatePercent caps user-entered rates, original and adjusted.
	MaxAnnualRatePercent = 30
)

var maxAnnualRate = decimal.NewFromInt(MaxAnnualRatePercent)

// ValidateRateAdjustment reports whether a drafted rate adjustment may be
// committed to the list feeding the simulator. This is the boundary where
// range enforcement happens; the simulator itself only skips.
func ValidateRateAdjustment(adj domain.RateAdjustment, termMonths int) error {
	if adj.Month < MinRateAdjustmentMonth || adj.Month > termMonths {
		return fmt.Errorf("rate adjustment month must be between %d and %d, got %d: %w",
			MinRateAdjustmentMonth, termMonths, adj.Month, ErrInvalidInput)
	}
	if adj.NewAnnualRatePercent.IsNegative() || adj.NewAnnualRatePercent.GreaterThan(maxAnnualRate) {
		return fmt.Errorf("new annual rate must be between 0 and %d%%, got %s: %w",
			MaxAnnualRatePercent, adj.NewAnnualRatePercent, ErrInvalidInput)
	}
	return nil
}

// ValidateExtraPayment reports whether a drafted extra payment may be
// committed to the list feeding the simulator.
func ValidateExtraPayment(p domain.ExtraPayment, termMonths int) error {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("extra payment amount must be positive, got %s: %w", p.Amount, ErrInvalidInput)
	}
	switch p.Type {
	case domain.ExtraPaymentOneTime:
		if p.Month < 1 || p.Month > termMonths {
			return fmt.Errorf("extra payment month must be between 1 and %d, got %d: %w",
				termMonths, p.Month, ErrInvalidInput)
		}
	case domain.ExtraPaymentRecurring:
		if p.StartMonth < 1 || p.StartMonth > termMonths {
			return fmt.Errorf("extra payment start month must be between 1 and %d, got %d: %w",
				termMonths, p.StartMonth, ErrInvalidInput)
		}
		if p.FrequencyMonths < 1 {
			return fmt.Errorf("extra payment frequency must be at least 1 month, got %d: %w",
				p.FrequencyMonths, ErrInvalidInput)
		}
		if p.EndMonth != 0 && p.EndMonth < p.StartMonth {
			return fmt.Errorf("extra payment end month %d is before start month %d: %w",
				p.EndMonth, p.StartMonth, ErrInvalidInput)
		}
	default:
		return fmt.Errorf("extra payment type must be %q or %q, got %q: %w",
			domain.ExtraPaymentOneTime, domain.ExtraPaymentRecurring, p.Type, ErrInvalidInput)
	}
	return nil
}
