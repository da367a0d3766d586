package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/loanpath/loanpath/internal/amort"
	"github.com/loanpath/loanpath/internal/domain"
)

// LoanFile is the on-disk shape of a loan configuration.
type LoanFile struct {
	Loan domain.Loan `yaml:"loan" json:"loan"`
}

// InputParser handles parsing of loan configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a loan from a YAML file. Validation here
// is strict: any out-of-range adjustment or extra payment fails the load,
// unlike the engine, which skips them.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Loan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file LoanFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateLoan(&file.Loan); err != nil {
		return nil, fmt.Errorf("loan validation failed: %w", err)
	}

	return &file.Loan, nil
}

// ValidateLoan validates a loan's terms and both adjustment lists.
func (ip *InputParser) ValidateLoan(loan *domain.Loan) error {
	if loan.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("principal must be positive, got %s", loan.Principal)
	}
	if loan.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("annual rate cannot be negative, got %s", loan.AnnualRatePercent)
	}
	if loan.AnnualRatePercent.GreaterThan(decimal.NewFromInt(amort.MaxAnnualRatePercent)) {
		return fmt.Errorf("annual rate cannot exceed %d%%, got %s", amort.MaxAnnualRatePercent, loan.AnnualRatePercent)
	}
	if loan.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}

	termMonths, err := loan.TermMonths()
	if err != nil {
		return fmt.Errorf("invalid term: %w", err)
	}

	for i, p := range loan.ExtraPayments {
		if err := amort.ValidateExtraPayment(p, termMonths); err != nil {
			return fmt.Errorf("extra payment %d (%s): %w", i, p.ID, err)
		}
	}

	seen := make(map[int]bool, len(loan.RateAdjustments))
	sorted := make([]domain.RateAdjustment, 0, len(loan.RateAdjustments))
	for i, adj := range loan.RateAdjustments {
		if err := amort.ValidateRateAdjustment(adj, termMonths); err != nil {
			return fmt.Errorf("rate adjustment %d (%s): %w", i, adj.ID, err)
		}
		if seen[adj.Month] {
			return fmt.Errorf("rate adjustment %d (%s): duplicate month %d", i, adj.ID, adj.Month)
		}
		seen[adj.Month] = true
		sorted = domain.InsertRateAdjustment(sorted, adj)
	}
	// Normalize file order to the sorted-by-month invariant the engine and
	// the comparison views rely on.
	loan.RateAdjustments = sorted

	return nil
}
