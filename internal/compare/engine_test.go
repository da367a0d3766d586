package compare

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanpath/loanpath/internal/amort"
	"github.com/loanpath/loanpath/internal/domain"
)

func testLoan() domain.Loan {
	return domain.Loan{
		Name:              "house",
		Principal:         decimal.NewFromInt(100000),
		AnnualRatePercent: decimal.NewFromInt(6),
		Term:              360,
		TermUnit:          domain.TermUnitMonths,
		StartDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCompare_ExtraPaymentSavings(t *testing.T) {
	loan := testLoan()
	loan.ExtraPayments = []domain.ExtraPayment{
		{ID: "lump", Amount: decimal.NewFromInt(50000), Type: domain.ExtraPaymentOneTime, Month: 1},
	}

	engine := NewCompareEngine(amort.NewEngine())
	comp, err := engine.Compare(loan)
	require.NoError(t, err)

	assert.Equal(t, "house", comp.LoanName)
	assert.Equal(t, 360, comp.Baseline.Months)
	assert.Less(t, comp.Adjusted.Months, comp.Baseline.Months)
	assert.Positive(t, comp.MonthsSaved)
	assert.True(t, comp.InterestSaved.IsPositive(),
		"Extra payments should save interest, got %s", comp.InterestSaved)
	assert.True(t, comp.Adjusted.PayoffDate.Before(comp.Baseline.PayoffDate))
	assert.True(t, comp.Baseline.MonthlyPayment.Equal(comp.Adjusted.MonthlyPayment),
		"Extra payments leave the scheduled payment unchanged")
}

func TestCompare_NoAdjustments(t *testing.T) {
	engine := NewCompareEngine(amort.NewEngine())
	comp, err := engine.Compare(testLoan())
	require.NoError(t, err)

	assert.True(t, comp.InterestSaved.IsZero())
	assert.Zero(t, comp.MonthsSaved)
	assert.Equal(t, comp.Baseline.Months, comp.Adjusted.Months)
	assert.True(t, comp.Baseline.TotalPaid.Equal(comp.Adjusted.TotalPaid))
}

func TestCompare_RateDropSavings(t *testing.T) {
	loan := testLoan()
	loan.RateAdjustments = []domain.RateAdjustment{
		{ID: "refi", Month: 121, NewAnnualRatePercent: decimal.NewFromInt(4)},
	}

	engine := NewCompareEngine(amort.NewEngine())
	comp, err := engine.Compare(loan)
	require.NoError(t, err)

	assert.True(t, comp.InterestSaved.IsPositive(), "A rate drop should save interest")
	assert.Zero(t, comp.MonthsSaved, "Re-amortization preserves the payoff date")
}

func TestCompare_InvalidLoan(t *testing.T) {
	loan := testLoan()
	loan.Principal = decimal.Zero

	engine := NewCompareEngine(amort.NewEngine())
	_, err := engine.Compare(loan)
	require.Error(t, err)
	assert.ErrorIs(t, err, amort.ErrInvalidInput)
}
