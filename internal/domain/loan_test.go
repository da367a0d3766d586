package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTermToMonths(t *testing.T) {
	months, err := ConvertTermToMonths(30, TermUnitYears)
	require.NoError(t, err)
	assert.Equal(t, 360, months)

	months, err = ConvertTermToMonths(18, TermUnitMonths)
	require.NoError(t, err)
	assert.Equal(t, 18, months)

	_, err = ConvertTermToMonths(0, TermUnitMonths)
	assert.Error(t, err)

	_, err = ConvertTermToMonths(-5, TermUnitYears)
	assert.Error(t, err)

	_, err = ConvertTermToMonths(12, "weeks")
	assert.Error(t, err)
}

func TestPaymentDate(t *testing.T) {
	loan := Loan{StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), loan.PaymentDate(1))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), loan.PaymentDate(12))
	assert.Equal(t, time.Date(2054, 1, 1, 0, 0, 0, 0, time.UTC), loan.PaymentDate(360))
}

func TestPaymentDate_ClampsToLastValidDay(t *testing.T) {
	loan := Loan{StartDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}

	// 2024 is a leap year.
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), loan.PaymentDate(1))
	// The day-of-month comes back once the month is long enough.
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), loan.PaymentDate(2))
	assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), loan.PaymentDate(3))
	// Non-leap February.
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), loan.PaymentDate(13))
}

func TestInsertRateAdjustment(t *testing.T) {
	var list []RateAdjustment

	list = InsertRateAdjustment(list, RateAdjustment{ID: "c", Month: 36, NewAnnualRatePercent: decimal.NewFromInt(5)})
	list = InsertRateAdjustment(list, RateAdjustment{ID: "a", Month: 12, NewAnnualRatePercent: decimal.NewFromInt(4)})
	list = InsertRateAdjustment(list, RateAdjustment{ID: "b", Month: 24, NewAnnualRatePercent: decimal.NewFromInt(6)})

	require.Len(t, list, 3)
	assert.Equal(t, []int{12, 24, 36}, []int{list[0].Month, list[1].Month, list[2].Month},
		"List should stay sorted ascending by month")

	// Inserting at an existing month replaces rather than duplicates.
	list = InsertRateAdjustment(list, RateAdjustment{ID: "b2", Month: 24, NewAnnualRatePercent: decimal.NewFromInt(7)})
	require.Len(t, list, 3)
	assert.Equal(t, "b2", list[1].ID)
	assert.True(t, list[1].NewAnnualRatePercent.Equal(decimal.NewFromInt(7)))
}

func TestSummarizeSchedule(t *testing.T) {
	entries := []ScheduleEntry{
		{
			PaymentNumber:    1,
			Date:             time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Payment:          decimal.NewFromInt(1100),
			PrincipalPortion: decimal.NewFromInt(1000),
			InterestPortion:  decimal.NewFromInt(100),
			RemainingBalance: decimal.NewFromInt(1000),
		},
		{
			PaymentNumber:    2,
			Date:             time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Payment:          decimal.NewFromInt(1050),
			PrincipalPortion: decimal.NewFromInt(1000),
			InterestPortion:  decimal.NewFromInt(50),
			RemainingBalance: decimal.Zero,
		},
	}

	stats := SummarizeSchedule(entries)
	assert.Equal(t, 2, stats.Months)
	assert.True(t, stats.TotalPaid.Equal(decimal.NewFromInt(2150)))
	assert.True(t, stats.TotalPrincipal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, stats.TotalInterest.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), stats.PayoffDate)
}

func TestSummarizeSchedule_Empty(t *testing.T) {
	stats := SummarizeSchedule(nil)
	assert.Equal(t, 0, stats.Months)
	assert.True(t, stats.TotalPaid.IsZero())
	assert.True(t, stats.PayoffDate.IsZero())
}
