package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleEntry is one row of an amortization schedule. Amounts are carried
// at full precision; rounding to cents happens only in the output layer.
type ScheduleEntry struct {
	PaymentNumber    int             `json:"payment_number"`
	Date             time.Time       `json:"date"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// ScheduleStats summarizes a generated schedule: the figures a dashboard
// shows alongside the row-by-row detail.
type ScheduleStats struct {
	Months         int             `json:"months"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalPrincipal decimal.Decimal `json:"total_principal"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	PayoffDate     time.Time       `json:"payoff_date"`
}

// SummarizeSchedule computes totals and the payoff date for a schedule.
func SummarizeSchedule(entries []ScheduleEntry) ScheduleStats {
	stats := ScheduleStats{
		Months:         len(entries),
		TotalPaid:      decimal.Zero,
		TotalPrincipal: decimal.Zero,
		TotalInterest:  decimal.Zero,
	}
	for _, e := range entries {
		stats.TotalPaid = stats.TotalPaid.Add(e.Payment)
		stats.TotalPrincipal = stats.TotalPrincipal.Add(e.PrincipalPortion)
		stats.TotalInterest = stats.TotalInterest.Add(e.InterestPortion)
	}
	if len(entries) > 0 {
		stats.PayoffDate = entries[len(entries)-1].Date
	}
	return stats
}
