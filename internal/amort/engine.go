// Package amort is the amortization engine: the closed-form fixed-payment
// calculator and the month-by-month schedule simulator that interleaves
// extra payments and mid-term rate adjustments against a rolling balance.
// Everything is a pure function of its inputs; invocations are independent
// and safe to run concurrently.
package amort

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/loanpath/loanpath/internal/domain"
)

// ErrInvalidInput marks rejections of non-positive principal/term or a
// negative rate at the calculator boundary.
var ErrInvalidInput = errors.New("invalid input")

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// PaymentSummary is the result of the closed-form payment calculation.
// Amounts are full precision; round only when presenting.
type PaymentSummary struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// monthlyRate converts a nominal annual percentage (e.g. 5.5 for 5.5%) to a
// monthly fractional rate.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// CalculatePayment returns the fixed monthly payment, total paid, and total
// interest for a standard fixed-rate amortizing loan using the annuity
// formula. A zero rate falls back to straight-line principal division.
func CalculatePayment(principal, annualRatePercent decimal.Decimal, termMonths int) (PaymentSummary, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return PaymentSummary{}, fmt.Errorf("principal must be positive, got %s: %w", principal, ErrInvalidInput)
	}
	if termMonths <= 0 {
		return PaymentSummary{}, fmt.Errorf("term must be positive, got %d months: %w", termMonths, ErrInvalidInput)
	}
	if annualRatePercent.IsNegative() {
		return PaymentSummary{}, fmt.Errorf("annual rate cannot be negative, got %s: %w", annualRatePercent, ErrInvalidInput)
	}

	n := decimal.NewFromInt(int64(termMonths))
	var payment decimal.Decimal
	if annualRatePercent.IsZero() {
		payment = principal.Div(n)
	} else {
		r := monthlyRate(annualRatePercent)
		growth := one.Add(r).Pow(n)
		payment = principal.Mul(r).Mul(growth).Div(growth.Sub(one))
	}

	total := payment.Mul(n)
	return PaymentSummary{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total.Sub(principal),
	}, nil
}

// Engine generates payment schedules. It holds no state between calls
// beyond the logger, so a single Engine may be shared across goroutines.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger; nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
}

// GeneratePaymentSchedule simulates the loan month by month and returns the
// full schedule, terminating early when extra payments retire the balance
// before the scheduled term.
//
// A rate adjustment keyed at payment k takes effect before interest accrues
// for k: the remaining balance is re-amortized at the new rate over the
// remaining original term (termMonths - k + 1), so the payoff date is
// preserved and the payment amount changes. Extra payments mapped to k are
// applied entirely to principal. Adjustments and extra payments whose months
// fall outside [1, termMonths] are skipped with a log notice rather than
// failing the whole schedule; strict validation belongs to the config/UI
// boundary.
func (e *Engine) GeneratePaymentSchedule(loan domain.Loan) ([]domain.ScheduleEntry, error) {
	termMonths, err := loan.TermMonths()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, ErrInvalidInput)
	}

	summary, err := CalculatePayment(loan.Principal, loan.AnnualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}

	rateByMonth := e.rateAdjustmentsByMonth(loan.RateAdjustments, termMonths)
	extraByMonth := e.expandExtraPayments(loan.ExtraPayments, termMonths)

	entries := make([]domain.ScheduleEntry, 0, termMonths)
	balance := loan.Principal
	currentRate := loan.AnnualRatePercent
	payment := summary.MonthlyPayment

	for k := 1; k <= termMonths; k++ {
		if newRate, ok := rateByMonth[k]; ok {
			currentRate = newRate
			remaining := termMonths - k + 1
			reamortized, err := CalculatePayment(balance, currentRate, remaining)
			if err != nil {
				return nil, fmt.Errorf("re-amortizing at month %d: %w", k, err)
			}
			payment = reamortized.MonthlyPayment
			e.Logger.Debugf("month %d: rate now %s%%, payment re-amortized to %s over %d months",
				k, currentRate, payment.StringFixed(2), remaining)
		}

		interest := balance.Mul(monthlyRate(currentRate))
		principalPortion := payment.Sub(interest)
		if extra, ok := extraByMonth[k]; ok {
			principalPortion = principalPortion.Add(extra)
		}
		// The final payment clears the balance exactly: the clamp keeps an
		// extra payment from overpaying principal and absorbs the residual
		// left by the finite-precision payment amount at the scheduled term.
		if k == termMonths || principalPortion.GreaterThanOrEqual(balance) {
			principalPortion = balance
		}
		balance = balance.Sub(principalPortion)

		entries = append(entries, domain.ScheduleEntry{
			PaymentNumber:    k,
			Date:             loan.PaymentDate(k),
			Payment:          interest.Add(principalPortion),
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			RemainingBalance: balance,
		})

		if balance.IsZero() {
			break
		}
	}

	return entries, nil
}

// rateAdjustmentsByMonth builds the month-keyed rate lookup, skipping
// adjustments outside [2, termMonths] or with rates the calculator would
// reject. Later duplicates for a month win, matching the replace semantics
// of domain.InsertRateAdjustment for lists assembled elsewhere.
func (e *Engine) rateAdjustmentsByMonth(adjustments []domain.RateAdjustment, termMonths int) map[int]decimal.Decimal {
	byMonth := make(map[int]decimal.Decimal, len(adjustments))
	for _, adj := range adjustments {
		if adj.Month < MinRateAdjustmentMonth || adj.Month > termMonths {
			e.Logger.Warnf("skipping rate adjustment %s: month %d outside [%d, %d]",
				adj.ID, adj.Month, MinRateAdjustmentMonth, termMonths)
			continue
		}
		if adj.NewAnnualRatePercent.IsNegative() {
			e.Logger.Warnf("skipping rate adjustment %s: negative rate %s", adj.ID, adj.NewAnnualRatePercent)
			continue
		}
		byMonth[adj.Month] = adj.NewAnnualRatePercent
	}
	return byMonth
}

// expandExtraPayments turns the extra-payment list into a concrete per-month
// amount map. Recurring entries are walked from StartMonth in FrequencyMonths
// steps until EndMonth or the scheduled term; amounts landing on the same
// month accumulate. Malformed entries are skipped, not fatal.
func (e *Engine) expandExtraPayments(payments []domain.ExtraPayment, termMonths int) map[int]decimal.Decimal {
	byMonth := make(map[int]decimal.Decimal)
	add := func(month int, amount decimal.Decimal) {
		byMonth[month] = byMonth[month].Add(amount)
	}

	for _, p := range payments {
		if p.Amount.LessThanOrEqual(decimal.Zero) {
			e.Logger.Warnf("skipping extra payment %s: amount %s is not positive", p.ID, p.Amount)
			continue
		}
		switch p.Type {
		case domain.ExtraPaymentOneTime:
			if p.Month < 1 || p.Month > termMonths {
				e.Logger.Warnf("skipping extra payment %s: month %d outside [1, %d]", p.ID, p.Month, termMonths)
				continue
			}
			add(p.Month, p.Amount)
		case domain.ExtraPaymentRecurring:
			if p.StartMonth < 1 || p.StartMonth > termMonths || p.FrequencyMonths < 1 {
				e.Logger.Warnf("skipping extra payment %s: start month %d / frequency %d out of range",
					p.ID, p.StartMonth, p.FrequencyMonths)
				continue
			}
			end := termMonths
			if p.EndMonth > 0 && p.EndMonth < end {
				end = p.EndMonth
			}
			for m := p.StartMonth; m <= end; m += p.FrequencyMonths {
				add(m, p.Amount)
			}
		default:
			e.Logger.Warnf("skipping extra payment %s: unknown type %q", p.ID, p.Type)
		}
	}
	return byMonth
}

// GeneratePaymentSchedule runs the simulation on a shared silent engine, for
// callers that have no logging to wire.
func GeneratePaymentSchedule(loan domain.Loan) ([]domain.ScheduleEntry, error) {
	return defaultEngine.GeneratePaymentSchedule(loan)
}

var defaultEngine = NewEngine()
