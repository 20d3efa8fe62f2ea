package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/runway-calculator/pkg/decimal"
)

// PayoffStatus describes where a debt stands against its payment schedule
type PayoffStatus string

const (
	PayoffAlreadyPaid PayoffStatus = "already_paid"
	PayoffNoPayment   PayoffStatus = "no_payment"
	PayoffOnTrack     PayoffStatus = "on_track"
	PayoffUnderwater  PayoffStatus = "underwater"
)

// DebtPayoff is the result of a standard amortization calculation
type DebtPayoff struct {
	MonthsRemaining int             `json:"months_remaining"`
	YearsRemaining  decimal.Decimal `json:"years_remaining"`
	TotalInterest   decimal.Decimal `json:"total_interest"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	Status          PayoffStatus    `json:"status"`
}

// maxPayoffMonths bounds the closed form; a longer schedule is treated as never paying off.
const maxPayoffMonths = 1_000_000

// PaysOffWithin reports whether the debt is retired within the given number of months.
// A debt with no payment counts as settled (zero months remaining); an underwater debt never does.
func (p DebtPayoff) PaysOffWithin(months int) bool {
	switch p.Status {
	case PayoffAlreadyPaid, PayoffNoPayment:
		return true
	case PayoffOnTrack:
		return p.MonthsRemaining >= 0 && p.MonthsRemaining <= months
	default:
		return false
	}
}

// CalculateDebtPayoff computes months to payoff and total interest using
// n = -ln(1 - r*P/M) / ln(1 + r), with r the monthly rate, P the balance and M the payment.
// A zero payment yields zero months remaining and no interest, like a settled balance.
// A payment that does not exceed the first month's interest returns a *NonAmortizingError,
// as does one so close to the interest that the schedule cannot be represented.
func CalculateDebtPayoff(balance, annualRate, monthlyPayment decimal.Decimal) (DebtPayoff, error) {
	if balance.LessThanOrEqual(decimal.Zero) {
		return DebtPayoff{Status: PayoffAlreadyPaid}, nil
	}
	if monthlyPayment.LessThanOrEqual(decimal.Zero) {
		return DebtPayoff{Status: PayoffNoPayment}, nil
	}

	monthlyRate := annualRate.Div(decimal.NewFromInt(12))

	// 0% loans
	if monthlyRate.LessThanOrEqual(decimal.Zero) {
		months := balance.Div(monthlyPayment).Ceil()
		return newDebtPayoff(months.IntPart(), decimal.Zero, balance), nil
	}

	monthlyInterest := balance.Mul(monthlyRate)
	if monthlyPayment.LessThanOrEqual(monthlyInterest) {
		return underwater(monthlyInterest, monthlyPayment)
	}

	r := monthlyRate.InexactFloat64()
	ratio := monthlyInterest.Div(monthlyPayment).InexactFloat64()
	if ratio >= 1 {
		return underwater(monthlyInterest, monthlyPayment)
	}
	n := math.Ceil(-math.Log(1-ratio) / math.Log1p(r))
	if math.IsNaN(n) || math.IsInf(n, 0) || n > maxPayoffMonths {
		return underwater(monthlyInterest, monthlyPayment)
	}

	months := int64(n)
	totalInterest := decimal.NewFromInt(months).Mul(monthlyPayment).Sub(balance)
	return newDebtPayoff(months, totalInterest, balance), nil
}

func underwater(monthlyInterest, monthlyPayment decimal.Decimal) (DebtPayoff, error) {
	return DebtPayoff{MonthsRemaining: -1, Status: PayoffUnderwater}, &NonAmortizingError{
		MonthlyInterest: money.Cents(monthlyInterest),
		MonthlyPayment:  monthlyPayment,
		Shortfall:       money.NonNegative(money.Cents(monthlyInterest.Sub(monthlyPayment))),
	}
}

func newDebtPayoff(months int64, totalInterest, balance decimal.Decimal) DebtPayoff {
	return DebtPayoff{
		MonthsRemaining: int(months),
		YearsRemaining:  decimal.NewFromInt(months).Div(decimal.NewFromInt(12)).Round(1),
		TotalInterest:   money.Cents(totalInterest),
		TotalPaid:       money.Cents(balance.Add(totalInterest)),
		Status:          PayoffOnTrack,
	}
}

// AmortizeYear rolls a balance forward by twelve monthly payments:
// B*(1+r)^12 - M*((1+r)^12 - 1)/r, or B - 12M at 0%. The result never goes below zero.
// A non-amortizing debt grows (or holds) under this formula.
func AmortizeYear(balance, annualRate, monthlyPayment decimal.Decimal) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	twelve := decimal.NewFromInt(12)
	monthlyRate := annualRate.Div(twelve)
	if monthlyRate.LessThanOrEqual(decimal.Zero) {
		return money.NonNegative(balance.Sub(monthlyPayment.Mul(twelve)))
	}
	factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(twelve)
	paid := monthlyPayment.Mul(factor.Sub(decimal.NewFromInt(1))).Div(monthlyRate)
	return money.NonNegative(balance.Mul(factor).Sub(paid))
}
