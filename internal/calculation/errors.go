package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidReference is returned when an assumption names an asset that is not in the snapshot.
	ErrInvalidReference = errors.New("invalid asset reference")
	// ErrDuplicateName is returned when two assets or two debts share a name.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrInvalidInput is returned for structurally unusable figures (negative balances, missing payments).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNonAmortizingDebt marks a debt whose payment never covers its interest.
	// The engine keeps such a debt active for the whole run.
	ErrNonAmortizingDebt = errors.New("payment does not cover monthly interest")
	// ErrInsufficientAssets marks a year whose gap exceeds every eligible balance.
	// The engine records the unfunded remainder instead of failing.
	ErrInsufficientAssets = errors.New("insufficient assets to fund gap")
)

// NonAmortizingError carries the figures of a debt that never pays off.
type NonAmortizingError struct {
	MonthlyInterest decimal.Decimal
	MonthlyPayment  decimal.Decimal
	Shortfall       decimal.Decimal
}

func (e *NonAmortizingError) Error() string {
	return fmt.Sprintf("%s: interest %s, payment %s, shortfall %s",
		ErrNonAmortizingDebt, e.MonthlyInterest.StringFixed(2), e.MonthlyPayment.StringFixed(2), e.Shortfall.StringFixed(2))
}

func (e *NonAmortizingError) Unwrap() error { return ErrNonAmortizingDebt }
