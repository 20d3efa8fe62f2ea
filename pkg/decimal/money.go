package decimal

import (
	"github.com/shopspring/decimal"
)

const (
	// CurrencyPlaces is the precision of every serialized currency figure
	CurrencyPlaces int32 = 2
	// RatePlaces is the precision of every serialized rate
	RatePlaces int32 = 4
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(CurrencyPlaces)
}

// Format formats the amount with a currency prefix; "$" when no code is given.
func (m Money) Format(currency string) string {
	if currency == "" || currency == "USD" {
		return "$" + m.String()
	}
	return m.String() + " " + currency
}

// Cents rounds a decimal to currency precision.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// Rate rounds a decimal to rate precision.
func Rate(d decimal.Decimal) decimal.Decimal {
	return d.Round(RatePlaces)
}

// NonNegative clamps a decimal at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
