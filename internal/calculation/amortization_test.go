package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateDebtPayoff(t *testing.T) {
	tests := []struct {
		name           string
		balance        string
		rate           string
		payment        string
		expectedMonths int
		expectedInt    string
		expectedStatus PayoffStatus
	}{
		{"zero rate divides evenly", "1000", "0", "100", 10, "0", PayoffOnTrack},
		{"zero rate rounds months up", "1050", "0", "100", 11, "0", PayoffOnTrack},
		{"twelve month car note", "4800", "0", "400", 12, "0", PayoffOnTrack},
		{"already paid", "0", "0.06", "100", 0, "0", PayoffAlreadyPaid},
		{"negative balance settled", "-10", "0.06", "100", 0, "0", PayoffAlreadyPaid},
		{"no payment", "5000", "0.05", "0", 0, "0", PayoffNoPayment},
		{"mortgage at 6%", "280000", "0.06", "1800", 302, "263600.00", PayoffOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payoff, err := CalculateDebtPayoff(dec(tt.balance), dec(tt.rate), dec(tt.payment))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMonths, payoff.MonthsRemaining)
			assert.True(t, payoff.TotalInterest.Equal(dec(tt.expectedInt)),
				"total interest: expected %s, got %s", tt.expectedInt, payoff.TotalInterest.StringFixed(2))
			assert.Equal(t, tt.expectedStatus, payoff.Status)
		})
	}
}

// TestCalculateDebtPayoff_MatchesMonthlySimulation checks the closed form against
// paying the debt down month by month.
func TestCalculateDebtPayoff_MatchesMonthlySimulation(t *testing.T) {
	balance := dec("280000")
	rate := dec("0.06")
	payment := dec("1800")

	payoff, err := CalculateDebtPayoff(balance, rate, payment)
	require.NoError(t, err)

	monthlyRate := rate.Div(decimal.NewFromInt(12))
	remaining := balance
	months := 0
	for remaining.IsPositive() && months < 1000 {
		remaining = remaining.Add(remaining.Mul(monthlyRate)).Sub(payment)
		months++
	}
	assert.InDelta(t, months, payoff.MonthsRemaining, 1, "closed form %d vs simulated %d", payoff.MonthsRemaining, months)
	assert.Equal(t, "25.2", payoff.YearsRemaining.StringFixed(1))
	assert.True(t, payoff.TotalPaid.Equal(dec("543600")), "total paid %s", payoff.TotalPaid)
}

func TestCalculateDebtPayoff_NonAmortizing(t *testing.T) {
	payoff, err := CalculateDebtPayoff(dec("100000"), dec("0.12"), dec("900"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonAmortizingDebt))

	var nae *NonAmortizingError
	require.True(t, errors.As(err, &nae))
	assert.Equal(t, "1000.00", nae.MonthlyInterest.StringFixed(2))
	assert.Equal(t, "100.00", nae.Shortfall.StringFixed(2))
	assert.Equal(t, PayoffUnderwater, payoff.Status)
	assert.False(t, payoff.PaysOffWithin(12))
}

func TestCalculateDebtPayoff_PaymentEqualToInterest(t *testing.T) {
	_, err := CalculateDebtPayoff(dec("100000"), dec("0.12"), dec("1000"))
	assert.ErrorIs(t, err, ErrNonAmortizingDebt)
}

func TestPaysOffWithin(t *testing.T) {
	assert.True(t, DebtPayoff{MonthsRemaining: 12, Status: PayoffOnTrack}.PaysOffWithin(12))
	assert.False(t, DebtPayoff{MonthsRemaining: 13, Status: PayoffOnTrack}.PaysOffWithin(12))
	assert.True(t, DebtPayoff{Status: PayoffAlreadyPaid}.PaysOffWithin(12))
	assert.True(t, DebtPayoff{Status: PayoffNoPayment}.PaysOffWithin(12))
	assert.False(t, DebtPayoff{MonthsRemaining: -1, Status: PayoffUnderwater}.PaysOffWithin(12))
	assert.False(t, DebtPayoff{MonthsRemaining: -1, Status: PayoffOnTrack}.PaysOffWithin(12))
}

func TestCalculateDebtPayoff_PaymentBarelyAboveInterest(t *testing.T) {
	// the margin is below float64 resolution, so the month count is unbounded
	payoff, err := CalculateDebtPayoff(dec("1000000"), dec("0.12"), dec("10000.0000000000000001"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonAmortizingDebt)
	assert.Equal(t, PayoffUnderwater, payoff.Status)
	assert.False(t, payoff.PaysOffWithin(12))

	var nae *NonAmortizingError
	require.True(t, errors.As(err, &nae))
	assert.Equal(t, "10000.00", nae.MonthlyInterest.StringFixed(2))
	assert.True(t, nae.Shortfall.IsZero(), "shortfall %s", nae.Shortfall)
}

func TestCalculateDebtPayoff_SlowButFinite(t *testing.T) {
	payoff, err := CalculateDebtPayoff(dec("100000"), dec("0.12"), dec("1000.01"))
	require.NoError(t, err)
	assert.Equal(t, PayoffOnTrack, payoff.Status)
	assert.Greater(t, payoff.MonthsRemaining, 1000)
	assert.False(t, payoff.PaysOffWithin(12))
}

func TestAmortizeYear(t *testing.T) {
	t.Run("zero rate subtracts twelve payments", func(t *testing.T) {
		got := AmortizeYear(dec("10000"), decimal.Zero, dec("500"))
		assert.True(t, got.Equal(dec("4000")), "got %s", got)
	})

	t.Run("never below zero", func(t *testing.T) {
		got := AmortizeYear(dec("1000"), decimal.Zero, dec("500"))
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("interest bearing matches monthly loop", func(t *testing.T) {
		balance, rate, payment := dec("280000"), dec("0.06"), dec("1800")
		monthly := rate.Div(decimal.NewFromInt(12))
		expected := balance
		for i := 0; i < 12; i++ {
			expected = expected.Add(expected.Mul(monthly)).Sub(payment)
		}
		got := AmortizeYear(balance, rate, payment)
		assert.True(t, got.Sub(expected).Abs().LessThan(dec("0.01")),
			"expected %s, got %s", expected.StringFixed(2), got.StringFixed(2))
	})

	t.Run("non-amortizing balance grows", func(t *testing.T) {
		got := AmortizeYear(dec("100000"), dec("0.12"), dec("900"))
		assert.True(t, got.GreaterThan(dec("100000")), "got %s", got)
	})
}
