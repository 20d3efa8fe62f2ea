package calculation

import (
	"github.com/shopspring/decimal"
)

// AssetBalance is a named balance the waterfall may draw down in place
type AssetBalance struct {
	Name    string
	Balance decimal.Decimal
}

// Withdrawals records how much the waterfall took from each asset it visited.
type Withdrawals struct {
	Amounts  map[string]decimal.Decimal
	Unfunded decimal.Decimal
}

// Withdraw funds gap by drawing assets down in the given order, skipping protected names.
// Balances are reduced in place. A non-positive gap withdraws nothing.
// When eligible balances cannot cover the gap every eligible asset is emptied and
// ErrInsufficientAssets is returned alongside the withdrawals; the result is still valid.
func Withdraw(gap decimal.Decimal, ordered []*AssetBalance, protected map[string]bool) (Withdrawals, error) {
	result := Withdrawals{Amounts: map[string]decimal.Decimal{}, Unfunded: decimal.Zero}
	if gap.LessThanOrEqual(decimal.Zero) {
		return result, nil
	}

	remaining := gap
	for _, asset := range ordered {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if protected[asset.Name] {
			result.Amounts[asset.Name] = decimal.Zero
			continue
		}
		take := decimal.Min(remaining, asset.Balance)
		if take.IsNegative() {
			take = decimal.Zero
		}
		asset.Balance = asset.Balance.Sub(take)
		remaining = remaining.Sub(take)
		result.Amounts[asset.Name] = result.Amounts[asset.Name].Add(take)
	}

	if remaining.IsPositive() {
		result.Unfunded = remaining
		return result, ErrInsufficientAssets
	}
	return result, nil
}
