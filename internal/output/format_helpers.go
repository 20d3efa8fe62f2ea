package output

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/rpgo/runway-calculator/internal/domain"
	money "github.com/rpgo/runway-calculator/pkg/decimal"
)

// FormatCurrency formats an amount with thousands separators in the given currency.
// USD (or an empty code) is rendered with a dollar sign, other codes trail the amount.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	fixed := money.Cents(amount).StringFixed(money.CurrencyPlaces)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	digits, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		digits = new(big.Int)
	}
	grouped := humanize.BigComma(digits) + "." + frac
	if currency == "" || strings.EqualFold(currency, "USD") {
		return sign + "$" + grouped
	}
	return sign + grouped + " " + strings.ToUpper(currency)
}

// FormatPercentage formats a fractional rate (0.035) as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatRunway renders a runway length, marking the horizon as open-ended.
func FormatRunway(years int, status domain.RunwayStatus) string {
	if status == domain.RunwayInfinite {
		return intToString(years) + "+ years"
	}
	if years == 1 {
		return "1 year"
	}
	return intToString(years) + " years"
}

func intToString(i int) string { return strconv.Itoa(i) }

func notesString(n *string) string {
	if n == nil {
		return ""
	}
	return *n
}
