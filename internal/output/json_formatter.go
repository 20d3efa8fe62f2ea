package output

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rpgo/runway-calculator/internal/domain"
	money "github.com/rpgo/runway-calculator/pkg/decimal"
)

// JSONFormatter serializes the projections as pretty-printed JSON.
// Currency figures carry 2 decimal places and rates 4, written as plain JSON numbers.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	report := jsonReport{Currency: results.Currency, Results: make([]jsonResult, 0, len(results.Results))}
	for i := range results.Results {
		report.Results = append(report.Results, newJSONResult(&results.Results[i]))
	}
	return json.MarshalIndent(report, "", "  ")
}

// fixedNumber marshals a decimal as a bare number with a fixed number of places.
type fixedNumber struct {
	value  decimal.Decimal
	places int32
}

func (f fixedNumber) MarshalJSON() ([]byte, error) {
	return []byte(f.value.StringFixed(f.places)), nil
}

func currencyNumber(d decimal.Decimal) fixedNumber {
	return fixedNumber{value: money.Cents(d), places: money.CurrencyPlaces}
}

func rateNumber(d decimal.Decimal) fixedNumber {
	return fixedNumber{value: money.Rate(d), places: money.RatePlaces}
}

type jsonReport struct {
	Currency string       `json:"currency"`
	Results  []jsonResult `json:"results"`
}

type jsonAssumptions struct {
	InflationRate   fixedNumber            `json:"inflation_rate"`
	GrowthRates     map[string]fixedNumber `json:"growth_rates"`
	WithdrawalOrder []string               `json:"withdrawal_order"`
	KeepAssets      []string               `json:"keep_assets"`
}

type jsonYear struct {
	Year          int         `json:"year"`
	NetWorth      fixedNumber `json:"net_worth"`
	Assets        fixedNumber `json:"assets"`
	Debts         fixedNumber `json:"debts"`
	Expenses      fixedNumber `json:"expenses"`
	DebtPayments  fixedNumber `json:"debt_payments"`
	PassiveIncome fixedNumber `json:"passive_income"`
	Gap           fixedNumber `json:"gap"`
	Unfunded      fixedNumber `json:"unfunded"`
	Notes         *string     `json:"notes"`
}

type jsonResult struct {
	Name         string              `json:"name"`
	Currency     string              `json:"currency"`
	RunwayYears  int                 `json:"runway_years"`
	RunwayStatus domain.RunwayStatus `json:"runway_status"`
	Assumptions  jsonAssumptions     `json:"assumptions"`
	Projection   []jsonYear          `json:"projection"`
	Milestones   []domain.Milestone  `json:"milestones"`
}

func newJSONResult(r *domain.ProjectionResult) jsonResult {
	out := jsonResult{
		Name:         r.Name,
		Currency:     r.Currency,
		RunwayYears:  r.RunwayYears,
		RunwayStatus: r.RunwayStatus,
		Assumptions: jsonAssumptions{
			InflationRate:   rateNumber(r.Assumptions.Inflation()),
			GrowthRates:     make(map[string]fixedNumber, len(r.Assumptions.GrowthRates)),
			WithdrawalOrder: nonNilStrings(r.Assumptions.WithdrawalOrder),
			KeepAssets:      nonNilStrings(r.Assumptions.KeepAssets),
		},
		Projection: make([]jsonYear, 0, len(r.Projection)),
		Milestones: r.Milestones,
	}
	for name, rate := range r.Assumptions.GrowthRates {
		out.Assumptions.GrowthRates[name] = rateNumber(rate)
	}
	if out.Milestones == nil {
		out.Milestones = []domain.Milestone{}
	}
	for _, y := range r.Projection {
		out.Projection = append(out.Projection, jsonYear{
			Year:          y.Year,
			NetWorth:      currencyNumber(y.NetWorth),
			Assets:        currencyNumber(y.TotalAssets),
			Debts:         currencyNumber(y.TotalDebts),
			Expenses:      currencyNumber(y.Expenses),
			DebtPayments:  currencyNumber(y.DebtPayments),
			PassiveIncome: currencyNumber(y.PassiveIncome),
			Gap:           currencyNumber(y.Gap),
			Unfunded:      currencyNumber(y.Unfunded),
			Notes:         y.Notes,
		})
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
