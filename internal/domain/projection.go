package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RunwayStatus is the terminal classification of a projection
type RunwayStatus string

const (
	RunwayInfinite RunwayStatus = "infinite"
	RunwayFinite   RunwayStatus = "finite"
	RunwayCritical RunwayStatus = "critical"
)

// YearRecord is one row of the projection. Rows are never mutated once appended.
type YearRecord struct {
	Year          int             `json:"year"`
	NetWorth      decimal.Decimal `json:"net_worth"`
	TotalAssets   decimal.Decimal `json:"assets"`
	TotalDebts    decimal.Decimal `json:"debts"`
	Expenses      decimal.Decimal `json:"expenses"`
	DebtPayments  decimal.Decimal `json:"debt_payments"`
	PassiveIncome decimal.Decimal `json:"passive_income"`
	Gap           decimal.Decimal `json:"gap"`
	Unfunded      decimal.Decimal `json:"unfunded"` // cumulative gap no eligible asset could cover
	Notes         *string         `json:"notes"`
}

// IsDepleted returns true when net worth is zero or negative
func (yr *YearRecord) IsDepleted() bool {
	return yr.NetWorth.LessThanOrEqual(decimal.Zero)
}

// Milestone is a dated event observed during the simulation
type Milestone struct {
	Year   int    `json:"year"`
	Event  string `json:"event"`
	Impact string `json:"impact"`
}

// ProjectionResult is the complete output of one runway run
type ProjectionResult struct {
	Name         string       `json:"name,omitempty"`
	Currency     string       `json:"currency"`
	Assumptions  Assumptions  `json:"assumptions"`
	Projection   []YearRecord `json:"projection"`
	Milestones   []Milestone  `json:"milestones"`
	RunwayYears  int          `json:"runway_years"`
	RunwayStatus RunwayStatus `json:"runway_status"`
}

// FinalRecord returns the last projection row, or nil for an empty projection.
func (pr *ProjectionResult) FinalRecord() *YearRecord {
	if len(pr.Projection) == 0 {
		return nil
	}
	return &pr.Projection[len(pr.Projection)-1]
}

// ProjectionComparison groups the results of every scenario in an input file
type ProjectionComparison struct {
	Currency string             `json:"currency"`
	Results  []ProjectionResult `json:"results"`
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
