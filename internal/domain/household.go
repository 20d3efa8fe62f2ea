package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetType classifies an asset for default growth and withdrawal ordering.
type AssetType string

const (
	AssetTypeCash       AssetType = "cash"
	AssetTypeDeposit    AssetType = "deposit"
	AssetTypeStock      AssetType = "stock"
	AssetTypeETF        AssetType = "etf"
	AssetTypeBond       AssetType = "bond"
	AssetTypeRealEstate AssetType = "real_estate"
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeOther      AssetType = "other"
)

// IsIncomeGenerating reports whether assets of this type pay dividends or coupons.
func (t AssetType) IsIncomeGenerating() bool {
	switch t {
	case AssetTypeStock, AssetTypeETF, AssetTypeBond:
		return true
	}
	return false
}

// Asset represents a single holding in the household snapshot
type Asset struct {
	Name    string          `yaml:"name" json:"name" toml:"name"`
	Type    AssetType       `yaml:"type,omitempty" json:"type,omitempty" toml:"type"`
	Ticker  string          `yaml:"ticker,omitempty" json:"ticker,omitempty" toml:"ticker"`
	Balance decimal.Decimal `yaml:"balance" json:"balance" toml:"balance"`

	// GeneratesIncome overrides the type-derived default when set.
	GeneratesIncome *bool `yaml:"generates_income,omitempty" json:"generates_income,omitempty" toml:"generates_income"`
}

// IncomeGenerating resolves the income flag for the asset.
func (a *Asset) IncomeGenerating() bool {
	if a.GeneratesIncome != nil {
		return *a.GeneratesIncome
	}
	return a.Type.IsIncomeGenerating()
}

// Debt represents an amortizing liability
type Debt struct {
	Name           string          `yaml:"name" json:"name" toml:"name"`
	Type           string          `yaml:"type,omitempty" json:"type,omitempty" toml:"type"` // mortgage, personal_loan, credit_card, ...
	Balance        decimal.Decimal `yaml:"balance" json:"balance" toml:"balance"`
	AnnualRate     decimal.Decimal `yaml:"annual_rate" json:"annual_rate" toml:"annual_rate"`
	MonthlyPayment decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment" toml:"monthly_payment"`
}

// AnnualPayment returns twelve monthly payments.
func (d *Debt) AnnualPayment() decimal.Decimal {
	return d.MonthlyPayment.Mul(decimal.NewFromInt(12))
}

// Snapshot is the household's financial position at year 0
type Snapshot struct {
	Currency            string          `yaml:"currency" json:"currency" toml:"currency"`
	Assets              []Asset         `yaml:"assets" json:"assets" toml:"assets"`
	Debts               []Debt          `yaml:"debts" json:"debts" toml:"debts"`
	AnnualPassiveIncome decimal.Decimal `yaml:"annual_passive_income" json:"annual_passive_income" toml:"annual_passive_income"`
	AnnualExpenses      decimal.Decimal `yaml:"annual_expenses" json:"annual_expenses" toml:"annual_expenses"`
}

// TotalAssets sums all asset balances.
func (s *Snapshot) TotalAssets() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Assets {
		total = total.Add(a.Balance)
	}
	return total
}

// TotalDebts sums all debt balances.
func (s *Snapshot) TotalDebts() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.Debts {
		total = total.Add(d.Balance)
	}
	return total
}

// NetWorth returns total assets less total debts.
func (s *Snapshot) NetWorth() decimal.Decimal {
	return s.TotalAssets().Sub(s.TotalDebts())
}

// Assumptions is the resolved economic and strategy input for a run.
// Empty fields are filled with type-based defaults before simulation.
type Assumptions struct {
	InflationRate   *decimal.Decimal           `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty" toml:"inflation_rate"`
	GrowthRates     map[string]decimal.Decimal `yaml:"growth_rates,omitempty" json:"growth_rates,omitempty" toml:"growth_rates"`
	WithdrawalOrder []string                   `yaml:"withdrawal_order,omitempty" json:"withdrawal_order,omitempty" toml:"withdrawal_order"`
	KeepAssets      []string                   `yaml:"keep_assets,omitempty" json:"keep_assets,omitempty" toml:"keep_assets"`
}

// Inflation returns the inflation rate or zero when unset.
func (a *Assumptions) Inflation() decimal.Decimal {
	if a.InflationRate == nil {
		return decimal.Zero
	}
	return *a.InflationRate
}

// Describe renders the assumptions as human readable lines.
func (a *Assumptions) Describe() []string {
	hundred := decimal.NewFromInt(100)
	lines := []string{
		fmt.Sprintf("Inflation: %s%% annually", a.Inflation().Mul(hundred).StringFixed(2)),
	}
	for _, name := range sortedKeys(a.GrowthRates) {
		lines = append(lines, fmt.Sprintf("Growth %s: %s%% annually", name, a.GrowthRates[name].Mul(hundred).StringFixed(2)))
	}
	if len(a.WithdrawalOrder) > 0 {
		lines = append(lines, "Withdrawal order: "+strings.Join(a.WithdrawalOrder, " -> "))
	}
	if len(a.KeepAssets) > 0 {
		lines = append(lines, "Never sold: "+strings.Join(a.KeepAssets, ", "))
	}
	return lines
}

// Scenario pairs a snapshot with one assumption set
type Scenario struct {
	Name        string      `yaml:"name" json:"name" toml:"name"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions" toml:"assumptions"`
}

// Configuration is the top-level input document
type Configuration struct {
	Snapshot    Snapshot    `yaml:"snapshot" json:"snapshot" toml:"snapshot"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions" toml:"assumptions"`
	Scenarios   []Scenario  `yaml:"scenarios,omitempty" json:"scenarios,omitempty" toml:"scenarios"`
}

// EffectiveScenarios returns the configured scenarios, or a single "Baseline"
// scenario built from the top-level assumptions when none are listed.
func (c *Configuration) EffectiveScenarios() []Scenario {
	if len(c.Scenarios) > 0 {
		return c.Scenarios
	}
	return []Scenario{{Name: "Baseline", Assumptions: c.Assumptions}}
}
