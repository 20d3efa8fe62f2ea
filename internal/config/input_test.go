package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/runway-calculator/internal/calculation"
	"github.com/rpgo/runway-calculator/internal/domain"
)

const validYAML = `snapshot:
  currency: USD
  assets:
    - name: savings
      type: cash
      balance: 120000
    - name: index fund
      type: etf
      ticker: VTI
      balance: 80000.50
    - name: home
      type: real_estate
      balance: 300000
  debts:
    - name: car loan
      balance: 4800
      annual_rate: 0
      monthly_payment: 400
  annual_passive_income: 2000
  annual_expenses: 12000
assumptions:
  inflation_rate: 0.025
  growth_rates:
    savings: 0
    index fund: 0.07
  withdrawal_order: [savings, index fund]
  keep_assets: [home]
`

const validTOML = `[snapshot]
currency = "EUR"
annual_passive_income = 0
annual_expenses = 24000

[[snapshot.assets]]
name = "savings"
type = "deposit"
balance = 50000

[[snapshot.assets]]
name = "bonds"
type = "bond"
balance = 20000
generates_income = false

[[scenarios]]
name = "Cautious"

[scenarios.assumptions]
inflation_rate = 0.03
withdrawal_order = ["savings", "bonds"]

[scenarios.assumptions.growth_rates]
savings = 0.01
`

const validJSON = `{
  "snapshot": {
    "currency": "USD",
    "assets": [{"name": "cash", "type": "cash", "balance": 5000}],
    "debts": [],
    "annual_passive_income": 0,
    "annual_expenses": 1000
  },
  "assumptions": {"inflation_rate": 0.02, "withdrawal_order": ["cash"]}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "input.yaml", validYAML))
	require.NoError(t, err)

	require.Len(t, config.Snapshot.Assets, 3)
	assert.Equal(t, "index fund", config.Snapshot.Assets[1].Name)
	assert.Equal(t, domain.AssetTypeETF, config.Snapshot.Assets[1].Type)
	assert.True(t, config.Snapshot.Assets[1].Balance.Equal(decimal.RequireFromString("80000.50")))
	assert.True(t, config.Snapshot.Assets[1].IncomeGenerating())
	require.Len(t, config.Snapshot.Debts, 1)
	assert.True(t, config.Snapshot.Debts[0].MonthlyPayment.Equal(decimal.NewFromInt(400)))

	require.NotNil(t, config.Assumptions.InflationRate)
	assert.True(t, config.Assumptions.InflationRate.Equal(decimal.RequireFromString("0.025")))
	assert.Equal(t, []string{"savings", "index fund"}, config.Assumptions.WithdrawalOrder)
	assert.Equal(t, []string{"home"}, config.Assumptions.KeepAssets)

	scenarios := config.EffectiveScenarios()
	require.Len(t, scenarios, 1)
	assert.Equal(t, "Baseline", scenarios[0].Name)
}

func TestLoadFromFile_TOML(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "input.toml", validTOML))
	require.NoError(t, err)

	assert.Equal(t, "EUR", config.Snapshot.Currency)
	require.Len(t, config.Snapshot.Assets, 2)
	assert.False(t, config.Snapshot.Assets[1].IncomeGenerating(), "explicit generates_income overrides the bond default")
	require.Len(t, config.Scenarios, 1)
	assert.Equal(t, "Cautious", config.Scenarios[0].Name)
	assert.True(t, config.Scenarios[0].Assumptions.GrowthRates["savings"].Equal(decimal.RequireFromString("0.01")))
	assert.True(t, config.Scenarios[0].Assumptions.InflationRate.Equal(decimal.RequireFromString("0.03")))
}

func TestLoadFromFile_JSON(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "input.json", validJSON))
	require.NoError(t, err)
	assert.True(t, config.Snapshot.AnnualExpenses.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, []string{"cash"}, config.Assumptions.WithdrawalOrder)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
snapshot:
	assets:
		- name: "cash"
`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.yaml", testConfig))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.toml", "[snapshot\nbroken"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "yaml", Format("input.yaml"))
	assert.Equal(t, "yaml", Format("input.yml"))
	assert.Equal(t, "yaml", Format("input"))
	assert.Equal(t, "toml", Format("INPUT.TOML"))
	assert.Equal(t, "json", Format("dir/input.json"))
}

func createValidTestConfiguration() *domain.Configuration {
	return NewInputParser().CreateExampleConfiguration()
}

func TestValidateConfiguration_Success(t *testing.T) {
	err := NewInputParser().ValidateConfiguration(createValidTestConfiguration())
	assert.NoError(t, err)
}

func TestValidateConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *domain.Configuration)
		expected error
		message  string
	}{
		{
			name:     "no assets",
			mutate:   func(c *domain.Configuration) { c.Snapshot.Assets = nil },
			expected: calculation.ErrInvalidInput,
			message:  "at least one asset",
		},
		{
			name:     "negative asset balance",
			mutate:   func(c *domain.Configuration) { c.Snapshot.Assets[0].Balance = decimal.NewFromInt(-1) },
			expected: calculation.ErrInvalidInput,
			message:  "balance cannot be negative",
		},
		{
			name:     "debt without payment",
			mutate:   func(c *domain.Configuration) { c.Snapshot.Debts[0].MonthlyPayment = decimal.Zero },
			expected: calculation.ErrInvalidInput,
			message:  "monthly payment must be positive",
		},
		{
			name:     "negative rate",
			mutate:   func(c *domain.Configuration) { c.Snapshot.Debts[0].AnnualRate = decimal.NewFromFloat(-0.01) },
			expected: calculation.ErrInvalidInput,
			message:  "annual rate cannot be negative",
		},
		{
			name:     "negative expenses",
			mutate:   func(c *domain.Configuration) { c.Snapshot.AnnualExpenses = decimal.NewFromInt(-5) },
			expected: calculation.ErrInvalidInput,
			message:  "annual expenses",
		},
		{
			name: "duplicate asset name",
			mutate: func(c *domain.Configuration) {
				c.Snapshot.Assets = append(c.Snapshot.Assets, c.Snapshot.Assets[0])
			},
			expected: calculation.ErrDuplicateName,
			message:  `"Checking"`,
		},
		{
			name: "duplicate debt name",
			mutate: func(c *domain.Configuration) {
				c.Snapshot.Debts = append(c.Snapshot.Debts, c.Snapshot.Debts[0])
			},
			expected: calculation.ErrDuplicateName,
			message:  `"Mortgage"`,
		},
		{
			name: "unknown withdrawal asset",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].Assumptions.WithdrawalOrder = append(c.Scenarios[0].Assumptions.WithdrawalOrder, "Gold Bars")
			},
			expected: calculation.ErrInvalidReference,
			message:  `scenario "Base Case"`,
		},
		{
			name:     "unknown keep asset",
			mutate:   func(c *domain.Configuration) { c.Scenarios[1].Assumptions.KeepAssets = []string{"Boat"} },
			expected: calculation.ErrInvalidReference,
			message:  `scenario "High Inflation"`,
		},
		{
			name:     "unnamed scenario",
			mutate:   func(c *domain.Configuration) { c.Scenarios[1].Name = "" },
			expected: calculation.ErrInvalidInput,
			message:  "scenario name is required",
		},
		{
			name: "inflation at -100%",
			mutate: func(c *domain.Configuration) {
				r := decimal.NewFromInt(-1)
				c.Scenarios[0].Assumptions.InflationRate = &r
			},
			expected: calculation.ErrInvalidInput,
			message:  "inflation rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidTestConfiguration()
			tt.mutate(config)
			err := NewInputParser().ValidateConfiguration(config)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, SaveConfiguration(example, path))
	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, loaded.Scenarios, 2)
	assert.Equal(t, example.Scenarios[0].Assumptions.WithdrawalOrder, loaded.Scenarios[0].Assumptions.WithdrawalOrder)
	assert.True(t, loaded.Snapshot.Debts[0].Balance.Equal(decimal.NewFromInt(280000)))
	assert.True(t, loaded.Scenarios[1].Assumptions.InflationRate.Equal(decimal.NewFromFloat(0.06)))
	assert.True(t, *loaded.Snapshot.Assets[3].GeneratesIncome)
}
