package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/runway-calculator/internal/calculation"
	"github.com/rpgo/runway-calculator/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, TOML or JSON file, chosen by extension.
// Anything other than .toml or .json is read as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, Format(filename))
}

// Format maps a filename to the input format name.
func Format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// Parse decodes and validates configuration bytes in the given format (yaml, toml or json).
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateSnapshot(&config.Snapshot); err != nil {
		return fmt.Errorf("snapshot validation failed: %w", err)
	}

	for i, scenario := range config.EffectiveScenarios() {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: %w: scenario name is required", i, calculation.ErrInvalidInput)
		}
		if err := ip.validateAssumptions(&scenario.Assumptions); err != nil {
			return fmt.Errorf("scenario %q assumptions validation failed: %w", scenario.Name, err)
		}
		if err := calculation.ValidateInputs(&config.Snapshot, &scenario.Assumptions); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}

	return nil
}

// validateSnapshot rejects figures the engine cannot simulate
func (ip *InputParser) validateSnapshot(snapshot *domain.Snapshot) error {
	if len(snapshot.Assets) == 0 {
		return fmt.Errorf("%w: at least one asset is required", calculation.ErrInvalidInput)
	}
	for _, asset := range snapshot.Assets {
		if asset.Balance.IsNegative() {
			return fmt.Errorf("%w: asset %q balance cannot be negative", calculation.ErrInvalidInput, asset.Name)
		}
	}
	for _, debt := range snapshot.Debts {
		if debt.Balance.IsNegative() {
			return fmt.Errorf("%w: debt %q balance cannot be negative", calculation.ErrInvalidInput, debt.Name)
		}
		if debt.AnnualRate.IsNegative() {
			return fmt.Errorf("%w: debt %q annual rate cannot be negative", calculation.ErrInvalidInput, debt.Name)
		}
		if debt.Balance.IsPositive() && !debt.MonthlyPayment.IsPositive() {
			return fmt.Errorf("%w: debt %q monthly payment must be positive while a balance is owed", calculation.ErrInvalidInput, debt.Name)
		}
	}
	if snapshot.AnnualExpenses.IsNegative() {
		return fmt.Errorf("%w: annual expenses cannot be negative", calculation.ErrInvalidInput)
	}
	if snapshot.AnnualPassiveIncome.IsNegative() {
		return fmt.Errorf("%w: annual passive income cannot be negative", calculation.ErrInvalidInput)
	}
	return nil
}

// validateAssumptions only guards against rates that break the compounding math;
// plausibility is the caller's judgment.
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	minusOne := decimal.NewFromInt(-1)
	if a.InflationRate != nil && a.InflationRate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("%w: inflation rate must be greater than -100%%", calculation.ErrInvalidInput)
	}
	for name, rate := range a.GrowthRates {
		if rate.LessThan(minusOne) {
			return fmt.Errorf("%w: growth rate for %q cannot be less than -100%%", calculation.ErrInvalidInput, name)
		}
	}
	return nil
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	inflation := decimal.NewFromFloat(0.035)
	stressed := decimal.NewFromFloat(0.06)
	yes := true

	return &domain.Configuration{
		Snapshot: domain.Snapshot{
			Currency: "USD",
			Assets: []domain.Asset{
				{Name: "Checking", Type: domain.AssetTypeCash, Balance: decimal.NewFromInt(25000)},
				{Name: "High-Yield Savings", Type: domain.AssetTypeDeposit, Balance: decimal.NewFromInt(60000)},
				{Name: "Treasury Ladder", Type: domain.AssetTypeBond, Balance: decimal.NewFromInt(80000)},
				{Name: "Total Market ETF", Type: domain.AssetTypeETF, Ticker: "VTI", Balance: decimal.NewFromInt(350000), GeneratesIncome: &yes},
				{Name: "Primary Residence", Type: domain.AssetTypeRealEstate, Balance: decimal.NewFromInt(450000)},
			},
			Debts: []domain.Debt{
				{Name: "Mortgage", Type: "mortgage", Balance: decimal.NewFromInt(280000), AnnualRate: decimal.NewFromFloat(0.06), MonthlyPayment: decimal.NewFromInt(1800)},
				{Name: "Car Loan", Type: "personal_loan", Balance: decimal.NewFromInt(4800), AnnualRate: decimal.Zero, MonthlyPayment: decimal.NewFromInt(400)},
			},
			AnnualPassiveIncome: decimal.NewFromInt(12000),
			AnnualExpenses:      decimal.NewFromInt(48000),
		},
		Scenarios: []domain.Scenario{
			{
				Name: "Base Case",
				Assumptions: domain.Assumptions{
					InflationRate: &inflation,
					GrowthRates: map[string]decimal.Decimal{
						"Checking":           decimal.Zero,
						"High-Yield Savings": decimal.NewFromFloat(0.02),
						"Treasury Ladder":    decimal.NewFromFloat(0.03),
						"Total Market ETF":   decimal.NewFromFloat(0.07),
						"Primary Residence":  decimal.NewFromFloat(0.03),
					},
					WithdrawalOrder: []string{"Checking", "High-Yield Savings", "Treasury Ladder", "Total Market ETF"},
					KeepAssets:      []string{"Primary Residence"},
				},
			},
			{
				Name: "High Inflation",
				Assumptions: domain.Assumptions{
					InflationRate: &stressed,
				},
			},
		},
	}
}
