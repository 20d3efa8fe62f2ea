package calculation

import (
	"fmt"
	"sort"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultInflationRate applies when no inflation rate is supplied.
var DefaultInflationRate = decimal.NewFromFloat(0.04)

var defaultGrowthRates = map[domain.AssetType]decimal.Decimal{
	domain.AssetTypeCash:       decimal.Zero,
	domain.AssetTypeDeposit:    decimal.NewFromFloat(0.02),
	domain.AssetTypeStock:      decimal.NewFromFloat(0.07),
	domain.AssetTypeETF:        decimal.NewFromFloat(0.07),
	domain.AssetTypeBond:       decimal.NewFromFloat(0.03),
	domain.AssetTypeRealEstate: decimal.NewFromFloat(0.03),
	domain.AssetTypeCrypto:     decimal.Zero,
}

// withdrawal priority by type: most liquid and lowest-yield first
var withdrawalPriority = map[domain.AssetType]int{
	domain.AssetTypeCash:    0,
	domain.AssetTypeDeposit: 1,
	domain.AssetTypeBond:    2,
	domain.AssetTypeETF:     3,
	domain.AssetTypeStock:   4,
	domain.AssetTypeCrypto:  5,
	domain.AssetTypeOther:   6,
}

// DefaultGrowthRate returns the long-run growth assumption for an asset type.
func DefaultGrowthRate(t domain.AssetType) decimal.Decimal {
	if rate, ok := defaultGrowthRates[t]; ok {
		return rate
	}
	return decimal.Zero
}

// ResolveAssumptions fills every unset field of a with a default derived from the snapshot.
// Supplied values are kept as-is; the inputs are not modified.
func ResolveAssumptions(snapshot *domain.Snapshot, a domain.Assumptions) domain.Assumptions {
	resolved := domain.Assumptions{
		WithdrawalOrder: a.WithdrawalOrder,
		KeepAssets:      a.KeepAssets,
	}

	inflation := DefaultInflationRate
	if a.InflationRate != nil {
		inflation = *a.InflationRate
	}
	resolved.InflationRate = &inflation

	resolved.GrowthRates = make(map[string]decimal.Decimal, len(snapshot.Assets))
	for _, asset := range snapshot.Assets {
		if rate, ok := a.GrowthRates[asset.Name]; ok {
			resolved.GrowthRates[asset.Name] = rate
			continue
		}
		resolved.GrowthRates[asset.Name] = DefaultGrowthRate(asset.Type)
	}

	// real estate is illiquid
	if resolved.KeepAssets == nil {
		resolved.KeepAssets = []string{}
		for _, asset := range snapshot.Assets {
			if asset.Type == domain.AssetTypeRealEstate {
				resolved.KeepAssets = append(resolved.KeepAssets, asset.Name)
			}
		}
	}

	if resolved.WithdrawalOrder == nil {
		keep := make(map[string]bool, len(resolved.KeepAssets))
		for _, name := range resolved.KeepAssets {
			keep[name] = true
		}
		candidates := make([]domain.Asset, 0, len(snapshot.Assets))
		for _, asset := range snapshot.Assets {
			if keep[asset.Name] || asset.Type == domain.AssetTypeRealEstate {
				continue
			}
			candidates = append(candidates, asset)
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return priorityOf(candidates[i].Type) < priorityOf(candidates[j].Type)
		})
		resolved.WithdrawalOrder = make([]string, 0, len(candidates))
		for _, asset := range candidates {
			resolved.WithdrawalOrder = append(resolved.WithdrawalOrder, asset.Name)
		}
	}

	return resolved
}

func priorityOf(t domain.AssetType) int {
	if p, ok := withdrawalPriority[t]; ok {
		return p
	}
	return withdrawalPriority[domain.AssetTypeOther]
}

// ValidateInputs performs the structural checks that must pass before a run:
// unique asset and debt names, and every name referenced by the assumptions must exist.
// Economic plausibility is not checked.
func ValidateInputs(snapshot *domain.Snapshot, a *domain.Assumptions) error {
	assets := make(map[string]bool, len(snapshot.Assets))
	for i, asset := range snapshot.Assets {
		if asset.Name == "" {
			return fmt.Errorf("%w: asset %d has no name", ErrInvalidInput, i)
		}
		if assets[asset.Name] {
			return fmt.Errorf("%w: asset %q", ErrDuplicateName, asset.Name)
		}
		assets[asset.Name] = true
	}

	debts := make(map[string]bool, len(snapshot.Debts))
	for i, debt := range snapshot.Debts {
		if debt.Name == "" {
			return fmt.Errorf("%w: debt %d has no name", ErrInvalidInput, i)
		}
		if debts[debt.Name] {
			return fmt.Errorf("%w: debt %q", ErrDuplicateName, debt.Name)
		}
		debts[debt.Name] = true
	}

	seen := make(map[string]bool, len(a.WithdrawalOrder))
	for _, name := range a.WithdrawalOrder {
		if !assets[name] {
			return fmt.Errorf("%w: withdrawal order names unknown asset %q", ErrInvalidReference, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: withdrawal order lists %q more than once", ErrDuplicateName, name)
		}
		seen[name] = true
	}
	for _, name := range a.KeepAssets {
		if !assets[name] {
			return fmt.Errorf("%w: keep assets names unknown asset %q", ErrInvalidReference, name)
		}
	}
	names := make([]string, 0, len(a.GrowthRates))
	for name := range a.GrowthRates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !assets[name] {
			return fmt.Errorf("%w: growth rate given for unknown asset %q", ErrInvalidReference, name)
		}
	}
	return nil
}
