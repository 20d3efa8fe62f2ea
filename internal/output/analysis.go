package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName    string
	RunwayYears     int
	RunwayStatus    domain.RunwayStatus
	FinalNetWorth   decimal.Decimal
	YearsVsFirst    int             // runway gained over the first listed scenario
	NetWorthVsFirst decimal.Decimal // final net worth difference to the first listed scenario
}

// AnalyzeScenarios picks the scenario with the longest runway. Equal runways are
// broken by the higher final net worth, then by input order.
func AnalyzeScenarios(results *domain.ProjectionComparison) Recommendation {
	if len(results.Results) == 0 {
		return Recommendation{}
	}
	type ranked struct {
		result *domain.ProjectionResult
		final  decimal.Decimal
	}
	ranks := make([]ranked, 0, len(results.Results))
	for i := range results.Results {
		r := &results.Results[i]
		final := decimal.Zero
		if rec := r.FinalRecord(); rec != nil {
			final = rec.NetWorth
		}
		ranks = append(ranks, ranked{r, final})
	}
	first := ranks[0]
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].result.RunwayYears != ranks[j].result.RunwayYears {
			return ranks[i].result.RunwayYears > ranks[j].result.RunwayYears
		}
		return ranks[i].final.GreaterThan(ranks[j].final)
	})
	best := ranks[0]
	return Recommendation{
		ScenarioName:    best.result.Name,
		RunwayYears:     best.result.RunwayYears,
		RunwayStatus:    best.result.RunwayStatus,
		FinalNetWorth:   best.final,
		YearsVsFirst:    best.result.RunwayYears - first.result.RunwayYears,
		NetWorthVsFirst: best.final.Sub(first.final),
	}
}
