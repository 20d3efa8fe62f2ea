package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// ConsoleSummaryFormatter provides a concise one-line-per-scenario summary.
type ConsoleSummaryFormatter struct{}

func (c ConsoleSummaryFormatter) Name() string { return "console-lite" }

func (c ConsoleSummaryFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RUNWAY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range results.Results {
		fmt.Fprintf(&buf, "%s: Runway=%s Status=%s", sc.Name, FormatRunway(sc.RunwayYears, sc.RunwayStatus), sc.RunwayStatus)
		if final := sc.FinalRecord(); final != nil {
			fmt.Fprintf(&buf, " FinalNetWorth=%s", FormatCurrency(final.NetWorth, sc.Currency))
		}
		fmt.Fprintf(&buf, " Milestones=%d\n", len(sc.Milestones))
	}
	rec := AnalyzeScenarios(results)
	if len(results.Results) > 1 && rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%+d years, Δ %s)\n", rec.ScenarioName, rec.YearsVsFirst, FormatCurrency(rec.NetWorthVsFirst, results.Currency))
	}
	return buf.Bytes(), nil
}
