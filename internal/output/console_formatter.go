package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// ConsoleFormatter renders the full runway report: assumptions, the yearly table and milestones per scenario.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 120)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "FINANCIAL RUNWAY PROJECTION")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	for i := range results.Results {
		writeScenario(&buf, i+1, &results.Results[i])
	}

	if len(results.Results) > 1 {
		writeComparison(&buf, results)
	}
	return buf.Bytes(), nil
}

func writeScenario(w io.Writer, n int, sc *domain.ProjectionResult) {
	fmt.Fprintf(w, "SCENARIO %d: %s\n", n, sc.Name)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Runway: %s (%s)\n", FormatRunway(sc.RunwayYears, sc.RunwayStatus), sc.RunwayStatus)
	if len(sc.Projection) > 0 {
		fmt.Fprintf(w, "Starting net worth: %s\n", FormatCurrency(sc.Projection[0].NetWorth, sc.Currency))
		fmt.Fprintf(w, "Final net worth:    %s (year %d)\n", FormatCurrency(sc.FinalRecord().NetWorth, sc.Currency), sc.FinalRecord().Year)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "KEY ASSUMPTIONS:")
	for _, line := range sc.Assumptions.Describe() {
		fmt.Fprintf(w, "• %s\n", line)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "YEAR-BY-YEAR PROJECTION:")
	fmt.Fprintf(w, "%-5s %18s %18s %16s %14s %14s %14s %14s  %s\n",
		"Year", "Net Worth", "Assets", "Debts", "Expenses", "Debt Pmts", "Passive", "Gap", "Notes")
	fmt.Fprintln(w, strings.Repeat("-", 120))
	for _, y := range sc.Projection {
		fmt.Fprintf(w, "%-5d %18s %18s %16s %14s %14s %14s %14s  %s\n",
			y.Year,
			FormatCurrency(y.NetWorth, sc.Currency),
			FormatCurrency(y.TotalAssets, sc.Currency),
			FormatCurrency(y.TotalDebts, sc.Currency),
			FormatCurrency(y.Expenses, sc.Currency),
			FormatCurrency(y.DebtPayments, sc.Currency),
			FormatCurrency(y.PassiveIncome, sc.Currency),
			FormatCurrency(y.Gap, sc.Currency),
			notesString(y.Notes),
		)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "MILESTONES:")
	if len(sc.Milestones) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, m := range sc.Milestones {
		if m.Impact == "" {
			fmt.Fprintf(w, "  Year %3d: %s\n", m.Year, m.Event)
			continue
		}
		fmt.Fprintf(w, "  Year %3d: %s (%s)\n", m.Year, m.Event, m.Impact)
	}
	fmt.Fprintln(w)
}

func writeComparison(w io.Writer, results *domain.ProjectionComparison) {
	fmt.Fprintln(w, "SCENARIO COMPARISON")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "%-28s %14s %10s %20s\n", "Scenario", "Runway", "Status", "Final Net Worth")
	for i := range results.Results {
		sc := &results.Results[i]
		final := ""
		if rec := sc.FinalRecord(); rec != nil {
			final = FormatCurrency(rec.NetWorth, sc.Currency)
		}
		fmt.Fprintf(w, "%-28s %14s %10s %20s\n", sc.Name, FormatRunway(sc.RunwayYears, sc.RunwayStatus), sc.RunwayStatus, final)
	}
	rec := AnalyzeScenarios(results)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Recommended: %s (%+d years vs %s)\n", rec.ScenarioName, rec.YearsVsFirst, results.Results[0].Name)
}
