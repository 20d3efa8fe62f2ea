package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw annual projection per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "NetWorth", "Assets", "Debts", "Expenses", "DebtPayments", "PassiveIncome", "Gap", "Unfunded", "Notes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Results {
		for _, yr := range sc.Projection {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				yr.NetWorth.StringFixed(2),
				yr.TotalAssets.StringFixed(2),
				yr.TotalDebts.StringFixed(2),
				yr.Expenses.StringFixed(2),
				yr.DebtPayments.StringFixed(2),
				yr.PassiveIncome.StringFixed(2),
				yr.Gap.StringFixed(2),
				yr.Unfunded.StringFixed(2),
				notesString(yr.Notes),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
