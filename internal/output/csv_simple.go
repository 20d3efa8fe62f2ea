package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ProjectionComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "RunwayYears", "RunwayStatus", "StartingNetWorth", "FinalYear", "FinalNetWorth", "FinalAssets", "FinalDebts", "FinalUnfunded", "Milestones"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Results {
		row := []string{sc.Name, intToString(sc.RunwayYears), string(sc.RunwayStatus)}
		if len(sc.Projection) > 0 {
			final := sc.FinalRecord()
			row = append(row,
				sc.Projection[0].NetWorth.StringFixed(2),
				intToString(final.Year),
				final.NetWorth.StringFixed(2),
				final.TotalAssets.StringFixed(2),
				final.TotalDebts.StringFixed(2),
				final.Unfunded.StringFixed(2),
			)
		} else {
			row = append(row, "", "", "", "", "", "")
		}
		row = append(row, intToString(len(sc.Milestones)))
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
