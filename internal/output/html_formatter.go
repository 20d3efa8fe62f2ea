package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a net worth chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"runway": FormatRunway,
	"notes":  notesString,
	"add":    func(i, j int) int { return i + j },
	"json":   scriptJSON,
}).Parse(htmlTemplateSource))

// scriptJSON encodes v for an inline script. Encoding failures abort template execution.
func scriptJSON(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// chartSeries is the per-scenario data the inline chart script plots.
type chartSeries struct {
	Name     string    `json:"name"`
	Years    []int     `json:"years"`
	NetWorth []float64 `json:"net_worth"`
}

func (h HTMLFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	var buf bytes.Buffer
	series := make([]chartSeries, 0, len(results.Results))
	for _, sc := range results.Results {
		s := chartSeries{Name: sc.Name}
		for _, y := range sc.Projection {
			s.Years = append(s.Years, y.Year)
			s.NetWorth = append(s.NetWorth, y.NetWorth.InexactFloat64())
		}
		series = append(series, s)
	}

	data := struct {
		*domain.ProjectionComparison
		Recommendation Recommendation
		ShowCompare    bool
		Series         []chartSeries
	}{results, AnalyzeScenarios(results), len(results.Results) > 1, series}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
