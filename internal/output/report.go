package output

import (
	"github.com/rpgo/runway-calculator/internal/domain"
)

// GenerateReport writes results in the named format to a timestamped file in dir and returns
// the file names. "all" writes the console report and the detailed CSV.
func GenerateReport(results *domain.ProjectionComparison, dir, format string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, results, dir, Extension(f))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}
	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, results, dir, Extension(f))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}
