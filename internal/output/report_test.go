package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport_JSON_CSV(t *testing.T) {
	dir := t.TempDir()
	cmp := buildTestComparison()

	files, err := GenerateReport(cmp, dir, "json")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, dir, filepath.Dir(files[0]))
	assert.True(t, strings.HasPrefix(filepath.Base(files[0]), "runway_report_"))
	assert.True(t, strings.HasSuffix(files[0], ".json"))

	files, err = GenerateReport(cmp, dir, "csv-detailed")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0], ".csv"))
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Scenario,Year,"))
}

func TestGenerateReport_All(t *testing.T) {
	files, err := GenerateReport(buildTestComparison(), t.TempDir(), "all")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.True(t, strings.HasSuffix(files[0], ".txt"))
	assert.True(t, strings.HasSuffix(files[1], ".csv"))
}

func TestGenerateReport_UnknownFormat(t *testing.T) {
	_, err := GenerateReport(buildTestComparison(), t.TempDir(), "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteFormattedTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, WriteFormattedTo(ConsoleSummaryFormatter{}, buildTestComparison(), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "RUNWAY SUMMARY")
}
