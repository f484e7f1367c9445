package fs

import (
	"os"
	"strings"

	"github.com/bft-labs/crtools/internal/bmson"
	"github.com/bft-labs/crtools/internal/domain"
)

// ChartReader implements ports.ChartReader with the bmson parser.
type ChartReader struct {
	fallbackCharset string
}

// NewChartReader creates a reader that decodes non-UTF-8 charts with fallbackCharset.
func NewChartReader(fallbackCharset string) *ChartReader {
	return &ChartReader{fallbackCharset: fallbackCharset}
}

// ReadChart implements ports.ChartReader.
func (r *ChartReader) ReadChart(path string) (domain.Chart, error) {
	chart, err := bmson.ReadFile(path, r.fallbackCharset)
	if err != nil {
		return domain.Chart{}, err
	}
	return chart.Metadata(""), nil
}

// ListCharts implements ports.ChartReader.
func (r *ChartReader) ListCharts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), bmson.Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
