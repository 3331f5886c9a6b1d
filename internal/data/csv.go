// Package data loads OHLC bar series from local files for the CLI runner.
package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zenithalgo/zenith-go/internal/models"
)

// LoadBarsCSV reads bars from a CSV file with a
// timestamp,open,high,low,close header. Rows must be in chronological
// order; each bar is validated before being appended.
func LoadBarsCSV(path string) ([]models.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bar file: %w", err)
	}
	defer f.Close()

	return ReadBars(f)
}

// ReadBars parses CSV bar rows from a reader. The first row is expected to
// be a header and is skipped.
func ReadBars(r io.Reader) ([]models.Bar, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse bar csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	bars := make([]models.Bar, 0, len(records)-1)
	var lastTs int64
	for i, rec := range records[1:] {
		bar, err := parseBar(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := bar.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if len(bars) > 0 && bar.Timestamp <= lastTs {
			return nil, fmt.Errorf("row %d: timestamps must be strictly increasing", i+2)
		}
		lastTs = bar.Timestamp
		bars = append(bars, bar)
	}
	return bars, nil
}

func parseBar(rec []string) (models.Bar, error) {
	ts, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return models.Bar{}, fmt.Errorf("invalid timestamp %q", rec[0])
	}

	prices := make([]float64, 4)
	for i, field := range rec[1:5] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return models.Bar{}, fmt.Errorf("invalid price %q", field)
		}
		prices[i] = v
	}

	return models.Bar{
		Timestamp: ts,
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
	}, nil
}

// Split decomposes bars into the aligned column series the indicator layer
// and simulator consume.
func Split(bars []models.Bar) (ts []int64, open, high, low, close []float64) {
	n := len(bars)
	ts = make([]int64, n)
	open = make([]float64, n)
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)
	for i, b := range bars {
		ts[i] = b.Timestamp
		open[i] = b.Open
		high[i] = b.High
		low[i] = b.Low
		close[i] = b.Close
	}
	return ts, open, high, low, close
}
