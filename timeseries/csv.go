package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	XColumn   string // Column name for the time index (default: "year")
	YColumn   string // Column name for the measured value (default: "value")
	HasHeader bool   // Whether CSV has a header row (default: true)
	Delimiter rune   // Field delimiter (default: ',')
	SkipRows  int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		XColumn:   "year",
		YColumn:   "value",
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads an observation series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads an observation series from an io.Reader. Rows
// whose x or y field is empty or unparseable (NA, NaN, null) are skipped, so
// the returned series satisfies the engine's finite-value invariant.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	xIdx, yIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		xIdx, yIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.XColumn:
				xIdx = i
			case h == opts.YColumn:
				yIdx = i
			case xIdx == -1 && (h == "year" || h == "Year" || h == "x" || h == "ds"):
				xIdx = i
			case yIdx == -1 && (h == "value" || h == "Value" || h == "y"):
				yIdx = i
			}
		}
		if xIdx == -1 {
			xIdx = 0
		}
		if yIdx == -1 {
			// Default to last column when the value column is not named
			yIdx = len(header) - 1
		}
	}

	var xs, ys []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if xIdx >= len(record) || yIdx >= len(record) {
			continue
		}

		x, ok := parseField(record[xIdx])
		if !ok {
			continue
		}
		y, ok := parseField(record[yIdx])
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return New(xs, ys)
}

// parseField parses a numeric CSV field, reporting false for missing-value
// markers and unparseable text.
func parseField(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Trim(s, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SaveCSV saves an observation series to a CSV file with a year,value header.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("year,value\n")
	for i := range series.Y {
		writer.WriteString(strconv.FormatFloat(series.X[i], 'f', -1, 64))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(series.Y[i], 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}
