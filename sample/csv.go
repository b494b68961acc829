package sample

import (
	"bufio"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	IDColumn    string // Column name for group ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start

	// CompleteRows drops a row from every column when any requested
	// column is missing in it.
	CompleteRows bool
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads one column of a CSV file as a sample.
func LoadCSV(filename string, opts *CSVOptions) (*Sample, error) {
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

// LoadCSVFromReader loads one column of CSV data from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	samples, err := LoadCSVColumnsFromReader(r, opts, opts.ValueColumn)
	if err != nil {
		return nil, err
	}
	return samples[0], nil
}

// LoadCSVColumnsFromReader loads several value columns in a single pass
// over r. An empty column name selects the y, value or last column as
// LoadCSVFromReader does. Blank, NA and unparsable cells are skipped per
// column, unless opts.CompleteRows is set, in which case a row missing any
// of the columns is dropped from all of them so the samples stay aligned.
func LoadCSVColumnsFromReader(r io.Reader, opts *CSVOptions, columns ...string) ([]*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if len(columns) == 0 {
		columns = []string{opts.ValueColumn}
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	// -1 means the last column of each record
	indices := make([]int, len(columns))
	names := append([]string(nil), columns...)
	idIdx := -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i := range header {
			header[i] = strings.TrimSpace(strings.Trim(header[i], "\""))
			if opts.IDColumn != "" && header[i] == opts.IDColumn {
				idIdx = i
			}
		}
		for c, col := range columns {
			idx := headerIndex(header, col)
			if idx == -1 {
				if col != "" {
					return nil, invalidInput("column %q not found in header", col)
				}
				// Default to last column if not specified
				idx = len(header) - 1
			}
			indices[c] = idx
			names[c] = header[idx]
		}
	} else {
		if len(columns) > 1 {
			return nil, invalidInput("selecting %d columns needs a header row", len(columns))
		}
		indices[0] = -1
	}

	values := make([][]float64, len(columns))
	row := make([]float64, len(columns))
	present := make([]bool, len(columns))

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			id := strings.TrimSpace(strings.Trim(record[idIdx], "\""))
			if id != opts.IDFilter {
				continue
			}
		}

		complete := true
		for c, idx := range indices {
			if idx == -1 {
				idx = len(record) - 1
			}
			row[c], present[c] = parseCell(record, idx)
			complete = complete && present[c]
		}
		if opts.CompleteRows && !complete {
			continue
		}
		for c := range columns {
			if present[c] {
				values[c] = append(values[c], row[c])
			}
		}
	}

	samples := make([]*Sample, len(columns))
	for c := range columns {
		if len(values[c]) == 0 {
			if len(columns) == 1 {
				return nil, invalidInput("no valid data found in CSV")
			}
			return nil, invalidInput("no valid data found in CSV column %q", names[c])
		}
		samples[c] = NewNamed(names[c], values[c])
	}
	return samples, nil
}

func headerIndex(header []string, column string) int {
	for i, h := range header {
		if h == column || (column == "" && (h == "y" || h == "value" || h == "Value")) {
			return i
		}
	}
	return -1
}

// parseCell returns the value at record[idx] and whether it holds a number.
func parseCell(record []string, idx int) (float64, bool) {
	if idx < 0 || idx >= len(record) {
		return 0, false
	}
	valStr := strings.TrimSpace(strings.Trim(record[idx], "\""))
	if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
		return 0, false
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false // Skip invalid values
	}
	return val, true
}

// LoadCSVColumn loads a specific column from a CSV file as a sample.
func LoadCSVColumn(filename string, column string) (*Sample, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// SaveCSV writes the sample as a single CSV column headed by its name, or
// "value" when it has none.
func SaveCSV(w io.Writer, s *Sample) error {
	bw := bufio.NewWriter(w)

	header := s.Name
	if header == "" {
		header = "value"
	}
	if _, err := bw.WriteString(header + "\n"); err != nil {
		return err
	}

	for _, v := range s.Values {
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveCSVFile writes the sample to filename, see SaveCSV.
func SaveCSVFile(filename string, s *Sample) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return SaveCSV(file, s)
}
