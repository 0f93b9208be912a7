package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVReader reads comma-separated listings.
type CSVReader struct{}

// Read opens path and parses it as CSV.
func (CSVReader) Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV parses CSV from r. Ragged rows are accepted; a UTF-8 BOM on the
// first header cell is stripped.
func ParseCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("csv: parse: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = trimBOM(records[0][0])
	}
	return tableFromRows(records)
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
