package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"salon-verifier/models"
)

// OutputHeader is the fixed column set of the verification artifact.
var OutputHeader = []string{
	"Business Name", "City", "Verification Status", "Found On", "Platform Count",
	"Yelp URL", "Instagram URL", "Vagaro URL", "StyleSeat URL", "Verified At",
}

var _ RecordWriter = (*CSVWriter)(nil)

// CSVWriter writes verification records to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(OutputHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteRecords appends one row per record, in order.
func (c *CSVWriter) WriteRecords(records []models.VerificationRecord) error {
	for _, r := range records {
		if err := c.writer.Write(RecordRow(r)); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		_ = c.file.Close()
		return fmt.Errorf("csv: flush: %w", err)
	}
	if err := c.file.Close(); err != nil {
		return fmt.Errorf("csv: close: %w", err)
	}
	return nil
}

// RecordRow renders one record in OutputHeader column order.
func RecordRow(r models.VerificationRecord) []string {
	return []string{
		r.BusinessName,
		r.City,
		string(r.Status),
		r.FoundOnString(),
		strconv.Itoa(r.PlatformCount()),
		r.Matches.Yelp,
		r.Matches.Instagram,
		r.Matches.Vagaro,
		r.Matches.StyleSeat,
		r.VerifiedAt,
	}
}
