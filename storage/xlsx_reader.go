package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads listings from the first sheet of a workbook.
type XLSXReader struct{}

// Read opens path and parses it as an .xlsx workbook.
func (XLSXReader) Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("xlsx: open %q: %w", path, err)
	}
	defer f.Close()

	return ParseXLSX(f)
}

// ParseXLSX parses the first sheet of the workbook in r.
func ParseXLSX(r io.Reader) (Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("xlsx: open workbook: %w", err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, ErrEmptyInput
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("xlsx: read sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(rows)
}
