package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("input has no header row")
	// ErrUnsupportedFormat is returned for input extensions with no reader.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// ReaderFor picks a TableReader by file extension.
func ReaderFor(path string) (TableReader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSVReader{}, nil
	case ".xlsx":
		return XLSXReader{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// ReadTable reads the listings file at path with the matching reader.
func ReadTable(path string) (Table, error) {
	r, err := ReaderFor(path)
	if err != nil {
		return Table{}, err
	}
	return r.Read(path)
}

func tableFromRows(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, ErrEmptyInput
	}
	t := Table{Header: records[0], Rows: make([][]string, 0, len(records)-1)}
	t.Rows = append(t.Rows, records[1:]...)
	return t, nil
}
