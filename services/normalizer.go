package services

import (
	"errors"
	"fmt"
	"strings"

	"salon-verifier/models"
	"salon-verifier/storage"
	"salon-verifier/utils"
)

// Canonical column names after normalization.
const (
	ColumnBusinessName = "business name"
	ColumnAddress      = "address"
	ColumnCity         = "city"
)

var columnRenames = map[string]string{
	"title":          ColumnBusinessName,
	"google address": ColumnAddress,
	"location":       ColumnCity,
}

// ErrMissingColumn is wrapped by InputShapeError.
var ErrMissingColumn = errors.New("missing column")

// InputShapeError reports a required column absent after normalization.
type InputShapeError struct {
	Column  string
	Columns []string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("input: %s %q (have %s)", ErrMissingColumn, e.Column, strings.Join(e.Columns, ", "))
}

func (e *InputShapeError) Unwrap() error {
	return ErrMissingColumn
}

// Normalizer turns raw tabular input into InputRows.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// NormalizeHeader trims and lower-cases a column label and applies the
// canonical renames. Unrecognized labels pass through lower-cased.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if renamed, ok := columnRenames[h]; ok {
		return renamed
	}
	return h
}

// Normalize maps every data row to an InputRow. Missing cells become "".
// The business name and city columns are required; address is optional.
func (n *Normalizer) Normalize(t storage.Table) ([]models.InputRow, error) {
	index := make(map[string]int, len(t.Header))
	columns := make([]string, 0, len(t.Header))
	for i, h := range t.Header {
		name := NormalizeHeader(h)
		columns = append(columns, name)
		if _, dup := index[name]; dup {
			n.logger.Warn("[normalizer] Duplicate column %q at position %d ignored", name, i+1)
			continue
		}
		index[name] = i
	}

	for _, required := range []string{ColumnBusinessName, ColumnCity} {
		if _, ok := index[required]; !ok {
			return nil, &InputShapeError{Column: required, Columns: columns}
		}
	}

	rows := make([]models.InputRow, 0, len(t.Rows))
	for _, rec := range t.Rows {
		rows = append(rows, models.InputRow{
			BusinessName: cell(rec, index, ColumnBusinessName),
			Address:      cell(rec, index, ColumnAddress),
			City:         cell(rec, index, ColumnCity),
		})
	}

	n.logger.Info("[normalizer] Normalized %d rows (%d columns)", len(rows), len(columns))
	return rows, nil
}

// missingTokens are cell values that spreadsheet exports use for an empty
// cell. They read as missing, so the output carries an empty string.
var missingTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func cell(rec []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(rec) {
		return ""
	}
	if _, missing := missingTokens[rec[i]]; missing {
		return ""
	}
	return rec[i]
}
