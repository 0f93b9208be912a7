package services

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"salon-verifier/models"
	"salon-verifier/storage"
)

const (
	// StatusAll disables the status filter.
	StatusAll = "All"

	outputSuffix = "_verified_salons"
)

// Assemble lays the records out as the output table, header first.
func Assemble(records []models.VerificationRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, storage.OutputHeader)
	for _, r := range records {
		rows = append(rows, storage.RecordRow(r))
	}
	return rows
}

// FilterByStatus keeps records whose status equals status exactly.
// An empty status or StatusAll returns every record.
func FilterByStatus(records []models.VerificationRecord, status string) []models.VerificationRecord {
	if status == "" || status == StatusAll {
		return records
	}
	filtered := make([]models.VerificationRecord, 0, len(records))
	for _, r := range records {
		if string(r.Status) == status {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// StatusOptions returns "All" followed by each distinct status present,
// in first-seen order.
func StatusOptions(records []models.VerificationRecord) []string {
	options := []string{StatusAll}
	seen := make(map[models.Status]struct{})
	for _, r := range records {
		if _, ok := seen[r.Status]; ok {
			continue
		}
		seen[r.Status] = struct{}{}
		options = append(options, string(r.Status))
	}
	return options
}

// OutputFileName derives the artifact name from the input path:
// "salons.csv" becomes "salons_verified_salons.csv". The artifact is always CSV.
func OutputFileName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + outputSuffix + ".csv"
}

// RenderTable writes the records as a bordered table.
func RenderTable(w io.Writer, records []models.VerificationRecord) {
	rows := Assemble(records)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(rows[0]))
	for _, h := range rows[0] {
		header = append(header, h)
	}
	t.AppendHeader(header)

	for _, rec := range rows[1:] {
		row := make(table.Row, 0, len(rec))
		for _, c := range rec {
			row = append(row, c)
		}
		t.AppendRow(row)
	}

	t.Render()
}
