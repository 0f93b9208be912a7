package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCSVRaggedRows(t *testing.T) {
	in := "Title,Google Address,Location\n" +
		"Luxe Cuts,123 Main St,Austin\n" +
		"Short Row\n"

	tbl, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(tbl.Header) != 3 {
		t.Errorf("header len: got %d, want 3", len(tbl.Header))
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(tbl.Rows))
	}
	if len(tbl.Rows[1]) != 1 {
		t.Errorf("ragged row len: got %d, want 1", len(tbl.Rows[1]))
	}
}

func TestParseCSVStripsBOM(t *testing.T) {
	tbl, err := ParseCSV(strings.NewReader("\ufeffTitle,Location\nA,B\n"))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if tbl.Header[0] != "Title" {
		t.Errorf("header[0]: got %q, want %q", tbl.Header[0], "Title")
	}
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	tbl, err := ParseCSV(strings.NewReader("Title,Google Address,Location\n"))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(tbl.Rows) != 0 {
		t.Errorf("rows: got %d, want 0", len(tbl.Rows))
	}
}

func TestReadTableByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "salons.csv")
	if err := os.WriteFile(path, []byte("Title,Location\nLuxe Cuts,Austin\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0][0] != "Luxe Cuts" {
		t.Errorf("unexpected rows: %v", tbl.Rows)
	}
}

func TestReaderForUnsupported(t *testing.T) {
	_, err := ReaderFor("salons.json")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
