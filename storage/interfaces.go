package storage

import "salon-verifier/models"

// Table is raw tabular input: the header labels as they appear in the file
// and one slice of cells per data row. Rows may be shorter than Header.
type Table struct {
	Header []string
	Rows   [][]string
}

// TableReader is the interface any input format must satisfy.
type TableReader interface {
	Read(path string) (Table, error)
}

// RecordWriter is the interface for persisting the verification artifact.
type RecordWriter interface {
	WriteRecords(records []models.VerificationRecord) error
	Close() error
}
