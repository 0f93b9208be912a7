package services

import (
	"bytes"
	"strings"
	"testing"

	"salon-verifier/models"
)

func sampleRecords() []models.VerificationRecord {
	return []models.VerificationRecord{
		{
			BusinessName: "Luxe Cuts", City: "Austin", Status: models.StatusVerified,
			FoundOn:    []models.Platform{models.PlatformYelp},
			Matches:    models.PlatformMatches{Yelp: "https://yelp.com/biz/luxe-cuts"},
			VerifiedAt: "2024-05-01 10:00:00",
		},
		{BusinessName: "Fade Bar", City: "Dallas", Status: models.StatusNotFound, VerifiedAt: "2024-05-01 10:00:00"},
		{BusinessName: "Curl Up", City: "Houston", Status: models.StatusMaybe, VerifiedAt: "2024-05-01 10:00:00"},
		{BusinessName: "Ghost", City: "Nowhere", Status: models.StatusNotFound, VerifiedAt: "2024-05-01 10:00:00"},
	}
}

func TestAssembleShape(t *testing.T) {
	rows := Assemble(sampleRecords())
	if len(rows) != 5 {
		t.Fatalf("rows: got %d, want 5", len(rows))
	}
	for i, r := range rows {
		if len(r) != 10 {
			t.Errorf("row %d: got %d columns, want 10", i, len(r))
		}
	}
	if rows[0][0] != "Business Name" || rows[0][4] != "Platform Count" {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[1][3] != "Yelp" || rows[1][4] != "1" || rows[1][5] != "https://yelp.com/biz/luxe-cuts" {
		t.Errorf("row 1: got %v", rows[1])
	}
	if rows[2][2] != "Not Found" {
		t.Errorf("row 2 status: got %q", rows[2][2])
	}
}

func TestFilterByStatus(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		status string
		want   int
	}{
		{"", 4},
		{"All", 4},
		{"Not Found", 2},
		{"Verified", 1},
		{"Maybe", 1},
		{"not found", 0},
	}

	for _, tt := range tests {
		if got := len(FilterByStatus(records, tt.status)); got != tt.want {
			t.Errorf("FilterByStatus(%q): got %d rows, want %d", tt.status, got, tt.want)
		}
	}
	if len(records) != 4 {
		t.Error("FilterByStatus must not modify its input")
	}
}

func TestStatusOptions(t *testing.T) {
	got := StatusOptions(sampleRecords())
	want := []string{"All", "Verified", "Not Found", "Maybe"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("StatusOptions: got %v, want %v", got, want)
	}
	if got := StatusOptions(nil); len(got) != 1 || got[0] != "All" {
		t.Errorf("StatusOptions(nil): got %v", got)
	}
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"salons.csv", "salons_verified_salons.csv"},
		{"/data/in/austin salons.csv", "austin salons_verified_salons.csv"},
		{"listings.xlsx", "listings_verified_salons.csv"},
		{"export.v2.csv", "export.v2_verified_salons.csv"},
		{"noext", "noext_verified_salons.csv"},
	}

	for _, tt := range tests {
		if got := OutputFileName(tt.in); got != tt.want {
			t.Errorf("OutputFileName(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, FilterByStatus(sampleRecords(), "Verified"))

	out := buf.String()
	if !strings.Contains(out, "Luxe Cuts") {
		t.Errorf("table missing verified row:\n%s", out)
	}
	if strings.Contains(out, "Fade Bar") {
		t.Errorf("table contains filtered-out row:\n%s", out)
	}
}
