package services

import (
	"context"
	"fmt"
	"time"

	"salon-verifier/models"
	"salon-verifier/search"
	"salon-verifier/utils"
)

const (
	// SearchLimit is the number of results requested per row.
	SearchLimit = 5
	// TimestampLayout formats the batch-level Verified At value.
	TimestampLayout = "2006-01-02 15:04:05"

	querySuffix = "hair salon"
)

// BuildQuery interpolates the listing into the search query verbatim.
func BuildQuery(row models.InputRow) string {
	return fmt.Sprintf("%s %s %s", row.BusinessName, row.City, querySuffix)
}

// DeriveStatus classifies a row from its search outcome and platform matches.
// A failed search and an empty one both end up Not Found.
func DeriveStatus(outcome models.SearchOutcome, matches models.PlatformMatches) models.Status {
	switch {
	case len(matches.Found()) > 0:
		return models.StatusVerified
	case !outcome.Failed() && len(outcome.URLs) > 0:
		return models.StatusMaybe
	default:
		return models.StatusNotFound
	}
}

// Verifier checks each listing against the search engine, one row at a time.
type Verifier struct {
	engine  search.Engine
	matcher *PlatformMatcher
	timeout time.Duration
	logger  *utils.Logger
	now     func() time.Time
}

// NewVerifier creates a Verifier. Each search is bounded by timeout.
func NewVerifier(engine search.Engine, timeout time.Duration, logger *utils.Logger) *Verifier {
	return &Verifier{
		engine:  engine,
		matcher: NewPlatformMatcher(),
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// Search runs one bounded search call. Errors and panics from the engine
// are captured in the outcome, never returned.
func (v *Verifier) Search(ctx context.Context, query string) (outcome models.SearchOutcome) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			outcome = models.SearchOutcome{Err: fmt.Errorf("search panicked: %v", r)}
		}
	}()

	urls, err := v.engine.Search(ctx, query, SearchLimit)
	if err != nil {
		return models.SearchOutcome{Err: err}
	}
	if len(urls) > SearchLimit {
		urls = urls[:SearchLimit]
	}
	return models.SearchOutcome{URLs: urls}
}

// VerifyRow maps one listing to its record. It never fails: a search error
// degrades the row to Not Found.
func (v *Verifier) VerifyRow(ctx context.Context, row models.InputRow, verifiedAt string) models.VerificationRecord {
	query := BuildQuery(row)
	outcome := v.Search(ctx, query)
	if outcome.Failed() {
		v.logger.Warn("[verifier] Search failed for %q: %v", query, outcome.Err)
	}

	matches := v.matcher.Scan(outcome.URLs)
	record := models.VerificationRecord{
		BusinessName: row.BusinessName,
		City:         row.City,
		Status:       DeriveStatus(outcome, matches),
		FoundOn:      matches.Found(),
		Matches:      matches,
		VerifiedAt:   verifiedAt,
	}

	v.logger.Debug("[verifier] %q → %s (%d results, found on %q)",
		query, record.Status, len(outcome.URLs), record.FoundOnString())
	return record
}

// Run verifies rows sequentially in input order. The Verified At timestamp
// is captured once before the first row.
func (v *Verifier) Run(ctx context.Context, rows []models.InputRow) []models.VerificationRecord {
	verifiedAt := v.now().Format(TimestampLayout)
	v.logger.Info("[verifier] Checking %d listings with %s engine", len(rows), v.engine.Name())

	records := make([]models.VerificationRecord, 0, len(rows))
	for i, row := range rows {
		records = append(records, v.VerifyRow(ctx, row, verifiedAt))
		if (i+1)%10 == 0 {
			v.logger.Info("[verifier] Progress: %d/%d", i+1, len(rows))
		}
	}

	v.logger.Info("[verifier] Done, %d records", len(records))
	return records
}
