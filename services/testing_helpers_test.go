package services

import (
	"context"
	"errors"
	"io"

	"salon-verifier/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLoggerTo(io.Discard) }

// stubEngine answers fixed queries and records every call.
type stubEngine struct {
	results map[string][]string
	errs    map[string]error
	panics  map[string]bool
	calls   []string
	limits  []int
}

func newStubEngine() *stubEngine {
	return &stubEngine{
		results: make(map[string][]string),
		errs:    make(map[string]error),
		panics:  make(map[string]bool),
	}
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Search(ctx context.Context, query string, limit int) ([]string, error) {
	s.calls = append(s.calls, query)
	s.limits = append(s.limits, limit)
	if s.panics[query] {
		panic("boom")
	}
	if err, ok := s.errs[query]; ok {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.results[query], nil
}

var errRateLimited = errors.New("429 too many requests")
