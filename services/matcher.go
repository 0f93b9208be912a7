package services

import (
	ahocorasick "github.com/cloudflare/ahocorasick"

	"salon-verifier/models"
)

// PlatformMatcher classifies result URLs by platform domain marker in a
// single pass over each URL. Not safe for concurrent use.
type PlatformMatcher struct {
	matcher   *ahocorasick.Matcher
	platforms []models.Platform
}

// NewPlatformMatcher builds a matcher over the fixed platform markers.
func NewPlatformMatcher() *PlatformMatcher {
	markers := make([]string, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		markers = append(markers, p.Marker())
	}
	return &PlatformMatcher{
		matcher:   ahocorasick.NewStringMatcher(markers),
		platforms: models.Platforms,
	}
}

// Classify returns the platform whose marker appears in url. When several
// markers appear, the one earliest in priority order wins.
func (m *PlatformMatcher) Classify(url string) (models.Platform, bool) {
	hits := m.matcher.Match([]byte(url))
	if len(hits) == 0 {
		return "", false
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h < best {
			best = h
		}
	}
	return m.platforms[best], true
}

// Scan folds the ranked URLs into the first URL seen per platform.
func (m *PlatformMatcher) Scan(urls []string) models.PlatformMatches {
	var matches models.PlatformMatches
	for _, u := range urls {
		if p, ok := m.Classify(u); ok {
			matches = matches.With(p, u)
		}
	}
	return matches
}
