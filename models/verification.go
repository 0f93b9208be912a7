package models

import "strings"

// Status is the derived discoverability of a listing.
type Status string

const (
	StatusVerified Status = "Verified"
	StatusMaybe    Status = "Maybe"
	StatusNotFound Status = "Not Found"
)

// SearchOutcome is the result of one search call: either the ordered result
// URLs or the error the oracle returned. A failed outcome carries no URLs.
type SearchOutcome struct {
	URLs []string
	Err  error
}

// Failed reports whether the search call itself errored.
func (o SearchOutcome) Failed() bool { return o.Err != nil }

// PlatformMatches holds the first URL captured per platform, in search rank order.
type PlatformMatches struct {
	Yelp      string
	Instagram string
	Vagaro    string
	StyleSeat string
}

// URL returns the captured URL for p, or "".
func (m PlatformMatches) URL(p Platform) string {
	switch p {
	case PlatformYelp:
		return m.Yelp
	case PlatformInstagram:
		return m.Instagram
	case PlatformVagaro:
		return m.Vagaro
	case PlatformStyleSeat:
		return m.StyleSeat
	}
	return ""
}

// With returns a copy of m with url recorded for p, unless p already has one.
func (m PlatformMatches) With(p Platform, url string) PlatformMatches {
	if m.URL(p) != "" {
		return m
	}
	switch p {
	case PlatformYelp:
		m.Yelp = url
	case PlatformInstagram:
		m.Instagram = url
	case PlatformVagaro:
		m.Vagaro = url
	case PlatformStyleSeat:
		m.StyleSeat = url
	}
	return m
}

// Found returns the matched platforms in priority order. No duplicates.
func (m PlatformMatches) Found() []Platform {
	var found []Platform
	for _, p := range Platforms {
		if m.URL(p) != "" {
			found = append(found, p)
		}
	}
	return found
}

// VerificationRecord is one output row. It is built once and not mutated.
type VerificationRecord struct {
	BusinessName string
	City         string
	Status       Status
	FoundOn      []Platform
	Matches      PlatformMatches
	VerifiedAt   string
}

// PlatformCount is the number of distinct platforms the listing was found on.
func (r VerificationRecord) PlatformCount() int {
	return len(r.FoundOn)
}

// FoundOnString renders FoundOn as "Yelp, Instagram".
func (r VerificationRecord) FoundOnString() string {
	names := make([]string, 0, len(r.FoundOn))
	for _, p := range r.FoundOn {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// Summary holds run-level totals over the produced records.
type Summary struct {
	TotalRows       int
	ByStatus        map[Status]int
	ByPlatform      map[Platform]int
	MultiPlatform   int
	NotFoundSamples []string
}
