package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultGoogleURL = "https://www.google.com"

// GoogleEngine scrapes the HTML results page of a Google-compatible endpoint.
type GoogleEngine struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewGoogleEngine creates a GoogleEngine. An empty baseURL targets google.com.
func NewGoogleEngine(baseURL, userAgent string) *GoogleEngine {
	if baseURL == "" {
		baseURL = defaultGoogleURL
	}
	return &GoogleEngine{
		baseURL:   baseURL,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (e *GoogleEngine) Name() string {
	return "google"
}

// Search fetches one results page and extracts up to limit result URLs.
func (e *GoogleEngine) Search(ctx context.Context, query string, limit int) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resultsPageURL(e.baseURL, query, limit), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: "CONSENT", Value: "PENDING+987"})

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google: unexpected status %d", resp.StatusCode)
	}

	return ExtractResultLinks(resp.Body, limit)
}

func resultsPageURL(baseURL, query string, limit int) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("num", strconv.Itoa(limit+2))
	v.Set("hl", "en")
	v.Set("start", "0")
	v.Set("safe", "active")
	return baseURL + "/search?" + v.Encode()
}
