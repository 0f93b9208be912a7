package search

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"salon-verifier/utils"
)

// resultContainers match organic result blocks, both for the full results
// page and the basic (no-JS) variant.
const resultContainers = "div.g, div.ezO2md, div.egMi0"

// ExtractResultLinks parses a search results page and returns up to limit
// distinct result URLs in page order, one per result block. Sitelinks and
// other secondary anchors inside a block are not separate results.
func ExtractResultLinks(r io.Reader, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	seen := utils.NewURLSet()
	links := make([]string, 0, limit)
	add := func(link string) bool {
		if seen.Add(link) {
			links = append(links, link)
		}
		return len(links) < limit
	}

	blocks := doc.Find(resultContainers).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered(resultContainers).Length() == 0
	})
	if blocks.Length() == 0 {
		doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			link, ok := resultURL(s.AttrOr("href", ""))
			if !ok {
				return true
			}
			return add(link)
		})
		return links, nil
	}

	blocks.EachWithBreak(func(_ int, block *goquery.Selection) bool {
		link, ok := firstResultURL(block)
		if !ok {
			return true
		}
		return add(link)
	})
	return links, nil
}

// firstResultURL returns the first usable link in a result block.
func firstResultURL(block *goquery.Selection) (string, bool) {
	var link string
	block.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		u, ok := resultURL(s.AttrOr("href", ""))
		if ok {
			link = u
		}
		return !ok
	})
	return link, link != ""
}

// resultURL unwraps Google's /url?q= redirect and rejects links back into
// the search provider itself.
func resultURL(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "/url?") {
		u, err := url.Parse(href)
		if err != nil {
			return "", false
		}
		target := u.Query().Get("q")
		if target == "" {
			target = u.Query().Get("url")
		}
		href = target
	}

	u, err := url.Parse(href)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	if isProviderHost(u.Hostname()) {
		return "", false
	}
	return href, true
}

func isProviderHost(host string) bool {
	host = strings.ToLower(host)
	return strings.Contains(host, "google.") || strings.HasSuffix(host, "googleusercontent.com") ||
		strings.HasSuffix(host, "gstatic.com")
}
