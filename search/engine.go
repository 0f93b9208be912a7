// Package search is the boundary to the external web search provider. Every
// engine answers a free-text query with an ordered list of result URLs or an
// error; callers decide what a failure means.
package search

import (
	"context"
	"fmt"
	"strings"

	"salon-verifier/config"
	"salon-verifier/utils"
)

// Engine issues one web search and returns result URLs in rank order,
// at most limit of them.
type Engine interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// New builds the engine selected by cfg.SearchEngine.
func New(cfg *config.Config, logger *utils.Logger) (Engine, error) {
	switch strings.ToLower(cfg.SearchEngine) {
	case "", "google":
		return NewGoogleEngine(cfg.SearchBaseURL, cfg.UserAgent), nil
	case "browser", "chrome":
		return NewBrowserEngine(cfg.SearchBaseURL, cfg.UserAgent, cfg.ChromeBin, logger), nil
	case "tavily":
		if cfg.TavilyAPIKey == "" {
			return nil, fmt.Errorf("search: tavily engine requires TAVILY_API_KEY")
		}
		return NewTavilyEngine(cfg.SearchBaseURL, cfg.TavilyAPIKey), nil
	}
	return nil, fmt.Errorf("search: unknown engine type: %s", cfg.SearchEngine)
}
