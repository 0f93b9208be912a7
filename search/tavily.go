package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"salon-verifier/utils"
)

const defaultTavilyURL = "https://api.tavily.com"

// TavilyEngine queries the Tavily search API.
type TavilyEngine struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTavilyEngine(baseURL, apiKey string) *TavilyEngine {
	if baseURL == "" {
		baseURL = defaultTavilyURL
	}
	return &TavilyEngine{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (e *TavilyEngine) Name() string {
	return "tavily"
}

func (e *TavilyEngine) Search(ctx context.Context, query string, limit int) ([]string, error) {
	requestBody := map[string]interface{}{
		"api_key":        e.apiKey,
		"query":          query,
		"search_depth":   "basic",
		"include_answer": false,
		"include_images": false,
		"max_results":    limit,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/search", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily: unexpected status %d: %s", resp.StatusCode, utils.Truncate(string(body), 200))
	}

	var apiResponse struct {
		Results []struct {
			URL string `json:"url"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	seen := utils.NewURLSet()
	urls := make([]string, 0, len(apiResponse.Results))
	for _, r := range apiResponse.Results {
		if len(urls) >= limit {
			break
		}
		if r.URL == "" || !seen.Add(r.URL) {
			continue
		}
		urls = append(urls, r.URL)
	}
	return urls, nil
}
