// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// CrawlerAdapter delegates to a remote scraper service that crawls
// general web search results for papers. Used as a fallback when the
// catalog APIs come up short.
type CrawlerAdapter struct {
	Client *http.Client
	// BaseURL is the service's search endpoint, e.g.
	// "https://oscraper.example.com/search".
	BaseURL string
}

// Name returns the adapter identifier.
func (a *CrawlerAdapter) Name() string { return "crawler" }

// Fetch asks the scraper service for candidates. The service wraps its
// result in a status envelope; a non-success status is an error.
func (a *CrawlerAdapter) Fetch(ctx context.Context, query string, cfg types.DiscoveryConfig) ([]types.Candidate, error) {
	if a.BaseURL == "" {
		return nil, fmt.Errorf("crawler adapter requires a base URL")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"query":       {query},
		"max_results": {fmt.Sprintf("%d", maxResults)},
	}
	reqURL := a.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crawler request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crawler returned HTTP %d", resp.StatusCode)
	}

	var cr crawlerResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing crawler response: %w", err)
	}
	if cr.Status != "" && cr.Status != "success" {
		return nil, fmt.Errorf("crawler reported %s: %s", cr.Status, cr.Message)
	}

	var candidates []types.Candidate
	for _, d := range cr.Data {
		candidates = append(candidates, types.Candidate{
			Title:   d.Title,
			PDFLink: d.PDFLink,
			Source:  "crawler",
		})
	}
	return candidates, nil
}

// Scraper service JSON envelope.
type crawlerResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    []crawlerEntry `json:"data"`
}

type crawlerEntry struct {
	Title   string `json:"title"`
	PDFLink string `json:"pdf_link"`
}
