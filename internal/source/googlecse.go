// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// googleCSEBase is the Google Custom Search endpoint. Declared as a
// var so tests can substitute an httptest server.
var googleCSEBase = "https://www.googleapis.com/customsearch/v1"

// GoogleCSEAdapter queries Google Custom Search for PDF documents. It
// reaches material other catalogs do not index, but is noisier; the
// adapter filters out lecture and presentation slides by title and
// keeps only links that point at a PDF.
type GoogleCSEAdapter struct {
	Client   *http.Client
	APIKey   string
	EngineID string
}

// Name returns the adapter identifier.
func (a *GoogleCSEAdapter) Name() string { return "google_cse" }

// Fetch queries Google Custom Search with a filetype:pdf restriction.
func (a *GoogleCSEAdapter) Fetch(ctx context.Context, query string, cfg types.DiscoveryConfig) ([]types.Candidate, error) {
	if a.APIKey == "" || a.EngineID == "" {
		return nil, fmt.Errorf("google_cse adapter requires an API key and engine ID")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"key": {a.APIKey},
		"cx":  {a.EngineID},
		"q":   {query + " filetype:pdf"},
		"num": {fmt.Sprintf("%d", maxResults)},
	}
	reqURL := googleCSEBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Google API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google API returned HTTP %d", resp.StatusCode)
	}

	var gr googleCSEResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing Google response: %w", err)
	}

	var candidates []types.Candidate
	for _, item := range gr.Items {
		title := strings.ToLower(item.Title)
		if strings.Contains(title, "lecture") || strings.Contains(title, "presentation") {
			continue
		}
		if !strings.Contains(item.Link, ".pdf") {
			continue
		}
		candidates = append(candidates, types.Candidate{
			Title:   item.Title,
			PDFLink: item.Link,
			Source:  "google_cse",
		})
	}
	return candidates, nil
}

// Google Custom Search JSON structures.
type googleCSEResponse struct {
	Items []googleCSEItem `json:"items"`
}

type googleCSEItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}
