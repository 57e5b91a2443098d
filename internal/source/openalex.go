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

// openAlexAPIBase is the OpenAlex Works endpoint. Declared as a var so
// tests can substitute an httptest server.
var openAlexAPIBase = "https://api.openalex.org/works"

// OpenAlexAdapter queries the OpenAlex API for open-access works.
type OpenAlexAdapter struct {
	Client *http.Client
	// Email is sent as the mailto parameter for polite pool access.
	Email string
}

// Name returns the adapter identifier.
func (a *OpenAlexAdapter) Name() string { return "openalex" }

// Fetch searches OpenAlex works by title, restricted to open-access
// entries, and returns candidates carrying an OA URL.
func (a *OpenAlexAdapter) Fetch(ctx context.Context, query string, cfg types.DiscoveryConfig) ([]types.Candidate, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"filter":   {"title.search:" + query + ",open_access.is_oa:true"},
		"per-page": {fmt.Sprintf("%d", maxResults)},
	}
	if a.Email != "" {
		params.Set("mailto", a.Email)
	}
	reqURL := openAlexAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var oar openAlexResponse
	if err := json.NewDecoder(resp.Body).Decode(&oar); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	var candidates []types.Candidate
	for _, work := range oar.Results {
		if work.OpenAccess.OAURL == "" {
			continue
		}
		candidates = append(candidates, types.Candidate{
			Title:   work.Title,
			PDFLink: work.OpenAccess.OAURL,
			Source:  "openalex",
		})
	}
	return candidates, nil
}

// OpenAlex API JSON structures.
type openAlexResponse struct {
	Results []openAlexWork `json:"results"`
}

type openAlexWork struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	OpenAccess openAlexOpenAccess `json:"open_access"`
}

type openAlexOpenAccess struct {
	IsOA  bool   `json:"is_oa"`
	OAURL string `json:"oa_url"`
}
