// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/paper-scout/internal/httputil"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// semanticAPIBase is the Semantic Scholar paper search endpoint.
// Declared as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticFields = "title,openAccessPdf"

// SemanticScholarAdapter queries the Semantic Scholar Graph API.
type SemanticScholarAdapter struct {
	Client *http.Client
	APIKey string
}

// Name returns the adapter identifier.
func (a *SemanticScholarAdapter) Name() string { return "semantic_scholar" }

// Fetch queries Semantic Scholar and returns candidates carrying an
// open-access PDF URL. Papers without one are omitted. Requests are
// retried on HTTP 429 since the public pool rate-limits aggressively.
func (a *SemanticScholarAdapter) Fetch(ctx context.Context, query string, cfg types.DiscoveryConfig) ([]types.Candidate, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{
		"query":  {query},
		"limit":  {fmt.Sprintf("%d", maxResults)},
		"fields": {semanticFields},
	}
	reqURL := semanticAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	if a.APIKey != "" {
		req.Header.Set("x-api-key", a.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, a.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}

	var candidates []types.Candidate
	for _, paper := range sr.Data {
		if paper.OpenAccessPDF.URL == "" {
			continue
		}
		candidates = append(candidates, types.Candidate{
			Title:   paper.Title,
			PDFLink: paper.OpenAccessPDF.URL,
			Source:  "semantic_scholar",
		})
	}
	return candidates, nil
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	Total int             `json:"total"`
	Data  []semanticPaper `json:"data"`
}

type semanticPaper struct {
	PaperID       string          `json:"paperId"`
	Title         string          `json:"title"`
	OpenAccessPDF semanticOpenPDF `json:"openAccessPdf"`
}

type semanticOpenPDF struct {
	URL string `json:"url"`
}
