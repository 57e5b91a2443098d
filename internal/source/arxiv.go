// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so
// tests can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivAdapter queries the arXiv Atom API.
type ArxivAdapter struct {
	Client *http.Client
}

// Name returns the adapter identifier.
func (a *ArxivAdapter) Name() string { return "arxiv" }

// Fetch queries arXiv and returns candidates that carry a PDF link.
// Entries without one are omitted.
func (a *ArxivAdapter) Fetch(ctx context.Context, query string, cfg types.DiscoveryConfig) ([]types.Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty arXiv query")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	reqURL := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=%d",
		arxivAPIBase, url.QueryEscape(query), maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var candidates []types.Candidate
	for _, entry := range feed.Entries {
		pdfURL := ""
		for _, link := range entry.Links {
			if link.Type == "application/pdf" {
				pdfURL = link.Href
				break
			}
		}
		if pdfURL == "" {
			continue
		}
		candidates = append(candidates, types.Candidate{
			Title:   strings.TrimSpace(entry.Title),
			PDFLink: pdfURL,
			Source:  "arxiv",
		})
	}
	return candidates, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title string      `xml:"title"`
	Links []arxivLink `xml:"link"`
}

type arxivLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}
