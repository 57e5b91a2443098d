// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func TestCrawlerFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "spiking networks" {
			t.Errorf("query = %q, want %q", got, "spiking networks")
		}
		if got := r.URL.Query().Get("max_results"); got != "7" {
			t.Errorf("max_results = %q, want 7", got)
		}
		json.NewEncoder(w).Encode(crawlerResponse{
			Status: "success",
			Data: []crawlerEntry{
				{Title: "Spiking Networks Review", PDFLink: "https://example.org/spiking.pdf"},
			},
		})
	}))
	defer server.Close()

	adapter := &CrawlerAdapter{Client: server.Client(), BaseURL: server.URL}
	got, err := adapter.Fetch(context.Background(), "spiking networks", types.DiscoveryConfig{MaxResults: 7})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(candidates) = %d, want 1", len(got))
	}
	want := types.Candidate{Title: "Spiking Networks Review", PDFLink: "https://example.org/spiking.pdf", Source: "crawler"}
	if got[0] != want {
		t.Errorf("candidate = %+v, want %+v", got[0], want)
	}
}

func TestCrawlerFetchErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(crawlerResponse{Status: "error", Message: "upstream search unavailable"})
	}))
	defer server.Close()

	adapter := &CrawlerAdapter{Client: server.Client(), BaseURL: server.URL}
	_, err := adapter.Fetch(context.Background(), "q", types.DiscoveryConfig{})
	if err == nil {
		t.Fatal("Fetch() should fail on an error envelope")
	}
	if !strings.Contains(err.Error(), "upstream search unavailable") {
		t.Errorf("error = %v, want the service message included", err)
	}
}

func TestCrawlerFetchMissingBaseURL(t *testing.T) {
	adapter := &CrawlerAdapter{Client: http.DefaultClient}
	if _, err := adapter.Fetch(context.Background(), "q", types.DiscoveryConfig{}); err == nil {
		t.Error("Fetch() without a base URL should fail")
	}
}
