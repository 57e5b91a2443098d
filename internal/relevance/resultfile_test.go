// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func TestSelectionFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selection.yaml")

	cfg := types.SelectionConfig{SimilarityThreshold: 0.96, Band: 0.1, MaxSelected: 3}
	selected := []types.ScoredCandidate{
		{Candidate: types.Candidate{Title: "Paper A", PDFLink: "https://example.org/a.pdf", Source: "arxiv"}, Score: 0.91},
		{Candidate: types.Candidate{Title: "Paper B", PDFLink: "https://example.org/b.pdf", Source: "openalex"}, Score: 0.87},
	}
	summary := SelectionSummary{
		CandidatesSeen:    12,
		DuplicatesRemoved: 2,
		AdapterErrors:     []string{"google_cse: HTTP 403"},
		Timestamp:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	if err := WriteSelectionFile(path, "test query", cfg, selected, summary); err != nil {
		t.Fatalf("WriteSelectionFile() error = %v", err)
	}

	got, err := ReadSelectionFile(path)
	if err != nil {
		t.Fatalf("ReadSelectionFile() error = %v", err)
	}
	if got.Query != "test query" {
		t.Errorf("Query = %q, want %q", got.Query, "test query")
	}
	if got.Config.SimilarityThreshold != 0.96 || got.Config.Band != 0.1 || got.Config.MaxSelected != 3 {
		t.Errorf("Config = %+v, round trip lost values", got.Config)
	}
	if len(got.Selected) != 2 {
		t.Fatalf("len(Selected) = %d, want 2", len(got.Selected))
	}
	if got.Selected[0].Title != "Paper A" || got.Selected[0].Score != 0.91 {
		t.Errorf("Selected[0] = %+v, round trip lost values", got.Selected[0])
	}
	if got.Selected[1].Source != "openalex" {
		t.Errorf("Selected[1].Source = %q, want openalex", got.Selected[1].Source)
	}
	if got.Summary.CandidatesSeen != 12 || got.Summary.DuplicatesRemoved != 2 {
		t.Errorf("Summary = %+v, round trip lost counts", got.Summary)
	}
	if len(got.Summary.AdapterErrors) != 1 {
		t.Errorf("AdapterErrors = %v, want one entry", got.Summary.AdapterErrors)
	}
	if !got.Summary.Timestamp.Equal(summary.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got.Summary.Timestamp, summary.Timestamp)
	}
}

func TestReadSelectionFileMissing(t *testing.T) {
	if _, err := ReadSelectionFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("ReadSelectionFile() on a missing file should fail")
	}
}
