// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance scores candidate documents against a query using
// embedding cosine similarity and applies a threshold-band selection
// rule: a near-perfect title match is returned alone, otherwise the
// cluster of candidates within a fixed margin of the best score is
// returned, capped at a small maximum. The same primitive, with a
// single-winner cutoff rule, matches figure captions.
package relevance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/paper-scout/internal/embed"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// Defaults applied when the corresponding SelectionConfig field is zero.
const (
	DefaultSimilarityThreshold = 0.96
	DefaultBand                = 0.1
	DefaultMaxSelected         = 3
	DefaultFigureCutoff        = 0.6
)

// ErrEmptyQuery indicates the caller supplied no query text.
var ErrEmptyQuery = errors.New("query is empty")

// Selector ranks candidates by title similarity to a query. The
// embedder is injected at construction; the Selector itself holds no
// per-query state and is safe for concurrent use.
type Selector struct {
	embedder    embed.Embedder
	threshold   float64
	band        float64
	maxSelected int
}

// NewSelector creates a Selector. Zero config fields fall back to the
// package defaults.
func NewSelector(embedder embed.Embedder, cfg types.SelectionConfig) *Selector {
	threshold := cfg.SimilarityThreshold
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	band := cfg.Band
	if band <= 0 {
		band = DefaultBand
	}
	maxSelected := cfg.MaxSelected
	if maxSelected <= 0 {
		maxSelected = DefaultMaxSelected
	}
	return &Selector{
		embedder:    embedder,
		threshold:   threshold,
		band:        band,
		maxSelected: maxSelected,
	}
}

// Select embeds the query and every candidate title, scores them by
// cosine similarity, and returns the selection:
//
//   - best score ≥ threshold: that single candidate, alone. A
//     near-perfect title match should not be diluted with
//     near-duplicates or unrelated high scorers.
//   - otherwise: every candidate within band of the best score, sorted
//     by score descending with ties broken by input order, truncated
//     to the configured maximum.
//
// An empty candidate set is a valid empty result and does not invoke
// the embedder. An empty query is ErrEmptyQuery; embedder failures
// wrap embed.ErrUnavailable. In both failure cases the selection is
// not performed at all — there is no partial result.
func (s *Selector) Select(ctx context.Context, query string, candidates []types.Candidate) ([]types.ScoredCandidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.Title
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	titleVecs, err := s.embedder.EmbedDocuments(ctx, titles)
	if err != nil {
		return nil, fmt.Errorf("embedding %d titles: %w", len(titles), err)
	}
	if len(titleVecs) != len(titles) {
		return nil, fmt.Errorf("%w: got %d vectors for %d titles", embed.ErrUnavailable, len(titleVecs), len(titles))
	}

	scores := make([]float64, len(titleVecs))
	best := 0
	for i, tv := range titleVecs {
		scores[i] = Cosine(queryVec, tv)
		if scores[i] > scores[best] {
			best = i
		}
	}
	bestScore := scores[best]

	if bestScore >= s.threshold {
		return []types.ScoredCandidate{{Candidate: candidates[best], Score: bestScore}}, nil
	}

	// Band selection: a margin-from-best cut, not a top-k cut. The
	// cluster shrinks or grows with how tightly scores pack near the
	// best one.
	var selected []types.ScoredCandidate
	for i, score := range scores {
		if bestScore-score <= s.band {
			selected = append(selected, types.ScoredCandidate{Candidate: candidates[i], Score: score})
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Score > selected[j].Score
	})
	if len(selected) > s.maxSelected {
		selected = selected[:s.maxSelected]
	}
	return selected, nil
}
