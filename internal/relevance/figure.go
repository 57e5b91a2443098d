// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/paper-scout/internal/embed"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// MatchFigure matches a conversational query against figure captions
// and returns the image reference of the single best figure, if its
// caption similarity reaches the cutoff. Unlike Select there is no
// short-circuit tier and no band: the caller only ever needs zero or
// one figure per turn.
//
// A score exactly at the cutoff matches. An empty figure list returns
// no match without invoking the embedder. A cutoff ≤ 0 falls back to
// DefaultFigureCutoff.
func MatchFigure(ctx context.Context, embedder embed.Embedder, query string, figures []types.FigureEntry, cutoff float64) (string, bool, error) {
	if cutoff <= 0 {
		cutoff = DefaultFigureCutoff
	}
	if strings.TrimSpace(query) == "" {
		return "", false, ErrEmptyQuery
	}
	if len(figures) == 0 {
		return "", false, nil
	}

	captions := make([]string, len(figures))
	for i, f := range figures {
		captions[i] = f.Caption
	}

	queryVec, err := embedder.EmbedQuery(ctx, query)
	if err != nil {
		return "", false, fmt.Errorf("embedding query: %w", err)
	}
	captionVecs, err := embedder.EmbedDocuments(ctx, captions)
	if err != nil {
		return "", false, fmt.Errorf("embedding %d captions: %w", len(captions), err)
	}
	if len(captionVecs) != len(captions) {
		return "", false, fmt.Errorf("%w: got %d vectors for %d captions", embed.ErrUnavailable, len(captionVecs), len(captions))
	}

	best := 0
	bestScore := Cosine(queryVec, captionVecs[0])
	for i := 1; i < len(captionVecs); i++ {
		if score := Cosine(queryVec, captionVecs[i]); score > bestScore {
			best, bestScore = i, score
		}
	}

	if bestScore >= cutoff {
		return figures[best].ImageRef, true, nil
	}
	return "", false, nil
}
