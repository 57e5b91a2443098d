// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package embed turns text into fixed-dimension vectors for semantic
// similarity scoring. The production implementation wraps an
// OpenAI-compatible embeddings endpoint; tests use the deterministic
// mock in this package.
package embed

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the embedding provider could not be
// reached or failed to produce vectors. All provider failures wrap it
// so callers can classify them with errors.Is.
var ErrUnavailable = errors.New("embedding service unavailable")

// Embedder generates vector embeddings from text. Implementations hold
// no mutable state visible to callers and are safe for concurrent use.
type Embedder interface {
	// EmbedQuery generates an embedding for a single query string.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// EmbedDocuments generates embeddings for a batch of texts.
	// The returned slice is order-preserving and has the same length
	// as the input.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}
