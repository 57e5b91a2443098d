// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embed

import (
	"context"
	"hash/fnv"
	"math"
)

// Mock is a test double for Embedder. Behavior can be overridden per
// method through the function fields; by default it produces
// deterministic unit vectors derived from a hash of the text, so the
// same text always embeds to the same vector.
type Mock struct {
	EmbedQueryFunc     func(ctx context.Context, text string) ([]float32, error)
	EmbedDocumentsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	calls int
}

// EmbedQuery returns the override result or a deterministic vector.
func (m *Mock) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	m.calls++
	if m.EmbedQueryFunc != nil {
		return m.EmbedQueryFunc(ctx, text)
	}
	return deterministicVector(text, 32), nil
}

// EmbedDocuments returns the override result or one deterministic
// vector per input text, order-preserving.
func (m *Mock) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.EmbedDocumentsFunc != nil {
		return m.EmbedDocumentsFunc(ctx, texts)
	}
	vecs := make([][]float32, len(texts))
	for i, t := range texts {
		vecs[i] = deterministicVector(t, 32)
	}
	return vecs, nil
}

// Calls reports how many embedding calls were made, across both methods.
func (m *Mock) Calls() int { return m.calls }

// deterministicVector derives a unit vector of the given dimension from
// an FNV hash of the text.
func deterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vec := make([]float32, dim)
	var sumSq float64
	for i := range vec {
		seed = seed*1664525 + 1013904223 // LCG step
		vec[i] = float32(seed%1000)/1000.0 - 0.5
		sumSq += float64(vec[i]) * float64(vec[i])
	}

	norm := float32(math.Sqrt(sumSq))
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
