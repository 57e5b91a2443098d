// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embed

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// OpenAIEmbedder implements Embedder over an OpenAI-compatible
// embeddings endpoint. It is constructed once at process start and
// injected into every scoring call; the underlying client is reused
// read-only across calls.
type OpenAIEmbedder struct {
	embedder embeddings.Embedder
}

// NewOpenAI creates an embedder for the configured endpoint and model.
func NewOpenAI(cfg types.EmbeddingConfig) (*OpenAIEmbedder, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("embedding host is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("embedding model is required")
	}

	token := cfg.APIKey
	if token == "" {
		// The client requires a non-empty token even for local
		// servers that ignore authentication.
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(cfg.Host),
		openai.WithToken(token),
		openai.WithEmbeddingModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embedding client: %w", err)
	}

	emb, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	return &OpenAIEmbedder{embedder: emb}, nil
}

// EmbedQuery generates an embedding for a single query string.
func (e *OpenAIEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding query: %v", ErrUnavailable, err)
	}
	return vec, nil
}

// EmbedDocuments generates embeddings for a batch of texts,
// order-preserving.
func (e *OpenAIEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding %d documents: %v", ErrUnavailable, len(texts), err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d documents", ErrUnavailable, len(vecs), len(texts))
	}
	return vecs, nil
}
