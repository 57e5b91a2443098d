// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source discovers candidate documents for a topic query from
// independent remote catalogs, merges the results, and deduplicates
// them. Each catalog is an Adapter; FetchAll fans the query out to
// every configured adapter concurrently and joins the results with a
// partial-success policy.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Adapter fetches raw candidate metadata from one external catalog.
// Each adapter (arXiv, Semantic Scholar, ...) implements this
// interface per the Strategy pattern. Adapters must tolerate missing
// optional fields by omitting the affected candidate rather than
// failing the whole call.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, query string, cfg types.DiscoveryConfig) ([]types.Candidate, error)
}

// ErrAllSourcesFailed indicates every configured adapter failed. A
// subset of failures is reported through Output.AdapterErrors instead.
var ErrAllSourcesFailed = errors.New("all sources failed")

const defaultPoolSize = 4

// Output holds the merged, deduplicated candidates and per-adapter
// failure notes.
type Output struct {
	Candidates    []types.Candidate
	DupsRemoved   int
	AdapterErrors []string
}

// Adapters assembles the adapter set enabled by cfg, sharing one HTTP
// client.
func Adapters(cfg types.DiscoveryConfig, client *http.Client) []Adapter {
	var adapters []Adapter
	if cfg.EnableArxiv {
		adapters = append(adapters, &ArxivAdapter{Client: client})
	}
	if cfg.EnableSemanticScholar {
		adapters = append(adapters, &SemanticScholarAdapter{Client: client, APIKey: cfg.SemanticScholarAPIKey})
	}
	if cfg.EnableOpenAlex {
		adapters = append(adapters, &OpenAlexAdapter{Client: client, Email: cfg.OpenAlexEmail})
	}
	if cfg.EnableGoogleCSE {
		adapters = append(adapters, &GoogleCSEAdapter{Client: client, APIKey: cfg.GoogleAPIKey, EngineID: cfg.GoogleEngineID})
	}
	if cfg.CrawlerURL != "" {
		adapters = append(adapters, &CrawlerAdapter{Client: client, BaseURL: cfg.CrawlerURL})
	}
	return adapters
}

// FetchAll fans the query out to every adapter through a fixed-size
// worker pool and merges results in completion order, then
// deduplicates the merged list. Adapter failures are collected, not
// propagated: a failed adapter contributes a warning line on w and an
// entry in Output.AdapterErrors, and FetchAll returns an error only
// when every adapter failed. The context, bounded by cfg.Timeout when
// set, is propagated to every adapter call so one slow source cannot
// stall the query indefinitely.
//
// Callers must not assume adapter priority survives the merge: which
// duplicate of a title wins depends on completion order.
func FetchAll(ctx context.Context, query string, adapters []Adapter, cfg types.DiscoveryConfig, w io.Writer) (Output, error) {
	if strings.TrimSpace(query) == "" {
		return Output{}, fmt.Errorf("query is empty: provide a topic to search for")
	}
	if len(adapters) == 0 {
		return Output{}, fmt.Errorf("no source adapters configured")
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return Output{}, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	type adapterResult struct {
		name       string
		candidates []types.Candidate
		err        error
	}

	ch := make(chan adapterResult, len(adapters))
	var wg sync.WaitGroup

	for _, a := range adapters {
		wg.Add(1)
		a := a
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			candidates, fetchErr := a.Fetch(ctx, query, cfg)
			ch <- adapterResult{name: a.Name(), candidates: candidates, err: fetchErr}
		}); submitErr != nil {
			wg.Done()
			ch <- adapterResult{name: a.Name(), err: submitErr}
		}
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var out Output
	failed := 0
	for r := range ch {
		if r.err != nil {
			failed++
			out.AdapterErrors = append(out.AdapterErrors, fmt.Sprintf("%s: %v", r.name, r.err))
			fmt.Fprintf(w, "warning: source %s failed: %v\n", r.name, r.err)
			continue
		}
		out.Candidates = append(out.Candidates, r.candidates...)
	}

	if failed == len(adapters) {
		return Output{AdapterErrors: out.AdapterErrors},
			fmt.Errorf("%w: %s", ErrAllSourcesFailed, strings.Join(out.AdapterErrors, "; "))
	}

	before := len(out.Candidates)
	out.Candidates = Dedupe(out.Candidates)
	out.DupsRemoved = before - len(out.Candidates)
	return out, nil
}
