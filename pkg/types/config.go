package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DiscoveryConfig holds settings for the candidate discovery stage.
type DiscoveryConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of candidates requested from
	// each source (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// PoolSize bounds the number of concurrent adapter calls
	// (default 4). Adapter count is small and fixed, so a small pool
	// is sufficient.
	PoolSize int `json:"pool_size" yaml:"pool_size"`

	// EnableArxiv controls whether the arXiv adapter is used.
	EnableArxiv bool `json:"enable_arxiv" yaml:"enable_arxiv"`

	// EnableSemanticScholar controls whether the Semantic Scholar
	// adapter is used.
	EnableSemanticScholar bool `json:"enable_semantic_scholar" yaml:"enable_semantic_scholar"`

	// EnableOpenAlex controls whether the OpenAlex adapter is used.
	EnableOpenAlex bool `json:"enable_openalex" yaml:"enable_openalex"`

	// EnableGoogleCSE controls whether the Google Custom Search
	// adapter is used. Requires GoogleAPIKey and GoogleEngineID.
	EnableGoogleCSE bool `json:"enable_google_cse" yaml:"enable_google_cse"`

	// CrawlerURL is the base URL of a remote scraper service used as a
	// fallback source. Empty disables the adapter.
	CrawlerURL string `json:"crawler_url,omitempty" yaml:"crawler_url,omitempty"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`

	// GoogleAPIKey authenticates Google Custom Search requests.
	GoogleAPIKey string `json:"google_api_key,omitempty" yaml:"google_api_key,omitempty"`

	// GoogleEngineID is the Google Custom Search engine identifier.
	GoogleEngineID string `json:"google_engine_id,omitempty" yaml:"google_engine_id,omitempty"`

	// OpenAlexEmail is sent as the mailto parameter for polite pool access.
	OpenAlexEmail string `json:"openalex_email,omitempty" yaml:"openalex_email,omitempty"`
}

// SelectionConfig holds the relevance-selection knobs. The defaults
// were chosen empirically and are the main behavioral levers of the
// engine; zero values fall back to the defaults at construction time.
type SelectionConfig struct {
	// SimilarityThreshold is the exact-match short-circuit threshold
	// (default 0.96). A best score at or above it is returned alone.
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`

	// Band is the margin from the best score within which candidates
	// are kept (default 0.1). This is a margin-from-best cut, not a
	// top-k cut.
	Band float64 `json:"band" yaml:"band"`

	// MaxSelected caps the number of returned candidates (default 3).
	MaxSelected int `json:"max_selected" yaml:"max_selected"`

	// FigureCutoff is the minimum caption similarity for a figure
	// match (default 0.6).
	FigureCutoff float64 `json:"figure_cutoff" yaml:"figure_cutoff"`
}

// EmbeddingConfig holds settings for the embedding provider.
type EmbeddingConfig struct {
	// Host is the base URL of an OpenAI-compatible embeddings endpoint
	// (e.g. "http://localhost:11434/v1").
	Host string `json:"host" yaml:"host"`

	// Model is the embedding model identifier
	// (e.g. "all-minilm", "text-embedding-3-small").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the endpoint. Optional for local
	// servers.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// FetchConfig holds settings for downloading selected PDFs.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PapersDir is the directory downloaded PDFs are written to.
	PapersDir string `json:"papers_dir" yaml:"papers_dir"`
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database.
	Dir string `json:"dir" yaml:"dir"`

	// MaxRuns is the default maximum number of runs listed (default 20).
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}

// Config groups all stage configurations.
type Config struct {
	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`
	Selection SelectionConfig `json:"selection" yaml:"selection"`
	Embedding EmbeddingConfig `json:"embedding" yaml:"embedding"`
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
	History   HistoryConfig   `json:"history" yaml:"history"`
}
