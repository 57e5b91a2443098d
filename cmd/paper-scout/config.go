// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-scout/internal/relevance"
	"github.com/pdiddy/paper-scout/pkg/types"
)

func init() {
	viper.SetDefault("discovery.timeout", 30*time.Second)
	viper.SetDefault("discovery.user_agent", "paper-scout/0.1")
	viper.SetDefault("discovery.max_results", 10)
	viper.SetDefault("discovery.pool_size", 4)
	viper.SetDefault("discovery.enable_arxiv", true)
	viper.SetDefault("discovery.enable_semantic_scholar", true)
	viper.SetDefault("discovery.enable_openalex", true)
	viper.SetDefault("discovery.enable_google_cse", false)

	viper.SetDefault("selection.similarity_threshold", relevance.DefaultSimilarityThreshold)
	viper.SetDefault("selection.band", relevance.DefaultBand)
	viper.SetDefault("selection.max_selected", relevance.DefaultMaxSelected)
	viper.SetDefault("selection.figure_cutoff", relevance.DefaultFigureCutoff)

	viper.SetDefault("embedding.host", "http://localhost:11434/v1")
	viper.SetDefault("embedding.model", "all-minilm")

	viper.SetDefault("fetch.timeout", 60*time.Second)
	viper.SetDefault("fetch.user_agent", "paper-scout/0.1")
	viper.SetDefault("fetch.papers_dir", "papers")

	viper.SetDefault("history.dir", ".paper-scout")
	viper.SetDefault("history.max_runs", 20)
}

// loadConfig builds the full configuration from viper, filling API
// keys from the secrets directory when the config leaves them empty.
func loadConfig() types.Config {
	cfg := types.Config{
		Discovery: types.DiscoveryConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("discovery.timeout"),
				UserAgent: viper.GetString("discovery.user_agent"),
			},
			MaxResults:            viper.GetInt("discovery.max_results"),
			PoolSize:              viper.GetInt("discovery.pool_size"),
			EnableArxiv:           viper.GetBool("discovery.enable_arxiv"),
			EnableSemanticScholar: viper.GetBool("discovery.enable_semantic_scholar"),
			EnableOpenAlex:        viper.GetBool("discovery.enable_openalex"),
			EnableGoogleCSE:       viper.GetBool("discovery.enable_google_cse"),
			CrawlerURL:            viper.GetString("discovery.crawler_url"),
		},
		Selection: types.SelectionConfig{
			SimilarityThreshold: viper.GetFloat64("selection.similarity_threshold"),
			Band:                viper.GetFloat64("selection.band"),
			MaxSelected:         viper.GetInt("selection.max_selected"),
			FigureCutoff:        viper.GetFloat64("selection.figure_cutoff"),
		},
		Embedding: types.EmbeddingConfig{
			Host:  viper.GetString("embedding.host"),
			Model: viper.GetString("embedding.model"),
		},
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("fetch.timeout"),
				UserAgent: viper.GetString("fetch.user_agent"),
			},
			PapersDir: viper.GetString("fetch.papers_dir"),
		},
		History: types.HistoryConfig{
			Dir:     viper.GetString("history.dir"),
			MaxRuns: viper.GetInt("history.max_runs"),
		},
	}

	cfg.Discovery.SemanticScholarAPIKey = loadedSecrets.Lookup("semantic-scholar-api-key", viper.GetString("discovery.semantic_scholar_api_key"))
	cfg.Discovery.GoogleAPIKey = loadedSecrets.Lookup("google-cse-api-key", viper.GetString("discovery.google_api_key"))
	cfg.Discovery.GoogleEngineID = loadedSecrets.Lookup("google-cse-id", viper.GetString("discovery.google_engine_id"))
	cfg.Discovery.OpenAlexEmail = loadedSecrets.Lookup("openalex-email", viper.GetString("discovery.openalex_email"))
	cfg.Embedding.APIKey = loadedSecrets.Lookup("embedding-api-key", viper.GetString("embedding.api_key"))

	return cfg
}
