// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/embed"
	"github.com/pdiddy/paper-scout/internal/fetch"
	"github.com/pdiddy/paper-scout/internal/history"
	"github.com/pdiddy/paper-scout/internal/relevance"
	"github.com/pdiddy/paper-scout/internal/source"
	"github.com/pdiddy/paper-scout/pkg/types"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <query>",
	Short: "Discover and select papers relevant to a topic query",
	Long: `Discover fans the query out to every enabled source adapter, merges and
deduplicates the candidates, and selects the most relevant ones by
embedding similarity: a near-perfect title match is returned alone,
otherwise up to three candidates within a margin of the best score.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		cfg := loadConfig()

		if v, _ := cmd.Flags().GetInt("max-results"); v > 0 {
			cfg.Discovery.MaxResults = v
		}

		client := &http.Client{Timeout: cfg.Discovery.Timeout}
		adapters := source.Adapters(cfg.Discovery, client)

		out, err := source.FetchAll(cmd.Context(), query, adapters, cfg.Discovery, os.Stderr)
		if err != nil {
			return fmt.Errorf("no candidates found: %w", err)
		}
		fmt.Fprintf(os.Stderr, "%d candidates (%d duplicates removed)\n",
			len(out.Candidates), out.DupsRemoved)

		embedder, err := embed.NewOpenAI(cfg.Embedding)
		if err != nil {
			return err
		}

		selector := relevance.NewSelector(embedder, cfg.Selection)
		selected, err := selector.Select(cmd.Context(), query, out.Candidates)
		if err != nil {
			return fmt.Errorf("selection failed: %w", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			if err := relevance.FormatJSON(selected, os.Stdout); err != nil {
				return err
			}
		} else {
			relevance.FormatTable(selected, os.Stdout)
		}

		if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
			summary := relevance.SelectionSummary{
				CandidatesSeen:    len(out.Candidates),
				DuplicatesRemoved: out.DupsRemoved,
				AdapterErrors:     out.AdapterErrors,
				Timestamp:         time.Now(),
			}
			if err := relevance.WriteSelectionFile(outPath, query, cfg.Selection, selected, summary); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Selection written to %s\n", outPath)
		}

		if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
			if err := recordRun(cmd, cfg, query, out, selected); err != nil {
				fmt.Fprintf(os.Stderr, "warning: recording run failed: %v\n", err)
			}
		}

		if fetchTop, _ := cmd.Flags().GetBool("fetch-top"); fetchTop && len(selected) > 0 {
			fetchClient := &http.Client{Timeout: cfg.Fetch.Timeout}
			path, _, err := fetch.Download(cmd.Context(), fetchClient, selected[0].Candidate, cfg.Fetch, os.Stderr)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Fetched top candidate to %s\n", path)
		}

		return nil
	},
}

func recordRun(cmd *cobra.Command, cfg types.Config, query string, out source.Output, selected []types.ScoredCandidate) error {
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	run := history.Run{
		Query:             query,
		CandidatesSeen:    len(out.Candidates),
		DuplicatesRemoved: out.DupsRemoved,
		AdapterErrors:     out.AdapterErrors,
	}
	_, err = store.RecordRun(cmd.Context(), run, selected)
	return err
}

func init() {
	discoverCmd.Flags().Int("max-results", 0, "maximum candidates requested per source")
	discoverCmd.Flags().Bool("json", false, "output the selection as JSON")
	discoverCmd.Flags().String("out", "", "write the selection to a YAML file")
	discoverCmd.Flags().Bool("fetch-top", false, "download the top selected candidate's PDF")
	discoverCmd.Flags().Bool("no-history", false, "do not record this run in the history store")

	rootCmd.AddCommand(discoverCmd)
}
