// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/history"
	"github.com/pdiddy/paper-scout/internal/relevance"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past discovery runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent discovery runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := store.ListRuns(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-20s  %-50s  %-10s  %-8s\n",
			"ID", "When", "Query", "Candidates", "Selected")
		for _, r := range runs {
			query := r.Query
			if len(query) > 50 {
				query = query[:47] + "..."
			}
			fmt.Printf("%-5d  %-20s  %-50s  %-10d  %-8d\n",
				r.ID, r.RanAt.Format("2006-01-02 15:04"), query, r.CandidatesSeen, r.Selected)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the selection recorded for a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}

		cfg := loadConfig()
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		selected, err := store.RunSelection(cmd.Context(), runID)
		if err != nil {
			return err
		}
		relevance.FormatTable(selected, os.Stdout)
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum runs to list (default from config)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
