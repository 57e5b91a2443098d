// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/fetch"
	"github.com/pdiddy/paper-scout/internal/relevance"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <selection-file>",
	Short: "Download PDFs from a saved selection file",
	Long: `Fetch downloads the PDFs recorded in a selection file produced by
"discover --out". By default only the top-ranked candidate is fetched;
--all downloads every selected candidate. Existing files are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		sf, err := relevance.ReadSelectionFile(args[0])
		if err != nil {
			return err
		}
		if len(sf.Selected) == 0 {
			return fmt.Errorf("selection file %s contains no candidates", args[0])
		}

		toFetch := sf.Selected[:1]
		if all, _ := cmd.Flags().GetBool("all"); all {
			toFetch = sf.Selected
		}

		client := &http.Client{Timeout: cfg.Fetch.Timeout}
		failed := 0
		for _, sc := range toFetch {
			path, _, err := fetch.Download(cmd.Context(), client, sc.Candidate, cfg.Fetch, os.Stderr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed: %s (%v)\n", sc.Title, err)
				failed++
				continue
			}
			fmt.Println(path)
		}
		if failed == len(toFetch) {
			return fmt.Errorf("all %d downloads failed", failed)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().Bool("all", false, "download every selected candidate, not just the top one")

	rootCmd.AddCommand(fetchCmd)
}
