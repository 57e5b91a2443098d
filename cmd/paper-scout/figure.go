// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-scout/internal/embed"
	"github.com/pdiddy/paper-scout/internal/relevance"
	"github.com/pdiddy/paper-scout/pkg/types"
)

var figureCmd = &cobra.Command{
	Use:   "figure <query>",
	Short: "Match a query against document figure captions",
	Long: `Figure matches a conversational query against a set of figure entries
(image reference + caption pairs, supplied as a YAML manifest) and
prints the image reference of the best-matching figure, if any caption
clears the similarity cutoff. At most one figure is matched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		cfg := loadConfig()

		manifestPath, _ := cmd.Flags().GetString("manifest")
		figures, err := loadFigureManifest(manifestPath)
		if err != nil {
			return err
		}

		cutoff := cfg.Selection.FigureCutoff
		if v, _ := cmd.Flags().GetFloat64("cutoff"); v > 0 {
			cutoff = v
		}

		embedder, err := embed.NewOpenAI(cfg.Embedding)
		if err != nil {
			return err
		}

		imageRef, ok, err := relevance.MatchFigure(cmd.Context(), embedder, query, figures, cutoff)
		if err != nil {
			return fmt.Errorf("figure matching failed: %w", err)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "No figure matched.")
			return nil
		}
		fmt.Println(imageRef)
		return nil
	},
}

// loadFigureManifest reads a YAML list of figure entries.
func loadFigureManifest(path string) ([]types.FigureEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading figure manifest: %w", err)
	}
	var figures []types.FigureEntry
	if err := yaml.Unmarshal(data, &figures); err != nil {
		return nil, fmt.Errorf("parsing figure manifest: %w", err)
	}
	return figures, nil
}

func init() {
	figureCmd.Flags().String("manifest", "figures.yaml", "YAML manifest of figure entries")
	figureCmd.Flags().Float64("cutoff", 0, "similarity cutoff (default from config)")

	rootCmd.AddCommand(figureCmd)
}
