// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-scout CLI: candidate
// discovery across academic catalogs, relevance selection, figure
// matching, PDF fetch, and run history.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-scout/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the paper-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-scout",
	Short: "Discover and select research papers relevant to a topic",
	Long: `paper-scout discovers candidate papers for a topic query from several
independent catalogs (arXiv, Semantic Scholar, OpenAlex, Google Custom
Search, an optional remote crawler), removes duplicates, and selects
the candidates most relevant to the query by embedding similarity.

The same scoring primitive matches a conversational query against a
set of document figures to decide whether a figure should be shown.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-scout.yaml or ~/.config/paper-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-scout"))
		}
	}

	viper.SetEnvPrefix("PAPER_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
