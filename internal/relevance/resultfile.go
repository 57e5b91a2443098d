// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// SelectionFile is the on-disk representation of a discovery run and
// its selection. A researcher can save a run to a file and feed the
// selection to a later fetch without re-querying sources.
type SelectionFile struct {
	Query    string                  `yaml:"query"`
	Config   SelectionFileConfig     `yaml:"config"`
	Selected []types.ScoredCandidate `yaml:"selected"`
	Summary  SelectionSummary        `yaml:"summary"`
}

// SelectionFileConfig records the knobs that produced the selection.
type SelectionFileConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	Band                float64 `yaml:"band"`
	MaxSelected         int     `yaml:"max_selected"`
}

// SelectionSummary records run statistics and a timestamp.
type SelectionSummary struct {
	CandidatesSeen    int       `yaml:"candidates_seen"`
	DuplicatesRemoved int       `yaml:"duplicates_removed"`
	AdapterErrors     []string  `yaml:"adapter_errors,omitempty"`
	Timestamp         time.Time `yaml:"timestamp"`
}

// WriteSelectionFile saves a run's query, configuration, selection, and
// summary to a YAML file.
func WriteSelectionFile(path, query string, cfg types.SelectionConfig, selected []types.ScoredCandidate, summary SelectionSummary) error {
	sf := SelectionFile{
		Query: query,
		Config: SelectionFileConfig{
			SimilarityThreshold: cfg.SimilarityThreshold,
			Band:                cfg.Band,
			MaxSelected:         cfg.MaxSelected,
		},
		Selected: selected,
		Summary:  summary,
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling selection file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSelectionFile loads a previously saved selection file from disk.
func ReadSelectionFile(path string) (*SelectionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading selection file: %w", err)
	}
	var sf SelectionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing selection file: %w", err)
	}
	return &sf, nil
}
