// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// FormatTable writes the selection as a human-readable table to w.
func FormatTable(selected []types.ScoredCandidate, w io.Writer) {
	if len(selected) == 0 {
		fmt.Fprintln(w, "No candidates selected.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-6s  %-16s  %s\n",
		"Rank", "Title", "Score", "Source", "PDF")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, sc := range selected {
		title := sc.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-6.3f  %-16s  %s\n",
			i+1, title, sc.Score, sc.Source, sc.PDFLink)
	}
}

// FormatJSON writes the selection as indented JSON to w.
func FormatJSON(selected []types.ScoredCandidate, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(selected)
}
