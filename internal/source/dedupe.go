// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Dedupe collapses duplicate candidates by normalized identity: the
// normalized title paired with the PDF link. The first occurrence of
// an identity wins and survivors keep their relative order, so the
// function is idempotent. Candidates missing a usable title or link
// are malformed and dropped silently.
func Dedupe(candidates []types.Candidate) []types.Candidate {
	type identity struct {
		title string
		link  string
	}

	seen := make(map[identity]struct{}, len(candidates))
	deduped := make([]types.Candidate, 0, len(candidates))
	for _, c := range candidates {
		title := normalizeTitle(c.Title)
		link := strings.TrimSpace(c.PDFLink)
		if title == "" || link == "" {
			continue
		}
		key := identity{title: title, link: link}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, c)
	}
	return deduped
}

// normalizeTitle trims the title, collapses internal newlines and runs
// of whitespace to single spaces, and lower-cases.
func normalizeTitle(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}
