// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures of the paper-scout
// engine: candidate documents proposed by source adapters, scored
// candidates produced by relevance selection, figure entries consumed
// by figure matching, and the configuration blocks for each stage.
package types

// Candidate is a document metadata record proposed by a source adapter:
// a title plus a retrievable PDF link. Candidates are immutable after
// creation. Identity for deduplication is the normalized title together
// with the PDF link.
type Candidate struct {
	// Title is the document title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// PDFLink is the URL from which the document can be retrieved.
	PDFLink string `json:"pdf_link" yaml:"pdf_link"`

	// Source identifies which adapter found this candidate
	// (e.g. "arxiv", "semantic_scholar"). Informational only; it does
	// not participate in deduplication identity.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ScoredCandidate is a Candidate plus its cosine similarity to the
// active query, in [-1, 1]. Scores derive from exactly one query and
// the candidate's title text; they are never cached or reused across
// queries. Created only by relevance selection and never mutated.
type ScoredCandidate struct {
	Candidate `yaml:",inline"`

	// Score is the cosine similarity between the query embedding and
	// the title embedding.
	Score float64 `json:"score" yaml:"score"`
}

// FigureEntry pairs an opaque reference to stored image bytes with the
// caption extracted alongside it. Entries are produced by document
// image extraction (an external collaborator) and consumed only by
// figure matching.
type FigureEntry struct {
	// ImageRef is an opaque handle to the stored image (typically a
	// file path).
	ImageRef string `json:"image_ref" yaml:"image_ref"`

	// Caption is the figure caption text.
	Caption string `json:"caption" yaml:"caption"`
}
