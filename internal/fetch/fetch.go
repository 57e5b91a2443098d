// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the PDF for a selected candidate.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Download fetches the candidate's PDF into cfg.PapersDir and returns
// the local path. The filename is a slug of the title. If the file
// already exists the download is skipped. The PDF is written to a
// temporary file and renamed on success so a failed download never
// leaves a truncated PDF behind.
func Download(ctx context.Context, client *http.Client, candidate types.Candidate, cfg types.FetchConfig, w io.Writer) (string, bool, error) {
	if candidate.PDFLink == "" {
		return "", false, fmt.Errorf("candidate %q has no PDF link", candidate.Title)
	}

	slug := Slug(candidate.Title)
	if slug == "" {
		slug = "paper"
	}
	destPath := filepath.Join(cfg.PapersDir, slug+".pdf")

	if _, err := os.Stat(destPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", slug)
		return destPath, true, nil
	}

	if err := os.MkdirAll(cfg.PapersDir, 0o755); err != nil {
		return "", false, fmt.Errorf("creating papers directory: %w", err)
	}

	pdfURL := NormalizePDFLink(candidate.PDFLink)
	fmt.Fprintf(w, "downloading: %s\n", slug)

	if err := downloadFile(ctx, client, pdfURL, destPath, cfg); err != nil {
		return "", false, fmt.Errorf("downloading %s: %w", slug, err)
	}
	return destPath, false, nil
}

// NormalizePDFLink rewrites arXiv abstract URLs to their PDF form;
// other links pass through unchanged.
func NormalizePDFLink(link string) string {
	if strings.Contains(link, "arxiv.org/abs/") {
		return strings.Replace(link, "/abs/", "/pdf/", 1)
	}
	return link
}

// Slug converts a title into a filesystem-safe name: lowercase
// alphanumerics with runs of everything else collapsed to single
// hyphens, truncated to 80 characters.
func Slug(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 80 {
		slug = strings.Trim(slug[:80], "-")
	}
	return slug
}

// downloadFile fetches url to destPath using a temporary file.
func downloadFile(ctx context.Context, client *http.Client, url, destPath string, cfg types.FetchConfig) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
