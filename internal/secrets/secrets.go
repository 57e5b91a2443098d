// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of
// plain-text files. Each file in the directory represents one secret:
// the filename is the key name and the file contents (trimmed) are the
// value.
//
// Supported key files: google-cse-api-key, google-cse-id,
// semantic-scholar-api-key, openalex-email, embedding-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Secrets maps key names to their values.
type Secrets map[string]string

// Load reads all files in dir and returns the resulting Secrets map.
// A missing directory or missing files are not errors; Load returns an
// empty map. Unreadable files produce a warning on stderr but do not
// abort.
func Load(dir string) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(Secrets)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Lookup returns the value for key, or fallback when fallback is
// non-empty. An explicit fallback (typically a config or flag value)
// always wins over the secret file.
func (s Secrets) Lookup(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[key]
}
