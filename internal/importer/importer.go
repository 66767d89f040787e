// Package importer turns files on disk into note drafts.
package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrEmptyDraft is returned when a file yields no usable text.
var ErrEmptyDraft = errors.New("no text content")

// ErrNoMatches is returned when none of the patterns match a file.
var ErrNoMatches = errors.New("no files matched")

// Draft is the text extracted from one source file.
type Draft struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// Expand resolves glob patterns (with ** support) into a sorted,
// deduplicated list of regular files. Patterns without glob syntax are
// taken literally and must exist.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 && !hasMeta(pattern) {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("reading %s: %w", pattern, err)
			}
		}
		for _, m := range matches {
			clean := filepath.Clean(m)
			if !seen[clean] {
				seen[clean] = true
				files = append(files, clean)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, strings.Join(patterns, " "))
	}
	sort.Strings(files)
	return files, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// ReadFile extracts a draft from path. PDFs are converted to plain text;
// everything else must be UTF-8 text.
func ReadFile(path string) (Draft, error) {
	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		t, err := extractPDFText(path)
		if err != nil {
			return Draft{}, fmt.Errorf("reading PDF %s: %w", path, err)
		}
		text = t
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return Draft{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			return Draft{}, fmt.Errorf("%s: not UTF-8 text", path)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Draft{}, fmt.Errorf("%s: %w", path, ErrEmptyDraft)
	}
	return Draft{Source: path, Content: text}, nil
}
