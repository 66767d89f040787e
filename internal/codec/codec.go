// Package codec serializes notes to and from the on-disk notes document.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/matsen/nk/internal/note"
	"gopkg.in/yaml.v3"
)

// Codec errors. Callers match them with errors.Is.
var (
	ErrCorruptData = errors.New("corrupt notes file")
	ErrIO          = errors.New("notes file I/O")
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension. Anything that is not
// .yml or .yaml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// wireNote is the decoding shape. Pointers distinguish missing required
// fields from zero values.
type wireNote struct {
	ID        *int       `json:"id" yaml:"id"`
	Content   *string    `json:"content" yaml:"content"`
	Tags      []string   `json:"tags" yaml:"tags"`
	CreatedAt *time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" yaml:"updated_at"`
}

type wireDocument struct {
	Notes *[]wireNote `json:"notes" yaml:"notes"`
}

// outNote is the encoding shape.
type outNote struct {
	ID        int       `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Tags      []string  `json:"tags" yaml:"tags"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

type outDocument struct {
	Notes []outNote `json:"notes" yaml:"notes"`
}

// Decode parses a notes document and validates it against the schema.
// Whitespace-only input decodes to no notes.
func Decode(data []byte, f Format) ([]note.Note, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc wireDocument
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorruptData, f, err)
	}
	if doc.Notes == nil {
		return nil, fmt.Errorf("%w: missing \"notes\" list", ErrCorruptData)
	}

	notes := make([]note.Note, 0, len(*doc.Notes))
	seen := make(map[int]bool, len(*doc.Notes))
	for i, w := range *doc.Notes {
		n, err := w.toNote()
		if err != nil {
			return nil, fmt.Errorf("%w: note %d: %v", ErrCorruptData, i+1, err)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrCorruptData, n.ID)
		}
		seen[n.ID] = true
		notes = append(notes, n)
	}
	return notes, nil
}

func (w wireNote) toNote() (note.Note, error) {
	if w.ID == nil {
		return note.Note{}, errors.New("missing id")
	}
	if *w.ID < 0 {
		return note.Note{}, fmt.Errorf("negative id %d", *w.ID)
	}
	if w.Content == nil {
		return note.Note{}, fmt.Errorf("id %d: missing content", *w.ID)
	}

	tags, err := note.NormalizeTags(w.Tags)
	if err != nil {
		return note.Note{}, fmt.Errorf("id %d: %w", *w.ID, err)
	}

	n := note.Note{
		ID:      *w.ID,
		Content: *w.Content,
		Tags:    tags,
	}
	if w.CreatedAt != nil {
		n.CreatedAt = w.CreatedAt.UTC()
	}
	switch {
	case w.UpdatedAt == nil:
		n.UpdatedAt = n.CreatedAt
	case w.CreatedAt == nil:
		n.UpdatedAt = w.UpdatedAt.UTC()
		n.CreatedAt = n.UpdatedAt
	default:
		n.UpdatedAt = w.UpdatedAt.UTC()
		if n.UpdatedAt.Before(n.CreatedAt) {
			return note.Note{}, fmt.Errorf("id %d: updated_at precedes created_at", n.ID)
		}
	}
	return n, nil
}

// Encode renders notes as a document, ordered by id.
func Encode(notes []note.Note, f Format) ([]byte, error) {
	doc := outDocument{Notes: make([]outNote, 0, len(notes))}
	for _, n := range notes {
		doc.Notes = append(doc.Notes, outNote{
			ID:        n.ID,
			Content:   n.Content,
			Tags:      n.Tags.Clone(),
			CreatedAt: n.CreatedAt.UTC(),
			UpdatedAt: n.UpdatedAt.UTC(),
		})
	}
	slices.SortFunc(doc.Notes, func(a, b outNote) int { return a.ID - b.ID })

	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	}
}
