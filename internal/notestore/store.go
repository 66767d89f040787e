// Package notestore owns the note collection and every operation that
// mutates it.
package notestore

import (
	"errors"
	"fmt"
	"time"

	"github.com/matsen/nk/internal/codec"
	"github.com/matsen/nk/internal/note"
)

// Store errors.
var (
	ErrNotFound   = errors.New("note not found")
	ErrValidation = errors.New("invalid input")
)

// Store holds notes keyed by id. It is not safe for concurrent use.
type Store struct {
	notes map[int]*note.Note
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		notes: make(map[int]*note.Note),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromNotes builds a store from existing notes. Duplicate or negative ids
// are rejected.
func FromNotes(notes []note.Note, opts ...Option) (*Store, error) {
	s := New(opts...)
	for _, n := range notes {
		if n.ID < 0 {
			return nil, fmt.Errorf("%w: negative id %d", codec.ErrCorruptData, n.ID)
		}
		if _, exists := s.notes[n.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %d", codec.ErrCorruptData, n.ID)
		}
		c := n.Clone()
		s.notes[n.ID] = &c
	}
	return s, nil
}

// Load reads the store persisted at path. A missing file gives an empty store.
func Load(path string, opts ...Option) (*Store, error) {
	notes, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromNotes(notes, opts...)
}

// Save persists the store to path atomically.
func (s *Store) Save(path string) error {
	return codec.WriteFile(path, s.List(SortByID))
}

// Len returns the number of notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// NextID returns the id the next Add will assign: the smallest
// non-negative integer not in use.
func (s *Store) NextID() int {
	id := 0
	for {
		if _, used := s.notes[id]; !used {
			return id
		}
		id++
	}
}

// timestamp returns the current time in UTC without a monotonic reading so
// it compares equal after a persistence round-trip.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Round(0)
}

// Add creates a note and returns its id.
func (s *Store) Add(content string, tags ...string) (int, error) {
	if err := note.ValidateContent(content); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	normalized, err := note.NormalizeTags(tags)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	now := s.timestamp()
	n := &note.Note{
		ID:        s.NextID(),
		Content:   content,
		Tags:      normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes[n.ID] = n
	return n.ID, nil
}

// Get returns a copy of the note with the given id.
func (s *Store) Get(id int) (note.Note, error) {
	n, err := s.lookup(id)
	if err != nil {
		return note.Note{}, err
	}
	return n.Clone(), nil
}

func (s *Store) lookup(id int) (*note.Note, error) {
	n, ok := s.notes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return n, nil
}

// Remove deletes a note, freeing its id for reuse.
func (s *Store) Remove(id int) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.notes, id)
	return nil
}

// Edit replaces the note's content and refreshes UpdatedAt. An empty content
// leaves the text unchanged and only refreshes the timestamp; whitespace-only
// content is rejected.
func (s *Store) Edit(id int, content string) error {
	n, err := s.lookup(id)
	if err != nil {
		return err
	}
	if content != "" {
		if err := note.ValidateContent(content); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		n.Content = content
	}
	n.Touch(s.timestamp())
	return nil
}

// AddTag inserts tags that are not already present and refreshes UpdatedAt.
func (s *Store) AddTag(id int, tags ...string) error {
	n, err := s.lookup(id)
	if err != nil {
		return err
	}
	normalized, err := validTags(tags)
	if err != nil {
		return err
	}

	for _, t := range normalized {
		n.Tags.Add(t)
	}
	n.Touch(s.timestamp())
	return nil
}

// RemoveTag removes the given tags. Absent tags are ignored; UpdatedAt only
// changes when something was removed.
func (s *Store) RemoveTag(id int, tags ...string) error {
	n, err := s.lookup(id)
	if err != nil {
		return err
	}
	normalized, err := validTags(tags)
	if err != nil {
		return err
	}

	removed := false
	for _, t := range normalized {
		if n.Tags.Remove(t) {
			removed = true
		}
	}
	if removed {
		n.Touch(s.timestamp())
	}
	return nil
}

func validTags(tags []string) (note.Tags, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: no tags given", ErrValidation)
	}
	normalized, err := note.NormalizeTags(tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return normalized, nil
}

// Clear removes every note.
func (s *Store) Clear() int {
	count := len(s.notes)
	s.notes = make(map[int]*note.Note)
	return count
}

// List returns copies of all notes ordered by key.
func (s *Store) List(key SortKey) []note.Note {
	return s.collect(key, func(note.Note) bool { return true })
}

// Search returns copies of the notes whose content or tags contain keyword,
// ignoring case, ordered by key.
func (s *Store) Search(keyword string, key SortKey) []note.Note {
	return s.collect(key, func(n note.Note) bool { return n.Matches(keyword) })
}

func (s *Store) collect(key SortKey, keep func(note.Note) bool) []note.Note {
	out := make([]note.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if keep(*n) {
			out = append(out, n.Clone())
		}
	}
	sortNotes(out, key)
	return out
}
