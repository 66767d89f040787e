// Package note defines the core domain types for notes.
package note

import (
	"errors"
	"strings"
	"time"
)

// Note is a single stored text entry with its tags and timestamps.
type Note struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Tags      Tags      `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validation errors.
var (
	ErrEmptyContent = errors.New("content is required")
	ErrEmptyTag     = errors.New("tag cannot be empty")
)

// ValidateContent reports whether s is acceptable as note content.
func ValidateContent(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyContent
	}
	return nil
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	n.Tags = n.Tags.Clone()
	return n
}

// Matches reports whether keyword occurs, ignoring case, in the content or
// in at least one tag.
func (n Note) Matches(keyword string) bool {
	k := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(n.Content), k) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), k) {
			return true
		}
	}
	return false
}

// Touch sets UpdatedAt to now, bumped forward if needed so it always
// advances past the previous value.
func (n *Note) Touch(now time.Time) {
	if !now.After(n.UpdatedAt) {
		now = n.UpdatedAt.Add(time.Nanosecond)
	}
	n.UpdatedAt = now
}
