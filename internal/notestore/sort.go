package notestore

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/matsen/nk/internal/note"
)

// SortKey selects the ordering of List and Search results.
type SortKey string

const (
	SortByID      SortKey = "id"      // ascending id
	SortByDate    SortKey = "date"    // created_at ascending
	SortByUpdate  SortKey = "update"  // updated_at ascending
	SortByContent SortKey = "content" // lexicographic content
)

// SortKeys lists the accepted sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortByID, SortByDate, SortByUpdate, SortByContent}
}

// ParseSortKey converts a flag value into a SortKey. An empty value means id.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByID, nil
	}
	for _, k := range SortKeys() {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort key %q (valid: %s)", ErrValidation, s, joinSortKeys())
}

func joinSortKeys() string {
	keys := SortKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// sortNotes orders notes by id first, then stably by key, so equal keys
// fall back to ascending id.
func sortNotes(notes []note.Note, key SortKey) {
	slices.SortFunc(notes, func(a, b note.Note) int { return cmp.Compare(a.ID, b.ID) })

	switch key {
	case SortByDate:
		slices.SortStableFunc(notes, func(a, b note.Note) int { return a.CreatedAt.Compare(b.CreatedAt) })
	case SortByUpdate:
		slices.SortStableFunc(notes, func(a, b note.Note) int { return a.UpdatedAt.Compare(b.UpdatedAt) })
	case SortByContent:
		slices.SortStableFunc(notes, func(a, b note.Note) int { return strings.Compare(a.Content, b.Content) })
	}
}
