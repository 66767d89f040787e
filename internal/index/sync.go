package index

import (
	"fmt"

	"github.com/matsen/nk/internal/codec"
)

// EnsureSynced rebuilds the index from the notes file at notesPath when the
// file has changed since the last rebuild. It reports whether a rebuild ran.
func (x *Index) EnsureSynced(notesPath string) (bool, error) {
	hash, err := HashFile(notesPath)
	if err != nil {
		return false, fmt.Errorf("computing hash: %w", err)
	}

	stale, err := x.NeedsSync(hash)
	if err != nil {
		return false, fmt.Errorf("checking index: %w", err)
	}
	if !stale {
		return false, nil
	}

	notes, err := codec.ReadFile(notesPath)
	if err != nil {
		return false, err
	}
	if err := x.Rebuild(notes, hash); err != nil {
		return false, fmt.Errorf("rebuilding index: %w", err)
	}
	return true, nil
}
