package codec

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matsen/nk/internal/note"
)

const (
	// TempFilePrefix prefixes temporary files written during atomic saves.
	TempFilePrefix = ".nk-tmp-"

	defaultFilePerm os.FileMode = 0644
	defaultDirPerm  os.FileMode = 0755
)

// ReadFile loads notes from path. A missing file yields no notes and no error.
func ReadFile(path string) ([]note.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}

	notes, err := Decode(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return notes, nil
}

// WriteFile replaces the document at path atomically. On failure the previous
// file is left untouched.
func WriteFile(path string, notes []note.Note) error {
	data, err := Encode(notes, FormatFor(path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	perm := defaultFilePerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return fmt.Errorf("%w: creating directory: %w", ErrIO, err)
	}

	if err := writeFileAtomic(path, data, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file in the target directory, syncs it
// and renames it over filename.
func writeFileAtomic(filename string, data []byte, perm fs.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}
