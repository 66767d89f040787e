// Package index maintains a disposable SQLite copy of the notes file for
// full-text search and ad-hoc SQL queries. The notes file stays the source
// of truth; the index is rebuilt whenever the file's hash changes.
package index

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matsen/nk/internal/note"

	_ "modernc.org/sqlite"
)

// Record is one result row keyed by column name.
type Record map[string]any

// Index is an open SQLite index database.
type Index struct {
	db   *sql.DB
	path string
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS notes (
  id INTEGER PRIMARY KEY,
  content TEXT NOT NULL,
  created_at TEXT,
  updated_at TEXT
)`,
	`CREATE TABLE IF NOT EXISTS note_tags (
  note_id INTEGER NOT NULL,
  position INTEGER NOT NULL,
  tag TEXT NOT NULL,
  PRIMARY KEY (note_id, position)
)`,
	`CREATE INDEX IF NOT EXISTS idx_note_tags_tag ON note_tags(tag)`,
	`CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
  id UNINDEXED,
  content,
  tags
)`,
	`CREATE TABLE IF NOT EXISTS _meta (
  key TEXT PRIMARY KEY,
  value TEXT
)`,
}

// DBPath returns the index location for a notes file: same directory and
// base name with a .db extension.
func DBPath(notesPath string) string {
	ext := filepath.Ext(notesPath)
	p := strings.TrimSuffix(notesPath, ext) + ".db"
	if p == notesPath {
		p = notesPath + ".index.db"
	}
	return p
}

// Open opens or creates the index database at path.
func Open(path string) (*Index, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating tables: %w", err)
		}
	}

	return &Index{db: db, path: path}, nil
}

// Close releases the database.
func (x *Index) Close() error {
	return x.db.Close()
}

// Path returns the database file path.
func (x *Index) Path() string {
	return x.path
}

// HashFile returns the hex SHA-256 of the file at path. A missing file hashes
// as empty content.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			h := sha256.Sum256([]byte{})
			return hex.EncodeToString(h[:]), nil
		}
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// NeedsSync reports whether the index was built from content with a
// different hash.
func (x *Index) NeedsSync(hash string) (bool, error) {
	stored, err := x.meta("source_hash")
	if err != nil {
		return true, err
	}
	return stored != hash, nil
}

// Rebuild replaces the indexed content with notes and records hash as the
// source hash. It runs in a single transaction.
func (x *Index) Rebuild(notes []note.Note, hash string) error {
	tx, err := x.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"notes", "note_tags", "notes_fts"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, n := range notes {
		if err := insertNote(tx, n); err != nil {
			return fmt.Errorf("inserting note %d: %w", n.ID, err)
		}
	}

	if err := setMeta(tx, "source_hash", hash); err != nil {
		return fmt.Errorf("updating hash: %w", err)
	}
	if err := setMeta(tx, "last_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("updating sync time: %w", err)
	}

	return tx.Commit()
}

func insertNote(tx *sql.Tx, n note.Note) error {
	if _, err := tx.Exec(
		`INSERT INTO notes (id, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		n.ID, n.Content, formatTime(n.CreatedAt), formatTime(n.UpdatedAt),
	); err != nil {
		return err
	}

	for i, tag := range n.Tags {
		if _, err := tx.Exec(
			`INSERT INTO note_tags (note_id, position, tag) VALUES (?, ?, ?)`,
			n.ID, i, tag,
		); err != nil {
			return err
		}
	}

	_, err := tx.Exec(
		`INSERT INTO notes_fts (id, content, tags) VALUES (?, ?, ?)`,
		n.ID, n.Content, strings.Join(n.Tags, " "),
	)
	return err
}

func formatTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// Count returns the number of indexed notes.
func (x *Index) Count() (int, error) {
	var count int
	if err := x.db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}
	return count, nil
}

// LastSync returns when the index was last rebuilt, or the zero time if never.
func (x *Index) LastSync() (time.Time, error) {
	value, err := x.meta("last_sync")
	if err != nil || value == "" {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, value)
}

// QueryTable executes a SQL statement and returns the column names in select
// order along with the rows.
func (x *Index) QueryTable(query string) ([]string, []Record, error) {
	rows, err := x.db.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	records, err := scanRecords(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	return cols, records, nil
}

// SearchText runs an FTS5 match over content and tags and returns matching
// note ids, best match first. A limit <= 0 means no limit.
func (x *Index) SearchText(query string, limit int) ([]int, error) {
	q := PrepareFTSQuery(query)
	if q == "" {
		return nil, nil
	}

	stmt := `SELECT id FROM notes_fts WHERE notes_fts MATCH ? ORDER BY rank, id`
	args := []any{q}
	if limit > 0 {
		stmt += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := x.db.Query(stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// PrepareFTSQuery quotes every whitespace-separated term as an FTS5 string
// so punctuation and operator words (AND, OR, NEAR) are matched literally.
// The quoted terms are implicitly ANDed.
func PrepareFTSQuery(query string) string {
	terms := strings.Fields(query)
	for i, term := range terms {
		terms[i] = `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}

func (x *Index) meta(key string) (string, error) {
	var value sql.NullString
	err := x.db.QueryRow("SELECT value FROM _meta WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value.String, nil
}

func setMeta(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

func scanRecords(rows *sql.Rows, cols []string) ([]Record, error) {
	var records []Record
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		record := make(Record, len(cols))
		for i, col := range cols {
			// modernc returns TEXT as string but BLOB as []byte
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
