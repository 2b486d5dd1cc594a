package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// storageKey is the fixed, versioned key the serialized document lives under.
// Bump the suffix when the storage layout itself (not the document schema)
// changes incompatibly.
const storageKey = "ats-resume-data:v1"

// SQLiteStorage keeps the serialized document in a single-row key/value table
// inside a local SQLite database file.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// document table exists. Parent directories are created as required.
func OpenSQLite(path string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate storage database: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Load reads the document under the fixed key.
func (s *SQLiteStorage) Load() ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, storageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load document: %w", err)
	}
	return []byte(value), true, nil
}

// Save writes the full document under the fixed key.
func (s *SQLiteStorage) Save(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		storageKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Clear removes the stored document.
func (s *SQLiteStorage) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM documents WHERE key = ?`, storageKey); err != nil {
		return fmt.Errorf("failed to clear document: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
