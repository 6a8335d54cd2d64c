// Package storage provides SQLite-based persistence for the dictionary cache.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the word cache.
type Store struct {
	db *sql.DB
}

// CacheInfo describes the cached word set.
type CacheInfo struct {
	Words   int
	BuiltAt time.Time // zero if the cache was never written
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS dictionary_words (
			word TEXT PRIMARY KEY
		) WITHOUT ROWID;

		CREATE TABLE IF NOT EXISTS dictionary_meta (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			word_count INTEGER NOT NULL,
			built_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadWords returns every cached word in ascending order.
// An empty, never-built cache yields an empty slice and no error.
func (s *Store) LoadWords() ([]string, error) {
	rows, err := s.db.Query("SELECT word FROM dictionary_words ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return words, nil
}

// SaveWords replaces the cached word set in a single transaction.
func (s *Store) SaveWords(words []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM dictionary_words"); err != nil {
		return fmt.Errorf("storage: cannot clear words: %w", err)
	}

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO dictionary_words (word) VALUES (?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err := stmt.Exec(w); err != nil {
			return fmt.Errorf("storage: cannot save word %q: %w", w, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO dictionary_meta (id, word_count, built_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET word_count = excluded.word_count, built_at = excluded.built_at`,
		len(words),
	); err != nil {
		return fmt.Errorf("storage: cannot record cache metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit words: %w", err)
	}
	return nil
}

// Info reports how many words are cached and when they were written.
func (s *Store) Info() (CacheInfo, error) {
	var info CacheInfo
	if err := s.db.QueryRow("SELECT COUNT(*) FROM dictionary_words").Scan(&info.Words); err != nil {
		return info, fmt.Errorf("storage: cannot count words: %w", err)
	}

	var builtAt any
	err := s.db.QueryRow("SELECT built_at FROM dictionary_meta WHERE id = 1").Scan(&builtAt)
	if err == sql.ErrNoRows {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("storage: cannot query cache metadata: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := builtAt.(type) {
	case time.Time:
		info.BuiltAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			info.BuiltAt = parsed
		}
	}
	return info, nil
}

// ClearWords deletes the cached word set.
func (s *Store) ClearWords() error {
	if _, err := s.db.Exec("DELETE FROM dictionary_words; DELETE FROM dictionary_meta;"); err != nil {
		return fmt.Errorf("storage: cannot clear words: %w", err)
	}
	return nil
}
