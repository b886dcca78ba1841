package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sqlx.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sqlx.DB for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Questions returns a QuestionRepo backed by this store.
func (s *Store) Questions() *QuestionRepo {
	return &QuestionRepo{db: s.db}
}

// Mistakes returns a MistakeRepo backed by this store.
func (s *Store) Mistakes() *MistakeRepo {
	return &MistakeRepo{db: s.db}
}

// SymbolProgress returns a SymbolProgressRepo backed by this store.
func (s *Store) SymbolProgress() *SymbolProgressRepo {
	return &SymbolProgressRepo{db: s.db}
}

// AugmentLog returns an AugmentLogRepo backed by this store.
func (s *Store) AugmentLog() *AugmentLogRepo {
	return &AugmentLogRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema. Timestamps are stored as Unix seconds so
// due-ness comparisons are plain integer comparisons.
func migrate(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content TEXT NOT NULL,
			pinyin TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS mistakes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			question_id INTEGER NOT NULL,
			wrong_answer TEXT NOT NULL DEFAULT '',
			error_count INTEGER NOT NULL DEFAULT 1,
			review_stage INTEGER NOT NULL DEFAULT 0,
			last_reviewed_at INTEGER,
			next_review_at INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			UNIQUE(user_id, question_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_mistakes_due
			ON mistakes(user_id, next_review_at)`,
		`CREATE TABLE IF NOT EXISTS symbol_progress (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			symbol_id TEXT NOT NULL,
			study_count INTEGER NOT NULL DEFAULT 1,
			is_mastered INTEGER NOT NULL DEFAULT 0,
			mastery_level INTEGER NOT NULL DEFAULT 0,
			last_studied_at INTEGER NOT NULL,
			next_review_at INTEGER NOT NULL,
			UNIQUE(user_id, symbol_id)
		)`,
		`CREATE TABLE IF NOT EXISTS augment_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			purpose TEXT NOT NULL,
			input_tokens INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL DEFAULT 0,
			error_message TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PINDRILL_DB environment variable
// 2. $XDG_DATA_HOME/pindrill/pindrill.db
// 3. ~/.local/share/pindrill/pindrill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PINDRILL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "pindrill", "pindrill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
