// Package history keeps a local log of finished chat turns in SQLite.
// The conversation core does not depend on it; losing the file only loses
// the transcript, never a session.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Turn is one recorded message of a conversation.
type Turn struct {
	ID        int64
	Identity  string
	Role      string
	Content   string
	CreatedAt time.Time
}

// Store is a SQLite-backed turn log.
type Store struct {
	db *sql.DB
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS turns (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	identity   TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_turns_identity ON turns(identity, id);
`

// Open opens (and creates, if needed) the turn log at dbPath.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=3000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set pragma %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// AppendTurn records one message for an identity.
func (s *Store) AppendTurn(ctx context.Context, identity, role, content string) error {
	if strings.TrimSpace(identity) == "" {
		return fmt.Errorf("identity is required")
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO turns (identity, role, content) VALUES (?, ?, ?)",
		identity, role, content,
	)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// ListTurns returns the most recent turns for an identity, oldest first.
// limit <= 0 means no limit.
func (s *Store) ListTurns(ctx context.Context, identity string, limit int) ([]Turn, error) {
	query := "SELECT id, identity, role, content, created_at FROM turns WHERE identity = ? ORDER BY id"
	args := []any{identity}
	if limit > 0 {
		query = "SELECT id, identity, role, content, created_at FROM (" +
			"SELECT id, identity, role, content, created_at FROM turns WHERE identity = ? ORDER BY id DESC LIMIT ?" +
			") ORDER BY id"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.Identity, &t.Role, &t.Content, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return turns, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
