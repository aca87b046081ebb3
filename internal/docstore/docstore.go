// Package docstore provides SQLite-backed persistence for canvas documents
// and one-time verification tokens.
package docstore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS canvases (
	user_id       TEXT PRIMARY KEY,
	videos        TEXT NOT NULL DEFAULT '[]',
	audios        TEXT NOT NULL DEFAULT '[]',
	sound_effects TEXT NOT NULL DEFAULT '[]',
	content       TEXT NOT NULL DEFAULT '',
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS verification_tokens (
	user_id    TEXT PRIMARY KEY,
	token_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

// Store defines the document store operations. Consumers should depend on
// this interface rather than the concrete *DB type to facilitate testing.
type Store interface {
	UpsertCanvas(c Canvas) error
	GetCanvas(userID string) (*Canvas, error)
	IssueToken(userID, token string) error
	ConsumeToken(userID, token string, ttl time.Duration) error
	Close() error
}

// Verify *DB satisfies Store at compile time.
var _ Store = (*DB)(nil)

// DB wraps a sql.DB with document store operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("docstore: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("docstore: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("docstore: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
