package docstore

import (
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/scrivenhq/scriven/internal/checksum"
)

var (
	// ErrTokenInvalid signals an unknown or mismatching verification token.
	ErrTokenInvalid = errors.New("docstore: invalid token")
	// ErrTokenExpired signals a token past its TTL.
	ErrTokenExpired = errors.New("docstore: token expired")
)

// IssueToken stores the SHA-256 hash of a verification token for a user.
// The plaintext is never persisted. A user has at most one active token;
// issuing replaces any previous one.
func (db *DB) IssueToken(userID, token string) error {
	return db.issueTokenAt(userID, token, time.Now().UTC())
}

func (db *DB) issueTokenAt(userID, token string, issuedAt time.Time) error {
	_, err := db.conn.Exec(`
		INSERT INTO verification_tokens (user_id, token_hash, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			token_hash = excluded.token_hash,
			created_at = excluded.created_at
	`, userID, checksum.Sum([]byte(token)), issuedAt)
	if err != nil {
		return fmt.Errorf("docstore: issue token: %w", err)
	}
	return nil
}

// ConsumeToken verifies a token against the stored hash and deletes it.
// Single use: a successful consume removes the row, and an expired token is
// removed as well. Mismatches leave the row in place.
func (db *DB) ConsumeToken(userID, token string, ttl time.Duration) error {
	var (
		storedHash string
		createdAt  time.Time
	)
	err := db.conn.QueryRow(`
		SELECT token_hash, created_at FROM verification_tokens WHERE user_id = ?
	`, userID).Scan(&storedHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTokenInvalid
	}
	if err != nil {
		return fmt.Errorf("docstore: lookup token: %w", err)
	}

	if time.Since(createdAt) > ttl {
		_, _ = db.conn.Exec(`DELETE FROM verification_tokens WHERE user_id = ?`, userID)
		return ErrTokenExpired
	}

	hash := checksum.Sum([]byte(token))
	if subtle.ConstantTimeCompare([]byte(hash), []byte(storedHash)) != 1 {
		return ErrTokenInvalid
	}

	if _, err := db.conn.Exec(`DELETE FROM verification_tokens WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("docstore: delete token: %w", err)
	}
	return nil
}
