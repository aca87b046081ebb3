package docstore

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/scrivenhq/scriven/internal/apperr"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "scriven-docstore-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCanvasUpsertAndGet(t *testing.T) {
	db := testDB(t)

	c := Canvas{
		UserID:       "user-1",
		Videos:       []string{"assets/intro.mp4"},
		Audios:       []string{"assets/voice.mp3"},
		SoundEffects: []string{},
		Content:      "<p>canvas notes</p>",
	}
	if err := db.UpsertCanvas(c); err != nil {
		t.Fatalf("UpsertCanvas: %v", err)
	}

	got, err := db.GetCanvas("user-1")
	if err != nil {
		t.Fatalf("GetCanvas: %v", err)
	}
	if got.Content != c.Content {
		t.Errorf("content = %q", got.Content)
	}
	if len(got.Videos) != 1 || got.Videos[0] != "assets/intro.mp4" {
		t.Errorf("videos = %v", got.Videos)
	}
	if got.SoundEffects == nil {
		t.Error("sound effects should be non-nil")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestCanvasUpsertPreservesCreatedAt(t *testing.T) {
	db := testDB(t)

	_ = db.UpsertCanvas(Canvas{UserID: "u", Content: "v1"})
	first, _ := db.GetCanvas("u")

	_ = db.UpsertCanvas(Canvas{UserID: "u", Content: "v2"})
	second, err := db.GetCanvas("u")
	if err != nil {
		t.Fatal(err)
	}
	if second.Content != "v2" {
		t.Errorf("content = %q, want v2", second.Content)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
}

func TestCanvasMissing(t *testing.T) {
	db := testDB(t)
	if _, err := db.GetCanvas("ghost"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTokenIssueAndConsume(t *testing.T) {
	db := testDB(t)

	if err := db.IssueToken("user-1", "plain-secret"); err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// Plaintext must not appear in the stored hash.
	var stored string
	_ = db.conn.QueryRow(`SELECT token_hash FROM verification_tokens WHERE user_id = ?`, "user-1").Scan(&stored)
	if stored == "" || stored == "plain-secret" {
		t.Errorf("stored hash = %q", stored)
	}

	if err := db.ConsumeToken("user-1", "plain-secret", time.Hour); err != nil {
		t.Fatalf("ConsumeToken: %v", err)
	}

	// Single use: second consume fails.
	if err := db.ConsumeToken("user-1", "plain-secret", time.Hour); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("second consume = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenMismatchKeepsRow(t *testing.T) {
	db := testDB(t)
	_ = db.IssueToken("user-1", "right")

	if err := db.ConsumeToken("user-1", "wrong", time.Hour); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("mismatch = %v, want ErrTokenInvalid", err)
	}
	// The correct token still works after a failed attempt.
	if err := db.ConsumeToken("user-1", "right", time.Hour); err != nil {
		t.Errorf("consume after mismatch = %v", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	db := testDB(t)
	if err := db.issueTokenAt("user-1", "old", time.Now().UTC().Add(-2*time.Hour)); err != nil {
		t.Fatal(err)
	}

	if err := db.ConsumeToken("user-1", "old", time.Hour); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expired consume = %v, want ErrTokenExpired", err)
	}
	// Expired rows are removed.
	if err := db.ConsumeToken("user-1", "old", time.Hour); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("after expiry cleanup = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenReissueReplaces(t *testing.T) {
	db := testDB(t)
	_ = db.IssueToken("user-1", "first")
	_ = db.IssueToken("user-1", "second")

	if err := db.ConsumeToken("user-1", "first", time.Hour); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("old token = %v, want ErrTokenInvalid", err)
	}
	// Mismatch left the row; the replacement token consumes fine.
	if err := db.ConsumeToken("user-1", "second", time.Hour); err != nil {
		t.Errorf("new token = %v", err)
	}
}
