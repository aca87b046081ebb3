package docstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/scrivenhq/scriven/internal/apperr"
)

// Canvas is a per-user canvas document: references to media assets plus the
// note content shown alongside them.
type Canvas struct {
	UserID       string    `json:"user_id"`
	Videos       []string  `json:"videos"`
	Audios       []string  `json:"audios"`
	SoundEffects []string  `json:"sound_effects"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpsertCanvas inserts or replaces the canvas for a user. created_at is
// preserved across updates.
func (db *DB) UpsertCanvas(c Canvas) error {
	videos, _ := json.Marshal(nonNil(c.Videos))
	audios, _ := json.Marshal(nonNil(c.Audios))
	sfx, _ := json.Marshal(nonNil(c.SoundEffects))

	now := time.Now().UTC()
	_, err := db.conn.Exec(`
		INSERT INTO canvases (user_id, videos, audios, sound_effects, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			videos        = excluded.videos,
			audios        = excluded.audios,
			sound_effects = excluded.sound_effects,
			content       = excluded.content,
			updated_at    = excluded.updated_at
	`, c.UserID, string(videos), string(audios), string(sfx), c.Content, now, now)
	if err != nil {
		return fmt.Errorf("docstore: upsert canvas: %w", err)
	}
	return nil
}

// GetCanvas returns the canvas for a user, or apperr.ErrNotFound.
func (db *DB) GetCanvas(userID string) (*Canvas, error) {
	var (
		c                  Canvas
		videos, audios, sfx string
	)
	err := db.conn.QueryRow(`
		SELECT user_id, videos, audios, sound_effects, content, created_at, updated_at
		FROM canvases WHERE user_id = ?
	`, userID).Scan(&c.UserID, &videos, &audios, &sfx, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("docstore: get canvas: %w", err)
	}

	if err := json.Unmarshal([]byte(videos), &c.Videos); err != nil {
		return nil, fmt.Errorf("docstore: decode videos: %w", err)
	}
	if err := json.Unmarshal([]byte(audios), &c.Audios); err != nil {
		return nil, fmt.Errorf("docstore: decode audios: %w", err)
	}
	if err := json.Unmarshal([]byte(sfx), &c.SoundEffects); err != nil {
		return nil, fmt.Errorf("docstore: decode sound effects: %w", err)
	}
	c.Videos = nonNil(c.Videos)
	c.Audios = nonNil(c.Audios)
	c.SoundEffects = nonNil(c.SoundEffects)
	return &c, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
