// Package storage defines the workspace file-system abstraction.
package storage

import "time"

// FileInfo is lightweight metadata returned by list operations.
type FileInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provider is the interface for workspace file operations.
type Provider interface {
	// List returns metadata for every regular file under dir (relative to the workspace root).
	List(dir string) ([]FileInfo, error)
	// Read returns the raw bytes of the file at path (relative to the workspace root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the workspace root).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to the workspace root).
	Delete(path string) error
}
