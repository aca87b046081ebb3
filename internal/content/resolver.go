// Package content resolves workspace file content through an ordered chain of
// sources: the local workspace first, then the remote backend. The fallback
// policy lives here so it can be tested independently of transport details.
package content

import (
	"context"
	"errors"
	"os"

	"github.com/scrivenhq/scriven/internal/apperr"
	"github.com/scrivenhq/scriven/internal/backend"
	"github.com/scrivenhq/scriven/internal/storage"
)

// Request identifies a workspace file plus the caller's credential.
type Request struct {
	WorkspaceID string
	Path        string
	Token       string
}

// Source produces content for a request. A Source reports apperr.ErrNotFound
// when it does not hold the file; any other error is terminal for the whole
// resolution.
type Source interface {
	Fetch(ctx context.Context, req Request) (string, error)
}

// LocalSource reads from the local workspace store.
type LocalSource struct {
	store storage.Provider
}

// NewLocalSource creates a source over the local workspace store.
func NewLocalSource(store storage.Provider) *LocalSource {
	return &LocalSource{store: store}
}

// Fetch reads the file directly. A missing file maps to apperr.ErrNotFound so
// the resolver falls through; every other read failure is surfaced as-is.
func (s *LocalSource) Fetch(_ context.Context, req Request) (string, error) {
	data, err := s.store.Read(req.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperr.ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

// RemoteSource fetches from the remote workspace backend, which also restores
// workspace state lazily when it was not materialized locally.
type RemoteSource struct {
	client *backend.Client
}

// NewRemoteSource creates a source over the remote backend client.
func NewRemoteSource(client *backend.Client) *RemoteSource {
	return &RemoteSource{client: client}
}

// Fetch forwards the request with the caller's bearer credential. A missing
// credential fails with apperr.ErrNoCredential before any network call.
func (s *RemoteSource) Fetch(ctx context.Context, req Request) (string, error) {
	if req.Token == "" {
		return "", apperr.ErrNoCredential
	}
	return s.client.FetchContent(ctx, req.WorkspaceID, req.Path, req.Token)
}

// Resolver tries each source in order. Single shot: the first outcome other
// than a not-found miss is terminal, and there are no retries.
type Resolver struct {
	sources []Source
}

// NewResolver creates a resolver over the given sources, consulted in order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve returns the file content for req. Missing WorkspaceID or Path fails
// with apperr.ErrMissingInput before any source runs. When every source
// misses, the result is apperr.ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, req Request) (string, error) {
	if req.Path == "" || req.WorkspaceID == "" {
		return "", apperr.ErrMissingInput
	}
	for _, src := range r.sources {
		body, err := src.Fetch(ctx, req)
		if err == nil {
			return body, nil
		}
		if errors.Is(err, apperr.ErrNotFound) {
			continue
		}
		return "", err
	}
	return "", apperr.ErrNotFound
}
