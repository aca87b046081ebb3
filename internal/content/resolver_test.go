package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scrivenhq/scriven/internal/apperr"
	"github.com/scrivenhq/scriven/internal/backend"
	"github.com/scrivenhq/scriven/internal/storage"
)

// fakeSource returns a fixed result and records whether it was consulted.
type fakeSource struct {
	body   string
	err    error
	called bool
}

func (f *fakeSource) Fetch(_ context.Context, _ Request) (string, error) {
	f.called = true
	return f.body, f.err
}

func TestResolve_MissingInput(t *testing.T) {
	src := &fakeSource{body: "x"}
	r := NewResolver(src)

	cases := []Request{
		{WorkspaceID: "ws"},
		{Path: "a.md"},
		{},
	}
	for _, req := range cases {
		_, err := r.Resolve(context.Background(), req)
		if !errors.Is(err, apperr.ErrMissingInput) {
			t.Errorf("req %+v: err = %v, want ErrMissingInput", req, err)
		}
	}
	if src.called {
		t.Error("source consulted despite missing input")
	}
}

func TestResolve_LocalHitSkipsRemote(t *testing.T) {
	local := &fakeSource{body: "local"}
	remote := &fakeSource{body: "remote"}
	r := NewResolver(local, remote)

	got, err := r.Resolve(context.Background(), Request{WorkspaceID: "ws", Path: "a.md"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "local" {
		t.Errorf("content = %q, want local", got)
	}
	if remote.called {
		t.Error("remote consulted despite local hit")
	}
}

func TestResolve_NotFoundFallsThrough(t *testing.T) {
	local := &fakeSource{err: apperr.ErrNotFound}
	remote := &fakeSource{body: "remote"}
	r := NewResolver(local, remote)

	got, err := r.Resolve(context.Background(), Request{WorkspaceID: "ws", Path: "a.md", Token: "t"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "remote" {
		t.Errorf("content = %q, want remote", got)
	}
}

func TestResolve_FatalLocalErrorStopsChain(t *testing.T) {
	boom := errors.New("disk on fire")
	local := &fakeSource{err: boom}
	remote := &fakeSource{body: "remote"}
	r := NewResolver(local, remote)

	_, err := r.Resolve(context.Background(), Request{WorkspaceID: "ws", Path: "a.md"})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped local failure", err)
	}
	if remote.called {
		t.Error("remote consulted after fatal local error")
	}
}

func TestResolve_AllMiss(t *testing.T) {
	r := NewResolver(&fakeSource{err: apperr.ErrNotFound}, &fakeSource{err: apperr.ErrNotFound})
	_, err := r.Resolve(context.Background(), Request{WorkspaceID: "ws", Path: "a.md"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLocalSource_MapsMissingFile(t *testing.T) {
	store, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	src := NewLocalSource(store)

	_, err = src.Fetch(context.Background(), Request{Path: "missing.md"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	_ = store.Write("there.md", []byte("hello"))
	body, err := src.Fetch(context.Background(), Request{Path: "there.md"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if body != "hello" {
		t.Errorf("body = %q", body)
	}
}

func TestRemoteSource_RequiresCredential(t *testing.T) {
	// The client would fail loudly if dialed; the credential check must come first.
	src := NewRemoteSource(backend.NewClient("http://127.0.0.1:1", time.Second))
	_, err := src.Fetch(context.Background(), Request{WorkspaceID: "ws", Path: "a.md"})
	if !errors.Is(err, apperr.ErrNoCredential) {
		t.Errorf("err = %v, want ErrNoCredential", err)
	}
}
