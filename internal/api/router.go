package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether service-level Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
// workspaceRoot is used to resolve the media assets directory.
func NewRouter(h *Handler, authEnabled bool, token string, sseHandler http.Handler, workspaceRoot string) chi.Router {
	ah := NewAssetHandler(workspaceRoot)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Workspace content: resolve, save, delete.
	r.Post("/content", h.ResolveContent)
	r.Put("/content", h.SaveContent)
	r.Delete("/content", h.DeleteContent)

	// Rich-text normalization.
	r.Post("/normalize", h.Normalize)

	// Canvas documents.
	r.Get("/canvas/{userID}", h.GetCanvas)
	r.Put("/canvas/{userID}", h.PutCanvas)

	// One-time verification tokens.
	r.Post("/verification/{userID}", h.IssueVerification)
	r.Post("/verification/{userID}/consume", h.ConsumeVerification)

	// Media assets upload (auth-protected).
	r.Post("/assets", ah.Upload)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
