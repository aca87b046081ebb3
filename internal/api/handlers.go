package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/scrivenhq/scriven/internal/apperr"
	"github.com/scrivenhq/scriven/internal/checksum"
	"github.com/scrivenhq/scriven/internal/content"
	"github.com/scrivenhq/scriven/internal/docstore"
	"github.com/scrivenhq/scriven/internal/richtext"
	"github.com/scrivenhq/scriven/internal/storage"
)

const maxBodyBytes = 10 << 20

// Handler holds API route handlers.
type Handler struct {
	resolver   *content.Resolver
	normalizer *richtext.Normalizer
	store      storage.Provider
	docs       docstore.Store
	tokenTTL   time.Duration
}

// NewHandler creates a new Handler.
func NewHandler(resolver *content.Resolver, normalizer *richtext.Normalizer, store storage.Provider, docs docstore.Store, tokenTTL time.Duration) *Handler {
	return &Handler{
		resolver:   resolver,
		normalizer: normalizer,
		store:      store,
		docs:       docs,
		tokenTTL:   tokenTTL,
	}
}

// writeResolveError maps a resolution failure to its terminal response.
// Each failure class maps to exactly one status; there are no retries.
func writeResolveError(w http.ResponseWriter, err error) {
	var ue *apperr.UpstreamError
	switch {
	case errors.Is(err, apperr.ErrMissingInput):
		writeJSON(w, http.StatusBadRequest, errorBody("path and workspaceId are required"))
	case errors.Is(err, apperr.ErrNoCredential):
		writeJSON(w, http.StatusUnauthorized, errorBody("authorization required"))
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorBody("workspace backend unreachable"))
	case errors.As(err, &ue):
		writeJSON(w, ue.Status, errorBody("workspace backend error"))
	default:
		slog.Error("resolve content failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// ResolveContent handles POST /api/content.
//
// Local read first; a local miss falls back to the remote backend with the
// caller's bearer credential (which also restores workspace state remotely).
func (h *Handler) ResolveContent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req ResolveContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	body, err := h.resolver.Resolve(r.Context(), content.Request{
		WorkspaceID: req.WorkspaceID,
		Path:        req.Path,
		Token:       bearerToken(r),
	})
	if err != nil {
		writeResolveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ContentResponse{Content: body})
}

// SaveContent handles PUT /api/content.
func (h *Handler) SaveContent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req SaveContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Path == "" || req.WorkspaceID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path and workspaceId are required"))
		return
	}

	data := []byte(req.Content)
	if err := h.store.Write(req.Path, data); err != nil {
		slog.Error("save content failed", slog.String("path", req.Path), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, SaveContentResponse{
		Path:     req.Path,
		Checksum: checksum.Sum(data),
	})
}

// DeleteContent handles DELETE /api/content?path=...
func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	if err := h.store.Delete(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("delete content failed", slog.String("path", path), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Normalize handles POST /api/normalize.
//
// Normalization never fails: malformed markdown is recovered locally by
// wrapping the raw text in a paragraph.
func (h *Handler) Normalize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	writeJSON(w, http.StatusOK, ContentResponse{Content: h.normalizer.Normalize(req.Content)})
}

// GetCanvas handles GET /api/canvas/{userID}.
func (h *Handler) GetCanvas(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	c, err := h.docs.GetCanvas(userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("get canvas failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// PutCanvas handles PUT /api/canvas/{userID}. The stored content is normalized
// first so the editor always reads back structured markup.
func (h *Handler) PutCanvas(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	userID := chi.URLParam(r, "userID")

	var req CanvasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	c := docstore.Canvas{
		UserID:       userID,
		Videos:       req.Videos,
		Audios:       req.Audios,
		SoundEffects: req.SoundEffects,
		Content:      h.normalizer.Normalize(req.Content),
	}
	if err := h.docs.UpsertCanvas(c); err != nil {
		slog.Error("put canvas failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	stored, err := h.docs.GetCanvas(userID)
	if err != nil {
		slog.Error("read back canvas failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// IssueVerification handles POST /api/verification/{userID}. The plaintext
// token is returned exactly once; only its hash is persisted.
func (h *Handler) IssueVerification(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		slog.Error("token generation failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	token := hex.EncodeToString(buf)

	if err := h.docs.IssueToken(userID, token); err != nil {
		slog.Error("issue token failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, VerificationTokenResponse{Token: token})
}

// ConsumeVerification handles POST /api/verification/{userID}/consume.
func (h *Handler) ConsumeVerification(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	userID := chi.URLParam(r, "userID")

	var req ConsumeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Token == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("token is required"))
		return
	}

	switch err := h.docs.ConsumeToken(userID, req.Token, h.tokenTTL); {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, docstore.ErrTokenExpired):
		writeJSON(w, http.StatusGone, errorBody("token expired"))
	case errors.Is(err, docstore.ErrTokenInvalid):
		writeJSON(w, http.StatusBadRequest, errorBody("invalid token"))
	default:
		slog.Error("consume token failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
