// Package api implements the Scriven REST API using chi.
package api

import (
	"net/http"
	"strings"
)

// bearerToken extracts the bearer credential from the Authorization header.
// Returns the empty string when the header is absent or malformed.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// AuthMiddleware returns middleware that validates a service-level Bearer token.
// If enabled is false, all requests pass through (disabled mode). If enabled is
// true, requests must carry "Authorization: Bearer <token>"; the same bearer is
// then also the credential forwarded on remote content fallback.
func AuthMiddleware(enabled bool, token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}
			if bearerToken(r) != token {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
