// ABOUTME: CORS middleware for API cross-origin requests
// ABOUTME: Echoes allowed origins and answers preflight OPTIONS requests

package middleware

import (
	"net/http"
	"slices"
)

// CORS returns middleware that adds CORS headers for the allowed origins.
// "*" allows any origin; an empty list adds no headers, so browsers block
// cross-origin calls. OPTIONS preflight requests get 204 without calling next.
func CORS(allowed []string) func(http.HandlerFunc) http.HandlerFunc {
	allowAll := slices.Contains(allowed, "*")

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAll || slices.Contains(allowed, origin)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next(w, r)
		}
	}
}
