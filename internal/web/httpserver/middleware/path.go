package middleware

import (
	"net/http"

	"devil2devil.org/economy-web/internal/web/router"
)

// CanonicalPath rewrites the request path to its canonical form before route
// matching, so "/store/" and "/store" reach the same handler. It must be
// mounted on the root mux, ahead of route dispatch.
func CanonicalPath() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if normalized := router.NormalizePath(r.URL.Path); normalized != r.URL.Path {
				r.URL.Path = normalized
				// RawPath would otherwise win during route matching.
				r.URL.RawPath = ""
			}
			next.ServeHTTP(w, r)
		})
	}
}
