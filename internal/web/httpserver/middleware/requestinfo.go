package middleware

import (
	"context"
	"net/http"
)

type requestInfoContextKey string

const requestInfoKey requestInfoContextKey = "web.requestinfo"

// Info holds request attributes templates need for navigation highlighting
// and form targets.
type Info struct {
	Path   string
	Method string
}

// RequestInfo stores the request path and method in the context.
func RequestInfo() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := Info{
				Path:   r.URL.Path,
				Method: r.Method,
			}
			ctx := context.WithValue(r.Context(), requestInfoKey, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestInfoFromContext returns the captured request attributes.
func RequestInfoFromContext(ctx context.Context) (Info, bool) {
	info, ok := ctx.Value(requestInfoKey).(Info)
	return info, ok
}
