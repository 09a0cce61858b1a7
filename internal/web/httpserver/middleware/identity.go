package middleware

import (
	"context"
	"log"
	"net/http"

	"devil2devil.org/economy-web/internal/web/identity"
)

type identityContextKey string

const visitorContextKey identityContextKey = "web.visitor"

// Identity probes the backend once per request and attaches the resulting
// session record to the context. The record is replaced whole; a failed
// probe degrades to the guest record so public pages keep working.
func Identity(svc identity.Service) func(http.Handler) http.Handler {
	if svc == nil {
		panic("identity service is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if sess, ok := SessionFromContext(r.Context()); ok {
				token = sess.APIToken()
			}

			visitor, err := svc.Current(r.Context(), token)
			if err != nil {
				log.Printf("identity probe failed: %v", err)
				visitor = identity.Guest()
			}

			ctx := context.WithValue(r.Context(), visitorContextKey, visitor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VisitorFromContext returns the identity record attached to this request.
// Absent a record the guest session is returned.
func VisitorFromContext(ctx context.Context) identity.Session {
	if ctx == nil {
		return identity.Guest()
	}
	if visitor, ok := ctx.Value(visitorContextKey).(identity.Session); ok {
		return visitor
	}
	return identity.Guest()
}
