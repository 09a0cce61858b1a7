package middleware

import (
	"net/http"

	"devil2devil.org/economy-web/internal/web/router"
)

// Gate renders access-denial pages for views that require authentication or
// the admin flag. The gated handler never runs when access is denied, so
// privileged data fetches are short-circuited before they can start.
type Gate struct {
	// RenderSignIn shows the sign-in prompt for anonymous visitors.
	RenderSignIn http.HandlerFunc
	// RenderForbidden shows the permission-denied page for signed-in
	// non-admins.
	RenderForbidden http.HandlerFunc
}

// Require wraps next with the access check for the given requirement. An
// anonymous visitor always gets the sign-in prompt, even on admin views;
// forbidden only applies to authenticated non-admins.
func (g Gate) Require(requirement router.Requirement, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requirement == router.Public {
			next.ServeHTTP(w, r)
			return
		}

		visitor := VisitorFromContext(r.Context())
		if !visitor.Authenticated {
			g.signIn(w, r)
			return
		}
		if requirement == router.RequiresAdmin && !visitor.IsAdmin {
			g.forbidden(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth is Require for requires-auth views, as chi middleware.
func (g Gate) RequireAuth(next http.Handler) http.Handler {
	return g.Require(router.RequiresAuth, next)
}

// RequireAdmin is Require for requires-admin views, as chi middleware.
func (g Gate) RequireAdmin(next http.Handler) http.Handler {
	return g.Require(router.RequiresAdmin, next)
}

// The render hooks own the whole response, status code included.

func (g Gate) signIn(w http.ResponseWriter, r *http.Request) {
	if g.RenderSignIn != nil {
		g.RenderSignIn(w, r)
		return
	}
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

func (g Gate) forbidden(w http.ResponseWriter, r *http.Request) {
	if g.RenderForbidden != nil {
		g.RenderForbidden(w, r)
		return
	}
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}
