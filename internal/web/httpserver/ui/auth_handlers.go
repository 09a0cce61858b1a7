package ui

import (
	"net/http"

	"devil2devil.org/economy-web/internal/web/httpserver/middleware"
)

// AuthComplete receives the backend's post-login redirect and stores the
// issued API credential in the visitor's session.
func (h *Handlers) AuthComplete(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Redirect(w, r, "/store", http.StatusSeeOther)
		return
	}

	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		sess.SetAPIToken(token)
		sess.AddFlash("success", "Signed in.")
	}
	http.Redirect(w, r, "/store", http.StatusSeeOther)
}

// Logout destroys the visitor's session.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		sess.Destroy()
	}
	http.Redirect(w, r, "/store", http.StatusSeeOther)
}
