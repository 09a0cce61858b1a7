// Package ui holds the page handlers. Each handler loads what it needs from
// the backend services, builds a view model and hands it to the renderer.
// Failed reads degrade to an error page instead of a blank 500.
package ui

import (
	"net/http"

	"devil2devil.org/economy-web/internal/web/admincatalog"
	"devil2devil.org/economy-web/internal/web/admineconomy"
	"devil2devil.org/economy-web/internal/web/adminfiles"
	"devil2devil.org/economy-web/internal/web/adminstats"
	"devil2devil.org/economy-web/internal/web/admintemplates"
	"devil2devil.org/economy-web/internal/web/earn"
	"devil2devil.org/economy-web/internal/web/httpserver/middleware"
	"devil2devil.org/economy-web/internal/web/leaderboard"
	"devil2devil.org/economy-web/internal/web/purchases"
	"devil2devil.org/economy-web/internal/web/router"
	appsession "devil2devil.org/economy-web/internal/web/session"
	"devil2devil.org/economy-web/internal/web/store"
	"devil2devil.org/economy-web/internal/web/templates"
)

// Dependencies collects external services required by the page handlers.
type Dependencies struct {
	Renderer  *templates.Renderer
	LoginPath string

	Store       store.Service
	Leaderboard leaderboard.Service
	Purchases   purchases.Service
	Earn        *earn.Catalog
	Catalog     admincatalog.Service
	Stats       adminstats.Service
	Economy     admineconomy.Service
	Files       adminfiles.Service
	Templates   admintemplates.Service
}

// Handlers exposes the HTTP handlers for every page.
type Handlers struct {
	renderer  *templates.Renderer
	loginPath string

	store       store.Service
	leaderboard leaderboard.Service
	purchases   purchases.Service
	earn        *earn.Catalog
	catalog     admincatalog.Service
	stats       adminstats.Service
	economy     admineconomy.Service
	files       adminfiles.Service
	templates   admintemplates.Service
}

// NewHandlers wires the handler set. Missing services fall back to the
// in-memory static implementations so the app runs without a backend.
func NewHandlers(deps Dependencies) (*Handlers, error) {
	if deps.Renderer == nil {
		r, err := templates.New(false)
		if err != nil {
			return nil, err
		}
		deps.Renderer = r
	}
	if deps.LoginPath == "" {
		deps.LoginPath = "/login"
	}
	if deps.Store == nil {
		deps.Store = store.NewStaticService()
	}
	if deps.Leaderboard == nil {
		deps.Leaderboard = leaderboard.NewStaticService()
	}
	if deps.Purchases == nil {
		deps.Purchases = purchases.NewStaticService()
	}
	if deps.Earn == nil {
		catalog, err := earn.Default()
		if err != nil {
			return nil, err
		}
		deps.Earn = catalog
	}
	if deps.Catalog == nil {
		deps.Catalog = admincatalog.NewStaticService()
	}
	if deps.Stats == nil {
		deps.Stats = adminstats.NewStaticService()
	}
	if deps.Economy == nil {
		deps.Economy = admineconomy.NewStaticService()
	}
	if deps.Files == nil {
		deps.Files = adminfiles.NewStaticService()
	}
	if deps.Templates == nil {
		deps.Templates = admintemplates.NewStaticService()
	}

	return &Handlers{
		renderer:    deps.Renderer,
		loginPath:   deps.LoginPath,
		store:       deps.Store,
		leaderboard: deps.Leaderboard,
		purchases:   deps.Purchases,
		earn:        deps.Earn,
		catalog:     deps.Catalog,
		stats:       deps.Stats,
		economy:     deps.Economy,
		files:       deps.Files,
		templates:   deps.Templates,
	}, nil
}

// base assembles the layout fields shared by every page. Flashes are consumed
// here, so each one shows exactly once.
func (h *Handlers) base(r *http.Request, title string) templates.BaseData {
	var flashes []appsession.Flash
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		flashes = sess.ConsumeFlashes()
	}
	path := r.URL.Path
	if info, ok := middleware.RequestInfoFromContext(r.Context()); ok {
		path = info.Path
	}
	// "/" is an alias of the store view; highlight the store nav entry.
	if router.Select(path).View == router.ViewStore {
		path = "/store"
	}
	return templates.BaseData{
		Title:     title,
		Path:      path,
		LoginPath: h.loginPath,
		Visitor:   middleware.VisitorFromContext(r.Context()),
		CSRFToken: middleware.CSRFTokenFromContext(r.Context()),
		Flashes:   flashes,
	}
}

// token returns the backend credential stored in the visitor's session.
func token(r *http.Request) string {
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		return sess.APIToken()
	}
	return ""
}

// flash records a one-shot notice for the next rendered page.
func flash(r *http.Request, kind, message string) {
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		sess.AddFlash(kind, message)
	}
}

type errorData struct {
	templates.BaseData
	Message string
}

// RenderError shows the generic backend-failure page.
func (h *Handlers) RenderError(w http.ResponseWriter, r *http.Request, message string) {
	h.renderer.Render(w, http.StatusBadGateway, "error", errorData{
		BaseData: h.base(r, "Something went wrong"),
		Message:  message,
	})
}

// NotFound renders the soft 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusNotFound, "not_found", errorData{
		BaseData: h.base(r, "Not found"),
	})
}

// SignIn renders the sign-in prompt with a 401.
func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusUnauthorized, "sign_in", h.base(r, "Sign in"))
}

// Forbidden renders the admins-only refusal page with a 403.
func (h *Handlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusForbidden, "forbidden", h.base(r, "Not allowed"))
}

// Landing renders the intro page shown for unknown paths.
func (h *Handlers) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "landing", h.base(r, ""))
}

// render executes a page without touching the response status.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	h.renderer.Render(w, http.StatusOK, page, data)
}
