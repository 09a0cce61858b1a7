// Package httpserver assembles the router, middleware stack and embedded
// assets into an http.Server.
package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	custommw "devil2devil.org/economy-web/internal/web/httpserver/middleware"
	"devil2devil.org/economy-web/internal/web/httpserver/ui"
	"devil2devil.org/economy-web/internal/web/identity"
	"devil2devil.org/economy-web/public"
)

// Config holds runtime options for the HTTP server.
type Config struct {
	Address string
}

// New constructs the HTTP server. The session store keeps per-visitor state,
// the identity service resolves who is asking, and the handlers render every
// page.
func New(cfg Config, sessions custommw.SessionStore, identitySvc identity.Service, handlers *ui.Handlers) *http.Server {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(60 * time.Second))
	router.Use(custommw.CanonicalPath())

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(public.Assets()))))

	mountPages(router, sessions, identitySvc, handlers)

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func mountPages(router chi.Router, sessions custommw.SessionStore, identitySvc identity.Service, handlers *ui.Handlers) {
	gate := custommw.Gate{
		RenderSignIn:    handlers.SignIn,
		RenderForbidden: handlers.Forbidden,
	}

	router.Group(func(r chi.Router) {
		r.Use(custommw.Session(sessions))
		r.Use(custommw.RequestInfo())
		r.Use(custommw.Identity(identitySvc))
		r.Use(custommw.CSRF())

		r.Get("/", handlers.StorePage)
		r.Get("/store", handlers.StorePage)
		r.Get("/how-to-earn", handlers.HowToEarnPage)
		r.Get("/leaderboard", handlers.LeaderboardPage)
		r.Get("/product/{id}", handlers.ProductPage)
		r.With(gate.RequireAuth).Post("/product/{id}/purchase", handlers.PurchaseSubmit)

		r.Get("/auth/complete", handlers.AuthComplete)
		r.Post("/logout", handlers.Logout)

		r.With(gate.RequireAuth).Get("/my-purchases", handlers.MyPurchasesPage)
		r.With(gate.RequireAdmin).Get("/dashboard", handlers.DashboardPage)
		r.With(gate.RequireAdmin).Get("/admin-leaderboard", handlers.AdminLeaderboardPage)

		r.Route("/admin", func(r chi.Router) {
			r.Use(gate.RequireAdmin)

			r.Get("/products", handlers.AdminProductsPage)
			r.Get("/products/new", handlers.AdminProductNewPage)
			r.Post("/products/new", handlers.AdminProductCreate)
			r.Get("/products/{id}", handlers.AdminProductEditPage)
			r.Post("/products/{id}", handlers.AdminProductUpdate)
			r.Post("/products/{id}/archive", handlers.AdminProductArchive)
			r.Post("/products/{id}/media/{mediaID}/delete", handlers.AdminProductMediaDelete)
			r.Post("/products/{id}/media/{mediaID}/primary", handlers.AdminProductMediaPrimary)

			r.Get("/categories", handlers.AdminCategoriesPage)
			r.Post("/categories", handlers.AdminCategoryCreate)
			r.Post("/categories/{id}", handlers.AdminCategoryUpdate)
			r.Post("/categories/{id}/delete", handlers.AdminCategoryDelete)
			r.Post("/categories/{id}/assign", handlers.AdminCategoryAssign)

			r.Get("/purchases", handlers.AdminPurchasesPage)
			r.Get("/users/{id}", handlers.AdminUserDetailPage)

			r.Get("/economy-config", handlers.AdminEconomyPage)
			r.Post("/economy-config", handlers.AdminEconomySave)

			r.Get("/files", handlers.AdminFilesPage)
			r.Post("/files", handlers.AdminFileUpload)
			r.Post("/files/delete", handlers.AdminFileDelete)

			r.Get("/digital-templates", handlers.AdminTemplatesPage)
			r.Post("/digital-templates/roles", handlers.AdminTemplateRoleCreate)
			r.Post("/digital-templates/minecraft-skins", handlers.AdminTemplateSkinCreate)
		})

		// Unknown paths land on the intro page rather than a bare 404.
		r.NotFound(handlers.Landing)
	})
}
