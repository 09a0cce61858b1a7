package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"

	"devil2devil.org/economy-web/internal/web/admincatalog"
	"devil2devil.org/economy-web/internal/web/admineconomy"
	"devil2devil.org/economy-web/internal/web/adminfiles"
	"devil2devil.org/economy-web/internal/web/adminstats"
	"devil2devil.org/economy-web/internal/web/admintemplates"
	"devil2devil.org/economy-web/internal/web/apiclient"
	"devil2devil.org/economy-web/internal/web/config"
	"devil2devil.org/economy-web/internal/web/httpserver"
	"devil2devil.org/economy-web/internal/web/httpserver/ui"
	"devil2devil.org/economy-web/internal/web/identity"
	"devil2devil.org/economy-web/internal/web/leaderboard"
	"devil2devil.org/economy-web/internal/web/purchases"
	"devil2devil.org/economy-web/internal/web/session"
	"devil2devil.org/economy-web/internal/web/store"
	"devil2devil.org/economy-web/internal/web/templates"
)

func main() {
	cfg := config.FromEnv()

	sessions, err := session.NewManager(session.Config{
		HashKey:      sessionKey(cfg),
		CookieSecure: cfg.CookieSecure,
	})
	if err != nil {
		log.Fatalf("session manager: %v", err)
	}

	renderer, err := templates.New(cfg.DevMode)
	if err != nil {
		log.Fatalf("template parse: %v", err)
	}

	deps := ui.Dependencies{
		Renderer:  renderer,
		LoginPath: cfg.LoginPath,
	}

	identitySvc := buildServices(&deps, cfg)

	handlers, err := ui.NewHandlers(deps)
	if err != nil {
		log.Fatalf("handler wiring: %v", err)
	}

	srv := httpserver.New(httpserver.Config{Address: cfg.Address}, sessions, identitySvc, handlers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	log.Printf("storefront listening on %s", cfg.Address)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		cancel()
		stop()
		os.Exit(1)
	}
}

// buildServices fills deps with backend-facing services when a backend is
// configured, and returns the identity service the middleware probes on
// every request. Without ECONOMY_API_BASE_URL the static in-memory services
// stay active and the visitor is a fixed local administrator.
func buildServices(deps *ui.Dependencies, cfg config.Config) identity.Service {
	if cfg.APIBaseURL == "" {
		log.Printf("ECONOMY_API_BASE_URL not set; serving the in-memory demo catalog")
		return identity.NewStaticService(localAdmin())
	}

	client, err := apiclient.New(cfg.APIBaseURL, nil)
	if err != nil {
		log.Fatalf("api client: %v", err)
	}

	deps.Store = store.NewHTTPService(client)
	deps.Leaderboard = leaderboard.NewHTTPService(client)
	deps.Purchases = purchases.NewHTTPService(client)
	deps.Catalog = admincatalog.NewHTTPService(client)
	deps.Stats = adminstats.NewHTTPService(client)
	deps.Economy = admineconomy.NewHTTPService(client)
	deps.Files = adminfiles.NewHTTPService(client)
	deps.Templates = admintemplates.NewHTTPService(client)

	log.Printf("economy backend enabled (base=%s)", cfg.APIBaseURL)
	return identity.NewHTTPService(client)
}

func sessionKey(cfg config.Config) []byte {
	if len(cfg.SessionHashKey) > 0 {
		return cfg.SessionHashKey
	}
	log.Printf("ECONOMY_SESSION_KEY not set; sessions will not survive a restart")
	return securecookie.GenerateRandomKey(32)
}

func localAdmin() identity.Session {
	return identity.Session{
		Authenticated: true,
		IsAdmin:       true,
		User: &identity.User{
			ID:       "1",
			Username: "localadmin",
			Balance:  5000,
			IsAdmin:  true,
		},
	}
}
