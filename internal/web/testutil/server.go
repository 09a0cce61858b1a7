package testutil

import (
	"net/http/httptest"
	"testing"

	"devil2devil.org/economy-web/internal/web/adminstats"
	"devil2devil.org/economy-web/internal/web/httpserver"
	"devil2devil.org/economy-web/internal/web/httpserver/ui"
	"devil2devil.org/economy-web/internal/web/identity"
	"devil2devil.org/economy-web/internal/web/leaderboard"
	"devil2devil.org/economy-web/internal/web/purchases"
	appsession "devil2devil.org/economy-web/internal/web/session"
	"devil2devil.org/economy-web/internal/web/store"
)

// Options collects the pieces tests commonly swap out.
type Options struct {
	Visitor identity.Session
	Deps    ui.Dependencies
}

// ServerOption customises the test server.
type ServerOption func(*Options)

// WithVisitor fixes the identity every request resolves to.
func WithVisitor(sess identity.Session) ServerOption {
	return func(o *Options) {
		o.Visitor = sess
	}
}

// WithStoreService wires a custom storefront service.
func WithStoreService(svc store.Service) ServerOption {
	return func(o *Options) {
		o.Deps.Store = svc
	}
}

// WithLeaderboardService wires a custom leaderboard service.
func WithLeaderboardService(svc leaderboard.Service) ServerOption {
	return func(o *Options) {
		o.Deps.Leaderboard = svc
	}
}

// WithPurchasesService wires a custom purchase history service.
func WithPurchasesService(svc purchases.Service) ServerOption {
	return func(o *Options) {
		o.Deps.Purchases = svc
	}
}

// WithStatsService wires a custom reporting service.
func WithStatsService(svc adminstats.Service) ServerOption {
	return func(o *Options) {
		o.Deps.Stats = svc
	}
}

// NewServer constructs an httptest server running the full page stack with
// in-memory services. The default visitor is a guest.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	options := Options{Visitor: identity.Guest()}
	for _, opt := range opts {
		opt(&options)
	}

	handlers, err := ui.NewHandlers(options.Deps)
	if err != nil {
		t.Fatalf("build handlers: %v", err)
	}

	sessions, err := appsession.NewManager(appsession.Config{
		HashKey: []byte("0123456789abcdef0123456789abcdef"),
	})
	if err != nil {
		t.Fatalf("build session manager: %v", err)
	}

	srv := httpserver.New(httpserver.Config{Address: ":0"}, sessions, identity.NewStaticService(options.Visitor), handlers)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
