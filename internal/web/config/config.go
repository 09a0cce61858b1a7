package config

import (
	"os"
	"strings"
)

const (
	defaultAddr      = ":8080"
	defaultLoginPath = "/auth/login"
)

// Config holds runtime options for the storefront web server.
type Config struct {
	// Address is the HTTP listen address.
	Address string

	// APIBaseURL is the economy backend base URL. Empty means same-origin
	// requests are impossible for a server process, so an empty value keeps
	// the static in-memory services active (local development).
	APIBaseURL string

	// LoginPath is where sign-in prompts send the visitor. The backend owns
	// the Discord OAuth flow; this is a path on the backend host.
	LoginPath string

	// SessionHashKey signs the session cookie. Required in production;
	// a throwaway key is generated when absent.
	SessionHashKey []byte

	// CookieSecure marks session and CSRF cookies as HTTPS-only.
	CookieSecure bool

	// DevMode reparses templates on every request.
	DevMode bool
}

// FromEnv resolves configuration from the process environment.
func FromEnv() Config {
	return Config{
		Address:        getEnv("ECONOMY_HTTP_ADDR", defaultAddr),
		APIBaseURL:     NormalizeAPIBase(os.Getenv("ECONOMY_API_BASE_URL")),
		LoginPath:      getEnv("ECONOMY_LOGIN_PATH", defaultLoginPath),
		SessionHashKey: []byte(os.Getenv("ECONOMY_SESSION_KEY")),
		CookieSecure:   os.Getenv("ECONOMY_COOKIE_SECURE") != "",
		DevMode:        os.Getenv("ECONOMY_DEV") != "",
	}
}

// NormalizeAPIBase trims trailing slashes and drops a redundant "/api"
// suffix so that endpoint paths (which all start with /api) resolve cleanly
// against the base.
func NormalizeAPIBase(raw string) string {
	value := strings.TrimRight(strings.TrimSpace(raw), "/")
	if value == "" {
		return ""
	}
	if strings.HasSuffix(value, "/api") {
		value = strings.TrimSuffix(value, "/api")
	}
	return value
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
