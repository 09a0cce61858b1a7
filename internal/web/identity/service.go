// Package identity resolves the visitor's session record from the backend.
// The record is replaced as a whole on every probe so readers never observe
// a half-updated state such as authenticated-without-user.
package identity

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates the identity service dependency has not been provided.
var ErrNotConfigured = errors.New("identity service not configured")

// User carries the profile summary of an authenticated visitor.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Balance   int    `json:"balance"`
	AvatarURL string `json:"avatar_url"`
	IsAdmin   bool   `json:"is_admin"`
}

// Session is the visitor's authentication record. It is immutable once
// built; a fresh probe yields a fresh record.
type Session struct {
	Authenticated bool
	User          *User
	IsAdmin       bool
}

// Guest is the record used for anonymous visitors.
func Guest() Session {
	return Session{}
}

// Service resolves the current visitor's session record.
type Service interface {
	// Current probes the backend with the visitor's credential. A rejected
	// credential yields the guest record, not an error.
	Current(ctx context.Context, token string) (Session, error)
}
