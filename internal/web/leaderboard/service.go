// Package leaderboard exposes the public points leaderboard.
package leaderboard

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates the leaderboard service dependency has not been provided.
var ErrNotConfigured = errors.New("leaderboard service not configured")

// Entry is one ranked member.
type Entry struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Points    int    `json:"points"`
	Balance   int    `json:"balance"`
}

// Totals summarises the whole economy under the ranking.
type Totals struct {
	TotalUsers   int `json:"total_users"`
	TotalBalance int `json:"total_balance"`
	TotalPoints  int `json:"total_points"`
}

// Board is the full leaderboard payload.
type Board struct {
	Users  []Entry
	Totals *Totals
}

// Service exposes the public leaderboard read.
type Service interface {
	Leaderboard(ctx context.Context) (Board, error)
}
