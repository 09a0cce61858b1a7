// Package admineconomy covers the economy configuration page: bonus role
// selection, bonus point amounts and the economy enable switch.
package admineconomy

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates the economy service dependency has not been provided.
var ErrNotConfigured = errors.New("admineconomy service not configured")

// Settings is the backend's economy configuration record.
type Settings struct {
	EconomyEnabled        bool     `json:"economy_enabled"`
	VerifiedRoleID        string   `json:"verified_role_id"`
	VerifiedBonusPoints   int      `json:"verified_bonus_points"`
	OnboardingRoleIDs     []string `json:"onboarding_role_ids"`
	OnboardingBonusPoints int      `json:"onboarding_bonus_points"`
	RolesConfigured       bool     `json:"roles_configured"`
}

// CanEnable reports whether enough roles are configured to switch the
// economy on.
func (s Settings) CanEnable() bool {
	return s.VerifiedRoleID != "" || len(s.OnboardingRoleIDs) > 0
}

// Role is one Discord guild role offered in the pickers.
type Role struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// Action selects what a settings submission does.
type Action string

const (
	// ActionSaveConfig persists the settings without changing the switch.
	ActionSaveConfig Action = "save_config"
	// ActionEnableEconomy persists the settings and turns the economy on.
	ActionEnableEconomy Action = "enable_economy"
)

// Update carries the submitted settings fields.
type Update struct {
	Action                Action   `json:"action"`
	VerifiedRoleID        string   `json:"verified_role_id"`
	VerifiedBonusPoints   int      `json:"verified_bonus_points"`
	OnboardingRoleIDs     []string `json:"onboarding_role_ids"`
	OnboardingBonusPoints int      `json:"onboarding_bonus_points"`
}

// Service exposes the economy configuration operations.
type Service interface {
	// Settings returns the stored configuration.
	Settings(ctx context.Context, token string) (Settings, error)
	// DiscordRoles returns the guild roles offered in the pickers.
	DiscordRoles(ctx context.Context, token string) ([]Role, error)
	// Save submits a configuration update and returns the stored result.
	Save(ctx context.Context, token string, update Update) (Settings, error)
}
