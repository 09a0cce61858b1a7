package admineconomy

import (
	"context"

	"devil2devil.org/economy-web/internal/web/apiclient"
)

// HTTPService implements Service against the economy REST backend.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService constructs a Service backed by the backend admin endpoints.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Settings fetches the stored configuration.
func (s *HTTPService) Settings(ctx context.Context, token string) (Settings, error) {
	var payload struct {
		Settings Settings `json:"settings"`
	}
	if err := s.client.GetJSON(ctx, "/api/admin/economy-config", token, &payload); err != nil {
		return Settings{}, err
	}
	if payload.Settings.OnboardingRoleIDs == nil {
		payload.Settings.OnboardingRoleIDs = []string{}
	}
	return payload.Settings, nil
}

// DiscordRoles fetches the guild roles offered in the pickers.
func (s *HTTPService) DiscordRoles(ctx context.Context, token string) ([]Role, error) {
	var payload struct {
		Roles []Role `json:"roles"`
	}
	if err := s.client.GetJSON(ctx, "/api/admin/discord-roles", token, &payload); err != nil {
		return nil, err
	}
	if payload.Roles == nil {
		payload.Roles = []Role{}
	}
	return payload.Roles, nil
}

// Save submits a configuration update. The action field selects between a
// plain save and the enable switch.
func (s *HTTPService) Save(ctx context.Context, token string, update Update) (Settings, error) {
	if update.Action == "" {
		update.Action = ActionSaveConfig
	}
	if update.OnboardingRoleIDs == nil {
		update.OnboardingRoleIDs = []string{}
	}
	var payload struct {
		Settings Settings `json:"settings"`
	}
	if err := s.client.PostJSON(ctx, "/api/admin/economy-config", update, token, &payload); err != nil {
		return Settings{}, err
	}
	return payload.Settings, nil
}

// StaticService keeps settings in memory for local development and tests.
type StaticService struct {
	Stored Settings
	Roles  []Role
}

// NewStaticService returns a StaticService with representative roles.
func NewStaticService() *StaticService {
	return &StaticService{
		Stored: Settings{
			VerifiedBonusPoints:   200,
			OnboardingBonusPoints: 500,
			OnboardingRoleIDs:     []string{},
		},
		Roles: []Role{
			{ID: "100", Name: "Verified", Color: "#57f287", Position: 5},
			{ID: "101", Name: "Onboarded", Color: "#5865f2", Position: 4},
			{ID: "102", Name: "Booster", Color: "#eb459e", Position: 3},
		},
	}
}

// Settings returns the stored configuration.
func (s *StaticService) Settings(ctx context.Context, token string) (Settings, error) {
	return s.Stored, nil
}

// DiscordRoles returns the configured roles.
func (s *StaticService) DiscordRoles(ctx context.Context, token string) ([]Role, error) {
	return append([]Role(nil), s.Roles...), nil
}

// Save applies the update to the stored settings.
func (s *StaticService) Save(ctx context.Context, token string, update Update) (Settings, error) {
	s.Stored.VerifiedRoleID = update.VerifiedRoleID
	s.Stored.VerifiedBonusPoints = update.VerifiedBonusPoints
	s.Stored.OnboardingRoleIDs = update.OnboardingRoleIDs
	s.Stored.OnboardingBonusPoints = update.OnboardingBonusPoints
	s.Stored.RolesConfigured = s.Stored.CanEnable()
	if update.Action == ActionEnableEconomy {
		s.Stored.EconomyEnabled = true
	}
	return s.Stored, nil
}
