package identity

import (
	"context"

	"devil2devil.org/economy-web/internal/web/apiclient"
)

// HTTPService implements Service against the backend /api/me probe.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService constructs a Service backed by the economy REST API.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Current fetches /api/me. A 401 means the visitor is not signed in and maps
// to the guest record. The admin flag is only honoured alongside a present,
// authenticated user.
func (s *HTTPService) Current(ctx context.Context, token string) (Session, error) {
	var payload struct {
		Authenticated bool  `json:"authenticated"`
		User          *User `json:"user"`
	}
	if err := s.client.GetJSON(ctx, "/api/me", token, &payload); err != nil {
		if apiclient.IsUnauthorized(err) {
			return Guest(), nil
		}
		return Guest(), err
	}

	if !payload.Authenticated || payload.User == nil {
		return Guest(), nil
	}
	return Session{
		Authenticated: true,
		User:          payload.User,
		IsAdmin:       payload.User.IsAdmin,
	}, nil
}

// StaticService returns a fixed session record, for tests and local work.
type StaticService struct {
	Session Session
}

// NewStaticService constructs a StaticService for the given record.
func NewStaticService(sess Session) *StaticService {
	return &StaticService{Session: sess}
}

// Current returns the configured record.
func (s *StaticService) Current(ctx context.Context, token string) (Session, error) {
	return s.Session, nil
}
