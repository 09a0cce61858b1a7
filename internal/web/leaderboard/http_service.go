package leaderboard

import (
	"context"

	"devil2devil.org/economy-web/internal/web/apiclient"
)

// HTTPService implements Service against the economy REST backend.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService constructs a Service backed by the backend leaderboard endpoint.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Leaderboard fetches the ranked members and economy totals. Missing fields
// decode to an empty board.
func (s *HTTPService) Leaderboard(ctx context.Context) (Board, error) {
	var payload struct {
		Users  []Entry `json:"users"`
		Totals *Totals `json:"totals"`
	}
	if err := s.client.GetJSON(ctx, "/api/leaderboard", "", &payload); err != nil {
		return Board{}, err
	}
	if payload.Users == nil {
		payload.Users = []Entry{}
	}
	return Board{Users: payload.Users, Totals: payload.Totals}, nil
}

// StaticService returns fixed leaderboard data for tests and local work.
type StaticService struct {
	Board Board
}

// NewStaticService returns a StaticService with a small representative board.
func NewStaticService() *StaticService {
	return &StaticService{Board: Board{
		Users: []Entry{
			{ID: "1", Username: "sparky", Points: 4200, Balance: 1800},
			{ID: "2", Username: "sundevil99", Points: 3100, Balance: 900},
			{ID: "3", Username: "forkfan", Points: 2500, Balance: 2500},
		},
		Totals: &Totals{TotalUsers: 3, TotalBalance: 5200, TotalPoints: 9800},
	}}
}

// Leaderboard returns the configured board.
func (s *StaticService) Leaderboard(ctx context.Context) (Board, error) {
	return s.Board, nil
}
