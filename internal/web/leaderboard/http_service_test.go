package leaderboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"devil2devil.org/economy-web/internal/web/apiclient"
	"devil2devil.org/economy-web/internal/web/leaderboard"
)

func newService(t *testing.T, handler http.HandlerFunc) *leaderboard.HTTPService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := apiclient.New(srv.URL, srv.Client())
	require.NoError(t, err)
	return leaderboard.NewHTTPService(client)
}

func TestLeaderboardDecodesUsersAndTotals(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/leaderboard", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"users": [
				{"id":"1","username":"sparky","points":4200,"balance":1800},
				{"id":"2","username":"sundevil99","points":3100,"balance":900}
			],
			"totals": {"total_users":2,"total_balance":2700,"total_points":7300}
		}`))
	})

	board, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Users, 2)
	require.Equal(t, "sparky", board.Users[0].Username)
	require.Equal(t, 4200, board.Users[0].Points)
	require.NotNil(t, board.Totals)
	require.Equal(t, 2700, board.Totals.TotalBalance)
}

func TestLeaderboardMissingUsersDecodesEmpty(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	board, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, board.Users)
	require.Empty(t, board.Users)
	require.Nil(t, board.Totals)
}

func TestLeaderboardBackendFailureIsAnError(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := svc.Leaderboard(context.Background())
	require.Error(t, err)
}
