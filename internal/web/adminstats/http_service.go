package adminstats

import (
	"context"
	"net/url"
	"strconv"

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

// Leaderboard fetches one page of the admin leaderboard. The backend's
// pagination metadata is passed through untouched.
func (s *HTTPService) Leaderboard(ctx context.Context, token string, page int) (LeaderboardReport, error) {
	var report LeaderboardReport
	if err := s.client.GetJSON(ctx, paged("/api/admin/leaderboard", page), token, &report); err != nil {
		return LeaderboardReport{}, err
	}
	if report.LeaderboardStats == nil {
		report.LeaderboardStats = []MemberStat{}
	}
	if report.Pagination.Page == 0 {
		report.Pagination.Page = 1
	}
	if report.Pagination.Pages == 0 {
		report.Pagination.Pages = 1
	}
	return report, nil
}

// Purchases fetches one page of the admin purchase ledger.
func (s *HTTPService) Purchases(ctx context.Context, token string, page int) (PurchaseReport, error) {
	var report PurchaseReport
	if err := s.client.GetJSON(ctx, paged("/api/admin/purchases", page), token, &report); err != nil {
		return PurchaseReport{}, err
	}
	if report.Purchases == nil {
		report.Purchases = []LedgerPurchase{}
	}
	if report.Pagination.Page == 0 {
		report.Pagination.Page = 1
	}
	if report.Pagination.Pages == 0 {
		report.Pagination.Pages = 1
	}
	return report, nil
}

// UserDetail fetches the full report for one member.
func (s *HTTPService) UserDetail(ctx context.Context, token, userID string) (UserDetail, error) {
	endpoint := "/api/admin/users/" + url.PathEscape(userID)
	var detail UserDetail
	if err := s.client.GetJSON(ctx, endpoint, token, &detail); err != nil {
		if apiclient.IsNotFound(err) {
			return UserDetail{}, ErrUserNotFound
		}
		return UserDetail{}, err
	}
	if detail.Achievements == nil {
		detail.Achievements = []Achievement{}
	}
	if detail.RecentPurchases == nil {
		detail.RecentPurchases = []LedgerPurchase{}
	}
	return detail, nil
}

// Dashboard fetches the admin landing summary.
func (s *HTTPService) Dashboard(ctx context.Context, token string) (DashboardData, error) {
	var data DashboardData
	if err := s.client.GetJSON(ctx, "/api/dashboard", token, &data); err != nil {
		return DashboardData{}, err
	}
	if data.RecentPurchases == nil {
		data.RecentPurchases = []LedgerPurchase{}
	}
	return data, nil
}

func paged(endpoint string, page int) string {
	if page < 1 {
		page = 1
	}
	return endpoint + "?page=" + strconv.Itoa(page)
}
