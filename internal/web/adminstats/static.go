package adminstats

import (
	"context"
	"time"

	"devil2devil.org/economy-web/internal/web/paging"
)

// StaticService provides deterministic reporting data for local development
// and tests.
type StaticService struct {
	Report LeaderboardReport
	Ledger PurchaseReport
	Users  map[string]UserDetail
}

// NewStaticService returns a StaticService with a small representative report.
func NewStaticService() *StaticService {
	sparky := Member{ID: "1", DiscordID: "198237123", Username: "sparky", Balance: 1800, Points: 4200, MessageCount: 230, IsAdmin: true}
	fan := Member{ID: "2", DiscordID: "552211998", Username: "forkfan", Balance: 2500, Points: 2500, MessageCount: 90, HasBoosted: true}

	report := LeaderboardReport{
		EconomyStats: &EconomyStats{TotalUsers: 2, TotalBalance: 4300, TotalSpent: 1150, TotalPurchases: 3, TotalAchievements: 5},
		LeaderboardStats: []MemberStat{
			{Rank: 1, User: sparky, AchievementCount: 3, PurchaseCount: 2, TotalSpent: 750, ActivityScore: 88},
			{Rank: 2, User: fan, AchievementCount: 2, PurchaseCount: 1, TotalSpent: 400, ActivityScore: 41},
		},
		TopSpenders: []MemberStat{{User: sparky, PurchaseCount: 2, TotalSpent: 750}},
		MostActive:  []MemberStat{{User: sparky, ActivityScore: 88}},
		Pagination:  paging.Meta{Page: 1, Pages: 1, PerPage: 25, Total: 2},
	}

	ledger := PurchaseReport{
		Purchases: []LedgerPurchase{
			{
				ID:          10,
				User:        sparky,
				Product:     LedgerProduct{Name: "Sparky Plush"},
				PointsSpent: 750,
				Timestamp:   time.Now().Add(-36 * time.Hour),
				Status:      "completed",
			},
		},
		Stats:      &PurchaseStats{TotalPointsOnPage: 750},
		Pagination: paging.Meta{Page: 1, Pages: 1, PerPage: 25, Total: 1},
	}

	users := map[string]UserDetail{
		sparky.ID: {
			User:             sparky,
			Stats:            &UserStats{UserRank: 1, TotalEarned: 4200, TotalSpent: 750, ActivityScore: 88, TotalAchievements: 3},
			EarningBreakdown: &EarningBreakdown{Messages: 2300, DailyClaims: 850, VerificationBonus: 200},
			Achievements:     []Achievement{{Name: "First purchase", Points: 25}},
			RecentPurchases:  ledger.Purchases,
		},
	}

	return &StaticService{Report: report, Ledger: ledger, Users: users}
}

// Leaderboard returns the configured report regardless of page.
func (s *StaticService) Leaderboard(ctx context.Context, token string, page int) (LeaderboardReport, error) {
	return s.Report, nil
}

// Purchases returns the configured ledger regardless of page.
func (s *StaticService) Purchases(ctx context.Context, token string, page int) (PurchaseReport, error) {
	return s.Ledger, nil
}

// UserDetail returns the configured member report.
func (s *StaticService) UserDetail(ctx context.Context, token, userID string) (UserDetail, error) {
	detail, ok := s.Users[userID]
	if !ok {
		return UserDetail{}, ErrUserNotFound
	}
	return detail, nil
}

// Dashboard builds the landing summary from the configured data.
func (s *StaticService) Dashboard(ctx context.Context, token string) (DashboardData, error) {
	var user *Member
	if len(s.Report.LeaderboardStats) > 0 {
		u := s.Report.LeaderboardStats[0].User
		user = &u
	}
	return DashboardData{User: user, RecentPurchases: s.Ledger.Purchases}, nil
}
