// Package adminstats covers the read-only back-office reporting views: the
// admin leaderboard, the purchase ledger, per-user detail and the admin
// dashboard summary.
package adminstats

import (
	"context"
	"errors"
	"time"

	"devil2devil.org/economy-web/internal/web/paging"
)

// ErrNotConfigured indicates the stats service dependency has not been provided.
var ErrNotConfigured = errors.New("adminstats service not configured")

// ErrUserNotFound indicates the requested member does not exist.
var ErrUserNotFound = errors.New("adminstats: user not found")

// Member is the admin-side view of a community member.
type Member struct {
	ID           string `json:"id"`
	DiscordID    string `json:"discord_id"`
	Username     string `json:"username"`
	AvatarURL    string `json:"avatar_url"`
	Balance      int    `json:"balance"`
	Points       int    `json:"points"`
	MessageCount int    `json:"message_count"`
	VoiceMinutes int    `json:"voice_minutes"`
	IsAdmin      bool   `json:"is_admin"`
	HasBoosted   bool   `json:"has_boosted"`
	UserUUID     string `json:"user_uuid"`
	Birthday     string `json:"birthday"`
	CreatedAt    string `json:"created_at"`
}

// EconomyStats summarises the whole economy for the admin leaderboard header.
type EconomyStats struct {
	TotalUsers        int `json:"total_users"`
	TotalBalance      int `json:"total_balance"`
	TotalSpent        int `json:"total_spent"`
	TotalPurchases    int `json:"total_purchases"`
	TotalAchievements int `json:"total_achievements"`
}

// MemberStat is one ranked row of the admin leaderboard.
type MemberStat struct {
	Rank             int    `json:"rank"`
	User             Member `json:"user"`
	AchievementCount int    `json:"achievement_count"`
	PurchaseCount    int    `json:"purchase_count"`
	TotalSpent       int    `json:"total_spent"`
	ActivityScore    int    `json:"activity_score"`
}

// LeaderboardReport is the full admin leaderboard payload. Pagination comes
// from the backend and is trusted as-is.
type LeaderboardReport struct {
	EconomyStats     *EconomyStats `json:"economy_stats"`
	LeaderboardStats []MemberStat  `json:"leaderboard_stats"`
	TopSpenders      []MemberStat  `json:"top_spenders"`
	MostActive       []MemberStat  `json:"most_active"`
	Pagination       paging.Meta   `json:"pagination"`
}

// LedgerProduct is the product summary inlined into a ledger row.
type LedgerProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// LedgerPurchase is one row of the admin purchase ledger.
type LedgerPurchase struct {
	ID          int           `json:"id"`
	User        Member        `json:"user"`
	Product     LedgerProduct `json:"product"`
	PointsSpent int           `json:"points_spent"`
	Timestamp   time.Time     `json:"timestamp"`
	Status      string        `json:"status"`
}

// PurchaseStats summarises the current ledger page.
type PurchaseStats struct {
	TotalPointsOnPage int `json:"total_points_on_page"`
}

// PurchaseReport is the full admin purchase ledger payload.
type PurchaseReport struct {
	Purchases  []LedgerPurchase `json:"purchases"`
	Stats      *PurchaseStats   `json:"stats"`
	Pagination paging.Meta      `json:"pagination"`
}

// UserStats holds a member's headline numbers.
type UserStats struct {
	UserRank          int `json:"user_rank"`
	TotalEarned       int `json:"total_earned"`
	TotalSpent        int `json:"total_spent"`
	ActivityScore     int `json:"activity_score"`
	TotalAchievements int `json:"total_achievements"`
}

// EarningBreakdown itemises where a member's points came from.
type EarningBreakdown struct {
	Messages          int `json:"messages"`
	Reactions         int `json:"reactions"`
	VoiceMinutes      int `json:"voice_minutes"`
	DailyClaims       int `json:"daily_claims"`
	CampusPhotos      int `json:"campus_photos"`
	DailyEngagement   int `json:"daily_engagement"`
	Achievements      int `json:"achievements"`
	VerificationBonus int `json:"verification_bonus"`
	OnboardingBonus   int `json:"onboarding_bonus"`
	EnrollmentDeposit int `json:"enrollment_deposit"`
	BirthdayBonus     int `json:"birthday_bonus"`
	BoostBonus        int `json:"boost_bonus"`
}

// Achievement is one unlocked achievement of a member.
type Achievement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
	UnlockedAt  string `json:"unlocked_at"`
}

// UserDetail is the full per-member report.
type UserDetail struct {
	User               Member            `json:"user"`
	Stats              *UserStats        `json:"stats"`
	EarningBreakdown   *EarningBreakdown `json:"earning_breakdown"`
	SpendingBreakdown  map[string]int    `json:"spending_breakdown"`
	Achievements       []Achievement     `json:"achievements"`
	RecentPurchases    []LedgerPurchase  `json:"recent_purchases"`
	RecentAchievements []Achievement     `json:"recent_achievements"`
}

// DashboardData backs the admin landing view.
type DashboardData struct {
	User            *Member          `json:"user"`
	RecentPurchases []LedgerPurchase `json:"recent_purchases"`
}

// Service exposes the back-office reporting reads.
type Service interface {
	// Leaderboard returns one server-paginated page of the admin leaderboard.
	Leaderboard(ctx context.Context, token string, page int) (LeaderboardReport, error)
	// Purchases returns one server-paginated page of the purchase ledger.
	Purchases(ctx context.Context, token string, page int) (PurchaseReport, error)
	// UserDetail returns the full report for one member.
	UserDetail(ctx context.Context, token, userID string) (UserDetail, error)
	// Dashboard returns the admin landing summary.
	Dashboard(ctx context.Context, token string) (DashboardData, error)
}
