package ui

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"devil2devil.org/economy-web/internal/web/adminstats"
	"devil2devil.org/economy-web/internal/web/templates"
)

type adminLeaderboardData struct {
	templates.BaseData
	Report adminstats.LeaderboardReport
}

// AdminLeaderboardPage renders one server-paginated page of the economy
// leaderboard. The backend's pagination envelope is shown as-is.
func (h *Handlers) AdminLeaderboardPage(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	report, err := h.stats.Leaderboard(r.Context(), token(r), page)
	if err != nil {
		log.Printf("adminstats: fetch leaderboard page %d failed: %v", page, err)
		h.RenderError(w, r, "The leaderboard could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "admin_leaderboard", adminLeaderboardData{
		BaseData: h.base(r, "Economy Leaderboard"),
		Report:   report,
	})
}

type adminPurchasesData struct {
	templates.BaseData
	Report adminstats.PurchaseReport
}

// AdminPurchasesPage renders one server-paginated page of the purchase
// ledger.
func (h *Handlers) AdminPurchasesPage(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	report, err := h.stats.Purchases(r.Context(), token(r), page)
	if err != nil {
		log.Printf("adminstats: fetch purchases page %d failed: %v", page, err)
		h.RenderError(w, r, "The purchase ledger could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "admin_purchases", adminPurchasesData{
		BaseData: h.base(r, "Purchase Ledger"),
		Report:   report,
	})
}

type adminUserDetailData struct {
	templates.BaseData
	Detail adminstats.UserDetail
}

// AdminUserDetailPage renders the full per-member report.
func (h *Handlers) AdminUserDetailPage(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		h.NotFound(w, r)
		return
	}

	detail, err := h.stats.UserDetail(r.Context(), token(r), userID)
	if errors.Is(err, adminstats.ErrUserNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("adminstats: fetch user %s failed: %v", userID, err)
		h.RenderError(w, r, "The member report could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "admin_user_detail", adminUserDetailData{
		BaseData: h.base(r, detail.User.Username),
		Detail:   detail,
	})
}
