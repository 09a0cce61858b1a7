package ui

import (
	"log"
	"net/http"

	"devil2devil.org/economy-web/internal/web/earn"
	"devil2devil.org/economy-web/internal/web/leaderboard"
	"devil2devil.org/economy-web/internal/web/purchases"
	"devil2devil.org/economy-web/internal/web/templates"
)

type leaderboardData struct {
	templates.BaseData
	Board leaderboard.Board
}

// LeaderboardPage renders the public ranking.
func (h *Handlers) LeaderboardPage(w http.ResponseWriter, r *http.Request) {
	board, err := h.leaderboard.Leaderboard(r.Context())
	if err != nil {
		log.Printf("leaderboard: fetch failed: %v", err)
		h.RenderError(w, r, "The leaderboard could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "leaderboard", leaderboardData{
		BaseData: h.base(r, "Leaderboard"),
		Board:    board,
	})
}

type myPurchasesData struct {
	templates.BaseData
	Purchases []purchases.Purchase
}

// MyPurchasesPage renders the visitor's purchase history.
func (h *Handlers) MyPurchasesPage(w http.ResponseWriter, r *http.Request) {
	list, err := h.purchases.MyPurchases(r.Context(), token(r))
	if err != nil {
		log.Printf("purchases: fetch history failed: %v", err)
		h.RenderError(w, r, "Your purchases could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "my_purchases", myPurchasesData{
		BaseData:  h.base(r, "My Purchases"),
		Purchases: list,
	})
}

type howToEarnData struct {
	templates.BaseData
	Catalog earn.Catalog
}

// HowToEarnPage renders the earning method catalog.
func (h *Handlers) HowToEarnPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "how_to_earn", howToEarnData{
		BaseData: h.base(r, "How to Earn"),
		Catalog:  *h.earn,
	})
}
