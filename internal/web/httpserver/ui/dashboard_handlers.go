package ui

import (
	"log"
	"net/http"

	"devil2devil.org/economy-web/internal/web/adminstats"
	"devil2devil.org/economy-web/internal/web/templates"
)

type dashboardData struct {
	templates.BaseData
	Dashboard adminstats.DashboardData
}

// DashboardPage renders the admin landing summary.
func (h *Handlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	data, err := h.stats.Dashboard(r.Context(), token(r))
	if err != nil {
		log.Printf("dashboard: fetch failed: %v", err)
		h.RenderError(w, r, "The dashboard could not be loaded. Try again in a moment.")
		return
	}

	h.render(w, r, "dashboard", dashboardData{
		BaseData:  h.base(r, "Dashboard"),
		Dashboard: data,
	})
}
