package ui

import (
	"log"
	"net/http"
	"strconv"

	"devil2devil.org/economy-web/internal/web/admineconomy"
	"devil2devil.org/economy-web/internal/web/templates"
)

type adminEconomyData struct {
	templates.BaseData
	Settings admineconomy.Settings
	Roles    []admineconomy.Role
	Error    string
}

// AdminEconomyPage renders the economy configuration form.
func (h *Handlers) AdminEconomyPage(w http.ResponseWriter, r *http.Request) {
	settings, err := h.economy.Settings(r.Context(), token(r))
	if err != nil {
		log.Printf("admineconomy: fetch settings failed: %v", err)
		h.RenderError(w, r, "The configuration could not be loaded. Try again in a moment.")
		return
	}

	h.renderEconomy(w, r, settings, "")
}

func (h *Handlers) renderEconomy(w http.ResponseWriter, r *http.Request, settings admineconomy.Settings, errMsg string) {
	roles, err := h.economy.DiscordRoles(r.Context(), token(r))
	if err != nil {
		// The form still renders; the pickers are just empty.
		log.Printf("admineconomy: fetch roles failed: %v", err)
		roles = nil
	}

	h.render(w, r, "admin_economy_config", adminEconomyData{
		BaseData: h.base(r, "Economy Configuration"),
		Settings: settings,
		Roles:    roles,
		Error:    errMsg,
	})
}

// AdminEconomySave persists the submitted settings. The action button decides
// whether the economy is switched on at the same time.
func (h *Handlers) AdminEconomySave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "The submission could not be read.", http.StatusBadRequest)
		return
	}

	verifiedBonus, _ := strconv.Atoi(r.PostFormValue("verified_bonus_points"))
	onboardingBonus, _ := strconv.Atoi(r.PostFormValue("onboarding_bonus_points"))
	update := admineconomy.Update{
		Action:                admineconomy.Action(r.PostFormValue("action")),
		VerifiedRoleID:        r.PostFormValue("verified_role_id"),
		VerifiedBonusPoints:   verifiedBonus,
		OnboardingRoleIDs:     r.PostForm["onboarding_role_ids"],
		OnboardingBonusPoints: onboardingBonus,
	}

	settings, err := h.economy.Save(r.Context(), token(r), update)
	if err != nil {
		// Re-render with the submitted values so nothing is lost.
		submitted := admineconomy.Settings{
			VerifiedRoleID:        update.VerifiedRoleID,
			VerifiedBonusPoints:   update.VerifiedBonusPoints,
			OnboardingRoleIDs:     update.OnboardingRoleIDs,
			OnboardingBonusPoints: update.OnboardingBonusPoints,
		}
		h.renderEconomy(w, r, submitted, userMessage(err, "The configuration could not be saved."))
		return
	}

	if update.Action == admineconomy.ActionEnableEconomy && settings.EconomyEnabled {
		flash(r, "success", "Configuration saved and economy enabled.")
	} else {
		flash(r, "success", "Configuration saved.")
	}
	http.Redirect(w, r, "/admin/economy-config", http.StatusSeeOther)
}
