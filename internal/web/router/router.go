// Package router maps request paths to the storefront's closed set of views.
//
// Matching is evaluated in a fixed priority order: exact static paths first,
// then the admin product prefixes (with /admin/products/new checked before
// the numeric-id rule), then the public product prefix. Anything else lands
// on the introductory landing view, which doubles as a soft 404.
package router

import (
	"strconv"
	"strings"
)

// View identifies one top-level page of the application.
type View string

const (
	ViewStore            View = "store"
	ViewHowToEarn        View = "how-to-earn"
	ViewLeaderboard      View = "leaderboard"
	ViewMyPurchases      View = "my-purchases"
	ViewDashboard        View = "dashboard"
	ViewProductDetail    View = "product-detail"
	ViewAdminProducts    View = "admin-products"
	ViewAdminProductNew  View = "admin-product-new"
	ViewAdminProductEdit View = "admin-product-edit"
	ViewAdminCategories  View = "admin-categories"
	ViewAdminLeaderboard View = "admin-leaderboard"
	ViewAdminPurchases   View = "admin-purchases"
	ViewAdminUserDetail  View = "admin-user-detail"
	ViewAdminEconomy     View = "admin-economy-config"
	ViewAdminFiles       View = "admin-file-manager"
	ViewAdminTemplates   View = "admin-digital-templates"
	ViewLanding          View = "landing"
)

// Requirement is the access level a view demands before rendering content.
type Requirement int

const (
	// Public views render for everyone.
	Public Requirement = iota
	// RequiresAuth views need an authenticated session.
	RequiresAuth
	// RequiresAdmin views additionally need the admin flag.
	RequiresAdmin
)

// Selection is the outcome of routing one normalized path.
type Selection struct {
	View View

	// ProductID is set for ViewProductDetail and ViewAdminProductEdit.
	ProductID int

	// UserID is set for ViewAdminUserDetail.
	UserID string
}

// Requirement returns the access level of the selected view.
func (s Selection) Requirement() Requirement {
	return RequirementOf(s.View)
}

// RequirementOf reports the access level a view demands.
func RequirementOf(v View) Requirement {
	switch v {
	case ViewMyPurchases:
		return RequiresAuth
	case ViewDashboard,
		ViewAdminProducts, ViewAdminProductNew, ViewAdminProductEdit,
		ViewAdminCategories, ViewAdminLeaderboard, ViewAdminPurchases,
		ViewAdminUserDetail, ViewAdminEconomy, ViewAdminFiles,
		ViewAdminTemplates:
		return RequiresAdmin
	default:
		return Public
	}
}

// NormalizePath strips trailing slashes from a request path. The empty path
// collapses to "/". The transform is idempotent.
func NormalizePath(raw string) string {
	cleaned := strings.TrimRight(raw, "/")
	if cleaned == "" {
		return "/"
	}
	return cleaned
}

// Select resolves a normalized path to a view. Static full-path matches beat
// prefix rules; the /admin/products/new check precedes the numeric-id rule so
// "new" is never parsed as a product id.
func Select(path string) Selection {
	switch path {
	case "/", "/store":
		return Selection{View: ViewStore}
	case "/how-to-earn":
		return Selection{View: ViewHowToEarn}
	case "/leaderboard":
		return Selection{View: ViewLeaderboard}
	case "/my-purchases":
		return Selection{View: ViewMyPurchases}
	case "/dashboard":
		return Selection{View: ViewDashboard}
	case "/admin/products":
		return Selection{View: ViewAdminProducts}
	case "/admin/products/new":
		return Selection{View: ViewAdminProductNew}
	case "/admin/categories":
		return Selection{View: ViewAdminCategories}
	case "/admin-leaderboard":
		return Selection{View: ViewAdminLeaderboard}
	case "/admin/purchases":
		return Selection{View: ViewAdminPurchases}
	case "/admin/economy-config":
		return Selection{View: ViewAdminEconomy}
	case "/admin/files":
		return Selection{View: ViewAdminFiles}
	case "/admin/digital-templates":
		return Selection{View: ViewAdminTemplates}
	}

	if rest, ok := strings.CutPrefix(path, "/admin/products/"); ok {
		if id, ok := parseID(rest); ok {
			return Selection{View: ViewAdminProductEdit, ProductID: id}
		}
		return Selection{View: ViewLanding}
	}

	if rest, ok := strings.CutPrefix(path, "/admin/users/"); ok {
		if rest != "" && !strings.Contains(rest, "/") {
			return Selection{View: ViewAdminUserDetail, UserID: rest}
		}
		return Selection{View: ViewLanding}
	}

	if rest, ok := strings.CutPrefix(path, "/product/"); ok {
		if id, ok := parseID(rest); ok {
			return Selection{View: ViewProductDetail, ProductID: id}
		}
		// Non-numeric segment: fall through to the landing view rather
		// than erroring.
		return Selection{View: ViewLanding}
	}

	return Selection{View: ViewLanding}
}

func parseID(segment string) (int, bool) {
	if segment == "" || strings.Contains(segment, "/") {
		return 0, false
	}
	id, err := strconv.Atoi(segment)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
