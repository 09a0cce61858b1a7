package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"devil2devil.org/economy-web/internal/web/router"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"", "/"},
		{"///", "/"},
		{"/store", "/store"},
		{"/store/", "/store"},
		{"/store///", "/store"},
		{"/admin/products/7/", "/admin/products/7"},
	}
	for _, tc := range cases {
		got := router.NormalizePath(tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
		require.Equal(t, got, router.NormalizePath(got), "not idempotent for %q", tc.in)
	}
}

func TestSelectStaticRoutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		view router.View
	}{
		{"/", router.ViewStore},
		{"/store", router.ViewStore},
		{"/how-to-earn", router.ViewHowToEarn},
		{"/leaderboard", router.ViewLeaderboard},
		{"/my-purchases", router.ViewMyPurchases},
		{"/dashboard", router.ViewDashboard},
		{"/admin/products", router.ViewAdminProducts},
		{"/admin/products/new", router.ViewAdminProductNew},
		{"/admin/categories", router.ViewAdminCategories},
		{"/admin-leaderboard", router.ViewAdminLeaderboard},
		{"/admin/purchases", router.ViewAdminPurchases},
		{"/admin/economy-config", router.ViewAdminEconomy},
		{"/admin/files", router.ViewAdminFiles},
		{"/admin/digital-templates", router.ViewAdminTemplates},
	}
	for _, tc := range cases {
		sel := router.Select(tc.path)
		require.Equal(t, tc.view, sel.View, "path %q", tc.path)
	}
}

func TestSelectProductDetail(t *testing.T) {
	t.Parallel()

	sel := router.Select("/product/42")
	require.Equal(t, router.ViewProductDetail, sel.View)
	require.Equal(t, 42, sel.ProductID)

	for _, path := range []string{"/product/abc", "/product/", "/product/1/extra", "/product/-3", "/product/0"} {
		sel := router.Select(path)
		require.Equal(t, router.ViewLanding, sel.View, "path %q", path)
	}
}

func TestSelectAdminProductEdit(t *testing.T) {
	t.Parallel()

	sel := router.Select("/admin/products/15")
	require.Equal(t, router.ViewAdminProductEdit, sel.View)
	require.Equal(t, 15, sel.ProductID)

	// "new" must never be treated as an id.
	sel = router.Select("/admin/products/new")
	require.Equal(t, router.ViewAdminProductNew, sel.View)
	require.Zero(t, sel.ProductID)
}

func TestSelectAdminUserDetail(t *testing.T) {
	t.Parallel()

	sel := router.Select("/admin/users/198237123")
	require.Equal(t, router.ViewAdminUserDetail, sel.View)
	require.Equal(t, "198237123", sel.UserID)

	require.Equal(t, router.ViewLanding, router.Select("/admin/users/").View)
	require.Equal(t, router.ViewLanding, router.Select("/admin/users/a/b").View)
}

func TestSelectUnknownFallsBackToLanding(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/nope", "/admin", "/admin/unknown", "/storefront"} {
		require.Equal(t, router.ViewLanding, router.Select(path).View, "path %q", path)
	}
}

func TestRequirements(t *testing.T) {
	t.Parallel()

	require.Equal(t, router.Public, router.RequirementOf(router.ViewStore))
	require.Equal(t, router.Public, router.RequirementOf(router.ViewProductDetail))
	require.Equal(t, router.RequiresAuth, router.RequirementOf(router.ViewMyPurchases))
	require.Equal(t, router.RequiresAdmin, router.RequirementOf(router.ViewDashboard))
	require.Equal(t, router.RequiresAdmin, router.RequirementOf(router.ViewAdminEconomy))
	require.Equal(t, router.RequiresAdmin, router.Select("/admin/products/3").Requirement())
}
