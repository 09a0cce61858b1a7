package httpserver_test

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"devil2devil.org/economy-web/internal/web/identity"
	"devil2devil.org/economy-web/internal/web/store"
	"devil2devil.org/economy-web/internal/web/testutil"
)

func guestVisitor() identity.Session {
	return identity.Guest()
}

func memberVisitor() identity.Session {
	return identity.Session{
		Authenticated: true,
		User:          &identity.User{ID: "77", Username: "sundevil", Balance: 2000},
	}
}

func adminVisitor() identity.Session {
	sess := memberVisitor()
	sess.IsAdmin = true
	sess.User.Username = "forkmaster"
	return sess
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func getDocument(t *testing.T, client *http.Client, url string) (*http.Response, *goquery.Document) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, testutil.ParseHTML(t, body)
}

func csrfToken(t *testing.T, doc *goquery.Document) string {
	t.Helper()
	token, ok := doc.Find(`input[name="csrf_token"]`).First().Attr("value")
	require.True(t, ok, "page must embed a csrf token")
	require.NotEmpty(t, token)
	return token
}

func twoProductCatalog() *store.StaticService {
	return store.NewStaticService().WithProducts([]store.Product{
		{ID: 1, Name: "Sticker Pack", Price: 100, InStock: true, Category: "merch"},
		{ID: 2, Name: "Hoodie", Price: 900, InStock: true, Category: "merch"},
	})
}

func TestStoreRendersEveryProductOnOnePage(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t,
		testutil.WithVisitor(guestVisitor()),
		testutil.WithStoreService(twoProductCatalog()),
	)
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/store")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, doc.Find(".product-card").Length())
	require.Contains(t, doc.Find(".pager-info").Text(), "Page 1 of 1")
	require.Equal(t, 1, doc.Find("[data-sign-in]").Length(), "guests see the sign-in control")
}

func TestStoreClampsPageRequestsPastTheEnd(t *testing.T) {
	t.Parallel()

	var products []store.Product
	for i := 1; i <= 13; i++ {
		products = append(products, store.Product{
			ID: i, Name: fmt.Sprintf("Item %d", i), Price: 100, InStock: true, Category: "merch",
		})
	}
	ts := testutil.NewServer(t,
		testutil.WithStoreService(store.NewStaticService().WithProducts(products)),
	)
	client := newClient(t)

	_, doc := getDocument(t, client, ts.URL+"/store?page=99")

	require.Contains(t, doc.Find(".pager-info").Text(), "Page 3 of 3")
	require.Equal(t, 1, doc.Find(".product-card").Length(), "last page holds the remainder")
}

func TestTrailingSlashReachesTheSameView(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t,
		testutil.WithStoreService(twoProductCatalog()),
	)
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/store/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, doc.Find(".product-card").Length())

	resp, doc = getDocument(t, client, ts.URL+"/how-to-earn/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Positive(t, doc.Find(".method-card").Length())
}

func TestStoreCategoryFilter(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := newClient(t)

	_, doc := getDocument(t, client, ts.URL+"/store?category=roles")

	require.Equal(t, 1, doc.Find(".product-card").Length())
	require.Contains(t, doc.Find(".product-card").Text(), "VIP Lounge Role")
}

func TestGuestOnAdminViewSeesSignInNotForbidden(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(guestVisitor()))
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/admin/products")

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, doc.Text(), "Sign in required")
	require.NotContains(t, doc.Text(), "only for administrators")
}

func TestAuthenticatedNonAdminIsForbidden(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(memberVisitor()))
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/admin/products")

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Contains(t, doc.Text(), "only for administrators")
}

func TestAdminSeesProductTable(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(adminVisitor()))
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/admin/products")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, doc.Find(".admin-table tbody tr").Length())
	require.Contains(t, doc.Text(), "Sparky Plush")
}

func TestUnknownPathsLandOnIntroPage(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := newClient(t)

	for _, path := range []string{"/no-such-page", "/product/not-a-number"} {
		resp, doc := getDocument(t, client, ts.URL+path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Contains(t, doc.Find("h1").Text(), "Devil2Devil Economy", path)
	}
}

func TestProductDetailShowsGalleryAndPurchaseForm(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(memberVisitor()))
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/product/1")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, doc.Find("h1").Text(), "Sparky Plush")
	require.Equal(t, 2, doc.Find(".gallery-thumb").Length())
	require.Equal(t, 1, doc.Find("form[data-disable-on-submit]").Length())
}

func TestPurchaseRoundTrip(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(memberVisitor()))
	client := newClient(t)

	_, doc := getDocument(t, client, ts.URL+"/product/1")
	token := csrfToken(t, doc)

	form := url.Values{"csrf_token": {token}}
	resp, err := client.PostForm(ts.URL+"/product/1/purchase", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The client followed the redirect back to the detail page.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/product/1", resp.Request.URL.Path)
	require.Contains(t, testutil.ParseHTML(t, body).Find(".flash-success").Text(), "Purchase completed")
}

func TestGuestCannotPurchase(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(guestVisitor()))
	client := newClient(t)

	// The guest product page offers the sign-in link, never the purchase form.
	resp, doc := getDocument(t, client, ts.URL+"/product/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Zero(t, doc.Find("form[data-disable-on-submit]").Length())
	require.Contains(t, doc.Find("[data-sign-in]").Text(), "Sign in to purchase")

	// A purchase forged without the form carries no token and is rejected
	// before authentication is even considered.
	resp, err := client.PostForm(ts.URL+"/product/1/purchase", url.Values{})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestFailedProductSubmitKeepsFieldValues(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(adminVisitor()))
	client := newClient(t)

	_, doc := getDocument(t, client, ts.URL+"/admin/products/new")
	token := csrfToken(t, doc)

	var buf strings.Builder
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("csrf_token", token))
	require.NoError(t, mw.WriteField("name", ""))
	require.NoError(t, mw.WriteField("description", "Glow in the dark pitchfork decal"))
	require.NoError(t, mw.WriteField("price", "250"))
	require.NoError(t, mw.WriteField("stock", "unlimited"))
	require.NoError(t, mw.Close())

	resp, err := client.Post(ts.URL+"/admin/products/new", mw.FormDataContentType(), strings.NewReader(buf.String()))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := testutil.ParseHTML(t, body)
	require.Equal(t, 1, page.Find(".flash-error").Length(), "validation failure must surface on the form")
	require.Equal(t, "Glow in the dark pitchfork decal", page.Find(`textarea[name="description"]`).Text())
	price, _ := page.Find(`input[name="price"]`).Attr("value")
	require.Equal(t, "250", price)
}

func TestLeaderboardRendersTotalsAndRows(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/leaderboard")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotZero(t, doc.Find(".leaderboard-table tbody tr").Length())
	require.NotZero(t, doc.Find(".stat").Length())
}

func TestAdminLeaderboardShowsServerPagination(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(adminVisitor()))
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/admin-leaderboard")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotZero(t, doc.Find(".admin-table tbody tr").Length())
	require.NotZero(t, doc.Find(".stat").Length(), "economy stats strip renders")
}

func TestEconomyConfigRoundTrip(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(adminVisitor()))
	client := newClient(t)

	_, doc := getDocument(t, client, ts.URL+"/admin/economy-config")
	token := csrfToken(t, doc)

	form := url.Values{
		"csrf_token":              {token},
		"action":                  {"save_config"},
		"verified_role_id":        {"role-1"},
		"verified_bonus_points":   {"200"},
		"onboarding_bonus_points": {"500"},
	}
	resp, err := client.PostForm(ts.URL+"/admin/economy-config", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, testutil.ParseHTML(t, body).Find(".flash-success").Text(), "Configuration saved")
}

func TestPostWithoutCSRFTokenIsRejected(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithVisitor(memberVisitor()))
	client := newClient(t)

	// Prime the session cookie first.
	resp, err := client.Get(ts.URL + "/store")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.PostForm(ts.URL+"/product/1/purchase", url.Values{})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHowToEarnListsMethods(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := newClient(t)

	resp, doc := getDocument(t, client, ts.URL+"/how-to-earn")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotZero(t, doc.Find(".method-card").Length())
	require.Contains(t, doc.Text(), "Daily")
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
