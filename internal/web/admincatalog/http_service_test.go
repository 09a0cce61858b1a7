package admincatalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"devil2devil.org/economy-web/internal/web/admincatalog"
	"devil2devil.org/economy-web/internal/web/apiclient"
)

func newService(t *testing.T, handler http.HandlerFunc) *admincatalog.HTTPService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := apiclient.New(srv.URL, srv.Client())
	require.NoError(t, err)
	return admincatalog.NewHTTPService(client)
}

func TestCreateProductSubmitsMultipart(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/admin/products", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		require.Equal(t, "Sparky Plush", r.FormValue("name"))
		require.Equal(t, "750", r.FormValue("price"))
		require.Equal(t, "unlimited", r.FormValue("stock"))
		require.Equal(t, "general", r.FormValue("category"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "plush.png", header.Filename)

		require.Len(t, r.MultipartForm.File["gallery_images"], 2)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"product":{"id":7,"name":"Sparky Plush","price":750}}`))
	})

	product, err := svc.CreateProduct(context.Background(), "tok", admincatalog.ProductForm{
		Name:  "Sparky Plush",
		Price: "750",
		Image: &admincatalog.FileUpload{Filename: "plush.png", Content: strings.NewReader("png-bytes")},
		GalleryImages: []admincatalog.FileUpload{
			{Filename: "a.png", Content: strings.NewReader("a")},
			{Filename: "b.png", Content: strings.NewReader("b")},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 7, product.ID)
}

func TestCreateProductEmptyResponseIsAnError(t *testing.T) {
	t.Parallel()

	// A 200 with no product in the body must not surface as a nil product
	// with a nil error.
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	product, err := svc.CreateProduct(context.Background(), "tok", admincatalog.ProductForm{Name: "Sparky Plush", Price: "750"})
	require.Error(t, err)
	require.Nil(t, product)
}

func TestCategoryMutationsEmptyResponseIsAnError(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	created, err := svc.CreateCategory(context.Background(), "tok", admincatalog.CategoryRequest{Name: "merch"})
	require.Error(t, err)
	require.Nil(t, created)

	renamed, err := svc.UpdateCategory(context.Background(), "tok", 3, admincatalog.CategoryRequest{Name: "roles"})
	require.Error(t, err)
	require.Nil(t, renamed)
}

func TestUpdateProductValidationErrorCarriesMessage(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"price must be positive"}`))
	})

	_, err := svc.UpdateProduct(context.Background(), "tok", 3, admincatalog.ProductForm{
		Name:  "X",
		Price: "-1",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "price must be positive")
}

func TestProductNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := svc.Product(context.Background(), "tok", 404)
	require.ErrorIs(t, err, admincatalog.ErrProductNotFound)
}

func TestMediaEndpoints(t *testing.T) {
	t.Parallel()

	var gotDelete, gotPrimary string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			gotDelete = r.URL.Path
		case http.MethodPost:
			gotPrimary = r.URL.Path
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, svc.DeleteMedia(context.Background(), "tok", 5, 9))
	require.Equal(t, "/api/admin/products/5/media/9", gotDelete)

	require.NoError(t, svc.SetPrimaryMedia(context.Background(), "tok", 5, 9))
	require.Equal(t, "/api/admin/products/5/media/9/primary", gotPrimary)
}

func TestAssignCategoryDefaultsMode(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/categories/2/assign-all", r.URL.Path)
		body := make([]byte, 256)
		n, _ := r.Body.Read(body)
		require.Contains(t, string(body[:n]), `"uncategorized"`)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"updated":4}`))
	})

	result, err := svc.AssignCategory(context.Background(), "tok", 2, "")
	require.NoError(t, err)
	require.Equal(t, 4, result.Updated)
}
