package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"devil2devil.org/economy-web/internal/web/apiclient"
	"devil2devil.org/economy-web/internal/web/store"
)

func newService(t *testing.T, handler http.HandlerFunc) *store.HTTPService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := apiclient.New(srv.URL, srv.Client())
	require.NoError(t, err)
	return store.NewHTTPService(client)
}

func TestProductsDefaultsMissingArray(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/store", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	products, err := svc.Products(context.Background())
	require.NoError(t, err)
	require.NotNil(t, products)
	require.Empty(t, products)
}

func TestProductsDecodesStock(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[
			{"id":1,"name":"Plush","price":750,"stock":12,"in_stock":true},
			{"id":2,"name":"Role","price":1500,"stock":null,"in_stock":true}
		]}`))
	})

	products, err := svc.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.False(t, products[0].Unlimited())
	require.Equal(t, 12, *products[0].Stock)
	require.True(t, products[1].Unlimited())
}

func TestProductNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := svc.Product(context.Background(), 99)
	require.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestPurchaseRejectionIsAResultNotAnError(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/purchase/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Insufficient balance"}`))
	})

	result, err := svc.Purchase(context.Background(), "tok", 1)
	require.NoError(t, err)
	require.False(t, result.OK)
	require.Equal(t, "Insufficient balance", result.Message)
}

func TestPurchaseSuccess(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"new_balance":1250}`))
	})

	result, err := svc.Purchase(context.Background(), "tok", 1)
	require.NoError(t, err)
	require.True(t, result.OK)
	require.Equal(t, 1250, result.NewBalance)
	require.Equal(t, "Purchase completed.", result.Message)
}

func TestPrimaryMedia(t *testing.T) {
	t.Parallel()

	p := store.Product{Media: []store.Media{
		{ID: 1, URL: "/a.png"},
		{ID: 2, URL: "/b.png", IsPrimary: true},
	}}
	require.Equal(t, 2, p.PrimaryMedia().ID)

	p = store.Product{Media: []store.Media{{ID: 3, URL: "/c.png"}}}
	require.Equal(t, 3, p.PrimaryMedia().ID)

	p = store.Product{}
	require.Nil(t, p.PrimaryMedia())
}
