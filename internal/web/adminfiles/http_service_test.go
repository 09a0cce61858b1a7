package adminfiles_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"devil2devil.org/economy-web/internal/web/adminfiles"
	"devil2devil.org/economy-web/internal/web/apiclient"
)

func newService(t *testing.T, handler http.HandlerFunc) *adminfiles.HTTPService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := apiclient.New(srv.URL, srv.Client())
	require.NoError(t, err)
	return adminfiles.NewHTTPService(client)
}

func TestListDecodesFilesAndStats(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/files", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"files":[{"name":"a.png","path":"/static/uploads/a.png","size":100,"is_image":true}],
			"stats":{"total":1,"images":1,"archives":0,"documents":0}
		}`))
	})

	listing, err := svc.List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, listing.Files, 1)
	require.True(t, listing.Files[0].IsImage)
	require.Equal(t, 1, listing.Stats.Total)
}

func TestUploadSubmitsMultipartFile(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "skins.zip", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"file":{"name":"skins.zip","path":"/static/uploads/skins.zip","is_archive":true}}`))
	})

	file, err := svc.Upload(context.Background(), "tok", adminfiles.Upload{
		Filename: "skins.zip",
		Content:  strings.NewReader("zip-bytes"),
	})
	require.NoError(t, err)
	require.Equal(t, "/static/uploads/skins.zip", file.Path)
}

func TestDeleteSendsPathInBody(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "/static/uploads/a.png", body["file_path"])
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.Delete(context.Background(), "tok", "/static/uploads/a.png"))
}

func TestStaticServiceStatsRecompute(t *testing.T) {
	t.Parallel()

	svc := adminfiles.NewStaticService()
	listing, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, listing.Stats.Total, len(listing.Files))
	require.Equal(t, 1, listing.Stats.Images)
	require.Equal(t, 1, listing.Stats.Archives)
	require.Equal(t, 1, listing.Stats.Documents)

	_, err = svc.Upload(context.Background(), "", adminfiles.Upload{Filename: "b.png", Content: strings.NewReader("x")})
	require.NoError(t, err)
	listing, err = svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 2, listing.Stats.Images)
}
