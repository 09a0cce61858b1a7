package adminfiles

import (
	"bytes"
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"devil2devil.org/economy-web/internal/web/apiclient"
)

// HTTPService implements Service against the economy REST backend.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService constructs a Service backed by the backend files endpoint.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// List fetches the managed files and the stats strip.
func (s *HTTPService) List(ctx context.Context, token string) (Listing, error) {
	var payload struct {
		Files []File `json:"files"`
		Stats Stats  `json:"stats"`
	}
	if err := s.client.GetJSON(ctx, "/api/admin/files", token, &payload); err != nil {
		return Listing{}, err
	}
	if payload.Files == nil {
		payload.Files = []File{}
	}
	return Listing{Files: payload.Files, Stats: payload.Stats}, nil
}

// Upload stores a new file.
func (s *HTTPService) Upload(ctx context.Context, token string, upload Upload) (*File, error) {
	files := []apiclient.FilePart{{Field: "file", Filename: upload.Filename, Content: upload.Content}}
	var payload struct {
		File *File `json:"file"`
	}
	if err := s.client.PostMultipart(ctx, "/api/admin/files", nil, files, token, &payload); err != nil {
		return nil, err
	}
	if payload.File == nil {
		return nil, errors.New("adminfiles: backend response missing file")
	}
	return payload.File, nil
}

// Delete removes a file. The backend addresses files by their public path in
// the request body.
func (s *HTTPService) Delete(ctx context.Context, token, filePath string) error {
	body := map[string]string{"file_path": filePath}
	return s.client.DeleteJSON(ctx, "/api/admin/files", body, token, nil)
}

// StaticService keeps files in memory for local development and tests.
type StaticService struct {
	files []File
}

// NewStaticService returns a StaticService with representative files.
func NewStaticService() *StaticService {
	now := time.Now()
	return &StaticService{files: []File{
		{Name: "sparky-plush.png", Path: "/static/uploads/sparky-plush.png", Size: 48213, Modified: now.Add(-90 * time.Hour), IsImage: true},
		{Name: "skins.zip", Path: "/static/uploads/skins.zip", Size: 1_204_001, Modified: now.Add(-8 * time.Hour), IsArchive: true},
		{Name: "rules.pdf", Path: "/static/uploads/rules.pdf", Size: 92_441, Modified: now.Add(-200 * time.Hour), IsDocument: true},
	}}
}

// List returns the stored files with recomputed stats.
func (s *StaticService) List(ctx context.Context, token string) (Listing, error) {
	stats := Stats{Total: len(s.files)}
	for _, f := range s.files {
		switch {
		case f.IsImage:
			stats.Images++
		case f.IsArchive:
			stats.Archives++
		case f.IsDocument:
			stats.Documents++
		}
	}
	return Listing{Files: append([]File(nil), s.files...), Stats: stats}, nil
}

// Upload stores the submission in memory.
func (s *StaticService) Upload(ctx context.Context, token string, upload Upload) (*File, error) {
	var buf bytes.Buffer
	if upload.Content != nil {
		_, _ = buf.ReadFrom(upload.Content)
	}
	ext := strings.ToLower(path.Ext(upload.Filename))
	file := File{
		Name:       upload.Filename,
		Path:       "/static/uploads/" + upload.Filename,
		Size:       int64(buf.Len()),
		Modified:   time.Now(),
		IsImage:    ext == ".png" || ext == ".jpg" || ext == ".jpeg" || ext == ".gif" || ext == ".webp",
		IsArchive:  ext == ".zip" || ext == ".tar" || ext == ".gz",
		IsDocument: ext == ".pdf" || ext == ".txt" || ext == ".md",
	}
	s.files = append(s.files, file)
	return &file, nil
}

// Delete removes the stored file with the given path.
func (s *StaticService) Delete(ctx context.Context, token, filePath string) error {
	for i := range s.files {
		if s.files[i].Path == filePath {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return nil
		}
	}
	return &apiclient.StatusError{StatusCode: 404, Message: "file not found"}
}
