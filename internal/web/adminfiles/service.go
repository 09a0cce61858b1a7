// Package adminfiles covers the back-office file manager: uploads, the
// stats strip and deletion by path.
package adminfiles

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotConfigured indicates the files service dependency has not been provided.
var ErrNotConfigured = errors.New("adminfiles service not configured")

// File is one managed upload.
type File struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	Modified   time.Time `json:"modified"`
	IsImage    bool      `json:"is_image"`
	IsArchive  bool      `json:"is_archive"`
	IsDocument bool      `json:"is_document"`
}

// Stats is the header strip over the file grid.
type Stats struct {
	Total     int `json:"total"`
	Images    int `json:"images"`
	Archives  int `json:"archives"`
	Documents int `json:"documents"`
}

// Listing is the file manager payload.
type Listing struct {
	Files []File
	Stats Stats
}

// Upload is one file submission.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Service exposes the file manager operations.
type Service interface {
	// List returns the managed files and their stats.
	List(ctx context.Context, token string) (Listing, error)
	// Upload stores a new file and returns its record.
	Upload(ctx context.Context, token string, upload Upload) (*File, error)
	// Delete removes a file by its public path.
	Delete(ctx context.Context, token, path string) error
}
