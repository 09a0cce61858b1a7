// Package admincatalog covers the back-office product and category editors:
// product CRUD with media galleries, category CRUD and the bulk assign flow.
package admincatalog

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotConfigured indicates the catalog service dependency has not been provided.
var ErrNotConfigured = errors.New("admincatalog service not configured")

// ErrProductNotFound indicates the requested product does not exist.
var ErrProductNotFound = errors.New("admincatalog: product not found")

// StockUnlimited is the sentinel stock value meaning no stock ceiling.
const StockUnlimited = "unlimited"

// Known product types, in the order the form offers them.
var ProductTypes = []string{"physical", "role", "minecraft_skin", "game_code", "custom"}

// Media is one gallery entry of a product.
type Media struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// Product is the admin-side product record.
type Product struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           int       `json:"price"`
	Stock           *int      `json:"stock"`
	ImageURL        string    `json:"image_url"`
	Category        string    `json:"category"`
	ProductType     string    `json:"product_type"`
	PreviewImageURL string    `json:"preview_image_url"`
	PreviewVideoURL string    `json:"preview_video_url"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	Media           []Media   `json:"media"`
}

// FileUpload is a file attached to a product or template submission.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// ProductForm carries the editable product fields. Stock holds a number or
// StockUnlimited. File fields are nil when unchanged.
type ProductForm struct {
	Name            string
	Description     string
	Price           string
	Stock           string
	ProductType     string
	Category        string
	PreviewVideoURL string
	Image           *FileUpload
	PreviewImage    *FileUpload
	DownloadFile    *FileUpload
	GalleryImages   []FileUpload
}

// Category is a storefront category managed by admins.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"product_count"`
}

// CategoryRequest carries the editable category fields.
type CategoryRequest struct {
	Name string `json:"name"`
}

// AssignMode selects which products a bulk category assignment touches.
type AssignMode string

const (
	// AssignUncategorized only moves products still in the default category.
	AssignUncategorized AssignMode = "uncategorized"
	// AssignAll moves every product.
	AssignAll AssignMode = "all"
)

// AssignResult reports how many products a bulk assignment updated.
type AssignResult struct {
	Updated int `json:"updated"`
}

// Service exposes the back-office catalog operations.
type Service interface {
	// ListProducts returns every product including archived ones.
	ListProducts(ctx context.Context, token string) ([]Product, error)
	// Product returns one product with its media gallery.
	Product(ctx context.Context, token string, id int) (*Product, error)
	// CreateProduct submits a new product, multipart when files are attached.
	CreateProduct(ctx context.Context, token string, form ProductForm) (*Product, error)
	// UpdateProduct submits edits to an existing product.
	UpdateProduct(ctx context.Context, token string, id int, form ProductForm) (*Product, error)
	// ArchiveProduct hides a product from the store.
	ArchiveProduct(ctx context.Context, token string, id int) error
	// DeleteMedia removes one gallery entry.
	DeleteMedia(ctx context.Context, token string, productID, mediaID int) error
	// SetPrimaryMedia flags one gallery entry as the card image.
	SetPrimaryMedia(ctx context.Context, token string, productID, mediaID int) error

	// ListCategories returns the managed categories.
	ListCategories(ctx context.Context, token string) ([]Category, error)
	// CreateCategory adds a category.
	CreateCategory(ctx context.Context, token string, req CategoryRequest) (*Category, error)
	// UpdateCategory renames a category.
	UpdateCategory(ctx context.Context, token string, id int, req CategoryRequest) (*Category, error)
	// DeleteCategory removes a category; its products fall back to general.
	DeleteCategory(ctx context.Context, token string, id int) error
	// AssignCategory bulk-moves products into the category.
	AssignCategory(ctx context.Context, token string, id int, mode AssignMode) (AssignResult, error)
}
