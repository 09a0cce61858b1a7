// Package store exposes the public storefront catalog: product listings,
// product detail with media, category tabs and the purchase action.
package store

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates the store service dependency has not been provided.
var ErrNotConfigured = errors.New("store service not configured")

// Media is one gallery entry attached to a product.
type Media struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// Product is a storefront item. Stock is nil for unlimited stock, zero for
// sold out and positive for a limited remainder.
type Product struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           int     `json:"price"`
	Stock           *int    `json:"stock"`
	InStock         bool    `json:"in_stock"`
	ImageURL        string  `json:"image_url"`
	Category        string  `json:"category"`
	ProductType     string  `json:"product_type"`
	PreviewImageURL string  `json:"preview_image_url"`
	PreviewVideoURL string  `json:"preview_video_url"`
	Media           []Media `json:"media"`
}

// Unlimited reports whether the product has no stock ceiling.
func (p Product) Unlimited() bool { return p.Stock == nil }

// PrimaryMedia returns the gallery entry flagged primary, or the first one.
func (p Product) PrimaryMedia() *Media {
	for i := range p.Media {
		if p.Media[i].IsPrimary {
			return &p.Media[i]
		}
	}
	if len(p.Media) > 0 {
		return &p.Media[0]
	}
	return nil
}

// Category is one storefront category tab.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"product_count"`
}

// PurchaseResult reports the outcome of a purchase attempt.
type PurchaseResult struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message"`
	NewBalance int    `json:"new_balance"`
}

// Service exposes the public storefront reads plus the purchase action.
type Service interface {
	// Products returns the full active catalog; the caller paginates.
	Products(ctx context.Context) ([]Product, error)
	// Categories returns the category tabs shown above the grid.
	Categories(ctx context.Context) ([]Category, error)
	// Product returns one product with its media gallery.
	Product(ctx context.Context, id int) (*Product, error)
	// Purchase spends the visitor's points on a product.
	Purchase(ctx context.Context, token string, id int) (*PurchaseResult, error)
}
