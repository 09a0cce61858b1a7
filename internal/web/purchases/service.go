// Package purchases exposes the visitor's own purchase history.
package purchases

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the purchases service dependency has not been provided.
var ErrNotConfigured = errors.New("purchases service not configured")

// Purchase is one row of the visitor's history, flattened by the backend
// with the product summary inlined.
type Purchase struct {
	ID                 int       `json:"id"`
	ProductName        string    `json:"product_name"`
	ProductDescription string    `json:"product_description"`
	ProductType        string    `json:"product_type"`
	ImageURL           string    `json:"image_url"`
	PointsSpent        int       `json:"points_spent"`
	Timestamp          time.Time `json:"timestamp"`
	Status             string    `json:"status"`
	DownloadURL        string    `json:"download_url"`
}

// Service exposes the session-scoped purchase history read.
type Service interface {
	MyPurchases(ctx context.Context, token string) ([]Purchase, error)
}
