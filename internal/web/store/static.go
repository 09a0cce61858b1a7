package store

import (
	"context"
	"fmt"
)

// StaticService provides deterministic catalog data suitable for local
// development and tests.
type StaticService struct {
	products   []Product
	categories []Category
	// Balance backs the static purchase flow.
	Balance int
}

// NewStaticService returns a StaticService populated with representative products.
func NewStaticService() *StaticService {
	limited := func(n int) *int { return &n }

	products := []Product{
		{
			ID:          1,
			Name:        "Sparky Plush",
			Description: "Stuffed mascot, devil horns included.",
			Price:       750,
			Stock:       limited(12),
			InStock:     true,
			ImageURL:    "/static/img/sparky-plush.png",
			Category:    "merch",
			ProductType: "physical",
			Media: []Media{
				{ID: 1, URL: "/static/img/sparky-plush.png", IsPrimary: true},
				{ID: 2, URL: "/static/img/sparky-plush-side.png"},
			},
		},
		{
			ID:          2,
			Name:        "VIP Lounge Role",
			Description: "Access to the VIP voice lounge for a semester.",
			Price:       1500,
			InStock:     true,
			Category:    "roles",
			ProductType: "role",
		},
		{
			ID:              3,
			Name:            "Pitchfork Skin",
			Description:     "Minecraft skin with the campus pitchfork.",
			Price:           400,
			Stock:           limited(0),
			InStock:         false,
			Category:        "digital",
			ProductType:     "minecraft_skin",
			PreviewImageURL: "/static/img/pitchfork-skin.png",
		},
	}

	categories := []Category{
		{ID: 1, Name: "Merch", Slug: "merch", Count: 1},
		{ID: 2, Name: "Roles", Slug: "roles", Count: 1},
		{ID: 3, Name: "Digital", Slug: "digital", Count: 1},
	}

	return &StaticService{
		products:   products,
		categories: categories,
		Balance:    2000,
	}
}

// WithProducts replaces the catalog, for tests that need a specific shape.
func (s *StaticService) WithProducts(products []Product) *StaticService {
	s.products = products
	return s
}

// Products returns the static catalog.
func (s *StaticService) Products(ctx context.Context) ([]Product, error) {
	return append([]Product(nil), s.products...), nil
}

// Categories returns the static category tabs.
func (s *StaticService) Categories(ctx context.Context) ([]Category, error) {
	return append([]Category(nil), s.categories...), nil
}

// Product returns the static product with the given id.
func (s *StaticService) Product(ctx context.Context, id int) (*Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Purchase simulates a purchase against the static balance.
func (s *StaticService) Purchase(ctx context.Context, token string, id int) (*PurchaseResult, error) {
	product, err := s.Product(ctx, id)
	if err != nil {
		return &PurchaseResult{OK: false, Message: "Product not found."}, nil
	}
	if !product.InStock {
		return &PurchaseResult{OK: false, Message: "Out of stock."}, nil
	}
	if product.Price > s.Balance {
		return &PurchaseResult{OK: false, Message: fmt.Sprintf("Not enough points (need %d).", product.Price)}, nil
	}
	s.Balance -= product.Price
	return &PurchaseResult{OK: true, Message: "Purchase completed.", NewBalance: s.Balance}, nil
}
