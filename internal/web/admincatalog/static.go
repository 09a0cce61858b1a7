package admincatalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StaticService provides an in-memory catalog suitable for local development
// and tests. Mutations behave like the backend: saves return the stored
// record, deletes archive rather than remove.
type StaticService struct {
	products   []Product
	categories []Category
	nextID     int
	nextMedia  int
}

// NewStaticService returns a StaticService seeded with representative data.
func NewStaticService() *StaticService {
	limited := func(n int) *int { return &n }
	now := time.Now()

	return &StaticService{
		products: []Product{
			{
				ID: 1, Name: "Sparky Plush", Description: "Stuffed mascot.",
				Price: 750, Stock: limited(12), Category: "merch",
				ProductType: "physical", IsActive: true, CreatedAt: now.Add(-72 * time.Hour),
				Media: []Media{{ID: 1, URL: "/static/img/sparky-plush.png", IsPrimary: true}},
			},
			{
				ID: 2, Name: "VIP Lounge Role", Description: "Semester VIP access.",
				Price: 1500, Category: "roles", ProductType: "role",
				IsActive: true, CreatedAt: now.Add(-24 * time.Hour),
			},
		},
		categories: []Category{
			{ID: 1, Name: "Merch", Slug: "merch", Count: 1},
			{ID: 2, Name: "Roles", Slug: "roles", Count: 1},
		},
		nextID:    3,
		nextMedia: 2,
	}
}

// ListProducts returns the stored products.
func (s *StaticService) ListProducts(ctx context.Context, token string) ([]Product, error) {
	return append([]Product(nil), s.products...), nil
}

// Product returns one stored product.
func (s *StaticService) Product(ctx context.Context, token string, id int) (*Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// CreateProduct stores a new product from the form.
func (s *StaticService) CreateProduct(ctx context.Context, token string, form ProductForm) (*Product, error) {
	product, err := productFromForm(form)
	if err != nil {
		return nil, err
	}
	product.ID = s.nextID
	s.nextID++
	product.IsActive = true
	product.CreatedAt = time.Now()
	s.products = append(s.products, *product)
	return product, nil
}

// UpdateProduct applies the form to a stored product.
func (s *StaticService) UpdateProduct(ctx context.Context, token string, id int, form ProductForm) (*Product, error) {
	updated, err := productFromForm(form)
	if err != nil {
		return nil, err
	}
	for i := range s.products {
		if s.products[i].ID == id {
			updated.ID = id
			updated.IsActive = s.products[i].IsActive
			updated.CreatedAt = s.products[i].CreatedAt
			updated.Media = s.products[i].Media
			s.products[i] = *updated
			return updated, nil
		}
	}
	return nil, ErrProductNotFound
}

// ArchiveProduct marks a product inactive.
func (s *StaticService) ArchiveProduct(ctx context.Context, token string, id int) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].IsActive = false
			return nil
		}
	}
	return ErrProductNotFound
}

// DeleteMedia removes a gallery entry.
func (s *StaticService) DeleteMedia(ctx context.Context, token string, productID, mediaID int) error {
	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		media := s.products[i].Media[:0]
		for _, m := range s.products[i].Media {
			if m.ID != mediaID {
				media = append(media, m)
			}
		}
		s.products[i].Media = media
		return nil
	}
	return ErrProductNotFound
}

// SetPrimaryMedia flags one gallery entry as primary.
func (s *StaticService) SetPrimaryMedia(ctx context.Context, token string, productID, mediaID int) error {
	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		for j := range s.products[i].Media {
			s.products[i].Media[j].IsPrimary = s.products[i].Media[j].ID == mediaID
		}
		return nil
	}
	return ErrProductNotFound
}

// ListCategories returns the stored categories.
func (s *StaticService) ListCategories(ctx context.Context, token string) ([]Category, error) {
	return append([]Category(nil), s.categories...), nil
}

// CreateCategory stores a new category, rejecting duplicate names.
func (s *StaticService) CreateCategory(ctx context.Context, token string, req CategoryRequest) (*Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("admincatalog: category name is required")
	}
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, name) {
			return nil, fmt.Errorf("admincatalog: category %q already exists", name)
		}
	}
	category := Category{
		ID:   s.nextID,
		Name: name,
		Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-")),
	}
	s.nextID++
	s.categories = append(s.categories, category)
	return &category, nil
}

// UpdateCategory renames a stored category.
func (s *StaticService) UpdateCategory(ctx context.Context, token string, id int, req CategoryRequest) (*Category, error) {
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = strings.TrimSpace(req.Name)
			c := s.categories[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("admincatalog: category %d not found", id)
}

// DeleteCategory removes a stored category.
func (s *StaticService) DeleteCategory(ctx context.Context, token string, id int) error {
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("admincatalog: category %d not found", id)
}

// AssignCategory bulk-moves products into a category.
func (s *StaticService) AssignCategory(ctx context.Context, token string, id int, mode AssignMode) (AssignResult, error) {
	var target *Category
	for i := range s.categories {
		if s.categories[i].ID == id {
			target = &s.categories[i]
		}
	}
	if target == nil {
		return AssignResult{}, fmt.Errorf("admincatalog: category %d not found", id)
	}
	updated := 0
	for i := range s.products {
		if mode == AssignUncategorized && s.products[i].Category != "general" && s.products[i].Category != "" {
			continue
		}
		if s.products[i].Category != target.Slug {
			s.products[i].Category = target.Slug
			updated++
		}
	}
	return AssignResult{Updated: updated}, nil
}

func productFromForm(form ProductForm) (*Product, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, fmt.Errorf("admincatalog: product name is required")
	}
	price, err := strconv.Atoi(strings.TrimSpace(form.Price))
	if err != nil || price < 0 {
		return nil, fmt.Errorf("admincatalog: invalid price %q", form.Price)
	}

	product := &Product{
		Name:            name,
		Description:     form.Description,
		Price:           price,
		ProductType:     form.ProductType,
		Category:        form.Category,
		PreviewVideoURL: form.PreviewVideoURL,
	}
	stock := strings.TrimSpace(form.Stock)
	if stock != "" && stock != StockUnlimited {
		n, err := strconv.Atoi(stock)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("admincatalog: invalid stock %q", form.Stock)
		}
		product.Stock = &n
	}
	if product.ProductType == "" {
		product.ProductType = "physical"
	}
	if product.Category == "" {
		product.Category = "general"
	}
	return product, nil
}
