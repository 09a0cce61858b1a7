package admincatalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"devil2devil.org/economy-web/internal/web/apiclient"
)

// HTTPService implements Service against the economy REST backend.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService constructs a Service backed by the backend admin endpoints.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// ListProducts fetches the full admin product list.
func (s *HTTPService) ListProducts(ctx context.Context, token string) ([]Product, error) {
	var payload struct {
		Products []Product `json:"products"`
	}
	if err := s.client.GetJSON(ctx, "/api/admin/products", token, &payload); err != nil {
		return nil, err
	}
	if payload.Products == nil {
		payload.Products = []Product{}
	}
	return payload.Products, nil
}

// Product fetches one product with its media gallery.
func (s *HTTPService) Product(ctx context.Context, token string, id int) (*Product, error) {
	var payload struct {
		Product *Product `json:"product"`
	}
	if err := s.client.GetJSON(ctx, productPath(id), token, &payload); err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if payload.Product == nil {
		return nil, ErrProductNotFound
	}
	return payload.Product, nil
}

// CreateProduct submits a new product as multipart form data.
func (s *HTTPService) CreateProduct(ctx context.Context, token string, form ProductForm) (*Product, error) {
	return s.submitProduct(ctx, token, "/api/admin/products", form)
}

// UpdateProduct submits edits to an existing product.
func (s *HTTPService) UpdateProduct(ctx context.Context, token string, id int, form ProductForm) (*Product, error) {
	return s.submitProduct(ctx, token, productPath(id), form)
}

func (s *HTTPService) submitProduct(ctx context.Context, token, endpoint string, form ProductForm) (*Product, error) {
	stock := strings.TrimSpace(form.Stock)
	if stock == "" {
		stock = StockUnlimited
	}
	category := strings.TrimSpace(form.Category)
	if category == "" {
		category = "general"
	}
	fields := [][2]string{
		{"name", strings.TrimSpace(form.Name)},
		{"description", form.Description},
		{"price", strings.TrimSpace(form.Price)},
		{"stock", stock},
		{"product_type", form.ProductType},
		{"category", category},
	}
	if form.PreviewVideoURL != "" {
		fields = append(fields, [2]string{"preview_video_url", form.PreviewVideoURL})
	}

	var files []apiclient.FilePart
	addFile := func(field string, upload *FileUpload) {
		if upload == nil || upload.Content == nil {
			return
		}
		files = append(files, apiclient.FilePart{Field: field, Filename: upload.Filename, Content: upload.Content})
	}
	addFile("image", form.Image)
	addFile("preview_image", form.PreviewImage)
	addFile("download_file", form.DownloadFile)
	for i := range form.GalleryImages {
		files = append(files, apiclient.FilePart{
			Field:    "gallery_images",
			Filename: form.GalleryImages[i].Filename,
			Content:  form.GalleryImages[i].Content,
		})
	}

	var payload struct {
		Product *Product `json:"product"`
	}
	if err := s.client.PostMultipart(ctx, endpoint, fields, files, token, &payload); err != nil {
		return nil, err
	}
	if payload.Product == nil {
		return nil, errors.New("admincatalog: backend response missing product")
	}
	return payload.Product, nil
}

// ArchiveProduct hides a product from the store.
func (s *HTTPService) ArchiveProduct(ctx context.Context, token string, id int) error {
	return s.client.Delete(ctx, productPath(id), token, nil)
}

// DeleteMedia removes one gallery entry from a product.
func (s *HTTPService) DeleteMedia(ctx context.Context, token string, productID, mediaID int) error {
	endpoint := fmt.Sprintf("%s/media/%d", productPath(productID), mediaID)
	return s.client.Delete(ctx, endpoint, token, nil)
}

// SetPrimaryMedia flags one gallery entry as the product's card image.
func (s *HTTPService) SetPrimaryMedia(ctx context.Context, token string, productID, mediaID int) error {
	endpoint := fmt.Sprintf("%s/media/%d/primary", productPath(productID), mediaID)
	return s.client.PostJSON(ctx, endpoint, nil, token, nil)
}

// ListCategories fetches the managed categories.
func (s *HTTPService) ListCategories(ctx context.Context, token string) ([]Category, error) {
	var payload struct {
		Categories []Category `json:"categories"`
	}
	if err := s.client.GetJSON(ctx, "/api/admin/categories", token, &payload); err != nil {
		return nil, err
	}
	if payload.Categories == nil {
		payload.Categories = []Category{}
	}
	return payload.Categories, nil
}

// CreateCategory adds a category.
func (s *HTTPService) CreateCategory(ctx context.Context, token string, req CategoryRequest) (*Category, error) {
	var payload struct {
		Category *Category `json:"category"`
	}
	if err := s.client.PostJSON(ctx, "/api/admin/categories", req, token, &payload); err != nil {
		return nil, err
	}
	if payload.Category == nil {
		return nil, errors.New("admincatalog: backend response missing category")
	}
	return payload.Category, nil
}

// UpdateCategory renames a category.
func (s *HTTPService) UpdateCategory(ctx context.Context, token string, id int, req CategoryRequest) (*Category, error) {
	var payload struct {
		Category *Category `json:"category"`
	}
	if err := s.client.PostJSON(ctx, categoryPath(id), req, token, &payload); err != nil {
		return nil, err
	}
	if payload.Category == nil {
		return nil, errors.New("admincatalog: backend response missing category")
	}
	return payload.Category, nil
}

// DeleteCategory removes a category.
func (s *HTTPService) DeleteCategory(ctx context.Context, token string, id int) error {
	return s.client.Delete(ctx, categoryPath(id), token, nil)
}

// AssignCategory bulk-moves products into the category.
func (s *HTTPService) AssignCategory(ctx context.Context, token string, id int, mode AssignMode) (AssignResult, error) {
	if mode == "" {
		mode = AssignUncategorized
	}
	body := map[string]string{"mode": string(mode)}
	var result AssignResult
	endpoint := categoryPath(id) + "/assign-all"
	if err := s.client.PostJSON(ctx, endpoint, body, token, &result); err != nil {
		return AssignResult{}, err
	}
	return result, nil
}

func productPath(id int) string {
	return "/api/admin/products/" + strconv.Itoa(id)
}

func categoryPath(id int) string {
	return "/api/admin/categories/" + strconv.Itoa(id)
}
