package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"devil2devil.org/economy-web/internal/web/apiclient"
)

// ErrProductNotFound indicates the requested product does not exist or is archived.
var ErrProductNotFound = errors.New("store: product not found")

// HTTPService implements Service against the economy REST backend.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService constructs a Service backed by the backend store endpoints.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Products fetches the active catalog. A missing products array decodes to
// an empty slice.
func (s *HTTPService) Products(ctx context.Context) ([]Product, error) {
	var payload struct {
		Products []Product `json:"products"`
	}
	if err := s.client.GetJSON(ctx, "/api/store", "", &payload); err != nil {
		return nil, err
	}
	if payload.Products == nil {
		payload.Products = []Product{}
	}
	return payload.Products, nil
}

// Categories fetches the category tabs.
func (s *HTTPService) Categories(ctx context.Context) ([]Category, error) {
	var payload struct {
		Categories []Category `json:"categories"`
	}
	if err := s.client.GetJSON(ctx, "/api/categories", "", &payload); err != nil {
		return nil, err
	}
	if payload.Categories == nil {
		payload.Categories = []Category{}
	}
	return payload.Categories, nil
}

// Product fetches a single product.
func (s *HTTPService) Product(ctx context.Context, id int) (*Product, error) {
	var payload struct {
		Product *Product `json:"product"`
	}
	endpoint := "/api/product/" + strconv.Itoa(id)
	if err := s.client.GetJSON(ctx, endpoint, "", &payload); err != nil {
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

// Purchase spends points on the product. Backend rejections (insufficient
// balance, sold out) come back as an unsuccessful result, not an error.
func (s *HTTPService) Purchase(ctx context.Context, token string, id int) (*PurchaseResult, error) {
	endpoint := "/api/purchase/" + strconv.Itoa(id)
	var result PurchaseResult
	err := s.client.PostJSON(ctx, endpoint, nil, token, &result)
	if err != nil {
		var se *apiclient.StatusError
		if errors.As(err, &se) && se.StatusCode < 500 {
			msg := se.Message
			if msg == "" {
				msg = fmt.Sprintf("Purchase failed (%d)", se.StatusCode)
			}
			return &PurchaseResult{OK: false, Message: msg}, nil
		}
		return nil, err
	}
	if result.Message == "" && result.OK {
		result.Message = "Purchase completed."
	}
	return &result, nil
}
