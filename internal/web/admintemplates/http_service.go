package admintemplates

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"devil2devil.org/economy-web/internal/web/apiclient"
)

const (
	rolesEndpoint = "/api/admin/digital-templates/roles"
	skinsEndpoint = "/api/admin/digital-templates/minecraft-skins"
)

// HTTPService implements Service against the economy REST backend.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService constructs a Service backed by the backend template endpoints.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// RoleProducts lists the existing role products.
func (s *HTTPService) RoleProducts(ctx context.Context, token string) ([]RoleProduct, error) {
	var payload struct {
		Products []RoleProduct `json:"products"`
	}
	if err := s.client.GetJSON(ctx, rolesEndpoint, token, &payload); err != nil {
		return nil, err
	}
	if payload.Products == nil {
		payload.Products = []RoleProduct{}
	}
	return payload.Products, nil
}

// SkinProducts lists the existing skin products.
func (s *HTTPService) SkinProducts(ctx context.Context, token string) ([]SkinProduct, error) {
	var payload struct {
		Products []SkinProduct `json:"products"`
	}
	if err := s.client.GetJSON(ctx, skinsEndpoint, token, &payload); err != nil {
		return nil, err
	}
	if payload.Products == nil {
		payload.Products = []SkinProduct{}
	}
	return payload.Products, nil
}

// CreateRoleProduct submits a role template as multipart form data.
func (s *HTTPService) CreateRoleProduct(ctx context.Context, token string, form RoleForm) (*RoleProduct, error) {
	fields := [][2]string{
		{"role_id", strings.TrimSpace(form.RoleID)},
		{"product_name", strings.TrimSpace(form.ProductName)},
		{"description", form.Description},
		{"price", strings.TrimSpace(form.Price)},
		{"stock", strings.TrimSpace(form.Stock)},
	}
	var files []apiclient.FilePart
	if form.RoleImage != nil && form.RoleImage.Content != nil {
		files = append(files, apiclient.FilePart{Field: "role_image", Filename: form.RoleImage.Filename, Content: form.RoleImage.Content})
	}
	var payload struct {
		Product *RoleProduct `json:"product"`
	}
	if err := s.client.PostMultipart(ctx, rolesEndpoint, fields, files, token, &payload); err != nil {
		return nil, err
	}
	if payload.Product == nil {
		return nil, errors.New("admintemplates: backend response missing product")
	}
	return payload.Product, nil
}

// CreateSkinProduct submits a skin template as multipart form data.
func (s *HTTPService) CreateSkinProduct(ctx context.Context, token string, form SkinForm) (*SkinProduct, error) {
	fields := [][2]string{
		{"name", strings.TrimSpace(form.Name)},
		{"description", form.Description},
		{"price", strings.TrimSpace(form.Price)},
		{"stock", strings.TrimSpace(form.Stock)},
	}
	var files []apiclient.FilePart
	if form.PreviewImage != nil && form.PreviewImage.Content != nil {
		files = append(files, apiclient.FilePart{Field: "preview_image", Filename: form.PreviewImage.Filename, Content: form.PreviewImage.Content})
	}
	if form.DownloadFile != nil && form.DownloadFile.Content != nil {
		files = append(files, apiclient.FilePart{Field: "download_file", Filename: form.DownloadFile.Filename, Content: form.DownloadFile.Content})
	}
	var payload struct {
		Product *SkinProduct `json:"product"`
	}
	if err := s.client.PostMultipart(ctx, skinsEndpoint, fields, files, token, &payload); err != nil {
		return nil, err
	}
	if payload.Product == nil {
		return nil, errors.New("admintemplates: backend response missing product")
	}
	return payload.Product, nil
}

// StaticService keeps template products in memory for local development and tests.
type StaticService struct {
	roles  []RoleProduct
	skins  []SkinProduct
	nextID int
}

// NewStaticService returns a StaticService with representative products.
func NewStaticService() *StaticService {
	return &StaticService{
		roles: []RoleProduct{
			{ID: 1, Name: "VIP Lounge Role", Price: 1500, RoleID: "102"},
		},
		skins: []SkinProduct{
			{ID: 2, Name: "Pitchfork Skin", Price: 400, PreviewImageURL: "/static/img/pitchfork-skin.png"},
		},
		nextID: 3,
	}
}

// RoleProducts returns the stored role products.
func (s *StaticService) RoleProducts(ctx context.Context, token string) ([]RoleProduct, error) {
	return append([]RoleProduct(nil), s.roles...), nil
}

// SkinProducts returns the stored skin products.
func (s *StaticService) SkinProducts(ctx context.Context, token string) ([]SkinProduct, error) {
	return append([]SkinProduct(nil), s.skins...), nil
}

// CreateRoleProduct stores a role product from the form.
func (s *StaticService) CreateRoleProduct(ctx context.Context, token string, form RoleForm) (*RoleProduct, error) {
	price, err := strconv.Atoi(strings.TrimSpace(form.Price))
	if err != nil {
		return nil, &apiclient.StatusError{StatusCode: 400, Message: "invalid price"}
	}
	product := RoleProduct{ID: s.nextID, Name: form.ProductName, Price: price, RoleID: form.RoleID}
	s.nextID++
	s.roles = append(s.roles, product)
	return &product, nil
}

// CreateSkinProduct stores a skin product from the form.
func (s *StaticService) CreateSkinProduct(ctx context.Context, token string, form SkinForm) (*SkinProduct, error) {
	price, err := strconv.Atoi(strings.TrimSpace(form.Price))
	if err != nil {
		return nil, &apiclient.StatusError{StatusCode: 400, Message: "invalid price"}
	}
	product := SkinProduct{ID: s.nextID, Name: form.Name, Price: price}
	s.nextID++
	s.skins = append(s.skins, product)
	return &product, nil
}
