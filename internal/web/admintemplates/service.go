// Package admintemplates covers the digital product templates page: creating
// Discord role products and Minecraft skin products from prefilled forms.
package admintemplates

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured indicates the templates service dependency has not been provided.
var ErrNotConfigured = errors.New("admintemplates service not configured")

// RoleProduct is a store product delivering a Discord role.
type RoleProduct struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	RoleID string `json:"role_id"`
	Stock  *int   `json:"stock"`
}

// SkinProduct is a store product delivering a Minecraft skin download.
type SkinProduct struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Price           int    `json:"price"`
	Stock           *int   `json:"stock"`
	PreviewImageURL string `json:"preview_image_url"`
}

// FileUpload is one file attached to a template submission.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// RoleForm carries the role product template fields.
type RoleForm struct {
	RoleID      string
	ProductName string
	Description string
	Price       string
	Stock       string
	RoleImage   *FileUpload
}

// SkinForm carries the Minecraft skin product template fields.
type SkinForm struct {
	Name         string
	Description  string
	Price        string
	Stock        string
	PreviewImage *FileUpload
	DownloadFile *FileUpload
}

// Service exposes the digital template operations.
type Service interface {
	// RoleProducts lists the existing role products.
	RoleProducts(ctx context.Context, token string) ([]RoleProduct, error)
	// SkinProducts lists the existing skin products.
	SkinProducts(ctx context.Context, token string) ([]SkinProduct, error)
	// CreateRoleProduct creates a store product from a role template.
	CreateRoleProduct(ctx context.Context, token string, form RoleForm) (*RoleProduct, error)
	// CreateSkinProduct creates a store product from a skin template.
	CreateSkinProduct(ctx context.Context, token string, form SkinForm) (*SkinProduct, error)
}
