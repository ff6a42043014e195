package usecase

import (
	"context"

	"voltmart/internal/domain/entity"
)

// CatalogUsecase covers the admin-facing product catalog operations.
type CatalogUsecase interface {
	// ListProducts returns the unified product catalog.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct looks a product up by id.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// CreateProduct adds a product with a freshly generated id.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct replaces the mutable fields of an existing product.
	UpdateProduct(ctx context.Context, productID string, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the stored catalog.
	DeleteProduct(ctx context.Context, productID string) error
}

// --- Input DTOs ---

// ProductInput defines the data captured on the admin product form.
type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Stock       int    `json:"stock" validate:"min=0"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"imageUrl"`
}
