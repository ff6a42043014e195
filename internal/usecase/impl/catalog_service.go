package impl

import (
	"context"
	"fmt"
	"log/slog"

	"voltmart/internal/domain/entity"
	domainerrors "voltmart/internal/domain/errors"
	"voltmart/internal/domain/repository"
	"voltmart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	store    repository.CommerceStore
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	store repository.CommerceStore,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// ListProducts returns the unified product catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return srv.store.LoadProducts(ctx)
}

// GetProduct looks a product up by id.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	products, err := srv.store.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == productID {
			product := products[i]

			return &product, nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

// CreateProduct adds a product with a freshly generated id.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.buildProduct(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}

	if err := srv.store.UpsertProduct(ctx, *product); err != nil {
		return nil, err
	}

	srv.logger.Info("Product created",
		slog.String("productID", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, productID string, input *usecase.ProductInput) (*entity.Product, error) {
	if _, err := srv.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	product, err := srv.buildProduct(productID, input)
	if err != nil {
		return nil, err
	}

	if err := srv.store.UpsertProduct(ctx, *product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product from the stored catalog. Orders that
// reference the product keep their snapshots untouched.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	products, err := srv.store.LoadProducts(ctx)
	if err != nil {
		return err
	}

	remaining := make([]entity.Product, 0, len(products))
	found := false
	for _, product := range products {
		if product.ID == productID {
			found = true

			continue
		}
		remaining = append(remaining, product)
	}
	if !found {
		return domainerrors.ErrProductNotFound
	}

	if err := srv.store.SaveProducts(ctx, remaining); err != nil {
		return err
	}

	srv.logger.Info("Product deleted", slog.String("productID", productID))

	return nil
}

func (srv *catalogService) buildProduct(productID string, input *usecase.ProductInput) (*entity.Product, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("price %q is not a non-negative decimal", input.Price))
	}

	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("category %q is not part of the catalog set", input.Category))
	}

	return &entity.Product{
		ID:          productID,
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Stock:       input.Stock,
		Category:    category,
		ImageURL:    input.ImageURL,
	}, nil
}
