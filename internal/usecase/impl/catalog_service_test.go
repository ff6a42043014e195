package impl

import (
	"context"
	"testing"

	"voltmart/internal/domain/repository"
	"voltmart/internal/domain/seed"
	"voltmart/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (usecase.CatalogUsecase, repository.CommerceStore) {
	t.Helper()

	store, backing := testStores()

	return NewCatalogService(store, testLogger()), backing
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Junction Box",
		Description: "Weatherproof junction box",
		Price:       "8.49",
		Stock:       120,
		Category:    "safety",
	}
}

func TestCatalog_ListIncludesSeedProducts(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newCatalogFixture(t)

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(seed.Products()))
}

func TestCatalog_CreateProduct(t *testing.T) {
	ctx := context.Background()
	catalog, backing := newCatalogFixture(t)

	product, err := catalog.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("8.49")))

	stored, err := backing.LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, product.ID, stored[0].ID)

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(seed.Products())+1)
}

func TestCatalog_CreateProductValidation(t *testing.T) {
	ctx := context.Background()
	catalog, backing := newCatalogFixture(t)

	tests := []struct {
		name   string
		mutate func(*usecase.ProductInput)
	}{
		{"missing name", func(in *usecase.ProductInput) { in.Name = "" }},
		{"bad price", func(in *usecase.ProductInput) { in.Price = "eight dollars" }},
		{"negative price", func(in *usecase.ProductInput) { in.Price = "-1.00" }},
		{"unknown category", func(in *usecase.ProductInput) { in.Category = "plumbing" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			tt.mutate(input)

			_, err := catalog.CreateProduct(ctx, input)
			assert.Error(t, err)
		})
	}

	stored, err := backing.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCatalog_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newCatalogFixture(t)

	input := validProductInput()
	input.Name = "Premium Copper Wire"
	input.Price = "29.99"
	input.Category = "wires"

	product, err := catalog.UpdateProduct(ctx, "1", input)
	require.NoError(t, err)
	assert.Equal(t, "1", product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("29.99")))

	// The edited record shadows the seed.
	fetched, err := catalog.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("29.99")))

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(seed.Products()))
}

func TestCatalog_UpdateUnknownProduct(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newCatalogFixture(t)

	_, err := catalog.UpdateProduct(ctx, "no-such-product", validProductInput())
	assert.Error(t, err)
}

func TestCatalog_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newCatalogFixture(t)

	created, err := catalog.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, created.ID))

	_, err = catalog.GetProduct(ctx, created.ID)
	assert.Error(t, err)
}

func TestCatalog_DeleteUnknownProduct(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newCatalogFixture(t)

	assert.Error(t, catalog.DeleteProduct(ctx, "no-such-product"))
}
