package impl

import (
	"context"
	"testing"

	"ecomarket/internal/domain/repository"
	"ecomarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	storageFixtures
	service usecase.ProductUsecase
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fixtures := newStorageFixtures(t)
	service := NewProductService(ProductServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})

	return productServiceFixtures{storageFixtures: fixtures, service: service}
}

func TestProductService_GetProducts_All(t *testing.T) {
	fx := createTestProductService(t)

	products, err := fx.service.GetProducts(context.Background(), usecase.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, "EcoClothing Co.", p.Seller.BusinessName)
	}
}

func TestProductService_GetProducts_SearchCaseInsensitive(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	products, err := fx.service.GetProducts(ctx, usecase.ProductFilter{Search: "BAMBOO"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Bamboo Water Bottle", products[0].Name)

	// Search also matches descriptions.
	products, err = fx.service.GetProducts(ctx, usecase.ProductFilter{Search: "solar"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Solar Garden Lights", products[0].Name)
}

func TestProductService_GetProducts_CategoryFilter(t *testing.T) {
	fx := createTestProductService(t)

	products, err := fx.service.GetProducts(context.Background(), usecase.ProductFilter{Category: "Clothing"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Organic Cotton T-Shirt", products[0].Name)
}

func TestProductService_CreateProduct_ActiveByDefault(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.CreateProduct(ctx, usecase.CreateProductInput{
		SellerID: "seller1",
		Name:     "Recycled Notebook",
		Price:    "299.00",
		Category: "Stationery",
	})
	require.NoError(t, err)
	assert.True(t, product.IsActive)
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)

	products, err := fx.service.GetProducts(ctx, usecase.ProductFilter{Category: "Stationery"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
}

func TestProductService_DeactivatedProductHiddenFromListing(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	inactive := false
	_, err := fx.service.UpdateProduct(ctx, "prod2", usecase.UpdateProductInput{IsActive: &inactive})
	require.NoError(t, err)

	products, err := fx.service.GetProducts(ctx, usecase.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.NotEqual(t, "prod2", p.ID)
	}

	// Direct lookup still resolves delisted products.
	product, err := fx.service.GetProduct(ctx, "prod2")
	require.NoError(t, err)
	assert.False(t, product.IsActive)
}

func TestProductService_GetProductWithSeller(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.GetProductWithSeller(context.Background(), "prod3")
	require.NoError(t, err)
	assert.Equal(t, "Solar Garden Lights", product.Name)
	assert.Equal(t, "EcoClothing Co.", product.Seller.BusinessName)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	name := "nope"
	_, err := fx.service.UpdateProduct(context.Background(), "missing", usecase.UpdateProductInput{Name: &name})
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.DeleteProduct(ctx, "prod1"))

	_, err := fx.service.GetProduct(ctx, "prod1")
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))

	err = fx.service.DeleteProduct(ctx, "prod1")
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}
