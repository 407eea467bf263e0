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

type cartServiceFixtures struct {
	storageFixtures
	service usecase.CartUsecase
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	fixtures := newStorageFixtures(t)
	service := NewCartService(CartServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})

	return cartServiceFixtures{storageFixtures: fixtures, service: service}
}

func TestCartService_AddToCart_MergesExistingRow(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	first, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{
		UserID:    "user1",
		ProductID: "prod1",
		Quantity:  2,
	})
	require.NoError(t, err)

	second, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{
		UserID:    "user1",
		ProductID: "prod1",
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	items, err := fx.service.GetCartItems(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartService_GetCartItems_JoinsProductAndSeller(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{
		UserID:    "user1",
		ProductID: "prod2",
		Quantity:  1,
	})
	require.NoError(t, err)

	items, err := fx.service.GetCartItems(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bamboo Water Bottle", items[0].Product.Name)
	assert.Equal(t, "EcoClothing Co.", items[0].Product.Seller.BusinessName)

	// Another user's cart stays empty.
	other, err := fx.service.GetCartItems(ctx, "user2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCartService_GetCartItems_DropsItemsWithDeletedProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	products := NewProductService(ProductServiceParams{
		Store:  fx.store,
		Lock:   fx.lock,
		Logger: fx.logger,
	})

	item, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{
		UserID:    "user1",
		ProductID: "prod1",
		Quantity:  2,
	})
	require.NoError(t, err)

	require.NoError(t, products.DeleteProduct(ctx, "prod1"))

	// The orphaned row is hidden from the listing but stays stored: it
	// can still be removed by ID.
	items, err := fx.service.GetCartItems(ctx, "user1")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, fx.service.RemoveFromCart(ctx, item.ID))
}

func TestCartService_UpdateCartItem_SetsQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	item, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{
		UserID:    "user1",
		ProductID: "prod1",
		Quantity:  2,
	})
	require.NoError(t, err)

	updated, err := fx.service.UpdateCartItem(ctx, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
}

func TestCartService_UpdateCartItem_ZeroRemoves(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	item, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{
		UserID:    "user1",
		ProductID: "prod1",
		Quantity:  2,
	})
	require.NoError(t, err)

	removed, err := fx.service.UpdateCartItem(ctx, item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, item.ID, removed.ID)
	assert.Equal(t, 2, removed.Quantity)

	items, err := fx.service.GetCartItems(ctx, "user1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_UpdateCartItem_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.UpdateCartItem(context.Background(), "missing", 1)
	assert.True(t, errors.Is(err, repository.ErrCartItemNotFound))
}

func TestCartService_RemoveFromCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	item, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{
		UserID:    "user1",
		ProductID: "prod3",
		Quantity:  1,
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.RemoveFromCart(ctx, item.ID))

	err = fx.service.RemoveFromCart(ctx, item.ID)
	assert.True(t, errors.Is(err, repository.ErrCartItemNotFound))
}

func TestCartService_ClearCart_OnlyTargetUser(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddToCart(ctx, usecase.AddToCartInput{UserID: "user1", ProductID: "prod1", Quantity: 1})
	require.NoError(t, err)
	_, err = fx.service.AddToCart(ctx, usecase.AddToCartInput{UserID: "user2", ProductID: "prod2", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, fx.service.ClearCart(ctx, "user1"))

	items, err := fx.service.GetCartItems(ctx, "user1")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = fx.service.GetCartItems(ctx, "user2")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// Clearing an already empty cart is a no-op.
	require.NoError(t, fx.service.ClearCart(ctx, "user1"))
}
