package impl

import (
	"context"
	"testing"
	"time"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/domain/repository"
	"ecomarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	storageFixtures
	service usecase.OrderUsecase
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fixtures := newStorageFixtures(t)
	service := NewOrderService(OrderServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})

	return orderServiceFixtures{storageFixtures: fixtures, service: service}
}

func TestOrderService_GetOrderWithItems_Seeded(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.GetOrderWithItems(context.Background(), "order1")
	require.NoError(t, err)
	assert.Equal(t, "sarah_eco", order.Buyer.Username)
	assert.Equal(t, "EcoClothing Co.", order.Seller.BusinessName)
	assert.Equal(t, entity.OrderDelivered, order.Status)
	assert.Equal(t, "3497.00", order.TotalAmount)
	assert.Empty(t, order.Items)
}

func TestOrderService_GetOrderWithItems_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.GetOrderWithItems(context.Background(), "missing")
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestOrderService_CreateOrder_Defaults(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		BuyerID:     "user1",
		SellerID:    "seller1",
		TotalAmount: "899.00",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "0.00", order.PlatformFee)
	assert.Nil(t, order.EscrowReleaseDate)
}

func TestOrderService_CreateOrderItem_JoinedIntoOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		BuyerID:     "user1",
		SellerID:    "seller1",
		TotalAmount: "899.00",
	})
	require.NoError(t, err)

	item, err := fx.service.CreateOrderItem(ctx, usecase.CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: "prod1",
		Quantity:  1,
		Price:     "899.00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	joined, err := fx.service.GetOrderWithItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, joined.Items, 1)
	assert.Equal(t, "Organic Cotton T-Shirt", joined.Items[0].Product.Name)
	assert.Equal(t, "899.00", joined.Items[0].Price)
}

func TestOrderService_GetOrderWithItems_DropsLinesWithDeletedProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	products := NewProductService(ProductServiceParams{
		Store:  fx.store,
		Lock:   fx.lock,
		Logger: fx.logger,
	})

	order, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		BuyerID:     "user1",
		SellerID:    "seller1",
		TotalAmount: "2198.00",
	})
	require.NoError(t, err)

	_, err = fx.service.CreateOrderItem(ctx, usecase.CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: "prod1",
		Quantity:  1,
		Price:     "899.00",
	})
	require.NoError(t, err)
	_, err = fx.service.CreateOrderItem(ctx, usecase.CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: "prod2",
		Quantity:  1,
		Price:     "1299.00",
	})
	require.NoError(t, err)

	require.NoError(t, products.DeleteProduct(ctx, "prod1"))

	// The order still resolves; only the line without a product is
	// dropped from the item list.
	joined, err := fx.service.GetOrderWithItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, joined.Items, 1)
	assert.Equal(t, "prod2", joined.Items[0].ProductID)

	require.NoError(t, products.DeleteProduct(ctx, "prod2"))

	joined, err = fx.service.GetOrderWithItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, joined.Items)
}

func TestOrderService_GetOrders_Filters(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		BuyerID:     "user2",
		SellerID:    "seller1",
		TotalAmount: "1299.00",
	})
	require.NoError(t, err)

	byBuyer, err := fx.service.GetOrders(ctx, usecase.OrderFilter{BuyerID: "user1"})
	require.NoError(t, err)
	require.Len(t, byBuyer, 1)
	assert.Equal(t, "order1", byBuyer[0].ID)

	bySeller, err := fx.service.GetOrders(ctx, usecase.OrderFilter{SellerID: "seller1"})
	require.NoError(t, err)
	assert.Len(t, bySeller, 2)

	byStatus, err := fx.service.GetOrders(ctx, usecase.OrderFilter{Status: string(entity.OrderPending)})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "user2", byStatus[0].BuyerID)
}

func TestOrderService_UpdateOrder_DisputeFields(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	status := string(entity.OrderDisputed)
	reason := "item arrived damaged"
	order, err := fx.service.UpdateOrder(ctx, "order1", usecase.UpdateOrderInput{
		Status:        &status,
		DisputeReason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDisputed, order.Status)
	require.NotNil(t, order.DisputeReason)
	assert.Equal(t, "item arrived damaged", *order.DisputeReason)
	assert.True(t, order.UpdatedAt.After(order.CreatedAt))
}

func TestOrderService_UpdateOrder_EscrowReleaseDate(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	release := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	datePtr := &release
	order, err := fx.service.UpdateOrder(ctx, "order1", usecase.UpdateOrderInput{
		EscrowReleaseDate: &datePtr,
	})
	require.NoError(t, err)
	require.NotNil(t, order.EscrowReleaseDate)
	assert.True(t, order.EscrowReleaseDate.Equal(release))

	// An inner nil clears the date, while an absent outer pointer would
	// leave it untouched.
	var cleared *time.Time
	order, err = fx.service.UpdateOrder(ctx, "order1", usecase.UpdateOrderInput{
		EscrowReleaseDate: &cleared,
	})
	require.NoError(t, err)
	assert.Nil(t, order.EscrowReleaseDate)
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	status := string(entity.OrderShipped)
	_, err := fx.service.UpdateOrder(context.Background(), "missing", usecase.UpdateOrderInput{Status: &status})
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}
