package impl

import (
	"context"
	"testing"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	storageFixtures
	service usecase.AdminUsecase
	orders  usecase.OrderUsecase
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fixtures := newStorageFixtures(t)
	service := NewAdminService(AdminServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})
	orders := NewOrderService(OrderServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})

	return adminServiceFixtures{storageFixtures: fixtures, service: service, orders: orders}
}

func TestAdminService_GetPlatformStats_Seeded(t *testing.T) {
	fx := createTestAdminService(t)

	stats, err := fx.service.GetPlatformStats(context.Background())
	require.NoError(t, err)

	// The seed holds a single delivered, released order and one verified
	// seller.
	assert.InDelta(t, 3497.0, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 0.0, stats.HeldFunds, 0.001)
	assert.InDelta(t, 174.85, stats.PlatformFee, 0.001)
	assert.Equal(t, 0, stats.ActiveOrders)
	assert.Equal(t, 1, stats.ActiveSellers)
	assert.Equal(t, 0, stats.DisputeCount)
}

func TestAdminService_GetPlatformStats_CountsActiveAndHeld(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	_, err := fx.orders.CreateOrder(ctx, usecase.CreateOrderInput{
		BuyerID:       "user1",
		SellerID:      "seller1",
		TotalAmount:   "1000.00",
		PaymentStatus: string(entity.PaymentHeld),
	})
	require.NoError(t, err)

	stats, err := fx.service.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 4497.0, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 1000.0, stats.HeldFunds, 0.001)
	assert.Equal(t, 1, stats.ActiveOrders)
}

func TestAdminService_DisputedOrdersAppearInBothViews(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	disputed := string(entity.OrderDisputed)
	reason := "never delivered"
	_, err := fx.orders.UpdateOrder(ctx, "order1", usecase.UpdateOrderInput{
		Status:        &disputed,
		DisputeReason: &reason,
	})
	require.NoError(t, err)

	disputedOrders, err := fx.service.GetDisputedOrders(ctx)
	require.NoError(t, err)
	require.Len(t, disputedOrders, 1)
	assert.Equal(t, "order1", disputedOrders[0].ID)
	assert.Equal(t, "sarah_eco", disputedOrders[0].Buyer.Username)

	heldOrders, err := fx.service.GetHeldOrders(ctx)
	require.NoError(t, err)
	require.Len(t, heldOrders, 1)
	assert.Equal(t, "order1", heldOrders[0].ID)

	stats, err := fx.service.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DisputeCount)
}

func TestAdminService_HeldViewsStartEmpty(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	disputedOrders, err := fx.service.GetDisputedOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, disputedOrders)

	heldOrders, err := fx.service.GetHeldOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, heldOrders)
}
