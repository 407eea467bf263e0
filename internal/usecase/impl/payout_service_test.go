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

type payoutServiceFixtures struct {
	storageFixtures
	service usecase.PayoutUsecase
}

func createTestPayoutService(t *testing.T) payoutServiceFixtures {
	fixtures := newStorageFixtures(t)
	service := NewPayoutService(PayoutServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})

	return payoutServiceFixtures{storageFixtures: fixtures, service: service}
}

func TestPayoutService_CreatePayout_PendingByDefault(t *testing.T) {
	fx := createTestPayoutService(t)

	payout, err := fx.service.CreatePayout(context.Background(), usecase.CreatePayoutInput{
		SellerID: "seller1",
		Amount:   "5000.00",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PayoutPending, payout.Status)
	assert.False(t, payout.RequestedAt.IsZero())
	assert.Nil(t, payout.ProcessedAt)
}

func TestPayoutService_UpdatePayout_TerminalStatusStampsProcessedAt(t *testing.T) {
	fx := createTestPayoutService(t)
	ctx := context.Background()

	payout, err := fx.service.CreatePayout(ctx, usecase.CreatePayoutInput{
		SellerID: "seller1",
		Amount:   "5000.00",
	})
	require.NoError(t, err)

	processing := string(entity.PayoutProcessing)
	updated, err := fx.service.UpdatePayout(ctx, payout.ID, usecase.UpdatePayoutInput{Status: &processing})
	require.NoError(t, err)
	assert.Equal(t, entity.PayoutProcessing, updated.Status)
	assert.Nil(t, updated.ProcessedAt)

	completed := string(entity.PayoutCompleted)
	updated, err = fx.service.UpdatePayout(ctx, payout.ID, usecase.UpdatePayoutInput{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, entity.PayoutCompleted, updated.Status)
	assert.NotNil(t, updated.ProcessedAt)
}

func TestPayoutService_UpdatePayout_NotFound(t *testing.T) {
	fx := createTestPayoutService(t)

	amount := "1.00"
	_, err := fx.service.UpdatePayout(context.Background(), "missing", usecase.UpdatePayoutInput{Amount: &amount})
	assert.True(t, errors.Is(err, repository.ErrPayoutNotFound))
}

func TestPayoutService_GetPayouts_FilterAndOrder(t *testing.T) {
	fx := createTestPayoutService(t)
	ctx := context.Background()

	first, err := fx.service.CreatePayout(ctx, usecase.CreatePayoutInput{SellerID: "seller1", Amount: "100.00"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	second, err := fx.service.CreatePayout(ctx, usecase.CreatePayoutInput{SellerID: "seller1", Amount: "200.00"})
	require.NoError(t, err)

	_, err = fx.service.CreatePayout(ctx, usecase.CreatePayoutInput{SellerID: "other", Amount: "300.00"})
	require.NoError(t, err)

	payouts, err := fx.service.GetPayouts(ctx, "seller1")
	require.NoError(t, err)
	require.Len(t, payouts, 2)
	assert.Equal(t, second.ID, payouts[0].ID)
	assert.Equal(t, first.ID, payouts[1].ID)

	// Empty seller ID lists everything.
	all, err := fx.service.GetPayouts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
