package impl

import (
	"context"
	"testing"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/domain/repository"
	"ecomarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sellerServiceFixtures struct {
	storageFixtures
	service usecase.SellerUsecase
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	fixtures := newStorageFixtures(t)
	service := NewSellerService(SellerServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})

	return sellerServiceFixtures{storageFixtures: fixtures, service: service}
}

func TestSellerService_GetSeller_Seeded(t *testing.T) {
	fx := createTestSellerService(t)

	seller, err := fx.service.GetSeller(context.Background(), "seller1")
	require.NoError(t, err)
	assert.Equal(t, "EcoClothing Co.", seller.BusinessName)
	assert.Equal(t, entity.KYCVerified, seller.KYCStatus)
	assert.Equal(t, 85, seller.SustainabilityScore)
	assert.Equal(t, "45670.00", seller.TotalSales)
}

func TestSellerService_GetSellerByUserID(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	seller, err := fx.service.GetSellerByUserID(ctx, "user2")
	require.NoError(t, err)
	assert.Equal(t, "seller1", seller.ID)

	_, err = fx.service.GetSellerByUserID(ctx, "user1")
	assert.True(t, errors.Is(err, repository.ErrSellerNotFound))
}

func TestSellerService_CreateSeller_Defaults(t *testing.T) {
	fx := createTestSellerService(t)

	seller, err := fx.service.CreateSeller(context.Background(), usecase.CreateSellerInput{
		UserID:       "user1",
		BusinessName: "Green Widgets",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, seller.ID)
	assert.Equal(t, entity.KYCPending, seller.KYCStatus)
	assert.Equal(t, "0.00", seller.TotalSales)
	assert.Equal(t, "0.00", seller.PendingBalance)
	assert.Equal(t, "0.00", seller.AvailableBalance)
	assert.False(t, seller.CreatedAt.IsZero())
}

func TestSellerService_GetSellerApplications_PendingOnly(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	// The seeded seller is already verified, so the queue starts empty.
	applications, err := fx.service.GetSellerApplications(ctx)
	require.NoError(t, err)
	assert.Empty(t, applications)

	created, err := fx.service.CreateSeller(ctx, usecase.CreateSellerInput{
		UserID:       "user1",
		BusinessName: "Pending Goods",
	})
	require.NoError(t, err)

	applications, err = fx.service.GetSellerApplications(ctx)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, created.ID, applications[0].ID)
}

func TestSellerService_UpdateSeller_KYCApproval(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	created, err := fx.service.CreateSeller(ctx, usecase.CreateSellerInput{
		UserID:       "user1",
		BusinessName: "Pending Goods",
	})
	require.NoError(t, err)

	verified := string(entity.KYCVerified)
	score := 70
	updated, err := fx.service.UpdateSeller(ctx, created.ID, usecase.UpdateSellerInput{
		KYCStatus:           &verified,
		SustainabilityScore: &score,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.KYCVerified, updated.KYCStatus)
	assert.Equal(t, 70, updated.SustainabilityScore)
	assert.Equal(t, "Pending Goods", updated.BusinessName)

	// Approval removes the seller from the application queue.
	applications, err := fx.service.GetSellerApplications(ctx)
	require.NoError(t, err)
	assert.Empty(t, applications)
}

func TestSellerService_UpdateSeller_NotFound(t *testing.T) {
	fx := createTestSellerService(t)

	name := "nope"
	_, err := fx.service.UpdateSeller(context.Background(), "missing", usecase.UpdateSellerInput{BusinessName: &name})
	assert.True(t, errors.Is(err, repository.ErrSellerNotFound))
}
