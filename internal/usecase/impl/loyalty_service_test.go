package impl

import (
	"context"
	"testing"
	"time"

	"ecomarket/internal/infra/auth"
	"ecomarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loyaltyServiceFixtures struct {
	storageFixtures
	service usecase.LoyaltyUsecase
	users   usecase.UserUsecase
}

func createTestLoyaltyService(t *testing.T) loyaltyServiceFixtures {
	fixtures := newStorageFixtures(t)
	service := NewLoyaltyService(LoyaltyServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})
	users := NewUserService(UserServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Hasher: auth.NewBcryptHasher(nil),
		Logger: fixtures.logger,
	})

	return loyaltyServiceFixtures{storageFixtures: fixtures, service: service, users: users}
}

func TestLoyaltyService_CreateTransaction_UpdatesBalance(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	tx, err := fx.service.CreateLoyaltyTransaction(ctx, usecase.CreateLoyaltyTransactionInput{
		UserID:      "user1",
		Points:      150,
		Description: "order bonus",
	})
	require.NoError(t, err)
	assert.Equal(t, 150, tx.Points)

	// Seeded balance 2450 plus the earned 150.
	user, err := fx.users.GetUser(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 2600, user.LoyaltyPoints)
}

func TestLoyaltyService_CreateTransaction_NegativePointsRedeem(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	_, err := fx.service.CreateLoyaltyTransaction(ctx, usecase.CreateLoyaltyTransactionInput{
		UserID:      "user2",
		Points:      -200,
		Description: "discount redemption",
	})
	require.NoError(t, err)

	user, err := fx.users.GetUser(ctx, "user2")
	require.NoError(t, err)
	assert.Equal(t, 300, user.LoyaltyPoints)
}

func TestLoyaltyService_CreateTransaction_UnknownUserStillRecorded(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	tx, err := fx.service.CreateLoyaltyTransaction(ctx, usecase.CreateLoyaltyTransactionInput{
		UserID:      "ghost",
		Points:      50,
		Description: "orphaned entry",
	})
	require.NoError(t, err)

	transactions, err := fx.service.GetLoyaltyTransactions(ctx, "ghost")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, tx.ID, transactions[0].ID)
}

func TestLoyaltyService_GetTransactions_NewestFirst(t *testing.T) {
	fx := createTestLoyaltyService(t)
	ctx := context.Background()

	_, err := fx.service.CreateLoyaltyTransaction(ctx, usecase.CreateLoyaltyTransactionInput{
		UserID:      "user1",
		Points:      10,
		Description: "first",
	})
	require.NoError(t, err)

	// Persisted timestamps carry millisecond precision, so space the
	// entries out enough to order deterministically.
	time.Sleep(5 * time.Millisecond)

	_, err = fx.service.CreateLoyaltyTransaction(ctx, usecase.CreateLoyaltyTransactionInput{
		UserID:      "user1",
		Points:      20,
		Description: "second",
	})
	require.NoError(t, err)

	transactions, err := fx.service.GetLoyaltyTransactions(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "second", transactions[0].Description)
	assert.Equal(t, "first", transactions[1].Description)
}
