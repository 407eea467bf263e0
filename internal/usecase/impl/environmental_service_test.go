package impl

import (
	"context"
	"testing"
	"time"

	"ecomarket/internal/domain/entity"
	"ecomarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type environmentalServiceFixtures struct {
	storageFixtures
	service usecase.EnvironmentalUsecase
}

func createTestEnvironmentalService(t *testing.T) environmentalServiceFixtures {
	fixtures := newStorageFixtures(t)
	service := NewEnvironmentalService(EnvironmentalServiceParams{
		Store:  fixtures.store,
		Lock:   fixtures.lock,
		Logger: fixtures.logger,
	})

	return environmentalServiceFixtures{storageFixtures: fixtures, service: service}
}

func TestEnvironmentalService_TotalImpact_BaselinesOnly(t *testing.T) {
	fx := createTestEnvironmentalService(t)

	impact, err := fx.service.GetTotalEnvironmentalImpact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2847, impact.TreesPlanted)
	assert.Equal(t, 156, impact.CarbonOffset)
	assert.Equal(t, 89, impact.PlasticReduced)
	assert.Equal(t, 1200, impact.WasteReduced)
}

func TestEnvironmentalService_TotalImpact_IncludesRecordedActions(t *testing.T) {
	fx := createTestEnvironmentalService(t)
	ctx := context.Background()

	_, err := fx.service.CreateEnvironmentalAction(ctx, usecase.CreateEnvironmentalActionInput{
		UserID:     "user1",
		ActionType: string(entity.ActionTreePlanted),
		Quantity:   5,
	})
	require.NoError(t, err)

	_, err = fx.service.CreateEnvironmentalAction(ctx, usecase.CreateEnvironmentalActionInput{
		UserID:     "user2",
		ActionType: string(entity.ActionCarbonOffset),
		Quantity:   3,
	})
	require.NoError(t, err)

	impact, err := fx.service.GetTotalEnvironmentalImpact(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2852, impact.TreesPlanted)
	assert.Equal(t, 159, impact.CarbonOffset)
}

func TestEnvironmentalService_GetActions_NewestFirstPerUser(t *testing.T) {
	fx := createTestEnvironmentalService(t)
	ctx := context.Background()

	_, err := fx.service.CreateEnvironmentalAction(ctx, usecase.CreateEnvironmentalActionInput{
		UserID:     "user1",
		ActionType: string(entity.ActionTreePlanted),
		Quantity:   1,
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = fx.service.CreateEnvironmentalAction(ctx, usecase.CreateEnvironmentalActionInput{
		UserID:     "user1",
		ActionType: string(entity.ActionCarbonOffset),
		Quantity:   2,
	})
	require.NoError(t, err)

	_, err = fx.service.CreateEnvironmentalAction(ctx, usecase.CreateEnvironmentalActionInput{
		UserID:     "user2",
		ActionType: string(entity.ActionTreePlanted),
		Quantity:   4,
	})
	require.NoError(t, err)

	actions, err := fx.service.GetEnvironmentalActions(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, entity.ActionCarbonOffset, actions[0].ActionType)
	assert.Equal(t, entity.ActionTreePlanted, actions[1].ActionType)
}
