package usecase

import (
	"context"

	"ecomarket/internal/domain/entity"
)

// CreateEnvironmentalActionInput records one environmental contribution.
type CreateEnvironmentalActionInput struct {
	UserID     string `json:"userId" validate:"required"`
	ActionType string `json:"actionType" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// TotalImpact is the platform-wide environmental report. Tree and carbon
// totals combine a fixed historical baseline with live action sums; plastic
// and waste figures are fixed placeholder values.
type TotalImpact struct {
	TreesPlanted   int `json:"treesPlanted"`
	CarbonOffset   int `json:"carbonOffset"`
	PlasticReduced int `json:"plasticReduced"`
	WasteReduced   int `json:"wasteReduced"`
}

// EnvironmentalUsecase defines environmental tracking operations.
type EnvironmentalUsecase interface {
	// GetEnvironmentalActions lists a user's actions newest-first.
	GetEnvironmentalActions(ctx context.Context, userID string) ([]*entity.EnvironmentalAction, error)
	CreateEnvironmentalAction(ctx context.Context, input CreateEnvironmentalActionInput) (*entity.EnvironmentalAction, error)
	GetTotalEnvironmentalImpact(ctx context.Context) (*TotalImpact, error)
}
