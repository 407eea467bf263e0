package usecase

import (
	"context"

	"ecomarket/internal/domain/entity"
)

// CreatePayoutInput requests a payout of a seller's available balance.
// Status defaults to "pending" when omitted.
type CreatePayoutInput struct {
	SellerID string `json:"sellerId" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
	Status   string `json:"status"`
}

// UpdatePayoutInput is a partial update; nil fields are left untouched.
// Moving the status to "completed" or "failed" stamps processedAt as a side
// effect of the same update.
type UpdatePayoutInput struct {
	Amount *string `json:"amount"`
	Status *string `json:"status"`
}

// PayoutUsecase defines payout storage operations.
type PayoutUsecase interface {
	// GetPayouts lists payouts newest-first, optionally restricted to one
	// seller. An empty sellerID lists all payouts.
	GetPayouts(ctx context.Context, sellerID string) ([]*entity.Payout, error)
	CreatePayout(ctx context.Context, input CreatePayoutInput) (*entity.Payout, error)
	UpdatePayout(ctx context.Context, id string, input UpdatePayoutInput) (*entity.Payout, error)
}
