package usecase

import (
	"context"

	"ecomarket/internal/domain/entity"
)

// CreateLoyaltyTransactionInput appends one signed ledger entry for a user.
type CreateLoyaltyTransactionInput struct {
	UserID      string `json:"userId" validate:"required"`
	Points      int    `json:"points" validate:"required"`
	Description string `json:"description"`
}

// LoyaltyUsecase defines loyalty ledger operations. Creating a transaction
// also applies its signed points to the user's running balance within the
// same persistence cycle; a transaction for an unknown user is still
// recorded, with the balance update skipped.
type LoyaltyUsecase interface {
	// GetLoyaltyTransactions lists a user's ledger entries newest-first.
	GetLoyaltyTransactions(ctx context.Context, userID string) ([]*entity.LoyaltyTransaction, error)
	CreateLoyaltyTransaction(ctx context.Context, input CreateLoyaltyTransactionInput) (*entity.LoyaltyTransaction, error)
}
