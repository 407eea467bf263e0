package model

import "ecomarket/internal/domain/entity"

// LoyaltyTransactionModel is the persisted shape of a loyalty ledger entry.
type LoyaltyTransactionModel struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Points      int    `json:"points"`
	Description string `json:"description"`
	CreatedAt   Time   `json:"createdAt"`
}

func fromLoyaltyTransactionDomain(data *entity.LoyaltyTransaction) *LoyaltyTransactionModel {
	return &LoyaltyTransactionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Points:      data.Points,
		Description: data.Description,
		CreatedAt:   NewTime(data.CreatedAt),
	}
}

func toLoyaltyTransactionDomain(data *LoyaltyTransactionModel) *entity.LoyaltyTransaction {
	return &entity.LoyaltyTransaction{
		ID:          data.ID,
		UserID:      data.UserID,
		Points:      data.Points,
		Description: data.Description,
		CreatedAt:   data.CreatedAt.Time,
	}
}
