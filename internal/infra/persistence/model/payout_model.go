package model

import "ecomarket/internal/domain/entity"

// PayoutModel is the persisted shape of a payout record. ProcessedAt is null
// until the payout reaches a terminal status.
type PayoutModel struct {
	ID          string `json:"id"`
	SellerID    string `json:"sellerId"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	RequestedAt Time   `json:"requestedAt"`
	ProcessedAt *Time  `json:"processedAt"`
}

func fromPayoutDomain(data *entity.Payout) *PayoutModel {
	return &PayoutModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Amount:      data.Amount,
		Status:      string(data.Status),
		RequestedAt: NewTime(data.RequestedAt),
		ProcessedAt: newTimePtr(data.ProcessedAt),
	}
}

func toPayoutDomain(data *PayoutModel) *entity.Payout {
	return &entity.Payout{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Amount:      data.Amount,
		Status:      entity.PayoutStatus(data.Status),
		RequestedAt: data.RequestedAt.Time,
		ProcessedAt: toTimePtr(data.ProcessedAt),
	}
}
