package entity

import "time"

// PayoutStatus tracks a seller payout request. Completed and failed are
// terminal; reaching either stamps ProcessedAt.
type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

// Payout is a seller's request to move available balance to their bank
// account. Amount is a decimal string. ProcessedAt stays nil until the payout
// reaches a terminal status.
type Payout struct {
	ID          string       `json:"id"`
	SellerID    string       `json:"sellerId"`
	Amount      string       `json:"amount"`
	Status      PayoutStatus `json:"status"`
	RequestedAt time.Time    `json:"requestedAt"`
	ProcessedAt *time.Time   `json:"processedAt"`
}
