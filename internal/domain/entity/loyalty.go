package entity

import "time"

// LoyaltyTransaction is one append-only ledger entry. Points are signed:
// positive entries are earned points, negative entries are redemptions.
type LoyaltyTransaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Points      int       `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
