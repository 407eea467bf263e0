package entity

import "time"

// ActionType names a kind of environmental contribution.
type ActionType string

const (
	ActionTreePlanted  ActionType = "tree_planted"
	ActionCarbonOffset ActionType = "carbon_offset"
)

// EnvironmentalAction records a single contribution made by a user, such as a
// tree planted through a purchase.
type EnvironmentalAction struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	ActionType ActionType `json:"actionType"`
	Quantity   int        `json:"quantity"`
	CreatedAt  time.Time  `json:"createdAt"`
}
