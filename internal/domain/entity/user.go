// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Role classifies what an account represents on the marketplace.
// The role is advisory; it does not gate any storage operation.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// LoyaltyTier is the buyer classification derived from accumulated points.
type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "bronze"
	TierSilver LoyaltyTier = "silver"
	TierGold   LoyaltyTier = "gold"
)

// User is a marketplace account. LoyaltyPoints is the running sum of all
// loyalty transaction points recorded for the user; monetary figures are kept
// as decimal strings exactly as persisted. The password hash never leaves the
// service over JSON.
type User struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Password      string      `json:"-"` // bcrypt hash, never plaintext
	FullName      string      `json:"fullName"`
	Role          Role        `json:"role"`
	LoyaltyPoints int         `json:"loyaltyPoints"`
	LoyaltyTier   LoyaltyTier `json:"loyaltyTier"`
	TotalSpent    string      `json:"totalSpent"`
	TreesPlanted  int         `json:"treesPlanted"`
	CarbonOffset  string      `json:"carbonOffset"`
	CreatedAt     time.Time   `json:"createdAt"`
}
