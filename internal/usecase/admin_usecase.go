package usecase

import (
	"context"

	"ecomarket/internal/domain/entity"
)

// PlatformStats aggregates the whole order and seller collections for the
// admin dashboard.
type PlatformStats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	HeldFunds     float64 `json:"heldFunds"`
	PlatformFee   float64 `json:"platformFee"`
	ActiveOrders  int     `json:"activeOrders"`
	ActiveSellers int     `json:"activeSellers"`
	DisputeCount  int     `json:"disputeCount"`
}

// AdminUsecase defines the admin reporting views. Disputed orders are those
// with status "disputed". Held orders are the wider set whose payment status
// is "held" or whose status is "disputed", so the two views overlap.
type AdminUsecase interface {
	GetDisputedOrders(ctx context.Context) ([]*entity.OrderWithItems, error)
	GetHeldOrders(ctx context.Context) ([]*entity.OrderWithItems, error)
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}
