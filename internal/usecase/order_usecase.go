package usecase

import (
	"context"
	"time"

	"ecomarket/internal/domain/entity"
)

// OrderFilter narrows an order listing. Zero-valued fields do not filter.
type OrderFilter struct {
	BuyerID  string
	SellerID string
	Status   string
}

// CreateOrderInput defines the data required to record an order. Status and
// payment status default to "pending" when omitted.
type CreateOrderInput struct {
	BuyerID             string                 `json:"buyerId" validate:"required"`
	SellerID            string                 `json:"sellerId" validate:"required"`
	Status              string                 `json:"status"`
	PaymentStatus       string                 `json:"paymentStatus"`
	TotalAmount         string                 `json:"totalAmount" validate:"required"`
	PlatformFee         string                 `json:"platformFee"`
	LoyaltyPointsEarned int                    `json:"loyaltyPointsEarned"`
	LoyaltyPointsUsed   int                    `json:"loyaltyPointsUsed"`
	ShippingAddress     entity.ShippingAddress `json:"shippingAddress"`
	PaymentIntentID     string                 `json:"paymentIntentId"`
	EscrowReleaseDate   *time.Time             `json:"escrowReleaseDate"`
	EnvironmentalImpact entity.OrderImpact     `json:"environmentalImpact"`
}

// UpdateOrderInput is a partial update; nil fields are left untouched. Any
// applied update refreshes the order's updatedAt timestamp.
type UpdateOrderInput struct {
	Status              *string     `json:"status"`
	PaymentStatus       *string     `json:"paymentStatus"`
	TotalAmount         *string     `json:"totalAmount"`
	PlatformFee         *string     `json:"platformFee"`
	LoyaltyPointsEarned *int        `json:"loyaltyPointsEarned"`
	LoyaltyPointsUsed   *int        `json:"loyaltyPointsUsed"`
	PaymentIntentID     *string     `json:"paymentIntentId"`
	EscrowReleaseDate   **time.Time `json:"escrowReleaseDate"`
	DisputeReason       *string     `json:"disputeReason"`
	AdminNotes          *string     `json:"adminNotes"`
}

// CreateOrderItemInput records one order line with a unit price snapshot.
type CreateOrderItemInput struct {
	OrderID   string `json:"orderId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Price     string `json:"price" validate:"required"`
}

// OrderUsecase defines order storage operations. The joined views resolve
// buyer and seller strictly: an order missing either counterparty is
// reported as not found, while order items with an unresolvable product are
// dropped from the item list only.
type OrderUsecase interface {
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	GetOrderWithItems(ctx context.Context, id string) (*entity.OrderWithItems, error)
	GetOrders(ctx context.Context, filter OrderFilter) ([]*entity.OrderWithItems, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id string, input UpdateOrderInput) (*entity.Order, error)
	CreateOrderItem(ctx context.Context, input CreateOrderItemInput) (*entity.OrderItem, error)
}
