package entity

import "time"

// OrderStatus tracks fulfilment progress of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderDisputed  OrderStatus = "disputed"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus tracks where the buyer's money is. Funds move from pending to
// held (escrow) and are released to the seller or refunded to the buyer.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentHeld     PaymentStatus = "held"
	PaymentReleased PaymentStatus = "released"
	PaymentRefunded PaymentStatus = "refunded"
)

// ShippingAddress is the destination embedded on an order.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// OrderImpact is the environmental contribution attributed to an order.
type OrderImpact struct {
	TreesPlanted int     `json:"treesPlanted"`
	CarbonOffset float64 `json:"carbonOffset"`
}

// Order is a purchase from one buyer to one seller. TotalAmount and
// PlatformFee are decimal strings; dispute and admin fields stay nil until an
// admin touches the order.
type Order struct {
	ID                  string          `json:"id"`
	BuyerID             string          `json:"buyerId"`
	SellerID            string          `json:"sellerId"`
	Status              OrderStatus     `json:"status"`
	PaymentStatus       PaymentStatus   `json:"paymentStatus"`
	TotalAmount         string          `json:"totalAmount"`
	PlatformFee         string          `json:"platformFee"`
	LoyaltyPointsEarned int             `json:"loyaltyPointsEarned"`
	LoyaltyPointsUsed   int             `json:"loyaltyPointsUsed"`
	ShippingAddress     ShippingAddress `json:"shippingAddress"`
	PaymentIntentID     string          `json:"paymentIntentId"`
	EscrowReleaseDate   *time.Time      `json:"escrowReleaseDate"`
	DisputeReason       *string         `json:"disputeReason"`
	AdminNotes          *string         `json:"adminNotes"`
	EnvironmentalImpact OrderImpact     `json:"environmentalImpact"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// OrderItem is one line of an order with the unit price snapshotted at
// purchase time.
type OrderItem struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}
