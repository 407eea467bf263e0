package model

import "ecomarket/internal/domain/entity"

// OrderModel is the persisted shape of an order record.
type OrderModel struct {
	ID                  string               `json:"id"`
	BuyerID             string               `json:"buyerId"`
	SellerID            string               `json:"sellerId"`
	Status              string               `json:"status"`
	PaymentStatus       string               `json:"paymentStatus"`
	TotalAmount         string               `json:"totalAmount"`
	PlatformFee         string               `json:"platformFee"`
	LoyaltyPointsEarned int                  `json:"loyaltyPointsEarned"`
	LoyaltyPointsUsed   int                  `json:"loyaltyPointsUsed"`
	ShippingAddress     ShippingAddressModel `json:"shippingAddress"`
	PaymentIntentID     string               `json:"paymentIntentId"`
	EscrowReleaseDate   *Time                `json:"escrowReleaseDate"`
	DisputeReason       *string              `json:"disputeReason"`
	AdminNotes          *string              `json:"adminNotes"`
	EnvironmentalImpact OrderImpactModel     `json:"environmentalImpact"`
	CreatedAt           Time                 `json:"createdAt"`
	UpdatedAt           Time                 `json:"updatedAt"`
}

// ShippingAddressModel is the embedded order destination.
type ShippingAddressModel struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// OrderImpactModel is the embedded environmental contribution of an order.
type OrderImpactModel struct {
	TreesPlanted int     `json:"treesPlanted"`
	CarbonOffset float64 `json:"carbonOffset"`
}

// OrderItemModel is the persisted shape of an order line.
type OrderItemModel struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

func fromOrderDomain(data *entity.Order) *OrderModel {
	return &OrderModel{
		ID:                  data.ID,
		BuyerID:             data.BuyerID,
		SellerID:            data.SellerID,
		Status:              string(data.Status),
		PaymentStatus:       string(data.PaymentStatus),
		TotalAmount:         data.TotalAmount,
		PlatformFee:         data.PlatformFee,
		LoyaltyPointsEarned: data.LoyaltyPointsEarned,
		LoyaltyPointsUsed:   data.LoyaltyPointsUsed,
		ShippingAddress: ShippingAddressModel{
			Street:  data.ShippingAddress.Street,
			City:    data.ShippingAddress.City,
			State:   data.ShippingAddress.State,
			Pincode: data.ShippingAddress.Pincode,
			Country: data.ShippingAddress.Country,
		},
		PaymentIntentID:   data.PaymentIntentID,
		EscrowReleaseDate: newTimePtr(data.EscrowReleaseDate),
		DisputeReason:     data.DisputeReason,
		AdminNotes:        data.AdminNotes,
		EnvironmentalImpact: OrderImpactModel{
			TreesPlanted: data.EnvironmentalImpact.TreesPlanted,
			CarbonOffset: data.EnvironmentalImpact.CarbonOffset,
		},
		CreatedAt: NewTime(data.CreatedAt),
		UpdatedAt: NewTime(data.UpdatedAt),
	}
}

func toOrderDomain(data *OrderModel) *entity.Order {
	return &entity.Order{
		ID:                  data.ID,
		BuyerID:             data.BuyerID,
		SellerID:            data.SellerID,
		Status:              entity.OrderStatus(data.Status),
		PaymentStatus:       entity.PaymentStatus(data.PaymentStatus),
		TotalAmount:         data.TotalAmount,
		PlatformFee:         data.PlatformFee,
		LoyaltyPointsEarned: data.LoyaltyPointsEarned,
		LoyaltyPointsUsed:   data.LoyaltyPointsUsed,
		ShippingAddress: entity.ShippingAddress{
			Street:  data.ShippingAddress.Street,
			City:    data.ShippingAddress.City,
			State:   data.ShippingAddress.State,
			Pincode: data.ShippingAddress.Pincode,
			Country: data.ShippingAddress.Country,
		},
		PaymentIntentID:   data.PaymentIntentID,
		EscrowReleaseDate: toTimePtr(data.EscrowReleaseDate),
		DisputeReason:     data.DisputeReason,
		AdminNotes:        data.AdminNotes,
		EnvironmentalImpact: entity.OrderImpact{
			TreesPlanted: data.EnvironmentalImpact.TreesPlanted,
			CarbonOffset: data.EnvironmentalImpact.CarbonOffset,
		},
		CreatedAt: data.CreatedAt.Time,
		UpdatedAt: data.UpdatedAt.Time,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}

func toOrderItemDomain(data *OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}
