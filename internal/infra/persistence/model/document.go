package model

import "ecomarket/internal/domain/repository"

// Document is the persisted shape of the whole dataset: one JSON object with
// a named array per collection.
type Document struct {
	Users                []*UserModel                `json:"users"`
	Sellers              []*SellerModel              `json:"sellers"`
	Products             []*ProductModel             `json:"products"`
	CartItems            []*CartItemModel            `json:"cartItems"`
	Orders               []*OrderModel               `json:"orders"`
	OrderItems           []*OrderItemModel           `json:"orderItems"`
	LoyaltyTransactions  []*LoyaltyTransactionModel  `json:"loyaltyTransactions"`
	EnvironmentalActions []*EnvironmentalActionModel `json:"environmentalActions"`
	Payouts              []*PayoutModel              `json:"payouts"`
}

// FromDocumentDomain converts the domain document into its persisted shape.
func FromDocumentDomain(doc *repository.Document) *Document {
	out := &Document{
		Users:                mapSlice(doc.Users, fromUserDomain),
		Sellers:              mapSlice(doc.Sellers, fromSellerDomain),
		Products:             mapSlice(doc.Products, fromProductDomain),
		CartItems:            mapSlice(doc.CartItems, fromCartItemDomain),
		Orders:               mapSlice(doc.Orders, fromOrderDomain),
		OrderItems:           mapSlice(doc.OrderItems, fromOrderItemDomain),
		LoyaltyTransactions:  mapSlice(doc.LoyaltyTransactions, fromLoyaltyTransactionDomain),
		EnvironmentalActions: mapSlice(doc.EnvironmentalActions, fromEnvironmentalActionDomain),
		Payouts:              mapSlice(doc.Payouts, fromPayoutDomain),
	}

	return out
}

// ToDocumentDomain converts the persisted shape back into the domain document.
func ToDocumentDomain(doc *Document) *repository.Document {
	return &repository.Document{
		Users:                mapSlice(doc.Users, toUserDomain),
		Sellers:              mapSlice(doc.Sellers, toSellerDomain),
		Products:             mapSlice(doc.Products, toProductDomain),
		CartItems:            mapSlice(doc.CartItems, toCartItemDomain),
		Orders:               mapSlice(doc.Orders, toOrderDomain),
		OrderItems:           mapSlice(doc.OrderItems, toOrderItemDomain),
		LoyaltyTransactions:  mapSlice(doc.LoyaltyTransactions, toLoyaltyTransactionDomain),
		EnvironmentalActions: mapSlice(doc.EnvironmentalActions, toEnvironmentalActionDomain),
		Payouts:              mapSlice(doc.Payouts, toPayoutDomain),
	}
}

// mapSlice converts a collection element-wise, keeping empty collections as
// empty (not nil) so they serialize as [] rather than null.
func mapSlice[In, Out any](in []*In, convert func(*In) *Out) []*Out {
	out := make([]*Out, 0, len(in))
	for _, item := range in {
		out = append(out, convert(item))
	}

	return out
}
