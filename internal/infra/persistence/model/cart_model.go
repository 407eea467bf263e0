package model

import "ecomarket/internal/domain/entity"

// CartItemModel is the persisted shape of a cart item record.
type CartItemModel struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	CreatedAt Time   `json:"createdAt"`
}

func fromCartItemDomain(data *entity.CartItem) *CartItemModel {
	return &CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: NewTime(data.CreatedAt),
	}
}

func toCartItemDomain(data *CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt.Time,
	}
}
