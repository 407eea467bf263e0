package entity

import "time"

// CartItem links a user to a product with a quantity. At most one cart item
// exists per (UserID, ProductID) pair; adding the same pair again increments
// the quantity of the existing row.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}
