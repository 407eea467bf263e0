package usecase

import (
	"context"

	"ecomarket/internal/domain/entity"
)

// AddToCartInput adds quantity of a product to a user's cart. Adding a
// (user, product) pair that is already in the cart increments the existing
// row instead of inserting a second one.
type AddToCartInput struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CartUsecase defines cart storage operations. The cart listing joins each
// item with its product and seller and drops items whose product or seller
// cannot be resolved.
type CartUsecase interface {
	GetCartItems(ctx context.Context, userID string) ([]*entity.CartItemWithProduct, error)
	AddToCart(ctx context.Context, input AddToCartInput) (*entity.CartItem, error)

	// UpdateCartItem replaces the item's quantity. A quantity of zero or
	// less removes the item and returns the removed row.
	UpdateCartItem(ctx context.Context, id string, quantity int) (*entity.CartItem, error)

	RemoveFromCart(ctx context.Context, id string) error
	ClearCart(ctx context.Context, userID string) error
}
