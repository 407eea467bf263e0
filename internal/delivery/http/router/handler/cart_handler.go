package handler

import (
	"log/slog"
	"net/http"

	"ecomarket/internal/delivery/http/response"
	"ecomarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCartItems lists a user's cart joined with products and sellers.
func (h *CartHandler) GetCartItems(c echo.Context) error {
	items, err := h.uc.GetCartItems(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// AddToCart inserts or merges a cart item.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var input usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.AddToCart(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem replaces an item's quantity; zero or less removes it.
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart update input")
	}

	item, err := h.uc.UpdateCartItem(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Cart item updated")
}

// RemoveFromCart deletes one cart item.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	if err := h.uc.RemoveFromCart(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}

// ClearCart empties a user's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context(), c.Param("userId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
