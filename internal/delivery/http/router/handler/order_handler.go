package handler

import (
	"log/slog"
	"net/http"

	"ecomarket/internal/delivery/http/response"
	"ecomarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetOrders lists joined orders filtered by query parameters.
func (h *OrderHandler) GetOrders(c echo.Context) error {
	filter := usecase.OrderFilter{
		BuyerID:  c.QueryParam("buyerId"),
		SellerID: c.QueryParam("sellerId"),
		Status:   c.QueryParam("status"),
	}

	orders, err := h.uc.GetOrders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one order fully joined with its items and counterparties.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrderWithItems(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// CreateOrder records a new order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// UpdateOrder applies a partial update to an order.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var input usecase.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order update input")
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// CreateOrderItem appends an order line to an existing order.
func (h *OrderHandler) CreateOrderItem(c echo.Context) error {
	var input usecase.CreateOrderItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order item input")
	}
	input.OrderID = c.Param("id")
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateOrderItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Order item created successfully")
}
