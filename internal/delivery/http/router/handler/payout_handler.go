package handler

import (
	"log/slog"
	"net/http"

	"ecomarket/internal/delivery/http/response"
	"ecomarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PayoutHandler holds dependencies for payout-related handlers.
type PayoutHandler struct {
	uc     usecase.PayoutUsecase
	logger *slog.Logger
}

// NewPayoutHandler is the constructor for PayoutHandler, injected by Fx.
func NewPayoutHandler(uc usecase.PayoutUsecase, logger *slog.Logger) *PayoutHandler {
	return &PayoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPayouts lists payouts, optionally restricted to one seller.
func (h *PayoutHandler) GetPayouts(c echo.Context) error {
	payouts, err := h.uc.GetPayouts(c.Request().Context(), c.QueryParam("sellerId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payouts, "")
}

// CreatePayout records a payout request.
func (h *PayoutHandler) CreatePayout(c echo.Context) error {
	var input usecase.CreatePayoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	payout, err := h.uc.CreatePayout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payout, "Payout requested successfully")
}

// UpdatePayout applies a partial update to a payout.
func (h *PayoutHandler) UpdatePayout(c echo.Context) error {
	var input usecase.UpdatePayoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payout update input")
	}

	payout, err := h.uc.UpdatePayout(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payout, "Payout updated successfully")
}
