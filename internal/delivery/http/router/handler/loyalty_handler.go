package handler

import (
	"log/slog"
	"net/http"

	"ecomarket/internal/delivery/http/response"
	"ecomarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoyaltyHandler holds dependencies for loyalty ledger handlers.
type LoyaltyHandler struct {
	uc     usecase.LoyaltyUsecase
	logger *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler, injected by Fx.
func NewLoyaltyHandler(uc usecase.LoyaltyUsecase, logger *slog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetLoyaltyTransactions lists a user's ledger entries newest-first.
func (h *LoyaltyHandler) GetLoyaltyTransactions(c echo.Context) error {
	transactions, err := h.uc.GetLoyaltyTransactions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transactions, "")
}

// CreateLoyaltyTransaction records a ledger entry and applies it to the
// user's balance.
func (h *LoyaltyHandler) CreateLoyaltyTransaction(c echo.Context) error {
	var input usecase.CreateLoyaltyTransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loyalty transaction input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tx, err := h.uc.CreateLoyaltyTransaction(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tx, "Loyalty transaction recorded")
}
