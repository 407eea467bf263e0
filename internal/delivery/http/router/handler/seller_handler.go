package handler

import (
	"log/slog"
	"net/http"

	"ecomarket/internal/delivery/http/response"
	"ecomarket/internal/domain/entity"
	"ecomarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for seller-related handlers.
type SellerHandler struct {
	uc     usecase.SellerUsecase
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateSeller registers a seller profile with the caller-supplied fields.
func (h *SellerHandler) CreateSeller(c echo.Context) error {
	var input usecase.CreateSellerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	seller, err := h.uc.CreateSeller(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, seller, "Seller created successfully")
}

// ApplySeller handles a marketplace seller application. Whatever KYC status
// the caller submits, the application always enters the review queue as
// pending.
func (h *SellerHandler) ApplySeller(c echo.Context) error {
	var input usecase.CreateSellerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller application")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	input.KYCStatus = string(entity.KYCPending)

	seller, err := h.uc.CreateSeller(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, seller, "Seller application submitted")
}

// GetSeller returns a single seller by ID.
func (h *SellerHandler) GetSeller(c echo.Context) error {
	seller, err := h.uc.GetSeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "")
}

// GetSellerByUser returns the seller profile attached to a user account.
func (h *SellerHandler) GetSellerByUser(c echo.Context) error {
	seller, err := h.uc.GetSellerByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "")
}

// UpdateSeller applies a partial update to a seller.
func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	var input usecase.UpdateSellerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller update input")
	}

	seller, err := h.uc.UpdateSeller(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "Seller updated successfully")
}

// GetSellerApplications lists sellers still waiting on KYC review.
func (h *SellerHandler) GetSellerApplications(c echo.Context) error {
	applications, err := h.uc.GetSellerApplications(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications, "")
}
