package handler

import (
	"log/slog"
	"net/http"

	"ecomarket/internal/delivery/http/response"
	"ecomarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EnvironmentalHandler holds dependencies for environmental tracking handlers.
type EnvironmentalHandler struct {
	uc     usecase.EnvironmentalUsecase
	logger *slog.Logger
}

// NewEnvironmentalHandler is the constructor for EnvironmentalHandler, injected by Fx.
func NewEnvironmentalHandler(uc usecase.EnvironmentalUsecase, logger *slog.Logger) *EnvironmentalHandler {
	return &EnvironmentalHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetEnvironmentalActions lists a user's actions newest-first.
func (h *EnvironmentalHandler) GetEnvironmentalActions(c echo.Context) error {
	actions, err := h.uc.GetEnvironmentalActions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, actions, "")
}

// CreateEnvironmentalAction records a contribution.
func (h *EnvironmentalHandler) CreateEnvironmentalAction(c echo.Context) error {
	var input usecase.CreateEnvironmentalActionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid environmental action input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	action, err := h.uc.CreateEnvironmentalAction(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, action, "Environmental action recorded")
}

// GetTotalImpact returns the platform-wide environmental report.
func (h *EnvironmentalHandler) GetTotalImpact(c echo.Context) error {
	impact, err := h.uc.GetTotalEnvironmentalImpact(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, impact, "")
}
