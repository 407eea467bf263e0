package handler

import (
	"log/slog"
	"net/http"

	"ecomarket/internal/delivery/http/response"
	"ecomarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin reporting handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetDisputedOrders lists orders under dispute.
func (h *AdminHandler) GetDisputedOrders(c echo.Context) error {
	orders, err := h.uc.GetDisputedOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetHeldOrders lists orders whose funds have not been released.
func (h *AdminHandler) GetHeldOrders(c echo.Context) error {
	orders, err := h.uc.GetHeldOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetPlatformStats returns the platform-wide dashboard aggregates.
func (h *AdminHandler) GetPlatformStats(c echo.Context) error {
	stats, err := h.uc.GetPlatformStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
