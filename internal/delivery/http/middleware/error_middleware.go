package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "ecomarket/internal/domain/errors"
	"ecomarket/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// notFoundCodes maps the storage not-found sentinels to stable business
// error codes for the response envelope.
var notFoundCodes = map[error]string{
	repository.ErrUserNotFound:     "USER_NOT_FOUND",
	repository.ErrSellerNotFound:   "SELLER_NOT_FOUND",
	repository.ErrProductNotFound:  "PRODUCT_NOT_FOUND",
	repository.ErrCartItemNotFound: "CART_ITEM_NOT_FOUND",
	repository.ErrOrderNotFound:    "ORDER_NOT_FOUND",
	repository.ErrPayoutNotFound:   "PAYOUT_NOT_FOUND",
}

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Storage not-found sentinels become 404s with a per-entity code.
	for sentinel, code := range notFoundCodes {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, domainerrors.Response{
				Success: false,
				Code:    http.StatusNotFound,
				Message: sentinel.Error(),
				Error: &domainerrors.ErrorInfo{
					Code:    code,
					Details: err.Error(),
				},
			})

			return
		}
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		c.JSON(httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	c.JSON(http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &domainerrors.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: err.Error(),
		},
	})
}
