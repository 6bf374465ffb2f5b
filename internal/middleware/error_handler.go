package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "fxledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every failed ops request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id"`
}

// NewErrorResponse builds the body for a ledger error code
func NewErrorResponse(code apperrors.ErrorCode, traceID string) ErrorResponse {
	return ErrorResponse{
		Code:    fmt.Sprintf("0x%02X", uint8(code)),
		Message: apperrors.GetErrorMessage(code),
		TraceID: traceID,
	}
}

// HTTPErrorHandler formats errors returned by ops handlers as ErrorResponse
// and logs them
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		status := http.StatusInternalServerError
		body := NewErrorResponse(apperrors.SystemInternalError, traceID)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			body = NewErrorResponse(statusCode(status), traceID)
			body.Message = fmt.Sprintf("%v", httpErr.Message)
		}

		level := slog.LevelWarn
		if status >= 500 {
			level = slog.LevelError
		}
		logger.Log(c.Request().Context(), level, "ops request failed",
			slog.String("trace_id", traceID),
			slog.Int("status", status),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.String("error", err.Error()),
		)

		if sendErr := c.JSON(status, body); sendErr != nil {
			logger.Error("failed to send error response",
				slog.String("trace_id", traceID),
				slog.String("error", sendErr.Error()),
			)
		}
	}
}

func statusCode(status int) apperrors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed:
		return apperrors.ValidationInvalidRequest
	case http.StatusTooManyRequests:
		return apperrors.AuthRateLimited
	case http.StatusServiceUnavailable:
		return apperrors.SystemPersistenceFailure
	default:
		return apperrors.SystemInternalError
	}
}
