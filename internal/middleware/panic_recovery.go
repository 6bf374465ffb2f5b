package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apperrors "fxledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking ops handler into a 500 response
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					logger.Error("panic recovered",
						slog.String("trace_id", traceID),
						slog.String("panic", fmt.Sprintf("%v", r)),
						slog.String("stack_trace", string(debug.Stack())),
						slog.String("path", c.Request().URL.Path),
					)

					if err := c.JSON(http.StatusInternalServerError, NewErrorResponse(apperrors.SystemInternalError, traceID)); err != nil {
						logger.Error("failed to send panic recovery response",
							slog.String("trace_id", traceID),
							slog.String("error", err.Error()),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
