package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"fleet-dashboard/internal/errors"
	"fleet-dashboard/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery is a middleware that recovers from panics and returns a standardized error response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
					c.Set(TraceIDContextKey, traceID)
				}

				slog.Error("Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
					"user_id", c.Get(handlers.UserIDContextKey),
				)

				// A half-written XLSX download cannot be turned into a JSON error.
				if c.Response().Committed {
					return
				}

				if sendErr := handlers.SendError(c, errors.SystemInternalError); sendErr != nil {
					slog.Error("Failed to send panic recovery response",
						"trace_id", traceID,
						"error", sendErr.Error(),
					)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
