package middleware

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fleet-dashboard/internal/backend"
	"fleet-dashboard/internal/errors"
	"fleet-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "API error responses by error code, route and HTTP status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler renders every error that escapes a handler as the
// standard error envelope, logs it and counts it.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	resp, status := classify(err, traceID)
	code := resp.Error.Code

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", code,
		"status", status,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err.Error())

	apiErrorsTotal.WithLabelValues(code, c.Path(), strconv.Itoa(status)).Inc()

	if seconds := errors.RetryAfterSeconds(errors.ErrorCode(code)); seconds > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	if sendErr := c.JSON(status, resp); sendErr != nil {
		slog.Error("failed to write error response", "trace_id", traceID, "error", sendErr)
	}
}

// classify picks the error code and HTTP status for err. Echo errors keep
// their own status; everything else takes the status registered for its code.
func classify(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		resp := errors.NewErrorResponse(codeForStatus(httpErr.Code), traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)))
		return resp, httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = validation.Message(fe)
		}
		return errors.NewValidationError(details, traceID), http.StatusBadRequest
	}

	if code, ok := upstreamCode(err); ok {
		resp := errors.NewErrorResponse(code, traceID)
		return resp, resp.GetHTTPStatus()
	}

	resp, _ := errors.WrapSystemError(err, traceID)
	return resp, resp.GetHTTPStatus()
}

// upstreamCode recognises back-office client failures and abandoned requests.
func upstreamCode(err error) (errors.ErrorCode, bool) {
	var statusErr *backend.StatusError
	switch {
	case stderrors.Is(err, context.Canceled):
		return errors.SystemRequestCancelled, true
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.BackendTimeout, true
	case stderrors.Is(err, backend.ErrUnavailable), stderrors.As(err, &statusErr):
		return errors.BackendUnavailable, true
	}
	return "", false
}

var statusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:          errors.ValidationGeneral,
	http.StatusUnprocessableEntity: errors.ValidationGeneral,
	http.StatusUnauthorized:        errors.AuthMissingToken,
	http.StatusForbidden:           errors.AuthInsufficientPermission,
	http.StatusNotFound:            errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:    errors.SystemRouteNotFound,
	http.StatusTooManyRequests:     errors.SystemRateLimitExceeded,
	http.StatusInternalServerError: errors.SystemInternalError,
	http.StatusServiceUnavailable:  errors.SystemServiceUnavailable,
	http.StatusGatewayTimeout:      errors.BackendTimeout,
}

func codeForStatus(status int) errors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}
