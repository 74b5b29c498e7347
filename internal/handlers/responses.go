package handlers

import (
	"net/http"
	"strconv"

	"fleet-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers never build error bodies themselves:
//
//   - SendError for every failure with a registered code (validation, auth,
//     empty exports, back-office outages). Retryable codes carry Retry-After.
//   - SendSystemError for anything unexpected; the client only sees SYSTEM_001
//     and the trace id, the cause stays in the logs.
//
// A summary whose back-office collections could not be loaded is not an
// error at all: it is a 200 with notices, see summaryMeta.

// TraceIDContextKey is the echo context key holding the request trace id.
const TraceIDContextKey = "trace_id"

// SuccessResponse is the {"data", "meta"} envelope of every 2xx JSON body.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the registered response for code with the request's trace id.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	return RespondError(c, errors.NewErrorResponse(code, getTraceID(c), opts...))
}

// RespondError writes an already built error response.
func RespondError(c echo.Context, errorResponse *ErrorResponse) error {
	if seconds := errors.RetryAfterSeconds(errors.ErrorCode(errorResponse.Error.Code)); seconds > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError answers 500 without exposing err.
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
