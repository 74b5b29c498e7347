package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "fleet-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordedContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func TestSendError_RetryAfter(t *testing.T) {
	testCases := []struct {
		code       apierrors.ErrorCode
		status     int
		retryAfter string
	}{
		{apierrors.BackendUnavailable, http.StatusServiceUnavailable, "30"},
		{apierrors.BackendTimeout, http.StatusGatewayTimeout, "5"},
		{apierrors.SystemRateLimitExceeded, http.StatusTooManyRequests, "1"},
		{apierrors.ValidationGeneral, http.StatusBadRequest, ""},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			c, rec := newRecordedContext()

			require.NoError(t, SendError(c, tc.code))

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.retryAfter, rec.Header().Get("Retry-After"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(tc.code), body.Error.Code)
			assert.Equal(t, "trace-123", body.Error.TraceID)
		})
	}
}

func TestSendSystemError_HidesCause(t *testing.T) {
	c, rec := newRecordedContext()

	require.NoError(t, SendSystemError(c, errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "SYSTEM_001")
}
