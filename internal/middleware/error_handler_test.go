package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-dashboard/internal/backend"
	"fleet-dashboard/internal/dto"
	"fleet-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

type errorBody struct {
	Error struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
		TraceID string   `json:"trace_id"`
	} `json:"error"`
}

// handle runs the error handler for err and decodes the envelope.
func (s *ErrorHandlerTestSuite) handle(err error, traceID string) (*httptest.ResponseRecorder, errorBody) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/trips/sales/summary", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	CustomHTTPErrorHandler(err, c)

	var body errorBody
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoErrorKeepsStatusAndMessage() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusBadRequest, "malformed query"), "trace-42")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.Equal("malformed query", body.Error.Message)
	s.Equal("trace-42", body.Error.TraceID)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestStatusToCode() {
	cases := map[int]string{
		http.StatusBadRequest:          "VALIDATION_001",
		http.StatusUnprocessableEntity: "VALIDATION_001",
		http.StatusUnauthorized:        "AUTH_001",
		http.StatusForbidden:           "AUTH_004",
		http.StatusNotFound:            "SYSTEM_008",
		http.StatusMethodNotAllowed:    "SYSTEM_008",
		http.StatusTooManyRequests:     "SYSTEM_006",
		http.StatusInternalServerError: "SYSTEM_001",
		http.StatusServiceUnavailable:  "SYSTEM_003",
		http.StatusGatewayTimeout:      "BACKEND_002",
		http.StatusTeapot:              "SYSTEM_005",
	}

	for status, want := range cases {
		rec, body := s.handle(echo.NewHTTPError(status), "trace-42")
		s.Equal(status, rec.Code, want)
		s.Equal(want, body.Error.Code, http.StatusText(status))
	}
}

func (s *ErrorHandlerTestSuite) TestUnknownRouteThroughRouter() {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/payroll", nil))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_008")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	err := validation.GetValidator().GetValidate().Struct(dto.SummaryQuery{DateFrom: "03/01/2026", Limit: 1000})
	s.Require().Error(err)

	rec, body := s.handle(err, "trace-42")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.NotEmpty(body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestUpstreamErrors() {
	cases := []struct {
		name       string
		err        error
		status     int
		code       string
		retryAfter string
	}{
		{"breaker open", fmt.Errorf("list trips: %w", backend.ErrUnavailable), http.StatusServiceUnavailable, "BACKEND_001", "30"},
		{"non-2xx", &backend.StatusError{Path: backend.PathTrips, StatusCode: http.StatusBadGateway}, http.StatusServiceUnavailable, "BACKEND_001", "30"},
		{"deadline", fmt.Errorf("fetch: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "BACKEND_002", "5"},
		{"cancelled", context.Canceled, http.StatusRequestTimeout, "SYSTEM_007", ""},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec, body := s.handle(tc.err, "trace-42")

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, body.Error.Code)
			s.Equal(tc.retryAfter, rec.Header().Get("Retry-After"))
		})
	}
}

func (s *ErrorHandlerTestSuite) TestPlainErrorBecomesSystemError() {
	rec, body := s.handle(errors.New("nil pointer somewhere"), "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.Equal("unknown", body.Error.TraceID)
	s.NotContains(rec.Body.String(), "nil pointer")
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	CustomHTTPErrorHandler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}
