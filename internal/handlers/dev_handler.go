package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "fleet-dashboard/internal/errors"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/services"
	"fleet-dashboard/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	tokens services.TokenServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(tokens services.TokenServiceInterface) *DevHandler {
	return &DevHandler{tokens: tokens}
}

// IssueTokenRequest asks for a locally signed access token.
type IssueTokenRequest struct {
	UserID string `json:"user_id" validate:"omitempty,max=255"`
	Email  string `json:"email" validate:"omitempty,email"`
	Role   string `json:"role" validate:"omitempty,oneof=viewer admin"`
}

// IssueToken signs an access token so the API can be exercised without the
// back-office identity provider.
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Request body (all optional):
//   - user_id: defaults to a random UUID
//   - email: copied into the token
//   - role: "viewer" (default) or "admin"
//
// Success Response: 201 Created
//   - access_token, token_type, expires_at
//
// Error Responses:
//   - 400: Invalid body
//   - 403: No signing key configured (AUTH_005)
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	if req.UserID == "" {
		req.UserID = uuid.New().String()
	}
	if req.Role == "" {
		req.Role = models.RoleViewer
	}

	token, expiresAt, err := h.tokens.GenerateAccessToken(req.UserID, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrSigningDisabled) {
			return SendError(c, apierrors.AuthTokenIssuingDisabled)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: map[string]interface{}{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_at":   expiresAt.UTC().Format(time.RFC3339),
			"user_id":      req.UserID,
			"role":         req.Role,
		},
	})
}
