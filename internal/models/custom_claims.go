package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleViewer = "viewer"
	RoleAdmin  = "admin"

	TokenTypeAccess = "access"
)

// CustomClaims represents the claims carried by the dashboard's access tokens.
// Tokens are issued upstream; this service only verifies them.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

func (c *CustomClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
