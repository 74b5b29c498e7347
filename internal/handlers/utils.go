package handlers

import (
	"fmt"
	"strings"

	"fleet-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// Keys set by the auth middleware.
const (
	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
	UserRoleContextKey  = "user_role"
	IsAdminContextKey   = "is_admin"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns ErrUnauthorized if the user ID is missing or empty.
func getUserIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get(UserIDContextKey).(string)
	if !ok || userID == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}

func getUserRoleFromContext(c echo.Context) string {
	role, _ := c.Get(UserRoleContextKey).(string)
	return role
}

// getIsAdminFromContext extracts the is_admin boolean from context
// Returns false if the value is not set or not a boolean
func getIsAdminFromContext(c echo.Context) bool {
	isAdmin, ok := c.Get(IsAdminContextKey).(bool)
	if !ok {
		return false
	}
	return isAdmin
}

// newAuditEntry describes the current request for the audit trail.
func newAuditEntry(c echo.Context, action, resource string, metadata map[string]interface{}) services.AuditEntry {
	userID, _ := getUserIDFromContext(c)
	return services.AuditEntry{
		UserID:    userID,
		UserRole:  getUserRoleFromContext(c),
		Action:    action,
		Resource:  resource,
		TraceID:   getTraceID(c),
		IPAddress: ClientIP(c),
		UserAgent: c.Request().UserAgent(),
		Metadata:  metadata,
	}
}

// ClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then the
// remote address without its port.
func ClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	addr := c.Request().RemoteAddr
	if i := strings.LastIndex(addr, ":"); i > 0 && !strings.HasSuffix(addr, "]") {
		return strings.Trim(addr[:i], "[]")
	}
	return addr
}
