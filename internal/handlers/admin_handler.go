package handlers

import (
	"errors"
	"net/http"

	"fleet-dashboard/internal/dto"
	apierrors "fleet-dashboard/internal/errors"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/services"
	"fleet-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// AdminHandler handles admin-related endpoints
type AdminHandler struct {
	audit services.AuditServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(audit services.AuditServiceInterface) *AdminHandler {
	return &AdminHandler{audit: audit}
}

// ListAuditLogs lists who viewed or exported which summary
// @Summary List audit logs (admin)
// @Description Admin endpoint to page through the dashboard audit trail
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param user_id query string false "Filter by user"
// @Param action query string false "Filter by action"
// @Param resource query string false "Filter by dashboard section"
// @Param start_date query string false "YYYY-MM-DD, inclusive"
// @Param end_date query string false "YYYY-MM-DD, inclusive"
// @Success 200 {object} SuccessResponse "Audit logs with pagination metadata"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Failure 400 {object} errors.ErrorResponse "AUDIT_001 - Start date after end date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "AUDIT_002 - Audit store unavailable"
// @Router /admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	q := dto.NewAuditLogQuery()
	if err := c.Bind(&q); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(q); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validation.FormatErrors(err)...))
	}

	ctx := c.Request().Context()
	logs, total, err := h.audit.List(ctx, q.Filter(), q.Offset(), q.Limit)
	if err != nil {
		if errors.Is(err, services.ErrAuditDateRange) {
			return SendError(c, apierrors.AuditInvalidDateRange)
		}
		return SendError(c, apierrors.AuditQueryFailed)
	}

	h.audit.Record(ctx, newAuditEntry(c, models.AuditActionAuditLogsViewed, models.SectionAuditLogs, map[string]interface{}{
		"page":  q.Page,
		"limit": q.Limit,
	}))

	if logs == nil {
		logs = []*models.AuditLog{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: dto.NewPaginationMeta(q.Page, q.Limit, total),
	})
}
