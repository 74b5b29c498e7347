package dto

import (
	"time"

	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/validation"
)

// AuditLogQuery represents query parameters for listing audit logs
type AuditLogQuery struct {
	Page      int    `query:"page" validate:"min=1"`
	Limit     int    `query:"limit" validate:"min=1,max=100"`
	UserID    string `query:"user_id" validate:"omitempty,max=255"`
	Action    string `query:"action" validate:"audit_action"`
	Resource  string `query:"resource" validate:"dashboard_section"`
	StartDate string `query:"start_date" validate:"omitempty,date_ymd"`
	EndDate   string `query:"end_date" validate:"omitempty,date_ymd"`
}

// NewAuditLogQuery returns a query with defaults applied before binding.
func NewAuditLogQuery() AuditLogQuery {
	return AuditLogQuery{Page: 1, Limit: 20}
}

// Offset is the row offset of the requested page.
func (q AuditLogQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Filter converts the query into a repository filter. The end date is
// inclusive, so it is moved to the last instant of that day.
func (q AuditLogQuery) Filter() models.AuditLogFilter {
	filter := models.AuditLogFilter{
		UserID:   q.UserID,
		Action:   q.Action,
		Resource: q.Resource,
	}
	filter.StartDate, _ = validation.ParseDate(q.StartDate)
	if end, _ := validation.ParseDate(q.EndDate); end != nil {
		endOfDay := end.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &endOfDay
	}
	return filter
}

// PaginationMeta represents pagination metadata in list responses
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewPaginationMeta computes the page count for a listing.
func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return PaginationMeta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
