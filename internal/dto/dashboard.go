package dto

import (
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/validation"
)

const (
	DefaultSummaryLimit = 50
	MaxSummaryLimit     = 500
)

// SummaryQuery is the query string accepted by the attendance and sales
// summaries and their exports.
type SummaryQuery struct {
	DateFrom string `query:"date_from" validate:"omitempty,date_ymd"`
	DateTo   string `query:"date_to" validate:"omitempty,date_ymd,date_gtefield=DateFrom"`
	DriverID string `query:"driver_id" validate:"omitempty,max=64"`
	Limit    int    `query:"limit" validate:"min=1,max=500"`
}

// NewSummaryQuery returns a query with defaults applied before binding.
func NewSummaryQuery() SummaryQuery {
	return SummaryQuery{Limit: DefaultSummaryLimit}
}

// AttendanceFilter converts the query into a backend attendance filter.
// The query must have passed validation.
func (q SummaryQuery) AttendanceFilter() models.AttendanceFilter {
	from, _ := validation.ParseDate(q.DateFrom)
	to, _ := validation.ParseDate(q.DateTo)
	return models.AttendanceFilter{DateFrom: from, DateTo: to, DriverID: q.DriverID}
}

// TripFilter converts the query into a backend trip filter.
// The query must have passed validation.
func (q SummaryQuery) TripFilter() models.TripFilter {
	from, _ := validation.ParseDate(q.DateFrom)
	to, _ := validation.ParseDate(q.DateTo)
	return models.TripFilter{DateFrom: from, DateTo: to, DriverID: q.DriverID}
}

// Metadata is recorded with the audit entry for the request.
func (q SummaryQuery) Metadata() map[string]interface{} {
	m := map[string]interface{}{"limit": q.Limit}
	if q.DateFrom != "" {
		m["date_from"] = q.DateFrom
	}
	if q.DateTo != "" {
		m["date_to"] = q.DateTo
	}
	if q.DriverID != "" {
		m["driver_id"] = q.DriverID
	}
	return m
}
