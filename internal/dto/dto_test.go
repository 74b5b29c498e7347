package dto

import (
	"testing"
	"time"

	"fleet-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryQuery_Filters(t *testing.T) {
	q := SummaryQuery{DateFrom: "2024-01-01", DateTo: "2024-01-31", DriverID: "42", Limit: 10}

	attendance := q.AttendanceFilter()
	require.NotNil(t, attendance.DateFrom)
	require.NotNil(t, attendance.DateTo)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *attendance.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *attendance.DateTo)
	assert.Equal(t, "42", attendance.DriverID)

	trips := q.TripFilter()
	assert.Equal(t, attendance.DateFrom, trips.DateFrom)
	assert.Equal(t, "42", trips.DriverID)
}

func TestSummaryQuery_EmptyDates(t *testing.T) {
	q := NewSummaryQuery()

	assert.Equal(t, DefaultSummaryLimit, q.Limit)
	assert.Equal(t, models.TripFilter{}, q.TripFilter())
	assert.Equal(t, map[string]interface{}{"limit": DefaultSummaryLimit}, q.Metadata())
}

func TestSummaryQuery_Metadata(t *testing.T) {
	q := SummaryQuery{DateFrom: "2024-01-01", DriverID: "7", Limit: 5}

	assert.Equal(t, map[string]interface{}{
		"limit":     5,
		"date_from": "2024-01-01",
		"driver_id": "7",
	}, q.Metadata())
}

func TestAuditLogQuery_Filter(t *testing.T) {
	q := AuditLogQuery{Page: 3, Limit: 20, Action: models.AuditActionSummaryExported, StartDate: "2024-05-01", EndDate: "2024-05-01"}

	filter := q.Filter()

	assert.Equal(t, 40, q.Offset())
	assert.Equal(t, models.AuditActionSummaryExported, filter.Action)
	require.NotNil(t, filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.True(t, filter.EndDate.After(*filter.StartDate))
	assert.Equal(t, 1, filter.EndDate.Add(time.Nanosecond).Day()-filter.StartDate.Day())
}

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, PaginationMeta{Page: 1, Limit: 20, Total: 41, TotalPages: 3}, NewPaginationMeta(1, 20, 41))
	assert.Equal(t, int64(0), NewPaginationMeta(1, 0, 10).TotalPages)
	assert.Equal(t, int64(0), NewPaginationMeta(1, 20, 0).TotalPages)
}
