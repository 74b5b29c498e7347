package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fleet-dashboard/internal/dto"
	apierrors "fleet-dashboard/internal/errors"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/services"
	"fleet-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler serves the read-only summary views and their exports.
type DashboardHandler struct {
	overview   services.OverviewServiceInterface
	attendance services.AttendanceServiceInterface
	budgets    services.BudgetServiceInterface
	bank       services.BankServiceInterface
	sales      services.SalesServiceInterface
	fleet      services.FleetServiceInterface
	exports    services.ExportServiceInterface
	audit      services.AuditServiceInterface
	now        func() time.Time
}

// DashboardServices groups the services a DashboardHandler reads from.
type DashboardServices struct {
	Overview   services.OverviewServiceInterface
	Attendance services.AttendanceServiceInterface
	Budgets    services.BudgetServiceInterface
	Bank       services.BankServiceInterface
	Sales      services.SalesServiceInterface
	Fleet      services.FleetServiceInterface
	Exports    services.ExportServiceInterface
	Audit      services.AuditServiceInterface
}

func NewDashboardHandler(svc DashboardServices) *DashboardHandler {
	return &DashboardHandler{
		overview:   svc.Overview,
		attendance: svc.Attendance,
		budgets:    svc.Budgets,
		bank:       svc.Bank,
		sales:      svc.Sales,
		fleet:      svc.Fleet,
		exports:    svc.Exports,
		audit:      svc.Audit,
		now:        time.Now,
	}
}

// GetOverview returns every summary at once
//
// Method: GET /api/v1/dashboard/overview
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - data: attendance, budgets, bank_accounts, sales, drivers, vehicles, generated_at
//   - meta.degraded: true when any collection could not be loaded
//   - meta.notices: one entry per collection that could not be loaded
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 408: Request cancelled
//   - 504: Back-office service timed out
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	overview, err := h.overview.GetOverview(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionOverviewViewed, models.SectionOverview, nil)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: overview,
		Meta: summaryMeta(overview.Notices()),
	})
}

// GetAttendanceSummary returns fleet attendance statistics and the at-risk list
//
// Method: GET /api/v1/hr/attendance/summary
// Authentication: Required (JWT)
//
// Query parameters:
//   - date_from, date_to: YYYY-MM-DD, inclusive (optional)
//   - driver_id: restrict to one driver (optional)
//   - limit: at-risk rows to return, 1..500 (default 50)
//
// Error Responses:
//   - 400: Invalid query parameters
//   - 401: Unauthorized (missing JWT)
func (h *DashboardHandler) GetAttendanceSummary(c echo.Context) error {
	q, errResp := bindSummaryQuery(c)
	if errResp != nil {
		return RespondError(c, errResp)
	}

	summary, err := h.attendance.GetSummary(c.Request().Context(), q.AttendanceFilter(), q.Limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionSummaryViewed, models.SectionAttendance, q.Metadata())

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary, Meta: summaryMeta(summary.Notices)})
}

// ExportAtRiskDrivers downloads the at-risk driver list as XLSX
//
// Method: GET /api/v1/hr/attendance/at-risk/export
// Authentication: Required (JWT)
//
// Query parameters: same as GetAttendanceSummary, limit is ignored
//
// Error Responses:
//   - 400: Invalid query parameters
//   - 404: No driver is at risk (EXPORT_001)
//   - 502: Attendance could not be loaded (EXPORT_002)
func (h *DashboardHandler) ExportAtRiskDrivers(c echo.Context) error {
	q, errResp := bindSummaryQuery(c)
	if errResp != nil {
		return RespondError(c, errResp)
	}

	data, err := h.exports.ExportAtRiskDrivers(c.Request().Context(), q.AttendanceFilter())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionSummaryExported, models.SectionAttendance, q.Metadata())

	return h.sendWorkbook(c, "at-risk-drivers", data)
}

// GetBudgetSummary returns budget variance statistics
//
// Method: GET /api/v1/accounting/budgets/summary
// Authentication: Required (JWT)
func (h *DashboardHandler) GetBudgetSummary(c echo.Context) error {
	summary, err := h.budgets.GetSummary(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionSummaryViewed, models.SectionBudgets, nil)

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary, Meta: summaryMeta(summary.Notices)})
}

// GetBankSummary returns bank balances and 30-day cash flow
//
// Method: GET /api/v1/accounting/bank-accounts/summary
// Authentication: Required (JWT)
func (h *DashboardHandler) GetBankSummary(c echo.Context) error {
	summary, err := h.bank.GetSummary(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionSummaryViewed, models.SectionBank, nil)

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary, Meta: summaryMeta(summary.Notices)})
}

// GetSalesSummary returns cash-vs-digital sales statistics and the per-driver breakdown
//
// Method: GET /api/v1/trips/sales/summary
// Authentication: Required (JWT)
//
// Query parameters:
//   - date_from, date_to: YYYY-MM-DD, inclusive (optional)
//   - driver_id: restrict to one driver (optional)
//   - limit: driver rows to return, 1..500 (default 50)
func (h *DashboardHandler) GetSalesSummary(c echo.Context) error {
	q, errResp := bindSummaryQuery(c)
	if errResp != nil {
		return RespondError(c, errResp)
	}

	summary, err := h.sales.GetSummary(c.Request().Context(), q.TripFilter(), q.Limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionSummaryViewed, models.SectionSales, q.Metadata())

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary, Meta: summaryMeta(summary.Notices)})
}

// ExportSales downloads the sales summary and full driver breakdown as XLSX
//
// Method: GET /api/v1/trips/sales/export
// Authentication: Required (JWT)
func (h *DashboardHandler) ExportSales(c echo.Context) error {
	q, errResp := bindSummaryQuery(c)
	if errResp != nil {
		return RespondError(c, errResp)
	}

	data, err := h.exports.ExportSales(c.Request().Context(), q.TripFilter())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionSummaryExported, models.SectionSales, q.Metadata())

	return h.sendWorkbook(c, "sales", data)
}

// GetDriverSummary returns driver register statistics
//
// Method: GET /api/v1/fleet/drivers/summary
// Authentication: Required (JWT)
func (h *DashboardHandler) GetDriverSummary(c echo.Context) error {
	summary, err := h.fleet.GetDriverSummary(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionSummaryViewed, models.SectionDrivers, nil)

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary, Meta: summaryMeta(summary.Notices)})
}

// GetVehicleSummary returns vehicle register statistics
//
// Method: GET /api/v1/fleet/vehicles/summary
// Authentication: Required (JWT)
func (h *DashboardHandler) GetVehicleSummary(c echo.Context) error {
	summary, err := h.fleet.GetVehicleSummary(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.record(c, models.AuditActionSummaryViewed, models.SectionVehicles, nil)

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary, Meta: summaryMeta(summary.Notices)})
}

// bindSummaryQuery parses and validates the shared summary filters. A
// non-nil response is the 400 to send instead.
func bindSummaryQuery(c echo.Context) (dto.SummaryQuery, *ErrorResponse) {
	q := dto.NewSummaryQuery()
	if err := c.Bind(&q); err != nil {
		return q, apierrors.NewErrorResponse(apierrors.ValidationInvalidFormat, getTraceID(c),
			apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(q); err != nil {
		return q, apierrors.NewErrorResponse(apierrors.ValidationGeneral, getTraceID(c),
			apierrors.WithDetails(validation.FormatErrors(err)...))
	}
	return q, nil
}

func (h *DashboardHandler) record(c echo.Context, action, resource string, metadata map[string]interface{}) {
	if h.audit == nil {
		return
	}
	h.audit.Record(c.Request().Context(), newAuditEntry(c, action, resource, metadata))
}

func (h *DashboardHandler) sendWorkbook(c echo.Context, name string, data []byte) error {
	filename := fmt.Sprintf("%s-%s.xlsx", name, h.now().UTC().Format(validation.DateLayout))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

func (h *DashboardHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return SendError(c, apierrors.SystemRequestCancelled)
	case errors.Is(err, context.DeadlineExceeded):
		return SendError(c, apierrors.BackendTimeout)
	case errors.Is(err, services.ErrExportEmpty):
		return SendError(c, apierrors.ExportNoData)
	case errors.Is(err, services.ErrExportUnavailable):
		return SendError(c, apierrors.ExportDataUnavailable)
	}

	slog.Error("dashboard request failed",
		"path", c.Path(),
		"trace_id", getTraceID(c),
		"error", err)
	return SendSystemError(c, err)
}

// summaryMeta flags responses computed over partially missing data.
func summaryMeta(notices []models.Notice) map[string]interface{} {
	meta := map[string]interface{}{"degraded": len(notices) > 0}
	if len(notices) > 0 {
		meta["notices"] = notices
	}
	return meta
}
