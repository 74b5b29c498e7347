package main

import (
	"net/http"

	"fleet-dashboard/internal/config"
	"fleet-dashboard/internal/handlers"
	"fleet-dashboard/internal/middleware"
	"fleet-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDeps struct {
	dashboard *handlers.DashboardHandler
	admin     *handlers.AdminHandler
	health    *handlers.HealthCheckHandler
	dev       *handlers.DevHandler
	tokens    services.TokenServiceInterface
	limiter   *middleware.IPRateLimiter
}

func newServer(cfg *config.Config, deps routeDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	// Order matters: the trace id must exist before recovery and error logging.
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{echo.HeaderContentDisposition, middleware.TraceIDHeader},
	}))

	e.GET("/health", deps.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.Use(deps.limiter.Middleware())

	if cfg.IsDevelopment() {
		api.POST("/dev/token", deps.dev.IssueToken)
	}

	secured := api.Group("", middleware.RequireAuth(deps.tokens))

	secured.GET("/dashboard/overview", deps.dashboard.GetOverview)

	secured.GET("/hr/attendance/summary", deps.dashboard.GetAttendanceSummary)
	secured.GET("/hr/attendance/at-risk/export", deps.dashboard.ExportAtRiskDrivers)

	secured.GET("/accounting/budgets/summary", deps.dashboard.GetBudgetSummary)
	secured.GET("/accounting/bank-accounts/summary", deps.dashboard.GetBankSummary)

	secured.GET("/trips/sales/summary", deps.dashboard.GetSalesSummary)
	secured.GET("/trips/sales/export", deps.dashboard.ExportSales)

	secured.GET("/fleet/drivers/summary", deps.dashboard.GetDriverSummary)
	secured.GET("/fleet/vehicles/summary", deps.dashboard.GetVehicleSummary)

	admin := secured.Group("/admin", middleware.RequireAdmin())
	admin.GET("/audit-logs", deps.admin.ListAuditLogs)

	return e
}
