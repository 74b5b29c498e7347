package services

import (
	"context"
	"time"

	"fleet-dashboard/internal/models"
)

// AttendanceServiceInterface builds the attendance risk view
type AttendanceServiceInterface interface {
	GetSummary(ctx context.Context, filter models.AttendanceFilter, limit int) (*models.AttendanceSummary, error)
}

// BudgetServiceInterface builds the budget variance view
type BudgetServiceInterface interface {
	GetSummary(ctx context.Context) (*models.BudgetSummary, error)
}

// BankServiceInterface builds the bank account and cash flow view
type BankServiceInterface interface {
	GetSummary(ctx context.Context) (*models.BankSummary, error)
}

// SalesServiceInterface builds the cash-vs-digital sales view
type SalesServiceInterface interface {
	GetSummary(ctx context.Context, filter models.TripFilter, limit int) (*models.SalesSummary, error)
}

// FleetServiceInterface builds the driver and vehicle register views
type FleetServiceInterface interface {
	GetDriverSummary(ctx context.Context) (*models.DriverSummary, error)
	GetVehicleSummary(ctx context.Context) (*models.VehicleSummary, error)
}

// OverviewServiceInterface builds every view at once
type OverviewServiceInterface interface {
	GetOverview(ctx context.Context) (*models.DashboardOverview, error)
}

// ExportServiceInterface renders views as XLSX workbooks
type ExportServiceInterface interface {
	ExportAtRiskDrivers(ctx context.Context, filter models.AttendanceFilter) ([]byte, error)
	ExportSales(ctx context.Context, filter models.TripFilter) ([]byte, error)
}

// AuditServiceInterface defines the contract for audit trail operations
type AuditServiceInterface interface {
	Record(ctx context.Context, entry AuditEntry)
	List(ctx context.Context, filter models.AuditLogFilter, offset, limit int) ([]*models.AuditLog, int64, error)
	Purge(ctx context.Context, retention time.Duration) (int64, error)
}

// TokenServiceInterface defines the contract for JWT validation
type TokenServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GenerateAccessToken(userID, email, role string) (string, time.Time, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, delta float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	RecordBackendRequest(path, outcome string, duration time.Duration)
}

// CircuitBreakerInterface defines the contract for circuit breaker pattern
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
