package repositories

import (
	"context"
	"net/url"
	"time"

	"fleet-dashboard/internal/models"
)

// BackendClient is the read side of the back-office REST client.
type BackendClient interface {
	List(ctx context.Context, path string, query url.Values, dest interface{}) error
}

// AttendanceRepositoryInterface defines the contract for attendance record access
type AttendanceRepositoryInterface interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error)
}

// BudgetRepositoryInterface defines the contract for budget, performance and alert access
type BudgetRepositoryInterface interface {
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	ListPerformance(ctx context.Context) ([]models.BudgetPerformance, error)
	ListAlerts(ctx context.Context) ([]models.BudgetAlert, error)
}

// BankRepositoryInterface defines the contract for bank account and transaction access
type BankRepositoryInterface interface {
	ListAccounts(ctx context.Context) ([]models.BankAccount, error)
	ListTransactions(ctx context.Context, since *time.Time) ([]models.BankTransaction, error)
}

// TripRepositoryInterface defines the contract for trip access
type TripRepositoryInterface interface {
	List(ctx context.Context, filter models.TripFilter) ([]models.Trip, error)
}

// FleetRepositoryInterface defines the contract for driver and vehicle roster access
type FleetRepositoryInterface interface {
	ListDrivers(ctx context.Context) ([]models.Driver, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, filter models.AuditLogFilter, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
