package repositories

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"fleet-dashboard/internal/backend"
	"fleet-dashboard/internal/models"
)

const dateLayout = "2006-01-02"

func rangeQuery(from, to *time.Time, driverID string) url.Values {
	query := url.Values{}
	if from != nil {
		query.Set("date_from", from.Format(dateLayout))
	}
	if to != nil {
		query.Set("date_to", to.Format(dateLayout))
	}
	if driverID != "" {
		query.Set("driver_id", driverID)
	}
	return query
}

// AttendanceRepository reads attendance records from /hr/attendance/.
type AttendanceRepository struct {
	client BackendClient
}

func NewAttendanceRepository(client BackendClient) AttendanceRepositoryInterface {
	return &AttendanceRepository{client: client}
}

func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	query := rangeQuery(filter.DateFrom, filter.DateTo, filter.DriverID)
	if err := r.client.List(ctx, backend.PathAttendance, query, &records); err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// BudgetRepository reads budgets, their performance and alerts.
type BudgetRepository struct {
	client BackendClient
}

func NewBudgetRepository(client BackendClient) BudgetRepositoryInterface {
	return &BudgetRepository{client: client}
}

func (r *BudgetRepository) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.client.List(ctx, backend.PathBudgets, nil, &budgets); err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepository) ListPerformance(ctx context.Context) ([]models.BudgetPerformance, error) {
	var performance []models.BudgetPerformance
	if err := r.client.List(ctx, backend.PathBudgetPerformance, nil, &performance); err != nil {
		return nil, fmt.Errorf("failed to list budget performance: %w", err)
	}
	return performance, nil
}

func (r *BudgetRepository) ListAlerts(ctx context.Context) ([]models.BudgetAlert, error) {
	var alerts []models.BudgetAlert
	if err := r.client.List(ctx, backend.PathBudgetAlerts, nil, &alerts); err != nil {
		return nil, fmt.Errorf("failed to list budget alerts: %w", err)
	}
	return alerts, nil
}

// BankRepository reads bank accounts and recent transactions.
type BankRepository struct {
	client BackendClient
}

func NewBankRepository(client BackendClient) BankRepositoryInterface {
	return &BankRepository{client: client}
}

func (r *BankRepository) ListAccounts(ctx context.Context) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	if err := r.client.List(ctx, backend.PathBankAccounts, nil, &accounts); err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return accounts, nil
}

// ListTransactions narrows the request by date when since is set; the cash
// flow window itself is still applied by the aggregator.
func (r *BankRepository) ListTransactions(ctx context.Context, since *time.Time) ([]models.BankTransaction, error) {
	var transactions []models.BankTransaction
	query := rangeQuery(since, nil, "")
	if err := r.client.List(ctx, backend.PathTransactions, query, &transactions); err != nil {
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}
	return transactions, nil
}

// TripRepository reads trips from /trips/trips/.
type TripRepository struct {
	client BackendClient
}

func NewTripRepository(client BackendClient) TripRepositoryInterface {
	return &TripRepository{client: client}
}

func (r *TripRepository) List(ctx context.Context, filter models.TripFilter) ([]models.Trip, error) {
	var trips []models.Trip
	query := rangeQuery(filter.DateFrom, filter.DateTo, filter.DriverID)
	if err := r.client.List(ctx, backend.PathTrips, query, &trips); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// FleetRepository reads the driver and vehicle registers.
type FleetRepository struct {
	client BackendClient
}

func NewFleetRepository(client BackendClient) FleetRepositoryInterface {
	return &FleetRepository{client: client}
}

func (r *FleetRepository) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := r.client.List(ctx, backend.PathDrivers, nil, &drivers); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

func (r *FleetRepository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.client.List(ctx, backend.PathVehicles, nil, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}
