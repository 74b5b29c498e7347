package services

import (
	"context"
	"log/slog"
	"time"

	"fleet-dashboard/internal/aggregates"
	"fleet-dashboard/internal/models"

	"golang.org/x/sync/errgroup"
)

type overviewService struct {
	attendance AttendanceServiceInterface
	budgets    BudgetServiceInterface
	bank       BankServiceInterface
	sales      SalesServiceInterface
	fleet      FleetServiceInterface
	now        func() time.Time
}

func NewOverviewService(
	attendance AttendanceServiceInterface,
	budgets BudgetServiceInterface,
	bank BankServiceInterface,
	sales SalesServiceInterface,
	fleet FleetServiceInterface,
) OverviewServiceInterface {
	return &overviewService{
		attendance: attendance,
		budgets:    budgets,
		bank:       bank,
		sales:      sales,
		fleet:      fleet,
		now:        time.Now,
	}
}

// GetOverview builds every view in parallel and returns once all of them
// have resolved. Individual fetch failures show up as notices on the view.
func (s *overviewService) GetOverview(ctx context.Context) (*models.DashboardOverview, error) {
	started := time.Now()
	overview := &models.DashboardOverview{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.Attendance, err = s.attendance.GetSummary(gctx, models.AttendanceFilter{}, 0)
		return err
	})
	g.Go(func() (err error) {
		overview.Budgets, err = s.budgets.GetSummary(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Bank, err = s.bank.GetSummary(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Sales, err = s.sales.GetSummary(gctx, models.TripFilter{}, aggregates.DefaultDriverSalesLimit)
		return err
	})
	g.Go(func() (err error) {
		overview.Drivers, err = s.fleet.GetDriverSummary(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Vehicles, err = s.fleet.GetVehicleSummary(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview.GeneratedAt = s.now()

	slog.Info("dashboard overview generated",
		"notices", len(overview.Notices()),
		"duration_ms", time.Since(started).Milliseconds())

	return overview, nil
}
