package services

import (
	"context"
	"log/slog"
	"time"

	"fleet-dashboard/internal/aggregates"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/repositories"
)

type salesService struct {
	repo    repositories.TripRepositoryInterface
	metrics MetricsRecorderInterface
	now     func() time.Time
}

func NewSalesService(
	repo repositories.TripRepositoryInterface,
	metrics MetricsRecorderInterface,
) SalesServiceInterface {
	return &salesService{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

// GetSummary splits trip earnings into cash and digital sales. The per-driver
// breakdown is ranked over every driver before limit is applied.
func (s *salesService) GetSummary(ctx context.Context, filter models.TripFilter, limit int) (*models.SalesSummary, error) {
	run := newViewRun(models.SectionSales, s.metrics)

	trips, err := s.repo.List(ctx, filter)
	if err != nil {
		if err := run.degrade(ctx, "trips", err); err != nil {
			return nil, err
		}
		trips = nil
	}

	stats := aggregates.Sales(trips)
	run.unrecognized("payment_method", stats.UnbucketedTrips)

	drivers := aggregates.SalesByDriver(trips, 0)
	totalDrivers := len(drivers)
	if limit > 0 && len(drivers) > limit {
		drivers = drivers[:limit]
	}

	now := s.now()
	summary := &models.SalesSummary{
		Stats:        stats,
		Drivers:      drivers,
		TotalDrivers: totalDrivers,
		GeneratedAt:  now,
	}
	summary.Notices = run.finish(now)

	slog.Info("sales summary generated",
		"trips", stats.TotalTrips,
		"cash_trips", stats.CashTrips,
		"digital_trips", stats.DigitalTrips,
		"total_earnings", stats.TotalEarnings.String(),
		"drivers", totalDrivers,
		"limit", limitLabel(limit))

	return summary, nil
}
