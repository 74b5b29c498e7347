package services

import (
	"context"
	"log/slog"
	"time"

	"fleet-dashboard/internal/aggregates"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/repositories"
)

type fleetService struct {
	repo    repositories.FleetRepositoryInterface
	metrics MetricsRecorderInterface
	now     func() time.Time
}

func NewFleetService(
	repo repositories.FleetRepositoryInterface,
	metrics MetricsRecorderInterface,
) FleetServiceInterface {
	return &fleetService{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

func (s *fleetService) GetDriverSummary(ctx context.Context) (*models.DriverSummary, error) {
	run := newViewRun(models.SectionDrivers, s.metrics)

	drivers, err := s.repo.ListDrivers(ctx)
	if err != nil {
		if err := run.degrade(ctx, "drivers", err); err != nil {
			return nil, err
		}
		drivers = nil
	}

	now := s.now()
	summary := &models.DriverSummary{
		Stats:       aggregates.Drivers(drivers, now),
		GeneratedAt: now,
	}
	summary.Notices = run.finish(now)

	slog.Info("driver summary generated",
		"drivers", summary.Stats.TotalDrivers,
		"expiring_documents", summary.Stats.ExpiringDocuments,
		"new_this_month", summary.Stats.NewThisMonth)

	return summary, nil
}

func (s *fleetService) GetVehicleSummary(ctx context.Context) (*models.VehicleSummary, error) {
	run := newViewRun(models.SectionVehicles, s.metrics)

	vehicles, err := s.repo.ListVehicles(ctx)
	if err != nil {
		if err := run.degrade(ctx, "vehicles", err); err != nil {
			return nil, err
		}
		vehicles = nil
	}

	now := s.now()
	summary := &models.VehicleSummary{
		Stats:       aggregates.Vehicles(vehicles, now),
		GeneratedAt: now,
	}
	summary.Notices = run.finish(now)

	slog.Info("vehicle summary generated",
		"vehicles", summary.Stats.TotalVehicles,
		"expiring_documents", summary.Stats.ExpiringDocuments,
		"without_driver", summary.Stats.WithoutDriver)

	return summary, nil
}
