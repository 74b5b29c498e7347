package services

import (
	"context"
	"log/slog"
	"time"

	"fleet-dashboard/internal/aggregates"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/repositories"
)

type attendanceService struct {
	repo    repositories.AttendanceRepositoryInterface
	metrics MetricsRecorderInterface
	now     func() time.Time
}

func NewAttendanceService(
	repo repositories.AttendanceRepositoryInterface,
	metrics MetricsRecorderInterface,
) AttendanceServiceInterface {
	return &attendanceService{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

// GetSummary aggregates the filtered attendance records. limit caps the
// at-risk list after ranking; zero keeps every driver.
func (s *attendanceService) GetSummary(ctx context.Context, filter models.AttendanceFilter, limit int) (*models.AttendanceSummary, error) {
	run := newViewRun(models.SectionAttendance, s.metrics)

	records, err := s.repo.List(ctx, filter)
	if err != nil {
		if err := run.degrade(ctx, "attendance records", err); err != nil {
			return nil, err
		}
		records = nil
	}

	stats := aggregates.Attendance(records)
	run.unrecognized("attendance_status", stats.UnrecognizedStatuses)

	atRisk := aggregates.AtRiskDrivers(&stats)
	if limit > 0 && len(atRisk) > limit {
		atRisk = atRisk[:limit]
	}

	now := s.now()
	summary := &models.AttendanceSummary{
		Stats:         stats,
		AtRiskDrivers: atRisk,
		GeneratedAt:   now,
	}
	summary.Notices = run.finish(now)

	slog.Info("attendance summary generated",
		"records", stats.TotalRecords,
		"drivers", len(stats.DriverStats),
		"drivers_at_risk", stats.DriversAtRisk,
		"critical_drivers", stats.CriticalDrivers,
		"limit", limitLabel(limit))

	return summary, nil
}
