package services

import (
	"context"
	"log/slog"
	"time"

	"fleet-dashboard/internal/aggregates"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/repositories"

	"golang.org/x/sync/errgroup"
)

type budgetService struct {
	repo       repositories.BudgetRepositoryInterface
	metrics    MetricsRecorderInterface
	alertLimit int
	now        func() time.Time
}

func NewBudgetService(
	repo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		repo:       repo,
		metrics:    metrics,
		alertLimit: aggregates.DefaultAlertLimit,
		now:        time.Now,
	}
}

// GetSummary fetches budgets, performance and alerts concurrently and
// aggregates once all three have resolved.
func (s *budgetService) GetSummary(ctx context.Context) (*models.BudgetSummary, error) {
	run := newViewRun(models.SectionBudgets, s.metrics)

	var (
		budgets     []models.Budget
		performance []models.BudgetPerformance
		alerts      []models.BudgetAlert
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if budgets, err = s.repo.ListBudgets(gctx); err != nil {
			budgets = nil
			return run.degrade(gctx, "budgets", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if performance, err = s.repo.ListPerformance(gctx); err != nil {
			performance = nil
			return run.degrade(gctx, "budget performance", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if alerts, err = s.repo.ListAlerts(gctx); err != nil {
			alerts = nil
			return run.degrade(gctx, "budget alerts", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range budgets {
		if err := budgets[i].ValidatePeriod(); err != nil {
			slog.Warn("budget has an invalid period",
				"budget_id", budgets[i].ID,
				"period_start", budgets[i].PeriodStart.Civil(),
				"period_end", budgets[i].PeriodEnd.Civil())
		}
	}

	if performance == nil {
		performance = []models.BudgetPerformance{}
	}

	now := s.now()
	summary := &models.BudgetSummary{
		Stats:       aggregates.Budgets(budgets, performance),
		Performance: performance,
		Alerts:      aggregates.TopAlerts(alerts, s.alertLimit),
		TotalAlerts: len(alerts),
		GeneratedAt: now,
	}
	summary.Notices = run.finish(now)

	slog.Info("budget summary generated",
		"budgets", summary.Stats.TotalBudgets,
		"active_budgets", summary.Stats.ActiveBudgets,
		"over_budget", summary.Stats.OverBudgetCount,
		"total_variance", summary.Stats.TotalVariance.String(),
		"alerts", len(alerts))

	return summary, nil
}
