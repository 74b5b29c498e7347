package aggregates

import (
	"sort"

	"fleet-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Budgets summarises the budget list and the backend's performance rows.
// total_variance is a net-favourability score: income variance minus expense variance.
func Budgets(budgets []models.Budget, performance []models.BudgetPerformance) models.BudgetStats {
	stats := models.BudgetStats{
		TotalBudgets:  len(budgets),
		TotalVariance: decimal.Zero,
	}

	for i := range budgets {
		if budgets[i].IsActive() {
			stats.ActiveBudgets++
		}
	}

	for i := range performance {
		perf := &performance[i]
		if perf.IsOverBudget() {
			stats.OverBudgetCount++
		}
		stats.TotalVariance = stats.TotalVariance.
			Add(perf.IncomeVariance.Value()).
			Sub(perf.ExpenseVariance.Value())
	}

	return stats
}

// TopAlerts orders alerts by their precomputed percentage, highest first, and
// keeps at most limit of them. A limit <= 0 keeps all.
func TopAlerts(alerts []models.BudgetAlert, limit int) []models.BudgetAlert {
	sorted := make([]models.BudgetAlert, len(alerts))
	copy(sorted, alerts)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage.Value().GreaterThan(sorted[j].Percentage.Value())
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
