package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	BudgetStatusActive = "active"
)

var (
	ErrInvalidBudgetPeriod = errors.New("budget period start must be before period end")
)

// Budget is one row of /accounting/budgets/.
type Budget struct {
	ID              ID     `json:"id"`
	Name            Text   `json:"name"`
	BudgetedIncome  Amount `json:"budgeted_income"`
	BudgetedExpense Amount `json:"budgeted_expense"`
	PeriodStart     Date   `json:"period_start"`
	PeriodEnd       Date   `json:"period_end"`
	Status          Text   `json:"status"`
	Category        Text   `json:"category"`
}

// IsActive reports whether the budget is currently in force.
func (b *Budget) IsActive() bool {
	return b.Status == BudgetStatusActive
}

// ValidatePeriod checks period_start < period_end. Budgets are only checked
// when both ends are set.
func (b *Budget) ValidatePeriod() error {
	if b.PeriodStart.IsZero() || b.PeriodEnd.IsZero() {
		return nil
	}
	if !b.PeriodStart.Before(b.PeriodEnd.Time) {
		return ErrInvalidBudgetPeriod
	}
	return nil
}

// BudgetPerformance is a budget already joined with actuals by the backend.
type BudgetPerformance struct {
	BudgetID        ID     `json:"budget_id"`
	Name            Text   `json:"name"`
	BudgetedIncome  Amount `json:"budgeted_income"`
	ActualIncome    Amount `json:"actual_income"`
	BudgetedExpense Amount `json:"budgeted_expense"`
	ActualExpense   Amount `json:"actual_expense"`
	IncomeVariance  Amount `json:"income_variance"`
	ExpenseVariance Amount `json:"expense_variance"`
	VariancePercent Amount `json:"variance_percent"`
}

// IsOverBudget reports spending above plan or earning below plan.
func (p *BudgetPerformance) IsOverBudget() bool {
	return p.ExpenseVariance.Value().IsPositive() || p.IncomeVariance.Value().IsNegative()
}

// BudgetAlert is a precomputed alert from the backend; severity and
// percentage are never recomputed here.
type BudgetAlert struct {
	ID         ID     `json:"id"`
	BudgetID   ID     `json:"budget_id"`
	BudgetName Text   `json:"budget_name"`
	Category   Text   `json:"category"`
	AlertType  Text   `json:"alert_type"`
	Severity   Text   `json:"severity"`
	Percentage Amount `json:"percentage"`
	Message    Text   `json:"message"`
}

// BudgetStats is the budget variance aggregation.
type BudgetStats struct {
	TotalBudgets    int             `json:"total_budgets"`
	ActiveBudgets   int             `json:"active_budgets"`
	OverBudgetCount int             `json:"over_budget_count"`
	TotalVariance   decimal.Decimal `json:"total_variance"`
}

// BudgetSummary is the response for the budget dashboard.
type BudgetSummary struct {
	Stats       BudgetStats         `json:"stats"`
	Performance []BudgetPerformance `json:"performance"`
	Alerts      []BudgetAlert       `json:"alerts"`
	TotalAlerts int                 `json:"total_alerts"`
	Notices     []Notice            `json:"notices,omitempty"`
	GeneratedAt time.Time           `json:"generated_at"`
}
