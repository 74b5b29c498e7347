package aggregates

import (
	"time"

	"fleet-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Bank computes the cash position over all accounts and the cash flow of
// the transactions dated within the last 30 days. Only income and expense
// transactions are summed; every other type is ignored.
func Bank(accounts []models.BankAccount, transactions []models.BankTransaction, now time.Time) models.BankStats {
	stats := models.BankStats{
		TotalBalance:   decimal.Zero,
		TotalAccounts:  len(accounts),
		MonthlyInflow:  decimal.Zero,
		MonthlyOutflow: decimal.Zero,
		NetCashFlow:    decimal.Zero,
		WindowStart:    now.Add(-CashFlowWindowDays * 24 * time.Hour),
	}

	for i := range accounts {
		account := &accounts[i]
		stats.TotalBalance = stats.TotalBalance.Add(account.CurrentBalance.Value())
		if account.IsActive {
			stats.ActiveAccounts++
		}
		if account.NeedsReconciliation {
			stats.PendingReconciliation++
		}
	}

	for i := range transactions {
		txn := &transactions[i]
		if txn.TransactionDate.IsZero() || txn.TransactionDate.Before(stats.WindowStart) {
			continue
		}

		switch txn.TransactionType {
		case models.BankTransactionTypeIncome:
			stats.MonthlyInflow = stats.MonthlyInflow.Add(txn.Amount.Value())
		case models.BankTransactionTypeExpense:
			stats.MonthlyOutflow = stats.MonthlyOutflow.Add(txn.Amount.Value())
		}
	}

	stats.NetCashFlow = stats.MonthlyInflow.Sub(stats.MonthlyOutflow)
	return stats
}
