package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BankTransactionTypeIncome  = "income"
	BankTransactionTypeExpense = "expense"
)

// BankAccount is one row of /accounting/bank-accounts/.
type BankAccount struct {
	ID                  ID     `json:"id"`
	AccountName         Text   `json:"account_name"`
	BankName            Text   `json:"bank_name"`
	AccountNumber       Text   `json:"account_number,omitempty"`
	CurrentBalance      Amount `json:"current_balance"`
	IsActive            Flag   `json:"is_active"`
	NeedsReconciliation Flag   `json:"needs_reconciliation"`
}

// BankTransaction is a recent movement on one of the accounts.
type BankTransaction struct {
	ID              ID     `json:"id"`
	BankAccountID   ID     `json:"bank_account"`
	TransactionType Text   `json:"transaction_type"`
	Amount          Amount `json:"amount"`
	TransactionDate Date   `json:"transaction_date"`
	Description     Text   `json:"description,omitempty"`
}

// BankStats is the cash position aggregation.
type BankStats struct {
	TotalBalance          decimal.Decimal `json:"total_balance"`
	TotalAccounts         int             `json:"total_accounts"`
	ActiveAccounts        int             `json:"active_accounts"`
	PendingReconciliation int             `json:"pending_reconciliation"`
	MonthlyInflow         decimal.Decimal `json:"monthly_inflow"`
	MonthlyOutflow        decimal.Decimal `json:"monthly_outflow"`
	NetCashFlow           decimal.Decimal `json:"net_cash_flow"`
	WindowStart           time.Time       `json:"window_start"`
}

// BankSummary is the response for the bank accounts dashboard.
type BankSummary struct {
	Stats       BankStats     `json:"stats"`
	Accounts    []BankAccount `json:"accounts"`
	Notices     []Notice      `json:"notices,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
}
