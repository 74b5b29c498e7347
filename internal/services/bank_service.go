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

type bankService struct {
	repo    repositories.BankRepositoryInterface
	metrics MetricsRecorderInterface
	now     func() time.Time
}

func NewBankService(
	repo repositories.BankRepositoryInterface,
	metrics MetricsRecorderInterface,
) BankServiceInterface {
	return &bankService{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

func (s *bankService) GetSummary(ctx context.Context) (*models.BankSummary, error) {
	run := newViewRun(models.SectionBank, s.metrics)
	now := s.now()
	since := now.Add(-aggregates.CashFlowWindowDays * 24 * time.Hour)

	var (
		accounts     []models.BankAccount
		transactions []models.BankTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if accounts, err = s.repo.ListAccounts(gctx); err != nil {
			accounts = nil
			return run.degrade(gctx, "bank accounts", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if transactions, err = s.repo.ListTransactions(gctx, &since); err != nil {
			transactions = nil
			return run.degrade(gctx, "bank transactions", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if accounts == nil {
		accounts = []models.BankAccount{}
	}

	summary := &models.BankSummary{
		Stats:       aggregates.Bank(accounts, transactions, now),
		Accounts:    accounts,
		GeneratedAt: now,
	}
	summary.Notices = run.finish(now)

	slog.Info("bank summary generated",
		"accounts", summary.Stats.TotalAccounts,
		"active_accounts", summary.Stats.ActiveAccounts,
		"transactions", len(transactions),
		"net_cash_flow", summary.Stats.NetCashFlow.String())

	return summary, nil
}
