package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/repositories"
)

const auditWriteTimeout = 2 * time.Second

// auditPurgeInterval is how often RunRetention sweeps expired audit rows.
const auditPurgeInterval = time.Hour

var (
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrAuditDateRange  = errors.New("invalid date range: start date must be before end date")
)

// AuditEntry describes one dashboard access to be recorded.
type AuditEntry struct {
	UserID     string
	UserRole   string
	Action     string
	Resource   string
	ResourceID string
	TraceID    string
	IPAddress  string
	UserAgent  string
	Metadata   map[string]interface{}
}

// AuditService handles audit logging operations
type AuditService struct {
	repo    repositories.AuditLogRepositoryInterface
	metrics MetricsRecorderInterface
	now     func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, metrics MetricsRecorderInterface) AuditServiceInterface {
	return &AuditService{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	if !models.IsValidAuditAction(action) {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// Record stores the entry. Failures are logged and counted, never returned:
// an audit outage must not fail the dashboard request that triggered it.
func (s *AuditService) Record(ctx context.Context, entry AuditEntry) {
	if err := s.record(ctx, entry); err != nil {
		slog.Error("failed to record audit log",
			"action", entry.Action,
			"resource", entry.Resource,
			"user_id", entry.UserID,
			"trace_id", entry.TraceID,
			"error", err)
		if s.metrics != nil {
			s.metrics.IncrementCounter(MetricAuditWriteFailed, nil)
		}
	}
}

func (s *AuditService) record(ctx context.Context, entry AuditEntry) error {
	if err := ValidateActivityType(entry.Action); err != nil {
		return err
	}
	if !models.IsAuditResource(entry.Resource) {
		return fmt.Errorf("%w: unknown resource %q", ErrInvalidAuditLog, entry.Resource)
	}

	log := &models.AuditLog{
		UserID:     entry.UserID,
		UserRole:   entry.UserRole,
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		TraceID:    entry.TraceID,
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
	}
	for k, v := range entry.Metadata {
		log.SetMetadata(k, v)
	}

	// The write outlives a client that has already hung up.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	if err := s.repo.Create(writeCtx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// List returns audit logs, newest first, with the total match count.
func (s *AuditService) List(ctx context.Context, filter models.AuditLogFilter, offset, limit int) ([]*models.AuditLog, int64, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, 0, ErrAuditDateRange
	}

	logs, total, err := s.repo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, total, nil
}

// Purge deletes audit logs older than retention. A non-positive retention keeps everything.
func (s *AuditService) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	deleted, err := s.repo.DeleteBefore(ctx, s.now().UTC().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}
	if deleted > 0 {
		slog.Info("purged expired audit logs", "deleted", deleted, "retention", retention.String())
	}
	return deleted, nil
}

// RunRetention purges on start and then every hour until ctx is done.
func RunRetention(ctx context.Context, audit AuditServiceInterface, retention time.Duration) {
	if retention <= 0 {
		return
	}

	purge := func() {
		if _, err := audit.Purge(ctx, retention); err != nil && ctx.Err() == nil {
			slog.Error("audit retention sweep failed", "error", err)
		}
	}

	purge()

	ticker := time.NewTicker(auditPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purge()
		}
	}
}
