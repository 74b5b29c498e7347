package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"fleet-dashboard/internal/models"
)

// viewRun tracks one summary build. A collection that cannot be fetched is
// replaced by an empty one and reported as a notice; cancellation is not.
type viewRun struct {
	section string
	metrics MetricsRecorderInterface
	started time.Time

	mu      sync.Mutex
	notices []models.Notice
}

func newViewRun(section string, metrics MetricsRecorderInterface) *viewRun {
	return &viewRun{
		section: section,
		metrics: metrics,
		started: time.Now(),
	}
}

// degrade returns ctx.Err() when the request is gone, nil otherwise.
func (v *viewRun) degrade(ctx context.Context, source string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	slog.Error("failed to fetch dashboard data",
		"section", v.section,
		"source", source,
		"error", err)
	v.metrics.IncrementCounter(MetricFetchFailed, map[string]string{"source": source})

	v.mu.Lock()
	v.notices = append(v.notices, models.Notice{
		Source:  source,
		Message: fmt.Sprintf("Failed to load %s", source),
	})
	v.mu.Unlock()
	return nil
}

func (v *viewRun) unrecognized(field string, count int) {
	if count == 0 {
		return
	}
	slog.Warn("records with unrecognized values excluded from breakdown",
		"section", v.section,
		"field", field,
		"count", count)
	v.metrics.AddCounter(MetricUnrecognizedValue, float64(count), map[string]string{"field": field})
}

// finish records the outcome and returns the collected notices.
func (v *viewRun) finish(now time.Time) []models.Notice {
	v.mu.Lock()
	defer v.mu.Unlock()

	status := "ok"
	if len(v.notices) > 0 {
		status = "degraded"
	}
	v.metrics.IncrementCounter(MetricSummaryGenerated, map[string]string{"section": v.section, "status": status})
	v.metrics.RecordProcessingTime(MetricSummaryDuration+v.section, time.Since(v.started))
	v.metrics.RecordGauge(MetricSummaryGenerated, float64(now.Unix()), map[string]string{"section": v.section})

	return v.notices
}

func limitLabel(limit int) string {
	if limit <= 0 {
		return "all"
	}
	return strconv.Itoa(limit)
}
