package services

import (
	"log/slog"
	"sync"
	"time"

	"fleet-dashboard/internal/models"
)

type CircuitBreakerConfig struct {
	Name            string
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:            "backend",
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker stops calling the back-office service after MaxFailures
// consecutive failures and lets a trial request through once ResetTimeout has passed.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	metrics           MetricsRecorderInterface
	now               func() time.Time
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	openedAt          time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig, metrics MetricsRecorderInterface) CircuitBreakerInterface {
	if config.MaxFailures <= 0 {
		config.MaxFailures = 1
	}
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config:  config,
		metrics: metrics,
		now:     time.Now,
		state:   StateClosed,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.config.ResetTimeout {
		cb.setState(StateHalfOpen)
		cb.halfOpenSuccesses = 0
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.failures = 0
			cb.halfOpenSuccesses = 0
			cb.setState(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.trip()
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.trip()
		}
	}
}

func (cb *CircuitBreaker) trip() {
	cb.openedAt = cb.now()
	cb.halfOpenSuccesses = 0
	cb.setState(StateOpen)
}

// setState must be called with mu held.
func (cb *CircuitBreaker) setState(next models.CircuitBreakerState) {
	if cb.state == next {
		return
	}
	slog.Warn("circuit breaker state changed",
		"breaker", cb.config.Name,
		"from", cb.state.String(),
		"to", next.String(),
		"failures", cb.failures)
	cb.state = next
	if cb.metrics != nil {
		cb.metrics.RecordGauge(MetricCircuitBreaker, float64(next), map[string]string{"service": cb.config.Name})
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.halfOpenSuccesses = 0
	cb.setState(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
