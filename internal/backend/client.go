// Package backend talks to the fleet back-office REST service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"fleet-dashboard/internal/cache"

	"golang.org/x/sync/singleflight"
)

// Collection endpoints exposed by the back-office service.
const (
	PathAttendance        = "/hr/attendance/"
	PathBudgets           = "/accounting/budgets/"
	PathBudgetPerformance = "/accounting/budgets/budget_performance/"
	PathBudgetAlerts      = "/accounting/budgets/alerts/"
	PathBankAccounts      = "/accounting/bank-accounts/"
	PathTransactions      = "/accounting/transactions/"
	PathTrips             = "/trips/trips/"
	PathDrivers           = "/Register/drivers/"
	PathVehicles          = "/Register/vehicles/"
)

const maxResponseBytes = 32 << 20

var (
	ErrUnavailable     = errors.New("backend unavailable")
	ErrInvalidResponse = errors.New("backend returned an invalid response")
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s returned status %d", e.Path, e.StatusCode)
}

// Breaker is the subset of the circuit breaker the client needs.
type Breaker interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
}

// MetricsRecorder receives one observation per backend request.
type MetricsRecorder interface {
	RecordBackendRequest(path, outcome string, duration time.Duration)
}

type Config struct {
	BaseURL    string
	Token      string
	AuthScheme string
	HealthPath string
	Timeout    time.Duration
}

// Client issues read-only GETs against the back-office service. Concurrent
// identical requests share one round trip.
type Client struct {
	baseURL    string
	token      string
	authScheme string
	healthPath string
	httpClient *http.Client
	cache      *cache.Cache
	breaker    Breaker
	metrics    MetricsRecorder
	group      singleflight.Group
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithCache(cc *cache.Cache) Option {
	return func(c *Client) { c.cache = cc }
}

func WithBreaker(b Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	scheme := cfg.AuthScheme
	if scheme == "" {
		scheme = "Bearer"
	}
	healthPath := cfg.HealthPath
	if healthPath == "" {
		healthPath = "/"
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		authScheme: scheme,
		healthPath: healthPath,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches a collection and decodes it into dest, which must be a pointer
// to a slice. Both a bare JSON array and a {"results": [...]} page are
// accepted; null, an empty body or a page without results decode as empty.
func (c *Client) List(ctx context.Context, path string, query url.Values, dest interface{}) error {
	key := path
	if encoded := query.Encode(); encoded != "" {
		key += "?" + encoded
	}

	resultChan := c.group.DoChan(key, func() (interface{}, error) {
		var raw json.RawMessage
		err := c.cache.FetchJSON(context.WithoutCancel(ctx), cache.Key("backend", key), &raw, func(ctx context.Context) (interface{}, error) {
			return c.get(ctx, path, query)
		})
		return raw, err
	})

	var raw json.RawMessage
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return res.Err
		}
		raw = res.Val.(json.RawMessage)
	}

	items, err := unwrap(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(items, dest); err != nil {
		return decodeEach(ctx, path, items, dest)
	}
	return nil
}

// decodeEach decodes a collection one record at a time so a single
// malformed record is dropped instead of the whole page. dest must be a
// pointer to a slice.
func decodeEach(ctx context.Context, path string, items json.RawMessage, dest interface{}) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("%s: %w: destination is %T", path, ErrInvalidResponse, dest)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(items, &elements); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrInvalidResponse, err)
	}

	sliceType := rv.Elem().Type()
	out := reflect.MakeSlice(sliceType, 0, len(elements))
	for i, element := range elements {
		item := reflect.New(sliceType.Elem())
		if err := json.Unmarshal(element, item.Interface()); err != nil {
			slog.Warn("skipping malformed backend record",
				"path", path,
				"index", i,
				"error", err,
				"trace_id", TraceIDFromContext(ctx),
			)
			continue
		}
		out = reflect.Append(out, item.Elem())
	}
	rv.Elem().Set(out)
	return nil
}

// Ping checks that the backend answers at all.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.healthPath, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{Path: c.healthPath, StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if c.breaker != nil && c.breaker.IsOpen() {
		c.observe(path, "breaker_open", 0)
		return nil, ErrUnavailable
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)
	traceID := TraceIDFromContext(ctx)
	if traceID != "" {
		req.Header.Set(TraceHeader, traceID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(path, traceID, "network_error", time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.fail(path, traceID, "read_error", time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode >= http.StatusInternalServerError {
			c.fail(path, traceID, "server_error", time.Since(start))
		} else {
			c.succeed(path, "client_error", time.Since(start))
		}
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: snippet(body)}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("null")
	}
	if !json.Valid(body) {
		c.succeed(path, "invalid_body", time.Since(start))
		return nil, ErrInvalidResponse
	}

	c.succeed(path, "ok", time.Since(start))
	return json.RawMessage(body), nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", c.authScheme+" "+c.token)
	}
}

func (c *Client) fail(path, traceID, outcome string, d time.Duration) {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
	slog.Warn("backend request failed",
		"path", path,
		"outcome", outcome,
		"duration_ms", d.Milliseconds(),
		"trace_id", traceID)
	c.observe(path, outcome, d)
}

func (c *Client) succeed(path, outcome string, d time.Duration) {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
	c.observe(path, outcome, d)
}

func (c *Client) observe(path, outcome string, d time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordBackendRequest(path, outcome, d)
	}
}

// unwrap turns the backend's two collection shapes into a JSON array.
func unwrap(raw json.RawMessage) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return json.RawMessage("[]"), nil
	}

	switch raw[0] {
	case '[':
		return raw, nil
	case '{':
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		results := bytes.TrimSpace(page.Results)
		if len(results) == 0 || results[0] != '[' {
			return json.RawMessage("[]"), nil
		}
		return results, nil
	default:
		return json.RawMessage("[]"), nil
	}
}

func snippet(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit])
	}
	return string(body)
}
