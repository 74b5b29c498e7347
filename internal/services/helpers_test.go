package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"fleet-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// recordingMetrics counts calls by name and sorted tag values.
type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string]int
	adds     map[string]int
	timings  map[string]int
	gauges   map[string]float64
	backend  map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters: map[string]int{},
		adds:     map[string]int{},
		timings:  map[string]int{},
		gauges:   map[string]float64{},
		backend:  map[string]int{},
	}
}

func metricKey(name string, tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := []string{name}
	for _, k := range keys {
		parts = append(parts, k+"="+tags[k])
	}
	return strings.Join(parts, ",")
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[metricKey(name, tags)]++
}

func (m *recordingMetrics) AddCounter(name string, delta float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := metricKey(name, tags)
	m.counters[key] += int(delta)
	m.adds[key]++
}

func (m *recordingMetrics) RecordProcessingTime(name string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name]++
}

func (m *recordingMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[metricKey(name, tags)] = value
}

func (m *recordingMetrics) RecordBackendRequest(path, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backend[path+","+outcome]++
}

func (m *recordingMetrics) counter(name string, tags map[string]string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[metricKey(name, tags)]
}

func (m *recordingMetrics) addCalls(name string, tags map[string]string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.adds[metricKey(name, tags)]
}

var fixedNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func attendanceRecord(driverID string, name string, status models.AttendanceStatus, deduct string) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:           models.ID(gofakeit.UUID()),
		DriverID:     models.ID(driverID),
		DriverName:   models.Text(name),
		Status:       status,
		DeductAmount: models.NewAmountFromString(deduct),
		Date:         models.NewDate(2025, time.June, gofakeit.Number(1, 14)),
	}
}

func trip(driverID, name string, method models.PaymentMethod, earnings string) models.Trip {
	return models.Trip{
		ID:              models.ID(gofakeit.UUID()),
		TripID:          models.Text(gofakeit.LetterN(8)),
		DriverID:        models.ID(driverID),
		DriverName:      models.Text(name),
		DriverEarnings:  models.NewAmountFromString(earnings),
		PaymentMethod:   method,
		TransactionDate: models.NewDate(2025, time.June, gofakeit.Number(1, 14)),
	}
}
