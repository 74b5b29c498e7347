package aggregates

import (
	"encoding/json"
	"math/rand"
	"testing"

	"fleet-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AttendanceAggregateTestSuite struct {
	suite.Suite
}

func TestAttendanceAggregateSuite(t *testing.T) {
	suite.Run(t, new(AttendanceAggregateTestSuite))
}

func record(driverID, name string, status models.AttendanceStatus, deduct string) models.AttendanceRecord {
	r := models.AttendanceRecord{
		DriverID:   models.ID(driverID),
		DriverName: models.Text(name),
		Status:     status,
	}
	if deduct != "" {
		r.DeductAmount = models.NewAmountFromString(deduct)
	}
	return r
}

func repeat(n int, r models.AttendanceRecord) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func (s *AttendanceAggregateTestSuite) TestEmpty() {
	stats := Attendance(nil)

	s.Equal(0, stats.TotalRecords)
	s.Equal(0, stats.DriversAtRisk)
	s.Equal(0, stats.CriticalDrivers)
	s.Empty(stats.DriverStats)
	s.True(stats.TotalDeductions.IsZero())
	s.Empty(AtRiskDrivers(&stats))
}

func (s *AttendanceAggregateTestSuite) TestCriticalDriver() {
	var records []models.AttendanceRecord
	records = append(records, repeat(3, record("7", "Omar", models.AttendanceStatusLate, ""))...)
	records = append(records, repeat(2, record("7", "Omar", models.AttendanceStatusAbsent, ""))...)
	records = append(records, repeat(5, record("7", "Omar", models.AttendanceStatusPresent, ""))...)

	stats := Attendance(records)

	profile := stats.DriverStats["7"]
	s.Require().NotNil(profile)
	s.Equal(10, profile.Total)
	s.Equal(3, profile.Late)
	s.Equal(2, profile.Absent)
	s.InDelta(0.5, profile.RiskPercentage, 1e-9)
	s.Equal(1, stats.DriversAtRisk)
	s.Equal(1, stats.CriticalDrivers)

	atRisk := AtRiskDrivers(&stats)
	s.Require().Len(atRisk, 1)
	s.Equal("50.0", atRisk[0].Percentage)
	s.True(atRisk[0].Critical)
	s.Equal("Omar", atRisk[0].Name)
}

func (s *AttendanceAggregateTestSuite) TestThresholdsAreExclusive() {
	var records []models.AttendanceRecord
	// exactly 20%: not at risk
	records = append(records, repeat(1, record("a", "A", models.AttendanceStatusLate, ""))...)
	records = append(records, repeat(4, record("a", "A", models.AttendanceStatusPresent, ""))...)
	// exactly 40%: at risk, not critical
	records = append(records, repeat(2, record("b", "B", models.AttendanceStatusAbsent, ""))...)
	records = append(records, repeat(3, record("b", "B", models.AttendanceStatusPresent, ""))...)

	stats := Attendance(records)

	s.Equal(1, stats.DriversAtRisk)
	s.Equal(0, stats.CriticalDrivers)

	atRisk := AtRiskDrivers(&stats)
	s.Require().Len(atRisk, 1)
	s.Equal(models.ID("b"), atRisk[0].DriverID)
	s.Equal("40.0", atRisk[0].Percentage)
	s.False(atRisk[0].Critical)
}

func (s *AttendanceAggregateTestSuite) TestEarlyDepartureDoesNotCountTowardsRisk() {
	records := repeat(4, record("x", "X", models.AttendanceStatusEarlyDeparture, ""))

	stats := Attendance(records)

	s.Equal(4, stats.EarlyDeparture)
	s.Equal(4, stats.DriverStats["x"].EarlyDeparture)
	s.Equal(0, stats.DriversAtRisk)
}

func (s *AttendanceAggregateTestSuite) TestStatusCountsEqualTotalForKnownStatuses() {
	records := []models.AttendanceRecord{
		record("1", "A", models.AttendanceStatusPresent, ""),
		record("1", "A", models.AttendanceStatusLate, ""),
		record("2", "B", models.AttendanceStatusAbsent, ""),
		record("2", "B", models.AttendanceStatusEarlyDeparture, ""),
	}

	stats := Attendance(records)

	s.Equal(stats.TotalRecords, stats.Present+stats.Late+stats.Absent+stats.EarlyDeparture)
	s.Equal(0, stats.UnrecognizedStatuses)
}

func (s *AttendanceAggregateTestSuite) TestUnrecognizedStatusIsCountedInTotalOnly() {
	records := []models.AttendanceRecord{
		record("1", "A", models.AttendanceStatusPresent, ""),
		record("1", "A", "on_leave", ""),
		record("1", "A", "Late", ""),
	}

	stats := Attendance(records)

	s.Equal(3, stats.TotalRecords)
	s.Equal(1, stats.Present+stats.Late+stats.Absent+stats.EarlyDeparture)
	s.Less(stats.Present+stats.Late+stats.Absent+stats.EarlyDeparture, stats.TotalRecords)
	s.Equal(2, stats.UnrecognizedStatuses)
	s.Equal(3, stats.DriverStats["1"].Total)
	s.Equal(0.0, stats.DriverStats["1"].RiskPercentage)
}

func (s *AttendanceAggregateTestSuite) TestDeductions() {
	records := []models.AttendanceRecord{
		record("1", "A", models.AttendanceStatusLate, "25.50"),
		record("1", "A", models.AttendanceStatusLate, "not-a-number"),
		record("2", "B", models.AttendanceStatusAbsent, "100"),
		record("2", "B", models.AttendanceStatusPresent, ""),
	}

	stats := Attendance(records)

	s.True(decimal.RequireFromString("125.50").Equal(stats.TotalDeductions), stats.TotalDeductions.String())
	s.True(decimal.RequireFromString("25.50").Equal(stats.DriverStats["1"].Deductions))
	s.True(decimal.NewFromInt(100).Equal(stats.DriverStats["2"].Deductions))
}

func (s *AttendanceAggregateTestSuite) TestFirstSeenNameIsKept() {
	records := []models.AttendanceRecord{
		record("1", "First Name", models.AttendanceStatusLate, ""),
		record("1", "Renamed", models.AttendanceStatusLate, ""),
	}

	stats := Attendance(records)

	s.Equal("First Name", stats.DriverStats["1"].Name)
}

func (s *AttendanceAggregateTestSuite) TestAtRiskSortedDescendingWithStableTies() {
	var records []models.AttendanceRecord
	// 50%
	records = append(records, record("tie-1", "T1", models.AttendanceStatusLate, ""), record("tie-1", "T1", models.AttendanceStatusPresent, ""))
	// 100%
	records = append(records, record("top", "Top", models.AttendanceStatusAbsent, ""))
	// 50%
	records = append(records, record("tie-2", "T2", models.AttendanceStatusAbsent, ""), record("tie-2", "T2", models.AttendanceStatusPresent, ""))
	// 25%
	records = append(records, record("low", "Low", models.AttendanceStatusLate, ""))
	records = append(records, repeat(3, record("low", "Low", models.AttendanceStatusPresent, ""))...)

	stats := Attendance(records)
	atRisk := AtRiskDrivers(&stats)

	s.Require().Len(atRisk, 4)
	s.Equal(models.ID("top"), atRisk[0].DriverID)
	s.Equal(models.ID("tie-1"), atRisk[1].DriverID)
	s.Equal(models.ID("tie-2"), atRisk[2].DriverID)
	s.Equal(models.ID("low"), atRisk[3].DriverID)
	s.Equal("100.0", atRisk[0].Percentage)
	s.Equal("25.0", atRisk[3].Percentage)
}

// Interleaving present records after late ones must not change the outcome.
func (s *AttendanceAggregateTestSuite) TestOrderIndependence() {
	gofakeit.Seed(42)

	statuses := []models.AttendanceStatus{
		models.AttendanceStatusPresent,
		models.AttendanceStatusLate,
		models.AttendanceStatusAbsent,
		models.AttendanceStatusEarlyDeparture,
	}
	drivers := make([]string, 8)
	for i := range drivers {
		drivers[i] = gofakeit.Name()
	}

	records := make([]models.AttendanceRecord, 0, 200)
	for i := 0; i < 200; i++ {
		idx := gofakeit.Number(0, len(drivers)-1)
		records = append(records, models.AttendanceRecord{
			DriverID:     models.ID(drivers[idx]),
			DriverName:   models.Text(drivers[idx]),
			Status:       statuses[gofakeit.Number(0, len(statuses)-1)],
			DeductAmount: models.NewAmount(gofakeit.Price(0, 50)),
		})
	}

	baseline := Attendance(records)

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 5; round++ {
		shuffled := make([]models.AttendanceRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Attendance(shuffled)

		s.Equal(baseline.TotalRecords, got.TotalRecords)
		s.Equal(baseline.Late, got.Late)
		s.Equal(baseline.Absent, got.Absent)
		s.Equal(baseline.DriversAtRisk, got.DriversAtRisk)
		s.Equal(baseline.CriticalDrivers, got.CriticalDrivers)
		s.True(baseline.TotalDeductions.Equal(got.TotalDeductions))
		s.Require().Len(got.DriverStats, len(baseline.DriverStats))

		for id, want := range baseline.DriverStats {
			profile := got.DriverStats[id]
			s.Require().NotNil(profile)
			s.Equal(want.Total, profile.Total)
			s.Equal(want.Late, profile.Late)
			s.Equal(want.Absent, profile.Absent)
			s.InDelta(want.RiskPercentage, profile.RiskPercentage, 1e-12)
			s.True(want.Deductions.Equal(profile.Deductions))
		}
	}
}

func (s *AttendanceAggregateTestSuite) TestDriverWithoutRecordsNeverAppears() {
	stats := Attendance([]models.AttendanceRecord{record("1", "A", models.AttendanceStatusPresent, "")})

	_, ok := stats.DriverStats["2"]
	s.False(ok)
	for _, profile := range stats.DriverStats {
		s.Greater(profile.Total, 0)
	}
}

func (s *AttendanceAggregateTestSuite) TestAtRiskDriversWithoutOrderFallsBackToIDs() {
	stats := models.FleetAttendanceStats{
		DriverStats: map[models.ID]*models.DriverRiskProfile{
			"b": {DriverID: "b", Total: 2, Late: 1, RiskPercentage: 0.5},
			"a": {DriverID: "a", Total: 2, Absent: 1, RiskPercentage: 0.5},
		},
	}

	atRisk := AtRiskDrivers(&stats)

	s.Require().Len(atRisk, 2)
	s.Equal(models.ID("a"), atRisk[0].DriverID)
	s.Equal(models.ID("b"), atRisk[1].DriverID)
}

func (s *AttendanceAggregateTestSuite) TestAtRiskDriversKeepFirstSeenOrderAfterJSONRoundTrip() {
	records := []models.AttendanceRecord{
		record("10", "Ten", models.AttendanceStatusLate, ""),
		record("2", "Two", models.AttendanceStatusAbsent, ""),
	}
	built := Attendance(records)

	data, err := json.Marshal(built)
	s.Require().NoError(err)
	var decoded models.FleetAttendanceStats
	s.Require().NoError(json.Unmarshal(data, &decoded))

	atRisk := AtRiskDrivers(&decoded)

	s.Require().Len(atRisk, 2)
	s.Equal(models.ID("10"), atRisk[0].DriverID)
	s.Equal(models.ID("2"), atRisk[1].DriverID)
}

func (s *AttendanceAggregateTestSuite) TestAtRiskDriversFallbackOrdersNumericIDsByValue() {
	stats := models.FleetAttendanceStats{
		DriverStats: map[models.ID]*models.DriverRiskProfile{
			"10":  {DriverID: "10", Total: 1, Late: 1, RiskPercentage: 1},
			"2":   {DriverID: "2", Total: 1, Late: 1, RiskPercentage: 1},
			"abc": {DriverID: "abc", Total: 1, Late: 1, RiskPercentage: 1},
		},
	}

	atRisk := AtRiskDrivers(&stats)

	s.Require().Len(atRisk, 3)
	s.Equal(models.ID("2"), atRisk[0].DriverID)
	s.Equal(models.ID("10"), atRisk[1].DriverID)
	s.Equal(models.ID("abc"), atRisk[2].DriverID)
}
