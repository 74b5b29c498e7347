package aggregates

import (
	"fmt"
	"sort"
	"strconv"

	"fleet-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Attendance tallies the records per driver and fleet-wide, then classifies
// risk over the final per-driver totals so the result does not depend on
// input order.
func Attendance(records []models.AttendanceRecord) models.FleetAttendanceStats {
	stats := models.FleetAttendanceStats{
		TotalDeductions: decimal.Zero,
		DriverStats:     make(map[models.ID]*models.DriverRiskProfile),
	}
	order := make([]models.ID, 0)

	for i := range records {
		record := &records[i]
		stats.TotalRecords++

		profile, ok := stats.DriverStats[record.DriverID]
		if !ok {
			profile = &models.DriverRiskProfile{
				DriverID:   record.DriverID,
				Name:       string(record.DriverName),
				Deductions: decimal.Zero,
			}
			stats.DriverStats[record.DriverID] = profile
			order = append(order, record.DriverID)
		}
		profile.Total++

		switch record.Status {
		case models.AttendanceStatusPresent:
			stats.Present++
		case models.AttendanceStatusLate:
			stats.Late++
			profile.Late++
		case models.AttendanceStatusAbsent:
			stats.Absent++
			profile.Absent++
		case models.AttendanceStatusEarlyDeparture:
			stats.EarlyDeparture++
			profile.EarlyDeparture++
		default:
			stats.UnrecognizedStatuses++
		}

		if record.DeductAmount.Valid {
			stats.TotalDeductions = stats.TotalDeductions.Add(record.DeductAmount.Decimal)
			profile.Deductions = profile.Deductions.Add(record.DeductAmount.Decimal)
		}
	}

	for _, id := range order {
		profile := stats.DriverStats[id]
		profile.RiskPercentage = profile.Risk()
		if profile.RiskPercentage > AtRiskThreshold {
			stats.DriversAtRisk++
		}
		if profile.RiskPercentage > CriticalThreshold {
			stats.CriticalDrivers++
		}
	}

	stats.DriverOrder = order
	return stats
}

// AtRiskDrivers lists drivers above the at-risk threshold, highest risk first.
// Ties keep the order in which drivers were first seen. Stats built without
// Attendance carry no order; their ties fall back to ascending driver id.
func AtRiskDrivers(stats *models.FleetAttendanceStats) []models.AtRiskDriver {
	order := stats.DriverOrder
	if len(order) != len(stats.DriverStats) {
		order = sortedIDs(stats.DriverStats)
	}

	result := make([]models.AtRiskDriver, 0)
	for _, id := range order {
		profile, ok := stats.DriverStats[id]
		if !ok || profile.RiskPercentage <= AtRiskThreshold {
			continue
		}
		result = append(result, models.AtRiskDriver{
			DriverRiskProfile: *profile,
			Percentage:        fmt.Sprintf("%.1f", profile.RiskPercentage*100),
			Critical:          profile.RiskPercentage > CriticalThreshold,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RiskPercentage > result[j].RiskPercentage
	})
	return result
}

func sortedIDs(profiles map[models.ID]*models.DriverRiskProfile) []models.ID {
	ids := make([]models.ID, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return idLess(ids[i], ids[j]) })
	return ids
}

// idLess orders numeric ids by value ("2" before "10") and everything else
// lexically after them.
func idLess(a, b models.ID) bool {
	x, errA := strconv.ParseInt(string(a), 10, 64)
	y, errB := strconv.ParseInt(string(b), 10, 64)
	switch {
	case errA == nil && errB == nil:
		return x < y
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
