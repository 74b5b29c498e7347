package aggregates

import (
	"time"

	"fleet-dashboard/internal/models"
)

const unknownPartition = "unknown"

// Drivers computes onboarding, documentation and demographic figures for
// the roster as of now.
func Drivers(drivers []models.Driver, now time.Time) models.DriverStats {
	stats := models.DriverStats{TotalDrivers: len(drivers)}
	ageSum := 0

	for i := range drivers {
		driver := &drivers[i]

		if IsExpiring(driver.ExpiryDates(), now, ExpiryWindowDays) {
			stats.ExpiringDocuments++
		}
		if InMonth(driver.CreatedAt.Time, now) {
			stats.NewThisMonth++
		}
		if !driver.DateOfBirth.IsZero() {
			ageSum += AgeOn(driver.DateOfBirth.Time, now)
			stats.DriversWithAge++
		}

		switch driver.Gender {
		case models.GenderMale:
			stats.Male++
		case models.GenderFemale:
			stats.Female++
		default:
			stats.OtherGender++
		}

		if driver.Vehicle.Assigned() {
			stats.WithVehicle++
		} else {
			stats.WithoutVehicle++
		}
	}

	if stats.DriversWithAge > 0 {
		stats.AverageAge = float64(ageSum) / float64(stats.DriversWithAge)
	}

	return stats
}

// Vehicles is the fleet variant of Drivers.
func Vehicles(vehicles []models.Vehicle, now time.Time) models.VehicleStats {
	stats := models.VehicleStats{
		TotalVehicles: len(vehicles),
		ByStatus:      make(map[string]int),
		ByType:        make(map[string]int),
	}

	for i := range vehicles {
		vehicle := &vehicles[i]

		if IsExpiring(vehicle.ExpiryDates(), now, ExpiryWindowDays) {
			stats.ExpiringDocuments++
		}
		if InMonth(vehicle.CreatedAt.Time, now) {
			stats.NewThisMonth++
		}
		if vehicle.Driver.Assigned() {
			stats.WithDriver++
		} else {
			stats.WithoutDriver++
		}

		stats.ByStatus[partition(vehicle.Status)]++
		stats.ByType[partition(vehicle.VehicleType)]++
	}

	return stats
}

func partition(value models.Text) string {
	if value == "" {
		return unknownPartition
	}
	return string(value)
}
