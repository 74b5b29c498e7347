package aggregates

import (
	"sort"

	"fleet-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Sales splits trip earnings into the cash and digital buckets. Trips with
// any other payment method count towards total_trips only.
func Sales(trips []models.Trip) models.SalesStats {
	stats := models.SalesStats{
		TotalTrips:        len(trips),
		TotalCashSales:    decimal.Zero,
		TotalDigitalSales: decimal.Zero,
		TotalEarnings:     decimal.Zero,
		TotalTips:         decimal.Zero,
		AverageTripValue:  decimal.Zero,
	}

	for i := range trips {
		trip := &trips[i]
		stats.TotalTips = stats.TotalTips.Add(trip.TipAmount.Value())

		switch trip.PaymentMethod.Bucket() {
		case models.BucketCash:
			stats.CashTrips++
			stats.TotalCashSales = stats.TotalCashSales.Add(trip.DriverEarnings.Value())
		case models.BucketDigital:
			stats.DigitalTrips++
			stats.TotalDigitalSales = stats.TotalDigitalSales.Add(trip.DriverEarnings.Value())
		default:
			stats.UnbucketedTrips++
		}
	}

	stats.TotalEarnings = stats.TotalCashSales.Add(stats.TotalDigitalSales)
	stats.CashPercentage = Percentage(stats.TotalCashSales, stats.TotalEarnings)
	stats.DigitalPercentage = Percentage(stats.TotalDigitalSales, stats.TotalEarnings)
	stats.AverageTripValue = Average(stats.TotalEarnings, stats.TotalTrips)

	return stats
}

// SalesByDriver breaks sales down per driver, largest total first, and keeps
// the first limit rows. Truncation happens after aggregation.
func SalesByDriver(trips []models.Trip, limit int) []models.DriverSales {
	byDriver := make(map[models.ID]*models.DriverSales)
	order := make([]models.ID, 0)

	for i := range trips {
		trip := &trips[i]

		row, ok := byDriver[trip.DriverID]
		if !ok {
			row = &models.DriverSales{
				DriverID:     trip.DriverID,
				DriverName:   string(trip.DriverName),
				CashSales:    decimal.Zero,
				DigitalSales: decimal.Zero,
				TotalSales:   decimal.Zero,
				Tips:         decimal.Zero,
			}
			byDriver[trip.DriverID] = row
			order = append(order, trip.DriverID)
		}

		row.Trips++
		row.Tips = row.Tips.Add(trip.TipAmount.Value())

		switch trip.PaymentMethod.Bucket() {
		case models.BucketCash:
			row.CashSales = row.CashSales.Add(trip.DriverEarnings.Value())
		case models.BucketDigital:
			row.DigitalSales = row.DigitalSales.Add(trip.DriverEarnings.Value())
		}
	}

	result := make([]models.DriverSales, 0, len(order))
	for _, id := range order {
		row := byDriver[id]
		row.TotalSales = row.CashSales.Add(row.DigitalSales)
		result = append(result, *row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSales.GreaterThan(result[j].TotalSales)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
