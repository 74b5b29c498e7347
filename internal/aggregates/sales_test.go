package aggregates

import (
	"fmt"
	"math"
	"testing"

	"fleet-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trip(driverID string, method models.PaymentMethod, earnings float64) models.Trip {
	return models.Trip{
		DriverID:       models.ID(driverID),
		DriverName:     models.Text("Driver " + driverID),
		PaymentMethod:  method,
		DriverEarnings: models.NewAmount(earnings),
	}
}

func TestSales_EmptyTripList(t *testing.T) {
	stats := Sales(nil)

	assert.Equal(t, 0, stats.TotalTrips)
	assert.True(t, stats.AverageTripValue.IsZero())
	assert.Equal(t, 0.0, stats.CashPercentage)
	assert.Equal(t, 0.0, stats.DigitalPercentage)
	assert.False(t, math.IsNaN(stats.CashPercentage))
}

func TestSales_Buckets(t *testing.T) {
	trips := []models.Trip{
		trip("1", models.PaymentMethodCash, 100),
		trip("1", models.PaymentMethodCard, 50),
		trip("2", models.PaymentMethodWallet, 25),
		trip("2", models.PaymentMethodDigital, 25),
		trip("3", "", 999),
		trip("3", "bank_transfer", 999),
	}
	trips[0].TipAmount = models.NewAmount(5)
	trips[4].TipAmount = models.NewAmountFromString("2.5")

	stats := Sales(trips)

	assert.Equal(t, 6, stats.TotalTrips)
	assert.Equal(t, 1, stats.CashTrips)
	assert.Equal(t, 3, stats.DigitalTrips)
	assert.Equal(t, 2, stats.UnbucketedTrips)
	assert.True(t, decimal.NewFromInt(100).Equal(stats.TotalCashSales))
	assert.True(t, decimal.NewFromInt(100).Equal(stats.TotalDigitalSales))
	assert.True(t, decimal.NewFromInt(200).Equal(stats.TotalEarnings))
	assert.True(t, decimal.RequireFromString("7.5").Equal(stats.TotalTips))
	assert.InDelta(t, 50.0, stats.CashPercentage, 1e-9)
	assert.InDelta(t, 50.0, stats.DigitalPercentage, 1e-9)
	// unbucketed trips still count in the denominator
	assert.True(t, decimal.NewFromInt(200).Div(decimal.NewFromInt(6)).Equal(stats.AverageTripValue))
}

func TestSales_ZeroEarnings(t *testing.T) {
	trips := []models.Trip{
		trip("1", models.PaymentMethodCash, 0),
		{DriverID: "2", PaymentMethod: models.PaymentMethodCard, DriverEarnings: models.NewAmountFromString("free")},
	}

	stats := Sales(trips)

	assert.Equal(t, 0.0, stats.CashPercentage)
	assert.Equal(t, 0.0, stats.DigitalPercentage)
	assert.True(t, stats.AverageTripValue.IsZero())
}

func TestSales_PercentagesSumToHundred(t *testing.T) {
	gofakeit.Seed(11)
	methods := []models.PaymentMethod{
		models.PaymentMethodCash,
		models.PaymentMethodDigital,
		models.PaymentMethodCard,
		models.PaymentMethodWallet,
	}

	for round := 0; round < 20; round++ {
		t.Run(fmt.Sprintf("round_%d", round), func(t *testing.T) {
			n := gofakeit.Number(1, 40)
			trips := make([]models.Trip, 0, n)
			for i := 0; i < n; i++ {
				trips = append(trips, trip(
					gofakeit.Numerify("###"),
					methods[gofakeit.Number(0, len(methods)-1)],
					gofakeit.Price(1, 500),
				))
			}

			stats := Sales(trips)

			require.True(t, stats.TotalEarnings.IsPositive())
			assert.InDelta(t, 100.0, stats.CashPercentage+stats.DigitalPercentage, 1e-9)
			assert.Equal(t, 0, stats.UnbucketedTrips)
		})
	}
}

func TestSalesByDriver(t *testing.T) {
	trips := []models.Trip{
		trip("a", models.PaymentMethodCash, 10),
		trip("b", models.PaymentMethodCard, 40),
		trip("a", models.PaymentMethodWallet, 15),
		trip("c", models.PaymentMethodCash, 25),
		trip("c", "voucher", 100),
	}

	rows := SalesByDriver(trips, DefaultDriverSalesLimit)

	require.Len(t, rows, 3)
	assert.Equal(t, models.ID("b"), rows[0].DriverID)
	assert.True(t, decimal.NewFromInt(40).Equal(rows[0].TotalSales))
	// a and c tie at 25; a was seen first
	assert.Equal(t, models.ID("a"), rows[1].DriverID)
	assert.Equal(t, 2, rows[1].Trips)
	assert.True(t, decimal.NewFromInt(10).Equal(rows[1].CashSales))
	assert.True(t, decimal.NewFromInt(15).Equal(rows[1].DigitalSales))
	assert.Equal(t, models.ID("c"), rows[2].DriverID)
	assert.Equal(t, 2, rows[2].Trips)
	assert.True(t, decimal.NewFromInt(25).Equal(rows[2].TotalSales))
}

func TestSalesByDriver_TruncatesAfterAggregation(t *testing.T) {
	trips := make([]models.Trip, 0, 120)
	for i := 0; i < 60; i++ {
		id := fmt.Sprintf("d%02d", i)
		trips = append(trips, trip(id, models.PaymentMethodCash, float64(i)), trip(id, models.PaymentMethodCard, 1))
	}

	rows := SalesByDriver(trips, DefaultDriverSalesLimit)

	require.Len(t, rows, 50)
	assert.Equal(t, models.ID("d59"), rows[0].DriverID)
	assert.True(t, decimal.NewFromInt(60).Equal(rows[0].TotalSales))
	assert.Equal(t, 2, rows[0].Trips)
	assert.Equal(t, models.ID("d10"), rows[49].DriverID)
}
