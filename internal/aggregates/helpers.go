// Package aggregates holds the summary computations behind each dashboard
// view. Every function is pure: it works on an in-memory snapshot, allocates
// its own state and never performs I/O.
package aggregates

import (
	"time"

	"fleet-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const (
	AtRiskThreshold   = 0.20
	CriticalThreshold = 0.40

	ExpiryWindowDays   = 30
	CashFlowWindowDays = 30

	DefaultAlertLimit       = 6
	DefaultDriverSalesLimit = 50
)

var hundred = decimal.NewFromInt(100)

// Percentage returns part/whole*100, or 0 when whole is zero.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// Average returns total/count, or zero when count is 0.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// AgeOn returns the completed years between dob and now.
func AgeOn(dob, now time.Time) int {
	by, bm, bd := dob.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}

// IsExpiring reports whether any set date falls on or before now + windowDays,
// compared as calendar dates. Already-expired dates count as expiring.
func IsExpiring(dates []models.Date, now time.Time, windowDays int) bool {
	y, m, d := now.Date()
	limit := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, windowDays)

	for _, date := range dates {
		if date.IsZero() {
			continue
		}
		if !date.Civil().After(limit) {
			return true
		}
	}
	return false
}

// InMonth reports whether t falls in the calendar month and year of now.
func InMonth(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}
