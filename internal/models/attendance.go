package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceStatus is the outcome recorded for a driver's shift.
type AttendanceStatus string

const (
	AttendanceStatusPresent        AttendanceStatus = "present"
	AttendanceStatusLate           AttendanceStatus = "late"
	AttendanceStatusAbsent         AttendanceStatus = "absent"
	AttendanceStatusEarlyDeparture AttendanceStatus = "early_departure"
)

// IsValidAttendanceStatus reports whether the status is one of the four counted values.
func IsValidAttendanceStatus(status string) bool {
	switch AttendanceStatus(status) {
	case AttendanceStatusPresent, AttendanceStatusLate, AttendanceStatusAbsent, AttendanceStatusEarlyDeparture:
		return true
	default:
		return false
	}
}

func (s *AttendanceStatus) UnmarshalJSON(data []byte) error {
	*s = AttendanceStatus(decodeText(data))
	return nil
}

// AttendanceRecord is one row of /hr/attendance/.
type AttendanceRecord struct {
	ID           ID               `json:"id"`
	DriverID     ID               `json:"driver_id"`
	DriverName   Text             `json:"driver_name"`
	Status       AttendanceStatus `json:"status"`
	DeductAmount Amount           `json:"deduct_amount"`
	Date         Date             `json:"date"`
}

// DriverRiskProfile holds the per-driver attendance tallies.
type DriverRiskProfile struct {
	DriverID       ID              `json:"driver_id"`
	Name           string          `json:"name"`
	Total          int             `json:"total"`
	Late           int             `json:"late"`
	Absent         int             `json:"absent"`
	EarlyDeparture int             `json:"early_departure"`
	Deductions     decimal.Decimal `json:"deductions"`
	RiskPercentage float64         `json:"risk_percentage"`
}

// Risk returns (late+absent)/total, zero when no record was counted.
func (p *DriverRiskProfile) Risk() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Late+p.Absent) / float64(p.Total)
}

// FleetAttendanceStats is the fleet-wide attendance aggregation.
type FleetAttendanceStats struct {
	TotalRecords         int                       `json:"total_records"`
	Present              int                       `json:"present"`
	Late                 int                       `json:"late"`
	Absent               int                       `json:"absent"`
	EarlyDeparture       int                       `json:"early_departure"`
	TotalDeductions      decimal.Decimal           `json:"total_deductions"`
	DriversAtRisk        int                       `json:"drivers_at_risk"`
	CriticalDrivers      int                       `json:"critical_drivers"`
	UnrecognizedStatuses int                       `json:"unrecognized_statuses"`
	DriverStats          map[ID]*DriverRiskProfile `json:"driver_stats"`
	// DriverOrder lists driver ids in first-seen order; map order is lost in JSON.
	DriverOrder          []ID                      `json:"driver_order"`
}

// AtRiskDriver is a row of the at-risk listing.
type AtRiskDriver struct {
	DriverRiskProfile
	Percentage string `json:"percentage"`
	Critical   bool   `json:"critical"`
}

// AttendanceFilter narrows the attendance collection requested from the backend.
type AttendanceFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	DriverID string
}

// AttendanceSummary is the response for the attendance dashboard.
type AttendanceSummary struct {
	Stats         FleetAttendanceStats `json:"stats"`
	AtRiskDrivers []AtRiskDriver       `json:"at_risk_drivers"`
	Notices       []Notice             `json:"notices,omitempty"`
	GeneratedAt   time.Time            `json:"generated_at"`
}
