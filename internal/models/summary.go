package models

import "time"

// Dashboard sections, also used as notice sources and audit resources.
const (
	SectionAttendance = "attendance"
	SectionBudgets    = "budgets"
	SectionBank       = "bank_accounts"
	SectionSales      = "sales"
	SectionDrivers    = "drivers"
	SectionVehicles   = "vehicles"

	// Audit-only resources.
	SectionOverview  = "overview"
	SectionAuditLogs = "audit_logs"
)

// IsAuditResource reports whether section can appear as an audit log resource.
func IsAuditResource(section string) bool {
	switch section {
	case SectionAttendance, SectionBudgets, SectionBank, SectionSales,
		SectionDrivers, SectionVehicles, SectionOverview, SectionAuditLogs:
		return true
	}
	return false
}

// Notice tells the dashboard that a collection could not be fetched and the
// figures next to it were computed over an empty list.
type Notice struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// DashboardOverview bundles every summary for the landing page.
type DashboardOverview struct {
	Attendance  *AttendanceSummary `json:"attendance"`
	Budgets     *BudgetSummary     `json:"budgets"`
	Bank        *BankSummary       `json:"bank_accounts"`
	Sales       *SalesSummary      `json:"sales"`
	Drivers     *DriverSummary     `json:"drivers"`
	Vehicles    *VehicleSummary    `json:"vehicles"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// Notices collects the notices of every section.
func (o *DashboardOverview) Notices() []Notice {
	var notices []Notice
	if o.Attendance != nil {
		notices = append(notices, o.Attendance.Notices...)
	}
	if o.Budgets != nil {
		notices = append(notices, o.Budgets.Notices...)
	}
	if o.Bank != nil {
		notices = append(notices, o.Bank.Notices...)
	}
	if o.Sales != nil {
		notices = append(notices, o.Sales.Notices...)
	}
	if o.Drivers != nil {
		notices = append(notices, o.Drivers.Notices...)
	}
	if o.Vehicles != nil {
		notices = append(notices, o.Vehicles.Notices...)
	}
	return notices
}

// CircuitBreakerState is the state of the backend circuit breaker.
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}
