package models

import "time"

// Vehicle is one row of /Register/vehicles/.
type Vehicle struct {
	ID              ID     `json:"id"`
	PlateNumber     Text   `json:"plate_number"`
	VehicleType     Text   `json:"vehicle_type"`
	Status          Text   `json:"status"`
	InsuranceExpiry Date   `json:"insurance_expiry"`
	RCExpiry        Date   `json:"rc_expiry"`
	ServiceDue      Date   `json:"service_due"`
	CreatedAt       Date   `json:"created_at"`
	Driver          *Ref   `json:"driver"`
}

func (v *Vehicle) ExpiryDates() []Date {
	return []Date{v.InsuranceExpiry, v.RCExpiry, v.ServiceDue}
}

// VehicleStats is the fleet variant of the roster aggregation.
type VehicleStats struct {
	TotalVehicles     int            `json:"total_vehicles"`
	ExpiringDocuments int            `json:"expiring_documents"`
	NewThisMonth      int            `json:"new_this_month"`
	WithDriver        int            `json:"with_driver"`
	WithoutDriver     int            `json:"without_driver"`
	ByStatus          map[string]int `json:"by_status"`
	ByType            map[string]int `json:"by_type"`
}

// VehicleSummary is the response for the vehicle fleet dashboard.
type VehicleSummary struct {
	Stats       VehicleStats `json:"stats"`
	Notices     []Notice     `json:"notices,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
}
