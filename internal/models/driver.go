package models

import (
	"bytes"
	"encoding/json"
	"time"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Ref is a nested reference to another record. The backend sends either the
// embedded object, a bare id, or null.
type Ref struct {
	ID   ID     `json:"id"`
	Name string `json:"name,omitempty"`
}

// Assigned reports whether the reference points at a record.
func (r *Ref) Assigned() bool {
	return r != nil && r.ID != ""
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*r = Ref{}
		return nil
	}
	if data[0] != '{' {
		*r = Ref{ID: ID(decodeText(data))}
		return nil
	}

	var raw struct {
		ID          ID   `json:"id"`
		Name        Text `json:"name"`
		PlateNumber Text `json:"plate_number"`
		DriverName  Text `json:"driver_name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = Ref{}
		return nil
	}
	name := raw.Name
	if name == "" {
		name = raw.PlateNumber
	}
	if name == "" {
		name = raw.DriverName
	}
	*r = Ref{ID: raw.ID, Name: string(name)}
	return nil
}

// Driver is one row of /Register/drivers/.
type Driver struct {
	ID             ID     `json:"id"`
	DriverName     Text   `json:"driver_name"`
	Gender         Text   `json:"gender"`
	Nationality    Text   `json:"nationality,omitempty"`
	DateOfBirth    Date   `json:"date_of_birth"`
	IqamaExpiry    Date   `json:"iqama_expiry"`
	LicenseExpiry  Date   `json:"license_expiry"`
	PassportExpiry Date   `json:"passport_expiry"`
	MedicalExpiry  Date   `json:"medical_expiry"`
	Status         Text   `json:"status,omitempty"`
	CreatedAt      Date   `json:"created_at"`
	Vehicle        *Ref   `json:"vehicle"`
}

// ExpiryDates returns the document expiry dates checked by the dashboard.
func (d *Driver) ExpiryDates() []Date {
	return []Date{d.IqamaExpiry, d.LicenseExpiry, d.PassportExpiry, d.MedicalExpiry}
}

// DriverStats is the onboarding/documentation aggregation over the roster.
type DriverStats struct {
	TotalDrivers      int     `json:"total_drivers"`
	ExpiringDocuments int     `json:"expiring_documents"`
	NewThisMonth      int     `json:"new_this_month"`
	AverageAge        float64 `json:"average_age"`
	DriversWithAge    int     `json:"drivers_with_age"`
	Male              int     `json:"male"`
	Female            int     `json:"female"`
	OtherGender       int     `json:"other_gender"`
	WithVehicle       int     `json:"with_vehicle"`
	WithoutVehicle    int     `json:"without_vehicle"`
}

// DriverSummary is the response for the driver roster dashboard.
type DriverSummary struct {
	Stats       DriverStats `json:"stats"`
	Notices     []Notice    `json:"notices,omitempty"`
	GeneratedAt time.Time   `json:"generated_at"`
}
