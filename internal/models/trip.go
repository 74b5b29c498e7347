package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a trip was paid for.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodDigital PaymentMethod = "digital"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodWallet  PaymentMethod = "wallet"
)

// PaymentBucket is the two-way split used by the sales dashboard.
type PaymentBucket int

const (
	BucketNone PaymentBucket = iota
	BucketCash
	BucketDigital
)

// Bucket maps card and wallet onto digital; anything unknown falls in no bucket.
func (m PaymentMethod) Bucket() PaymentBucket {
	switch m {
	case PaymentMethodCash:
		return BucketCash
	case PaymentMethodDigital, PaymentMethodCard, PaymentMethodWallet:
		return BucketDigital
	default:
		return BucketNone
	}
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	*m = PaymentMethod(decodeText(data))
	return nil
}

// IsValidPaymentMethod reports whether the method is one of the four known values.
func IsValidPaymentMethod(method string) bool {
	return PaymentMethod(method).Bucket() != BucketNone
}

// Trip is one row of /trips/trips/.
type Trip struct {
	ID              ID            `json:"id"`
	TripID          Text          `json:"trip_id"`
	DriverID        ID            `json:"driver_id"`
	DriverName      Text          `json:"driver_name"`
	DriverEarnings  Amount        `json:"driver_earnings"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TransactionDate Date          `json:"transaction_date"`
	TipAmount       Amount        `json:"tip_amount"`
}

// TripFilter narrows the trip collection requested from the backend.
type TripFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	DriverID string
}

// SalesStats is the cash-vs-digital aggregation.
type SalesStats struct {
	TotalTrips        int             `json:"total_trips"`
	CashTrips         int             `json:"cash_trips"`
	DigitalTrips      int             `json:"digital_trips"`
	UnbucketedTrips   int             `json:"unbucketed_trips"`
	TotalCashSales    decimal.Decimal `json:"total_cash_sales"`
	TotalDigitalSales decimal.Decimal `json:"total_digital_sales"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
	TotalTips         decimal.Decimal `json:"total_tips"`
	CashPercentage    float64         `json:"cash_percentage"`
	DigitalPercentage float64         `json:"digital_percentage"`
	AverageTripValue  decimal.Decimal `json:"average_trip_value"`
}

// DriverSales is the per-driver cash/digital breakdown row.
type DriverSales struct {
	DriverID     ID              `json:"driver_id"`
	DriverName   string          `json:"driver_name"`
	Trips        int             `json:"trips"`
	CashSales    decimal.Decimal `json:"cash_sales"`
	DigitalSales decimal.Decimal `json:"digital_sales"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	Tips         decimal.Decimal `json:"tips"`
}

// SalesSummary is the response for the cash-vs-digital sales dashboard.
type SalesSummary struct {
	Stats        SalesStats    `json:"stats"`
	Drivers      []DriverSales `json:"drivers"`
	TotalDrivers int           `json:"total_drivers"`
	Notices      []Notice      `json:"notices,omitempty"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
