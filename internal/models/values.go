package models

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the longest leading number in a string, the same
// prefix parseFloat-style parsers accept ("12.50 SAR" -> "12.50").
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var null = []byte("null")

// Decimal inputs outside these bounds are treated as unparseable. Summing a
// value such as 1e20000000 would otherwise materialise millions of digits.
const (
	maxDecimalExponent = 30
	maxDecimalDigits   = 64
)

// Amount is a money value decoded leniently from the backend. Numbers,
// numeric strings, null and malformed values are all accepted; anything that
// does not parse becomes zero and Valid stays false.
type Amount struct {
	decimal.Decimal
	Valid bool
}

// NewAmount builds a valid Amount from a float, mostly for tests and fixtures.
func NewAmount(v float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(v), Valid: true}
}

// NewAmountFromString builds an Amount with the same coercion rules as JSON decoding.
func NewAmountFromString(s string) Amount {
	d, ok := parseDecimal(s)
	return Amount{Decimal: d, Valid: ok}
}

// Value returns the decimal, zero when the amount was missing or malformed.
func (a Amount) Value() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Decimal
}

// UnmarshalJSON never fails: a single bad record must not abort decoding of a collection.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*a = Amount{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{}
			return nil
		}
		*a = NewAmountFromString(s)
		return nil
	}

	d, ok := parseDecimal(string(data))
	*a = Amount{Decimal: d, Valid: ok}
	return nil
}

// MarshalJSON always emits a number string, zero for invalid amounts.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Value().MarshalJSON()
}

// ParseAmount coerces an arbitrary decoded JSON value to a decimal, defaulting to zero.
func ParseAmount(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case Amount:
		return val.Value()
	case decimal.Decimal:
		return val
	case float64:
		d, _ := bounded(decimal.NewFromFloat(val))
		return d
	case float32:
		d, _ := bounded(decimal.NewFromFloat32(val))
		return d
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case json.Number:
		d, _ := parseDecimal(val.String())
		return d
	case string:
		d, _ := parseDecimal(val)
		return d
	default:
		return decimal.Zero
	}
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return bounded(d)
	}
	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero, false
	}
	return bounded(d)
}

// bounded rejects decimals whose exponent or coefficient is too large to be
// a real amount.
func bounded(d decimal.Decimal) (decimal.Decimal, bool) {
	exp := d.Exponent()
	if exp > maxDecimalExponent || exp < -maxDecimalExponent || d.NumDigits() > maxDecimalDigits {
		return decimal.Zero, false
	}
	return d, true
}

// Flag is a boolean decoded leniently: JSON booleans, non-zero numbers and
// truthy strings count as true; null, missing and empty values as false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, null):
		*f = false
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = false
			return nil
		}
		s = strings.TrimSpace(s)
		if b, err := strconv.ParseBool(s); err == nil {
			*f = Flag(b)
			return nil
		}
		*f = s != ""
	case bytes.Equal(data, []byte("true")):
		*f = true
	case bytes.Equal(data, []byte("false")):
		*f = false
	default:
		d, ok := parseDecimal(string(data))
		*f = Flag(ok && !d.IsZero())
	}
	return nil
}

// Date is a calendar date or timestamp decoded leniently. Unparseable or
// empty values decode to the zero Date.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses the formats the backend emits, returning the zero Date on failure.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}
		}
	}
	return Date{}
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return null, nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Civil returns the date part as midnight UTC, dropping time of day and zone.
func (d Date) Civil() time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// ID is a record identifier that the backend sends either as a number or a string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID(decodeText(data))
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Text is a free-form string field. Numbers and booleans keep their literal
// form; null, objects and arrays decode as empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(decodeText(data))
	return nil
}

func (t Text) String() string {
	return string(t)
}

// decodeText reads any JSON scalar as a string and never fails.
func decodeText(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return string(data)
	}
}
