package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the wire format for day-granularity dates.
const DateFormat = "2006-01-02"

// Date is a day-granularity timestamp rendered as YYYY-MM-DD in JSON.
type Date struct {
	time.Time
}

// NewDate truncates t to midnight UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, DateFormat, err)
	}
	return Date{t}, nil
}

// Key returns the canonical YYYY-MM-DD form, used as FX series map key.
func (d Date) Key() string { return d.Format(DateFormat) }

func (d Date) String() string { return d.Key() }

// MarshalJSON renders the date as a YYYY-MM-DD JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Key())
}

// UnmarshalJSON accepts a YYYY-MM-DD JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = (*Date)(nil)
