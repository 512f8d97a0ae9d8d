package models

import (
	"fmt"
	"time"
)

// MonthFormat is the wire format for month keys, e.g. "2023-04".
const MonthFormat = "2006-01"

// Month identifies a calendar month. It is the key type of the IPC series,
// which is published with month granularity.
type Month struct {
	Year int
	Mon  time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Mon: t.Month()}
}

// ParseMonthKey parses a "YYYY-MM" key. ISO date strings can be keyed by
// passing their first 7 characters.
func ParseMonthKey(s string) (Month, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month key %q, want format %q: %w", s, MonthFormat, err)
	}
	return MonthOf(t), nil
}

// AddMonths returns the month n months after m (n may be negative).
// Arithmetic is normalized by the calendar, so overflow rolls over.
func (m Month) AddMonths(n int) Month {
	return MonthOf(time.Date(m.Year, m.Mon+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// FirstDay returns the first day of the month at midnight UTC.
func (m Month) FirstDay() Date {
	return NewDate(time.Date(m.Year, m.Mon, 1, 0, 0, 0, 0, time.UTC))
}

// Before reports whether m is chronologically before o.
func (m Month) Before(o Month) bool {
	return m.Year < o.Year || (m.Year == o.Year && m.Mon < o.Mon)
}

// After reports whether m is chronologically after o.
func (m Month) After(o Month) bool { return o.Before(m) }

// String returns the "YYYY-MM" key.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Mon))
}

// MarshalText lets Month serve as a JSON map key.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a "YYYY-MM" key.
func (m *Month) UnmarshalText(b []byte) error {
	parsed, err := ParseMonthKey(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
