package models

import "time"

// IndexSeries maps calendar months to the official price index level for
// that month. Values are strictly positive; a missing key means "not yet
// published", never zero.
type IndexSeries map[Month]float64

// Value returns the index level for the given month.
func (s IndexSeries) Value(m Month) (float64, bool) {
	v, ok := s[m]
	return v, ok
}

// FxSeries maps calendar days (YYYY-MM-DD keys) to an informal-market sell
// quote. Markets do not quote every day, so gaps are expected.
type FxSeries map[string]float64

// Rate returns the quote for the given day.
func (s FxSeries) Rate(day time.Time) (float64, bool) {
	v, ok := s[NewDate(day).Key()]
	return v, ok
}
