package store

import (
	"strings"
	"time"
)

// SearchQuery filters bookings. Empty fields are ignored, but at least one
// must be set.
type SearchQuery struct {
	Term string
	Date string
}

// Search returns the bookings matching q.
//   - Date: checkInDate <= Date <= checkOutDate.
//   - Term: case-insensitive substring of firstName, surname or email.
//
// When both are set a booking must satisfy both.
func (s *Store) Search(q SearchQuery) ([]Booking, error) {
	if q.Term == "" && q.Date == "" {
		return nil, ErrMissingParameter
	}
	term := strings.ToLower(q.Term)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Booking, 0)
	for _, b := range s.bookings {
		if q.Date != "" && !stayCovers(b, q.Date) {
			continue
		}
		if term != "" && !mentions(b, term) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func mentions(b Booking, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(b.FirstName), lowerTerm) ||
		strings.Contains(strings.ToLower(b.Surname), lowerTerm) ||
		strings.Contains(strings.ToLower(b.Email), lowerTerm)
}

// stayCovers reports whether date falls in [checkInDate, checkOutDate].
func stayCovers(b Booking, date string) bool {
	return compareDates(b.CheckInDate, date) <= 0 && compareDates(date, b.CheckOutDate) <= 0
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// compareDates compares two date strings as calendar days when both parse,
// and lexically otherwise. Time of day and zone are dropped.
func compareDates(a, b string) int {
	da, okA := parseDay(a)
	db, okB := parseDay(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}
	return da.Compare(db)
}

func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
