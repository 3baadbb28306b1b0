package dateutil

import "time"

// Day truncates t to its calendar day in the location of t.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func IsSameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// IsYesterdayOf tells whether a is exactly one calendar day before b.
func IsYesterdayOf(a, b time.Time) bool {
	return Day(a).AddDate(0, 0, 1).Equal(Day(b))
}
