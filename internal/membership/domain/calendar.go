package domain

import "time"

// AddMonths advances t by n calendar months. When the day of month does not
// exist in the target month the result is the last day of that month, so
// 31 January plus one month is 28 or 29 February.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	last := time.Date(y, m+time.Month(n)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return time.Date(y, m+time.Month(n), min(d, last), hh, mm, ss, t.Nanosecond(), t.Location())
}
