package service

import "time"

// Clock returns the current time. Services default to SystemClock; tests
// swap in a fixed or stepping clock.
type Clock func() time.Time

// SystemClock is the wall clock in UTC at millisecond precision, the
// precision QR codes and stored timestamps carry.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (c Clock) now() time.Time {
	if c == nil {
		return SystemClock()
	}
	return c()
}
