// Package clock abstracts the current time behind an interface so that
// time-sensitive business rules stay deterministic and testable.
package clock

import "time"

// Clock supplies the current instant. Rules that depend on "now" receive a
// Clock instead of calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock (UTC).
type SystemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock is a Clock frozen at a given instant, for tests.
type FixedClock struct {
	Instant time.Time
}

// NewFixedClock creates a Clock that always reports the given instant.
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{Instant: instant}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}
