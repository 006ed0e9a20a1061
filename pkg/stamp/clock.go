// Package stamp renders the timestamp prefix written in front of every
// emitted line, and abstracts the wall clock so tests can pin it.
package stamp

import "time"

// Clock abstracts time.Now().
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, in local time unless UTC is set.
type SystemClock struct {
	UTC bool
}

// Now returns the current time.
func (c SystemClock) Now() time.Time {
	if c.UTC {
		return time.Now().UTC()
	}
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
