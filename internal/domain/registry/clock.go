package registry

import "time"

// Clock supplies the instants recorded as a tab's LastActive.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so comparisons between its values are not affected by wall clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
