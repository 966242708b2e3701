package trainer

import "time"

// Clock provides the current time.
// Sessions take a Clock so reaction timing can be driven by tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
