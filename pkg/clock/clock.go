package clock

import "time"

// Clock is injected into domains so streak and time-of-day rules can be
// tested against a fixed time.
type Clock interface {
	Now() time.Time

	// Today returns the current calendar day, truncated in local time.
	Today() time.Time

	// Hour returns the local hour in range 0-23.
	Hour() int
}

type realClock struct{}

func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func (realClock) Hour() int {
	return time.Now().Hour()
}
