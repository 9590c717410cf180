// Package clock supplies the current instant as an injectable dependency, so
// time-dependent scheduling rules stay deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by the wall clock, reporting UTC.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time {
	return f.t
}
