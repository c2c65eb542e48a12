// Package clockface computes the geometry of the three tile-composed
// clock hands: hand angles from wall-clock time, the wind-driven
// perturbation of the second hand, and the per-tick tile layout.
package clockface

import "time"

// Time is an immutable per-tick snapshot of the wall clock.
type Time struct {
	Hour     int
	Minute   int
	Second   int
	Fraction float64 // sub-second, [0,1)
}

// Snapshot captures now into a Time.
func Snapshot(now time.Time) Time {
	h, m, s := now.Clock()
	return Time{
		Hour:     h,
		Minute:   m,
		Second:   s,
		Fraction: float64(now.Nanosecond()) / 1e9,
	}
}

// Angles are hand angles in degrees, 0° at 12 o'clock, clockwise
// positive.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// HandAngles converts a time snapshot to the three hand angles. All
// hands sweep smoothly: the hour hand advances with minutes and
// seconds, the minute hand with seconds, the second hand with the
// sub-second fraction.
func HandAngles(t Time) Angles {
	sec := float64(t.Second) + t.Fraction
	min := float64(t.Minute) + sec/60
	hr := float64(t.Hour%12) + min/60

	return Angles{
		Hour:   hr * 30,
		Minute: min * 6,
		Second: sec * 6,
	}
}
