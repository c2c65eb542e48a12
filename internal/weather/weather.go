// Package weather supplies per-tick forecast data to the clock core.
//
// A Feed is polled once per tick and returns a Forecast: an immutable
// snapshot of the next 24 hours, indexable by forecast horizon so that
// tiles farther along a hand can sample future conditions.
package weather

import (
	"fmt"
	"math"
	"time"
)

// Channel selects which field of a Sample a clock hand visualizes.
type Channel int

const (
	Temperature Channel = iota
	WindSpeed
	Precipitation
)

func (c Channel) String() string {
	switch c {
	case Temperature:
		return "temperature"
	case WindSpeed:
		return "wind"
	case Precipitation:
		return "precipitation"
	}
	return "unknown"
}

// ParseChannel maps a configuration string to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "temperature":
		return Temperature, nil
	case "wind":
		return WindSpeed, nil
	case "precipitation":
		return Precipitation, nil
	}
	return 0, fmt.Errorf("unknown weather channel %q", s)
}

// Sample is one point of weather data. Temperature is in °F, wind in mph,
// precipitation a probability percentage.
type Sample struct {
	Temperature   float64
	WindSpeed     float64
	Precipitation float64
}

// Value returns the field selected by ch.
func (s Sample) Value(ch Channel) float64 {
	switch ch {
	case Temperature:
		return s.Temperature
	case WindSpeed:
		return s.WindSpeed
	case Precipitation:
		return s.Precipitation
	}
	return 0
}

// Forecast is a 24-hour hourly forecast anchored at Base. It is a value
// type; ticks receive their own copy and nothing mutates it afterwards.
type Forecast struct {
	Base   time.Time
	Hourly [24]Sample
	// Gust is the current gust speed, always >= the current wind speed.
	Gust float64
}

// At samples the forecast at the given horizon in hours from Base,
// linearly interpolating between hourly points. Horizons outside [0,24)
// wrap around the day.
func (f Forecast) At(hours float64) Sample {
	h := math.Mod(hours, 24)
	if h < 0 {
		h += 24
	}
	base := float64(f.Base.Hour()) + float64(f.Base.Minute())/60
	pos := math.Mod(base+h, 24)

	lo := int(pos) % 24
	hi := (lo + 1) % 24
	u := pos - math.Floor(pos)

	a, b := f.Hourly[lo], f.Hourly[hi]
	return Sample{
		Temperature:   lerp(a.Temperature, b.Temperature, u),
		WindSpeed:     lerp(a.WindSpeed, b.WindSpeed, u),
		Precipitation: lerp(a.Precipitation, b.Precipitation, u),
	}
}

// Now is the zero-horizon sample.
func (f Forecast) Now() Sample {
	return f.At(0)
}

func lerp(a, b, u float64) float64 {
	return a + (b-a)*u
}

// Feed is the external weather collaborator. Implementations must return
// a usable Forecast for any call or an error; callers are expected to
// fall back to a cached forecast on error.
type Feed interface {
	Forecast(now time.Time) (Forecast, error)
}
