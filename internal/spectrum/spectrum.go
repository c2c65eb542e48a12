// Package spectrum maps scalar weather values onto fixed rainbow
// gradients. Each hand has a static spectrum assignment; the mapping is
// continuous across sub-band boundaries and clamps outside its domain.
package spectrum

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tileclock/internal/weather"
)

// Stop is one gradient anchor at normalized position Pos in [0,1].
// Hue values may run outside [0,360) so interpolation between adjacent
// stops is plain linear; they are wrapped only when converting to RGB.
type Stop struct {
	Pos  float64
	Name string
	H    float64
	S    float64
	V    float64
}

// Spectrum is an ordered sequence of hue stops. Stops must be sorted by
// Pos with the first at 0 and the last at 1.
type Spectrum struct {
	Name  string
	Stops []Stop
}

// Temperature runs cold purple through blue, teal, green and yellow to
// hot red.
var Temperature = Spectrum{
	Name: "temperature",
	Stops: []Stop{
		{0.0, "cold", 270, 0.85, 0.65},
		{0.2, "cool", 225, 0.80, 0.80},
		{0.4, "mild", 180, 0.75, 0.85},
		{0.6, "warm", 120, 0.80, 0.90},
		{0.8, "hot", 55, 0.90, 0.95},
		{1.0, "scorching", 0, 1.00, 0.95},
	},
}

// Wind runs calm green to violent magenta.
var Wind = Spectrum{
	Name: "wind",
	Stops: []Stop{
		{0.0, "calm", 120, 0.50, 0.70},
		{1.0, "violent", -20, 1.00, 1.00},
	},
}

// Precipitation runs dry silver-blue to saturated storm purple.
var Precipitation = Spectrum{
	Name: "precipitation",
	Stops: []Stop{
		{0.0, "dry", 220, 0.30, 0.90},
		{1.0, "storm", 270, 1.00, 0.50},
	},
}

// ForChannel returns the static spectrum assignment for a weather
// channel.
func ForChannel(ch weather.Channel) Spectrum {
	switch ch {
	case weather.WindSpeed:
		return Wind
	case weather.Precipitation:
		return Precipitation
	default:
		return Temperature
	}
}

// Map converts value within [min,max] to a color. Out-of-range values
// clamp to the end stops.
func (sp Spectrum) Map(value, min, max float64) colorful.Color {
	n := 0.0
	if max > min {
		n = (value - min) / (max - min)
	}
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}

	stops := sp.Stops
	last := len(stops) - 1
	if n >= stops[last].Pos {
		return hsv(stops[last].H, stops[last].S, stops[last].V)
	}

	i := 0
	for i < last-1 && n >= stops[i+1].Pos {
		i++
	}
	a, b := stops[i], stops[i+1]
	u := (n - a.Pos) / (b.Pos - a.Pos)

	return hsv(
		a.H+(b.H-a.H)*u,
		a.S+(b.S-a.S)*u,
		a.V+(b.V-a.V)*u,
	)
}

// Band names the sub-band containing value, for diagnostics.
func (sp Spectrum) Band(value, min, max float64) string {
	n := 0.0
	if max > min {
		n = (value - min) / (max - min)
	}
	stops := sp.Stops
	for i := len(stops) - 1; i >= 0; i-- {
		if n >= stops[i].Pos {
			return stops[i].Name
		}
	}
	return stops[0].Name
}

func hsv(h, s, v float64) colorful.Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, s, v)
}
