package spectrum

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tileclock/internal/weather"
)

func TestMapContinuity(t *testing.T) {
	const eps = 1e-5
	const tol = 1e-3

	for _, sp := range []Spectrum{Temperature, Wind, Precipitation} {
		// Probe around every interior stop boundary plus a few
		// mid-band points.
		probes := []float64{0.1, 0.5, 0.9}
		for _, s := range sp.Stops {
			if s.Pos > 0 && s.Pos < 1 {
				probes = append(probes, s.Pos)
			}
		}

		for _, n := range probes {
			a := sp.Map(n-eps, 0, 1)
			b := sp.Map(n+eps, 0, 1)
			if d := a.DistanceRgb(b); d > tol {
				t.Errorf("%s: discontinuity at %g, color distance %g", sp.Name, n, d)
			}
		}
	}
}

func TestMapClamps(t *testing.T) {
	tests := []struct {
		name     string
		sp       Spectrum
		min, max float64
	}{
		{"temperature", Temperature, 55, 115},
		{"wind", Wind, 0, 45},
		{"precipitation", Precipitation, 0, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got, want := tc.sp.Map(tc.min-100, tc.min, tc.max), tc.sp.Map(tc.min, tc.min, tc.max); got != want {
				t.Errorf("below-range value not clamped to min color: %v != %v", got, want)
			}
			if got, want := tc.sp.Map(tc.max+100, tc.min, tc.max), tc.sp.Map(tc.max, tc.min, tc.max); got != want {
				t.Errorf("above-range value not clamped to max color: %v != %v", got, want)
			}
		})
	}
}

func TestMapEndpoints(t *testing.T) {
	cold := colorful.Hsv(270, 0.85, 0.65)
	if got := Temperature.Map(55, 55, 115); got.DistanceRgb(cold) > 1e-9 {
		t.Errorf("temperature at range_min = %v, want cold endpoint %v", got, cold)
	}

	hot := colorful.Hsv(0, 1.0, 0.95)
	if got := Temperature.Map(115, 55, 115); got.DistanceRgb(hot) > 1e-9 {
		t.Errorf("temperature at range_max = %v, want hot endpoint %v", got, hot)
	}

	// Negative hue in the wind spectrum wraps into [0,360).
	magenta := colorful.Hsv(340, 1.0, 1.0)
	if got := Wind.Map(45, 0, 45); got.DistanceRgb(magenta) > 1e-9 {
		t.Errorf("wind at range_max = %v, want %v", got, magenta)
	}
}

func TestMapMonotoneHueWithinBand(t *testing.T) {
	// Within the cold band the hue must move linearly, halfway between
	// the two stops at the band midpoint.
	mid := Temperature.Map(0.1, 0, 1)
	want := colorful.Hsv(247.5, 0.825, 0.725)
	if mid.DistanceRgb(want) > 1e-6 {
		t.Errorf("band midpoint = %v, want %v", mid, want)
	}
}

func TestForChannel(t *testing.T) {
	tests := []struct {
		ch   weather.Channel
		want string
	}{
		{weather.Temperature, "temperature"},
		{weather.WindSpeed, "wind"},
		{weather.Precipitation, "precipitation"},
	}
	for _, tc := range tests {
		if got := ForChannel(tc.ch); got.Name != tc.want {
			t.Errorf("ForChannel(%v) = %s, want %s", tc.ch, got.Name, tc.want)
		}
	}
}

func TestBandNames(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{55, "cold"},
		{70, "cool"},
		{114, "hot"},
		{115, "scorching"},
	}
	for _, tc := range tests {
		if got := Temperature.Band(tc.value, 55, 115); got != tc.want {
			t.Errorf("Band(%g) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestHueWrap(t *testing.T) {
	// Every mapped color must be a valid RGB triple even where stop
	// hues run negative.
	for n := 0.0; n <= 1.0; n += 0.05 {
		c := Wind.Map(n, 0, 1)
		for _, v := range []float64{c.R, c.G, c.B} {
			if math.IsNaN(v) || v < -1e-9 || v > 1+1e-9 {
				t.Fatalf("Map(%g) out of RGB range: %v", n, c)
			}
		}
	}
}
