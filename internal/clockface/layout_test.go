package clockface

import (
	"math"
	"reflect"
	"testing"
	"time"

	"tileclock/internal/spectrum"
	"tileclock/internal/weather"
)

func constantForecast(s weather.Sample) weather.Forecast {
	fc := weather.Forecast{Base: time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC)}
	for h := range fc.Hourly {
		fc.Hourly[h] = s
	}
	return fc
}

func testHand(length, pitch float64) HandSpec {
	return HandSpec{
		Length: length, Pitch: pitch, Size: 8,
		Channel:  weather.Temperature,
		Spectrum: spectrum.Temperature,
		RangeMin: 55, RangeMax: 115,
	}
}

func TestTileCount(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		pitch  float64
		want   int
	}{
		// 120/6 divides exactly: pivot tile plus 20 steps.
		{"divisible", 120, 6, 21},
		// 125/6 leaves a remainder: a closing tile lands at 125.
		{"fractional remainder", 125, 6, 22},
		{"single step", 6, 6, 2},
	}

	fc := constantForecast(weather.Sample{Temperature: 70})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := testHand(tc.length, tc.pitch)
			if got := spec.TileCount(); got != tc.want {
				t.Errorf("TileCount() = %d, want %d", got, tc.want)
			}
			tiles := LayoutHand(spec, 0, 0, 0, fc, nil)
			if len(tiles) != tc.want {
				t.Errorf("len(LayoutHand()) = %d, want %d", len(tiles), tc.want)
			}

			// The hand must visually reach its full length.
			last := tiles[len(tiles)-1]
			dist := math.Hypot(last.X, last.Y)
			if math.Abs(dist-tc.length) > 1e-9 {
				t.Errorf("last tile at distance %g, want %g", dist, tc.length)
			}
		})
	}
}

func TestLayoutStraightLineWhenCalm(t *testing.T) {
	// 03:00:00, no wind: the second hand points straight up from the
	// pivot at angle 0.
	fc := constantForecast(weather.Sample{Temperature: 70, WindSpeed: 0})
	spec := testHand(160, 5)
	spec.Channel = weather.WindSpeed
	spec.Spectrum = spectrum.Wind
	spec.RangeMin, spec.RangeMax = 0, 45
	spec.Windy = true

	wind := NewWindState(DefaultWindParams(), spec.TileCount(), 1)
	wind.Advance()

	const pivotX, pivotY = 500.0, 300.0
	tiles := LayoutHand(spec, pivotX, pivotY, 0, fc, wind)

	for i, tile := range tiles {
		if math.Abs(tile.X-pivotX) > 1e-9 {
			t.Errorf("tile %d: x = %g, want %g (straight line)", i, tile.X, pivotX)
		}
		wantY := pivotY - float64(i)*spec.Pitch
		if i == len(tiles)-1 {
			wantY = pivotY - spec.Length
		}
		if math.Abs(tile.Y-wantY) > 1e-9 {
			t.Errorf("tile %d: y = %g, want %g", i, tile.Y, wantY)
		}
	}
}

func TestLayoutBendsWithWind(t *testing.T) {
	fc := constantForecast(weather.Sample{WindSpeed: 30})
	fc.Gust = 40
	spec := testHand(160, 5)
	spec.Channel = weather.WindSpeed
	spec.Spectrum = spectrum.Wind
	spec.RangeMin, spec.RangeMax = 0, 45
	spec.Windy = true

	wind := NewWindState(DefaultWindParams(), spec.TileCount(), 1)
	wind.Advance()

	tiles := LayoutHand(spec, 0, 0, 0, fc, wind)
	bent := false
	for _, tile := range tiles[1:] {
		if math.Abs(tile.X) > 1e-6 {
			bent = true
			break
		}
	}
	if !bent {
		t.Error("strong wind produced a perfectly straight second hand")
	}
}

func TestLayoutSamplesForecastAlongHand(t *testing.T) {
	// Temperature rises along the forecast, so tile colors must vary
	// along the hand: the weather value per tile is not constant.
	fc := weather.Forecast{Base: time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC)}
	for h := range fc.Hourly {
		fc.Hourly[h].Temperature = 55 + float64(h)*2
	}

	tiles := LayoutHand(testHand(120, 6), 0, 0, 0, fc, nil)
	first := tiles[0].Grad.Start
	varies := false
	for _, tile := range tiles[1:] {
		if tile.Grad.Start != first {
			varies = true
			break
		}
	}
	if !varies {
		t.Error("tile colors constant along hand; forecast horizon mapping is broken")
	}
}

func TestLayoutRangeMinYieldsColdEndpoint(t *testing.T) {
	fc := constantForecast(weather.Sample{Temperature: 55})
	spec := testHand(130, 5.2)

	cold := spectrum.Temperature.Map(55, 55, 115)
	tiles := LayoutHand(spec, 0, 0, 90, fc, nil)
	for i, tile := range tiles {
		if tile.Grad.Start != cold {
			t.Errorf("tile %d: base color %v, want cold endpoint %v", i, tile.Grad.Start, cold)
		}
	}
}

func TestLayoutIdempotent(t *testing.T) {
	fc := constantForecast(weather.Sample{Temperature: 80, WindSpeed: 25, Precipitation: 40})
	fc.Gust = 33
	spec := testHand(160, 5.5)
	spec.Windy = true
	spec.CrossAmplitude = 6
	spec.CrossFrequency = 0.7

	wind := NewWindState(DefaultWindParams(), spec.TileCount(), 7)
	for i := 0; i < 5; i++ {
		wind.Advance()
	}

	a := LayoutHand(spec, 100, 100, 42.5, fc, wind)
	b := LayoutHand(spec, 100, 100, 42.5, fc, wind)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different tile sequences")
	}
}

func TestHandSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*HandSpec)
		wantErr bool
	}{
		{"valid", func(h *HandSpec) {}, false},
		{"zero pitch", func(h *HandSpec) { h.Pitch = 0 }, true},
		{"negative pitch", func(h *HandSpec) { h.Pitch = -1 }, true},
		{"zero size", func(h *HandSpec) { h.Size = 0 }, true},
		{"pitch exceeds size", func(h *HandSpec) { h.Pitch = 10; h.Size = 8 }, true},
		{"zero tiles", func(h *HandSpec) { h.Length = 2; h.Pitch = 5 }, true},
		{"empty range", func(h *HandSpec) { h.RangeMin = 10; h.RangeMax = 10 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := testHand(120, 6)
			tc.mutate(&spec)
			err := spec.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestHubTiles(t *testing.T) {
	tiles := HubTiles(DefaultHubSpec(), 100, 100, 30)
	if len(tiles) != 9 {
		t.Fatalf("hub tile count = %d, want 9", len(tiles))
	}
	// Center tile of the 3x3 grid sits exactly on the pivot.
	center := tiles[4]
	if center.X != 100 || center.Y != 100 {
		t.Errorf("center hub tile at (%g,%g), want pivot (100,100)", center.X, center.Y)
	}

	if got := HubTiles(HubSpec{}, 0, 0, 0); got != nil {
		t.Errorf("disabled hub emitted %d tiles", len(got))
	}
}
