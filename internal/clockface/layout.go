package clockface

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tileclock/internal/spectrum"
	"tileclock/internal/weather"
)

// Gradient is the two-stop color pair a tile is shaded with, center to
// edge.
type Gradient struct {
	Start colorful.Color
	End   colorful.Color
}

// Tile is one positioned drawable unit. X,Y is the tile center in
// screen coordinates. Tiles are built fresh every tick and never
// mutated after creation.
type Tile struct {
	X, Y float64
	W, H float64
	Grad Gradient
}

// HandSpec is the static configuration of one hand.
type HandSpec struct {
	Length float64 // px from pivot to tip
	Pitch  float64 // px between consecutive tile centers
	Size   float64 // tile side, px

	Channel  weather.Channel
	Spectrum spectrum.Spectrum
	RangeMin float64
	RangeMax float64

	// Cross-axis value modulation, cosmetic: the tile's second gradient
	// color samples the spectrum at value + CrossAmplitude·wave(i).
	CrossAmplitude float64
	CrossFrequency float64

	// Windy hands bend with the wind displacement (the second hand).
	Windy bool
}

// Validate reports malformed geometry. Checked once at startup; layout
// assumes a valid spec.
func (h HandSpec) Validate() error {
	if h.Pitch <= 0 {
		return fmt.Errorf("tile pitch must be positive, got %g", h.Pitch)
	}
	if h.Size <= 0 {
		return fmt.Errorf("tile size must be positive, got %g", h.Size)
	}
	if h.Pitch > h.Size {
		return fmt.Errorf("tile pitch %g exceeds tile size %g, hand would have gaps", h.Pitch, h.Size)
	}
	if h.Length < h.Pitch {
		return fmt.Errorf("hand length %g shorter than tile pitch %g, yields no hand", h.Length, h.Pitch)
	}
	if h.RangeMax <= h.RangeMin {
		return fmt.Errorf("color range [%g,%g] is empty", h.RangeMin, h.RangeMax)
	}
	return nil
}

// tileDistances walks the hand from pivot to tip in Pitch steps,
// keeping a closing tile at the fractional remainder so the hand
// visually reaches its full length.
func (h HandSpec) tileDistances() []float64 {
	n := int(math.Floor(h.Length / h.Pitch))
	ds := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		ds = append(ds, float64(i)*h.Pitch)
	}
	if rem := h.Length - float64(n)*h.Pitch; rem > 1e-9 {
		ds = append(ds, h.Length)
	}
	return ds
}

// TileCount is the number of tiles LayoutHand will emit for this spec.
func (h HandSpec) TileCount() int {
	return len(h.tileDistances())
}

// LayoutHand emits the ordered tile sequence for one hand: pivot
// outward, one tile per pitch step, each colored from the forecast at
// the horizon its position implies (t=0 now, t=1 +24h). Pure: identical
// inputs, including the wind state contents, produce identical output.
func LayoutHand(spec HandSpec, pivotX, pivotY, angleDeg float64, fc weather.Forecast, wind *WindState) []Tile {
	rad := angleDeg * math.Pi / 180
	alongX, alongY := math.Sin(rad), -math.Cos(rad)
	perpX, perpY := math.Cos(rad), math.Sin(rad)

	now := fc.Now()

	ds := spec.tileDistances()
	tiles := make([]Tile, 0, len(ds))
	for i, d := range ds {
		t := d / spec.Length
		x := pivotX + d*alongX
		y := pivotY + d*alongY

		if spec.Windy && wind != nil {
			lat := wind.Displacement(now.WindSpeed, fc.Gust, i, t)
			x += lat * perpX
			y += lat * perpY
		}

		value := fc.At(t * 24).Value(spec.Channel)

		cross := 0.0
		if spec.CrossAmplitude != 0 {
			arg := float64(i) * spec.CrossFrequency
			if spec.Windy && wind != nil {
				cross = spec.CrossAmplitude * math.Cos(arg+wind.Phase())
			} else {
				cross = spec.CrossAmplitude * math.Sin(arg)
			}
		}

		tiles = append(tiles, Tile{
			X: x, Y: y,
			W: spec.Size, H: spec.Size,
			Grad: Gradient{
				Start: spec.Spectrum.Map(value, spec.RangeMin, spec.RangeMax),
				End:   spec.Spectrum.Map(value+cross, spec.RangeMin, spec.RangeMax),
			},
		})
	}
	return tiles
}
