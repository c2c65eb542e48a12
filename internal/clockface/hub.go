package clockface

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HubSpec configures the pulsing rainbow grid at the pivot.
type HubSpec struct {
	Enabled bool
	Grid    int     // grid side, e.g. 3 for 3x3
	Size    float64 // tile side, px
	Spacing float64 // px between tile centers
}

// DefaultHubSpec is the 3x3 hub the clock shipped with.
func DefaultHubSpec() HubSpec {
	return HubSpec{Enabled: true, Grid: 3, Size: 10, Spacing: 10}
}

// HubTiles emits the pivot grid, hues cycling with the current second
// and lightness pulsing per tile.
func HubTiles(spec HubSpec, pivotX, pivotY, second float64) []Tile {
	if !spec.Enabled || spec.Grid <= 0 {
		return nil
	}

	half := float64(spec.Grid-1) / 2
	tiles := make([]Tile, 0, spec.Grid*spec.Grid)
	for i := 0; i < spec.Grid*spec.Grid; i++ {
		row := i / spec.Grid
		col := i % spec.Grid
		x := pivotX + (float64(col)-half)*spec.Spacing
		y := pivotY + (float64(row)-half)*spec.Spacing

		hue1 := math.Mod(second*12+float64(i)*40, 360)
		hue2 := math.Mod(hue1+80, 360)
		pulse := 0.6 + 0.4*math.Sin(second*0.6+float64(i)*0.9)

		tiles = append(tiles, Tile{
			X: x, Y: y,
			W: spec.Size, H: spec.Size,
			Grad: Gradient{
				Start: colorful.Hsv(hue1, 0.8, pulse),
				End:   colorful.Hsv(hue2, 0.6, pulse*0.9),
			},
		})
	}
	return tiles
}
