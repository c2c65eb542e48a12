// Package render turns tile descriptors into pixels. The concrete
// backend is a borderless, transparent, always-on-top raylib window
// that draws each tile as a small gradient quad; the clock core only
// sees the scheduler.Renderer interface, so it stays testable without a
// display.
package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tileclock/internal/clockface"
)

// Window is the raylib render backend. It owns a screen region around
// the clock pivot and translates tile screen coordinates into it.
type Window struct {
	originX float64
	originY float64
	open    bool
}

// Open creates the overlay window covering the given screen rectangle.
// The window is undecorated, transparent and click-through, so the
// clock occupies no usable screen area.
func Open(x, y, width, height int, title string) (*Window, error) {
	rl.SetConfigFlags(rl.FlagWindowUndecorated |
		rl.FlagWindowTransparent |
		rl.FlagWindowTopmost |
		rl.FlagWindowMousePassthrough |
		rl.FlagWindowUnfocused)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("raylib window failed to open")
	}
	rl.SetWindowPosition(int32(x), int32(y))

	return &Window{originX: float64(x), originY: float64(y), open: true}, nil
}

// RenderFrame draws one complete frame. Tiles arrive in screen
// coordinates; anything outside the window rectangle is clipped by
// raylib.
func (w *Window) RenderFrame(tiles []clockface.Tile) error {
	if !w.open {
		return fmt.Errorf("render window is closed")
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Blank)

	for i := range tiles {
		t := &tiles[i]
		rec := rl.NewRectangle(
			float32(t.X-w.originX-t.W/2),
			float32(t.Y-w.originY-t.H/2),
			float32(t.W),
			float32(t.H),
		)
		start := toRGBA(t.Grad.Start)
		end := toRGBA(t.Grad.End)
		rl.DrawRectangleGradientEx(rec, start, end, end, start)
	}

	rl.EndDrawing()
	return nil
}

// ShouldClose reports whether the user closed the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Close tears the window down.
func (w *Window) Close() {
	if w.open {
		rl.CloseWindow()
		w.open = false
	}
}

func toRGBA(c colorful.Color) rl.Color {
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}
