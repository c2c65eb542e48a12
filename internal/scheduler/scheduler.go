// Package scheduler drives the animation: a fixed-period tick loop that
// snapshots the clock, polls the weather feed, advances the wind state,
// lays out every hand and hands the frame to the renderer.
package scheduler

import (
	"context"
	"time"

	"tileclock/internal/clockface"
	"tileclock/internal/log"
	"tileclock/internal/weather"
)

// Renderer consumes one frame per tick. The scheduler never waits for
// acknowledgment beyond the call returning; a failing renderer costs
// that frame, nothing more. ShouldClose is the renderer-side shutdown
// signal (window closed).
type Renderer interface {
	RenderFrame(tiles []clockface.Tile) error
	ShouldClose() bool
}

// State of the scheduler loop.
type State int

const (
	Running State = iota
	Stopped
)

// Scheduler owns the cross-tick state (the wind phase accumulators) and
// all per-tick orchestration. Single goroutine; nothing here is shared.
type Scheduler struct {
	tick   time.Duration
	pivotX float64
	pivotY float64

	hour   clockface.HandSpec
	minute clockface.HandSpec
	second clockface.HandSpec
	hub    clockface.HubSpec

	feed     weather.Feed
	wind     *clockface.WindState
	renderer Renderer

	now   func() time.Time
	state State
}

// Options collects the scheduler wiring.
type Options struct {
	Tick           time.Duration
	PivotX, PivotY float64
	Hour           clockface.HandSpec
	Minute         clockface.HandSpec
	Second         clockface.HandSpec
	Hub            clockface.HubSpec
	Feed           weather.Feed
	Wind           *clockface.WindState
	Renderer       Renderer
	Now            func() time.Time // nil means time.Now
}

// New builds a scheduler in the Running state.
func New(opts Options) *Scheduler {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		tick:     opts.Tick,
		pivotX:   opts.PivotX,
		pivotY:   opts.PivotY,
		hour:     opts.Hour,
		minute:   opts.Minute,
		second:   opts.Second,
		hub:      opts.Hub,
		feed:     opts.Feed,
		wind:     opts.Wind,
		renderer: opts.Renderer,
		now:      now,
		state:    Running,
	}
}

// State reports the loop state.
func (s *Scheduler) State() State {
	return s.state
}

// Run executes the tick loop until the context is cancelled or the
// renderer reports closure. Per-tick errors never stop the loop.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	log.Infow("scheduler running", "tick", s.tick, "pivot_x", s.pivotX, "pivot_y", s.pivotY)

	for {
		select {
		case <-ctx.Done():
			s.state = Stopped
			log.Infof("scheduler stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			if s.renderer.ShouldClose() {
				s.state = Stopped
				log.Infof("scheduler stopped: renderer closed")
				return
			}
			tiles := s.Frame(s.now())
			if err := s.renderer.RenderFrame(tiles); err != nil {
				log.Warnf("frame dropped: %v", err)
			}
		}
	}
}

// Frame performs one tick: advance wind phase, poll the feed, compute
// angles and lay out all hands plus the hub. The returned tiles belong
// to this frame alone.
func (s *Scheduler) Frame(now time.Time) []clockface.Tile {
	s.wind.Advance()

	fc, err := s.feed.Forecast(now)
	if err != nil {
		// The feed is normally wrapped in weather.Fallback and never
		// errors; a bare feed failure degrades to neutral conditions.
		log.Warnf("weather feed error, using neutral defaults: %v", err)
		fc = weather.Neutral(now)
	}

	t := clockface.Snapshot(now)
	ang := clockface.HandAngles(t)

	tiles := clockface.LayoutHand(s.hour, s.pivotX, s.pivotY, ang.Hour, fc, nil)
	tiles = append(tiles, clockface.LayoutHand(s.minute, s.pivotX, s.pivotY, ang.Minute, fc, nil)...)
	tiles = append(tiles, clockface.LayoutHand(s.second, s.pivotX, s.pivotY, ang.Second, fc, s.wind)...)
	tiles = append(tiles, clockface.HubTiles(s.hub, s.pivotX, s.pivotY, float64(t.Second)+t.Fraction)...)
	return tiles
}
