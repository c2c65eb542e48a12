package clockface

import (
	"math"
	"math/rand"
)

// WindParams are the tunable constants of the wind regimes. Thresholds
// split wind speed into calm/breezy/windy/violent bands; amplitudes are
// blended so displacement is continuous in wind speed across every
// threshold.
type WindParams struct {
	CalmMax   float64 // mph; at or below this the second hand is straight
	BreezeMax float64
	WindyMax  float64
	ChaosFull float64 // wind speed at which chaos saturates at 1

	BreezeAmplitude float64 // px, primary wave at full breeze
	WindyGain       float64 // px per mph above BreezeMax, superposition terms
	GustAmplitude   float64 // px at full chaos, gust wave
	GustGain        float64 // px per mph of gust excess over wind, at full chaos
	JitterAmplitude float64 // px at full chaos

	PhaseStep float64 // phase advance per tick, in animation-time units
}

// DefaultWindParams mirrors the tuning the clock shipped with.
func DefaultWindParams() WindParams {
	return WindParams{
		CalmMax:         2,
		BreezeMax:       8,
		WindyMax:        18,
		ChaosFull:       35,
		BreezeAmplitude: 3,
		WindyGain:       0.8,
		GustAmplitude:   8,
		GustGain:        0.6,
		JitterAmplitude: 2,
		PhaseStep:       0.1,
	}
}

// WindState carries the only animation state that survives across
// ticks: a global phase accumulator, fixed per-tile phase offsets, and
// the per-tick jitter samples for the violent regime. It is owned by
// the frame scheduler and passed by pointer into layout; nothing else
// may mutate it.
type WindState struct {
	params  WindParams
	phase   float64
	offsets []float64
	jitter  []float64
	rng     *rand.Rand
}

// NewWindState allocates state for a hand of up to tiles tiles.
func NewWindState(params WindParams, tiles int, seed int64) *WindState {
	rng := rand.New(rand.NewSource(seed))
	w := &WindState{
		params:  params,
		offsets: make([]float64, tiles),
		jitter:  make([]float64, tiles),
	}
	for i := range w.offsets {
		w.offsets[i] = rng.Float64() * 2 * math.Pi
	}
	w.rng = rng
	return w
}

// Advance moves the phase accumulator by one tick and resamples the
// jitter terms. It runs once per tick regardless of wind regime so
// regime transitions never reset phase.
func (w *WindState) Advance() {
	w.phase += w.params.PhaseStep
	for i := range w.jitter {
		w.jitter[i] = w.rng.Float64()*2 - 1
	}
}

// Phase exposes the accumulator for cosmetic cross-axis animation.
func (w *WindState) Phase() float64 {
	return w.phase
}

// Displacement is the lateral offset, in pixels, of tile index tile at
// normalized hand position t for the given wind and gust speeds. Pure
// with respect to the state contents: it does not mutate w.
func (w *WindState) Displacement(speed, gust float64, tile int, t float64) float64 {
	p := w.params
	if speed <= p.CalmMax {
		return 0
	}
	off := w.offsets[tile%len(w.offsets)]

	// Primary wave: ramps in over the breezy band, then keeps growing
	// gently so crossing BreezeMax is seamless.
	a1 := p.BreezeAmplitude * ramp(speed, p.CalmMax, p.BreezeMax)
	d := a1 * math.Sin(w.phase*0.8+off+t*math.Pi)

	// Superposition terms for the windy band.
	if a2 := p.WindyGain * math.Max(0, speed-p.BreezeMax); a2 > 0 {
		d += a2 * math.Sin(w.phase*1.5+off*1.7+t*math.Pi*1.5)
		d += a2 * 0.4 * math.Sin(w.phase*2.8+off*2.1)
	}

	// Violent band: rapid gust wave plus bounded jitter, both scaled by
	// a chaos level that fades in above WindyMax.
	if chaos := ramp(speed, p.WindyMax, p.ChaosFull); chaos > 0 {
		gustAmp := p.GustAmplitude + p.GustGain*math.Max(0, gust-speed)
		d += chaos * gustAmp * math.Sin(w.phase*8.5+off*3.1+t*math.Pi*2)
		d += chaos * p.JitterAmplitude * w.jitter[tile%len(w.jitter)]
	}

	return d
}

// ramp is 0 at or below lo, 1 at or above hi, linear between.
func ramp(v, lo, hi float64) float64 {
	if v <= lo {
		return 0
	}
	if v >= hi {
		return 1
	}
	return (v - lo) / (hi - lo)
}
