// Package config loads and validates the static clock configuration.
// Configuration is a single optional JSON file; every field has a
// compiled-in default matching the shipped tuning.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Hand is the per-hand geometry and color assignment.
type Hand struct {
	Length    float64 `json:"length" validate:"gt=0"`
	TilePitch float64 `json:"tile_pitch" validate:"gt=0"`
	TileSize  float64 `json:"tile_size" validate:"gt=0"`
	Channel   string  `json:"channel" validate:"oneof=temperature wind precipitation"`
	RangeMin  float64 `json:"range_min"`
	RangeMax  float64 `json:"range_max"`
	CrossAmp  float64 `json:"cross_amplitude" validate:"gte=0"`
	CrossFreq float64 `json:"cross_frequency" validate:"gte=0"`
}

// Wind holds the regime thresholds and amplitude tuning. The numbers
// are tunable, not load-bearing; only monotonic growth and continuity
// across thresholds matter.
type Wind struct {
	CalmMax         float64 `json:"calm_max" validate:"gte=0"`
	BreezeMax       float64 `json:"breeze_max"`
	WindyMax        float64 `json:"windy_max"`
	ChaosFull       float64 `json:"chaos_full"`
	BreezeAmplitude float64 `json:"breeze_amplitude" validate:"gte=0"`
	WindyGain       float64 `json:"windy_gain" validate:"gte=0"`
	GustAmplitude   float64 `json:"gust_amplitude" validate:"gte=0"`
	GustGain        float64 `json:"gust_gain" validate:"gte=0"`
	JitterAmplitude float64 `json:"jitter_amplitude" validate:"gte=0"`
	PhaseStep       float64 `json:"phase_step" validate:"gt=0"`
}

// Hub configures the rainbow grid at the pivot.
type Hub struct {
	Enabled bool    `json:"enabled"`
	Grid    int     `json:"grid" validate:"gte=0"`
	Size    float64 `json:"size" validate:"gte=0"`
	Spacing float64 `json:"spacing" validate:"gte=0"`
}

// Config is the full static configuration.
type Config struct {
	TickMillis     int `json:"tick_millis" validate:"gt=0"`
	RefreshMinutes int `json:"forecast_refresh_minutes" validate:"gt=0"`

	// Pivot placement; zero values mean "derive from screen geometry"
	// (near the top-right corner of the primary monitor).
	PivotX int `json:"pivot_x"`
	PivotY int `json:"pivot_y"`

	Seed int64 `json:"seed"`

	Hour   Hand `json:"hour"`
	Minute Hand `json:"minute"`
	Second Hand `json:"second"`

	Wind Wind `json:"wind"`
	Hub  Hub  `json:"hub"`
}

// Default is the shipped tuning: hour hand shows rain probability,
// minute hand temperature, second hand wind.
func Default() Config {
	return Config{
		TickMillis:     100,
		RefreshMinutes: 30,
		Hour: Hand{
			Length: 100, TilePitch: 5, TileSize: 8,
			Channel: "precipitation", RangeMin: 0, RangeMax: 100,
			CrossAmp: 12, CrossFreq: 0.3,
		},
		Minute: Hand{
			Length: 130, TilePitch: 5.2, TileSize: 8,
			Channel: "temperature", RangeMin: 55, RangeMax: 115,
			CrossAmp: 8, CrossFreq: 0.5,
		},
		Second: Hand{
			Length: 160, TilePitch: 5.5, TileSize: 6,
			Channel: "wind", RangeMin: 0, RangeMax: 45,
			CrossAmp: 6, CrossFreq: 0.7,
		},
		Wind: Wind{
			CalmMax: 2, BreezeMax: 8, WindyMax: 18, ChaosFull: 35,
			BreezeAmplitude: 3, WindyGain: 0.8,
			GustAmplitude: 8, GustGain: 0.6, JitterAmplitude: 2,
			PhaseStep: 0.1,
		},
		Hub: Hub{Enabled: true, Grid: 3, Size: 10, Spacing: 10},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults; a present but unreadable or invalid file is a
// fatal configuration error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate applies the struct tags plus the cross-field geometry rules
// the tags can't express. Any error here aborts startup.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	for _, h := range []struct {
		name string
		hand Hand
	}{{"hour", c.Hour}, {"minute", c.Minute}, {"second", c.Second}} {
		if h.hand.TilePitch > h.hand.TileSize {
			return fmt.Errorf("%s hand: tile_pitch %g exceeds tile_size %g", h.name, h.hand.TilePitch, h.hand.TileSize)
		}
		if h.hand.Length < h.hand.TilePitch {
			return fmt.Errorf("%s hand: length %g yields zero tiles at pitch %g", h.name, h.hand.Length, h.hand.TilePitch)
		}
		if h.hand.RangeMax <= h.hand.RangeMin {
			return fmt.Errorf("%s hand: empty color range [%g,%g]", h.name, h.hand.RangeMin, h.hand.RangeMax)
		}
	}

	if !(c.Wind.CalmMax < c.Wind.BreezeMax && c.Wind.BreezeMax < c.Wind.WindyMax && c.Wind.WindyMax < c.Wind.ChaosFull) {
		return fmt.Errorf("wind thresholds must increase: calm %g < breeze %g < windy %g < chaos %g",
			c.Wind.CalmMax, c.Wind.BreezeMax, c.Wind.WindyMax, c.Wind.ChaosFull)
	}
	return nil
}
