package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tileclock/internal/clockface"
	"tileclock/internal/config"
	"tileclock/internal/log"
	"tileclock/internal/render"
	"tileclock/internal/scheduler"
	"tileclock/internal/spectrum"
	"tileclock/internal/weather"
)

// edgeMargin keeps the pivot away from the screen corner when placement
// is derived from screen geometry.
const (
	edgeMarginX = 250
	edgeMarginY = 200
)

func main() {
	// Optional .env supplying the environment defaults below.
	godotenv.Load()

	configPath := flag.String("config", os.Getenv("TILECLOCK_CONFIG"), "Path to the JSON configuration file")
	debugFlag := flag.Bool("debug", os.Getenv("TILECLOCK_DEBUG") != "", "Enable verbose debug logging")
	flag.Parse()

	if err := log.Init(*debugFlag); err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	hour, err := buildHand(cfg.Hour, false)
	if err != nil {
		log.Fatalf("hour hand: %v", err)
	}
	minute, err := buildHand(cfg.Minute, false)
	if err != nil {
		log.Fatalf("minute hand: %v", err)
	}
	second, err := buildHand(cfg.Second, true)
	if err != nil {
		log.Fatalf("second hand: %v", err)
	}

	pivotX, pivotY := cfg.PivotX, cfg.PivotY
	if pivotX == 0 && pivotY == 0 {
		if w, _, err := render.ScreenSize(); err == nil {
			pivotX, pivotY = w-edgeMarginX, edgeMarginY
		} else {
			log.Warnf("cannot query screen geometry, using fallback placement: %v", err)
			pivotX, pivotY = 400, 300
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	feed := weather.NewSynthetic(seed, time.Now())
	if err := feed.StartRefresh(time.Duration(cfg.RefreshMinutes) * time.Minute); err != nil {
		log.Fatalf("forecast refresh: %v", err)
	}
	defer feed.Stop()

	windParams := clockface.WindParams{
		CalmMax:         cfg.Wind.CalmMax,
		BreezeMax:       cfg.Wind.BreezeMax,
		WindyMax:        cfg.Wind.WindyMax,
		ChaosFull:       cfg.Wind.ChaosFull,
		BreezeAmplitude: cfg.Wind.BreezeAmplitude,
		WindyGain:       cfg.Wind.WindyGain,
		GustAmplitude:   cfg.Wind.GustAmplitude,
		GustGain:        cfg.Wind.GustGain,
		JitterAmplitude: cfg.Wind.JitterAmplitude,
		PhaseStep:       cfg.Wind.PhaseStep,
	}
	wind := clockface.NewWindState(windParams, second.TileCount(), seed)

	// The window covers the hand sweep plus headroom for wind bend.
	reach := hour.Length
	if minute.Length > reach {
		reach = minute.Length
	}
	if second.Length > reach {
		reach = second.Length
	}
	span := int(2 * (reach + 60))

	window, err := render.Open(pivotX-span/2, pivotY-span/2, span, span, "tileclock")
	if err != nil {
		log.Fatalf("render window: %v", err)
	}
	defer window.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(scheduler.Options{
		Tick:     time.Duration(cfg.TickMillis) * time.Millisecond,
		PivotX:   float64(pivotX),
		PivotY:   float64(pivotY),
		Hour:     hour,
		Minute:   minute,
		Second:   second,
		Hub: clockface.HubSpec{
			Enabled: cfg.Hub.Enabled,
			Grid:    cfg.Hub.Grid,
			Size:    cfg.Hub.Size,
			Spacing: cfg.Hub.Spacing,
		},
		Feed:     weather.NewFallback(feed),
		Wind:     wind,
		Renderer: window,
	})
	sched.Run(ctx)
}

func buildHand(h config.Hand, windy bool) (clockface.HandSpec, error) {
	ch, err := weather.ParseChannel(h.Channel)
	if err != nil {
		return clockface.HandSpec{}, err
	}
	spec := clockface.HandSpec{
		Length:         h.Length,
		Pitch:          h.TilePitch,
		Size:           h.TileSize,
		Channel:        ch,
		Spectrum:       spectrum.ForChannel(ch),
		RangeMin:       h.RangeMin,
		RangeMax:       h.RangeMax,
		CrossAmplitude: h.CrossAmp,
		CrossFrequency: h.CrossFreq,
		Windy:          windy,
	}
	return spec, spec.Validate()
}
