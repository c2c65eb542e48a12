package weather

import (
	"math/rand"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"tileclock/internal/log"
)

// Synthetic generates a plausible diurnal forecast: afternoon heat peak,
// gusty afternoon and evening winds, storm-hour rain probability. It
// stands in for a real forecast provider and regenerates itself on a
// timer so the display drifts the way a refreshed feed would.
type Synthetic struct {
	mu   sync.RWMutex
	rng  *rand.Rand
	cur  Forecast
	cron *gocron.Scheduler
}

// NewSynthetic seeds the generator and produces an initial forecast.
func NewSynthetic(seed int64, now time.Time) *Synthetic {
	s := &Synthetic{rng: rand.New(rand.NewSource(seed))}
	s.Regenerate(now)
	return s
}

// Regenerate rebuilds the 24-hour curves.
func (s *Synthetic) Regenerate(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fc Forecast
	fc.Base = now

	for h := 0; h < 24; h++ {
		var temp float64
		if h >= 6 && h <= 18 {
			temp = 75 + float64(h-12)*2
		} else {
			temp = 65 + float64(s.rng.Intn(11)-5)
		}
		temp += float64(s.rng.Intn(24) - 8)
		fc.Hourly[h].Temperature = clamp(temp, 55, 115)

		var base, gust float64
		switch {
		case h >= 10 && h <= 16: // afternoon winds
			base = float64(8 + s.rng.Intn(18))
			gust = float64(5 + s.rng.Intn(16))
		case h >= 18 && h <= 22: // evening storms
			base = float64(15 + s.rng.Intn(21))
			gust = float64(10 + s.rng.Intn(16))
		default:
			base = float64(2 + s.rng.Intn(11))
			gust = float64(s.rng.Intn(9))
		}
		fc.Hourly[h].WindSpeed = clamp(base+gust, 0, 45)

		if h >= 13 && h <= 18 {
			fc.Hourly[h].Precipitation = float64(30 + s.rng.Intn(66))
		} else {
			fc.Hourly[h].Precipitation = float64(s.rng.Intn(46))
		}
	}

	fc.Gust = fc.Hourly[now.Hour()].WindSpeed + float64(3+s.rng.Intn(10))
	s.cur = fc
}

// Forecast returns the current forecast re-anchored at now.
func (s *Synthetic) Forecast(now time.Time) (Forecast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fc := s.cur
	fc.Base = now
	return fc, nil
}

// StartRefresh schedules periodic regeneration. Stop releases the timer.
func (s *Synthetic) StartRefresh(every time.Duration) error {
	s.cron = gocron.NewScheduler(time.UTC)
	_, err := s.cron.Every(every).Do(func() {
		log.Debugf("regenerating synthetic forecast")
		s.Regenerate(time.Now())
	})
	if err != nil {
		return err
	}
	s.cron.StartAsync()
	return nil
}

// Stop halts the refresh job, if one was started.
func (s *Synthetic) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
