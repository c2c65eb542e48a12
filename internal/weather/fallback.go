package weather

import (
	"time"

	"github.com/sony/gobreaker"

	"tileclock/internal/log"
)

// Neutral is the forecast substituted when no sample has ever been
// obtained: mild, calm and dry, so the clock renders sensibly from the
// first tick even with a dead feed.
func Neutral(now time.Time) Forecast {
	fc := Forecast{Base: now}
	for h := range fc.Hourly {
		fc.Hourly[h] = Sample{Temperature: 70, WindSpeed: 0, Precipitation: 0}
	}
	return fc
}

// Fallback wraps a Feed with a circuit breaker and a last-known-good
// cache. A failing or open-circuit feed degrades to the cached forecast
// rather than surfacing an error; the clock never stops on feed trouble.
type Fallback struct {
	feed    Feed
	breaker *gobreaker.CircuitBreaker
	last    Forecast
	primed  bool
}

// NewFallback builds the wrapper. Breaker settings follow the usual
// shape for a flaky upstream: trip fast, retry after a minute.
func NewFallback(feed Feed) *Fallback {
	return &Fallback{
		feed: feed,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "weather-feed",
			MaxRequests: 3,
			Interval:    30 * time.Second,
			Timeout:     time.Minute,
		}),
	}
}

// Forecast polls the underlying feed through the breaker. It never
// returns an error: failures yield the last good forecast, or Neutral
// if the feed has never answered.
func (f *Fallback) Forecast(now time.Time) (Forecast, error) {
	v, err := f.breaker.Execute(func() (interface{}, error) {
		return f.feed.Forecast(now)
	})
	if err != nil {
		if f.primed {
			log.Warnf("weather feed unavailable, using cached forecast: %v", err)
			fc := f.last
			fc.Base = now
			return fc, nil
		}
		log.Warnf("weather feed unavailable, no cached forecast, using neutral defaults: %v", err)
		return Neutral(now), nil
	}

	fc := v.(Forecast)
	f.last = fc
	f.primed = true
	return fc, nil
}
