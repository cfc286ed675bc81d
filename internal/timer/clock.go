package timer

import "time"

// Ticker is the part of *time.Ticker the countdown needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tick sources. Tests substitute a manual implementation.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// RealClock is backed by time.Ticker.
type RealClock struct{}

func (RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }
