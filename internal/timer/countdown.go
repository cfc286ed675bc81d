// Package timer implements the cooking countdown: a duration that ticks
// down once per second while running, reports an MM:SS display on every
// tick and signals completion exactly once per run.
package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

type State int

const (
	Idle State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	ErrRunning          = errors.New("timer is running")
	ErrNegativeDuration = errors.New("duration must not be negative")
	ErrNothingToCount   = errors.New("nothing to count down")
	ErrTooLong          = errors.New("duration does not fit MM:SS")
)

const (
	tickInterval = time.Second

	// MaxDuration is the longest countdown, the largest value MM:SS can show.
	MaxDuration = 99*time.Minute + 59*time.Second
)

// Listener receives countdown events. Both callbacks run on the tick
// goroutine, outside the countdown's lock; they must not call Pause or
// Reset. Nil callbacks are skipped.
type Listener struct {
	OnTick     func(display string)
	OnComplete func()
}

type Countdown struct {
	mu        sync.Mutex
	clock     Clock
	listener  Listener
	remaining time.Duration
	state     State

	stop chan struct{}
	done chan struct{}
}

// New returns an idle countdown with nothing to count. A nil clock means
// RealClock.
func New(clock Clock, l Listener) *Countdown {
	if clock == nil {
		clock = RealClock{}
	}
	return &Countdown{clock: clock, listener: l}
}

// SetDuration replaces the remaining time. It is refused while running; a
// completed countdown goes back to Idle.
func (c *Countdown) SetDuration(d time.Duration) error {
	if d < 0 {
		return ErrNegativeDuration
	}
	if d > MaxDuration {
		return ErrTooLong
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Running {
		return ErrRunning
	}
	c.remaining = d
	c.state = Idle
	return nil
}

// SetTime is SetDuration for a minutes and seconds pair.
func (c *Countdown) SetTime(minutes, seconds int) error {
	if minutes < 0 || seconds < 0 {
		return ErrNegativeDuration
	}
	if minutes > int(MaxDuration/time.Minute) || seconds > int(MaxDuration/time.Second) {
		return ErrTooLong
	}
	return c.SetDuration(time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second)
}

// Start begins or resumes ticking from the remaining time. Starting a
// running countdown is a no-op; less than one second left is
// ErrNothingToCount.
func (c *Countdown) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Running {
		return nil
	}
	if c.remaining < tickInterval {
		return ErrNothingToCount
	}

	c.state = Running
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.clock.NewTicker(tickInterval), c.stop, c.done)
	return nil
}

// Pause stops ticking and keeps the remaining time. When it returns no
// further tick is delivered for this run.
func (c *Countdown) Pause() {
	c.mu.Lock()
	if c.state != Running {
		c.mu.Unlock()
		return
	}
	c.state = Idle
	stop, done := c.stop, c.done
	c.mu.Unlock()

	close(stop)
	<-done
}

// Reset stops the countdown and clears the remaining time.
func (c *Countdown) Reset() {
	c.Pause()

	c.mu.Lock()
	c.remaining = 0
	c.state = Idle
	c.mu.Unlock()
}

func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Display renders the remaining time as MM:SS.
func (c *Countdown) Display() string {
	return Format(c.Remaining())
}

// Format renders d as MM:SS, flooring to whole seconds.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (c *Countdown) run(t Ticker, stop, done chan struct{}) {
	defer close(done)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !c.tick(stop) {
				return
			}
		}
	}
}

// tick advances a running countdown by one second and reports whether it
// is still running afterwards. A tick from a run that has since been paused
// is dropped, even if a newer run is already going.
func (c *Countdown) tick(stop chan struct{}) bool {
	c.mu.Lock()
	if c.state != Running || c.stop != stop {
		c.mu.Unlock()
		return false
	}

	c.remaining -= tickInterval
	completed := c.remaining <= 0
	if completed {
		c.remaining = 0
		c.state = Completed
	}
	display := Format(c.remaining)
	l := c.listener
	c.mu.Unlock()

	if l.OnTick != nil {
		l.OnTick(display)
	}
	if completed && l.OnComplete != nil {
		l.OnComplete()
	}
	return !completed
}
