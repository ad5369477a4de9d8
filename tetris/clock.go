package tetris

import (
	"context"
	"sync"
	"time"
)

// Clock schedules a recurring callback. Every starts calling fn once per
// interval until the returned stop function is called. stop must be safe to
// call more than once and from inside fn.
type Clock interface {
	Every(interval time.Duration, fn func()) (stop func())
}

// TickerClock runs each recurring callback on its own goroutine driven by a
// time.Ticker.
type TickerClock struct{}

// Every implements Clock.
func (TickerClock) Every(interval time.Duration, fn func()) func() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				fn()
			}
		}
	}()

	return cancel
}

type manualTimer struct {
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

// ManualClock is a Clock whose time only moves when Advance is called. Hosts
// that own a frame loop advance it once per frame; tests advance it directly.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

// NewManualClock returns a ManualClock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Every implements Clock. The first call to fn happens one interval after
// the current time.
func (c *ManualClock) Every(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		panic("tetris: clock interval must be positive")
	}

	c.mu.Lock()
	t := &manualTimer{
		interval: interval,
		next:     c.now + interval,
		fn:       fn,
	}
	c.timers = append(c.timers, t)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		t.stopped = true
	}
}

// Now returns the total time advanced so far.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Active returns the number of timers that have not been stopped.
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d and fires every due callback, in due
// time order. Callbacks run without the clock lock held, so they may stop
// timers or start new ones.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		due := c.nextDue(target)
		if due == nil {
			c.now = target
			c.timers = c.live()
			c.mu.Unlock()
			return
		}
		c.now = due.next
		due.next += due.interval
		fn := due.fn
		c.mu.Unlock()

		fn()
	}
}

// nextDue returns the live timer with the earliest deadline at or before
// target. Ties go to the timer registered first.
func (c *ManualClock) nextDue(target time.Duration) *manualTimer {
	var due *manualTimer
	for _, t := range c.timers {
		if t.stopped || t.next > target {
			continue
		}
		if due == nil || t.next < due.next {
			due = t
		}
	}
	return due
}

func (c *ManualClock) live() []*manualTimer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	return live
}
