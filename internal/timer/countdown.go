// Package timer drives the one-second countdowns for a running challenge
// and the breathing intro.
package timer

import (
	"context"
	"sync"
	"time"

	"github.com/fardannozami/sparks/internal/domain"
)

// DefaultChallengeSeconds is used for templates without a duration.
const DefaultChallengeSeconds = 20 * 60

// ChallengeSeconds is the countdown length for tmpl.
func ChallengeSeconds(tmpl domain.ChallengeTemplate) int {
	if tmpl.DurationMin != nil && *tmpl.DurationMin > 0 {
		return *tmpl.DurationMin * 60
	}
	return DefaultChallengeSeconds
}

// Remaining is what is left of a saved timer at now, never below zero.
func Remaining(state domain.TimerState, now time.Time) int {
	elapsed := int(now.Sub(state.StartTime) / time.Second)
	if left := state.TotalSeconds - elapsed; left > 0 {
		return left
	}
	return 0
}

// Countdown ticks once per interval until it reaches zero, is stopped, or
// its context is cancelled. onDone only fires when the count reaches zero.
type Countdown struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCountdown() *Countdown {
	return &Countdown{interval: time.Second}
}

// NewCountdownWithInterval is for tests that cannot wait real seconds.
func NewCountdownWithInterval(interval time.Duration) *Countdown {
	return &Countdown{interval: interval}
}

// Start replaces any countdown already in flight.
func (c *Countdown) Start(ctx context.Context, seconds int, onTick func(remaining int), onDone func()) {
	c.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go func() {
		defer c.finish(done)
		defer cancel()

		if seconds <= 0 {
			if onDone != nil {
				onDone()
			}
			return
		}

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		remaining := seconds
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				remaining--
				if onTick != nil {
					onTick(remaining)
				}
				if remaining <= 0 {
					if onDone != nil {
						onDone()
					}
					return
				}
			}
		}
	}()
}

// Stop cancels the countdown. The goroutine exits on its next select, so
// Stop never blocks and is safe to call from onTick or onDone.
func (c *Countdown) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Done is closed when the current countdown's goroutine has exited. It is
// nil when nothing is running.
func (c *Countdown) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

func (c *Countdown) finish(done chan struct{}) {
	c.mu.Lock()
	if c.done == done {
		c.cancel, c.done = nil, nil
	}
	c.mu.Unlock()
	close(done)
}
