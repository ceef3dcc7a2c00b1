// Package notify is an in-process stand-in for a device notification
// facility. Scheduled items live in memory and are delivered through a
// Deliverer when they fall due.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/domain"
)

var ErrNotPermitted = errors.New("notifications not permitted")

type Deliverer interface {
	Deliver(ctx context.Context, n domain.Notification) error
}

type Options struct {
	// Permitted is the answer RequestPermission gives.
	Permitted bool
	// Tick is how often Run looks for due items.
	Tick time.Duration
}

type Scheduler struct {
	clock     domain.Clock
	ids       domain.IDGenerator
	deliverer Deliverer
	log       walog.Logger
	opts      Options

	mu    sync.Mutex
	items map[string]domain.Notification
}

func NewScheduler(clock domain.Clock, ids domain.IDGenerator, deliverer Deliverer, logger walog.Logger, opts Options) *Scheduler {
	if opts.Tick <= 0 {
		opts.Tick = 30 * time.Second
	}
	if logger == nil {
		logger = walog.Noop
	}
	return &Scheduler{
		clock:     clock,
		ids:       ids,
		deliverer: deliverer,
		log:       logger,
		opts:      opts,
		items:     make(map[string]domain.Notification),
	}
}

func (s *Scheduler) RequestPermission(ctx context.Context) (bool, error) {
	return s.opts.Permitted, nil
}

// ScheduleRepeating fires first at the next hour:minute after now, then
// every interval.
func (s *Scheduler) ScheduleRepeating(ctx context.Context, n domain.Notification, hour, minute int, every time.Duration) (string, error) {
	if !s.opts.Permitted {
		return "", ErrNotPermitted
	}
	if every <= 0 {
		return "", fmt.Errorf("%w: repeat interval must be positive", domain.ErrInvalidInput)
	}
	now := s.clock.Now()
	first := calendar.AtClock(now, hour, minute)
	for !first.After(now) {
		first = first.Add(every)
	}
	n.FireAt = first
	n.Every = every
	return s.add(n), nil
}

// ScheduleOnce fires at the given moment, or on the next tick if it has
// already passed.
func (s *Scheduler) ScheduleOnce(ctx context.Context, n domain.Notification, at time.Time) (string, error) {
	if !s.opts.Permitted {
		return "", ErrNotPermitted
	}
	n.FireAt = at
	n.Every = 0
	return s.add(n), nil
}

func (s *Scheduler) add(n domain.Notification) string {
	n.ID = s.ids.NewID()
	s.mu.Lock()
	s.items[n.ID] = n
	s.mu.Unlock()
	s.log.Debugf("Scheduled %s (%s) at %s", n.ID, n.Kind, n.FireAt.Format(time.RFC3339))
	return n.ID
}

func (s *Scheduler) CancelByType(ctx context.Context, kind domain.NotificationKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, n := range s.items {
		if n.Kind == kind {
			delete(s.items, id)
		}
	}
	return nil
}

func (s *Scheduler) CancelAll(ctx context.Context) error {
	s.mu.Lock()
	s.items = make(map[string]domain.Notification)
	s.mu.Unlock()
	return nil
}

// Pending lists scheduled items, soonest first.
func (s *Scheduler) Pending(ctx context.Context) ([]domain.Notification, error) {
	s.mu.Lock()
	out := make([]domain.Notification, 0, len(s.items))
	for _, n := range s.items {
		out = append(out, n)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].FireAt.Equal(out[j].FireAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].FireAt.Before(out[j].FireAt)
	})
	return out, nil
}

// RunDue delivers every item due at the current time. One-off items are
// removed; repeating items move to their next occurrence after now. A
// failed delivery is logged and not retried.
func (s *Scheduler) RunDue(ctx context.Context) int {
	now := s.clock.Now()

	var due []domain.Notification
	s.mu.Lock()
	for id, n := range s.items {
		if n.FireAt.After(now) {
			continue
		}
		due = append(due, n)
		if n.Every > 0 {
			next := n.FireAt
			for !next.After(now) {
				next = next.Add(n.Every)
			}
			n.FireAt = next
			s.items[id] = n
		} else {
			delete(s.items, id)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].FireAt.Before(due[j].FireAt) })

	delivered := 0
	for _, n := range due {
		if s.deliverer == nil {
			continue
		}
		if err := s.deliverer.Deliver(ctx, n); err != nil {
			s.log.Warnf("Failed to deliver %s (%s): %v", n.ID, n.Kind, err)
			continue
		}
		delivered++
	}
	return delivered
}

// Run checks for due items every tick until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunDue(ctx)
		}
	}
}
