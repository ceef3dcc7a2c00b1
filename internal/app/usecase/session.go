package usecase

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"
	"golang.org/x/sync/errgroup"

	"github.com/fardannozami/sparks/internal/app/state"
	"github.com/fardannozami/sparks/internal/domain"
)

// Session owns the owner's AppState. Every change goes through Update so
// readers only ever see whole states.
type Session struct {
	repo      domain.StateRepository
	telemetry domain.TelemetrySink
	clock     domain.Clock
	log       walog.Logger

	mu    sync.Mutex
	st    state.AppState
	timer *domain.TimerState
}

func NewSession(repo domain.StateRepository, telemetry domain.TelemetrySink, clock domain.Clock, logger walog.Logger) *Session {
	if logger == nil {
		logger = walog.Noop
	}
	return &Session{
		repo:      repo,
		telemetry: telemetry,
		clock:     clock,
		log:       logger,
	}
}

// Load restores everything from storage. Without a stored user it starts
// from the default user and saves it.
func (s *Session) Load(ctx context.Context) error {
	var (
		user    *domain.User
		history []domain.ChallengeAssignment
		current *domain.ChallengeAssignment
		ts      *domain.TimerState
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		user, err = s.repo.GetUser(gctx)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.repo.GetAssignments(gctx)
		return err
	})
	g.Go(func() (err error) {
		current, err = s.repo.GetCurrentAssignment(gctx)
		return err
	})
	g.Go(func() (err error) {
		ts, err = s.repo.GetTimerState(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to restore state: %w", err)
	}

	if user == nil {
		u := domain.NewDefaultUser(s.clock.Now())
		user = &u
		if err := s.repo.SaveUser(ctx, u); err != nil {
			s.log.Warnf("Failed to save default user: %v", err)
		}
		s.log.Infof("Created default user %s", u.ID)
	}

	s.mu.Lock()
	s.st = state.AppState{User: user, History: history, Current: current}
	s.timer = ts
	s.mu.Unlock()

	s.log.Infof("Restored user %s with %d history entries", user.ID, len(history))
	return nil
}

// State is a snapshot safe to read without the lock.
func (s *Session) State() state.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// User is a copy of the current user. Load guarantees there is one.
func (s *Session) User() domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.User == nil {
		return domain.NewDefaultUser(s.clock.Now())
	}
	return s.st.User.Clone()
}

func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// Tx is the working copy handed to an Update callback.
type Tx struct {
	State  state.AppState
	Now    time.Time
	events []domain.TelemetryEvent
}

func (tx *Tx) User() domain.User {
	return tx.State.User.Clone()
}

func (tx *Tx) SetUser(u domain.User) {
	tx.State = tx.State.WithUser(u)
}

func (tx *Tx) Record(t domain.TelemetryType, metadata map[string]string) {
	e := domain.TelemetryEvent{Type: t, Timestamp: tx.Now, Metadata: metadata}
	tx.State = tx.State.Record(e)
	tx.events = append(tx.events, e)
}

// Update runs fn against a working copy and, if fn succeeds, swaps it in
// and persists whichever blobs changed. Persistence errors are logged and
// never roll the state back.
func (s *Session) Update(ctx context.Context, fn func(tx *Tx) error) (state.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.st
	tx := &Tx{State: before, Now: s.clock.Now()}
	if err := fn(tx); err != nil {
		return before, err
	}
	s.st = tx.State
	s.persist(ctx, before, tx.State)

	if s.telemetry != nil {
		for _, e := range tx.events {
			s.telemetry.Record(ctx, e)
		}
	}
	return tx.State, nil
}

func (s *Session) persist(ctx context.Context, before, after state.AppState) {
	if after.User != nil && !reflect.DeepEqual(before.User, after.User) {
		if err := s.repo.SaveUser(ctx, *after.User); err != nil {
			s.log.Warnf("Failed to save user: %v", err)
		}
	}
	if !reflect.DeepEqual(before.History, after.History) {
		if err := s.repo.SaveAssignments(ctx, after.History); err != nil {
			s.log.Warnf("Failed to save history: %v", err)
		}
	}
	if !reflect.DeepEqual(before.Current, after.Current) {
		if err := s.repo.SaveCurrentAssignment(ctx, after.Current); err != nil {
			s.log.Warnf("Failed to save current assignment: %v", err)
		}
	}
}

// TimerState is the saved countdown, if any.
func (s *Session) TimerState() *domain.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil {
		return nil
	}
	ts := *s.timer
	return &ts
}

func (s *Session) SaveTimerState(ctx context.Context, ts domain.TimerState) {
	s.mu.Lock()
	s.timer = &ts
	s.mu.Unlock()
	if err := s.repo.SaveTimerState(ctx, ts); err != nil {
		s.log.Warnf("Failed to save timer state: %v", err)
	}
}

func (s *Session) ClearTimerState(ctx context.Context) {
	s.mu.Lock()
	s.timer = nil
	s.mu.Unlock()
	if err := s.repo.ClearTimerState(ctx); err != nil {
		s.log.Warnf("Failed to clear timer state: %v", err)
	}
}

// Reset wipes storage and starts again from a default user.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.repo.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}

	u := domain.NewDefaultUser(s.clock.Now())
	s.mu.Lock()
	s.st = state.AppState{User: &u}
	s.timer = nil
	s.mu.Unlock()

	if err := s.repo.SaveUser(ctx, u); err != nil {
		s.log.Warnf("Failed to save default user: %v", err)
	}
	return nil
}
