// Package state holds the owner's application state as a plain value.
// Every mutation returns a new AppState; callers swap the whole value in
// one step so no half-applied update is ever visible.
package state

import (
	"github.com/fardannozami/sparks/internal/domain"
)

// telemetryLimit bounds the in-memory telemetry buffer.
const telemetryLimit = 200

type AppState struct {
	User    *domain.User
	Current *domain.ChallengeAssignment
	// History is newest-first and append-only.
	History   []domain.ChallengeAssignment
	Telemetry []domain.TelemetryEvent
}

func (s AppState) WithUser(u domain.User) AppState {
	c := u.Clone()
	s.User = &c
	return s
}

// WithCurrent sets or, with nil, clears the current assignment.
func (s AppState) WithCurrent(a *domain.ChallengeAssignment) AppState {
	if a == nil {
		s.Current = nil
		return s
	}
	c := *a
	s.Current = &c
	return s
}

// Archive prepends a to history and clears the current assignment when it
// is the one being archived.
func (s AppState) Archive(a domain.ChallengeAssignment) AppState {
	history := make([]domain.ChallengeAssignment, 0, len(s.History)+1)
	history = append(history, a)
	history = append(history, s.History...)
	s.History = history
	if s.Current != nil && s.Current.ID == a.ID {
		s.Current = nil
	}
	return s
}

func (s AppState) Record(e domain.TelemetryEvent) AppState {
	events := s.Telemetry
	if len(events) >= telemetryLimit {
		events = events[len(events)-telemetryLimit+1:]
	}
	out := make([]domain.TelemetryEvent, 0, len(events)+1)
	out = append(out, events...)
	out = append(out, e)
	s.Telemetry = out
	return s
}

func (s AppState) CompletedCount() int {
	n := 0
	for _, a := range s.History {
		if a.Status == domain.StatusCompleted {
			n++
		}
	}
	return n
}

// HistoryWith is history with a prepended, without changing s.
func (s AppState) HistoryWith(a domain.ChallengeAssignment) []domain.ChallengeAssignment {
	return s.Archive(a).History
}
