// Package lifecycle implements the assignment state machine:
//
//	assigned → started → completed
//	    │          ├───→ skipped
//	    ├──────────┴───→ expired
//	    └──────────────→ skipped
//
// Every transition takes an assignment by value and returns the updated
// copy. Terminal states accept nothing.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/domain"
)

// SnoozeOffset is how far a snooze pushes the due time.
const SnoozeOffset = 60 * time.Minute

var transitions = map[domain.Status][]domain.Status{
	domain.StatusAssigned: {domain.StatusStarted, domain.StatusSkipped, domain.StatusExpired},
	domain.StatusStarted:  {domain.StatusCompleted, domain.StatusSkipped, domain.StatusExpired},
}

func CanTransition(from, to domain.Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func transition(a domain.ChallengeAssignment, to domain.Status) (domain.ChallengeAssignment, error) {
	if !CanTransition(a.Status, to) {
		return a, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, a.Status, to)
	}
	a.Status = to
	return a, nil
}

func Start(a domain.ChallengeAssignment, now time.Time) (domain.ChallengeAssignment, error) {
	next, err := transition(a, domain.StatusStarted)
	if err != nil {
		return a, err
	}
	next.StartedAt = &now
	return next, nil
}

func Complete(a domain.ChallengeAssignment, now time.Time, feedback domain.Feedback, wouldRepeat *bool) (domain.ChallengeAssignment, error) {
	if !feedback.Valid() {
		return a, fmt.Errorf("%w: feedback %q", domain.ErrInvalidInput, feedback)
	}
	next, err := transition(a, domain.StatusCompleted)
	if err != nil {
		return a, err
	}
	next.CompletedAt = &now
	next.Feedback = &feedback
	if wouldRepeat != nil {
		v := *wouldRepeat
		next.WouldRepeat = &v
	}
	return next, nil
}

func Skip(a domain.ChallengeAssignment) (domain.ChallengeAssignment, error) {
	return transition(a, domain.StatusSkipped)
}

func Expire(a domain.ChallengeAssignment) (domain.ChallengeAssignment, error) {
	return transition(a, domain.StatusExpired)
}

// Snooze pushes DueAt back without touching the status. It can be repeated;
// HasSnoozed stays true once set.
func Snooze(a domain.ChallengeAssignment) (domain.ChallengeAssignment, error) {
	if a.Status != domain.StatusAssigned && a.Status != domain.StatusStarted {
		return a, fmt.Errorf("%w: cannot snooze a %s assignment", domain.ErrInvalidTransition, a.Status)
	}
	a.DueAt = a.DueAt.Add(SnoozeOffset)
	a.HasSnoozed = true
	return a, nil
}

// IsOverdue reports whether an untouched assignment has outlived the
// calendar day it was due on.
func IsOverdue(a domain.ChallengeAssignment, now time.Time) bool {
	if a.Status != domain.StatusAssigned {
		return false
	}
	return now.After(calendar.EndOfDay(a.DueAt.In(now.Location())))
}

// IncrementStreak bumps the streak at most once per local calendar day.
func IncrementStreak(u domain.User, now time.Time) domain.User {
	today := calendar.DateKey(now)
	if u.LastCompletedDate != nil && *u.LastCompletedDate == today {
		return u
	}
	u.Streak++
	u.LastCompletedDate = &today
	return u
}
