package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/fardannozami/sparks/internal/domain"
	"github.com/fardannozami/sparks/internal/lifecycle"
)

// =============================================================================
// LIFECYCLE STATE MACHINE TESTS
// =============================================================================
//
// Transition Rules:
// 1. assigned → started | skipped | expired
// 2. started → completed | skipped | expired
// 3. completed, skipped, expired are terminal
// 4. Snooze is allowed from assigned/started, adds 60 minutes, keeps status
// 5. Streak increments at most once per calendar day
//
// =============================================================================

var now = time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)

func assigned() domain.ChallengeAssignment {
	return domain.ChallengeAssignment{
		ID:         "assignment_1",
		TemplateID: "hf001",
		DueAt:      time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local),
		Status:     domain.StatusAssigned,
	}
}

func TestStartThenComplete(t *testing.T) {
	started, err := lifecycle.Start(assigned(), now)
	if err != nil {
		t.Fatalf("Unexpected start error: %v", err)
	}
	if started.Status != domain.StatusStarted {
		t.Errorf("Expected started, got %s", started.Status)
	}
	if started.StartedAt == nil || !started.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt=%v, got %v", now, started.StartedAt)
	}

	repeat := true
	done, err := lifecycle.Complete(started, now.Add(20*time.Minute), domain.FeedbackFire, &repeat)
	if err != nil {
		t.Fatalf("Unexpected complete error: %v", err)
	}
	if done.Status != domain.StatusCompleted {
		t.Errorf("Expected completed, got %s", done.Status)
	}
	if done.Feedback == nil || *done.Feedback != domain.FeedbackFire {
		t.Errorf("Expected fire feedback, got %v", done.Feedback)
	}
	if done.WouldRepeat == nil || !*done.WouldRepeat {
		t.Errorf("Expected WouldRepeat=true, got %v", done.WouldRepeat)
	}
	if done.CompletedAt == nil {
		t.Error("Expected CompletedAt to be set")
	}
}

func TestTransitionsReturnCopies(t *testing.T) {
	original := assigned()
	if _, err := lifecycle.Start(original, now); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if original.Status != domain.StatusAssigned || original.StartedAt != nil {
		t.Errorf("Expected input untouched, got %+v", original)
	}
}

func TestCompleteRequiresStarted(t *testing.T) {
	_, err := lifecycle.Complete(assigned(), now, domain.FeedbackGood, nil)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
}

func TestCompleteRejectsUnknownFeedback(t *testing.T) {
	started, _ := lifecycle.Start(assigned(), now)
	_, err := lifecycle.Complete(started, now, domain.Feedback("amazing"), nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, terminal := range []domain.Status{domain.StatusCompleted, domain.StatusSkipped, domain.StatusExpired} {
		a := assigned()
		a.Status = terminal

		if _, err := lifecycle.Start(a, now); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("%s → started: expected ErrInvalidTransition, got %v", terminal, err)
		}
		if _, err := lifecycle.Skip(a); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("%s → skipped: expected ErrInvalidTransition, got %v", terminal, err)
		}
		if _, err := lifecycle.Expire(a); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("%s → expired: expected ErrInvalidTransition, got %v", terminal, err)
		}
		if _, err := lifecycle.Snooze(a); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("%s snooze: expected ErrInvalidTransition, got %v", terminal, err)
		}
	}
}

func TestSkipAndExpireFromAssigned(t *testing.T) {
	skipped, err := lifecycle.Skip(assigned())
	if err != nil || skipped.Status != domain.StatusSkipped {
		t.Errorf("Expected skipped, got %s (%v)", skipped.Status, err)
	}
	expired, err := lifecycle.Expire(assigned())
	if err != nil || expired.Status != domain.StatusExpired {
		t.Errorf("Expected expired, got %s (%v)", expired.Status, err)
	}
}

func TestStartedCannotRestart(t *testing.T) {
	started, _ := lifecycle.Start(assigned(), now)
	if _, err := lifecycle.Start(started, now); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
}

func TestSnooze_Repeatable(t *testing.T) {
	a := assigned()
	due := a.DueAt

	once, err := lifecycle.Snooze(a)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	twice, err := lifecycle.Snooze(once)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !twice.DueAt.Equal(due.Add(2 * time.Hour)) {
		t.Errorf("Expected due %v, got %v", due.Add(2*time.Hour), twice.DueAt)
	}
	if !twice.HasSnoozed {
		t.Error("Expected HasSnoozed=true")
	}
	if twice.Status != domain.StatusAssigned {
		t.Errorf("Expected status unchanged, got %s", twice.Status)
	}
}

func TestSnooze_FromStarted(t *testing.T) {
	started, _ := lifecycle.Start(assigned(), now)
	snoozed, err := lifecycle.Snooze(started)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if snoozed.Status != domain.StatusStarted {
		t.Errorf("Expected started, got %s", snoozed.Status)
	}
}

func TestIsOverdue(t *testing.T) {
	a := assigned()
	if lifecycle.IsOverdue(a, time.Date(2024, 1, 15, 23, 59, 0, 0, time.Local)) {
		t.Error("Expected assignment still live on its due day")
	}
	if !lifecycle.IsOverdue(a, time.Date(2024, 1, 16, 0, 0, 1, 0, time.Local)) {
		t.Error("Expected assignment overdue after its due day")
	}

	started, _ := lifecycle.Start(a, now)
	if lifecycle.IsOverdue(started, time.Date(2024, 1, 20, 0, 0, 0, 0, time.Local)) {
		t.Error("Expected started assignments never to be overdue")
	}
}

// =============================================================================
// STREAK TESTS
// =============================================================================

func TestIncrementStreak_Idempotent(t *testing.T) {
	u := domain.User{Streak: 2}

	u = lifecycle.IncrementStreak(u, now)
	if u.Streak != 3 {
		t.Errorf("Expected streak 3, got %d", u.Streak)
	}
	if u.LastCompletedDate == nil || *u.LastCompletedDate != "2024-01-15" {
		t.Errorf("Expected LastCompletedDate 2024-01-15, got %v", u.LastCompletedDate)
	}

	u = lifecycle.IncrementStreak(u, now.Add(5*time.Hour))
	if u.Streak != 3 {
		t.Errorf("Same day: expected streak to stay 3, got %d", u.Streak)
	}

	u = lifecycle.IncrementStreak(u, now.AddDate(0, 0, 1))
	if u.Streak != 4 {
		t.Errorf("Next day: expected streak 4, got %d", u.Streak)
	}
}
