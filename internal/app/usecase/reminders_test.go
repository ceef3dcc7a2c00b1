package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/fardannozami/sparks/internal/app/usecase"
	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/domain"
)

// =============================================================================
// REMINDER TESTS
// =============================================================================
//
// Reminder Rules:
// 1. Daily cadence → one repeating daily_spark at the reminder time
// 2. Other cadences → one-off at the next occurrence, +interval if passed
// 3. Gentle nudge → 7 one-offs, reminder +4h, spaced by the interval
// 4. Streak-at-risk → only for streak >= 3, repeating at 21:00
// 5. Next challenge → reminder time + interval days, replacing daily_spark
//
// =============================================================================

func newReminders(now time.Time) (*usecase.Reminders, *mockScheduler) {
	sched := &mockScheduler{}
	return usecase.NewReminders(sched, calendar.NewFixed(now), nil), sched
}

func TestReminders_DailyRepeats(t *testing.T) {
	r, sched := newReminders(monday0700)
	ctx := context.Background()
	at := domain.NotificationTime{Hour: 8, Minute: 30}

	for i := 0; i < 2; i++ {
		if err := r.ScheduleDaily(ctx, at, domain.CadenceDaily); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	items := sched.ofKind(domain.NotifyDailySpark)
	if len(items) != 1 {
		t.Fatalf("Expected one daily reminder after rescheduling, got %d", len(items))
	}
	if !items[0].Repeating || items[0].Hour != 8 || items[0].Minute != 30 || items[0].Every != 24*time.Hour {
		t.Errorf("Expected repeating 08:30 every 24h, got %+v", items[0])
	}
}

func TestReminders_WeeklyOneOff(t *testing.T) {
	ctx := context.Background()

	// 09:00 is still ahead at 07:00
	r, sched := newReminders(monday0700)
	if err := r.ScheduleDaily(ctx, domain.NotificationTime{Hour: 9}, domain.CadenceWeekly); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	items := sched.ofKind(domain.NotifyDailySpark)
	if len(items) != 1 || items[0].Repeating {
		t.Fatalf("Expected one one-off reminder, got %+v", items)
	}
	if want := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC); !items[0].FireAt.Equal(want) {
		t.Errorf("Expected %v, got %v", want, items[0].FireAt)
	}

	// 06:00 has passed: a full week later
	r, sched = newReminders(monday0700)
	if err := r.ScheduleDaily(ctx, domain.NotificationTime{Hour: 6}, domain.CadenceWeekly); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	items = sched.ofKind(domain.NotifyDailySpark)
	if want := time.Date(2024, 1, 22, 6, 0, 0, 0, time.UTC); !items[0].FireAt.Equal(want) {
		t.Errorf("Expected %v, got %v", want, items[0].FireAt)
	}
}

func TestReminders_GentleNudge(t *testing.T) {
	ctx := context.Background()
	r, sched := newReminders(monday0700)

	if err := r.ScheduleGentleNudge(ctx, domain.NotificationTime{Hour: 8}, domain.CadenceEvery2Days); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	items := sched.ofKind(domain.NotifyGentleNudge)
	if len(items) != usecase.NudgeCount {
		t.Fatalf("Expected %d nudges, got %d", usecase.NudgeCount, len(items))
	}
	for i, it := range items {
		want := time.Date(2024, 1, 15+2*i, 12, 0, 0, 0, time.UTC)
		if !it.FireAt.Equal(want) {
			t.Errorf("Nudge %d: expected %v, got %v", i+1, want, it.FireAt)
		}
	}

	if err := r.CancelGentleNudge(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n := len(sched.ofKind(domain.NotifyGentleNudge)); n != 0 {
		t.Errorf("Expected nudges cancelled, got %d", n)
	}
}

func TestReminders_GentleNudgeAlreadyPassed(t *testing.T) {
	r, sched := newReminders(time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC))

	if err := r.ScheduleGentleNudge(context.Background(), domain.NotificationTime{Hour: 8}, domain.CadenceDaily); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	items := sched.ofKind(domain.NotifyGentleNudge)
	if want := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC); !items[0].FireAt.Equal(want) {
		t.Errorf("Expected first nudge %v, got %v", want, items[0].FireAt)
	}
}

func TestReminders_StreakAtRisk(t *testing.T) {
	ctx := context.Background()
	r, sched := newReminders(monday0700)

	if err := r.ScheduleStreakAtRisk(ctx, 2); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n := len(sched.ofKind(domain.NotifyStreakAtRisk)); n != 0 {
		t.Errorf("Expected no reminder for streak 2, got %d", n)
	}

	for _, streak := range []int{3, 4} {
		if err := r.ScheduleStreakAtRisk(ctx, streak); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	items := sched.ofKind(domain.NotifyStreakAtRisk)
	if len(items) != 1 {
		t.Fatalf("Expected a single streak-at-risk reminder, got %d", len(items))
	}
	if !items[0].Repeating || items[0].Hour != 21 || items[0].Minute != 0 {
		t.Errorf("Expected repeating 21:00, got %+v", items[0])
	}
}

func TestReminders_NextChallenge(t *testing.T) {
	r, sched := newReminders(time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_ = r.ScheduleDaily(ctx, domain.NotificationTime{Hour: 8}, domain.CadenceEvery3Days)
	if err := r.ScheduleNextChallenge(ctx, domain.NotificationTime{Hour: 8}, domain.CadenceEvery3Days); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	items := sched.ofKind(domain.NotifyDailySpark)
	if len(items) != 1 {
		t.Fatalf("Expected next challenge to replace the reminder, got %d", len(items))
	}
	if want := time.Date(2024, 1, 18, 8, 0, 0, 0, time.UTC); !items[0].FireAt.Equal(want) {
		t.Errorf("Expected %v, got %v", want, items[0].FireAt)
	}
}
