package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fardannozami/sparks/internal/app/usecase"
	"github.com/fardannozami/sparks/internal/domain"
)

// =============================================================================
// FLOW TESTS
// =============================================================================
//
// Flow Rules:
// 1. Onboarding validates input, schedules reminders and assigns a first spark
// 2. Permission denial or scheduler failure never blocks onboarding
// 3. Start moves assigned → started and cancels the gentle nudge
// 4. Complete archives, bumps the streak once per day, unlocks achievements
//    and assigns the next spark from the updated history
// 5. Skip archives as skipped and reassigns; Swap is premium-only and once
// 6. An assignment left untouched past its due day expires on next access
//
// =============================================================================

func TestOnboard_AssignsFirstSpark(t *testing.T) {
	h := newHarness(t, monday0700)

	a := h.onboard(t)
	if a.TemplateID != "hf001" {
		t.Errorf("Expected hf001, got %s", a.TemplateID)
	}
	if want := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC); !a.DueAt.Equal(want) {
		t.Errorf("Expected due %v, got %v", want, a.DueAt)
	}

	u := h.session.User()
	if !u.OnboardingCompleted {
		t.Error("Expected onboarding completed")
	}
	if u.NotificationTime == nil || u.NotificationTime.Hour != 8 {
		t.Errorf("Expected notification time 08:00, got %+v", u.NotificationTime)
	}
	if u.LastAssignmentAt == nil || !u.LastAssignmentAt.Equal(monday0700) {
		t.Errorf("Expected lastAssignmentAt stamped, got %v", u.LastAssignmentAt)
	}
	if n := len(h.sched.ofKind(domain.NotifyDailySpark)); n != 1 {
		t.Errorf("Expected a daily reminder, got %d", n)
	}
	if n := len(h.sched.ofKind(domain.NotifyGentleNudge)); n != usecase.NudgeCount {
		t.Errorf("Expected %d nudges, got %d", usecase.NudgeCount, n)
	}
	if h.repo.user == nil || !h.repo.user.OnboardingCompleted || h.repo.current == nil {
		t.Error("Expected onboarded user and current assignment persisted")
	}
}

func TestOnboard_Validation(t *testing.T) {
	h := newHarness(t, monday0700)
	ctx := context.Background()

	cases := map[string]usecase.Preferences{
		"no area":      {Cadence: domain.CadenceDaily, Window: domain.Window8AM},
		"bad area":     {Areas: []domain.Area{"sports"}, Cadence: domain.CadenceDaily, Window: domain.Window8AM},
		"bad cadence":  {Areas: []domain.Area{domain.AreaHealth}, Cadence: "hourly", Window: domain.Window8AM},
		"bad window":   {Areas: []domain.Area{domain.AreaHealth}, Cadence: domain.CadenceDaily, Window: "3am"},
		"bad hour":     {Areas: []domain.Area{domain.AreaHealth}, Cadence: domain.CadenceDaily, Window: domain.Window8AM, Time: &domain.NotificationTime{Hour: 24}},
		"bad minute":   {Areas: []domain.Area{domain.AreaHealth}, Cadence: domain.CadenceDaily, Window: domain.Window8AM, Time: &domain.NotificationTime{Hour: 8, Minute: 60}},
	}
	for name, p := range cases {
		if _, err := h.flows.Onboard.Execute(ctx, p); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	if h.session.User().OnboardingCompleted {
		t.Error("Expected invalid input to leave onboarding incomplete")
	}
}

func TestOnboard_SoftNotificationFailures(t *testing.T) {
	h := newHarness(t, monday0700)
	h.sched.denied = true
	h.onboard(t)
	if n := len(h.sched.ofKind(domain.NotifyDailySpark)); n != 0 {
		t.Errorf("Expected nothing scheduled without permission, got %d", n)
	}

	h = newHarness(t, monday0700)
	h.sched.err = errors.New("scheduler offline")
	if a := h.onboard(t); a.TemplateID == "" {
		t.Error("Expected an assignment despite scheduler failure")
	}
}

func TestEnsureAssignment_RequiresOnboarding(t *testing.T) {
	h := newHarness(t, monday0700)

	if _, err := h.flows.Ensure.Execute(context.Background()); !errors.Is(err, domain.ErrOnboardingRequired) {
		t.Errorf("Expected ErrOnboardingRequired, got %v", err)
	}
}

func TestEnsureAssignment_KeepsLiveAssignment(t *testing.T) {
	h := newHarness(t, monday0700)
	first := h.onboard(t)

	again, err := h.flows.Ensure.Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("Expected the same assignment %s, got %s", first.ID, again.ID)
	}
}

func TestEnsureAssignment_ExpiresOverdue(t *testing.T) {
	h := newHarness(t, monday0700)
	first := h.onboard(t)

	// Due 2024-01-15 08:00; the next morning it is overdue
	h.clock.Set(time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC))
	next, err := h.flows.Ensure.Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	st := h.session.State()
	if len(st.History) != 1 || st.History[0].ID != first.ID || st.History[0].Status != domain.StatusExpired {
		t.Fatalf("Expected the first assignment archived as expired, got %+v", st.History)
	}
	if next.ID == first.ID || next.TemplateID == first.TemplateID {
		t.Errorf("Expected a fresh assignment, got %s (%s)", next.ID, next.TemplateID)
	}
}

func TestStart_AssignedToStarted(t *testing.T) {
	h := newHarness(t, monday0700)
	h.onboard(t)

	res, err := h.flows.Start.Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Assignment.Status != domain.StatusStarted || res.Assignment.StartedAt == nil {
		t.Errorf("Expected started with a timestamp, got %+v", res.Assignment)
	}
	if !res.Breathing || !res.FirstTime {
		t.Errorf("Expected the first-time breathing intro, got %+v", res)
	}
	if n := len(h.sched.ofKind(domain.NotifyGentleNudge)); n != 0 {
		t.Errorf("Expected gentle nudges cancelled, got %d", n)
	}

	if _, err := h.flows.Start.Execute(context.Background()); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition on second start, got %v", err)
	}
}

func TestStart_BreathingNeverStartsTimer(t *testing.T) {
	h := newHarness(t, monday0700)
	h.onboard(t)
	if _, err := h.session.Update(context.Background(), func(tx *usecase.Tx) error {
		u := tx.User()
		u.BreathingPreference = domain.BreathingNever
		tx.SetUser(u)
		return nil
	}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	res, err := h.flows.Start.Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Breathing {
		t.Error("Expected no breathing intro")
	}
	// hf001 is a 20 minute challenge
	if res.TimerSeconds != 1200 {
		t.Errorf("Expected a 1200s timer, got %d", res.TimerSeconds)
	}
	if ts := h.repo.timerState(); ts == nil || ts.TotalSeconds != 1200 {
		t.Errorf("Expected timer state saved, got %+v", ts)
	}
}

func TestComplete_FullFlow(t *testing.T) {
	h := newHarness(t, monday0700)
	ctx := context.Background()
	first := h.onboard(t)

	if _, err := h.flows.Start.Execute(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	h.clock.Advance(30 * time.Minute)

	repeat := true
	res, err := h.flows.Complete.Execute(ctx, domain.FeedbackFire, &repeat)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if res.Completed.ID != first.ID || res.Completed.Status != domain.StatusCompleted {
		t.Errorf("Expected %s completed, got %+v", first.ID, res.Completed)
	}
	if res.Streak != 1 {
		t.Errorf("Expected streak 1, got %d", res.Streak)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "total_1" {
		t.Errorf("Expected total_1 unlocked, got %+v", res.Unlocked)
	}
	if res.Next == nil || res.Next.TemplateID == first.TemplateID {
		t.Fatalf("Expected a different next assignment, got %+v", res.Next)
	}

	st := h.session.State()
	if len(st.History) != 1 || st.History[0].Feedback == nil || *st.History[0].Feedback != domain.FeedbackFire {
		t.Errorf("Expected completed entry with feedback in history, got %+v", st.History)
	}
	if st.Current == nil || st.Current.ID != res.Next.ID {
		t.Errorf("Expected next assignment to be current, got %+v", st.Current)
	}
	if !st.User.HasAchievement("total_1") {
		t.Error("Expected total_1 stored on the user")
	}
	if st.User.LastCompletedDate == nil || *st.User.LastCompletedDate != "2024-01-15" {
		t.Errorf("Expected lastCompletedDate 2024-01-15, got %v", st.User.LastCompletedDate)
	}

	types := h.sink.types()
	wantTail := []domain.TelemetryType{
		domain.EventChallengeCompleted,
		domain.EventFeedbackSubmitted,
		domain.EventAssignmentAssigned,
	}
	if len(types) < len(wantTail) {
		t.Fatalf("Expected telemetry, got %v", types)
	}
	for i, want := range wantTail {
		if got := types[len(types)-len(wantTail)+i]; got != want {
			t.Errorf("Expected event %s, got %s", want, got)
		}
	}
}

func TestComplete_StreakOncePerDay(t *testing.T) {
	h := newHarness(t, monday0700)
	ctx := context.Background()
	h.onboard(t)

	for i := 0; i < 2; i++ {
		if _, err := h.flows.Start.Execute(ctx); err != nil {
			t.Fatalf("Start %d: unexpected error: %v", i+1, err)
		}
		if _, err := h.flows.Complete.Execute(ctx, domain.FeedbackGood, nil); err != nil {
			t.Fatalf("Complete %d: unexpected error: %v", i+1, err)
		}
	}

	if s := h.session.User().Streak; s != 1 {
		t.Errorf("Expected streak 1 after two completions on one day, got %d", s)
	}
	if n := h.session.State().CompletedCount(); n != 2 {
		t.Errorf("Expected 2 completions, got %d", n)
	}
}

func TestComplete_RequiresStarted(t *testing.T) {
	h := newHarness(t, monday0700)
	h.onboard(t)

	_, err := h.flows.Complete.Execute(context.Background(), domain.FeedbackGood, nil)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
	if len(h.session.State().History) != 0 {
		t.Error("Expected nothing archived")
	}
}

func TestComplete_InvalidFeedback(t *testing.T) {
	h := newHarness(t, monday0700)
	h.onboard(t)
	if _, err := h.flows.Start.Execute(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, err := h.flows.Complete.Execute(context.Background(), "amazing", nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
	if h.session.State().Current.Status != domain.StatusStarted {
		t.Error("Expected assignment still started")
	}
}

func TestComplete_NonDailyCadenceSchedulesNext(t *testing.T) {
	h := newHarness(t, monday0700)
	ctx := context.Background()

	p := healthPrefs()
	p.Cadence = domain.CadenceEvery3Days
	if _, err := h.flows.Onboard.Execute(ctx, p); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := h.flows.Start.Execute(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := h.flows.Complete.Execute(ctx, domain.FeedbackGood, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	items := h.sched.ofKind(domain.NotifyDailySpark)
	if len(items) != 1 {
		t.Fatalf("Expected a single next-challenge reminder, got %d", len(items))
	}
	if want := time.Date(2024, 1, 18, 8, 0, 0, 0, time.UTC); !items[0].FireAt.Equal(want) {
		t.Errorf("Expected %v, got %v", want, items[0].FireAt)
	}
}

func TestComplete_StreakAtRiskFromThree(t *testing.T) {
	repo := newMockRepo()
	yesterday := "2024-01-14"
	repo.user = &domain.User{
		ID:                  "user_1",
		Areas:               []domain.Area{domain.AreaHealth},
		Cadence:             domain.CadenceDaily,
		NotifWindow:         domain.Window8AM,
		Streak:              2,
		LastCompletedDate:   &yesterday,
		OnboardingCompleted: true,
		BreathingPreference: domain.BreathingEnabled,
	}
	h := newHarnessWithRepo(t, monday0700, repo)
	ctx := context.Background()

	if _, err := h.flows.Ensure.Execute(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := h.flows.Start.Execute(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	res, err := h.flows.Complete.Execute(ctx, domain.FeedbackFire, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Streak != 3 {
		t.Errorf("Expected streak 3, got %d", res.Streak)
	}
	if n := len(h.sched.ofKind(domain.NotifyStreakAtRisk)); n != 1 {
		t.Errorf("Expected streak-at-risk reminder, got %d", n)
	}
	ids := make([]string, len(res.Unlocked))
	for i, a := range res.Unlocked {
		ids[i] = a.ID
	}
	if got := strings.Join(ids, ","); got != "streak_3,total_1" {
		t.Errorf("Expected streak_3,total_1 unlocked, got %s", got)
	}
}

func TestSkip_ArchivesAndReassigns(t *testing.T) {
	h := newHarness(t, monday0700)
	first := h.onboard(t)

	next, err := h.flows.Skip.Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	st := h.session.State()
	if len(st.History) != 1 || st.History[0].Status != domain.StatusSkipped || st.History[0].ID != first.ID {
		t.Errorf("Expected first assignment skipped, got %+v", st.History)
	}
	if next.TemplateID == first.TemplateID {
		t.Errorf("Expected a different template, got %s", next.TemplateID)
	}
	if h.session.User().Streak != 0 {
		t.Error("Expected skip to leave the streak alone")
	}
}

func TestSwap_PremiumOnlyAndOnce(t *testing.T) {
	h := newHarness(t, monday0700)
	ctx := context.Background()
	first := h.onboard(t)

	if _, err := h.flows.Swap.Execute(ctx); !errors.Is(err, domain.ErrPremiumRequired) {
		t.Fatalf("Expected ErrPremiumRequired, got %v", err)
	}

	s := usecase.SettingsOf(h.session.User())
	s.Premium = true
	if _, err := h.flows.Settings.Execute(ctx, s); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	swapped, err := h.flows.Swap.Execute(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if swapped.TemplateID != "hf002" || !swapped.HasSwapped {
		t.Errorf("Expected swapped to hf002, got %+v", swapped)
	}
	if swapped.AltTemplateID == nil || *swapped.AltTemplateID != first.TemplateID {
		t.Errorf("Expected alt pointing back to %s, got %v", first.TemplateID, swapped.AltTemplateID)
	}
	if !swapped.DueAt.Equal(first.DueAt) {
		t.Errorf("Expected due time kept, got %v", swapped.DueAt)
	}
	st := h.session.State()
	if len(st.History) != 1 || st.History[0].Status != domain.StatusSkipped {
		t.Errorf("Expected discarded assignment archived as skipped, got %+v", st.History)
	}

	if _, err := h.flows.Swap.Execute(ctx); !errors.Is(err, domain.ErrSwapUnavailable) {
		t.Errorf("Expected ErrSwapUnavailable on second swap, got %v", err)
	}
}

func TestSnooze_PushesDueAt(t *testing.T) {
	h := newHarness(t, monday0700)
	first := h.onboard(t)

	snoozed, err := h.flows.Snooze.Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !snoozed.DueAt.Equal(first.DueAt.Add(time.Hour)) || !snoozed.HasSnoozed {
		t.Errorf("Expected due +60m and snoozed flag, got %+v", snoozed)
	}
}

func TestSnooze_NoAssignment(t *testing.T) {
	h := newHarness(t, monday0700)

	if _, err := h.flows.Snooze.Execute(context.Background()); !errors.Is(err, domain.ErrNoActiveAssignment) {
		t.Errorf("Expected ErrNoActiveAssignment, got %v", err)
	}
}

func TestUpdateSettings_Reschedules(t *testing.T) {
	h := newHarness(t, monday0700)
	ctx := context.Background()
	h.onboard(t)

	s := usecase.SettingsOf(h.session.User())
	s.Cadence = domain.CadenceWeekly
	s.Time = &domain.NotificationTime{Hour: 19, Minute: 15}
	s.Breathing = domain.BreathingDisabled

	u, err := h.flows.Settings.Execute(ctx, s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if u.Cadence != domain.CadenceWeekly || u.NotificationTime.Hour != 19 || u.BreathingPreference != domain.BreathingDisabled {
		t.Errorf("Expected settings applied, got %+v", u)
	}

	items := h.sched.ofKind(domain.NotifyDailySpark)
	if len(items) != 1 || items[0].Repeating {
		t.Fatalf("Expected one one-off weekly reminder, got %+v", items)
	}
	if want := time.Date(2024, 1, 15, 19, 15, 0, 0, time.UTC); !items[0].FireAt.Equal(want) {
		t.Errorf("Expected %v, got %v", want, items[0].FireAt)
	}
}

func TestUpdateSettings_RequiresOnboarding(t *testing.T) {
	h := newHarness(t, monday0700)

	s := usecase.SettingsOf(h.session.User())
	s.Areas = []domain.Area{domain.AreaFocus}
	if _, err := h.flows.Settings.Execute(context.Background(), s); !errors.Is(err, domain.ErrOnboardingRequired) {
		t.Errorf("Expected ErrOnboardingRequired, got %v", err)
	}
}

func TestViews(t *testing.T) {
	h := newHarness(t, monday0700)
	ctx := context.Background()
	h.onboard(t)
	if _, err := h.flows.Start.Execute(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := h.flows.Complete.Execute(ctx, domain.FeedbackFire, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats, err := h.flows.Progress.Execute(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.TotalCompleted != 1 || stats.SuccessRate != 100 || stats.BestWeekday != "Mon" {
		t.Errorf("Expected 1 completed at 100%% on Mon, got %+v", stats)
	}

	board, err := h.flows.Achievements.Execute(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(board) != 20 || board[0].ID != "total_1" || !board[0].Unlocked {
		t.Errorf("Expected total_1 first and unlocked on a 20 entry board, got %+v", board[0])
	}

	msg, err := h.flows.Share.Execute(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(msg, "1-day streak") || !strings.Contains(msg, "Growing in: health") {
		t.Errorf("Unexpected share message: %s", msg)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	h := newHarness(t, monday0700)
	h.onboard(t)

	if err := h.flows.Reset.Execute(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !h.sched.cancelled {
		t.Error("Expected all notifications cancelled")
	}
	if h.session.User().OnboardingCompleted {
		t.Error("Expected onboarding to start over")
	}
}
