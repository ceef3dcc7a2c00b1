package usecase

import (
	"context"
	"fmt"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/domain"
)

const (
	// NudgeDelay is how long after the reminder the gentle nudge fires.
	NudgeDelay = 4 * time.Hour
	// NudgeCount is how many future nudges are queued at once.
	NudgeCount = 7
	// StreakAtRiskHour is the evening check-in for streaks worth keeping.
	StreakAtRiskHour = 21
	// StreakAtRiskMinimum is the smallest streak that earns the check-in.
	StreakAtRiskMinimum = 3
)

const day = 24 * time.Hour

var (
	dailySpark = domain.Notification{
		Kind:  domain.NotifyDailySpark,
		Title: "Your Spark is ready ⚡",
		Body:  "A new micro-challenge is waiting. Reply #spark to see it.",
	}
	gentleNudge = domain.Notification{
		Kind:  domain.NotifyGentleNudge,
		Title: "Still time for today's Spark 🌱",
		Body:  "Twenty minutes is all it takes. Reply #start when you're ready.",
	}
	streakAtRisk = domain.Notification{
		Kind:  domain.NotifyStreakAtRisk,
		Title: "Your streak is waiting 🔥",
		Body:  "Keep it alive with one small spark before the day ends.",
	}
)

// Reminders keeps the scheduled notifications in line with the user's
// preferences. Every method is safe to call repeatedly: it cancels the
// kind it owns before scheduling.
type Reminders struct {
	scheduler domain.NotificationScheduler
	clock     domain.Clock
	log       walog.Logger
}

func NewReminders(scheduler domain.NotificationScheduler, clock domain.Clock, logger walog.Logger) *Reminders {
	if logger == nil {
		logger = walog.Noop
	}
	return &Reminders{scheduler: scheduler, clock: clock, log: logger}
}

func (r *Reminders) RequestPermission(ctx context.Context) (bool, error) {
	return r.scheduler.RequestPermission(ctx)
}

// ScheduleDaily queues the main reminder. Daily cadence repeats; longer
// cadences get a single reminder at the next occurrence.
func (r *Reminders) ScheduleDaily(ctx context.Context, t domain.NotificationTime, c domain.Cadence) error {
	if err := r.scheduler.CancelByType(ctx, domain.NotifyDailySpark); err != nil {
		return fmt.Errorf("failed to cancel daily reminder: %w", err)
	}

	if c == domain.CadenceDaily {
		if _, err := r.scheduler.ScheduleRepeating(ctx, dailySpark, t.Hour, t.Minute, day); err != nil {
			return fmt.Errorf("failed to schedule daily reminder: %w", err)
		}
		r.log.Infof("Scheduled daily reminder at %d:%02d", t.Hour, t.Minute)
		return nil
	}

	now := r.clock.Now()
	next := calendar.AtClock(now, t.Hour, t.Minute)
	if !next.After(now) {
		next = next.AddDate(0, 0, calendar.IntervalDays(c))
	}
	if _, err := r.scheduler.ScheduleOnce(ctx, dailySpark, next); err != nil {
		return fmt.Errorf("failed to schedule %s reminder: %w", c, err)
	}
	r.log.Infof("Scheduled %s reminder for %s", c, next.Format(time.RFC3339))
	return nil
}

// ScheduleGentleNudge queues NudgeCount one-off nudges a cadence apart,
// starting NudgeDelay after the reminder time.
func (r *Reminders) ScheduleGentleNudge(ctx context.Context, t domain.NotificationTime, c domain.Cadence) error {
	if err := r.scheduler.CancelByType(ctx, domain.NotifyGentleNudge); err != nil {
		return fmt.Errorf("failed to cancel gentle nudge: %w", err)
	}

	days := calendar.IntervalDays(c)
	now := r.clock.Now()
	next := calendar.AtClock(now, t.Hour, t.Minute).Add(NudgeDelay)
	if !next.After(now) {
		next = next.AddDate(0, 0, days)
	}

	for i := 0; i < NudgeCount; i++ {
		at := next.AddDate(0, 0, i*days)
		if _, err := r.scheduler.ScheduleOnce(ctx, gentleNudge, at); err != nil {
			return fmt.Errorf("failed to schedule gentle nudge %d: %w", i+1, err)
		}
	}
	r.log.Debugf("Scheduled %d gentle nudges from %s", NudgeCount, next.Format(time.RFC3339))
	return nil
}

func (r *Reminders) CancelGentleNudge(ctx context.Context) error {
	return r.scheduler.CancelByType(ctx, domain.NotifyGentleNudge)
}

// ScheduleStreakAtRisk does nothing below StreakAtRiskMinimum and leaves
// any earlier check-in in place.
func (r *Reminders) ScheduleStreakAtRisk(ctx context.Context, streak int) error {
	if streak < StreakAtRiskMinimum {
		r.log.Debugf("Skipping streak-at-risk reminder (streak %d)", streak)
		return nil
	}
	if err := r.scheduler.CancelByType(ctx, domain.NotifyStreakAtRisk); err != nil {
		return fmt.Errorf("failed to cancel streak-at-risk reminder: %w", err)
	}
	if _, err := r.scheduler.ScheduleRepeating(ctx, streakAtRisk, StreakAtRiskHour, 0, day); err != nil {
		return fmt.Errorf("failed to schedule streak-at-risk reminder: %w", err)
	}
	return nil
}

// ScheduleNextChallenge replaces the main reminder with one a full cadence
// interval from today, since today's challenge is already done.
func (r *Reminders) ScheduleNextChallenge(ctx context.Context, t domain.NotificationTime, c domain.Cadence) error {
	if err := r.scheduler.CancelByType(ctx, domain.NotifyDailySpark); err != nil {
		return fmt.Errorf("failed to cancel daily reminder: %w", err)
	}
	next := calendar.AtClock(r.clock.Now(), t.Hour, t.Minute).AddDate(0, 0, calendar.IntervalDays(c))
	if _, err := r.scheduler.ScheduleOnce(ctx, dailySpark, next); err != nil {
		return fmt.Errorf("failed to schedule next challenge reminder: %w", err)
	}
	r.log.Infof("Scheduled next %s challenge for %s", c, next.Format(time.RFC3339))
	return nil
}

func (r *Reminders) CancelAll(ctx context.Context) error {
	return r.scheduler.CancelAll(ctx)
}

func (r *Reminders) Pending(ctx context.Context) ([]domain.Notification, error) {
	return r.scheduler.Pending(ctx)
}
