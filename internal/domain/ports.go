package domain

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

// StateRepository persists the owner's state as opaque blobs. A missing key
// reads back as nil with a nil error.
type StateRepository interface {
	GetUser(ctx context.Context) (*User, error)
	SaveUser(ctx context.Context, user User) error
	GetAssignments(ctx context.Context) ([]ChallengeAssignment, error)
	SaveAssignments(ctx context.Context, history []ChallengeAssignment) error
	GetCurrentAssignment(ctx context.Context) (*ChallengeAssignment, error)
	// SaveCurrentAssignment removes the stored value when current is nil.
	SaveCurrentAssignment(ctx context.Context, current *ChallengeAssignment) error
	GetTimerState(ctx context.Context) (*TimerState, error)
	SaveTimerState(ctx context.Context, state TimerState) error
	ClearTimerState(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

type NotificationKind string

const (
	NotifyDailySpark   NotificationKind = "daily_spark"
	NotifyGentleNudge  NotificationKind = "gentle_nudge"
	NotifyStreakAtRisk NotificationKind = "streak_at_risk"
)

type Notification struct {
	ID     string
	Kind   NotificationKind
	Title  string
	Body   string
	FireAt time.Time
	// Every is zero for one-off notifications.
	Every time.Duration
}

type NotificationScheduler interface {
	RequestPermission(ctx context.Context) (bool, error)
	ScheduleRepeating(ctx context.Context, n Notification, hour, minute int, every time.Duration) (string, error)
	ScheduleOnce(ctx context.Context, n Notification, at time.Time) (string, error)
	CancelByType(ctx context.Context, kind NotificationKind) error
	CancelAll(ctx context.Context) error
	Pending(ctx context.Context) ([]Notification, error)
}

type TelemetrySink interface {
	Record(ctx context.Context, event TelemetryEvent)
}
