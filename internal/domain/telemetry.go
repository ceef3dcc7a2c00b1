package domain

import "time"

type TelemetryType string

const (
	EventAssignmentAssigned TelemetryType = "assignment_assigned"
	EventChallengeStarted   TelemetryType = "challenge_started"
	EventChallengeCompleted TelemetryType = "challenge_completed"
	EventChallengeSwapped   TelemetryType = "challenge_swapped"
	EventChallengeSnoozed   TelemetryType = "challenge_snoozed"
	EventFeedbackSubmitted  TelemetryType = "feedback_submitted"
)

type TelemetryEvent struct {
	Type      TelemetryType
	Timestamp time.Time
	Metadata  map[string]string
}
