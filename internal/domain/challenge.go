package domain

import "time"

// ChallengeTemplate is catalog data and is never mutated after start-up.
type ChallengeTemplate struct {
	ID          string
	Title       string
	Short       string
	AreaTags    []Area
	Tone        Tone
	DurationMin *int
	Steps       []string
	AltID       *string
	FollowUp    []string
}

func (t ChallengeTemplate) HasArea(area Area) bool {
	for _, a := range t.AreaTags {
		if a == area {
			return true
		}
	}
	return false
}

type ChallengeAssignment struct {
	ID            string
	UserID        string
	TemplateID    string
	AltTemplateID *string
	DueAt         time.Time
	CreatedAt     time.Time
	Status        Status
	StartedAt     *time.Time
	CompletedAt   *time.Time
	Feedback      *Feedback
	WouldRepeat   *bool
	WithFriends   *string
	PhotoURI      *string
	HasSwapped    bool
	HasSnoozed    bool
}

func (a ChallengeAssignment) IsTerminal() bool {
	return a.Status.Terminal()
}

// TimerState is the transient record that lets a running countdown survive
// a restart.
type TimerState struct {
	StartTime    time.Time
	TotalSeconds int
}
