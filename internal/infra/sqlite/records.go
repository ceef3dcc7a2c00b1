package sqlite

import (
	"time"

	"github.com/fardannozami/sparks/internal/domain"
)

// The stored blobs use camelCase keys and epoch-millisecond timestamps.

type notificationTimeRecord struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type userAchievementRecord struct {
	AchievementID string `json:"achievementId"`
	UnlockedAt    int64  `json:"unlockedAt"`
}

type userRecord struct {
	ID                  string                  `json:"id"`
	Email               *string                 `json:"email,omitempty"`
	Name                *string                 `json:"name,omitempty"`
	Areas               []string                `json:"areas"`
	Cadence             string                  `json:"cadence"`
	NotifWindow         string                  `json:"notifWindow"`
	NotificationTime    *notificationTimeRecord `json:"notificationTime,omitempty"`
	SocialOptIn         bool                    `json:"socialOptIn"`
	PushToken           *string                 `json:"pushToken,omitempty"`
	Streak              int                     `json:"streak"`
	CreatedAt           int64                   `json:"createdAt"`
	LastAssignmentAt    *int64                  `json:"lastAssignmentAt,omitempty"`
	LastCompletedDate   *string                 `json:"lastCompletedDate,omitempty"`
	OnboardingCompleted bool                    `json:"onboardingCompleted"`
	Achievements        []userAchievementRecord `json:"achievements"`
	IsPremium           *bool                   `json:"isPremium,omitempty"`
	BreathingPreference *string                 `json:"breathingPreference,omitempty"`
	IsFirstBreathing    *bool                   `json:"isFirstBreathing,omitempty"`
}

type assignmentRecord struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	TemplateID    string  `json:"templateId"`
	AltTemplateID *string `json:"altTemplateId,omitempty"`
	DueAt         int64   `json:"dueAt"`
	CreatedAt     int64   `json:"createdAt"`
	Status        string  `json:"status"`
	StartedAt     *int64  `json:"startedAt,omitempty"`
	CompletedAt   *int64  `json:"completedAt,omitempty"`
	Feedback      *string `json:"feedback,omitempty"`
	WouldRepeat   *bool   `json:"wouldRepeat,omitempty"`
	WithFriends   *string `json:"withFriends,omitempty"`
	PhotoURI      *string `json:"photoUri,omitempty"`
	HasSwapped    bool    `json:"hasSwapped"`
	HasSnoozed    bool    `json:"hasSnoozed"`
}

type timerStateRecord struct {
	StartTime    int64 `json:"startTime"`
	TotalSeconds int   `json:"totalSeconds"`
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}

func optMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.UnixMilli()
	return &v
}

func fromMillis(ms int64, loc *time.Location) time.Time {
	return time.UnixMilli(ms).In(loc)
}

func optFromMillis(ms *int64, loc *time.Location) *time.Time {
	if ms == nil {
		return nil
	}
	t := fromMillis(*ms, loc)
	return &t
}

func boolPtr(b bool) *bool { return &b }

func toUserRecord(u domain.User) userRecord {
	areas := make([]string, len(u.Areas))
	for i, a := range u.Areas {
		areas[i] = string(a)
	}
	achievements := make([]userAchievementRecord, len(u.Achievements))
	for i, a := range u.Achievements {
		achievements[i] = userAchievementRecord{AchievementID: a.AchievementID, UnlockedAt: millis(a.UnlockedAt)}
	}
	var nt *notificationTimeRecord
	if u.NotificationTime != nil {
		nt = &notificationTimeRecord{Hour: u.NotificationTime.Hour, Minute: u.NotificationTime.Minute}
	}
	pref := string(u.BreathingPreference)

	return userRecord{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		Areas:               areas,
		Cadence:             string(u.Cadence),
		NotifWindow:         string(u.NotifWindow),
		NotificationTime:    nt,
		SocialOptIn:         u.SocialOptIn,
		PushToken:           u.PushToken,
		Streak:              u.Streak,
		CreatedAt:           millis(u.CreatedAt),
		LastAssignmentAt:    optMillis(u.LastAssignmentAt),
		LastCompletedDate:   u.LastCompletedDate,
		OnboardingCompleted: u.OnboardingCompleted,
		Achievements:        achievements,
		IsPremium:           boolPtr(u.IsPremium),
		BreathingPreference: &pref,
		IsFirstBreathing:    boolPtr(u.IsFirstBreathing),
	}
}

// toUser fills the fields older blobs may lack with the fresh-install
// defaults.
func (r userRecord) toUser(loc *time.Location) domain.User {
	areas := make([]domain.Area, len(r.Areas))
	for i, a := range r.Areas {
		areas[i] = domain.Area(a)
	}
	achievements := make([]domain.UserAchievement, len(r.Achievements))
	for i, a := range r.Achievements {
		achievements[i] = domain.UserAchievement{AchievementID: a.AchievementID, UnlockedAt: fromMillis(a.UnlockedAt, loc)}
	}
	var nt *domain.NotificationTime
	if r.NotificationTime != nil {
		nt = &domain.NotificationTime{Hour: r.NotificationTime.Hour, Minute: r.NotificationTime.Minute}
	}

	u := domain.User{
		ID:                  r.ID,
		Email:               r.Email,
		Name:                r.Name,
		Areas:               areas,
		Cadence:             domain.Cadence(r.Cadence),
		NotifWindow:         domain.NotifWindow(r.NotifWindow),
		NotificationTime:    nt,
		SocialOptIn:         r.SocialOptIn,
		PushToken:           r.PushToken,
		Streak:              r.Streak,
		CreatedAt:           fromMillis(r.CreatedAt, loc),
		LastAssignmentAt:    optFromMillis(r.LastAssignmentAt, loc),
		LastCompletedDate:   r.LastCompletedDate,
		OnboardingCompleted: r.OnboardingCompleted,
		Achievements:        achievements,
		BreathingPreference: domain.BreathingEnabled,
		IsFirstBreathing:    true,
	}
	if r.IsPremium != nil {
		u.IsPremium = *r.IsPremium
	}
	if r.BreathingPreference != nil && *r.BreathingPreference != "" {
		u.BreathingPreference = domain.BreathingPreference(*r.BreathingPreference)
	}
	if r.IsFirstBreathing != nil {
		u.IsFirstBreathing = *r.IsFirstBreathing
	}
	return u
}

func toAssignmentRecord(a domain.ChallengeAssignment) assignmentRecord {
	var fb *string
	if a.Feedback != nil {
		v := string(*a.Feedback)
		fb = &v
	}
	return assignmentRecord{
		ID:            a.ID,
		UserID:        a.UserID,
		TemplateID:    a.TemplateID,
		AltTemplateID: a.AltTemplateID,
		DueAt:         millis(a.DueAt),
		CreatedAt:     millis(a.CreatedAt),
		Status:        string(a.Status),
		StartedAt:     optMillis(a.StartedAt),
		CompletedAt:   optMillis(a.CompletedAt),
		Feedback:      fb,
		WouldRepeat:   a.WouldRepeat,
		WithFriends:   a.WithFriends,
		PhotoURI:      a.PhotoURI,
		HasSwapped:    a.HasSwapped,
		HasSnoozed:    a.HasSnoozed,
	}
}

func (r assignmentRecord) toAssignment(loc *time.Location) domain.ChallengeAssignment {
	var fb *domain.Feedback
	if r.Feedback != nil {
		v := domain.Feedback(*r.Feedback)
		fb = &v
	}
	return domain.ChallengeAssignment{
		ID:            r.ID,
		UserID:        r.UserID,
		TemplateID:    r.TemplateID,
		AltTemplateID: r.AltTemplateID,
		DueAt:         fromMillis(r.DueAt, loc),
		CreatedAt:     fromMillis(r.CreatedAt, loc),
		Status:        domain.Status(r.Status),
		StartedAt:     optFromMillis(r.StartedAt, loc),
		CompletedAt:   optFromMillis(r.CompletedAt, loc),
		Feedback:      fb,
		WouldRepeat:   r.WouldRepeat,
		WithFriends:   r.WithFriends,
		PhotoURI:      r.PhotoURI,
		HasSwapped:    r.HasSwapped,
		HasSnoozed:    r.HasSnoozed,
	}
}
