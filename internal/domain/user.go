package domain

import (
	"strconv"
	"time"
)

type NotificationTime struct {
	Hour   int `validate:"gte=0,lte=23"`
	Minute int `validate:"gte=0,lte=59"`
}

type UserAchievement struct {
	AchievementID string
	UnlockedAt    time.Time
}

type User struct {
	ID                  string
	Email               *string
	Name                *string
	Areas               []Area
	Cadence             Cadence
	NotifWindow         NotifWindow
	NotificationTime    *NotificationTime
	SocialOptIn         bool
	PushToken           *string
	Streak              int
	CreatedAt           time.Time
	LastAssignmentAt    *time.Time
	LastCompletedDate   *string // YYYY-MM-DD, local calendar
	OnboardingCompleted bool
	Achievements        []UserAchievement
	IsPremium           bool
	BreathingPreference BreathingPreference
	IsFirstBreathing    bool
}

// NewDefaultUser returns the user a fresh install starts with.
func NewDefaultUser(now time.Time) User {
	return User{
		ID:                  "user_" + strconv.FormatInt(now.UnixMilli(), 10),
		Areas:               []Area{},
		Cadence:             CadenceDaily,
		NotifWindow:         Window8AM,
		CreatedAt:           now,
		Achievements:        []UserAchievement{},
		BreathingPreference: BreathingEnabled,
		IsFirstBreathing:    true,
	}
}

// ReminderTime is the explicit notification time, or the window's hour on
// the hour for users that never picked one.
func (u User) ReminderTime() NotificationTime {
	if u.NotificationTime != nil {
		return *u.NotificationTime
	}
	hour, ok := u.NotifWindow.Hour()
	if !ok {
		hour = 8
	}
	return NotificationTime{Hour: hour, Minute: 0}
}

func (u User) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a.AchievementID == id {
			return true
		}
	}
	return false
}

// Clone copies the slices so the result can be mutated independently.
func (u User) Clone() User {
	c := u
	c.Areas = append([]Area(nil), u.Areas...)
	c.Achievements = append([]UserAchievement(nil), u.Achievements...)
	if u.NotificationTime != nil {
		nt := *u.NotificationTime
		c.NotificationTime = &nt
	}
	return c
}
