package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/domain"
)

var validate = validator.New()

// Preferences are the choices made during onboarding.
type Preferences struct {
	Areas   []domain.Area      `validate:"min=1,dive,oneof=health creativity social nature focus money romance selflove"`
	Cadence domain.Cadence     `validate:"oneof=daily every2days every3days weekly"`
	Window  domain.NotifWindow `validate:"oneof=6am 7am 8am 9am 12pm 1pm 5pm 6pm 7pm 8pm"`
	// Time overrides the window's hour for reminders when set.
	Time        *domain.NotificationTime
	SocialOptIn bool
}

// Settings extends Preferences with what can only be changed later.
type Settings struct {
	Preferences
	Breathing domain.BreathingPreference `validate:"oneof=enabled disabled never"`
	Premium   bool
}

// SettingsOf reads the editable settings back out of u.
func SettingsOf(u domain.User) Settings {
	return Settings{
		Preferences: Preferences{
			Areas:       append([]domain.Area(nil), u.Areas...),
			Cadence:     u.Cadence,
			Window:      u.NotifWindow,
			Time:        u.NotificationTime,
			SocialOptIn: u.SocialOptIn,
		},
		Breathing: u.BreathingPreference,
		Premium:   u.IsPremium,
	}
}

func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (p Preferences) reminderTime() domain.NotificationTime {
	if p.Time != nil {
		return *p.Time
	}
	hour, _ := p.Window.Hour()
	return domain.NotificationTime{Hour: hour}
}

func (p Preferences) apply(u domain.User) domain.User {
	u.Areas = append([]domain.Area(nil), p.Areas...)
	u.Cadence = p.Cadence
	u.NotifWindow = p.Window
	t := p.reminderTime()
	u.NotificationTime = &t
	u.SocialOptIn = p.SocialOptIn
	return u
}

type OnboardUsecase struct {
	session   *Session
	reminders *Reminders
	ensure    *EnsureAssignmentUsecase
	log       walog.Logger
}

func NewOnboardUsecase(session *Session, reminders *Reminders, ensure *EnsureAssignmentUsecase, logger walog.Logger) *OnboardUsecase {
	if logger == nil {
		logger = walog.Noop
	}
	return &OnboardUsecase{session: session, reminders: reminders, ensure: ensure, log: logger}
}

// Execute completes onboarding and hands out the first challenge.
// Notification problems are logged and never block onboarding.
func (uc *OnboardUsecase) Execute(ctx context.Context, p Preferences) (domain.ChallengeAssignment, error) {
	if err := validateStruct(p); err != nil {
		return domain.ChallengeAssignment{}, err
	}

	granted, err := uc.reminders.RequestPermission(ctx)
	switch {
	case err != nil:
		uc.log.Warnf("Failed to request notification permission: %v", err)
	case !granted:
		uc.log.Infof("Notification permission denied; continuing without reminders")
	default:
		t := p.reminderTime()
		if err := uc.reminders.ScheduleDaily(ctx, t, p.Cadence); err != nil {
			uc.log.Warnf("Failed to schedule daily reminder: %v", err)
		}
		if err := uc.reminders.ScheduleGentleNudge(ctx, t, p.Cadence); err != nil {
			uc.log.Warnf("Failed to schedule gentle nudge: %v", err)
		}
	}

	if _, err := uc.session.Update(ctx, func(tx *Tx) error {
		u := p.apply(tx.User())
		u.OnboardingCompleted = true
		tx.SetUser(u)
		return nil
	}); err != nil {
		return domain.ChallengeAssignment{}, err
	}

	return uc.ensure.Execute(ctx)
}

type UpdateSettingsUsecase struct {
	session   *Session
	reminders *Reminders
	log       walog.Logger
}

func NewUpdateSettingsUsecase(session *Session, reminders *Reminders, logger walog.Logger) *UpdateSettingsUsecase {
	if logger == nil {
		logger = walog.Noop
	}
	return &UpdateSettingsUsecase{session: session, reminders: reminders, log: logger}
}

// Execute reschedules reminders for the new settings and then stores them.
func (uc *UpdateSettingsUsecase) Execute(ctx context.Context, s Settings) (domain.User, error) {
	if err := validateStruct(s); err != nil {
		return domain.User{}, err
	}
	current := uc.session.User()
	if !current.OnboardingCompleted {
		return domain.User{}, domain.ErrOnboardingRequired
	}

	t := s.reminderTime()
	if err := uc.reminders.ScheduleDaily(ctx, t, s.Cadence); err != nil {
		uc.log.Warnf("Failed to reschedule daily reminder: %v", err)
	}
	if err := uc.reminders.ScheduleGentleNudge(ctx, t, s.Cadence); err != nil {
		uc.log.Warnf("Failed to reschedule gentle nudge: %v", err)
	}
	if err := uc.reminders.ScheduleStreakAtRisk(ctx, current.Streak); err != nil {
		uc.log.Warnf("Failed to reschedule streak-at-risk reminder: %v", err)
	}

	st, err := uc.session.Update(ctx, func(tx *Tx) error {
		u := s.apply(tx.User())
		u.BreathingPreference = s.Breathing
		u.IsPremium = s.Premium
		tx.SetUser(u)
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return st.User.Clone(), nil
}
