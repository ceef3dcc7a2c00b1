package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/domain"
	"github.com/fardannozami/sparks/internal/progress"
)

// Flows bundles the usecases the chat commands drive.
type Flows struct {
	Onboard      *OnboardUsecase
	Settings     *UpdateSettingsUsecase
	Ensure       *EnsureAssignmentUsecase
	Start        *StartUsecase
	Breathe      *BreatheUsecase
	Timer        *BeginTimerUsecase
	Complete     *CompleteUsecase
	Skip         *SkipUsecase
	Swap         *SwapUsecase
	Snooze       *SnoozeUsecase
	Progress     *ProgressUsecase
	Achievements *AchievementsUsecase
	Share        *ShareUsecase
	Reset        *ResetUsecase
}

type HandleMessageUsecase struct {
	flows   Flows
	session *Session
	catalog *catalog.Catalog
	log     walog.Logger
}

func NewHandleMessageUsecase(flows Flows, session *Session, c *catalog.Catalog, logger walog.Logger) *HandleMessageUsecase {
	if logger == nil {
		logger = walog.Noop
	}
	return &HandleMessageUsecase{flows: flows, session: session, catalog: c, log: logger}
}

// Execute answers a chat message. Anything that is not a known command
// gets an empty reply.
func (uc *HandleMessageUsecase) Execute(ctx context.Context, sender, text string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "#") {
		return "", nil
	}
	cmd := strings.ToLower(fields[0])
	args := make([]string, len(fields)-1)
	for i, f := range fields[1:] {
		args[i] = strings.ToLower(f)
	}

	var (
		reply string
		err   error
	)
	switch cmd {
	case "#help":
		reply = helpText
	case "#onboard":
		reply, err = uc.onboard(ctx, args)
	case "#settings":
		reply, err = uc.settings(ctx, args)
	case "#spark":
		reply, err = uc.spark(ctx)
	case "#start":
		reply, err = uc.start(ctx)
	case "#breathe":
		reply, err = uc.breathe(ctx, args)
	case "#timer":
		reply, err = uc.timer(ctx)
	case "#done":
		reply, err = uc.done(ctx, args)
	case "#skip":
		reply, err = uc.skip(ctx)
	case "#swap":
		reply, err = uc.swap(ctx)
	case "#snooze":
		reply, err = uc.snooze(ctx)
	case "#progress":
		reply, err = uc.progress(ctx)
	case "#achievements":
		reply, err = uc.achievements(ctx)
	case "#share":
		reply, err = uc.flows.Share.Execute(ctx)
	case "#reset":
		if err = uc.flows.Reset.Execute(ctx); err == nil {
			reply = resetReply
		}
	default:
		return "", nil
	}

	if err != nil {
		if msg, ok := explain(err); ok {
			uc.log.Debugf("%s from %s: %v", cmd, sender, err)
			return msg, nil
		}
		return "", fmt.Errorf("%s: %w", cmd, err)
	}
	return reply, nil
}

// explain turns expected domain errors into a reply.
func explain(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrOnboardingRequired):
		return onboardingPrompt, true
	case errors.Is(err, domain.ErrNoEligibleTemplates):
		return noTemplatesReply, true
	case errors.Is(err, domain.ErrNoActiveAssignment):
		return noActiveReply, true
	case errors.Is(err, domain.ErrSwapUnavailable):
		return swapReply, true
	case errors.Is(err, domain.ErrPremiumRequired):
		return premiumReply, true
	case errors.Is(err, domain.ErrInvalidTransition):
		return "That doesn't fit where your spark is right now. Reply #spark to see it.", true
	case errors.Is(err, domain.ErrInvalidInput):
		return "🤔 I didn't get that. Reply #help for the commands.", true
	}
	return "", false
}

func (uc *HandleMessageUsecase) label(templateID string) string {
	if t, ok := uc.catalog.Lookup(templateID); ok {
		return t.Title
	}
	return templateID
}

func (uc *HandleMessageUsecase) render(a domain.ChallengeAssignment) string {
	tmpl, ok := uc.catalog.Lookup(a.TemplateID)
	now := uc.session.Now()
	st := uc.session.State()
	return fmt.Sprintf("%s\n\n📍 Spark #%d · day %d", formatAssignment(a, tmpl, ok, now),
		progress.StepNumber(st.History), progress.DaysSinceStart(st.User.CreatedAt, now))
}

func (uc *HandleMessageUsecase) onboard(ctx context.Context, args []string) (string, error) {
	if len(args) < 3 {
		return onboardingPrompt, nil
	}
	p := Preferences{
		Areas:   parseAreas(args[0]),
		Cadence: domain.Cadence(args[1]),
		Window:  uc.session.User().NotifWindow,
	}
	if t, ok := parseClock(args[2]); ok {
		p.Time = &t
	} else {
		p.Window = domain.NotifWindow(args[2])
	}
	if len(args) > 3 && args[3] == "social" {
		p.SocialOptIn = true
	}

	a, err := uc.flows.Onboard.Execute(ctx, p)
	if err != nil {
		return "", err
	}
	return "🎉 You're all set!\n\n" + uc.render(a), nil
}

func (uc *HandleMessageUsecase) settings(ctx context.Context, args []string) (string, error) {
	s := SettingsOf(uc.session.User())
	if len(args) == 0 {
		return formatSettings(s), nil
	}
	if len(args) < 2 {
		return "", fmt.Errorf("%w: settings need a key and a value", domain.ErrInvalidInput)
	}

	key, value := args[0], args[1]
	switch key {
	case "area", "areas":
		s.Areas = parseAreas(value)
	case "cadence":
		s.Cadence = domain.Cadence(value)
	case "window":
		s.Window = domain.NotifWindow(value)
		s.Time = nil
	case "time":
		t, ok := parseClock(value)
		if !ok {
			return "", fmt.Errorf("%w: time %q", domain.ErrInvalidInput, value)
		}
		s.Time = &t
	case "social":
		v, ok := parseSwitch(value)
		if !ok {
			return "", fmt.Errorf("%w: social %q", domain.ErrInvalidInput, value)
		}
		s.SocialOptIn = v
	case "breathing":
		switch value {
		case "on", "enabled":
			s.Breathing = domain.BreathingEnabled
		case "off", "disabled":
			s.Breathing = domain.BreathingDisabled
		case "never":
			s.Breathing = domain.BreathingNever
		default:
			return "", fmt.Errorf("%w: breathing %q", domain.ErrInvalidInput, value)
		}
	case "premium":
		v, ok := parseSwitch(value)
		if !ok {
			return "", fmt.Errorf("%w: premium %q", domain.ErrInvalidInput, value)
		}
		s.Premium = v
	default:
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	u, err := uc.flows.Settings.Execute(ctx, s)
	if err != nil {
		return "", err
	}
	return "✅ Saved.\n\n" + formatSettings(SettingsOf(u)), nil
}

func (uc *HandleMessageUsecase) spark(ctx context.Context) (string, error) {
	a, err := uc.flows.Ensure.Execute(ctx)
	if err != nil {
		return "", err
	}
	return uc.render(a), nil
}

func (uc *HandleMessageUsecase) start(ctx context.Context) (string, error) {
	if _, err := uc.flows.Ensure.Execute(ctx); err != nil {
		return "", err
	}
	res, err := uc.flows.Start.Execute(ctx)
	if err != nil {
		return "", err
	}
	return formatStart(res), nil
}

func (uc *HandleMessageUsecase) breathe(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: breathe needs minutes, skip or never", domain.ErrInvalidInput)
	}

	var choice BreathingChoice
	switch args[0] {
	case "skip":
		choice.Skip = true
	case "never":
		choice.Never = true
	default:
		m, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("%w: breathe %q", domain.ErrInvalidInput, args[0])
		}
		choice.Minutes = m
	}

	res, err := uc.flows.Breathe.Execute(ctx, choice)
	if err != nil {
		return "", err
	}
	if res.Minutes > 0 {
		return fmt.Sprintf("🌬️ Breathe with me for %d minute(s): inhale 4s, hold 4s, exhale 4s. I'll start your timer when we're done.", res.Minutes), nil
	}
	msg := fmt.Sprintf("⏱️ Go! Your %s timer is running.", calendar.FormatDuration(res.TimerSeconds))
	if choice.Never {
		msg += " I won't offer breathing again."
	}
	return msg, nil
}

func (uc *HandleMessageUsecase) timer(ctx context.Context) (string, error) {
	left, restarted, err := uc.flows.Timer.Execute(ctx)
	if err != nil {
		return "", err
	}
	if restarted {
		return fmt.Sprintf("⏱️ Timer started: %s.", calendar.FormatDuration(left)), nil
	}
	return fmt.Sprintf("⏳ %s left.", calendar.FormatDuration(left)), nil
}

func (uc *HandleMessageUsecase) done(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "How did it go? Reply #done fire, #done good, #done meh or #done bad.", nil
	}
	feedback := domain.Feedback(args[0])
	var wouldRepeat *bool
	if len(args) > 1 {
		v := args[1] == "again" || args[1] == "yes"
		wouldRepeat = &v
	}

	res, err := uc.flows.Complete.Execute(ctx, feedback, wouldRepeat)
	if err != nil {
		return "", err
	}
	reply := formatComplete(res, uc.label)
	if res.NextErr != nil {
		if msg, ok := explain(res.NextErr); ok {
			reply += "\n\n" + msg
		}
	}
	return reply, nil
}

func (uc *HandleMessageUsecase) skip(ctx context.Context) (string, error) {
	next, err := uc.flows.Skip.Execute(ctx)
	if err != nil {
		return "", err
	}
	return "⏭️ Skipped.\n\n" + uc.render(next), nil
}

func (uc *HandleMessageUsecase) swap(ctx context.Context) (string, error) {
	a, err := uc.flows.Swap.Execute(ctx)
	if err != nil {
		return "", err
	}
	return "🔄 Swapped.\n\n" + uc.render(a), nil
}

func (uc *HandleMessageUsecase) snooze(ctx context.Context) (string, error) {
	a, err := uc.flows.Snooze.Execute(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("😴 Snoozed. Now due %s.", formatDue(a.DueAt, uc.session.Now())), nil
}

func (uc *HandleMessageUsecase) progress(ctx context.Context) (string, error) {
	s, err := uc.flows.Progress.Execute(ctx)
	if err != nil {
		return "", err
	}
	return formatProgress(s), nil
}

func (uc *HandleMessageUsecase) achievements(ctx context.Context) (string, error) {
	board, err := uc.flows.Achievements.Execute(ctx)
	if err != nil {
		return "", err
	}
	return formatBoard(board), nil
}

func parseAreas(s string) []domain.Area {
	var areas []domain.Area
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			areas = append(areas, domain.Area(part))
		}
	}
	return areas
}

// parseClock reads H:MM or HH:MM. Range checks are left to validation.
func parseClock(s string) (domain.NotificationTime, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(m) != 2 {
		return domain.NotificationTime{}, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return domain.NotificationTime{}, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return domain.NotificationTime{}, false
	}
	return domain.NotificationTime{Hour: hour, Minute: minute}, true
}

func parseSwitch(s string) (bool, bool) {
	switch s {
	case "on", "yes", "true":
		return true, true
	case "off", "no", "false":
		return false, true
	}
	return false, false
}
