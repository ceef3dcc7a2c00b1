package usecase

import (
	"context"
	"fmt"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/domain"
	"github.com/fardannozami/sparks/internal/timer"
)

// Prompter pushes unsolicited messages to the owner.
type Prompter interface {
	Send(ctx context.Context, text string) error
}

const (
	timeUpPrompt    = "⏰ Time's up! How did it go?\nReply #done fire, #done good, #done meh or #done bad (add \"again\" if you'd repeat it)."
	breathingDone   = "🌬️ Nice breathing. Your %s timer has started. Reply #done when you finish."
	breathingFailed = "🌬️ Breathing done, but the timer could not start. Reply #timer to try again."
)

// ChallengeTimer runs the countdown for a started challenge and the
// breathing intro before it. Both outlive the request that started them
// and stop on Stop or Close.
type ChallengeTimer struct {
	session   *Session
	catalog   *catalog.Catalog
	prompter  Prompter
	countdown *timer.Countdown
	breathing *timer.Breathing
	log       walog.Logger
}

// NewChallengeTimer ticks every tick; zero means once a second.
func NewChallengeTimer(session *Session, c *catalog.Catalog, prompter Prompter, tick time.Duration, logger walog.Logger) *ChallengeTimer {
	if tick <= 0 {
		tick = time.Second
	}
	if logger == nil {
		logger = walog.Noop
	}
	return &ChallengeTimer{
		session:   session,
		catalog:   c,
		prompter:  prompter,
		countdown: timer.NewCountdownWithInterval(tick),
		breathing: timer.NewBreathing(timer.NewCountdownWithInterval(tick)),
		log:       logger,
	}
}

func (t *ChallengeTimer) startedAssignment() (domain.ChallengeAssignment, error) {
	cur := t.session.State().Current
	if cur == nil {
		return domain.ChallengeAssignment{}, domain.ErrNoActiveAssignment
	}
	if cur.Status != domain.StatusStarted {
		return domain.ChallengeAssignment{}, fmt.Errorf("%w: challenge is %s, start it first", domain.ErrInvalidTransition, cur.Status)
	}
	return *cur, nil
}

func (t *ChallengeTimer) secondsFor(a domain.ChallengeAssignment) int {
	if tmpl, ok := t.catalog.Lookup(a.TemplateID); ok {
		return timer.ChallengeSeconds(tmpl)
	}
	return timer.DefaultChallengeSeconds
}

// Begin starts the full-length countdown for the started challenge and
// saves it so a restart can pick it up.
func (t *ChallengeTimer) Begin(ctx context.Context) (int, error) {
	a, err := t.startedAssignment()
	if err != nil {
		return 0, err
	}
	t.breathing.Stop()

	seconds := t.secondsFor(a)
	t.session.SaveTimerState(ctx, domain.TimerState{StartTime: t.session.Now(), TotalSeconds: seconds})
	t.run(ctx, a.ID, seconds)
	return seconds, nil
}

// Resume continues a countdown saved before a restart. A countdown that ran
// out while the process was down prompts straight away.
func (t *ChallengeTimer) Resume(ctx context.Context) {
	ts := t.session.TimerState()
	if ts == nil {
		return
	}
	a, err := t.startedAssignment()
	if err != nil {
		t.session.ClearTimerState(ctx)
		return
	}

	left := timer.Remaining(*ts, t.session.Now())
	if left <= 0 {
		t.timeUp(context.WithoutCancel(ctx), a.ID)
		return
	}
	t.log.Infof("Resuming timer with %s left", calendar.FormatDuration(left))
	t.run(ctx, a.ID, left)
}

func (t *ChallengeTimer) run(ctx context.Context, assignmentID string, seconds int) {
	bg := context.WithoutCancel(ctx)
	t.countdown.Start(bg, seconds, nil, func() {
		t.timeUp(bg, assignmentID)
	})
}

func (t *ChallengeTimer) timeUp(ctx context.Context, assignmentID string) {
	t.session.ClearTimerState(ctx)

	cur := t.session.State().Current
	if cur == nil || cur.ID != assignmentID || cur.Status != domain.StatusStarted {
		return
	}
	if t.prompter == nil {
		return
	}
	if err := t.prompter.Send(ctx, timeUpPrompt); err != nil {
		t.log.Warnf("Failed to send time's up prompt: %v", err)
	}
}

// Breathe runs a breathing session and then begins the challenge timer.
func (t *ChallengeTimer) Breathe(ctx context.Context, minutes int) error {
	if _, err := t.startedAssignment(); err != nil {
		return err
	}
	bg := context.WithoutCancel(ctx)
	return t.breathing.Start(bg, minutes, func(p timer.Phase, remaining int) {
		t.log.Debugf("Breathing: %s (%s left)", p, calendar.FormatDuration(remaining))
	}, func() {
		seconds, err := t.Begin(bg)
		if t.prompter == nil {
			return
		}
		text := fmt.Sprintf(breathingDone, calendar.FormatDuration(seconds))
		if err != nil {
			t.log.Warnf("Failed to begin timer after breathing: %v", err)
			text = breathingFailed
		}
		if err := t.prompter.Send(bg, text); err != nil {
			t.log.Warnf("Failed to send breathing prompt: %v", err)
		}
	})
}

// Remaining reports what is left on the saved countdown.
func (t *ChallengeTimer) Remaining() (int, bool) {
	ts := t.session.TimerState()
	if ts == nil {
		return 0, false
	}
	return timer.Remaining(*ts, t.session.Now()), true
}

// Stop halts both countdowns and forgets the saved timer.
func (t *ChallengeTimer) Stop(ctx context.Context) {
	t.breathing.Stop()
	t.countdown.Stop()
	if t.session.TimerState() != nil {
		t.session.ClearTimerState(ctx)
	}
}

// Close halts both countdowns and keeps the saved timer for the next run.
func (t *ChallengeTimer) Close() {
	t.breathing.Stop()
	t.countdown.Stop()
}

// Running reports whether a countdown goroutine is active.
func (t *ChallengeTimer) Running() bool {
	return t.countdown.Running()
}

type BreathingChoice struct {
	Minutes int
	Skip    bool
	// Never turns the intro off for good.
	Never bool
}

type BreatheResult struct {
	// Minutes of breathing now running; zero when skipped.
	Minutes int
	// TimerSeconds is set when the timer started immediately.
	TimerSeconds int
}

type BreatheUsecase struct {
	session *Session
	timer   *ChallengeTimer
}

func NewBreatheUsecase(session *Session, timer *ChallengeTimer) *BreatheUsecase {
	return &BreatheUsecase{session: session, timer: timer}
}

func (uc *BreatheUsecase) Execute(ctx context.Context, choice BreathingChoice) (BreatheResult, error) {
	running := !choice.Skip && !choice.Never
	if running && !timer.ValidBreathingMinutes(choice.Minutes) {
		return BreatheResult{}, fmt.Errorf("%w: breathing lasts %d-%d minutes",
			domain.ErrInvalidInput, timer.MinBreathingMinutes, timer.MaxBreathingMinutes)
	}

	if _, err := uc.session.Update(ctx, func(tx *Tx) error {
		cur, err := currentOf(tx)
		if err != nil {
			return err
		}
		if cur.Status != domain.StatusStarted {
			return fmt.Errorf("%w: challenge is %s, start it first", domain.ErrInvalidTransition, cur.Status)
		}
		u := tx.User()
		u.IsFirstBreathing = false
		if choice.Never {
			u.BreathingPreference = domain.BreathingNever
		}
		tx.SetUser(u)
		return nil
	}); err != nil {
		return BreatheResult{}, err
	}

	if !running {
		seconds, err := uc.timer.Begin(ctx)
		return BreatheResult{TimerSeconds: seconds}, err
	}
	if err := uc.timer.Breathe(ctx, choice.Minutes); err != nil {
		return BreatheResult{}, err
	}
	return BreatheResult{Minutes: choice.Minutes}, nil
}

type BeginTimerUsecase struct {
	timer *ChallengeTimer
}

func NewBeginTimerUsecase(timer *ChallengeTimer) *BeginTimerUsecase {
	return &BeginTimerUsecase{timer: timer}
}

// Execute starts the countdown, or reports the time left on one already
// running.
func (uc *BeginTimerUsecase) Execute(ctx context.Context) (remaining int, restarted bool, err error) {
	if uc.timer.Running() {
		if left, ok := uc.timer.Remaining(); ok {
			return left, false, nil
		}
	}
	seconds, err := uc.timer.Begin(ctx)
	return seconds, true, err
}
