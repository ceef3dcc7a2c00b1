package usecase

import (
	"context"
	"fmt"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/assign"
	"github.com/fardannozami/sparks/internal/domain"
	"github.com/fardannozami/sparks/internal/lifecycle"
)

// assignNext gives the user a new current assignment drawn against the
// history already in tx.
func assignNext(tx *Tx, engine *assign.Engine) (domain.ChallengeAssignment, error) {
	u := tx.User()
	a, err := engine.AssignDaily(u, tx.State.History)
	if err != nil {
		return domain.ChallengeAssignment{}, err
	}
	tx.State = tx.State.WithCurrent(&a)

	now := tx.Now
	u.LastAssignmentAt = &now
	tx.SetUser(u)
	tx.Record(domain.EventAssignmentAssigned, map[string]string{"templateId": a.TemplateID})
	return a, nil
}

// currentOf returns a copy of the current assignment so callers can change
// it without touching the state it came from.
func currentOf(tx *Tx) (domain.ChallengeAssignment, error) {
	if tx.State.Current == nil {
		return domain.ChallengeAssignment{}, domain.ErrNoActiveAssignment
	}
	return *tx.State.Current, nil
}

func requireOnboarded(tx *Tx) error {
	if tx.State.User == nil || !tx.State.User.OnboardingCompleted {
		return domain.ErrOnboardingRequired
	}
	return nil
}

type EnsureAssignmentUsecase struct {
	session *Session
	engine  *assign.Engine
}

func NewEnsureAssignmentUsecase(session *Session, engine *assign.Engine) *EnsureAssignmentUsecase {
	return &EnsureAssignmentUsecase{session: session, engine: engine}
}

// Execute returns the live assignment, expiring a stale one and assigning
// a new one when needed.
func (uc *EnsureAssignmentUsecase) Execute(ctx context.Context) (domain.ChallengeAssignment, error) {
	var out domain.ChallengeAssignment
	_, err := uc.session.Update(ctx, func(tx *Tx) error {
		if err := requireOnboarded(tx); err != nil {
			return err
		}

		if cur := tx.State.Current; cur != nil && lifecycle.IsOverdue(*cur, tx.Now) {
			expired, err := lifecycle.Expire(*cur)
			if err != nil {
				return err
			}
			tx.State = tx.State.Archive(expired)
		}

		if cur := tx.State.Current; cur != nil && !cur.IsTerminal() {
			out = *cur
			return nil
		}

		a, err := assignNext(tx, uc.engine)
		out = a
		return err
	})
	return out, err
}

type StartResult struct {
	Assignment domain.ChallengeAssignment
	// Breathing is true when the breathing intro should run before the
	// timer. Otherwise the timer is already running.
	Breathing    bool
	FirstTime    bool
	TimerSeconds int
}

type StartUsecase struct {
	session   *Session
	reminders *Reminders
	timer     *ChallengeTimer
	log       walog.Logger
}

func NewStartUsecase(session *Session, reminders *Reminders, timer *ChallengeTimer, logger walog.Logger) *StartUsecase {
	if logger == nil {
		logger = walog.Noop
	}
	return &StartUsecase{session: session, reminders: reminders, timer: timer, log: logger}
}

func (uc *StartUsecase) Execute(ctx context.Context) (StartResult, error) {
	var res StartResult
	st, err := uc.session.Update(ctx, func(tx *Tx) error {
		if err := requireOnboarded(tx); err != nil {
			return err
		}
		cur, err := currentOf(tx)
		if err != nil {
			return err
		}
		started, err := lifecycle.Start(cur, tx.Now)
		if err != nil {
			return err
		}
		tx.State = tx.State.WithCurrent(&started)
		tx.Record(domain.EventChallengeStarted, map[string]string{"templateId": started.TemplateID})
		res.Assignment = started
		return nil
	})
	if err != nil {
		return res, err
	}

	if err := uc.reminders.CancelGentleNudge(ctx); err != nil {
		uc.log.Warnf("Failed to cancel gentle nudge: %v", err)
	}

	if st.User.BreathingPreference == domain.BreathingNever {
		seconds, err := uc.timer.Begin(ctx)
		if err != nil {
			return res, err
		}
		res.TimerSeconds = seconds
		return res, nil
	}

	res.Breathing = true
	res.FirstTime = st.User.IsFirstBreathing
	return res, nil
}

type SkipUsecase struct {
	session *Session
	engine  *assign.Engine
	timer   *ChallengeTimer
}

func NewSkipUsecase(session *Session, engine *assign.Engine, timer *ChallengeTimer) *SkipUsecase {
	return &SkipUsecase{session: session, engine: engine, timer: timer}
}

// Execute archives the current assignment as skipped and assigns the next.
func (uc *SkipUsecase) Execute(ctx context.Context) (domain.ChallengeAssignment, error) {
	var next domain.ChallengeAssignment
	_, err := uc.session.Update(ctx, func(tx *Tx) error {
		if err := requireOnboarded(tx); err != nil {
			return err
		}
		cur, err := currentOf(tx)
		if err != nil {
			return err
		}
		skipped, err := lifecycle.Skip(cur)
		if err != nil {
			return err
		}
		tx.State = tx.State.Archive(skipped)

		next, err = assignNext(tx, uc.engine)
		return err
	})
	if err != nil {
		return next, err
	}
	uc.timer.Stop(ctx)
	return next, nil
}

type SwapUsecase struct {
	session *Session
	engine  *assign.Engine
	timer   *ChallengeTimer
}

func NewSwapUsecase(session *Session, engine *assign.Engine, timer *ChallengeTimer) *SwapUsecase {
	return &SwapUsecase{session: session, engine: engine, timer: timer}
}

// Execute trades the current assignment for its alternate. Premium only.
func (uc *SwapUsecase) Execute(ctx context.Context) (domain.ChallengeAssignment, error) {
	var replacement domain.ChallengeAssignment
	_, err := uc.session.Update(ctx, func(tx *Tx) error {
		if err := requireOnboarded(tx); err != nil {
			return err
		}
		if !tx.State.User.IsPremium {
			return domain.ErrPremiumRequired
		}
		cur, err := currentOf(tx)
		if err != nil {
			return err
		}

		var discarded domain.ChallengeAssignment
		replacement, discarded, err = uc.engine.Swap(cur)
		if err != nil {
			return err
		}
		tx.State = tx.State.Archive(discarded).WithCurrent(&replacement)
		tx.Record(domain.EventChallengeSwapped, map[string]string{
			"from": discarded.TemplateID,
			"to":   replacement.TemplateID,
		})
		return nil
	})
	if err != nil {
		return replacement, err
	}
	uc.timer.Stop(ctx)
	return replacement, nil
}

type SnoozeUsecase struct {
	session *Session
}

func NewSnoozeUsecase(session *Session) *SnoozeUsecase {
	return &SnoozeUsecase{session: session}
}

func (uc *SnoozeUsecase) Execute(ctx context.Context) (domain.ChallengeAssignment, error) {
	var snoozed domain.ChallengeAssignment
	_, err := uc.session.Update(ctx, func(tx *Tx) error {
		cur, err := currentOf(tx)
		if err != nil {
			return err
		}
		snoozed, err = lifecycle.Snooze(cur)
		if err != nil {
			return err
		}
		tx.State = tx.State.WithCurrent(&snoozed)
		tx.Record(domain.EventChallengeSnoozed, map[string]string{
			"templateId": snoozed.TemplateID,
			"dueAt":      snoozed.DueAt.Format("15:04"),
		})
		return nil
	})
	if err != nil {
		return snoozed, fmt.Errorf("snooze: %w", err)
	}
	return snoozed, nil
}
