package usecase

import (
	"context"
	"strconv"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/achievement"
	"github.com/fardannozami/sparks/internal/assign"
	"github.com/fardannozami/sparks/internal/domain"
	"github.com/fardannozami/sparks/internal/lifecycle"
)

type CompleteResult struct {
	Completed domain.ChallengeAssignment
	Streak    int
	Unlocked  []domain.Achievement
	// Next is nil when no follow-up challenge could be assigned.
	Next    *domain.ChallengeAssignment
	NextErr error
}

type CompleteUsecase struct {
	session   *Session
	engine    *assign.Engine
	evaluator *achievement.Evaluator
	reminders *Reminders
	timer     *ChallengeTimer
	log       walog.Logger
}

func NewCompleteUsecase(session *Session, engine *assign.Engine, evaluator *achievement.Evaluator, reminders *Reminders, timer *ChallengeTimer, logger walog.Logger) *CompleteUsecase {
	if logger == nil {
		logger = walog.Noop
	}
	return &CompleteUsecase{
		session:   session,
		engine:    engine,
		evaluator: evaluator,
		reminders: reminders,
		timer:     timer,
		log:       logger,
	}
}

// Execute records feedback for the started challenge. Marking it complete,
// archiving it, the streak, achievements and the next assignment all land
// in one state update.
func (uc *CompleteUsecase) Execute(ctx context.Context, feedback domain.Feedback, wouldRepeat *bool) (CompleteResult, error) {
	var res CompleteResult
	st, err := uc.session.Update(ctx, func(tx *Tx) error {
		if err := requireOnboarded(tx); err != nil {
			return err
		}
		cur, err := currentOf(tx)
		if err != nil {
			return err
		}
		done, err := lifecycle.Complete(cur, tx.Now, feedback, wouldRepeat)
		if err != nil {
			return err
		}
		tx.State = tx.State.Archive(done)

		u := lifecycle.IncrementStreak(tx.User(), tx.Now)
		unlocked := uc.evaluator.Check(u, tx.State.History)
		u = achievement.Unlock(u, unlocked, tx.Now)
		tx.SetUser(u)

		res.Completed = done
		res.Streak = u.Streak
		for _, id := range unlocked {
			for _, d := range uc.evaluator.Definitions() {
				if d.ID == id {
					res.Unlocked = append(res.Unlocked, d)
				}
			}
		}

		repeat := "unset"
		if wouldRepeat != nil {
			repeat = strconv.FormatBool(*wouldRepeat)
		}
		tx.Record(domain.EventChallengeCompleted, map[string]string{
			"templateId": done.TemplateID,
			"feedback":   string(feedback),
			"streak":     strconv.Itoa(u.Streak),
		})
		tx.Record(domain.EventFeedbackSubmitted, map[string]string{
			"feedback":    string(feedback),
			"wouldRepeat": repeat,
		})

		next, err := assignNext(tx, uc.engine)
		if err != nil {
			res.NextErr = err
			return nil
		}
		res.Next = &next
		return nil
	})
	if err != nil {
		return res, err
	}

	uc.timer.Stop(ctx)

	if err := uc.reminders.ScheduleStreakAtRisk(ctx, res.Streak); err != nil {
		uc.log.Warnf("Failed to schedule streak-at-risk reminder: %v", err)
	}
	if st.User.Cadence != domain.CadenceDaily {
		if err := uc.reminders.ScheduleNextChallenge(ctx, st.User.ReminderTime(), st.User.Cadence); err != nil {
			uc.log.Warnf("Failed to schedule next challenge reminder: %v", err)
		}
	}
	if res.NextErr != nil {
		uc.log.Warnf("Failed to assign next challenge: %v", res.NextErr)
	}
	return res, nil
}
