package usecase

import (
	"context"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/achievement"
	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/progress"
)

type ProgressUsecase struct {
	session *Session
	catalog *catalog.Catalog
}

func NewProgressUsecase(session *Session, c *catalog.Catalog) *ProgressUsecase {
	return &ProgressUsecase{session: session, catalog: c}
}

func (uc *ProgressUsecase) Execute(ctx context.Context) (progress.Stats, error) {
	st := uc.session.State()
	return progress.Compute(uc.session.User(), st.History, uc.catalog, uc.session.Now()), nil
}

type AchievementsUsecase struct {
	session   *Session
	evaluator *achievement.Evaluator
}

func NewAchievementsUsecase(session *Session, evaluator *achievement.Evaluator) *AchievementsUsecase {
	return &AchievementsUsecase{session: session, evaluator: evaluator}
}

func (uc *AchievementsUsecase) Execute(ctx context.Context) ([]achievement.Status, error) {
	st := uc.session.State()
	return uc.evaluator.Board(uc.session.User(), st.History), nil
}

type ShareUsecase struct {
	session *Session
}

func NewShareUsecase(session *Session) *ShareUsecase {
	return &ShareUsecase{session: session}
}

func (uc *ShareUsecase) Execute(ctx context.Context) (string, error) {
	st := uc.session.State()
	return progress.ShareMessage(uc.session.User(), st.History), nil
}

type ResetUsecase struct {
	session   *Session
	reminders *Reminders
	timer     *ChallengeTimer
	log       walog.Logger
}

func NewResetUsecase(session *Session, reminders *Reminders, timer *ChallengeTimer, logger walog.Logger) *ResetUsecase {
	if logger == nil {
		logger = walog.Noop
	}
	return &ResetUsecase{session: session, reminders: reminders, timer: timer, log: logger}
}

// Execute wipes all progress and starts over from a default user.
func (uc *ResetUsecase) Execute(ctx context.Context) error {
	uc.timer.Stop(ctx)
	if err := uc.reminders.CancelAll(ctx); err != nil {
		uc.log.Warnf("Failed to cancel notifications: %v", err)
	}
	return uc.session.Reset(ctx)
}
