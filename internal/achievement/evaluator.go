// Package achievement decides which achievements a user has earned and how
// close they are to the rest.
package achievement

import (
	"fmt"
	"sort"
	"time"

	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/domain"
)

type Evaluator struct {
	defs    []domain.Achievement
	rules   map[string]Rule
	catalog *catalog.Catalog
}

// NewEvaluator fails when a definition has no rule, so a new achievement
// cannot ship without its predicate.
func NewEvaluator(defs []domain.Achievement, rules map[string]Rule, c *catalog.Catalog) (*Evaluator, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: catalog is required", domain.ErrInvalidInput)
	}
	for _, d := range defs {
		if _, ok := rules[d.ID]; !ok {
			return nil, fmt.Errorf("%w: no rule for achievement %s", domain.ErrInvalidInput, d.ID)
		}
	}
	return &Evaluator{defs: defs, rules: rules, catalog: c}, nil
}

// NewDefaultEvaluator wires the built-in definitions and rules.
func NewDefaultEvaluator(c *catalog.Catalog) *Evaluator {
	e, err := NewEvaluator(catalog.Achievements(), DefaultRules(), c)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Evaluator) Definitions() []domain.Achievement {
	return append([]domain.Achievement(nil), e.defs...)
}

// Check returns the ids that unlock now, in definition order. Ids the user
// already holds are never returned again.
func (e *Evaluator) Check(user domain.User, history []domain.ChallengeAssignment) []string {
	stats := Derive(user, history, e.catalog)

	var unlocked []string
	for _, d := range e.defs {
		if user.HasAchievement(d.ID) {
			continue
		}
		if e.rules[d.ID].Unlocked(stats) {
			unlocked = append(unlocked, d.ID)
		}
	}
	return unlocked
}

// Progress is the raw counter for id; unknown ids report 0.
func (e *Evaluator) Progress(id string, user domain.User, history []domain.ChallengeAssignment) int {
	rule, ok := e.rules[id]
	if !ok {
		return 0
	}
	return rule.Progress(Derive(user, history, e.catalog))
}

// Unlock records ids on the user. Ids already present are left alone, so
// achievements stays free of duplicates.
func Unlock(user domain.User, ids []string, now time.Time) domain.User {
	out := user.Clone()
	for _, id := range ids {
		if out.HasAchievement(id) {
			continue
		}
		out.Achievements = append(out.Achievements, domain.UserAchievement{AchievementID: id, UnlockedAt: now})
	}
	return out
}

type Status struct {
	domain.Achievement
	Unlocked   bool
	UnlockedAt *time.Time
	Progress   int
	// Percent is Progress clamped to the requirement, 0 to 100.
	Percent int
}

// Board lists every achievement for display: unlocked first, newest unlock
// first, then locked by progress. Ties keep definition order.
func (e *Evaluator) Board(user domain.User, history []domain.ChallengeAssignment) []Status {
	stats := Derive(user, history, e.catalog)
	unlockedAt := make(map[string]time.Time, len(user.Achievements))
	for _, ua := range user.Achievements {
		unlockedAt[ua.AchievementID] = ua.UnlockedAt
	}

	board := make([]Status, 0, len(e.defs))
	for _, d := range e.defs {
		st := Status{Achievement: d, Progress: e.rules[d.ID].Progress(stats)}
		if at, ok := unlockedAt[d.ID]; ok {
			at := at
			st.Unlocked = true
			st.UnlockedAt = &at
			st.Percent = 100
		} else if d.Requirement > 0 {
			st.Percent = min(st.Progress, d.Requirement) * 100 / d.Requirement
		}
		board = append(board, st)
	}

	sort.SliceStable(board, func(i, j int) bool {
		a, b := board[i], board[j]
		if a.Unlocked != b.Unlocked {
			return a.Unlocked
		}
		if a.Unlocked {
			return a.UnlockedAt.After(*b.UnlockedAt)
		}
		return a.Progress > b.Progress
	})
	return board
}
