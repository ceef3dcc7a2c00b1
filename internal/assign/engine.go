// Package assign picks the next challenge for a user.
//
// Selection is deterministic: the daily seed only biases tone, and the
// first fresh template in catalog order wins.
package assign

import (
	"fmt"
	"time"

	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/domain"
)

// seriousShare is the percentage of seeds that prefer serious templates.
const seriousShare = 70

type Engine struct {
	catalog *catalog.Catalog
	clock   domain.Clock
	ids     domain.IDGenerator
}

func NewEngine(c *catalog.Catalog, clock domain.Clock, ids domain.IDGenerator) (*Engine, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: catalog is required", domain.ErrInvalidInput)
	}
	if clock == nil {
		return nil, fmt.Errorf("%w: clock is required", domain.ErrInvalidInput)
	}
	if ids == nil {
		return nil, fmt.Errorf("%w: id generator is required", domain.ErrInvalidInput)
	}
	return &Engine{catalog: c, clock: clock, ids: ids}, nil
}

// AssignDaily builds a fresh assignment for user. Templates already present
// in history, whatever their status, are avoided until every eligible
// template has been used.
func (e *Engine) AssignDaily(user domain.User, history []domain.ChallengeAssignment) (domain.ChallengeAssignment, error) {
	now := e.clock.Now()

	eligible := e.catalog.Eligible(user.Areas)
	if len(eligible) == 0 {
		return domain.ChallengeAssignment{}, fmt.Errorf("%w: areas %v", domain.ErrNoEligibleTemplates, user.Areas)
	}

	hour, err := calendar.HourForWindow(user.NotifWindow)
	if err != nil {
		return domain.ChallengeAssignment{}, err
	}

	picked := pick(eligible, usedTemplateIDs(history), PreferredTone(calendar.DailySeed(calendar.DateKey(now), user.Areas)))

	var altID *string
	if picked.AltID != nil {
		if alt, ok := e.catalog.Lookup(*picked.AltID); ok {
			id := alt.ID
			altID = &id
		}
	}

	return domain.ChallengeAssignment{
		ID:            e.ids.NewID(),
		UserID:        user.ID,
		TemplateID:    picked.ID,
		AltTemplateID: altID,
		DueAt:         dueAt(now, hour),
		CreatedAt:     now,
		Status:        domain.StatusAssigned,
	}, nil
}

// Swap replaces current with its paired alternate. The discarded assignment
// comes back marked skipped so the caller can archive it. A lineage gets a
// single swap: the replacement carries HasSwapped forward.
func (e *Engine) Swap(current domain.ChallengeAssignment) (replacement, discarded domain.ChallengeAssignment, err error) {
	if current.IsTerminal() {
		return replacement, discarded, fmt.Errorf("%w: assignment is %s", domain.ErrSwapUnavailable, current.Status)
	}
	if current.HasSwapped {
		return replacement, discarded, fmt.Errorf("%w: already swapped", domain.ErrSwapUnavailable)
	}
	if current.AltTemplateID == nil {
		return replacement, discarded, fmt.Errorf("%w: template %s has no alternate", domain.ErrSwapUnavailable, current.TemplateID)
	}
	if _, ok := e.catalog.Lookup(*current.AltTemplateID); !ok {
		return replacement, discarded, fmt.Errorf("%w: alternate %s not in catalog", domain.ErrSwapUnavailable, *current.AltTemplateID)
	}

	original := current.TemplateID
	replacement = domain.ChallengeAssignment{
		ID:            e.ids.NewID(),
		UserID:        current.UserID,
		TemplateID:    *current.AltTemplateID,
		AltTemplateID: &original,
		DueAt:         current.DueAt,
		CreatedAt:     e.clock.Now(),
		Status:        domain.StatusAssigned,
		HasSwapped:    true,
	}

	discarded = current
	discarded.Status = domain.StatusSkipped
	return replacement, discarded, nil
}

// PreferredTone maps a daily seed to the tone that day leans towards.
func PreferredTone(seed int64) domain.Tone {
	if seed%100 < seriousShare {
		return domain.ToneSerious
	}
	return domain.TonePlayful
}

func usedTemplateIDs(history []domain.ChallengeAssignment) map[string]struct{} {
	used := make(map[string]struct{}, len(history))
	for _, a := range history {
		used[a.TemplateID] = struct{}{}
	}
	return used
}

func pick(eligible []domain.ChallengeTemplate, used map[string]struct{}, tone domain.Tone) domain.ChallengeTemplate {
	var fresh []domain.ChallengeTemplate
	for _, t := range eligible {
		if _, ok := used[t.ID]; !ok {
			fresh = append(fresh, t)
		}
	}
	if len(fresh) == 0 {
		fresh = eligible
	}

	for _, t := range fresh {
		if t.Tone == tone {
			return t
		}
	}
	return fresh[0]
}

func dueAt(now time.Time, hour int) time.Time {
	today := calendar.TodayAtHour(now, hour)
	if now.Before(today) {
		return today
	}
	return calendar.TomorrowAtHour(now, hour)
}
