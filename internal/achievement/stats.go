package achievement

import (
	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/domain"
)

// Stats are the counters every rule reads from. They are derived once per
// evaluation from the user and history.
type Stats struct {
	Streak    int
	Completed int
	Morning   int
	Evening   int
	NoSwap    int
	Fire      int
	ByArea    map[domain.Area]int
	// AreasTouched is the number of distinct areas across completed
	// templates.
	AreasTouched int
}

const (
	morningStart = 6
	morningEnd   = 12
	eveningStart = 18
	eveningEnd   = 24
)

// Derive scans completed entries. Entries whose template is no longer in
// the catalog still count towards totals but add nothing to area counters.
func Derive(user domain.User, history []domain.ChallengeAssignment, c *catalog.Catalog) Stats {
	s := Stats{Streak: user.Streak, ByArea: make(map[domain.Area]int)}

	for _, a := range history {
		if a.Status != domain.StatusCompleted {
			continue
		}
		s.Completed++

		if a.CompletedAt != nil {
			hour := a.CompletedAt.Hour()
			if hour >= morningStart && hour < morningEnd {
				s.Morning++
			}
			if hour >= eveningStart && hour < eveningEnd {
				s.Evening++
			}
		}
		if !a.HasSwapped {
			s.NoSwap++
		}
		if a.Feedback != nil && *a.Feedback == domain.FeedbackFire {
			s.Fire++
		}

		tmpl, ok := c.Lookup(a.TemplateID)
		if !ok {
			continue
		}
		for _, area := range tmpl.AreaTags {
			s.ByArea[area]++
		}
	}

	s.AreasTouched = len(s.ByArea)
	return s
}
