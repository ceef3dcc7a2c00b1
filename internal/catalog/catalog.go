// Package catalog holds the built-in challenge templates and achievement
// definitions.
package catalog

import "github.com/fardannozami/sparks/internal/domain"

type Catalog struct {
	templates []domain.ChallengeTemplate
	byID      map[string]int
}

// New indexes templates by id. Later duplicates of an id are ignored so
// lookups always resolve to the first definition.
func New(templates []domain.ChallengeTemplate) *Catalog {
	c := &Catalog{
		templates: make([]domain.ChallengeTemplate, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
	}
	for _, t := range templates {
		if _, dup := c.byID[t.ID]; dup {
			continue
		}
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c
}

// Default is the catalog shipped with the binary.
func Default() *Catalog {
	return New(builtinTemplates)
}

func (c *Catalog) Templates() []domain.ChallengeTemplate {
	return append([]domain.ChallengeTemplate(nil), c.templates...)
}

func (c *Catalog) Len() int {
	return len(c.templates)
}

func (c *Catalog) Lookup(id string) (domain.ChallengeTemplate, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.ChallengeTemplate{}, false
	}
	return c.templates[i], true
}

// Eligible returns the templates sharing at least one tag with areas, in
// catalog order.
func (c *Catalog) Eligible(areas []domain.Area) []domain.ChallengeTemplate {
	var out []domain.ChallengeTemplate
	for _, t := range c.templates {
		for _, a := range areas {
			if t.HasArea(a) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// Counts tallies templates per primary area, the first tag of each template.
func (c *Catalog) Counts() map[domain.Area]int {
	counts := make(map[domain.Area]int)
	for _, t := range c.templates {
		if len(t.AreaTags) > 0 {
			counts[t.AreaTags[0]]++
		}
	}
	return counts
}
