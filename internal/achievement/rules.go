package achievement

import "github.com/fardannozami/sparks/internal/domain"

// Rule decides one achievement. Progress is the raw counter behind the
// rule and is never clamped to the requirement.
type Rule struct {
	Unlocked func(Stats) bool
	Progress func(Stats) int
}

func threshold(n int, counter func(Stats) int) Rule {
	return Rule{
		Unlocked: func(s Stats) bool { return counter(s) >= n },
		Progress: counter,
	}
}

func streakRule(n int) Rule {
	return threshold(n, func(s Stats) int { return s.Streak })
}

func totalRule(n int) Rule {
	return threshold(n, func(s Stats) int { return s.Completed })
}

func areaRule(area domain.Area, n int) Rule {
	return threshold(n, func(s Stats) int { return s.ByArea[area] })
}

// placeholderRule unlocks on the completed count but has no counter of its
// own to report as progress.
func placeholderRule(n int) Rule {
	return Rule{
		Unlocked: func(s Stats) bool { return s.Completed >= n },
		Progress: func(Stats) int { return 0 },
	}
}

// DefaultRules covers every achievement in the built-in catalog.
func DefaultRules() map[string]Rule {
	return map[string]Rule{
		"streak_3":   streakRule(3),
		"streak_7":   streakRule(7),
		"streak_30":  streakRule(30),
		"streak_100": streakRule(100),

		"total_1":   totalRule(1),
		"total_10":  totalRule(10),
		"total_42":  totalRule(42),
		"total_100": totalRule(100),
		"total_365": totalRule(365),

		"morning_routine": threshold(7, func(s Stats) int { return s.Morning }),
		"night_owl":       threshold(7, func(s Stats) int { return s.Evening }),

		"health_master":    areaRule(domain.AreaHealth, 20),
		"creative_genius":  areaRule(domain.AreaCreativity, 20),
		"social_butterfly": areaRule(domain.AreaSocial, 20),
		"nature_lover":     areaRule(domain.AreaNature, 20),
		"focus_master":     areaRule(domain.AreaFocus, 20),

		"no_swap": threshold(10, func(s Stats) int { return s.NoSwap }),
		// TODO: track completion speed; this unlocks on five completions.
		"speed_demon":   placeholderRule(5),
		"all_areas":     threshold(8, func(s Stats) int { return s.AreasTouched }),
		"feedback_fire": threshold(10, func(s Stats) int { return s.Fire }),
	}
}
