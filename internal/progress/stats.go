// Package progress summarises history for the progress view.
package progress

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/domain"
)

// MinutesPerChallenge is the flat estimate used for time invested.
const MinutesPerChallenge = 20

const topMomentsLimit = 5

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type HeatmapDay struct {
	Date  string
	Count int
}

type Stats struct {
	TotalCompleted int
	FireCount      int
	GoodCount      int
	// SuccessRate is the rounded share of fire and good ratings, 0 to 100.
	SuccessRate   int
	TotalMinutes  int
	TotalHours    int
	BestWeekday   string
	Heatmap       []HeatmapDay
	ByArea        map[domain.Area]int
	CurrentStreak int
	LongestStreak int
	TopMoments    []domain.ChallengeAssignment
}

// Compute expects history newest-first, the order it is stored in.
func Compute(user domain.User, history []domain.ChallengeAssignment, c *catalog.Catalog, now time.Time) Stats {
	s := Stats{
		BestWeekday:   "N/A",
		ByArea:        make(map[domain.Area]int),
		CurrentStreak: user.Streak,
	}

	var weekdays [7]int
	days := make(map[string]int)

	for _, a := range history {
		if a.Status != domain.StatusCompleted {
			continue
		}
		s.TotalCompleted++

		if a.Feedback != nil {
			switch *a.Feedback {
			case domain.FeedbackFire:
				s.FireCount++
				if len(s.TopMoments) < topMomentsLimit {
					s.TopMoments = append(s.TopMoments, a)
				}
			case domain.FeedbackGood:
				s.GoodCount++
			}
		}

		day := now
		if a.CompletedAt != nil {
			day = a.CompletedAt.In(now.Location())
			weekdays[day.Weekday()]++
		}
		days[calendar.DateKey(day)]++

		if tmpl, ok := c.Lookup(a.TemplateID); ok {
			for _, area := range tmpl.AreaTags {
				s.ByArea[area]++
			}
		}
	}

	if s.TotalCompleted > 0 {
		s.SuccessRate = int(math.Round(float64(s.FireCount+s.GoodCount) / float64(s.TotalCompleted) * 100))
	}
	s.TotalMinutes = s.TotalCompleted * MinutesPerChallenge
	s.TotalHours = s.TotalMinutes / 60

	best, bestCount := -1, 0
	for d, n := range weekdays {
		if n > bestCount {
			best, bestCount = d, n
		}
	}
	if best >= 0 {
		s.BestWeekday = weekdayNames[best]
	}

	s.Heatmap = make([]HeatmapDay, 0, len(days))
	for date, n := range days {
		s.Heatmap = append(s.Heatmap, HeatmapDay{Date: date, Count: n})
	}
	sort.Slice(s.Heatmap, func(i, j int) bool { return s.Heatmap[i].Date < s.Heatmap[j].Date })

	s.LongestStreak = longestRun(s.Heatmap, now.Location())
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	return s
}

// longestRun finds the longest stretch of consecutive calendar days in a
// date-sorted heatmap.
func longestRun(days []HeatmapDay, loc *time.Location) int {
	longest, run := 0, 0
	var prev time.Time
	for i, d := range days {
		t, err := calendar.ParseDateKey(d.Date, loc)
		if err != nil {
			continue
		}
		if i > 0 && calendar.DaysBetween(prev, t) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = t
	}
	return longest
}

// ShareMessage is the text offered when the owner shares their progress.
func ShareMessage(user domain.User, history []domain.ChallengeAssignment) string {
	completed := 0
	for _, a := range history {
		if a.Status == domain.StatusCompleted {
			completed++
		}
	}

	areas := make([]string, len(user.Areas))
	for i, a := range user.Areas {
		areas[i] = string(a)
	}

	return fmt.Sprintf("🔥 I'm on a %d-day streak with Sparks!\n\n✨ %d challenges completed\n💪 Growing in: %s\n\nJoin me in activating your life, one spark at a time! ⚡️",
		user.Streak, completed, strings.Join(areas, ", "))
}
