package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fardannozami/sparks/internal/achievement"
	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/domain"
	"github.com/fardannozami/sparks/internal/progress"
	"github.com/fardannozami/sparks/internal/timer"
)

const helpText = `⚡ *Sparks*: one small challenge at a time

#onboard <area> <cadence> <window|HH:MM> [social]
#settings [area|cadence|window|time|social|breathing|premium <value>]
#spark: show today's challenge
#start: begin it
#breathe <1-5|skip|never>: breathing before the timer
#timer: start or check the timer
#done <fire|good|meh|bad> [again]: finish and rate it
#skip · #swap · #snooze
#progress · #achievements · #share
#reset: erase everything

Areas: health, creativity, social, nature, focus, money, romance, selflove
Cadence: daily, every2days, every3days, weekly
Windows: 6am 7am 8am 9am 12pm 1pm 5pm 6pm 7pm 8pm`

const (
	onboardingPrompt = "👋 Complete onboarding to get started!\n#onboard <area> <cadence> <window|HH:MM>\nExample: #onboard health daily 8am"
	noTemplatesReply = "🤔 No challenges match your areas yet. Pick an area with #settings area health"
	noActiveReply    = "No active spark right now. Reply #spark to get one."
	swapReply        = "You can only swap once per challenge, and only when it has an alternative."
	premiumReply     = "🔒 Swapping is a premium feature."
	resetReply       = "🧹 Everything has been reset. Reply #onboard to start again."
)

func formatAssignment(a domain.ChallengeAssignment, tmpl domain.ChallengeTemplate, ok bool, now time.Time) string {
	var b strings.Builder

	if !ok {
		fmt.Fprintf(&b, "⚡ *Your Spark* (%s)\nThis challenge is no longer available. Reply #skip for a new one.", a.TemplateID)
		return b.String()
	}

	header := "Your Spark"
	if a.Status == domain.StatusStarted {
		header = "In progress"
	}
	fmt.Fprintf(&b, "⚡ *%s*: %s\n%s\n", header, tmpl.Title, tmpl.Short)

	if len(tmpl.Steps) > 0 {
		b.WriteString("\n")
		for i, step := range tmpl.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	fmt.Fprintf(&b, "\n⏱️ %s · due %s", calendar.FormatDuration(timer.ChallengeSeconds(tmpl)), formatDue(a.DueAt, now))
	if a.HasSnoozed {
		b.WriteString(" (snoozed)")
	}
	b.WriteString("\n")

	switch a.Status {
	case domain.StatusAssigned:
		b.WriteString("Reply #start to begin")
		if a.AltTemplateID != nil && !a.HasSwapped {
			b.WriteString(", #swap for an alternative")
		}
		b.WriteString(" or #snooze.")
	case domain.StatusStarted:
		b.WriteString("Reply #timer to check the clock or #done when you finish.")
	}
	return b.String()
}

func formatDue(due, now time.Time) string {
	due = due.In(now.Location())
	switch calendar.DaysBetween(now, due) {
	case 0:
		return "today " + due.Format("15:04")
	case 1:
		return "tomorrow " + due.Format("15:04")
	}
	return due.Format("Mon 2 Jan 15:04")
}

func formatStart(res StartResult) string {
	if !res.Breathing {
		return fmt.Sprintf("⏱️ Go! Your %s timer is running. Reply #done when you finish.", calendar.FormatDuration(res.TimerSeconds))
	}
	if res.FirstTime {
		return "🌬️ Before you start, a short breathing exercise helps you arrive: inhale 4s, hold 4s, exhale 4s.\nReply #breathe 1 to #breathe 5 for minutes, #breathe skip, or #breathe never."
	}
	return "🌬️ Breathe first? Reply #breathe <1-5>, #breathe skip or #breathe never."
}

func formatComplete(res CompleteResult, labelOf func(string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Done! Streak: %d day", res.Streak)
	if res.Streak != 1 {
		b.WriteString("s")
	}
	b.WriteString(" 🔥")

	if len(res.Unlocked) > 0 {
		titles := make([]string, len(res.Unlocked))
		for i, a := range res.Unlocked {
			titles[i] = a.Icon + " " + a.Title
		}
		fmt.Fprintf(&b, "\n\n🎉 Achievement unlocked: %s", strings.Join(titles, ", "))
	}

	if res.Next != nil {
		fmt.Fprintf(&b, "\n\nNext up: %s. Reply #spark for details.", labelOf(res.Next.TemplateID))
	}
	return b.String()
}

func formatProgress(s progress.Stats) string {
	var b strings.Builder
	b.WriteString("📊 *Your progress*\n")
	fmt.Fprintf(&b, "🔥 Streak: %d (best %d)\n", s.CurrentStreak, s.LongestStreak)
	fmt.Fprintf(&b, "✨ Completed: %d\n", s.TotalCompleted)
	fmt.Fprintf(&b, "💯 Success rate: %d%%\n", s.SuccessRate)
	fmt.Fprintf(&b, "⏳ Time invested: %dh %dm\n", s.TotalHours, s.TotalMinutes%60)
	fmt.Fprintf(&b, "📅 Best day: %s", s.BestWeekday)

	if len(s.ByArea) > 0 {
		areas := make([]domain.Area, 0, len(s.ByArea))
		for a := range s.ByArea {
			areas = append(areas, a)
		}
		sort.Slice(areas, func(i, j int) bool {
			if s.ByArea[areas[i]] == s.ByArea[areas[j]] {
				return areas[i] < areas[j]
			}
			return s.ByArea[areas[i]] > s.ByArea[areas[j]]
		})
		b.WriteString("\n\n*By area*")
		for _, a := range areas {
			fmt.Fprintf(&b, "\n%s: %d", a, s.ByArea[a])
		}
	}

	if n := len(s.Heatmap); n > 0 {
		from := n - 7
		if from < 0 {
			from = 0
		}
		b.WriteString("\n\n*Recent days*")
		for _, d := range s.Heatmap[from:] {
			fmt.Fprintf(&b, "\n%s %s", d.Date, strings.Repeat("🟩", d.Count))
		}
	}
	return b.String()
}

func formatBoard(board []achievement.Status) string {
	var b strings.Builder
	unlocked := 0
	for _, st := range board {
		if st.Unlocked {
			unlocked++
		}
	}
	fmt.Fprintf(&b, "🏅 *Achievements* %d/%d\n", unlocked, len(board))
	for _, st := range board {
		if st.Unlocked {
			fmt.Fprintf(&b, "\n%s %s: %s", st.Icon, st.Title, st.Description)
			continue
		}
		fmt.Fprintf(&b, "\n🔒 %s: %s (%d%%)", st.Title, st.Description, st.Percent)
	}
	return b.String()
}

func formatSettings(s Settings) string {
	areas := make([]string, len(s.Areas))
	for i, a := range s.Areas {
		areas[i] = string(a)
	}
	t := s.reminderTime()
	return fmt.Sprintf("⚙️ *Settings*\narea: %s\ncadence: %s\nwindow: %s\ntime: %02d:%02d\nsocial: %s\nbreathing: %s\npremium: %s",
		strings.Join(areas, ","), s.Cadence, s.Window, t.Hour, t.Minute, onOff(s.SocialOptIn), s.Breathing, onOff(s.Premium))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
