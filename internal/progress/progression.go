package progress

import (
	"time"

	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/domain"
)

// breathingAfter is the number of completions after which the breathing
// intro is offered.
const breathingAfter = 2

func CompletedCount(history []domain.ChallengeAssignment) int {
	n := 0
	for _, a := range history {
		if a.Status == domain.StatusCompleted {
			n++
		}
	}
	return n
}

// StepNumber is the 1-based position of the next challenge in the journey.
func StepNumber(history []domain.ChallengeAssignment) int {
	return CompletedCount(history) + 1
}

// DaysSinceStart is 1 on the day the user was created.
func DaysSinceStart(createdAt, now time.Time) int {
	return calendar.DaysBetween(createdAt.In(now.Location()), now) + 1
}

func ShouldShowBreathing(history []domain.ChallengeAssignment) bool {
	return CompletedCount(history) >= breathingAfter
}
