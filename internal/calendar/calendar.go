// Package calendar holds the date arithmetic shared by assignment,
// scheduling and statistics. Every function works in the location carried
// by its time argument, so callers decide the time zone once via the Clock.
package calendar

import (
	"fmt"
	"sort"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/fardannozami/sparks/internal/domain"
)

const dateLayout = "2006-01-02"

// DailySeed hashes the date key and the sorted, concatenated areas. The
// hash runs over UTF-16 code units with 32-bit wraparound and the result is
// the absolute value, so the same (date, area set) always yields the same
// seed whatever the input order.
func DailySeed(date string, areas []domain.Area) int64 {
	sorted := make([]string, len(areas))
	for i, a := range areas {
		sorted[i] = string(a)
	}
	sort.Strings(sorted)

	str := date
	for _, a := range sorted {
		str += a
	}

	var hash int32
	for _, c := range utf16.Encode([]rune(str)) {
		hash = hash*31 + int32(c)
	}

	seed := int64(hash)
	if seed < 0 {
		seed = -seed
	}
	return seed
}

func HourForWindow(window domain.NotifWindow) (int, error) {
	hour, ok := window.Hour()
	if !ok {
		return 0, fmt.Errorf("%w: unknown notification window %q", domain.ErrInvalidInput, window)
	}
	return hour, nil
}

func TodayAtHour(now time.Time, hour int) time.Time {
	return AtClock(now, hour, 0)
}

func TomorrowAtHour(now time.Time, hour int) time.Time {
	return AtClock(now.AddDate(0, 0, 1), hour, 0)
}

// AtClock returns the given wall-clock time on now's calendar day. Values
// past 23:59 roll over into the next day.
func AtClock(now time.Time, hour, minute int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, key, loc)
}

// DaysBetween counts calendar days from a to b, ignoring the time of day.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 12, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 12, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// IntervalDays is how many days one cadence cycle spans.
func IntervalDays(c domain.Cadence) int {
	switch c {
	case domain.CadenceEvery2Days:
		return 2
	case domain.CadenceEvery3Days:
		return 3
	case domain.CadenceWeekly:
		return 7
	default:
		return 1
	}
}

type systemClock struct {
	loc *time.Location
}

// System is the wall clock in loc.
func System(loc *time.Location) domain.Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a manually advanced clock for tests and replays.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	f.now = now
	f.mu.Unlock()
}

func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
