package timer

import (
	"context"
	"fmt"

	"github.com/fardannozami/sparks/internal/domain"
)

type Phase string

const (
	PhaseInhale Phase = "inhale"
	PhaseHold   Phase = "hold"
	PhaseExhale Phase = "exhale"
)

// PhaseSeconds is the length of each breathing phase.
const PhaseSeconds = 4

var phaseCycle = [...]Phase{PhaseInhale, PhaseHold, PhaseExhale}

const (
	MinBreathingMinutes = 1
	MaxBreathingMinutes = 5
)

func ValidBreathingMinutes(m int) bool {
	return m >= MinBreathingMinutes && m <= MaxBreathingMinutes
}

// PhaseAt is the phase in effect after elapsed seconds.
func PhaseAt(elapsed int) Phase {
	if elapsed < 0 {
		elapsed = 0
	}
	return phaseCycle[(elapsed/PhaseSeconds)%len(phaseCycle)]
}

// Breathing runs a guided breathing session on a Countdown.
type Breathing struct {
	countdown *Countdown
}

func NewBreathing(c *Countdown) *Breathing {
	return &Breathing{countdown: c}
}

// Start begins a session of minutes length. onPhase fires whenever the
// phase changes, including once at the start.
func (b *Breathing) Start(ctx context.Context, minutes int, onPhase func(Phase, int), onDone func()) error {
	if !ValidBreathingMinutes(minutes) {
		return fmt.Errorf("%w: breathing duration must be %d-%d minutes, got %d",
			domain.ErrInvalidInput, MinBreathingMinutes, MaxBreathingMinutes, minutes)
	}

	total := minutes * 60
	current := PhaseAt(0)
	if onPhase != nil {
		onPhase(current, total)
	}

	b.countdown.Start(ctx, total, func(remaining int) {
		p := PhaseAt(total - remaining)
		if p != current && remaining > 0 {
			current = p
			if onPhase != nil {
				onPhase(p, remaining)
			}
		}
	}, onDone)
	return nil
}

func (b *Breathing) Stop() {
	b.countdown.Stop()
}
