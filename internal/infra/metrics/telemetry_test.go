package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/fardannozami/sparks/internal/domain"
	"github.com/fardannozami/sparks/internal/infra/metrics"
)

func gathered(t *testing.T, tel *metrics.Telemetry) map[string]float64 {
	t.Helper()
	families, err := tel.Registry().Gather()
	if err != nil {
		t.Fatalf("Failed to gather: %v", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "/" + lp.GetValue()
			}
			if c := m.GetCounter(); c != nil {
				out[key] = c.GetValue()
			}
			if g := m.GetGauge(); g != nil {
				out[key] = g.GetValue()
			}
		}
	}
	return out
}

func TestTelemetry_CountsByType(t *testing.T) {
	tel := metrics.NewTelemetry(nil)
	ctx := context.Background()
	now := time.Now()

	tel.Record(ctx, domain.TelemetryEvent{Type: domain.EventAssignmentAssigned, Timestamp: now})
	tel.Record(ctx, domain.TelemetryEvent{Type: domain.EventAssignmentAssigned, Timestamp: now})
	tel.Record(ctx, domain.TelemetryEvent{Type: domain.EventChallengeStarted, Timestamp: now})

	got := gathered(t, tel)
	if v := got["sparks_events_total/"+string(domain.EventAssignmentAssigned)]; v != 2 {
		t.Errorf("Expected 2 assigned events, got %v", v)
	}
	if v := got["sparks_events_total/"+string(domain.EventChallengeStarted)]; v != 1 {
		t.Errorf("Expected 1 started event, got %v", v)
	}
}

func TestTelemetry_StreakGauge(t *testing.T) {
	tel := metrics.NewTelemetry(nil)
	ctx := context.Background()

	tel.Record(ctx, domain.TelemetryEvent{
		Type:     domain.EventChallengeCompleted,
		Metadata: map[string]string{"streak": "4"},
	})
	tel.Record(ctx, domain.TelemetryEvent{
		Type:     domain.EventFeedbackSubmitted,
		Metadata: map[string]string{"streak": "not-a-number"},
	})

	if v := gathered(t, tel)["sparks_current_streak"]; v != 4 {
		t.Errorf("Expected streak gauge 4, got %v", v)
	}
}
