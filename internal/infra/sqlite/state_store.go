package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fardannozami/sparks/internal/domain"
)

const (
	KeyUser        = "@sparks_user"
	KeyAssignments = "@sparks_assignments"
	KeyCurrent     = "@sparks_current"
	KeyTimerState  = "@sparks_timer_state"
)

var allKeys = []string{KeyUser, KeyAssignments, KeyCurrent, KeyTimerState}

// StateStore implements domain.StateRepository on top of a KVStore. Times
// read back are placed in loc so calendar math matches the owner's zone.
type StateStore struct {
	kv  *KVStore
	loc *time.Location
}

func NewStateStore(kv *KVStore, loc *time.Location) *StateStore {
	if loc == nil {
		loc = time.Local
	}
	return &StateStore{kv: kv, loc: loc}
}

func (s *StateStore) getJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *StateStore) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, raw)
}

func (s *StateStore) GetUser(ctx context.Context) (*domain.User, error) {
	var rec userRecord
	ok, err := s.getJSON(ctx, KeyUser, &rec)
	if err != nil || !ok {
		return nil, err
	}
	u := rec.toUser(s.loc)
	return &u, nil
}

func (s *StateStore) SaveUser(ctx context.Context, user domain.User) error {
	return s.setJSON(ctx, KeyUser, toUserRecord(user))
}

func (s *StateStore) GetAssignments(ctx context.Context) ([]domain.ChallengeAssignment, error) {
	var recs []assignmentRecord
	ok, err := s.getJSON(ctx, KeyAssignments, &recs)
	if err != nil || !ok {
		return nil, err
	}
	out := make([]domain.ChallengeAssignment, len(recs))
	for i, r := range recs {
		out[i] = r.toAssignment(s.loc)
	}
	return out, nil
}

func (s *StateStore) SaveAssignments(ctx context.Context, history []domain.ChallengeAssignment) error {
	recs := make([]assignmentRecord, len(history))
	for i, a := range history {
		recs[i] = toAssignmentRecord(a)
	}
	return s.setJSON(ctx, KeyAssignments, recs)
}

func (s *StateStore) GetCurrentAssignment(ctx context.Context) (*domain.ChallengeAssignment, error) {
	var rec *assignmentRecord
	ok, err := s.getJSON(ctx, KeyCurrent, &rec)
	if err != nil || !ok || rec == nil {
		return nil, err
	}
	a := rec.toAssignment(s.loc)
	return &a, nil
}

func (s *StateStore) SaveCurrentAssignment(ctx context.Context, current *domain.ChallengeAssignment) error {
	if current == nil {
		return s.kv.Delete(ctx, KeyCurrent)
	}
	return s.setJSON(ctx, KeyCurrent, toAssignmentRecord(*current))
}

func (s *StateStore) GetTimerState(ctx context.Context) (*domain.TimerState, error) {
	var rec timerStateRecord
	ok, err := s.getJSON(ctx, KeyTimerState, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &domain.TimerState{StartTime: fromMillis(rec.StartTime, s.loc), TotalSeconds: rec.TotalSeconds}, nil
}

func (s *StateStore) SaveTimerState(ctx context.Context, state domain.TimerState) error {
	return s.setJSON(ctx, KeyTimerState, timerStateRecord{StartTime: millis(state.StartTime), TotalSeconds: state.TotalSeconds})
}

func (s *StateStore) ClearTimerState(ctx context.Context) error {
	return s.kv.Delete(ctx, KeyTimerState)
}

func (s *StateStore) ClearAll(ctx context.Context) error {
	return s.kv.Delete(ctx, allKeys...)
}
