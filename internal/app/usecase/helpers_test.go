package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fardannozami/sparks/internal/achievement"
	"github.com/fardannozami/sparks/internal/app/usecase"
	"github.com/fardannozami/sparks/internal/assign"
	"github.com/fardannozami/sparks/internal/calendar"
	"github.com/fardannozami/sparks/internal/catalog"
	"github.com/fardannozami/sparks/internal/domain"
)

// mockRepo implements domain.StateRepository in memory
type mockRepo struct {
	mu      sync.Mutex
	user    *domain.User
	history []domain.ChallengeAssignment
	current *domain.ChallengeAssignment
	timer   *domain.TimerState

	getErr  error
	saveErr error
	saves   map[string]int
	cleared bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{saves: make(map[string]int)}
}

func (m *mockRepo) GetUser(ctx context.Context) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.user == nil {
		return nil, nil
	}
	u := m.user.Clone()
	return &u, nil
}

func (m *mockRepo) SaveUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves["user"]++
	if m.saveErr != nil {
		return m.saveErr
	}
	u := user.Clone()
	m.user = &u
	return nil
}

func (m *mockRepo) GetAssignments(ctx context.Context) ([]domain.ChallengeAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ChallengeAssignment(nil), m.history...), nil
}

func (m *mockRepo) SaveAssignments(ctx context.Context, history []domain.ChallengeAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves["history"]++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.history = append([]domain.ChallengeAssignment(nil), history...)
	return nil
}

func (m *mockRepo) GetCurrentAssignment(ctx context.Context) (*domain.ChallengeAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, nil
	}
	c := *m.current
	return &c, nil
}

func (m *mockRepo) SaveCurrentAssignment(ctx context.Context, current *domain.ChallengeAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves["current"]++
	if m.saveErr != nil {
		return m.saveErr
	}
	if current == nil {
		m.current = nil
		return nil
	}
	c := *current
	m.current = &c
	return nil
}

func (m *mockRepo) GetTimerState(ctx context.Context) (*domain.TimerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer == nil {
		return nil, nil
	}
	ts := *m.timer
	return &ts, nil
}

func (m *mockRepo) SaveTimerState(ctx context.Context, state domain.TimerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves["timer"]++
	m.timer = &state
	return nil
}

func (m *mockRepo) ClearTimerState(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timer = nil
	return nil
}

func (m *mockRepo) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user, m.history, m.current, m.timer = nil, nil, nil, nil
	m.cleared = true
	return nil
}

func (m *mockRepo) saveCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[key]
}

func (m *mockRepo) timerState() *domain.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timer
}

// scheduled is one call recorded by mockScheduler
type scheduled struct {
	domain.Notification
	Repeating    bool
	Hour, Minute int
}

// mockScheduler implements domain.NotificationScheduler
type mockScheduler struct {
	mu        sync.Mutex
	denied    bool
	err       error
	items     []scheduled
	cancelled bool
}

func (m *mockScheduler) RequestPermission(ctx context.Context) (bool, error) {
	return !m.denied, nil
}

func (m *mockScheduler) ScheduleRepeating(ctx context.Context, n domain.Notification, hour, minute int, every time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	n.ID = fmt.Sprintf("notif_%d", len(m.items)+1)
	n.Every = every
	m.items = append(m.items, scheduled{Notification: n, Repeating: true, Hour: hour, Minute: minute})
	return n.ID, nil
}

func (m *mockScheduler) ScheduleOnce(ctx context.Context, n domain.Notification, at time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	n.ID = fmt.Sprintf("notif_%d", len(m.items)+1)
	n.FireAt = at
	m.items = append(m.items, scheduled{Notification: n})
	return n.ID, nil
}

func (m *mockScheduler) CancelByType(ctx context.Context, kind domain.NotificationKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	kept := m.items[:0]
	for _, it := range m.items {
		if it.Kind != kind {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

func (m *mockScheduler) CancelAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.cancelled = true
	return nil
}

func (m *mockScheduler) Pending(ctx context.Context) ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Notification, len(m.items))
	for i, it := range m.items {
		out[i] = it.Notification
	}
	return out, nil
}

func (m *mockScheduler) ofKind(kind domain.NotificationKind) []scheduled {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []scheduled
	for _, it := range m.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

// mockPrompter collects unsolicited messages
type mockPrompter struct {
	sent chan string
}

func newMockPrompter() *mockPrompter {
	return &mockPrompter{sent: make(chan string, 16)}
}

func (m *mockPrompter) Send(ctx context.Context, text string) error {
	m.sent <- text
	return nil
}

func (m *mockPrompter) wait(t *testing.T) string {
	t.Helper()
	select {
	case msg := <-m.sent:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for prompt")
		return ""
	}
}

// mockSink implements domain.TelemetrySink
type mockSink struct {
	mu     sync.Mutex
	events []domain.TelemetryEvent
}

func (m *mockSink) Record(ctx context.Context, e domain.TelemetryEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
}

func (m *mockSink) types() []domain.TelemetryType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.TelemetryType, len(m.events))
	for i, e := range m.events {
		out[i] = e.Type
	}
	return out
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("assignment_%d", s.n)
}

var errStorage = errors.New("disk full")

// monday0700 is 2024-01-15 07:00 UTC. "2024-01-15" + "health" prefers serious,
// so health users get hf001 (alt hf002) first.
var monday0700 = time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC)

type harness struct {
	repo     *mockRepo
	sched    *mockScheduler
	sink     *mockSink
	prompter *mockPrompter
	clock    *calendar.Fixed

	session   *usecase.Session
	reminders *usecase.Reminders
	timer     *usecase.ChallengeTimer
	flows     usecase.Flows
	handler   *usecase.HandleMessageUsecase
}

func newHarness(t *testing.T, now time.Time) *harness {
	t.Helper()
	return newHarnessWithRepo(t, now, newMockRepo())
}

func newHarnessWithRepo(t *testing.T, now time.Time, repo *mockRepo) *harness {
	t.Helper()
	h := &harness{
		repo:     repo,
		sched:    &mockScheduler{},
		sink:     &mockSink{},
		prompter: newMockPrompter(),
		clock:    calendar.NewFixed(now),
	}

	c := catalog.Default()
	engine, err := assign.NewEngine(c, h.clock, &seqIDs{})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	evaluator := achievement.NewDefaultEvaluator(c)

	h.session = usecase.NewSession(repo, h.sink, h.clock, nil)
	if err := h.session.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	h.reminders = usecase.NewReminders(h.sched, h.clock, nil)
	h.timer = usecase.NewChallengeTimer(h.session, c, h.prompter, time.Millisecond, nil)
	t.Cleanup(h.timer.Close)

	ensure := usecase.NewEnsureAssignmentUsecase(h.session, engine)
	h.flows = usecase.Flows{
		Onboard:      usecase.NewOnboardUsecase(h.session, h.reminders, ensure, nil),
		Settings:     usecase.NewUpdateSettingsUsecase(h.session, h.reminders, nil),
		Ensure:       ensure,
		Start:        usecase.NewStartUsecase(h.session, h.reminders, h.timer, nil),
		Breathe:      usecase.NewBreatheUsecase(h.session, h.timer),
		Timer:        usecase.NewBeginTimerUsecase(h.timer),
		Complete:     usecase.NewCompleteUsecase(h.session, engine, evaluator, h.reminders, h.timer, nil),
		Skip:         usecase.NewSkipUsecase(h.session, engine, h.timer),
		Swap:         usecase.NewSwapUsecase(h.session, engine, h.timer),
		Snooze:       usecase.NewSnoozeUsecase(h.session),
		Progress:     usecase.NewProgressUsecase(h.session, c),
		Achievements: usecase.NewAchievementsUsecase(h.session, evaluator),
		Share:        usecase.NewShareUsecase(h.session),
		Reset:        usecase.NewResetUsecase(h.session, h.reminders, h.timer, nil),
	}
	h.handler = usecase.NewHandleMessageUsecase(h.flows, h.session, c, nil)
	return h
}

func healthPrefs() usecase.Preferences {
	return usecase.Preferences{
		Areas:   []domain.Area{domain.AreaHealth},
		Cadence: domain.CadenceDaily,
		Window:  domain.Window8AM,
	}
}

// onboard completes onboarding for health/daily/8am.
func (h *harness) onboard(t *testing.T) domain.ChallengeAssignment {
	t.Helper()
	a, err := h.flows.Onboard.Execute(context.Background(), healthPrefs())
	if err != nil {
		t.Fatalf("Failed to onboard: %v", err)
	}
	return a
}
