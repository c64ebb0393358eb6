package navigation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"testing"
	"time"

	"Nadi/internal/adapters/security"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// manualTimer is a deferred task that only runs when the test says so.
type manualTimer struct {
	d       time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

// manualScheduler collects timers instead of running them.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (m *manualScheduler) AfterFunc(d time.Duration, fn func()) ports.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{d: d, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Fire runs every timer that is neither stopped nor already run.
func (m *manualScheduler) Fire() int {
	return m.run(func(t *manualTimer) bool { return !t.stopped })
}

// FireStopped runs timers even if they were stopped, like a time.AfterFunc
// whose goroutine had already started when Stop was called.
func (m *manualScheduler) FireStopped() int {
	return m.run(func(*manualTimer) bool { return true })
}

func (m *manualScheduler) run(due func(*manualTimer) bool) int {
	m.mu.Lock()
	var ready []*manualTimer
	for _, t := range m.timers {
		if !t.fired && due(t) {
			t.fired = true
			ready = append(ready, t)
		}
	}
	m.mu.Unlock()

	for _, t := range ready {
		t.fn()
	}
	return len(ready)
}

// Pending returns the delays of timers still waiting to run.
func (m *manualScheduler) Pending() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []time.Duration
	for _, t := range m.timers {
		if !t.fired && !t.stopped {
			out = append(out, t.d)
		}
	}
	return out
}

// recordingBus keeps every published event.
type recordingBus struct {
	mu     sync.Mutex
	events []ports.Event
}

func (b *recordingBus) Publish(_ context.Context, topic string, data any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ports.Event{Topic: topic, Data: data})
	return nil
}

func (b *recordingBus) Subscribe(string, ports.EventHandler) {}

func (b *recordingBus) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for _, e := range b.events {
		out = append(out, e.Topic)
	}
	return out
}

func (b *recordingBus) Last(topic string) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.events) - 1; i >= 0; i-- {
		if b.events[i].Topic == topic {
			return b.events[i].Data, true
		}
	}
	return nil, false
}

type fixture struct {
	session *Session
	sched   *manualScheduler
	bus     *recordingBus
}

var testNow = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, tweak ...func(*Options)) *fixture {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	nopLogger := zerolog.Nop()
	sec, err := security.NewAESSealer(hex.EncodeToString(key), &nopLogger)
	require.NoError(t, err)

	sched := &manualScheduler{}
	bus := &recordingBus{}
	opts := Options{
		Delays:    DefaultDelays(),
		Scheduler: sched,
		Bus:       bus,
		Security:  sec,
		Now:       func() time.Time { return testNow },
	}
	for _, fn := range tweak {
		fn(&opts)
	}

	return &fixture{
		session: NewSession(42, opts, &nopLogger),
		sched:   sched,
		bus:     bus,
	}
}

// toLogin passes the splash screen and picks English.
func (f *fixture) toLogin(t *testing.T) {
	t.Helper()
	require.Equal(t, 1, f.sched.Fire())
	require.NoError(t, f.session.SelectLanguage(domain.LanguageEnglish))
}

// toDashboard runs the whole login with the ID step skipped.
func (f *fixture) toDashboard(t *testing.T) {
	t.Helper()
	f.toLogin(t)

	_, err := f.session.InputPhone("9876543210")
	require.NoError(t, err)
	require.NoError(t, f.session.SubmitPhone())
	require.Equal(t, 1, f.sched.Fire())

	_, err = f.session.InputOTP("1234")
	require.NoError(t, err)
	require.NoError(t, f.session.SubmitOTP())
	require.Equal(t, 1, f.sched.Fire())

	require.NoError(t, f.session.SkipAadhaar())
	require.Equal(t, domain.ScreenDashboard, f.session.Screen())
}

func (f *fixture) login(t *testing.T) domain.LoginScreen {
	t.Helper()
	l, ok := f.session.View().Screen.(domain.LoginScreen)
	require.True(t, ok, "expected a login screen, got %T", f.session.View().Screen)
	return l
}

func (f *fixture) submit(t *testing.T) domain.SubmitScreen {
	t.Helper()
	s, ok := f.session.View().Screen.(domain.SubmitScreen)
	require.True(t, ok, "expected a submit screen, got %T", f.session.View().Screen)
	return s
}
