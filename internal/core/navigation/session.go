// Package navigation holds the per-chat session state machine: which screen
// the citizen is on, who is signed in, and the grievance collection they see.
// The presentation layer reads View snapshots and calls the action methods;
// it never touches session fields directly.
package navigation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"Nadi/internal/core/domain"
	"Nadi/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Delays are the fixed durations of the simulated asynchronous steps.
type Delays struct {
	Splash  time.Duration
	Phone   time.Duration
	OTP     time.Duration
	Aadhaar time.Duration
	Locate  time.Duration
}

// DefaultDelays returns the prototype's timings.
func DefaultDelays() Delays {
	return Delays{
		Splash:  3500 * time.Millisecond,
		Phone:   time.Second,
		OTP:     time.Second,
		Aadhaar: 1500 * time.Millisecond,
		Locate:  1500 * time.Millisecond,
	}
}

// DefaultDetectedLocation is what the simulated location lookup returns.
const DefaultDetectedLocation = "Dispur, Guwahati"

// Options are the collaborators and settings shared by all sessions.
type Options struct {
	Delays           Delays
	DetectedLocation string
	Scheduler        ports.Scheduler
	Bus              ports.EventBus     // optional
	Security         ports.SecurityPort // seals the Aadhaar number
	Now              func() time.Time
	RandIntN         func(n int) int
}

func (o Options) withDefaults() Options {
	if o.DetectedLocation == "" {
		o.DetectedLocation = DefaultDetectedLocation
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.RandIntN == nil {
		o.RandIntN = rand.IntN
	}
	return o
}

// Session is one chat's navigation state.
// All methods are safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	id     uuid.UUID
	chatID int64
	opts   Options
	log    zerolog.Logger

	screen     domain.Screen
	user       *domain.User
	language   domain.Language
	activeTab  domain.Tab
	grievances []*domain.Grievance

	// epoch invalidates deferred completions scheduled before a transition.
	epoch   uint64
	pending ports.Timer
}

// NewSession creates a session on the splash screen and schedules the
// automatic move to language selection.
func NewSession(chatID int64, opts Options, baseLogger *zerolog.Logger) *Session {
	id := uuid.New()
	s := &Session{
		id:     id,
		chatID: chatID,
		opts:   opts.withDefaults(),
		log: baseLogger.With().
			Str("component", "session").
			Str("session_id", id.String()).
			Int64("chat_id", chatID).
			Logger(),
		screen:     domain.SplashScreen{},
		language:   domain.LanguageEnglish,
		activeTab:  domain.TabHome,
		grievances: domain.SeedGrievances(),
	}

	s.mu.Lock()
	s.scheduleLocked(s.opts.Delays.Splash, func() bool {
		if _, ok := s.screen.(domain.SplashScreen); !ok {
			return false
		}
		s.screen = domain.LanguageScreen{}
		return true
	})
	s.mu.Unlock()

	s.log.Info().Msg("Session started")
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// ChatID returns the chat the session belongs to.
func (s *Session) ChatID() int64 { return s.chatID }

// View returns a snapshot of the session for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		SessionID:  s.id,
		ChatID:     s.chatID,
		Screen:     s.screen,
		Language:   s.language,
		ActiveTab:  s.activeTab,
		Grievances: slices.Clone(s.grievances),
	}
	if s.user != nil {
		u := *s.user
		v.User = &u
	}
	if _, ok := s.screen.(domain.ProfileScreen); ok {
		if masked, linked, err := s.maskedAadhaarLocked(); err == nil && linked {
			v.MaskedAadhaar = masked
		}
	}
	return v
}

// Screen returns the kind of the current screen.
func (s *Session) Screen() domain.ScreenKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Kind()
}

// SelectLanguage sets the UI language and opens the phone step.
func (s *Session) SelectLanguage(lang domain.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.screen.(domain.LanguageScreen); !ok {
		return s.invalid("select language")
	}
	if !slices.Contains(domain.Languages(), lang) {
		return fmt.Errorf("select language %q: %w", lang, domain.ErrUnknownLanguage)
	}

	s.language = lang
	s.transitionLocked(domain.LoginScreen{Step: domain.LoginStepPhone})
	s.log.Info().Str("language", lang.Code()).Msg("Language selected")
	return nil
}

// ChangeTab handles the bottom navigation. "submit" opens the submission
// overlay without changing the active tab.
func (s *Session) ChangeTab(tab domain.Tab) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireMainScreenLocked("change tab"); err != nil {
		return err
	}

	switch tab {
	case domain.TabSubmit:
		s.transitionLocked(domain.SubmitScreen{Step: 1, Focus: domain.FieldDescription})
	case domain.TabHome:
		s.activeTab = tab
		s.transitionLocked(domain.DashboardScreen{})
	case domain.TabProfile:
		s.activeTab = tab
		s.transitionLocked(domain.ProfileScreen{})
	default:
		return fmt.Errorf("change tab %q: %w", tab, ErrInvalidTransition)
	}
	return nil
}

// ViewAll opens the full grievance list from the dashboard.
func (s *Session) ViewAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.screen.(domain.DashboardScreen); !ok {
		return s.invalid("view all")
	}
	s.transitionLocked(domain.AllGrievancesScreen{})
	return nil
}

// OpenGrievance shows one grievance from the dashboard or the full list.
func (s *Session) OpenGrievance(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.screen.Kind()
	if from != domain.ScreenDashboard && from != domain.ScreenAllGrievances {
		return s.invalid("open grievance")
	}

	g := s.findLocked(id)
	if g == nil {
		return fmt.Errorf("open grievance %s: %w", id, ErrGrievanceNotFound)
	}
	s.transitionLocked(domain.GrievanceDetailScreen{Grievance: g, ReturnTo: from})
	return nil
}

// ToggleFilter applies a status button on the dashboard.
func (s *Session) ToggleFilter(status domain.GrievanceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dash, ok := s.screen.(domain.DashboardScreen)
	if !ok {
		return s.invalid("toggle filter")
	}
	if !slices.Contains(domain.Statuses(), status) {
		return fmt.Errorf("toggle filter %q: %w", status, ErrInvalidTransition)
	}
	dash.Filter = dash.Filter.Toggle(status)
	s.screen = dash
	return nil
}

// Back handles the back arrow on whichever screen is showing.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch scr := s.screen.(type) {
	case domain.LoginScreen:
		return s.loginBackLocked(scr)
	case domain.SubmitScreen:
		return s.submitBackLocked(scr)
	case domain.GrievanceDetailScreen:
		if scr.ReturnTo == domain.ScreenAllGrievances {
			s.transitionLocked(domain.AllGrievancesScreen{})
		} else {
			s.transitionLocked(domain.DashboardScreen{})
		}
		return nil
	case domain.AllGrievancesScreen:
		s.transitionLocked(domain.DashboardScreen{})
		return nil
	case domain.ProfileScreen:
		s.activeTab = domain.TabHome
		s.transitionLocked(domain.DashboardScreen{})
		return nil
	default:
		return s.invalid("back")
	}
}

// Logout clears the user, restores the seed collection and returns to
// language selection. Any in-flight simulated step is discarded.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return fmt.Errorf("logout: %w", ErrNotAuthenticated)
	}
	s.user = nil
	s.activeTab = domain.TabHome
	s.grievances = domain.SeedGrievances()
	s.transitionLocked(domain.LanguageScreen{})
	s.mu.Unlock()

	s.log.Info().Msg("User logged out; session reset")
	s.publish(ctx, domain.TopicLoggedOut, domain.LoggedOutEvent{SessionID: s.id, ChatID: s.chatID})
	return nil
}

// Close drops any pending deferred task. Used at shutdown.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked()
}

// --- internal helpers ---

// transitionLocked moves to next. Leaving a screen invalidates any
// completion still scheduled for it.
func (s *Session) transitionLocked(next domain.Screen) {
	from := s.screen.Kind()
	s.invalidateLocked()
	s.screen = next
	s.log.Debug().Str("from", string(from)).Str("to", string(next.Kind())).Msg("Screen transition")
}

func (s *Session) invalidateLocked() {
	s.epoch++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// scheduleLocked runs complete after d unless the session moved on first.
// complete runs under the session lock and reports whether the screen changed.
func (s *Session) scheduleLocked(d time.Duration, complete func() bool) {
	s.invalidateLocked()
	epoch := s.epoch

	s.pending = s.opts.Scheduler.AfterFunc(d, func() {
		s.mu.Lock()
		if s.epoch != epoch {
			s.mu.Unlock()
			s.log.Debug().Msg("Dropped stale deferred completion")
			return
		}
		s.pending = nil
		changed := complete()
		kind := s.screen.Kind()
		s.mu.Unlock()

		if changed {
			s.publish(context.Background(), domain.TopicScreenChanged, domain.ScreenChangedEvent{
				SessionID: s.id,
				ChatID:    s.chatID,
				Screen:    kind,
			})
		}
	})
}

func (s *Session) publish(ctx context.Context, topic string, data any) {
	if s.opts.Bus == nil {
		return
	}
	if err := s.opts.Bus.Publish(ctx, topic, data); err != nil {
		s.log.Error().Err(err).Str("topic", topic).Msg("Failed to publish session event")
	}
}

func (s *Session) requireMainScreenLocked(action string) error {
	if s.user == nil {
		return fmt.Errorf("%s: %w", action, ErrNotAuthenticated)
	}
	switch s.screen.(type) {
	case domain.DashboardScreen, domain.AllGrievancesScreen, domain.GrievanceDetailScreen, domain.ProfileScreen:
		return nil
	default:
		return s.invalid(action)
	}
}

func (s *Session) findLocked(id string) *domain.Grievance {
	for _, g := range s.grievances {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (s *Session) invalid(action string) error {
	return fmt.Errorf("%s on %s: %w", action, s.screen.Kind(), ErrInvalidTransition)
}
