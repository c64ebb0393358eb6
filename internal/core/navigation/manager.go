package navigation

import (
	"sync"

	"github.com/rs/zerolog"
)

// Manager owns one Session per chat.
type Manager struct {
	mu         sync.Mutex
	sessions   map[int64]*Session
	opts       Options
	baseLogger *zerolog.Logger
	log        zerolog.Logger
}

// NewManager creates an empty session manager.
func NewManager(opts Options, baseLogger *zerolog.Logger) *Manager {
	return &Manager{
		sessions:   make(map[int64]*Session),
		opts:       opts,
		baseLogger: baseLogger,
		log:        baseLogger.With().Str("component", "session_manager").Logger(),
	}
}

// Get returns the chat's session, if it has one.
func (m *Manager) Get(chatID int64) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[chatID]
	return s, ok
}

// GetOrStart returns the chat's session, starting a new one on the splash
// screen when there is none. created reports which happened.
func (m *Manager) GetOrStart(chatID int64) (s *Session, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[chatID]; ok {
		return s, false
	}
	s = NewSession(chatID, m.opts, m.baseLogger)
	m.sessions[chatID] = s
	m.log.Info().Int64("chat_id", chatID).Int("sessions", len(m.sessions)).Msg("New session")
	return s, true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close cancels every pending deferred task.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		s.Close()
	}
	m.log.Info().Int("sessions", len(m.sessions)).Msg("All sessions closed")
}
