package domain

import "github.com/google/uuid"

// Event bus topics published by sessions.
const (
	TopicScreenChanged      = "session:screen_changed"
	TopicGrievanceSubmitted = "grievance:submitted"
	TopicLoggedOut          = "session:logged_out"
)

// ScreenChangedEvent is published when a timer, not a user action,
// moved a session to a new screen.
type ScreenChangedEvent struct {
	SessionID uuid.UUID
	ChatID    int64
	Screen    ScreenKind
}

// GrievanceSubmittedEvent is published after a grievance joins the collection.
type GrievanceSubmittedEvent struct {
	SessionID uuid.UUID
	ChatID    int64
	Language  Language
	Grievance *Grievance
}

// LoggedOutEvent is published after a session was reset by logout.
type LoggedOutEvent struct {
	SessionID uuid.UUID
	ChatID    int64
}
