package navigation

import (
	"iter"

	"Nadi/internal/core/domain"

	"github.com/google/uuid"
)

// View is a read-only snapshot of a session handed to the presentation.
// Grievance pointers are shared with the session; grievances are never
// mutated after creation.
type View struct {
	SessionID  uuid.UUID
	ChatID     int64
	Screen     domain.Screen
	User       *domain.User
	Language   domain.Language
	ActiveTab  domain.Tab
	Grievances []*domain.Grievance

	// MaskedAadhaar is only filled on the profile screen, and only when an
	// ID was linked at login.
	MaskedAadhaar string
}

// Kind returns the current screen kind.
func (v View) Kind() domain.ScreenKind {
	return v.Screen.Kind()
}

// Listed returns the grievances the current screen lists: the dashboard
// honours its status filter, every other screen lists everything.
func (v View) Listed() iter.Seq[*domain.Grievance] {
	filter := domain.FilterAll
	if dash, ok := v.Screen.(domain.DashboardScreen); ok {
		filter = dash.Filter
	}
	return filter.Apply(v.Grievances)
}
