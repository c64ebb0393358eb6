package navigation

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"Nadi/internal/core/domain"
)

// AttachImage records the photo for step 1.
func (s *Session) AttachImage(ref string) error {
	return s.editDraft(1, "attach image", func(scr *domain.SubmitScreen) error {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return fmt.Errorf("attach image: %w", ErrIncompleteInput)
		}
		scr.Draft.ImageURL = ref
		return nil
	})
}

// SelectCategory picks the category on step 2.
func (s *Session) SelectCategory(c domain.GrievanceCategory) error {
	return s.editDraft(2, "select category", func(scr *domain.SubmitScreen) error {
		parsed, err := domain.ParseCategory(string(c))
		if err != nil {
			return err
		}
		scr.Draft.Category = parsed
		return nil
	})
}

// SetDescription sets the description on step 2.
func (s *Session) SetDescription(text string) error {
	return s.editDraft(2, "set description", func(scr *domain.SubmitScreen) error {
		scr.Draft.Description = strings.TrimSpace(text)
		return nil
	})
}

// SetLocation sets the location on step 2. A manual entry wins over a
// detection still in flight.
func (s *Session) SetLocation(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scr, err := s.submitStepLocked(2, "set location")
	if err != nil {
		return err
	}
	s.setLocationLocked(scr, text)
	return nil
}

func (s *Session) setLocationLocked(scr domain.SubmitScreen, text string) {
	if scr.Locating {
		s.invalidateLocked()
		scr.Locating = false
	}
	scr.Draft.Location = strings.TrimSpace(text)
	scr.Focus = domain.FieldDescription
	s.screen = scr
}

// FocusField chooses which field the next typed text fills on step 2.
func (s *Session) FocusField(f domain.DraftField) error {
	return s.editDraft(2, "focus field", func(scr *domain.SubmitScreen) error {
		if f != domain.FieldDescription && f != domain.FieldLocation {
			return fmt.Errorf("focus field %q: %w", f, ErrInvalidTransition)
		}
		scr.Focus = f
		return nil
	})
}

// TypeText routes free text on step 2 into the focused field. After the
// description is filled the focus moves to an empty location.
func (s *Session) TypeText(text string) (domain.DraftField, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scr, err := s.submitStepLocked(2, "type text")
	if err != nil {
		return "", err
	}

	if scr.Focus == domain.FieldLocation {
		s.setLocationLocked(scr, text)
		return domain.FieldLocation, nil
	}

	scr.Draft.Description = strings.TrimSpace(text)
	if scr.Draft.Location == "" && !scr.Locating {
		scr.Focus = domain.FieldLocation
	}
	s.screen = scr
	return domain.FieldDescription, nil
}

// DetectLocation starts the simulated location lookup on step 2.
func (s *Session) DetectLocation() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scr, err := s.submitStepLocked(2, "detect location")
	if err != nil {
		return err
	}
	if scr.Locating {
		return fmt.Errorf("detect location: %w", ErrVerificationPending)
	}

	scr.Locating = true
	s.screen = scr
	location := s.opts.DetectedLocation
	s.scheduleLocked(s.opts.Delays.Locate, func() bool {
		current, ok := s.screen.(domain.SubmitScreen)
		if !ok || current.Step != 2 || !current.Locating {
			return false
		}
		current.Locating = false
		current.Draft.Location = location
		current.Focus = domain.FieldDescription
		s.screen = current
		return true
	})
	return nil
}

// ToggleAnonymous flips the anonymous flag on the review step.
func (s *Session) ToggleAnonymous() error {
	return s.editDraft(3, "toggle anonymous", func(scr *domain.SubmitScreen) error {
		scr.Draft.IsAnonymous = !scr.Draft.IsAnonymous
		return nil
	})
}

// NextStep moves the wizard forward. On the review step it submits the
// grievance and returns it; otherwise the returned grievance is nil.
func (s *Session) NextStep(ctx context.Context) (*domain.Grievance, error) {
	s.mu.Lock()
	scr, ok := s.screen.(domain.SubmitScreen)
	if !ok {
		err := s.invalid("next step")
		s.mu.Unlock()
		return nil, err
	}
	if !scr.Draft.StepComplete(scr.Step) {
		s.mu.Unlock()
		return nil, fmt.Errorf("next step from %d: %w", scr.Step, ErrIncompleteInput)
	}

	if scr.Step < domain.SubmitSteps {
		scr.Step++
		scr.Locating = false
		s.transitionLocked(scr)
		s.mu.Unlock()
		return nil, nil
	}

	g, event, err := s.submitLocked(scr.Draft.Submission())
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.announce(ctx, event)
	return g, nil
}

// SubmitGrievance creates a grievance from sub, puts it at the front of the
// collection and returns to the dashboard on the home tab.
func (s *Session) SubmitGrievance(ctx context.Context, sub domain.Submission) (*domain.Grievance, error) {
	s.mu.Lock()
	g, event, err := s.submitLocked(sub)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.announce(ctx, event)
	return g, nil
}

func (s *Session) submitLocked(sub domain.Submission) (*domain.Grievance, domain.GrievanceSubmittedEvent, error) {
	var none domain.GrievanceSubmittedEvent
	if err := sub.Validate(); err != nil {
		return nil, none, fmt.Errorf("submit grievance: %w: %w", ErrIncompleteInput, err)
	}
	if s.user == nil {
		return nil, none, fmt.Errorf("submit grievance: %w", ErrNotAuthenticated)
	}

	now := s.opts.Now()
	id, err := s.nextIDLocked(now.Year())
	if err != nil {
		return nil, none, fmt.Errorf("submit grievance: %w", err)
	}

	g := domain.NewGrievance(id, sub, now)
	s.grievances = slices.Insert(s.grievances, 0, g)
	s.activeTab = domain.TabHome
	s.transitionLocked(domain.DashboardScreen{})

	return g, domain.GrievanceSubmittedEvent{
		SessionID: s.id,
		ChatID:    s.chatID,
		Language:  s.language,
		Grievance: g,
	}, nil
}

func (s *Session) announce(ctx context.Context, event domain.GrievanceSubmittedEvent) {
	g := event.Grievance
	s.log.Info().
		Str("grievance_id", g.ID).
		Str("category", string(g.Category)).
		Bool("anonymous", g.IsAnonymous).
		Msg("Grievance submitted")
	s.publish(ctx, domain.TopicGrievanceSubmitted, event)
}

// submitBackLocked steps the wizard back, or leaves it from step 1.
func (s *Session) submitBackLocked(scr domain.SubmitScreen) error {
	if scr.Step <= 1 {
		s.transitionLocked(domain.DashboardScreen{})
		return nil
	}
	scr.Step--
	scr.Locating = false
	s.transitionLocked(scr)
	return nil
}

func (s *Session) editDraft(step int, action string, edit func(*domain.SubmitScreen) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scr, err := s.submitStepLocked(step, action)
	if err != nil {
		return err
	}
	if err := edit(&scr); err != nil {
		return err
	}
	s.screen = scr
	return nil
}

func (s *Session) submitStepLocked(step int, action string) (domain.SubmitScreen, error) {
	scr, ok := s.screen.(domain.SubmitScreen)
	if !ok || scr.Step != step {
		return domain.SubmitScreen{}, s.invalid(action)
	}
	return scr, nil
}
