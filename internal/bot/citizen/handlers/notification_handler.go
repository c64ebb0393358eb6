package handlers

import (
	"context"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/bot/i18n"
	"Nadi/internal/bot/messages"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

// NotificationHandler listens for session events (from the EventBus) and
// talks to the chat they belong to.
// It is NOT a registered router handler; it's a system component.
type NotificationHandler struct {
	log       zerolog.Logger
	bot       ports.BotClientPort
	sessions  citizen.SessionProvider
	presenter *citizen.Presenter
}

// NewNotificationHandler creates a new handler for session events.
func NewNotificationHandler(deps citizen.Deps, baseLogger *zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		log:       baseLogger.With().Str("component", "notification_handler").Logger(),
		bot:       deps.Bot,
		sessions:  deps.Sessions,
		presenter: deps.Presenter,
	}
}

// Subscribe wires every handler to its topic.
func (h *NotificationHandler) Subscribe(bus ports.EventBus) {
	bus.Subscribe(domain.TopicScreenChanged, h.HandleScreenChanged)
	bus.Subscribe(domain.TopicGrievanceSubmitted, h.HandleGrievanceSubmitted)
	bus.Subscribe(domain.TopicLoggedOut, h.HandleLoggedOut)
}

// HandleScreenChanged is an EventHandler for the "session:screen_changed" topic.
// A simulated step finished on its own, so the chat must be redrawn.
func (h *NotificationHandler) HandleScreenChanged(ctx context.Context, event ports.Event) error {
	e, ok := event.Data.(domain.ScreenChangedEvent)
	if !ok {
		h.log.Error().Msg("Received invalid data for 'session:screen_changed' event")
		return nil // Don't retry
	}

	session, ok := h.sessions.Get(e.ChatID)
	if !ok || session.ID() != e.SessionID {
		return nil
	}

	h.log.Debug().Int64("chat_id", e.ChatID).Str("screen", string(e.Screen)).Msg("Refreshing chat")
	return h.presenter.Refresh(ctx, session)
}

// HandleGrievanceSubmitted is an EventHandler for the "grievance:submitted" topic.
func (h *NotificationHandler) HandleGrievanceSubmitted(ctx context.Context, event ports.Event) error {
	e, ok := event.Data.(domain.GrievanceSubmittedEvent)
	if !ok || e.Grievance == nil {
		h.log.Error().Msg("Received invalid data for 'grievance:submitted' event")
		return nil
	}

	log := h.log.With().Int64("chat_id", e.ChatID).Str("grievance_id", e.Grievance.ID).Logger()
	log.Info().Msg("Sending submission receipt")

	msg := h.presenter.Renderer().Notice(e.ChatID, e.Language, i18n.KeyReceipt, messages.Escape(e.Grievance.ID))
	if _, err := h.bot.SendMessage(ctx, msg); err != nil {
		log.Error().Err(err).Msg("Failed to send submission receipt")
		return err
	}
	return nil
}

// HandleLoggedOut is an EventHandler for the "session:logged_out" topic.
func (h *NotificationHandler) HandleLoggedOut(ctx context.Context, event ports.Event) error {
	e, ok := event.Data.(domain.LoggedOutEvent)
	if !ok {
		h.log.Error().Msg("Received invalid data for 'session:logged_out' event")
		return nil
	}

	lang := domain.LanguageEnglish
	if session, ok := h.sessions.Get(e.ChatID); ok {
		lang = session.View().Language
	}

	msg := h.presenter.Renderer().Notice(e.ChatID, lang, i18n.KeyLoggedOut)
	if _, err := h.bot.SendMessage(ctx, msg); err != nil {
		h.log.Error().Err(err).Int64("chat_id", e.ChatID).Msg("Failed to send logout notice")
		return err
	}
	return nil
}
