package handlers

import (
	"context"
	"errors"
	"fmt"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

func init() {
	citizen.RegisterMessage(NewMessageHandler)
}

// messageHandler feeds typed text and photos into whatever the current
// screen accepts, then shows the screen again below the user's message.
type messageHandler struct {
	log       zerolog.Logger
	presenter *citizen.Presenter
}

// NewMessageHandler creates the single message handler.
func NewMessageHandler(deps citizen.Deps, baseLogger *zerolog.Logger) citizen.MessageHandler {
	return &messageHandler{
		log:       baseLogger.With().Str("component", "message_handler").Logger(),
		presenter: deps.Presenter,
	}
}

func (h *messageHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	err := h.apply(update, session)

	switch {
	case err == nil:
	case errors.Is(err, navigation.ErrIncompleteInput),
		errors.Is(err, navigation.ErrInvalidTransition),
		errors.Is(err, navigation.ErrVerificationPending):
		// Nothing to apply here; the screen below tells the user what to do.
		h.log.Debug().Err(err).Int64("chat_id", update.ChatID).Msg("Message ignored on this screen")
	default:
		return err
	}

	return h.presenter.Show(ctx, session, 0)
}

func (h *messageHandler) apply(update *ports.BotUpdate, session *navigation.Session) error {
	kind := session.Screen()

	if update.Photo != nil {
		if kind != domain.ScreenSubmitStep1 {
			return fmt.Errorf("photo on %s: %w", kind, navigation.ErrInvalidTransition)
		}
		return session.AttachImage(update.Photo.FileID)
	}

	var err error
	switch kind {
	case domain.ScreenLoginPhone:
		_, err = session.InputPhone(update.Text)
	case domain.ScreenLoginOTP:
		_, err = session.InputOTP(update.Text)
	case domain.ScreenLoginAadhaar:
		_, err = session.InputAadhaar(update.Text)
	case domain.ScreenSubmitStep2:
		if update.Text == "" {
			return fmt.Errorf("empty text: %w", navigation.ErrIncompleteInput)
		}
		_, err = session.TypeText(update.Text)
	default:
		err = fmt.Errorf("text on %s: %w", kind, navigation.ErrInvalidTransition)
	}
	return err
}
