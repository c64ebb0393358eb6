package handlers

import (
	"context"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

func init() {
	citizen.RegisterCommand(NewStartHandler)
}

// startHandler is the plugin for the /start command.
type startHandler struct {
	log       zerolog.Logger
	sessions  citizen.SessionProvider
	presenter *citizen.Presenter
}

// NewStartHandler creates a new handler for the /start command.
func NewStartHandler(deps citizen.Deps, baseLogger *zerolog.Logger) citizen.CommandHandler {
	return &startHandler{
		log:       baseLogger.With().Str("component", "start_handler").Logger(),
		sessions:  deps.Sessions,
		presenter: deps.Presenter,
	}
}

// Command returns the command string (without the "/")
func (h *startHandler) Command() string {
	return "start"
}

// Handle opens the app: a new chat lands on the splash screen, a known
// chat gets its current screen again.
func (h *startHandler) Handle(ctx context.Context, update *ports.BotUpdate, _ *navigation.Session) error {
	session, created := h.sessions.GetOrStart(update.ChatID)

	log := h.log.With().Int64("chat_id", update.ChatID).Str("session_id", session.ID().String()).Logger()
	if created {
		log.Info().Msg("New chat; session started on splash screen")
	} else {
		log.Info().Str("screen", string(session.Screen())).Msg("Existing session; re-rendering")
	}

	return h.presenter.Show(ctx, session, 0)
}
