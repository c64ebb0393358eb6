package handlers

import (
	"context"
	"errors"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/bot/i18n"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

func init() {
	citizen.RegisterCommand(NewLogoutHandler)
}

type logoutHandler struct {
	log       zerolog.Logger
	bot       ports.BotClientPort
	presenter *citizen.Presenter
}

// NewLogoutHandler creates the /logout handler.
func NewLogoutHandler(deps citizen.Deps, baseLogger *zerolog.Logger) citizen.CommandHandler {
	return &logoutHandler{
		log:       baseLogger.With().Str("component", "logout_handler").Logger(),
		bot:       deps.Bot,
		presenter: deps.Presenter,
	}
}

func (h *logoutHandler) Command() string {
	return "logout"
}

// Handle signs the user out; the session goes back to language selection.
func (h *logoutHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	if session == nil {
		return h.notSignedIn(ctx, update.ChatID, domain.LanguageEnglish)
	}

	err := session.Logout(ctx)
	if errors.Is(err, navigation.ErrNotAuthenticated) {
		return h.notSignedIn(ctx, update.ChatID, session.View().Language)
	}
	if err != nil {
		return err
	}
	h.log.Info().Int64("chat_id", update.ChatID).Msg("Signed out by command")
	return h.presenter.Show(ctx, session, 0)
}

func (h *logoutHandler) notSignedIn(ctx context.Context, chatID int64, lang domain.Language) error {
	_, err := h.bot.SendMessage(ctx, h.presenter.Renderer().Notice(chatID, lang, i18n.KeyNotSignedIn))
	return err
}
