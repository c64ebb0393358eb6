package handlers

import (
	"context"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/bot/i18n"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

func init() {
	citizen.RegisterCommand(NewHelpHandler)
}

type helpHandler struct {
	bot       ports.BotClientPort
	presenter *citizen.Presenter
}

// NewHelpHandler creates the /help handler.
func NewHelpHandler(deps citizen.Deps, _ *zerolog.Logger) citizen.CommandHandler {
	return &helpHandler{
		bot:       deps.Bot,
		presenter: deps.Presenter,
	}
}

func (h *helpHandler) Command() string {
	return "help"
}

func (h *helpHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	lang := domain.LanguageEnglish
	if session != nil {
		lang = session.View().Language
	}
	_, err := h.bot.SendMessage(ctx, h.presenter.Renderer().Notice(update.ChatID, lang, i18n.KeyHelp))
	return err
}
