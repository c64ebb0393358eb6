package handlers

import (
	"context"
	"strings"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/bot/screens"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

func init() {
	citizen.RegisterCallback(NewLanguageHandler)
}

type languageHandler struct {
	log       zerolog.Logger
	presenter *citizen.Presenter
}

// NewLanguageHandler handles the language buttons.
func NewLanguageHandler(deps citizen.Deps, baseLogger *zerolog.Logger) citizen.CallbackHandler {
	return &languageHandler{
		log:       baseLogger.With().Str("component", "language_handler").Logger(),
		presenter: deps.Presenter,
	}
}

func (h *languageHandler) Prefix() string {
	return screens.PrefixLanguage
}

func (h *languageHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	code := strings.TrimPrefix(*update.CallbackData, screens.PrefixLanguage)
	lang, err := domain.ParseLanguage(code)
	if err != nil {
		return err
	}
	if err := session.SelectLanguage(lang); err != nil {
		return err
	}
	h.log.Info().Int64("chat_id", update.ChatID).Str("language", lang.Code()).Msg("Language chosen")
	return h.presenter.Show(ctx, session, update.MessageID)
}
