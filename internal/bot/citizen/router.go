package citizen

import (
	"context"
	"errors"
	"strings"

	"Nadi/internal/bot/i18n"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Router is the "Bot Facade." It holds all "plugins"
// and routes incoming updates to the correct handler.
type Router struct {
	log              zerolog.Logger
	sessions         SessionProvider
	botClient        ports.BotClientPort
	presenter        *Presenter
	commandHandlers  map[string]CommandHandler
	callbackHandlers map[string]CallbackHandler
	messageHandler   MessageHandler
}

// NewRouter creates a new bot facade/router.
func NewRouter(
	sessions SessionProvider,
	botClient ports.BotClientPort,
	presenter *Presenter,
	baseLogger *zerolog.Logger,
) *Router {
	return &Router{
		log:              baseLogger.With().Str("component", "citizen_router").Logger(),
		sessions:         sessions,
		botClient:        botClient,
		presenter:        presenter,
		commandHandlers:  make(map[string]CommandHandler),
		callbackHandlers: make(map[string]CallbackHandler),
	}
}

// RegisterCommandHandler adds a "plugin" to the router.
func (r *Router) RegisterCommandHandler(handler CommandHandler) {
	cmd := handler.Command()
	r.commandHandlers[cmd] = handler
	r.log.Info().Str("command", cmd).Msg("Registered new command handler")
}

// RegisterCallbackHandler adds a "plugin" to the router.
func (r *Router) RegisterCallbackHandler(handler CallbackHandler) {
	prefix := handler.Prefix()
	r.callbackHandlers[prefix] = handler
	r.log.Info().Str("prefix", prefix).Msg("Registered new callback handler")
}

// SetMessageHandler registers the single, global message handler
func (r *Router) SetMessageHandler(handler MessageHandler) {
	r.messageHandler = handler
}

// HandleUpdate is the main entry point for a new update from Telegram.
func (r *Router) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	// 1. Convert to our generic BotUpdate
	botUpdate, isSupported := r.parseUpdate(update)
	if !isSupported {
		r.log.Warn().Int("update_id", update.UpdateID).Msg("Received unsupported update type")
		return
	}

	// 2. Add logger context
	ctxLogger := r.log.With().
		Int64("user_id", botUpdate.UserID).
		Int64("chat_id", botUpdate.ChatID).
		Logger()
	ctx = ctxLogger.WithContext(ctx)

	session, _ := r.sessions.Get(botUpdate.ChatID)

	// 3. Route commands first (/start creates the session)
	if botUpdate.Command != "" {
		if handler, ok := r.commandHandlers[botUpdate.Command]; ok {
			ctxLogger.Info().Str("handler", botUpdate.Command).Msg("Routing to command handler")
			if err := handler.Handle(ctx, botUpdate, session); err != nil {
				ctxLogger.Error().Err(err).Msg("Command handler failed")
			}
			return
		}
	}

	// 4. Everything else needs a session
	if session == nil {
		if botUpdate.CallbackData != nil {
			r.answer(ctx, botUpdate, languageOf(botUpdate), navigation.ErrNotAuthenticated)
		}
		msg := r.presenter.Renderer().Notice(botUpdate.ChatID, languageOf(botUpdate), i18n.KeyStartFirst)
		if _, err := r.botClient.SendMessage(ctx, msg); err != nil {
			ctxLogger.Error().Err(err).Msg("Failed to send start prompt")
		}
		return
	}
	lang := session.View().Language

	// 5. Route callbacks
	if botUpdate.CallbackData != nil {
		data := *botUpdate.CallbackData
		for prefix, handler := range r.callbackHandlers {
			if !strings.HasPrefix(data, prefix) {
				continue
			}
			ctxLogger.Info().Str("handler", prefix).Str("data", data).Msg("Routing to callback handler")
			err := handler.Handle(ctx, botUpdate, session)
			r.answer(ctx, botUpdate, lang, err)
			if errors.Is(err, navigation.ErrInvalidTransition) {
				// The keyboard was stale; show what is really on screen.
				if err := r.presenter.Show(ctx, session, botUpdate.MessageID); err != nil {
					ctxLogger.Error().Err(err).Msg("Failed to re-render after stale callback")
				}
			}
			return
		}
		ctxLogger.Warn().Str("data", data).Msg("No callback handler found")
		r.answer(ctx, botUpdate, lang, navigation.ErrInvalidTransition)
		return
	}

	// 6. Route all other messages (Text, Photo)
	if r.messageHandler != nil {
		log := ctxLogger.With().Str("screen", string(session.Screen())).Logger()
		if botUpdate.Photo != nil {
			log.Info().Msg("Routing photo message to message handler")
		} else {
			log.Info().Msg("Routing text message to message handler")
		}

		if err := r.messageHandler.Handle(ctx, botUpdate, session); err != nil {
			log.Error().Err(err).Msg("Message handler failed")
			msg := r.presenter.Renderer().Notice(botUpdate.ChatID, lang, i18n.KeyError)
			if _, err := r.botClient.SendMessage(ctx, msg); err != nil {
				log.Error().Err(err).Msg("Failed to send error notice")
			}
		}
		return
	}

	// If we're here, it's an unhandled message
	ctxLogger.Info().Msg("Received unhandled message (no handler)")
}

// answer stops the button spinner, explaining a rejected action.
func (r *Router) answer(ctx context.Context, update *ports.BotUpdate, lang domain.Language, err error) {
	params := ports.AnswerCallbackParams{CallbackQueryID: update.CallbackQueryID}
	if err != nil {
		params.Text = r.presenter.Renderer().Plain(lang, reasonKey(err))
	}
	if err != nil && !isUserError(err) {
		// Internal failures pop up instead of flashing by.
		params.ShowAlert = true
		zerolog.Ctx(ctx).Error().Err(err).Msg("Callback handler failed")
	}
	if aerr := r.botClient.AnswerCallbackQuery(ctx, params); aerr != nil {
		zerolog.Ctx(ctx).Warn().Err(aerr).Msg("Failed to answer callback")
	}
}

func reasonKey(err error) string {
	switch {
	case errors.Is(err, navigation.ErrIncompleteInput):
		return i18n.KeyIncomplete
	case errors.Is(err, navigation.ErrVerificationPending):
		return i18n.KeyPleaseWait
	case errors.Is(err, navigation.ErrNotAuthenticated):
		return i18n.KeyNotSignedIn
	case errors.Is(err, navigation.ErrInvalidTransition),
		errors.Is(err, navigation.ErrGrievanceNotFound),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrUnknownLanguage):
		return i18n.KeyUnavailable
	default:
		return i18n.KeyFailed
	}
}

// isUserError reports whether err is an expected rejection of a user action.
func isUserError(err error) bool {
	return reasonKey(err) != i18n.KeyFailed
}

func languageOf(update *ports.BotUpdate) domain.Language {
	if lang, err := domain.ParseLanguage(update.LanguageCode); err == nil {
		return lang
	}
	return domain.LanguageEnglish
}

// parseUpdate converts a tgbotapi.Update into our internal, simplified struct.
func (r *Router) parseUpdate(update *tgbotapi.Update) (*ports.BotUpdate, bool) {
	if cb := update.CallbackQuery; cb != nil {
		if cb.Message == nil || cb.From == nil {
			return nil, false
		}
		return &ports.BotUpdate{
			MessageID:       cb.Message.MessageID,
			ChatID:          cb.Message.Chat.ID,
			UserID:          cb.From.ID,
			LanguageCode:    cb.From.LanguageCode,
			CallbackQueryID: cb.ID,
			CallbackData:    &cb.Data,
		}, true
	}

	if msg := update.Message; msg != nil {
		if msg.Chat == nil {
			return nil, false
		}

		var photoInfo *ports.PhotoInfo
		if len(msg.Photo) > 0 {
			bestPhoto := msg.Photo[len(msg.Photo)-1]
			photoInfo = &ports.PhotoInfo{
				FileID:   bestPhoto.FileID,
				FileSize: bestPhoto.FileSize,
			}
		}

		u := &ports.BotUpdate{
			MessageID: msg.MessageID,
			ChatID:    msg.Chat.ID,
			Text:      msg.Text,
			Command:   msg.Command(),
			Photo:     photoInfo,
		}
		if msg.From != nil {
			u.UserID = msg.From.ID
			u.LanguageCode = msg.From.LanguageCode
		}
		return u, true
	}

	return nil, false // Unsupported update
}
