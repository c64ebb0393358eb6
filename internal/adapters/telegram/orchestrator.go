package telegram

import (
	"context"
	"fmt"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/bot/citizen/handlers"
	"Nadi/internal/bot/i18n"
	"Nadi/internal/bot/screens"
	"Nadi/internal/core/ports"
	"Nadi/internal/shared/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Orchestrator wires the citizen bot to the shared session manager and
// event bus, then runs it.
type Orchestrator struct {
	cfg        *config.Config
	sessions   citizen.SessionProvider
	bus        ports.EventBus
	translator *i18n.Translator
	baseLogger *zerolog.Logger
}

// NewOrchestrator creates a new bot orchestrator.
func NewOrchestrator(
	cfg *config.Config,
	sessions citizen.SessionProvider,
	bus ports.EventBus,
	translator *i18n.Translator,
	baseLogger *zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		sessions:   sessions,
		bus:        bus,
		translator: translator,
		baseLogger: baseLogger,
	}
}

// connect logs in to the Bot API. Request tracing follows the dev setting.
func (o *Orchestrator) connect() (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(o.cfg.Bot.Token, o.cfg.Bot.APIEndpoint)
	if err != nil {
		return nil, fmt.Errorf("connect to bot api: %w", err)
	}
	api.Debug = o.cfg.IsDev()
	return api, nil
}

// Start connects to Telegram and blocks until ctx is cancelled.
func (o *Orchestrator) Start(ctx context.Context) error {
	log := o.baseLogger.With().Str("bot", "citizen").Logger()

	// 1. Create API
	api, err := o.connect()
	if err != nil {
		return err
	}
	log.Info().Str("username", api.Self.UserName).Msg("Bot API connected")

	// 2. Create Client (Adapter)
	client := NewClient(api, &log)

	// 3. Wire the front end
	router := o.Wire(client, &log)

	// 4. Set Menu
	if err := client.SetMenuCommands(ctx); err != nil {
		log.Warn().Err(err).Msg("Continuing without menu commands")
	}

	// 5. Create and Start Server
	server := NewBotServer(api, router, &o.cfg.Bot.Connection, &log)
	return server.Start(ctx)
}

// Wire builds the presenter and router over client, registers every
// handler plugin and subscribes the notification handler to the bus.
func (o *Orchestrator) Wire(client ports.BotClientPort, log *zerolog.Logger) *citizen.Router {
	presenter := citizen.NewPresenter(client, screens.NewRenderer(o.translator), log)
	router := citizen.NewRouter(o.sessions, client, presenter, log)

	deps := citizen.Deps{
		Sessions:  o.sessions,
		Bot:       client,
		Presenter: presenter,
	}
	citizen.RegisterAllHandlers(router, deps, log)
	handlers.NewNotificationHandler(deps, log).Subscribe(o.bus)

	return router
}
