package citizen

import (
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

// Deps are the collaborators handed to every handler constructor.
type Deps struct {
	Sessions  SessionProvider
	Bot       ports.BotClientPort
	Presenter *Presenter
}

// --- Define types for handler "constructors" ---

type CommandHandlerConstructor func(deps Deps, baseLogger *zerolog.Logger) CommandHandler

type CallbackHandlerConstructor func(deps Deps, baseLogger *zerolog.Logger) CallbackHandler

type MessageHandlerConstructor func(deps Deps, baseLogger *zerolog.Logger) MessageHandler

// --- Create the global registries ---
var (
	commandRegistry  []CommandHandlerConstructor
	callbackRegistry []CallbackHandlerConstructor
	messageHandler   MessageHandlerConstructor
)

// RegisterCommand is called by handlers in their init() function
func RegisterCommand(constructor CommandHandlerConstructor) {
	commandRegistry = append(commandRegistry, constructor)
}

// RegisterCallback is called by callback handlers in their init()
func RegisterCallback(constructor CallbackHandlerConstructor) {
	callbackRegistry = append(callbackRegistry, constructor)
}

// RegisterMessage sets the single message handler.
func RegisterMessage(constructor MessageHandlerConstructor) {
	messageHandler = constructor
}

// RegisterAllHandlers builds every registered handler and passes it to the router.
func RegisterAllHandlers(router *Router, deps Deps, baseLogger *zerolog.Logger) {
	log := baseLogger.With().Str("component", "citizen_registry").Logger()

	for _, constructor := range commandRegistry {
		router.RegisterCommandHandler(constructor(deps, baseLogger))
	}

	for _, constructor := range callbackRegistry {
		router.RegisterCallbackHandler(constructor(deps, baseLogger))
	}

	if messageHandler != nil {
		router.SetMessageHandler(messageHandler(deps, baseLogger))
		log.Info().Msg("Registered main message handler")
	}

	log.Info().
		Int("commands", len(commandRegistry)).
		Int("callbacks", len(callbackRegistry)).
		Msg("Citizen handlers registered")
}
