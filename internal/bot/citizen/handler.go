// Package citizen is the Telegram front end of a navigation session: it
// routes updates to handler plugins and renders the resulting screen.
package citizen

import (
	"context"

	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"
)

// SessionProvider finds the session of a chat.
type SessionProvider interface {
	Get(chatID int64) (*navigation.Session, bool)
	GetOrStart(chatID int64) (*navigation.Session, bool)
}

// CommandHandler handles one slash command. session is nil when the chat
// has not started yet.
type CommandHandler interface {
	Command() string
	Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error
}

// CallbackHandler handles every inline button whose data starts with Prefix.
type CallbackHandler interface {
	Prefix() string
	Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error
}

// MessageHandler handles typed text and photos.
type MessageHandler interface {
	Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error
}
