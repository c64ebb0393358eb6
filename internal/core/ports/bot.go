package ports

import (
	"context"
)

// --- Bot Message Structures ---

// Button represents a single button in a keyboard.
type Button struct {
	Text string
	Data string // callback data
}

// ReplyMarkup is an inline keyboard attached to a message.
type ReplyMarkup struct {
	Buttons [][]Button
}

// SendMessageParams holds all possible options for sending a message.
type SendMessageParams struct {
	ChatID      int64
	Text        string
	ParseMode   string // e.g., "MarkdownV2" or "HTML"
	ReplyMarkup *ReplyMarkup
}

// SendPhotoParams holds the options for sending a photo with a caption.
type SendPhotoParams struct {
	ChatID      int64
	Photo       string // Telegram FileID or an http(s) URL
	Caption     string
	ParseMode   string
	ReplyMarkup *ReplyMarkup
}

// EditMessageParams holds the options for editing a sent message's text.
type EditMessageParams struct {
	ChatID      int64
	MessageID   int
	Text        string
	ParseMode   string
	ReplyMarkup *ReplyMarkup
}

// AnswerCallbackParams stops the spinner on a pressed inline button.
type AnswerCallbackParams struct {
	CallbackQueryID string
	Text            string
	ShowAlert       bool
}

// --- Bot Client Port (Outbound) ---

// BotClientPort defines the interface for *sending* messages.
type BotClientPort interface {
	SendMessage(ctx context.Context, params SendMessageParams) (int, error)
	SendPhoto(ctx context.Context, params SendPhotoParams) (int, error)
	EditMessageText(ctx context.Context, params EditMessageParams) error
	AnswerCallbackQuery(ctx context.Context, params AnswerCallbackParams) error
	SetMenuCommands(ctx context.Context) error
}

// --- Bot Update (Inbound) ---

// PhotoInfo is the largest size of a photo the user sent.
type PhotoInfo struct {
	FileID   string
	FileSize int
}

// BotUpdate represents a simplified, generic update.
type BotUpdate struct {
	MessageID       int
	ChatID          int64
	UserID          int64
	LanguageCode    string
	Text            string
	Command         string
	CallbackQueryID string
	CallbackData    *string
	Photo           *PhotoInfo
}
