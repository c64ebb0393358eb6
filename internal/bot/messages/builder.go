package messages

import (
	"Nadi/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Builder helps construct a bot message: text or a photo with a caption,
// plus an inline keyboard.
type Builder struct {
	chatID    int64
	text      string
	parseMode string
	photo     string
	buttons   [][]ports.Button
}

// NewBuilder creates a new message builder.
func NewBuilder(chatID int64) *Builder {
	return &Builder{
		chatID:    chatID,
		parseMode: tgbotapi.ModeMarkdownV2, // Default to Markdown
	}
}

// WithText sets the message text (the caption when a photo is attached).
func (b *Builder) WithText(text string) *Builder {
	b.text = text
	return b
}

// WithParseMode overrides the default parse mode.
func (b *Builder) WithParseMode(mode string) *Builder {
	b.parseMode = mode
	return b
}

// WithPhoto attaches a photo by Telegram file id or URL.
func (b *Builder) WithPhoto(ref string) *Builder {
	b.photo = ref
	return b
}

// WithButtonRow appends one row to the keyboard. Empty rows are skipped.
func (b *Builder) WithButtonRow(buttons ...ports.Button) *Builder {
	if len(buttons) > 0 {
		b.buttons = append(b.buttons, buttons)
	}
	return b
}

// WithButtonGrid arranges buttons into rows of at most columns buttons.
func (b *Builder) WithButtonGrid(buttons []ports.Button, columns int) *Builder {
	var row []ports.Button

	for i, btn := range buttons {
		row = append(row, btn)

		// If we've reached the column limit, or it's the last button
		if (i+1)%columns == 0 || i == len(buttons)-1 {
			b.buttons = append(b.buttons, row)
			row = nil
		}
	}
	return b
}

// HasPhoto reports whether the message must be sent as a photo.
func (b *Builder) HasPhoto() bool {
	return b.photo != ""
}

// Text returns the text set so far.
func (b *Builder) Text() string {
	return b.text
}

// Buttons returns the keyboard set so far.
func (b *Builder) Buttons() [][]ports.Button {
	return b.buttons
}

func (b *Builder) markup() *ports.ReplyMarkup {
	if len(b.buttons) == 0 {
		return nil
	}
	return &ports.ReplyMarkup{Buttons: b.buttons}
}

// Build returns the final SendMessageParams struct.
func (b *Builder) Build() ports.SendMessageParams {
	return ports.SendMessageParams{
		ChatID:      b.chatID,
		Text:        b.text,
		ParseMode:   b.parseMode,
		ReplyMarkup: b.markup(),
	}
}

// BuildPhoto returns the message as SendPhotoParams.
func (b *Builder) BuildPhoto() ports.SendPhotoParams {
	return ports.SendPhotoParams{
		ChatID:      b.chatID,
		Photo:       b.photo,
		Caption:     b.text,
		ParseMode:   b.parseMode,
		ReplyMarkup: b.markup(),
	}
}

// BuildEdit returns the message as an in-place edit of messageID.
func (b *Builder) BuildEdit(messageID int) ports.EditMessageParams {
	return ports.EditMessageParams{
		ChatID:      b.chatID,
		MessageID:   messageID,
		Text:        b.text,
		ParseMode:   b.parseMode,
		ReplyMarkup: b.markup(),
	}
}

// Button is shorthand for a callback button.
func Button(text, data string) ports.Button {
	return ports.Button{Text: text, Data: data}
}

// Escape makes user-provided text safe inside a MarkdownV2 message.
func Escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}
