package citizen

import (
	"context"
	"strings"
	"sync"

	"Nadi/internal/bot/screens"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

// Presenter renders sessions into the chat. It remembers the last text
// message per chat so timer-driven changes can update it in place.
type Presenter struct {
	bot      ports.BotClientPort
	renderer *screens.Renderer
	log      zerolog.Logger

	mu   sync.Mutex
	last map[int64]int
}

// NewPresenter creates a presenter.
func NewPresenter(bot ports.BotClientPort, renderer *screens.Renderer, baseLogger *zerolog.Logger) *Presenter {
	return &Presenter{
		bot:      bot,
		renderer: renderer,
		log:      baseLogger.With().Str("component", "presenter").Logger(),
		last:     make(map[int64]int),
	}
}

// Renderer exposes the renderer for one-off notices.
func (p *Presenter) Renderer() *screens.Renderer {
	return p.renderer
}

// Show renders the session's current screen. A non-zero editID edits that
// message; otherwise, or when the edit fails, a new message is sent.
func (p *Presenter) Show(ctx context.Context, session *navigation.Session, editID int) error {
	v := session.View()
	b := p.renderer.Render(v)
	log := p.log.With().Int64("chat_id", v.ChatID).Str("screen", string(v.Kind())).Logger()

	if b.HasPhoto() {
		if _, err := p.bot.SendPhoto(ctx, b.BuildPhoto()); err != nil {
			log.Warn().Err(err).Msg("Photo failed; falling back to text")
		} else {
			p.forget(v.ChatID)
			return nil
		}
	}

	if editID != 0 {
		err := p.bot.EditMessageText(ctx, b.BuildEdit(editID))
		if err == nil || isNotModified(err) {
			p.remember(v.ChatID, editID)
			return nil
		}
		log.Debug().Err(err).Int("message_id", editID).Msg("Edit failed; sending a new message")
	}

	id, err := p.bot.SendMessage(ctx, b.Build())
	if err != nil {
		return err
	}
	p.remember(v.ChatID, id)
	return nil
}

// Refresh re-renders the session over the last message it sent.
func (p *Presenter) Refresh(ctx context.Context, session *navigation.Session) error {
	p.mu.Lock()
	id := p.last[session.ChatID()]
	p.mu.Unlock()
	return p.Show(ctx, session, id)
}

func (p *Presenter) remember(chatID int64, messageID int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last[chatID] = messageID
}

func (p *Presenter) forget(chatID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.last, chatID)
}

// Telegram rejects edits that would not change anything.
func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
