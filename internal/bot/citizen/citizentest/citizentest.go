// Package citizentest provides in-memory stand-ins for the Telegram client
// and the timer scheduler, for exercising the citizen bot without a network.
package citizentest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"Nadi/internal/adapters/security"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

// Bot records everything sent through it. Message ids start at 100.
type Bot struct {
	mu      sync.Mutex
	nextID  int
	Sent    []ports.SendMessageParams
	Photos  []ports.SendPhotoParams
	Edits   []ports.EditMessageParams
	Answers []ports.AnswerCallbackParams
	last    string
	markup  *ports.ReplyMarkup

	// EditErr, when set, fails every edit.
	EditErr error
	// PhotoErr, when set, fails every photo.
	PhotoErr error
}

var _ ports.BotClientPort = (*Bot)(nil)

func (b *Bot) id() int {
	if b.nextID == 0 {
		b.nextID = 100
	}
	b.nextID++
	return b.nextID
}

func (b *Bot) SendMessage(_ context.Context, params ports.SendMessageParams) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Sent = append(b.Sent, params)
	b.last = params.Text
	b.markup = params.ReplyMarkup
	return b.id(), nil
}

func (b *Bot) SendPhoto(_ context.Context, params ports.SendPhotoParams) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.PhotoErr != nil {
		return 0, b.PhotoErr
	}
	b.Photos = append(b.Photos, params)
	b.last = params.Caption
	b.markup = params.ReplyMarkup
	return b.id(), nil
}

func (b *Bot) EditMessageText(_ context.Context, params ports.EditMessageParams) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.EditErr != nil {
		return b.EditErr
	}
	b.Edits = append(b.Edits, params)
	b.last = params.Text
	b.markup = params.ReplyMarkup
	return nil
}

func (b *Bot) AnswerCallbackQuery(_ context.Context, params ports.AnswerCallbackParams) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Answers = append(b.Answers, params)
	return nil
}

func (b *Bot) SetMenuCommands(context.Context) error { return nil }

// LastText returns the text or caption of the most recent sent or edited
// message.
func (b *Bot) LastText() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// LastID returns the id handed to the most recent sent message or photo.
func (b *Bot) LastID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nextID
}

// LastAnswer returns the most recent callback answer.
func (b *Bot) LastAnswer() (ports.AnswerCallbackParams, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Answers) == 0 {
		return ports.AnswerCallbackParams{}, false
	}
	return b.Answers[len(b.Answers)-1], true
}

// Buttons flattens the keyboard of the most recent sent or edited message
// into callback data.
func (b *Bot) Buttons() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.markup == nil {
		return nil
	}
	var data []string
	for _, row := range b.markup.Buttons {
		for _, btn := range row {
			data = append(data, btn.Data)
		}
	}
	return data
}

// SentContaining counts sent messages whose text contains s.
func (b *Bot) SentContaining(s string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, m := range b.Sent {
		if strings.Contains(m.Text, s) {
			n++
		}
	}
	return n
}

// Scheduler holds deferred tasks until Fire is called.
type Scheduler struct {
	mu     sync.Mutex
	timers []*timer
}

type timer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

func (s *Scheduler) AfterFunc(_ time.Duration, fn func()) ports.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &timer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Fire runs every live task, oldest first, and returns how many ran.
func (s *Scheduler) Fire() int {
	s.mu.Lock()
	var due []*timer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	s.timers = nil
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// NewManager returns a session manager driven by sched, with a real AES
// sealer and no event bus unless one is given.
func NewManager(t *testing.T, sched ports.Scheduler, bus ports.EventBus) *navigation.Manager {
	t.Helper()
	logger := zerolog.Nop()
	sec, err := security.NewAESSealer("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", &logger)
	if err != nil {
		t.Fatalf("security service: %v", err)
	}
	return navigation.NewManager(navigation.Options{
		Delays:    navigation.DefaultDelays(),
		Scheduler: sched,
		Bus:       bus,
		Security:  sec,
		Now:       func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) },
	}, &logger)
}
