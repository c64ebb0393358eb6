package citizen

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"Nadi/internal/bot/citizen/citizentest"
	"Nadi/internal/bot/i18n"
	"Nadi/internal/bot/screens"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// MockCommandHandler
type MockCommandHandler struct {
	mock.Mock
}

func (m *MockCommandHandler) Command() string {
	args := m.Called()
	return args.String(0)
}
func (m *MockCommandHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	args := m.Called(session == nil)
	return args.Error(0)
}

// MockCallbackHandler
type MockCallbackHandler struct {
	mock.Mock
}

func (m *MockCallbackHandler) Prefix() string {
	args := m.Called()
	return args.String(0)
}
func (m *MockCallbackHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	args := m.Called(*update.CallbackData)
	return args.Error(0)
}

// MockMessageHandler
type MockMessageHandler struct {
	mock.Mock
}

func (m *MockMessageHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	args := m.Called(update.Text, update.Photo != nil)
	return args.Error(0)
}

// MockBotClient is a mock for the BotClientPort
type MockBotClient struct {
	mock.Mock
}

func (m *MockBotClient) SendMessage(ctx context.Context, params ports.SendMessageParams) (int, error) {
	args := m.Called(ctx, params)
	return args.Int(0), args.Error(1)
}
func (m *MockBotClient) SendPhoto(ctx context.Context, params ports.SendPhotoParams) (int, error) {
	args := m.Called(ctx, params)
	return args.Int(0), args.Error(1)
}
func (m *MockBotClient) EditMessageText(ctx context.Context, params ports.EditMessageParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
func (m *MockBotClient) AnswerCallbackQuery(ctx context.Context, params ports.AnswerCallbackParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
func (m *MockBotClient) SetMenuCommands(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Fixtures ---

type routerFixture struct {
	router   *Router
	bot      *MockBotClient
	manager  *navigation.Manager
	renderer *screens.Renderer
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	nopLogger := zerolog.Nop()

	tr, err := i18n.New()
	require.NoError(t, err)
	renderer := screens.NewRenderer(tr)

	bot := new(MockBotClient)
	manager := citizentest.NewManager(t, &citizentest.Scheduler{}, nil)
	presenter := NewPresenter(bot, renderer, &nopLogger)

	return routerFixture{
		router:   NewRouter(manager, bot, presenter, &nopLogger),
		bot:      bot,
		manager:  manager,
		renderer: renderer,
	}
}

func commandUpdate(chatID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		UpdateID: 123,
		Message: &tgbotapi.Message{
			MessageID: 456,
			From:      &tgbotapi.User{ID: 789, UserName: "testuser"},
			Chat:      &tgbotapi.Chat{ID: chatID},
			Text:      text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(text)},
			},
		},
	}
}

func callbackUpdate(chatID int64, data string) *tgbotapi.Update {
	return &tgbotapi.Update{
		UpdateID: 124,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb_id_1",
			From: &tgbotapi.User{ID: 789, UserName: "testuser"},
			Message: &tgbotapi.Message{
				MessageID: 456,
				Chat:      &tgbotapi.Chat{ID: chatID},
			},
			Data: data,
		},
	}
}

func answerWith(text string) any {
	return answerAlert(text, false)
}

func answerAlert(text string, alert bool) any {
	return mock.MatchedBy(func(p ports.AnswerCallbackParams) bool {
		return p.CallbackQueryID == "cb_id_1" && p.Text == text && p.ShowAlert == alert
	})
}

// --- Tests ---

func TestRouter_HandleUpdate_Command(t *testing.T) {
	f := newRouterFixture(t)

	startHandler := new(MockCommandHandler)
	startHandler.On("Command").Return("start")
	startHandler.On("Handle", true).Return(nil).Once() // no session yet

	helpHandler := new(MockCommandHandler)
	helpHandler.On("Command").Return("help")

	f.router.RegisterCommandHandler(startHandler)
	f.router.RegisterCommandHandler(helpHandler)

	f.router.HandleUpdate(t.Context(), commandUpdate(1000, "/start"))

	startHandler.AssertExpectations(t)
	helpHandler.AssertNotCalled(t, "Handle", mock.Anything)
}

func TestRouter_HandleUpdate_CommandSeesSession(t *testing.T) {
	f := newRouterFixture(t)
	f.manager.GetOrStart(1000)

	logoutHandler := new(MockCommandHandler)
	logoutHandler.On("Command").Return("logout")
	logoutHandler.On("Handle", false).Return(nil).Once()
	f.router.RegisterCommandHandler(logoutHandler)

	f.router.HandleUpdate(t.Context(), commandUpdate(1000, "/logout"))

	logoutHandler.AssertExpectations(t)
}

func TestRouter_HandleUpdate_Callback(t *testing.T) {
	f := newRouterFixture(t)
	f.manager.GetOrStart(1000)

	bidHandler := new(MockCallbackHandler)
	bidHandler.On("Prefix").Return("grv_")
	bidHandler.On("Handle", "grv_GR-2023-0042").Return(nil).Once()

	cancelHandler := new(MockCallbackHandler)
	cancelHandler.On("Prefix").Return("nav_")

	f.router.RegisterCallbackHandler(bidHandler)
	f.router.RegisterCallbackHandler(cancelHandler)

	// The spinner is stopped without a message.
	f.bot.On("AnswerCallbackQuery", mock.Anything, answerWith("")).Return(nil).Once()

	f.router.HandleUpdate(t.Context(), callbackUpdate(1000, "grv_GR-2023-0042"))

	bidHandler.AssertExpectations(t)
	cancelHandler.AssertNotCalled(t, "Handle", mock.Anything)
	f.bot.AssertExpectations(t)
}

func TestRouter_HandleUpdate_CallbackErrorsExplainThemselves(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		key   string
		alert bool
	}{
		{"incomplete", fmt.Errorf("next: %w", navigation.ErrIncompleteInput), i18n.KeyIncomplete, false},
		{"pending", navigation.ErrVerificationPending, i18n.KeyPleaseWait, false},
		{"not signed in", navigation.ErrNotAuthenticated, i18n.KeyNotSignedIn, false},
		{"not found", navigation.ErrGrievanceNotFound, i18n.KeyUnavailable, false},
		{"unexpected", errors.New("boom"), i18n.KeyFailed, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRouterFixture(t)
			f.manager.GetOrStart(1000)

			handler := new(MockCallbackHandler)
			handler.On("Prefix").Return("sub_")
			handler.On("Handle", "sub_next").Return(tc.err).Once()
			f.router.RegisterCallbackHandler(handler)

			want := f.renderer.Plain(domain.LanguageEnglish, tc.key)
			assert.NotContains(t, want, `\`)
			f.bot.On("AnswerCallbackQuery", mock.Anything, answerAlert(want, tc.alert)).Return(nil).Once()

			f.router.HandleUpdate(t.Context(), callbackUpdate(1000, "sub_next"))

			f.bot.AssertExpectations(t)
			f.bot.AssertNotCalled(t, "EditMessageText", mock.Anything, mock.Anything)
		})
	}
}

func TestRouter_HandleUpdate_StaleButtonRedraws(t *testing.T) {
	f := newRouterFixture(t)
	f.manager.GetOrStart(1000)

	handler := new(MockCallbackHandler)
	handler.On("Prefix").Return("nav_")
	handler.On("Handle", "nav_all").Return(fmt.Errorf("view all: %w", navigation.ErrInvalidTransition)).Once()
	f.router.RegisterCallbackHandler(handler)

	f.bot.On("AnswerCallbackQuery", mock.Anything, answerWith(f.renderer.Plain(domain.LanguageEnglish, i18n.KeyUnavailable))).Return(nil).Once()
	// The pressed message is redrawn with the real (splash) screen.
	f.bot.On("EditMessageText", mock.Anything, mock.MatchedBy(func(p ports.EditMessageParams) bool {
		return p.ChatID == 1000 && p.MessageID == 456
	})).Return(nil).Once()

	f.router.HandleUpdate(t.Context(), callbackUpdate(1000, "nav_all"))

	f.bot.AssertExpectations(t)
}

func TestRouter_HandleUpdate_UnknownCallback(t *testing.T) {
	f := newRouterFixture(t)
	f.manager.GetOrStart(1000)

	f.bot.On("AnswerCallbackQuery", mock.Anything, answerWith(f.renderer.Plain(domain.LanguageEnglish, i18n.KeyUnavailable))).Return(nil).Once()

	f.router.HandleUpdate(t.Context(), callbackUpdate(1000, "zzz_unknown"))

	f.bot.AssertExpectations(t)
}

func TestRouter_HandleUpdate_NoSession(t *testing.T) {
	f := newRouterFixture(t)

	messageHandler := new(MockMessageHandler)
	f.router.SetMessageHandler(messageHandler)

	// We expect the router to send a "please /start" message
	startFirst := f.renderer.Notice(1000, domain.LanguageEnglish, i18n.KeyStartFirst)
	f.bot.On("SendMessage", mock.Anything, startFirst).Return(1, nil).Twice()
	f.bot.On("AnswerCallbackQuery", mock.Anything, answerWith(f.renderer.Plain(domain.LanguageEnglish, i18n.KeyNotSignedIn))).Return(nil).Once()

	f.router.HandleUpdate(t.Context(), &tgbotapi.Update{
		UpdateID: 125,
		Message: &tgbotapi.Message{
			MessageID: 456,
			From:      &tgbotapi.User{ID: 789},
			Chat:      &tgbotapi.Chat{ID: 1000},
			Text:      "hello world", // Not a command
		},
	})
	f.router.HandleUpdate(t.Context(), callbackUpdate(1000, "lang_en"))

	f.bot.AssertExpectations(t)
	messageHandler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRouter_HandleUpdate_Messages(t *testing.T) {
	f := newRouterFixture(t)
	f.manager.GetOrStart(1000)

	messageHandler := new(MockMessageHandler)
	messageHandler.On("Handle", "98765", false).Return(nil).Once()
	messageHandler.On("Handle", "", true).Return(nil).Once()
	f.router.SetMessageHandler(messageHandler)

	f.router.HandleUpdate(t.Context(), &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: 789},
			Chat:      &tgbotapi.Chat{ID: 1000},
			Text:      "98765",
		},
	})
	f.router.HandleUpdate(t.Context(), &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 2,
			From:      &tgbotapi.User{ID: 789},
			Chat:      &tgbotapi.Chat{ID: 1000},
			Photo: []tgbotapi.PhotoSize{
				{FileID: "small", FileSize: 10},
				{FileID: "large", FileSize: 1000},
			},
		},
	})

	messageHandler.AssertExpectations(t)
}

func TestRouter_HandleUpdate_MessageFailureTellsTheUser(t *testing.T) {
	f := newRouterFixture(t)
	f.manager.GetOrStart(1000)

	messageHandler := new(MockMessageHandler)
	messageHandler.On("Handle", "leaking pipe", false).Return(errors.New("telegram down")).Once()
	f.router.SetMessageHandler(messageHandler)

	want := f.renderer.Notice(1000, domain.LanguageEnglish, i18n.KeyError)
	f.bot.On("SendMessage", mock.Anything, want).Return(9, nil).Once()

	f.router.HandleUpdate(t.Context(), &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 3,
			From:      &tgbotapi.User{ID: 789},
			Chat:      &tgbotapi.Chat{ID: 1000},
			Text:      "leaking pipe",
		},
	})

	messageHandler.AssertExpectations(t)
	f.bot.AssertExpectations(t)
}

func TestRouter_ParseUpdate(t *testing.T) {
	f := newRouterFixture(t)

	_, ok := f.router.parseUpdate(&tgbotapi.Update{})
	assert.False(t, ok, "empty update")

	_, ok = f.router.parseUpdate(&tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "x"}})
	assert.False(t, ok, "callback without its message")

	u, ok := f.router.parseUpdate(&tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat:  &tgbotapi.Chat{ID: 5},
			From:  &tgbotapi.User{ID: 6, LanguageCode: "as"},
			Photo: []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "large", FileSize: 99}},
		},
	})
	require.True(t, ok)
	assert.Equal(t, &ports.PhotoInfo{FileID: "large", FileSize: 99}, u.Photo)
	assert.Equal(t, "as", u.LanguageCode)
	assert.Equal(t, domain.LanguageAssamese, languageOf(u))
}
