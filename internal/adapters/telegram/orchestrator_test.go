package telegram

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Nadi/internal/adapters/eventbus"
	"Nadi/internal/bot/citizen/citizentest"
	"Nadi/internal/bot/i18n"
	"Nadi/internal/core/domain"
	"Nadi/internal/shared/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrchestrator_WireRoutesAndRefreshes(t *testing.T) {
	logger := zerolog.Nop()
	bus := eventbus.NewInMemoryEventBus(&logger)
	sched := &citizentest.Scheduler{}
	manager := citizentest.NewManager(t, sched, bus)
	tr, err := i18n.New()
	require.NoError(t, err)

	o := NewOrchestrator(&config.Config{}, manager, bus, tr, &logger)
	bot := &citizentest.Bot{}
	router := o.Wire(bot, &logger)

	router.HandleUpdate(t.Context(), &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: 7},
			Chat:      &tgbotapi.Chat{ID: 11},
			Text:      "/start",
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
		},
	})
	require.Len(t, bot.Sent, 1)

	// The splash completes on its own; the notification handler redraws it.
	require.Equal(t, 1, sched.Fire())
	bus.Wait()

	s, ok := manager.Get(11)
	require.True(t, ok)
	assert.Equal(t, domain.ScreenLanguageSelect, s.Screen())
	require.Len(t, bot.Edits, 1)
	assert.Equal(t, bot.LastID(), bot.Edits[0].MessageID)
}

func TestOrchestrator_ConnectTracesRequestsInDev(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/getMe" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Nadi","username":"nadi_bot"}}`))
	}))
	defer srv.Close()

	testCases := []struct {
		env   string
		debug bool
	}{
		{env: "dev", debug: true},
		{env: "development", debug: true},
		{env: "production", debug: false},
	}

	for _, tc := range testCases {
		t.Run(tc.env, func(t *testing.T) {
			logger := zerolog.Nop()
			cfg := &config.Config{
				AppEnv: tc.env,
				Bot:    config.BotConfig{Token: "test-token", APIEndpoint: srv.URL + "/bot%s/%s"},
			}
			o := NewOrchestrator(cfg, nil, nil, nil, &logger)

			api, err := o.connect()
			require.NoError(t, err)
			assert.Equal(t, "nadi_bot", api.Self.UserName)
			assert.Equal(t, tc.debug, api.Debug)
		})
	}
}
