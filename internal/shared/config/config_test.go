package config

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validKey = strings.Repeat("ab", 32)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ENCRYPTION_KEY", validKey)
	t.Setenv("BOT_TOKEN", "123:abc")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "polling", cfg.Bot.Connection.Mode)
	assert.Equal(t, "https://api.telegram.org/bot%s/%s", cfg.Bot.APIEndpoint)
	assert.Equal(t, 10, cfg.Bot.Connection.Polling.WorkerPoolSize)
	assert.Equal(t, 3500*time.Millisecond, cfg.Session.SplashDelay)
	assert.Equal(t, time.Second, cfg.Session.PhoneDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Session.LocateDelay)
	assert.Equal(t, "Dispur, Guwahati", cfg.Session.DetectedLocation)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BOT_MODE", "webhook")
	t.Setenv("BOT_WEBHOOK_URL", "https://nadi.example.org")
	t.Setenv("BOT_WEBHOOK_PORT", "9443")
	t.Setenv("BOT_WORKER_POOL_SIZE", "3")
	t.Setenv("SESSION_SPLASH_DELAY", "0s")
	t.Setenv("SESSION_DETECTED_LOCATION", "Tezpur")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDev())
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "webhook", cfg.Bot.Connection.Mode)
	assert.Equal(t, 9443, cfg.Bot.Connection.Webhook.ListenPort)
	assert.Equal(t, 3, cfg.Bot.Connection.Polling.WorkerPoolSize)
	assert.Zero(t, cfg.Session.SplashDelay)
	assert.Equal(t, "Tezpur", cfg.Session.DetectedLocation)
}

func TestLoad_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "missing key", env: map[string]string{"ENCRYPTION_KEY": ""}, wantErr: "ENCRYPTION_KEY is not set"},
		{name: "short key", env: map[string]string{"ENCRYPTION_KEY": "abcd"}, wantErr: "64-character"},
		{name: "non hex key", env: map[string]string{"ENCRYPTION_KEY": strings.Repeat("zz", 32)}, wantErr: "hex-encoded"},
		{name: "missing token", env: map[string]string{"BOT_TOKEN": ""}, wantErr: "BOT_TOKEN"},
		{name: "bad mode", env: map[string]string{"BOT_MODE": "carrier-pigeon"}, wantErr: "BOT_MODE"},
		{name: "webhook without url", env: map[string]string{"BOT_MODE": "webhook"}, wantErr: "BOT_WEBHOOK_URL"},
		{name: "no workers", env: map[string]string{"BOT_WORKER_POOL_SIZE": "0"}, wantErr: "BOT_WORKER_POOL_SIZE"},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}, wantErr: "LOG_LEVEL"},
		{name: "negative delay", env: map[string]string{"SESSION_OTP_DELAY": "-1s"}, wantErr: "SESSION_OTP_DELAY"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
