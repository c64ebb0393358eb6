package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv        string
	LogLevel      zerolog.Level
	EncryptionKey string
	Bot           BotConfig
	Session       SessionConfig
}

// BotConfig holds the Telegram bot settings.
type BotConfig struct {
	Token       string
	APIEndpoint string // format string taking the token and the method
	Connection  BotConnectionConfig
}

// BotConnectionConfig selects how updates reach the bot.
type BotConnectionConfig struct {
	Mode    string // "polling" or "webhook"
	Polling PollingConfig
	Webhook WebhookConfig
}

// PollingConfig sizes the worker pool. Webhook mode reuses it.
type PollingConfig struct {
	WorkerPoolSize int
}

// WebhookConfig is used when Mode is "webhook".
type WebhookConfig struct {
	URL        string
	ListenPort int
}

// SessionConfig tunes the simulated steps of a session.
type SessionConfig struct {
	SplashDelay      time.Duration
	PhoneDelay       time.Duration
	OTPDelay         time.Duration
	AadhaarDelay     time.Duration
	LocateDelay      time.Duration
	DetectedLocation string
}

// env binds every viper key to its environment variable.
var env = map[string]string{
	"app.env":                   "APP_ENV",
	"log.level":                 "LOG_LEVEL",
	"encryption.key":            "ENCRYPTION_KEY",
	"bot.token":                 "BOT_TOKEN",
	"bot.api_endpoint":          "BOT_API_ENDPOINT",
	"bot.mode":                  "BOT_MODE",
	"bot.polling.workers":       "BOT_WORKER_POOL_SIZE",
	"bot.webhook.url":           "BOT_WEBHOOK_URL",
	"bot.webhook.port":          "BOT_WEBHOOK_PORT",
	"session.delay.splash":      "SESSION_SPLASH_DELAY",
	"session.delay.phone":       "SESSION_PHONE_DELAY",
	"session.delay.otp":         "SESSION_OTP_DELAY",
	"session.delay.aadhaar":     "SESSION_AADHAAR_DELAY",
	"session.delay.locate":      "SESSION_LOCATE_DELAY",
	"session.detected_location": "SESSION_DETECTED_LOCATION",
}

// Load loads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	// 1. Load .env file into the process environment
	if err := godotenv.Load(); err != nil {
		// A missing file is fine; we rely on OS-set env vars.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// 2. Explicitly bind viper keys to env var names
	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	// 3. Set defaults
	v.SetDefault("app.env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("bot.api_endpoint", "https://api.telegram.org/bot%s/%s")
	v.SetDefault("bot.mode", "polling")
	v.SetDefault("bot.polling.workers", 10)
	v.SetDefault("bot.webhook.port", 8080)
	v.SetDefault("session.delay.splash", "3500ms")
	v.SetDefault("session.delay.phone", "1s")
	v.SetDefault("session.delay.otp", "1s")
	v.SetDefault("session.delay.aadhaar", "1500ms")
	v.SetDefault("session.delay.locate", "1500ms")
	v.SetDefault("session.detected_location", "Dispur, Guwahati")

	level, err := zerolog.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	// 4. Get values directly from viper
	cfg := Config{
		AppEnv:        v.GetString("app.env"),
		LogLevel:      level,
		EncryptionKey: v.GetString("encryption.key"),
		Bot: BotConfig{
			Token:       v.GetString("bot.token"),
			APIEndpoint: v.GetString("bot.api_endpoint"),
			Connection: BotConnectionConfig{
				Mode:    v.GetString("bot.mode"),
				Polling: PollingConfig{WorkerPoolSize: v.GetInt("bot.polling.workers")},
				Webhook: WebhookConfig{
					URL:        v.GetString("bot.webhook.url"),
					ListenPort: v.GetInt("bot.webhook.port"),
				},
			},
		},
		Session: SessionConfig{
			SplashDelay:      v.GetDuration("session.delay.splash"),
			PhoneDelay:       v.GetDuration("session.delay.phone"),
			OTPDelay:         v.GetDuration("session.delay.otp"),
			AadhaarDelay:     v.GetDuration("session.delay.aadhaar"),
			LocateDelay:      v.GetDuration("session.delay.locate"),
			DetectedLocation: v.GetString("session.detected_location"),
		},
	}

	// 5. Validation
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.EncryptionKey == "" {
		return errors.New("ENCRYPTION_KEY is not set in environment or .env file")
	}
	if len(c.EncryptionKey) != 64 {
		return fmt.Errorf("ENCRYPTION_KEY must be a 64-character hex string (32 bytes), but got %d chars", len(c.EncryptionKey))
	}
	if _, err := hex.DecodeString(c.EncryptionKey); err != nil {
		return fmt.Errorf("ENCRYPTION_KEY must be hex-encoded: %w", err)
	}

	if c.Bot.Token == "" {
		return errors.New("BOT_TOKEN is not set")
	}

	conn := c.Bot.Connection
	switch conn.Mode {
	case "polling":
	case "webhook":
		if conn.Webhook.URL == "" {
			return errors.New("BOT_WEBHOOK_URL is required in webhook mode")
		}
		if conn.Webhook.ListenPort <= 0 || conn.Webhook.ListenPort > 65535 {
			return fmt.Errorf("BOT_WEBHOOK_PORT %d is out of range", conn.Webhook.ListenPort)
		}
	default:
		return fmt.Errorf("BOT_MODE must be polling or webhook, got %q", conn.Mode)
	}
	if conn.Polling.WorkerPoolSize < 1 {
		return fmt.Errorf("BOT_WORKER_POOL_SIZE must be at least 1, got %d", conn.Polling.WorkerPoolSize)
	}

	s := c.Session
	for name, d := range map[string]time.Duration{
		"SESSION_SPLASH_DELAY":  s.SplashDelay,
		"SESSION_PHONE_DELAY":   s.PhoneDelay,
		"SESSION_OTP_DELAY":     s.OTPDelay,
		"SESSION_AADHAAR_DELAY": s.AadhaarDelay,
		"SESSION_LOCATE_DELAY":  s.LocateDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

// IsDev reports whether human-readable logging should be used.
func (c *Config) IsDev() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}
