package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Nadi/internal/adapters/clock"
	"Nadi/internal/adapters/eventbus"
	"Nadi/internal/adapters/security"
	"Nadi/internal/adapters/telegram"
	"Nadi/internal/bot/i18n"
	"Nadi/internal/core/navigation"
	"Nadi/internal/shared/config"
	"Nadi/internal/shared/logger"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	baseLogger := logger.New(cfg.IsDev(), cfg.LogLevel)
	baseLogger.Info().
		Str("app_env", cfg.AppEnv).
		Str("bot_mode", cfg.Bot.Connection.Mode).
		Str("log_level", cfg.LogLevel.String()).
		Msg("Configuration loaded")

	// 3. Initialize the Aadhaar sealer
	secSvc, err := security.NewAESSealer(cfg.EncryptionKey, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize security service")
	}

	// 4. Initialize the event bus and the session manager
	bus := eventbus.NewInMemoryEventBus(&baseLogger)
	sessions := navigation.NewManager(navigation.Options{
		Delays: navigation.Delays{
			Splash:  cfg.Session.SplashDelay,
			Phone:   cfg.Session.PhoneDelay,
			OTP:     cfg.Session.OTPDelay,
			Aadhaar: cfg.Session.AadhaarDelay,
			Locate:  cfg.Session.LocateDelay,
		},
		DetectedLocation: cfg.Session.DetectedLocation,
		Scheduler:        clock.NewScheduler(&baseLogger),
		Bus:              bus,
		Security:         secSvc,
	}, &baseLogger)

	// 5. Load the string catalog
	translator, err := i18n.New()
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to build string catalog")
	}

	baseLogger.Info().Msg("All services initialized successfully")

	// 6. Run the bot until SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator := telegram.NewOrchestrator(cfg, sessions, bus, translator, &baseLogger)
	runErr := orchestrator.Start(ctx)
	if runErr != nil {
		baseLogger.Error().Err(runErr).Msg("Bot stopped with error")
	}

	// 7. Drain
	sessions.Close()
	bus.Wait()
	baseLogger.Info().Msg("Shutdown complete")

	if runErr != nil {
		stop()
		os.Exit(1)
	}
}
