package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"Nadi/internal/shared/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// UpdateHandler consumes one Telegram update. The citizen router implements it.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

// BotServer is responsible for running the bot (polling or webhook)
type BotServer struct {
	api     *tgbotapi.BotAPI
	handler UpdateHandler
	cfg     *config.BotConnectionConfig
	log     zerolog.Logger
}

// NewBotServer creates a new server instance
func NewBotServer(
	api *tgbotapi.BotAPI,
	handler UpdateHandler,
	cfg *config.BotConnectionConfig,
	baseLogger *zerolog.Logger,
) *BotServer {
	return &BotServer{
		api:     api,
		handler: handler,
		cfg:     cfg,
		log:     baseLogger.With().Str("component", "bot_server").Logger(),
	}
}

// Start begins the bot server based on the config mode.
// It blocks until ctx is cancelled.
func (s *BotServer) Start(ctx context.Context) error {
	s.log.Info().Str("mode", s.cfg.Mode).Msg("Starting bot server...")

	switch s.cfg.Mode {
	case "polling":
		return s.startPolling(ctx)
	case "webhook":
		return s.startWebhook(ctx)
	default:
		return fmt.Errorf("unknown bot mode: %s", s.cfg.Mode)
	}
}

// startPolling starts the bot in long polling mode with a worker pool
func (s *BotServer) startPolling(ctx context.Context) error {
	s.log.Info().Int("workers", s.cfg.Polling.WorkerPoolSize).Msg("Starting bot in POLLING mode")

	// 1. Clear any existing webhook
	if _, err := s.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: false}); err != nil {
		s.log.Warn().Err(err).Msg("Failed to delete webhook (continuing anyway)")
	} else {
		s.log.Info().Msg("Webhook deleted successfully")
	}

	// 2. Create the channel for updates
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.api.GetUpdatesChan(u)

	s.log.Info().Msg("Polling update listener started")
	s.dispatch(ctx, updates, "polling")

	s.api.StopReceivingUpdates()
	s.log.Info().Msg("Polling stopped gracefully")
	return nil
}

// startWebhook starts the bot in webhook mode (for production)
func (s *BotServer) startWebhook(ctx context.Context) error {
	s.log.Info().
		Int("port", s.cfg.Webhook.ListenPort).
		Int("workers", s.cfg.Polling.WorkerPoolSize). // We reuse the worker pool size
		Msg("Starting bot in WEBHOOK mode")

	// 1. Set the webhook
	path := "/webhook/" + s.api.Token
	wh, err := tgbotapi.NewWebhook(s.cfg.Webhook.URL + path)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to create webhook config")
		return err
	}
	if _, err := s.api.Request(wh); err != nil {
		s.log.Error().Err(err).Msg("Failed to set webhook")
		return err
	}

	// 2. Check what Telegram thinks of it
	info, err := s.api.GetWebhookInfo()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to get webhook info")
		return err
	}
	if info.LastErrorDate != 0 {
		s.log.Error().Str("error_message", info.LastErrorMessage).Msg("Telegram webhook has a last error")
	} else {
		s.log.Info().Msg("Webhook set successfully, no last error")
	}

	// 3. Serve the webhook path on our own mux.
	// TLS is left to the reverse proxy in front of us.
	updates := make(chan tgbotapi.Update, 100)
	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		update, err := s.api.HandleUpdate(r)
		if err != nil {
			s.log.Warn().Err(err).Msg("Rejected webhook request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		select {
		case updates <- *update:
		case <-r.Context().Done():
		}
	})

	listenAddr := fmt.Sprintf("127.0.0.1:%d", s.cfg.Webhook.ListenPort)
	httpServer := &http.Server{
		Addr:              listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		s.log.Info().Str("addr", listenAddr).Msg("Starting HTTP server for webhook")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("Webhook HTTP server failed")
		}
	}()

	s.log.Info().Msg("Webhook update listener started")
	s.dispatch(ctx, updates, "webhook")

	s.log.Info().Msg("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	s.log.Info().Msg("Webhook server stopped gracefully")
	return nil
}

// dispatch feeds updates to the worker pool until ctx is done or the
// source closes, then waits for the workers to drain their jobs.
// All updates of one chat go to the same worker, so a typed message and the
// button tap after it are handled in the order Telegram sent them.
func (s *BotServer) dispatch(ctx context.Context, updates <-chan tgbotapi.Update, mode string) {
	queues := make([]chan tgbotapi.Update, s.cfg.Polling.WorkerPoolSize)
	for i := range queues {
		queues[i] = make(chan tgbotapi.Update, 100/len(queues)+1)
	}
	wg := s.startWorkers(ctx, queues, mode)

	defer func() {
		for _, q := range queues {
			close(q)
		}
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			queues[shardFor(&update, len(queues))] <- update
		}
	}
}

// shardFor picks the worker for an update by chat. Updates without a chat
// (inline queries, polls) are spread by update ID.
func shardFor(update *tgbotapi.Update, workers int) int {
	key := int64(update.UpdateID)
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message == nil:
		// FromChat would dereference the missing message.
		if update.CallbackQuery.From != nil {
			key = update.CallbackQuery.From.ID
		}
	default:
		if chat := update.FromChat(); chat != nil {
			key = chat.ID
		}
	}
	shard := key % int64(workers)
	if shard < 0 {
		shard = -shard
	}
	return int(shard)
}

// startWorkers launches one worker per queue. Updates already queued are
// still handled after ctx is cancelled.
func (s *BotServer) startWorkers(ctx context.Context, queues []chan tgbotapi.Update, mode string) *sync.WaitGroup {
	var wg sync.WaitGroup
	workCtx := context.WithoutCancel(ctx)

	for i, jobs := range queues {
		wg.Add(1)
		go func(id int, jobs <-chan tgbotapi.Update) {
			defer wg.Done()
			log := s.log.With().Str("mode", mode).Int("worker_id", id).Logger()
			log.Debug().Msg("Starting worker")
			for job := range jobs {
				s.handler.HandleUpdate(workCtx, &job)
			}
			log.Debug().Msg("Stopping worker (channel closed)")
		}(i+1, jobs)
	}
	return &wg
}
