package eventbus

import (
	"context"
	"sync"

	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

// inMemoryEventBus implements the ports.EventBus interface
type inMemoryEventBus struct {
	log         zerolog.Logger
	subscribers map[string][]ports.EventHandler
	mu          sync.RWMutex
	wg          sync.WaitGroup
}

// Bus is an in-process event bus that can wait for in-flight handlers.
type Bus interface {
	ports.EventBus
	// Wait blocks until every handler started so far has returned.
	Wait()
}

// NewInMemoryEventBus creates a new, empty event bus
func NewInMemoryEventBus(baseLogger *zerolog.Logger) Bus {
	return &inMemoryEventBus{
		log:         baseLogger.With().Str("component", "in_memory_bus").Logger(),
		subscribers: make(map[string][]ports.EventHandler),
	}
}

// Publish hands the event to every subscriber of topic, each on its own
// goroutine so a slow handler does not hold up the publisher.
func (b *inMemoryEventBus) Publish(ctx context.Context, topic string, data any) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handlers, ok := b.subscribers[topic]
	if !ok {
		b.log.Warn().Str("topic", topic).Msg("Published event with no subscribers")
		return nil
	}

	event := ports.Event{
		Topic: topic,
		Data:  data,
	}

	for _, handler := range handlers {
		b.wg.Add(1)
		go func(h ports.EventHandler) {
			defer b.wg.Done()
			// Detached from the publisher's context: the session action that
			// published has usually returned by the time the handler runs.
			if err := h(context.WithoutCancel(ctx), event); err != nil {
				b.log.Error().Err(err).Str("topic", topic).Msg("Event handler failed")
			}
		}(handler)
	}

	b.log.Debug().Str("topic", topic).Int("handlers", len(handlers)).Msg("Event published")
	return nil
}

// Subscribe registers a handler for a specific topic
func (b *inMemoryEventBus) Subscribe(topic string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[topic] = append(b.subscribers[topic], handler)
	b.log.Info().Str("topic", topic).Msg("New handler subscribed to topic")
}

// Wait blocks until all dispatched handlers have finished.
func (b *inMemoryEventBus) Wait() {
	b.wg.Wait()
}
