package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryBus_DeliversToEverySubscriber(t *testing.T) {
	nopLogger := zerolog.Nop()
	bus := NewInMemoryEventBus(&nopLogger)

	var calls atomic.Int32
	var got atomic.Value
	handler := func(ctx context.Context, e ports.Event) error {
		calls.Add(1)
		got.Store(e.Data)
		return nil
	}
	bus.Subscribe("grievance:submitted", handler)
	bus.Subscribe("grievance:submitted", handler)

	err := bus.Publish(context.Background(), "grievance:submitted", "GR-2024-0001")
	assert.NoError(t, err)
	bus.Wait()

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "GR-2024-0001", got.Load())
}

func TestInMemoryBus_NoSubscribers(t *testing.T) {
	nopLogger := zerolog.Nop()
	bus := NewInMemoryEventBus(&nopLogger)

	assert.NoError(t, bus.Publish(context.Background(), "session:logged_out", nil))
	bus.Wait()
}

func TestInMemoryBus_HandlerErrorDoesNotPropagate(t *testing.T) {
	nopLogger := zerolog.Nop()
	bus := NewInMemoryEventBus(&nopLogger)

	bus.Subscribe("session:screen_changed", func(ctx context.Context, e ports.Event) error {
		return errors.New("render failed")
	})

	assert.NoError(t, bus.Publish(context.Background(), "session:screen_changed", struct{}{}))
	bus.Wait()
}

func TestInMemoryBus_HandlerOutlivesCancelledPublisher(t *testing.T) {
	nopLogger := zerolog.Nop()
	bus := NewInMemoryEventBus(&nopLogger)

	var sawCancel atomic.Bool
	bus.Subscribe("t", func(ctx context.Context, e ports.Event) error {
		sawCancel.Store(ctx.Err() != nil)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, bus.Publish(ctx, "t", 1))
	bus.Wait()

	assert.False(t, sawCancel.Load())
}
