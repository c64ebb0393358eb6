package clock

import (
	"time"

	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

// realScheduler implements ports.Scheduler on top of time.AfterFunc.
type realScheduler struct {
	log zerolog.Logger
}

// NewScheduler creates a wall-clock scheduler.
func NewScheduler(baseLogger *zerolog.Logger) ports.Scheduler {
	return &realScheduler{
		log: baseLogger.With().Str("component", "scheduler").Logger(),
	}
}

// AfterFunc runs fn on its own goroutine once d has elapsed.
func (s *realScheduler) AfterFunc(d time.Duration, fn func()) ports.Timer {
	s.log.Debug().Dur("delay", d).Msg("Scheduling deferred task")
	return time.AfterFunc(d, fn)
}
