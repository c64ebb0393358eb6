package ports

import "time"

// Timer is a pending deferred task.
type Timer interface {
	// Stop prevents the task from running. It reports whether the call
	// stopped the task before it ran.
	Stop() bool
}

// Scheduler runs a function once after a delay.
// Sessions use it for every simulated verification and the splash screen.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
