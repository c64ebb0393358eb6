package navigation

import "errors"

var (
	// ErrIncompleteInput means the forward action's precondition does not hold yet.
	ErrIncompleteInput = errors.New("input is incomplete")

	// ErrInvalidTransition means the action is not offered on the current screen.
	ErrInvalidTransition = errors.New("action not available on the current screen")

	// ErrVerificationPending means a simulated check is still running.
	ErrVerificationPending = errors.New("verification already in progress")

	ErrNotAuthenticated  = errors.New("no user is signed in")
	ErrGrievanceNotFound = errors.New("grievance not found")
	ErrIDSpaceExhausted  = errors.New("could not allocate a unique grievance id")
)
