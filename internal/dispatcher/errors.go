package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler is registered for an action.
	ErrNoHandler = errors.New("no handler for action")

	// ErrMissingSession indicates the dispatcher has no session bound.
	ErrMissingSession = errors.New("dispatcher: session is required")
)
