package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingSession indicates the session is required but not set.
	ErrMissingSession = errors.New("execution context: session is required")

	// ErrMissingConfig indicates the configuration is required but not set.
	ErrMissingConfig = errors.New("execution context: config is required")
)
