package lua

import "errors"

// Runtime errors.
var (
	// ErrRuntimeClosed indicates the runtime has been closed.
	ErrRuntimeClosed = errors.New("lua runtime is closed")
)
