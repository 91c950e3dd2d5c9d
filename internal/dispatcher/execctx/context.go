// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/movetext/internal/engine"
)

// ConfigInterface abstracts typed settings lookup for handlers.
type ConfigInterface interface {
	// Bool returns a boolean setting, falling back to its registered
	// default when unset.
	Bool(path string) bool

	// Int returns an integer setting, falling back to its registered
	// default when unset.
	Int(path string) int
}

// ExecutionContext provides context for action execution.
type ExecutionContext struct {
	// Session is the editing session the action operates on.
	Session *engine.Session

	// Config provides typed access to settings.
	Config ConfigInterface

	// Count is the repeat count (1 if not specified).
	Count int

	// Data holds handler-specific context data.
	Data map[string]interface{}
}

// New creates an execution context.
func New() *ExecutionContext {
	return &ExecutionContext{Count: 1}
}

// NewWithSession creates an execution context bound to a session.
func NewWithSession(s *engine.Session) *ExecutionContext {
	ctx := New()
	ctx.Session = s
	return ctx
}

// GetCount returns the repeat count, defaulting to 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count < 1 {
		return 1
	}
	return ctx.Count
}

// ValidateForEdit checks that the context can perform buffer edits.
func (ctx *ExecutionContext) ValidateForEdit() error {
	if ctx.Session == nil {
		return ErrMissingSession
	}
	return nil
}

// SetData stores handler-specific context data.
func (ctx *ExecutionContext) SetData(key string, value interface{}) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]interface{})
	}
	ctx.Data[key] = value
}

// GetData retrieves handler-specific context data.
func (ctx *ExecutionContext) GetData(key string) (interface{}, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}
