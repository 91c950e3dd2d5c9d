package dispatcher

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/dshills/movetext/internal/dispatcher/execctx"
	"github.com/dshills/movetext/internal/dispatcher/handler"
	"github.com/dshills/movetext/internal/engine"
	"github.com/dshills/movetext/internal/input"
)

// Config holds dispatcher configuration.
type Config struct {
	// RecoverFromPanic converts handler panics into error results.
	RecoverFromPanic bool
}

// DefaultConfig returns the default dispatcher configuration.
func DefaultConfig() Config {
	return Config{RecoverFromPanic: true}
}

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	// Namespace handlers (e.g., "move" handles "move.*")
	namespaces map[string]handler.NamespaceHandler

	// Exact-name handlers, checked after namespace routing
	handlers map[string]handler.Handler

	// Actions that keep the vertical move column chain alive
	chainActions map[string]bool

	session  *engine.Session
	settings execctx.ConfigInterface

	config Config
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	return &Dispatcher{
		namespaces:   make(map[string]handler.NamespaceHandler),
		handlers:     make(map[string]handler.Handler),
		chainActions: make(map[string]bool),
		config:       config,
	}
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetSession sets the editing session actions operate on.
func (d *Dispatcher) SetSession(s *engine.Session) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.session = s
}

// Session returns the bound editing session.
func (d *Dispatcher) Session() *engine.Session {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.session
}

// SetSettings sets the settings source for execution contexts.
func (d *Dispatcher) SetSettings(settings execctx.ConfigInterface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settings = settings
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.namespaces[h.Namespace()] = h
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[actionName] = h
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn handler.HandlerFunc) {
	d.RegisterHandler(actionName, fn)
}

// UnregisterHandler removes a handler for an action name.
func (d *Dispatcher) UnregisterHandler(actionName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.handlers, actionName)
}

// MarkColumnChaining marks actions that keep the vertical move column
// chain alive. Any dispatched action outside this set resets the chain.
func (d *Dispatcher) MarkColumnChaining(actionNames ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, name := range actionNames {
		d.chainActions[name] = true
	}
}

// Dispatch executes an action synchronously.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	ctx := d.buildContext(action)
	if ctx.Session == nil {
		return handler.Error(ErrMissingSession)
	}

	d.mu.RLock()
	chains := d.chainActions[action.Name]
	d.mu.RUnlock()
	if !chains {
		ctx.Session.ClearStartColumn()
	}

	h := d.route(action.Name)
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name))
	}

	if d.config.RecoverFromPanic {
		return d.executeWithRecovery(h, action, ctx)
	}
	return h.Handle(action, ctx)
}

// route finds the handler for an action name.
func (d *Dispatcher) route(actionName string) handler.Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ns := input.Action{Name: actionName}.Namespace()
	if ns != "" {
		if h, ok := d.namespaces[ns]; ok && h.CanHandle(actionName) {
			return handler.NewNamespaceAdapter(h)
		}
	}
	return d.handlers[actionName]
}

// buildContext builds an execution context from current state.
func (d *Dispatcher) buildContext(action input.Action) *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx := execctx.NewWithSession(d.session)
	ctx.Config = d.settings
	if action.Count > 0 {
		ctx.Count = action.Count
	}
	return ctx
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			result = handler.Errorf("handler panic for %s: %v\n%s", action.Name, r, string(stack[:n]))
		}
	}()

	return h.Handle(action, ctx)
}
